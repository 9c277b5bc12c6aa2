package agent

import (
	"context"
	"fmt"

	"github.com/oversight-finance/oversight"
	"github.com/oversight-finance/oversight/docs"
	"github.com/oversight-finance/oversight/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his net worth: his accounts, his owned
			assets, his loans and where his money goes.

			Devise a plan of questions to ask to each expert and come up with the best response
			to the user's request. The user will assume that you already know his accounts and
			assets, check the ledger first to understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst returns an expert grounded on web search, for questions beyond
// the ledger: rates, market context, financial products.
func NewAnalyst() *Expert {
	return &Expert{
		Name: "Analyst",
		Description: `This is a financial analyst,
		well aware of financial products, interest rates, and institutions,
		and of the latest news about markets and the economy.
		Ask the Analyst whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a financial analyst. You can search and find about anything related to
			financial institutions, markets, loans and interest rates. You leverage Google
			Search to ground your assertions in a solid truth, and you know how to relate
			the latest news to the user's request.
				`}}},
		},
	}
}

// NewBookkeeper returns the expert in charge of the user's ledger. It reads
// the ledger through 'load' on every call so it always answers from the
// latest saved state.
func NewBookkeeper(load func() (*oversight.Ledger, error)) *Expert {
	lib := []Function{netWorthFunc(load), assetsFunc(load), cashflowFunc(load)}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the user's ledger.
		He can compute the net worth and its history, review the owned assets with their
		loans, and break down income and spending.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's ledger.
				You know how to use the Tools to extract relevant information about the
				user's accounts, assets and net worth. You are part of a team of experts,
				yours is everything recorded in the ledger. They might ask you questions
				with approximative language, pardon them and figure out what they meant.

				Use the available tools to get information about
				  - the net worth and its history
				  - the owned assets, their loans and equity
				  - income and spending by category
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// errResponse builds the error shape every function returns on failure.
func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

var dateArg = &genai.Schema{
	Type: genai.TypeString,
	Description: `The date on which to compute the report. Today is the default.
	Otherwise it uses a flexible date format based on YYYY-MM-DD:

	` + must(docs.GetTopic("dates")),
}

func netWorthFunc(load func() (*oversight.Ledger, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "NetWorth",
			Description: `NetWorth computes the user's net worth on a given day, with its
			history over a time range, the balance of every account and the equity of
			every owned asset.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": dateArg,
					"range": {
						Type:        genai.TypeString,
						Description: "History range: 1M, 3M, 6M, 1Y, 2Y or ALL. Defaults to ALL.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted net worth report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			date, err := parseDateArg(args)
			if err != nil {
				return errResponse(id, "NetWorth", err)
			}
			tr := oversight.AllTime
			if s, ok := args["range"].(string); ok && s != "" {
				if tr, err = oversight.ParseTimeRange(s); err != nil {
					return errResponse(id, "NetWorth", err)
				}
			}
			ledger, err := load()
			if err != nil {
				return errResponse(id, "NetWorth", fmt.Errorf("could not load ledger: %w", err))
			}
			report := oversight.NewNetWorthReport(ledger, tr, date)
			return &genai.FunctionResponse{
				ID:   id,
				Name: "NetWorth",
				Response: map[string]any{
					"output": renderer.NetWorthMarkdown(report),
				},
			}
		},
	}
}

func assetsFunc(load func() (*oversight.Ledger, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Assets",
			Description: `Assets reviews every owned asset on a given day: purchase metadata,
			derived value, appreciation, loan position and equity.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": dateArg,
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted asset review.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			date, err := parseDateArg(args)
			if err != nil {
				return errResponse(id, "Assets", err)
			}
			ledger, err := load()
			if err != nil {
				return errResponse(id, "Assets", fmt.Errorf("could not load ledger: %w", err))
			}
			report := oversight.NewAssetsReport(ledger, date)
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Assets",
				Response: map[string]any{
					"output": renderer.AssetsMarkdown(report),
				},
			}
		},
	}
}

func cashflowFunc(load func() (*oversight.Ledger, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Cashflow",
			Description: `Cashflow sums income and spending between two dates, with the
			spending broken down by category.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"start": {
						Type:        genai.TypeString,
						Description: "Start of the period, same format as 'end'. Defaults to the start of the current month.",
					},
					"end": dateArg,
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted cashflow report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			end, err := parseDateArg(args)
			if err != nil {
				return errResponse(id, "Cashflow", err)
			}
			start := end.StartOfMonth()
			if s, ok := args["start"].(string); ok && s != "" {
				if start, err = oversight.ParseDate(s); err != nil {
					return errResponse(id, "Cashflow", err)
				}
			}
			ledger, err := load()
			if err != nil {
				return errResponse(id, "Cashflow", fmt.Errorf("could not load ledger: %w", err))
			}
			report := oversight.NewCashflowReport(ledger, oversight.NewRange(start, end))
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Cashflow",
				Response: map[string]any{
					"output": renderer.CashflowMarkdown(report),
				},
			}
		},
	}
}

// parseDateArg reads the conventional 'date'/'end' argument, defaulting to today.
func parseDateArg(args map[string]any) (oversight.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		idate, hasDate = args["end"]
	}
	if !hasDate {
		return oversight.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return oversight.Today(), fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}

	date, err := oversight.ParseDate(sdate)
	if err != nil {
		return oversight.Today(), fmt.Errorf("argument 'date' must be a valid date got %q. Below is the doc about the date format\n\n%s ", sdate, must(docs.GetTopic("dates")))
	}

	return date, nil
}
