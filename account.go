package oversight

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AccountType classifies an account for reporting purposes.
type AccountType int

const (
	Bank AccountType = iota
	Crypto
	Investment
	Credit
	LoanAccount
)

func (t AccountType) String() string {
	switch t {
	case Bank:
		return "bank"
	case Crypto:
		return "crypto"
	case Investment:
		return "investment"
	case Credit:
		return "credit"
	case LoanAccount:
		return "loan"
	default:
		panic(fmt.Sprintf("unknown account type %d", t))
	}
}

// ParseAccountType parses a string into an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bank":
		return Bank, nil
	case "crypto":
		return Crypto, nil
	case "investment":
		return Investment, nil
	case "credit":
		return Credit, nil
	case "loan":
		return LoanAccount, nil
	default:
		return Bank, fmt.Errorf("unknown account type %q (want bank, crypto, investment, credit or loan)", s)
	}
}

func (t AccountType) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

func (t *AccountType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	typ, err := ParseAccountType(str)
	if err != nil {
		return err
	}
	*t = typ
	return nil
}

// Account is a declared account. Its balance is never stored: it is always
// the sum of the signed amounts of its transactions.
type Account struct {
	ID       string
	Name     string
	Type     AccountType
	Currency string
}
