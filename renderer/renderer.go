// Package renderer renders oversight reports to markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/oversight-finance/oversight"
)

//go:embed *.md
var templates embed.FS

// NetWorthMarkdown renders the NetWorthReport struct to a markdown string.
func NetWorthMarkdown(r *oversight.NetWorthReport) string {
	partials := map[string]string{
		"networth_title":    "networth_title.md",
		"networth_series":   "networth_series.md",
		"networth_accounts": "networth_accounts.md",
		"networth_assets":   "networth_assets.md",
		"networth_excluded": "networth_excluded.md",
	}
	return renderTemplate("networth", "networth.md", partials, r)
}

// CashflowMarkdown renders the CashflowReport struct to a markdown string.
func CashflowMarkdown(r *oversight.CashflowReport) string {
	partials := map[string]string{
		"cashflow_title":      "cashflow_title.md",
		"cashflow_categories": "cashflow_categories.md",
	}
	return renderTemplate("cashflow", "cashflow.md", partials, r)
}

// AssetsMarkdown renders the AssetsReport struct to a markdown string.
func AssetsMarkdown(r *oversight.AssetsReport) string {
	partials := map[string]string{
		"assets_title":    "assets_title.md",
		"assets_lines":    "assets_lines.md",
		"assets_excluded": "assets_excluded.md",
	}
	return renderTemplate("assets", "assets.md", partials, r)
}

// loanPosition bundles what the loan position template needs.
type loanPosition struct {
	Asset oversight.Asset
	On    oversight.Date
	Pos   oversight.LoanPosition
}

// LoanPositionMarkdown renders the state of a financed asset's loan to a
// markdown string.
func LoanPositionMarkdown(asset oversight.Asset, on oversight.Date, pos oversight.LoanPosition) string {
	return renderTemplate("loanPosition", "loan_position.md", nil, loanPosition{Asset: asset, On: on, Pos: pos})
}

// loanPlan bundles what the loan schedule template needs.
type loanPlan struct {
	Asset oversight.Asset
	Rows  []oversight.Installment
}

// LoanScheduleMarkdown renders the full payment plan of a financed asset to a
// markdown string.
func LoanScheduleMarkdown(asset oversight.Asset, rows []oversight.Installment) string {
	return renderTemplate("loanSchedule", "loan_schedule.md", nil, loanPlan{Asset: asset, Rows: rows})
}

// GrowthMarkdown renders a projected growth curve to a markdown string.
func GrowthMarkdown(title string, points []oversight.GrowthPoint) string {
	data := struct {
		Title  string
		Points []oversight.GrowthPoint
	}{Title: title, Points: points}
	return renderTemplate("growth", "growth.md", nil, data)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
