package oversight

import "sort"

// CategoryFlow is the spending recorded against one category over a period.
type CategoryFlow struct {
	Category       string
	Amount         Money
	ShareOfExpense Percent
}

// CashflowReport sums income and spending over a date range, with a
// per-category breakdown of the spending.
type CashflowReport struct {
	Period     Range
	Currency   string
	Income     Money
	Expense    Money
	Net        Money
	Categories []CategoryFlow
}

// NewCashflowReport computes the cashflow report for the ledger over the
// given period. Inflows count as income, outflows as expense; each outflow
// is also bucketed by its category.
func NewCashflowReport(l *Ledger, period Range) *CashflowReport {
	report := &CashflowReport{
		Period:   period,
		Currency: l.Currency(),
	}

	byCategory := make(map[string]Money)
	for tx := range l.Transactions() {
		if !period.Contains(tx.Date) {
			continue
		}
		if tx.Amount.IsPositive() {
			report.Income = report.Income.Add(tx.Amount)
			continue
		}
		spent := tx.Amount.Neg()
		report.Expense = report.Expense.Add(spent)
		category := tx.Category
		if category == "" {
			category = "uncategorized"
		}
		byCategory[category] = byCategory[category].Add(spent)
	}
	report.Net = report.Income.Sub(report.Expense)

	for category, amount := range byCategory {
		flow := CategoryFlow{Category: category, Amount: amount}
		// a period can have spending in no category at all
		if !report.Expense.IsZero() {
			flow.ShareOfExpense = Percent(100 * amount.AsFloat() / report.Expense.AsFloat())
		}
		report.Categories = append(report.Categories, flow)
	}
	// biggest spender first, ties broken by name for a stable report
	sort.Slice(report.Categories, func(i, j int) bool {
		a, b := report.Categories[i], report.Categories[j]
		if a.Amount.Equal(b.Amount) {
			return a.Category < b.Category
		}
		return b.Amount.LessThan(a.Amount)
	})
	return report
}
