package oversight

import "slices"

// AccountLine is the per-account breakdown of a net worth report.
type AccountLine struct {
	ID      string
	Name    string
	Type    AccountType
	Balance Money
}

// AssetLine is the per-asset breakdown of a net worth report.
type AssetLine struct {
	ID          string
	Name        string
	Kind        AssetKind
	Value       Money
	LoanBalance Money
	Equity      Money
}

// NetWorthReport is the net worth history over a time range plus the
// breakdown of where the money sits on the reference date.
type NetWorthReport struct {
	Date     Date
	Currency string
	Range    TimeRange
	Total    Money
	Series   []NetWorthPoint
	Accounts []AccountLine
	Assets   []AssetLine
	Excluded []AssetExclusion
}

// NewNetWorthReport computes the net worth report for the ledger on the
// given date.
func NewNetWorthReport(l *Ledger, tr TimeRange, on Date) *NetWorthReport {
	report := &NetWorthReport{
		Date:     on,
		Currency: l.Currency(),
		Range:    tr,
		Total:    l.NetWorth(on),
		Series:   l.NetWorthSeries(tr, on),
	}

	for a := range l.Accounts() {
		report.Accounts = append(report.Accounts, AccountLine{
			ID:      a.ID,
			Name:    a.Name,
			Type:    a.Type,
			Balance: l.Balance(a.ID, on),
		})
	}

	valid, excluded := CheckAssets(slices.Collect(l.Assets()))
	report.Excluded = excluded
	for _, a := range valid {
		report.Assets = append(report.Assets, AssetLine{
			ID:          a.ID,
			Name:        a.Name,
			Kind:        a.Kind,
			Value:       a.ValueAt(on),
			LoanBalance: a.LoanBalanceAt(on),
			Equity:      a.EquityAt(on),
		})
	}
	return report
}
