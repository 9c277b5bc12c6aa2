package oversight

import (
	"fmt"
	"slices"
)

// AssetPerformance details how one asset has evolved since its purchase.
type AssetPerformance struct {
	ID            string
	Name          string
	Kind          AssetKind
	PurchaseDate  Date
	PurchasePrice Money
	Value         Money
	Appreciation  Percent // value change relative to the purchase price
	Equity        Money
	Loan          LoanPosition
	LoanProgress  Percent // principal paid relative to the loan amount
	Financed      bool
}

// AssetsReport reviews every valuable asset on a reference date.
type AssetsReport struct {
	Date     Date
	Currency string
	Lines    []AssetPerformance
	Excluded []AssetExclusion
}

// NewAssetsReport computes the asset review for the ledger on the given date.
func NewAssetsReport(l *Ledger, on Date) *AssetsReport {
	report := &AssetsReport{
		Date:     on,
		Currency: l.Currency(),
	}
	valid, excluded := CheckAssets(slices.Collect(l.Assets()))
	report.Excluded = excluded

	for _, a := range valid {
		line := AssetPerformance{
			ID:            a.ID,
			Name:          a.Name,
			Kind:          a.Kind,
			PurchaseDate:  a.PurchaseDate,
			PurchasePrice: a.PurchasePrice,
			Value:         a.ValueAt(on),
			Equity:        a.EquityAt(on),
		}
		// purchase price is positive for valid assets
		line.Appreciation = Percent(100 * line.Value.Sub(a.PurchasePrice).AsFloat() / a.PurchasePrice.AsFloat())
		if a.Financing.enabled() {
			line.Financed = true
			line.Loan = a.Financing.PositionAt(on)
			line.LoanProgress = Percent(100 * line.Loan.PrincipalPaid.AsFloat() / a.Financing.Principal.AsFloat())
		}
		report.Lines = append(report.Lines, line)
	}
	return report
}

// LoanSchedule returns the full payment plan of a financed asset.
func LoanSchedule(l *Ledger, assetID string) (Asset, []Installment, error) {
	asset, ok := l.Asset(assetID)
	if !ok {
		return Asset{}, nil, fmt.Errorf("asset %q not found", assetID)
	}
	if !asset.Financing.enabled() {
		return asset, nil, fmt.Errorf("asset %q has no financing", assetID)
	}
	return asset, asset.Financing.Schedule(), nil
}
