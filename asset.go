package oversight

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AssetKind tags the variant of an owned asset. The kind is resolved once,
// when the asset is declared or decoded, so no consumer ever has to probe the
// shape of the record.
type AssetKind int

const (
	Generic AssetKind = iota
	Vehicle
	RealEstate
)

func (k AssetKind) String() string {
	switch k {
	case Generic:
		return "generic"
	case Vehicle:
		return "vehicle"
	case RealEstate:
		return "real-estate"
	default:
		panic(fmt.Sprintf("unknown asset kind %d", k))
	}
}

// ParseAssetKind parses a string into an AssetKind.
func ParseAssetKind(s string) (AssetKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic", "":
		return Generic, nil
	case "vehicle", "car":
		return Vehicle, nil
	case "real-estate", "realestate", "property":
		return RealEstate, nil
	default:
		return Generic, fmt.Errorf("unknown asset kind %q (want vehicle, real-estate or generic)", s)
	}
}

func (k AssetKind) MarshalJSON() ([]byte, error) { return json.Marshal(k.String()) }

func (k *AssetKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	kind, err := ParseAssetKind(str)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// Asset is an owned valuable whose worth is always derived from its purchase
// metadata, never stored.
type Asset struct {
	ID                string
	Name              string
	Kind              AssetKind
	PurchaseDate      Date
	PurchasePrice     Money
	AnnualRatePercent float64 // negative for depreciating assets
	Financing         *Financing
}

// ValueAt returns the market value of the asset on the given date, derived
// from its purchase price compounded monthly at its annual rate.
// Before the purchase date the asset contributes nothing.
func (a Asset) ValueAt(on Date) Money {
	if a.PurchaseDate.After(on) {
		return M(0, a.PurchasePrice.Currency())
	}
	return GrowthAt(a.PurchasePrice, a.AnnualRatePercent, MonthsBetween(a.PurchaseDate, on))
}

// LoanBalanceAt returns the remaining balance of the asset's financing on the
// given date, or zero for assets bought outright.
func (a Asset) LoanBalanceAt(on Date) Money {
	if a.PurchaseDate.After(on) {
		return M(0, a.PurchasePrice.Currency())
	}
	return a.Financing.PositionAt(on).RemainingBalance
}

// EquityAt returns the asset's contribution to net worth on the given date:
// its derived market value minus the remaining loan balance.
func (a Asset) EquityAt(on Date) Money {
	return a.ValueAt(on).Sub(a.LoanBalanceAt(on))
}

// AssetExclusion reports an asset that valuations must skip, and why.
type AssetExclusion struct {
	AssetID string
	Reason  string
}

// CheckAssets splits assets into the set usable for valuation and the set to
// exclude. An asset with no purchase date or a non-positive purchase price
// cannot be valued; instead of silently dropping it, the exclusion is
// reported so callers can surface it.
func CheckAssets(assets []Asset) (valid []Asset, excluded []AssetExclusion) {
	for _, a := range assets {
		switch {
		case a.PurchaseDate.IsZero():
			excluded = append(excluded, AssetExclusion{AssetID: a.ID, Reason: "missing purchase date"})
		case !a.PurchasePrice.IsPositive():
			excluded = append(excluded, AssetExclusion{AssetID: a.ID, Reason: "missing or non-positive purchase price"})
		default:
			valid = append(valid, a)
		}
	}
	return valid, excluded
}
