package oversight

import "github.com/shopspring/decimal"

// GrowthPoint is a single month on a compounded value curve.
type GrowthPoint struct {
	Month string // calendar month label, "2006-01"
	Value Money
}

// growthFactor returns the monthly compounding factor 1 + rate/12/100 for an
// annual rate expressed in percent. A negative rate yields a decay factor.
func growthFactor(annualRatePercent float64) decimal.Decimal {
	rate := decimal.NewFromFloat(annualRatePercent)
	return decimal.New(1, 0).Add(rate.Div(decimal.New(1200, 0)))
}

// GrowthAt returns the value of 'initial' compounded monthly over the given
// number of whole months, rounded to the currency minor unit.
// A month count of zero or less returns the initial value.
func GrowthAt(initial Money, annualRatePercent float64, months int) Money {
	if months <= 0 {
		return initial.Round()
	}
	factor := growthFactor(annualRatePercent).Pow(decimal.NewFromInt(int64(months)))
	return initial.Mul(factor).Round()
}

// Growth projects 'initial' compounded monthly over 'months' months starting
// at 'start'. It returns months+1 points, one per calendar month including
// the starting month. Point i is initial * factor^i rounded to the currency
// minor unit.
//
// The initial value is not validated: a negative or zero initial simply
// propagates through the curve.
func Growth(initial Money, annualRatePercent float64, months int, start Date) []GrowthPoint {
	if months < 0 {
		months = 0
	}
	factor := growthFactor(annualRatePercent)
	points := make([]GrowthPoint, 0, months+1)
	value := initial
	for i := 0; i <= months; i++ {
		points = append(points, GrowthPoint{
			Month: start.AddMonth(i).MonthKey(),
			Value: value.Round(),
		})
		// keep compounding on the unrounded value
		value = value.Mul(factor)
	}
	return points
}
