package oversight

import "github.com/shopspring/decimal"

// Financing describes the loan terms attached to a financed asset.
type Financing struct {
	Principal         Money   `json:"principal"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
	TermMonths        int     `json:"termMonths"`
	Start             Date    `json:"start"`
	// MonthlyPayment, when positive, overrides the annuity formula.
	MonthlyPayment Money `json:"monthlyPayment,omitzero"`
}

// enabled reports whether the terms are complete enough to amortize.
// Incomplete terms are not an error: the loan simply never amortizes.
func (f *Financing) enabled() bool {
	return f != nil && f.Principal.IsPositive() && f.TermMonths > 0
}

// monthlyRate returns the monthly interest rate as a decimal fraction.
func (f *Financing) monthlyRate() decimal.Decimal {
	return decimal.NewFromFloat(f.AnnualRatePercent).Div(decimal.New(1200, 0))
}

// Payment returns the monthly payment: the fixed payment when one is set,
// otherwise the annuity formula P*r*(1+r)^n / ((1+r)^n - 1), falling back to
// straight-line P/n when the rate is zero.
func (f *Financing) Payment() Money {
	if !f.enabled() {
		return Money{}
	}
	if f.MonthlyPayment.IsPositive() {
		return f.MonthlyPayment
	}
	n := decimal.NewFromInt(int64(f.TermMonths))
	r := f.monthlyRate()
	if r.IsZero() {
		return f.Principal.Div(n).Round()
	}
	pow := decimal.New(1, 0).Add(r).Pow(n)
	return f.Principal.Mul(r).Mul(pow).Div(pow.Sub(decimal.New(1, 0))).Round()
}

// Installment is a single row of a loan payment plan.
type Installment struct {
	Month     string // calendar month label, "2006-01"
	Payment   Money
	Interest  Money
	Principal Money
	Remaining Money
}

// Schedule returns the full payment plan, one installment per month from the
// loan start. The last installment absorbs rounding drift so the balance
// always reaches exactly zero. Incomplete terms return an empty plan.
func (f *Financing) Schedule() []Installment {
	if !f.enabled() {
		return nil
	}
	payment := f.Payment()
	balance := f.Principal
	r := f.monthlyRate()
	rows := make([]Installment, 0, f.TermMonths)
	for i := 0; i < f.TermMonths && balance.IsPositive(); i++ {
		interest := balance.Mul(r).Round()
		principal := payment.Sub(interest)
		if i == f.TermMonths-1 || principal.GreaterThan(balance) {
			principal = balance
		}
		balance = balance.Sub(principal)
		rows = append(rows, Installment{
			Month:     f.Start.AddMonth(i).MonthKey(),
			Payment:   principal.Add(interest),
			Interest:  interest,
			Principal: principal,
			Remaining: balance,
		})
	}
	return rows
}

// LoanPosition is the state of a loan after a number of monthly payments.
type LoanPosition struct {
	MonthsPaid       int
	MonthlyPayment   Money
	TotalPaid        Money
	PrincipalPaid    Money
	InterestPaid     Money
	RemainingBalance Money
}

// PositionAt amortizes the loan month by month up to 'asOf' and returns the
// resulting position. The number of payments is the count of whole months
// elapsed since the loan start, capped at the term.
//
// Missing or incomplete terms yield a position with zero payments and the
// full principal remaining, never an error.
func (f *Financing) PositionAt(asOf Date) LoanPosition {
	if !f.enabled() {
		var pos LoanPosition
		if f != nil {
			pos.RemainingBalance = f.Principal
		}
		return pos
	}

	months := MonthsBetween(f.Start, asOf)
	if months < 0 {
		months = 0
	}
	if months > f.TermMonths {
		months = f.TermMonths
	}

	pos := LoanPosition{
		MonthlyPayment:   f.Payment(),
		RemainingBalance: f.Principal,
	}
	for _, row := range f.Schedule() {
		if pos.MonthsPaid >= months {
			break
		}
		pos.MonthsPaid++
		pos.TotalPaid = pos.TotalPaid.Add(row.Payment)
		pos.PrincipalPaid = pos.PrincipalPaid.Add(row.Principal)
		pos.InterestPaid = pos.InterestPaid.Add(row.Interest)
		pos.RemainingBalance = row.Remaining
	}
	return pos
}
