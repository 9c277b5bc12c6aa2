package oversight

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/Rhymond/go-money"
)

// RecordType is a typed string for identifying ledger records.
type RecordType string

// Record types used for identifying ledger lines.
const (
	RecAccount  RecordType = "declare-account"
	RecAsset    RecordType = "declare-asset"
	RecSchedule RecordType = "schedule"
	RecTx       RecordType = "tx"
)

// Record defines the common interface for everything that can be written to
// the ledger: account, asset and schedule declarations, and transactions.
type Record interface {
	What() RecordType // What returns the record type (e.g., "tx").
	When() Date       // When returns the date on which the record applies.
	Equal(Record) bool
	Validate(l *Ledger) (Record, error)
}

type baseRec struct {
	Record RecordType `json:"record"`         // Record specifies the type of the ledger line.
	Date   Date       `json:"date"`           // Date is when the record applies.
	Memo   string     `json:"memo,omitempty"` // Memo provides an optional note.
}

// What returns the record type, which identifies the ledger line.
func (t baseRec) What() RecordType {
	return t.Record
}

// When returns the date of the record.
func (t baseRec) When() Date {
	return t.Date
}

// MarshalJSON implements the json.Marshaler interface for baseRec.
func (t baseRec) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("record", t.Record)
	w.Append("date", t.Date)
	w.Optional("memo", t.Memo)
	return w.MarshalJSON()
}

// Validate checks the base record fields. It sets the date to today if it's
// zero. It's meant to be embedded in other record validation methods.
func (t *baseRec) Validate() {
	if t.Date == (Date{}) {
		t.Date = Today()
	}
}

var idRE = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9._-]*$`)

// validateID checks an identifier used to reference accounts, assets and
// schedules across ledger lines.
func validateID(id string) error {
	if id == "" {
		return errors.New("identifier is missing")
	}
	if !idRE.MatchString(id) {
		return fmt.Errorf("invalid identifier %q: must start with a letter and contain only letters, digits, '.', '_' or '-'", id)
	}
	return nil
}

// checkCurrency verifies the currency code is a known ISO 4217 code and that
// it matches the ledger's currency. A ledger holds a single currency; the
// first declaration fixes it.
func checkCurrency(l *Ledger, currency string) error {
	if money.GetCurrency(currency) == nil {
		return fmt.Errorf("unknown currency code %q", currency)
	}
	if lc := l.Currency(); lc != "" && lc != currency {
		return fmt.Errorf("currency %s does not match ledger currency %s", currency, lc)
	}
	return nil
}

// DeclareAccount registers an account in the ledger.
type DeclareAccount struct {
	baseRec
	ID       string
	Name     string
	Type     AccountType
	Currency string
}

// NewDeclareAccount creates a new account declaration record.
func NewDeclareAccount(day Date, memo, id, name string, typ AccountType, currency string) DeclareAccount {
	return DeclareAccount{
		baseRec:  baseRec{Record: RecAccount, Date: day, Memo: memo},
		ID:       id,
		Name:     name,
		Type:     typ,
		Currency: currency,
	}
}

// MarshalJSON implements the json.Marshaler interface for DeclareAccount.
func (t DeclareAccount) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseRec)
	w.Append("id", t.ID)
	w.Optional("name", t.Name)
	w.Append("type", t.Type)
	w.Append("currency", t.Currency)
	return w.MarshalJSON()
}

func (t DeclareAccount) Equal(other Record) bool {
	o, ok := other.(DeclareAccount)
	return ok && t == o
}

// Validate checks the account declaration. The account identifier must be
// valid and not already taken, and the currency must be a known code matching
// the ledger's currency.
func (t DeclareAccount) Validate(l *Ledger) (Record, error) {
	t.baseRec.Validate()
	if err := validateID(t.ID); err != nil {
		return t, err
	}
	if _, exists := l.Account(t.ID); exists {
		return t, fmt.Errorf("account %q already declared", t.ID)
	}
	if err := checkCurrency(l, t.Currency); err != nil {
		return t, err
	}
	if t.Name == "" {
		t.Name = t.ID
	}
	return t, nil
}

// Tx records a signed money movement on an account. A positive amount is an
// inflow, a negative one an outflow.
type Tx struct {
	baseRec
	ID       string // assigned by the ledger when empty
	Account  string
	Amount   Money
	Category string
	Merchant string
	Schedule string // id of the recurring schedule that generated it, if any
}

// NewTx creates a new transaction record.
func NewTx(day Date, memo, account string, amount Money, category, merchant string) Tx {
	return Tx{
		baseRec:  baseRec{Record: RecTx, Date: day, Memo: memo},
		Account:  account,
		Amount:   amount,
		Category: category,
		Merchant: merchant,
	}
}

// MarshalJSON implements the json.Marshaler interface for Tx.
func (t Tx) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseRec)
	w.Optional("id", t.ID)
	w.Append("account", t.Account)
	w.EmbedFrom(t.Amount)
	w.Optional("category", t.Category)
	w.Optional("merchant", t.Merchant)
	w.Optional("schedule", t.Schedule)
	return w.MarshalJSON()
}

func (t Tx) Equal(other Record) bool {
	o, ok := other.(Tx)
	return ok && t.baseRec == o.baseRec && t.ID == o.ID && t.Account == o.Account &&
		t.Amount.Equal(o.Amount) && t.Category == o.Category && t.Merchant == o.Merchant &&
		t.Schedule == o.Schedule
}

// Validate checks the transaction's fields. The account must be declared and
// the amount must be non-zero. A missing currency is resolved from the
// account; a conflicting one is an error.
func (t Tx) Validate(l *Ledger) (Record, error) {
	t.baseRec.Validate()
	account, exists := l.Account(t.Account)
	if !exists {
		return t, fmt.Errorf("account %q not declared in ledger", t.Account)
	}
	if t.Amount.IsZero() {
		return t, errors.New("transaction amount must be non-zero")
	}
	if t.Amount.Currency() == "" {
		t.Amount = M(t.Amount.value, account.Currency)
	} else if t.Amount.Currency() != account.Currency {
		return t, fmt.Errorf("transaction currency %s does not match account %q currency %s",
			t.Amount.Currency(), account.ID, account.Currency)
	}
	return t, nil
}

// DeclareAsset registers an owned asset in the ledger.
type DeclareAsset struct {
	baseRec
	ID                string
	Name              string
	Kind              AssetKind
	PurchaseDate      Date
	PurchasePrice     Money
	AnnualRatePercent float64
	Financing         *Financing
}

// NewDeclareAsset creates a new asset declaration record.
func NewDeclareAsset(day Date, memo, id, name string, kind AssetKind, purchase Date, price Money, annualRatePercent float64, financing *Financing) DeclareAsset {
	return DeclareAsset{
		baseRec:           baseRec{Record: RecAsset, Date: day, Memo: memo},
		ID:                id,
		Name:              name,
		Kind:              kind,
		PurchaseDate:      purchase,
		PurchasePrice:     price,
		AnnualRatePercent: annualRatePercent,
		Financing:         financing,
	}
}

// MarshalJSON implements the json.Marshaler interface for DeclareAsset.
func (t DeclareAsset) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseRec)
	w.Append("id", t.ID)
	w.Optional("name", t.Name)
	w.Append("kind", t.Kind)
	if !t.PurchaseDate.IsZero() {
		w.Append("purchaseDate", t.PurchaseDate)
	}
	if !t.PurchasePrice.IsZero() {
		w.Append("purchasePrice", t.PurchasePrice)
	}
	w.Optional("annualRatePercent", t.AnnualRatePercent)
	if t.Financing != nil {
		w.Append("financing", t.Financing)
	}
	return w.MarshalJSON()
}

func (t DeclareAsset) Equal(other Record) bool {
	o, ok := other.(DeclareAsset)
	if !ok {
		return false
	}
	if (t.Financing == nil) != (o.Financing == nil) {
		return false
	}
	if t.Financing != nil {
		f, g := *t.Financing, *o.Financing
		if !f.Principal.Equal(g.Principal) || f.AnnualRatePercent != g.AnnualRatePercent ||
			f.TermMonths != g.TermMonths || f.Start != g.Start ||
			!f.MonthlyPayment.Equal(g.MonthlyPayment) {
			return false
		}
	}
	return t.baseRec == o.baseRec && t.ID == o.ID && t.Name == o.Name && t.Kind == o.Kind &&
		t.PurchaseDate == o.PurchaseDate && t.PurchasePrice.Equal(o.PurchasePrice) &&
		t.AnnualRatePercent == o.AnnualRatePercent
}

// Validate checks the asset declaration. A missing purchase date or price is
// accepted: the asset is recorded but excluded from valuations, see
// CheckAssets. Financing currency is resolved from the purchase price when
// missing.
func (t DeclareAsset) Validate(l *Ledger) (Record, error) {
	t.baseRec.Validate()
	if err := validateID(t.ID); err != nil {
		return t, err
	}
	if _, exists := l.Asset(t.ID); exists {
		return t, fmt.Errorf("asset %q already declared", t.ID)
	}
	if !t.PurchasePrice.IsZero() {
		if err := checkCurrency(l, t.PurchasePrice.Currency()); err != nil {
			return t, err
		}
	}
	if t.Financing != nil {
		f := *t.Financing
		if f.Principal.Currency() == "" {
			f.Principal = M(f.Principal.value, t.PurchasePrice.Currency())
		}
		if f.Principal.IsPositive() && f.TermMonths <= 0 {
			return t, fmt.Errorf("financing for asset %q has no term", t.ID)
		}
		if f.Start.IsZero() {
			f.Start = t.PurchaseDate
		}
		t.Financing = &f
	}
	if t.Name == "" {
		t.Name = t.ID
	}
	return t, nil
}

// DeclareSchedule registers a recurring transaction template in the ledger.
type DeclareSchedule struct {
	baseRec
	ID       string
	Account  string
	Freq     Frequency
	Start    Date
	End      Date // zero means the schedule is open-ended
	Merchant string
	Category string
	Amount   Money
	LastRun  Date // last materialized due date
}

// NewDeclareSchedule creates a new recurring schedule record.
func NewDeclareSchedule(day Date, memo, id, account string, freq Frequency, start, end Date, amount Money, category, merchant string) DeclareSchedule {
	return DeclareSchedule{
		baseRec:  baseRec{Record: RecSchedule, Date: day, Memo: memo},
		ID:       id,
		Account:  account,
		Freq:     freq,
		Start:    start,
		End:      end,
		Merchant: merchant,
		Category: category,
		Amount:   amount,
	}
}

// MarshalJSON implements the json.Marshaler interface for DeclareSchedule.
func (t DeclareSchedule) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseRec)
	w.Append("id", t.ID)
	w.Append("account", t.Account)
	w.Append("frequency", t.Freq.String())
	w.Append("start", t.Start)
	if !t.End.IsZero() {
		w.Append("end", t.End)
	}
	w.EmbedFrom(t.Amount)
	w.Optional("category", t.Category)
	w.Optional("merchant", t.Merchant)
	if !t.LastRun.IsZero() {
		w.Append("lastRun", t.LastRun)
	}
	return w.MarshalJSON()
}

func (t DeclareSchedule) Equal(other Record) bool {
	o, ok := other.(DeclareSchedule)
	return ok && t.baseRec == o.baseRec && t.ID == o.ID && t.Account == o.Account &&
		t.Freq == o.Freq && t.Start == o.Start && t.End == o.End && t.Merchant == o.Merchant &&
		t.Category == o.Category && t.Amount.Equal(o.Amount) && t.LastRun == o.LastRun
}

// Validate checks the schedule declaration. The owning account must be
// declared, the template amount must be non-zero and the end date, when set,
// cannot precede the start.
func (t DeclareSchedule) Validate(l *Ledger) (Record, error) {
	t.baseRec.Validate()
	if err := validateID(t.ID); err != nil {
		return t, err
	}
	if _, exists := l.Schedule(t.ID); exists {
		return t, fmt.Errorf("schedule %q already declared", t.ID)
	}
	account, exists := l.Account(t.Account)
	if !exists {
		return t, fmt.Errorf("account %q not declared in ledger", t.Account)
	}
	if t.Amount.IsZero() {
		return t, errors.New("schedule amount must be non-zero")
	}
	if t.Amount.Currency() == "" {
		t.Amount = M(t.Amount.value, account.Currency)
	} else if t.Amount.Currency() != account.Currency {
		return t, fmt.Errorf("schedule currency %s does not match account %q currency %s",
			t.Amount.Currency(), account.ID, account.Currency)
	}
	if t.Start.IsZero() {
		t.Start = t.Date
	}
	if !t.End.IsZero() && t.End.Before(t.Start) {
		return t, fmt.Errorf("schedule end %s is before start %s", t.End, t.Start)
	}
	return t, nil
}
