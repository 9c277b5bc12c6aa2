package oversight

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// Ledger represents the full record of a user's finances: declared accounts,
// owned assets, recurring schedules and the transactions on them.
//
// In a Ledger records are always in chronological order.
type Ledger struct {
	records   []Record
	accounts  map[string]Account           // index accounts by id
	assets    map[string]Asset             // index assets by id
	schedules map[string]RecurringSchedule // index schedules by id
	currency  string                       // fixed by the first declaration
	lastSeq   int                          // highest transaction sequence seen
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		records:   make([]Record, 0),
		accounts:  make(map[string]Account),
		assets:    make(map[string]Asset),
		schedules: make(map[string]RecurringSchedule),
	}
}

// Currency returns the ledger currency, or "" for an empty ledger.
func (l *Ledger) Currency() string { return l.currency }

// Account returns the account declared with this id.
func (l *Ledger) Account(id string) (Account, bool) {
	a, ok := l.accounts[id]
	return a, ok
}

// Asset returns the asset declared with this id.
func (l *Ledger) Asset(id string) (Asset, bool) {
	a, ok := l.assets[id]
	return a, ok
}

// Schedule returns the recurring schedule declared with this id.
func (l *Ledger) Schedule(id string) (RecurringSchedule, bool) {
	s, ok := l.schedules[id]
	return s, ok
}

// Accounts returns an iterator over all declared accounts, sorted by id.
func (l *Ledger) Accounts() iter.Seq[Account] {
	return func(yield func(Account) bool) {
		for _, id := range slices.Sorted(maps.Keys(l.accounts)) {
			if !yield(l.accounts[id]) {
				return
			}
		}
	}
}

// Assets returns an iterator over all declared assets, sorted by id.
func (l *Ledger) Assets() iter.Seq[Asset] {
	return func(yield func(Asset) bool) {
		for _, id := range slices.Sorted(maps.Keys(l.assets)) {
			if !yield(l.assets[id]) {
				return
			}
		}
	}
}

// Schedules returns an iterator over all recurring schedules, sorted by id.
func (l *Ledger) Schedules() iter.Seq[RecurringSchedule] {
	return func(yield func(RecurringSchedule) bool) {
		for _, id := range slices.Sorted(maps.Keys(l.schedules)) {
			if !yield(l.schedules[id]) {
				return
			}
		}
	}
}

// Transactions returns an iterator over all transactions in chronological order.
func (l *Ledger) Transactions() iter.Seq[Tx] {
	return func(yield func(Tx) bool) {
		for _, rec := range l.records {
			if tx, ok := rec.(Tx); ok {
				if !yield(tx) {
					return
				}
			}
		}
	}
}

// Records returns an iterator over every ledger record in chronological order.
func (l *Ledger) Records() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for _, rec := range l.records {
			if !yield(rec) {
				return
			}
		}
	}
}

// Validate checks a record for correctness and applies quick fixes where
// applicable (e.g., resolving a missing currency from the account). It
// returns the validated (and potentially modified) record or an error
// detailing any validation failures.
func (l *Ledger) Validate(rec Record) (Record, error) {
	var err error
	switch v := rec.(type) {
	case DeclareAccount:
		rec, err = v.Validate(l)
	case DeclareAsset:
		rec, err = v.Validate(l)
	case DeclareSchedule:
		rec, err = v.Validate(l)
	case Tx:
		rec, err = v.Validate(l)
	default:
		return rec, fmt.Errorf("unsupported record type for validation: %T %v", rec, rec)
	}
	if err != nil {
		return rec, fmt.Errorf("invalid %s record on %v: %w", rec.What(), rec.When(), err)
	}
	return rec, nil
}

// Append validates records, appends them to this ledger and maintains the
// chronological order of records.
func (l *Ledger) Append(recs ...Record) error {
	for _, rec := range recs {
		validated, err := l.Validate(rec)
		if err != nil {
			return err
		}
		l.append(validated)
	}
	l.stableSort()
	return nil
}

// append stores a single validated record, assigning transaction ids.
// It returns the record as stored.
func (l *Ledger) append(rec Record) Record {
	if tx, ok := rec.(Tx); ok && tx.ID == "" {
		l.lastSeq++
		tx.ID = fmt.Sprintf("tx-%d", l.lastSeq)
		rec = tx
	}
	l.records = append(l.records, rec)
	l.processRec(rec)
	return rec
}

// processRec updates the ledger indexes from a record.
func (l *Ledger) processRec(rec Record) {
	switch v := rec.(type) {
	case DeclareAccount:
		l.accounts[v.ID] = Account{ID: v.ID, Name: v.Name, Type: v.Type, Currency: v.Currency}
		if l.currency == "" {
			l.currency = v.Currency
		}
	case DeclareAsset:
		l.assets[v.ID] = Asset{
			ID:                v.ID,
			Name:              v.Name,
			Kind:              v.Kind,
			PurchaseDate:      v.PurchaseDate,
			PurchasePrice:     v.PurchasePrice,
			AnnualRatePercent: v.AnnualRatePercent,
			Financing:         v.Financing,
		}
		if l.currency == "" && v.PurchasePrice.Currency() != "" {
			l.currency = v.PurchasePrice.Currency()
		}
	case DeclareSchedule:
		l.schedules[v.ID] = RecurringSchedule{
			ID:       v.ID,
			Account:  v.Account,
			Freq:     v.Freq,
			Start:    v.Start,
			End:      v.End,
			Merchant: v.Merchant,
			Category: v.Category,
			Amount:   v.Amount,
			LastRun:  v.LastRun,
		}
	case Tx:
		// keep the sequence counter ahead of explicit ids read from file
		if n, ok := strings.CutPrefix(v.ID, "tx-"); ok {
			if seq, err := strconv.Atoi(n); err == nil && seq > l.lastSeq {
				l.lastSeq = seq
			}
		}
	}
}

// stableSort keeps records in chronological order. The sort is stable so
// records on the same day keep their relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.records, func(i, j int) bool {
		return l.records[i].When().Before(l.records[j].When())
	})
}

// Balance returns the account balance on a given date: the sum of the signed
// amounts of its transactions up to and including that date.
func (l *Ledger) Balance(account string, asOf Date) Money {
	acc, ok := l.accounts[account]
	balance := Money{}
	if ok {
		balance = M(0, acc.Currency)
	}
	for tx := range l.Transactions() {
		if tx.Account != account || tx.Date.After(asOf) {
			continue
		}
		balance = balance.Add(tx.Amount)
	}
	return balance
}

// Transaction returns the transaction with this id.
func (l *Ledger) Transaction(id string) (Tx, bool) {
	for tx := range l.Transactions() {
		if tx.ID == id {
			return tx, true
		}
	}
	return Tx{}, false
}

// DeleteTransaction removes a transaction from the ledger. Balances being
// derived, the money movement simply disappears.
func (l *Ledger) DeleteTransaction(id string) error {
	for i, rec := range l.records {
		if tx, ok := rec.(Tx); ok && tx.ID == id {
			l.records = slices.Delete(l.records, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("transaction %q not found", id)
}

// EndSchedule closes a recurring schedule: no due date after 'end' will ever
// materialize.
func (l *Ledger) EndSchedule(id string, end Date) error {
	s, ok := l.schedules[id]
	if !ok {
		return fmt.Errorf("schedule %q not found", id)
	}
	if end.Before(s.Start) {
		return fmt.Errorf("schedule end %s is before start %s", end, s.Start)
	}
	s.End = end
	l.schedules[id] = s
	return l.updateScheduleRec(s)
}

// DeleteSchedule removes a recurring schedule. Transactions it already
// materialized remain in the ledger.
func (l *Ledger) DeleteSchedule(id string) error {
	if _, ok := l.schedules[id]; !ok {
		return fmt.Errorf("schedule %q not found", id)
	}
	delete(l.schedules, id)
	for i, rec := range l.records {
		if s, ok := rec.(DeclareSchedule); ok && s.ID == id {
			l.records = slices.Delete(l.records, i, i+1)
			return nil
		}
	}
	return nil
}

// updateScheduleRec rewrites the stored declaration for a schedule so the
// change survives a re-encode of the ledger.
func (l *Ledger) updateScheduleRec(s RecurringSchedule) error {
	for i, rec := range l.records {
		if d, ok := rec.(DeclareSchedule); ok && d.ID == s.ID {
			d.End = s.End
			d.LastRun = s.LastRun
			l.records[i] = d
			return nil
		}
	}
	return fmt.Errorf("schedule %q has no declaration record", s.ID)
}

// MaterializeDue generates concrete transactions for every due date of every
// recurring schedule up to and including 'now', and advances each schedule's
// last run so the same due date never materializes twice.
func (l *Ledger) MaterializeDue(now Date) ([]Tx, error) {
	var created []Tx
	for s := range l.Schedules() {
		dues := s.DueDates(now)
		if len(dues) == 0 {
			continue
		}
		for _, due := range dues {
			tx := NewTx(due, "", s.Account, s.Amount, s.Category, s.Merchant)
			tx.Schedule = s.ID
			validated, err := l.Validate(tx)
			if err != nil {
				return created, fmt.Errorf("materializing schedule %q: %w", s.ID, err)
			}
			created = append(created, l.append(validated).(Tx))
		}
		s.LastRun = dues[len(dues)-1]
		l.schedules[s.ID] = s
		if err := l.updateScheduleRec(s); err != nil {
			return created, err
		}
	}
	l.stableSort()
	return created, nil
}

// NetWorth returns the net worth on the given date: the sum of all account
// balances plus the equity of every valuable asset.
func (l *Ledger) NetWorth(on Date) Money {
	valid, _ := CheckAssets(slices.Collect(l.Assets()))
	return CurrentNetWorth(slices.Collect(l.Accounts()), slices.Collect(l.Transactions()), valid, on)
}

// NetWorthSeries builds the net worth history over the given time range,
// ending at 'now'.
func (l *Ledger) NetWorthSeries(tr TimeRange, now Date) []NetWorthPoint {
	return NetWorthSeries(slices.Collect(l.Accounts()), slices.Collect(l.Transactions()),
		slices.Collect(l.Assets()), tr, now)
}
