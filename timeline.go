package oversight

import "sort"

// NetWorthPoint is one point of a net worth history. It is always derived,
// never persisted.
type NetWorthPoint struct {
	Date  Date
	Value Money
}

// CurrentNetWorth sums all account balances and the equity of every asset on
// the given date. Transactions on unknown accounts and assets not yet
// purchased are ignored.
func CurrentNetWorth(accounts []Account, txs []Tx, assets []Asset, on Date) Money {
	known := make(map[string]bool, len(accounts))
	total := Money{}
	for _, a := range accounts {
		known[a.ID] = true
		total = total.Add(M(0, a.Currency))
	}
	for _, tx := range txs {
		if !known[tx.Account] || tx.Date.After(on) {
			continue
		}
		total = total.Add(tx.Amount)
	}
	for _, a := range assets {
		if a.PurchaseDate.After(on) {
			continue
		}
		total = total.Add(a.EquityAt(on))
	}
	return total.Round()
}

// timelineEvent is a single backward-walk step: either a transaction amount
// to undo, or an asset revaluation delta to remove.
type timelineEvent struct {
	on       Date
	delta    Money
	assetID  string // empty for transaction events
	purchase bool   // true for the event on the asset's purchase date
}

// NetWorthSeries reconstructs the net worth history backward from 'now' over
// the given time range. It is a pure function: it reads only its arguments
// and returns a fresh slice.
//
// The walk starts from the independently computed current net worth and
// undoes events newest first: transaction amounts are subtracted back out,
// monthly asset revaluations are stepped back, and crossing an asset's
// purchase date removes its whole remaining contribution. A processed set
// guarantees a purchased asset can never reappear earlier in time.
//
// One point is produced per distinct event date, in ascending order, each
// holding the net worth at the end of that day. The last point therefore
// always equals the current net worth. Empty inputs produce the single point
// {now, 0}.
//
// Two ranges post-filter the points: AllTime drops leading near-zero points,
// and LastMonth keeps only points in the current calendar month.
func NetWorthSeries(accounts []Account, txs []Tx, assets []Asset, tr TimeRange, now Date) []NetWorthPoint {
	valid, _ := CheckAssets(assets)

	known := make(map[string]bool, len(accounts))
	for _, a := range accounts {
		known[a.ID] = true
	}

	// The walk starts from the present-day truth.
	current := CurrentNetWorth(accounts, txs, valid, now)

	start, ok := seriesStart(txs, valid, tr, now)
	if !ok {
		return []NetWorthPoint{{Date: now, Value: current}}
	}

	var events []timelineEvent
	for _, tx := range txs {
		if !known[tx.Account] || tx.Date.Before(start) || tx.Date.After(now) {
			continue
		}
		events = append(events, timelineEvent{on: tx.Date, delta: tx.Amount})
	}
	for _, a := range valid {
		events = append(events, assetEvents(a, start, now)...)
	}

	if len(events) == 0 {
		return []NetWorthPoint{{Date: now, Value: current}}
	}

	// newest first
	sort.SliceStable(events, func(i, j int) bool {
		return events[j].on.Before(events[i].on)
	})

	running := current
	processed := make(map[string]bool)
	var points []NetWorthPoint
	for i := 0; i < len(events); {
		on := events[i].on
		// The point carries the value at the end of that day, before this
		// day's events are undone.
		points = append(points, NetWorthPoint{Date: on, Value: running.Round()})
		for ; i < len(events) && events[i].on == on; i++ {
			ev := events[i]
			if ev.assetID != "" && processed[ev.assetID] {
				continue
			}
			running = running.Sub(ev.delta)
			if ev.purchase {
				processed[ev.assetID] = true
			}
		}
	}

	// back to chronological order
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}

	switch tr {
	case AllTime:
		points = dropLeadingZeros(points)
	case LastMonth:
		points = keepCurrentMonth(points, now)
	}
	if len(points) == 0 {
		return []NetWorthPoint{{Date: now, Value: current}}
	}
	return points
}

// seriesStart returns the start of the reconstruction window, or false when
// there is nothing to reconstruct.
func seriesStart(txs []Tx, assets []Asset, tr TimeRange, now Date) (Date, bool) {
	if months, bounded := tr.Months(); bounded {
		return now.AddMonth(-months), true
	}
	// AllTime reaches back to the earliest recorded activity.
	var earliest Date
	for _, tx := range txs {
		if earliest.IsZero() || tx.Date.Before(earliest) {
			earliest = tx.Date
		}
	}
	for _, a := range assets {
		if earliest.IsZero() || a.PurchaseDate.Before(earliest) {
			earliest = a.PurchaseDate
		}
	}
	return earliest, !earliest.IsZero()
}

// assetEvents expands one asset into its monthly revaluation events within
// [start, now]. The event on the purchase date carries the full initial
// equity; every later monthly mark carries the equity delta from the
// previous mark. One event per unique date.
func assetEvents(a Asset, start, now Date) []timelineEvent {
	if a.PurchaseDate.After(now) {
		return nil
	}
	var events []timelineEvent
	previous := M(0, a.PurchasePrice.Currency())
	for i := 0; ; i++ {
		on := a.PurchaseDate.AddMonth(i)
		if on.After(now) {
			break
		}
		value := a.EquityAt(on)
		if !on.Before(start) {
			events = append(events, timelineEvent{
				on:       on,
				delta:    value.Sub(previous),
				assetID:  a.ID,
				purchase: i == 0,
			})
		}
		previous = value
	}
	return events
}

// dropLeadingZeros removes the flat near-zero prefix an all-time series
// accumulates before the first real activity.
func dropLeadingZeros(points []NetWorthPoint) []NetWorthPoint {
	nearZero := M(0.005, "")
	i := 0
	for i < len(points) {
		v := points[i].Value
		if v.IsNegative() {
			v = v.Neg()
		}
		if !v.LessThan(nearZero) {
			break
		}
		i++
	}
	return points[i:]
}

// keepCurrentMonth restricts points to the calendar month of 'now'.
func keepCurrentMonth(points []NetWorthPoint, now Date) []NetWorthPoint {
	var kept []NetWorthPoint
	for _, p := range points {
		if p.Date.SameMonth(now) {
			kept = append(kept, p)
		}
	}
	return kept
}
