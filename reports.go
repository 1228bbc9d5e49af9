package bankroll

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// TypeFilter selects sessions by type for reporting. The zero-ish value
// FilterAll passes everything through.
type TypeFilter string

const (
	FilterAll        TypeFilter = "all"
	FilterCash       TypeFilter = TypeFilter(Cash)
	FilterTournament TypeFilter = TypeFilter(Tournament)
)

// ParseTypeFilter parses a string into a TypeFilter.
func ParseTypeFilter(s string) (TypeFilter, error) {
	switch TypeFilter(s) {
	case FilterAll, FilterCash, FilterTournament:
		return TypeFilter(s), nil
	}
	return "", fmt.Errorf("unknown type filter: %q (want all, cash or tournament)", s)
}

// Matches reports whether the session passes the filter.
func (f TypeFilter) Matches(s Session) bool {
	return f == FilterAll || f == "" || Type(f) == s.Type
}

// SortedView returns the canonical chronological order used by every report:
// a stable sort by date ascending, comparing the ISO date strings lexically
// so an empty date sorts first, tie-broken by creation time ascending.
func SortedView(sessions []Session) []Session {
	view := slices.Clone(sessions)
	slices.SortStableFunc(view, func(a, b Session) int {
		if c := strings.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.CreatedAt, b.CreatedAt)
	})
	return view
}

// FilterByType keeps the sessions passing the filter, preserving order.
// It is applied after sorting.
func FilterByType(sessions []Session, filter TypeFilter) []Session {
	view := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		if filter.Matches(s) {
			view = append(view, s)
		}
	}
	return view
}

// Summary aggregates a session list into its headline statistics.
type Summary struct {
	Count       int
	TotalProfit Money
	TotalBuyIn  Money
	AvgProfit   Money
	ROI         Percent
}

// NewSummary computes the summary of a session list. Averages and ROI are
// zero-guarded: an empty list or a zero total buy-in never yields NaN or
// infinities.
func NewSummary(sessions []Session) Summary {
	var sum Summary
	sum.Count = len(sessions)
	for _, s := range sessions {
		sum.TotalProfit = sum.TotalProfit.Add(s.Profit)
		sum.TotalBuyIn = sum.TotalBuyIn.Add(s.BuyIn)
	}
	if sum.Count > 0 {
		sum.AvgProfit = sum.TotalProfit.divInt(int64(sum.Count))
	} else {
		sum.AvgProfit = Money{cur: sum.TotalProfit.cur}
	}
	if !sum.TotalBuyIn.IsZero() {
		ratio := sum.TotalProfit.Decimal().Div(sum.TotalBuyIn.Decimal())
		sum.ROI = Percent(ratio.InexactFloat64() * 100)
	}
	return sum
}

// Overview carries the all-time summary plus the trailing-window summaries
// over the last 7 and last 30 entries of a sorted, filtered session list.
// The windows are positional slices, not calendar windows.
type Overview struct {
	Filter  TypeFilter
	AllTime Summary
	Last7   Summary
	Last30  Summary
}

// NewOverview computes the windowed summaries of a session list. The list is
// expected in the SortedView order, already filtered.
func NewOverview(sessions []Session, filter TypeFilter) *Overview {
	return &Overview{
		Filter:  filter,
		AllTime: NewSummary(sessions),
		Last7:   NewSummary(lastN(sessions, 7)),
		Last30:  NewSummary(lastN(sessions, 30)),
	}
}

// lastN returns the trailing n entries of the list.
func lastN(sessions []Session, n int) []Session {
	if len(sessions) <= n {
		return sessions
	}
	return sessions[len(sessions)-n:]
}
