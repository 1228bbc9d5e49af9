package bankroll

import (
	"strconv"
	"testing"
)

func sessionOn(date string, createdAt int64) Session {
	return Session{ID: "id-" + date + "-" + strconv.FormatInt(createdAt, 10), Date: date, Type: Cash, CreatedAt: createdAt}
}

func TestSortedView(t *testing.T) {
	sessions := []Session{
		sessionOn("2026-02-20", 30),
		sessionOn("", 10),
		sessionOn("2025-12-01", 50),
		sessionOn("2026-02-20", 20),
		sessionOn("", 5),
	}

	view := SortedView(sessions)

	wantOrder := []string{
		"id--5",
		"id--10",
		"id-2025-12-01-50",
		"id-2026-02-20-20",
		"id-2026-02-20-30",
	}
	for i, want := range wantOrder {
		if view[i].ID != want {
			t.Errorf("position %d: got %q, want %q", i, view[i].ID, want)
		}
	}

	// the input order must be untouched
	if sessions[0].ID != "id-2026-02-20-30" {
		t.Error("SortedView() mutated its input")
	}
}

func TestFilterByType(t *testing.T) {
	cash := Session{ID: "c", Type: Cash}
	tournament := Session{ID: "t", Type: Tournament}
	sessions := []Session{cash, tournament}

	testCases := []struct {
		filter TypeFilter
		want   []string
	}{
		{FilterAll, []string{"c", "t"}},
		{FilterCash, []string{"c"}},
		{FilterTournament, []string{"t"}},
	}
	for _, tc := range testCases {
		t.Run(string(tc.filter), func(t *testing.T) {
			got := FilterByType(sessions, tc.filter)
			if len(got) != len(tc.want) {
				t.Fatalf("FilterByType() kept %d sessions, want %d", len(got), len(tc.want))
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Errorf("position %d: got %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestNewSummary_Empty(t *testing.T) {
	sum := NewSummary(nil)
	if sum.Count != 0 {
		t.Errorf("Count = %d, want 0", sum.Count)
	}
	if !sum.TotalProfit.IsZero() || !sum.AvgProfit.IsZero() {
		t.Errorf("TotalProfit = %v, AvgProfit = %v, want both zero", sum.TotalProfit, sum.AvgProfit)
	}
	if !sum.ROI.Equal(0) {
		t.Errorf("ROI = %v, want 0", sum.ROI)
	}
}

func TestNewSummary(t *testing.T) {
	sessions := []Session{
		{BuyIn: M(100, ""), CashOut: M(150, ""), Profit: M(50, "")},
		{BuyIn: M(100, ""), CashOut: M(70, ""), Profit: M(-30, "")},
	}
	sum := NewSummary(sessions)

	if sum.Count != 2 {
		t.Errorf("Count = %d, want 2", sum.Count)
	}
	if want := M(20, ""); !sum.TotalProfit.Equal(want) {
		t.Errorf("TotalProfit = %v, want %v", sum.TotalProfit, want)
	}
	if want := M(10, ""); !sum.AvgProfit.Equal(want) {
		t.Errorf("AvgProfit = %v, want %v", sum.AvgProfit, want)
	}
	// 20 profit on 200 total buy-in
	if !sum.ROI.Equal(10) {
		t.Errorf("ROI = %v, want 10%%", sum.ROI)
	}
}

func TestNewSummary_ZeroBuyInGuardsROI(t *testing.T) {
	sessions := []Session{{BuyIn: M(0, ""), CashOut: M(50, ""), Profit: M(50, "")}}
	if sum := NewSummary(sessions); !sum.ROI.Equal(0) {
		t.Errorf("ROI = %v, want 0 when total buy-in is 0", sum.ROI)
	}
}

func TestNewOverview_Windows(t *testing.T) {
	// 40 sessions of profit 1 each; windows slice by position, not calendar.
	sessions := make([]Session, 40)
	for i := range sessions {
		sessions[i] = Session{Profit: M(1, "")}
	}
	o := NewOverview(sessions, FilterAll)

	if o.AllTime.Count != 40 {
		t.Errorf("AllTime.Count = %d, want 40", o.AllTime.Count)
	}
	if o.Last7.Count != 7 || !o.Last7.TotalProfit.Equal(M(7, "")) {
		t.Errorf("Last7 = %d sessions with %v, want 7 with 7", o.Last7.Count, o.Last7.TotalProfit)
	}
	if o.Last30.Count != 30 || !o.Last30.TotalProfit.Equal(M(30, "")) {
		t.Errorf("Last30 = %d sessions with %v, want 30 with 30", o.Last30.Count, o.Last30.TotalProfit)
	}
}

func TestNewOverview_ShortList(t *testing.T) {
	sessions := []Session{{Profit: M(5, "")}, {Profit: M(7, "")}}
	o := NewOverview(sessions, FilterAll)
	if o.Last7.Count != 2 || o.Last30.Count != 2 {
		t.Errorf("window counts = %d/%d, want 2/2", o.Last7.Count, o.Last30.Count)
	}
}

func TestStakeBreakdown(t *testing.T) {
	sessions := []Session{
		{Stake: "1/2", Profit: M(50, "")},
		{Stake: "", Profit: M(-10, "")},
		{Stake: "2/5", Profit: M(100, "")},
		{Stake: "1/2", Profit: M(-20, "")},
	}

	groups := StakeBreakdown(sessions)

	want := []StakeProfit{
		{Stake: "1/2", Sessions: 2, Profit: M(30, "")},
		{Stake: UnknownStake, Sessions: 1, Profit: M(-10, "")},
		{Stake: "2/5", Sessions: 1, Profit: M(100, "")},
	}
	if len(groups) != len(want) {
		t.Fatalf("StakeBreakdown() returned %d groups, want %d", len(groups), len(want))
	}
	for i, w := range want {
		g := groups[i]
		if g.Stake != w.Stake || g.Sessions != w.Sessions || !g.Profit.Equal(w.Profit) {
			t.Errorf("group %d = %+v, want %+v", i, g, w)
		}
	}
}

func TestBankrollSeries(t *testing.T) {
	sessions := []Session{
		{Date: "2026-01-01", Profit: M(50, "")},
		{Date: "2026-01-02", Profit: M(-30, "")},
		{Date: "2026-01-03", Profit: M(80, "")},
	}

	points := BankrollSeries(sessions)

	wantTotals := []Money{M(50, ""), M(20, ""), M(100, "")}
	if len(points) != len(wantTotals) {
		t.Fatalf("BankrollSeries() returned %d points, want %d", len(points), len(wantTotals))
	}
	for i, want := range wantTotals {
		if !points[i].Total.Equal(want) {
			t.Errorf("point %d: Total = %v, want %v", i, points[i].Total, want)
		}
	}
}

func TestParseTypeFilter(t *testing.T) {
	for _, valid := range []string{"all", "cash", "tournament"} {
		if _, err := ParseTypeFilter(valid); err != nil {
			t.Errorf("ParseTypeFilter(%q) failed: %v", valid, err)
		}
	}
	if _, err := ParseTypeFilter("mtt"); err == nil {
		t.Error("ParseTypeFilter(\"mtt\") should fail")
	}
}
