package bankroll

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"
)

func TestSanitize_NeverFails(t *testing.T) {
	testCases := []struct {
		name string
		raw  any
	}{
		{name: "nil", raw: nil},
		{name: "string", raw: "not a session"},
		{name: "number", raw: 42.0},
		{name: "bool", raw: true},
		{name: "array", raw: []any{"a", "b"}},
		{name: "empty object", raw: map[string]any{}},
		{name: "wrongly typed fields", raw: map[string]any{
			"id":          12,
			"date":        nil,
			"sessionType": []any{"tournament"},
			"location":    7.5,
			"stake":       false,
			"buyIn":       "garbage",
			"cashOut":     map[string]any{},
			"notes":       3,
			"createdAt":   "later",
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := Sanitize(tc.raw)
			if s.ID == "" {
				t.Error("Sanitize() returned an empty id")
			}
			if s.Type != Cash {
				t.Errorf("Type = %q, want %q", s.Type, Cash)
			}
			if !s.BuyIn.IsZero() || !s.CashOut.IsZero() || !s.Profit.IsZero() {
				t.Errorf("amounts = %v/%v/%v, want all zero", s.BuyIn, s.CashOut, s.Profit)
			}
			if s.Date != "" || s.Location != "" || s.Stake != "" || s.Notes != "" {
				t.Error("text fields should default to empty strings")
			}
			if s.CreatedAt != 0 || s.UpdatedAt != 0 {
				t.Errorf("timestamps = %d/%d, want 0/0", s.CreatedAt, s.UpdatedAt)
			}
		})
	}
}

func TestSanitize_PerFieldRules(t *testing.T) {
	raw := map[string]any{
		"id":          "abc",
		"date":        "2026-02-20",
		"sessionType": "tournament",
		"location":    "Home game",
		"stake":       "1/2",
		"buyIn":       json.Number("100"),
		"cashOut":     json.Number("150.50"),
		"profit":      json.Number("9999"), // stored profit is never trusted
		"notes":       "",
		"createdAt":   json.Number("1700000000000"),
		"updatedAt":   json.Number("1700000000001"),
	}

	s := Sanitize(raw)

	if s.ID != "abc" {
		t.Errorf("ID = %q, want %q", s.ID, "abc")
	}
	if s.Date != "2026-02-20" {
		t.Errorf("Date = %q, want %q", s.Date, "2026-02-20")
	}
	if s.Type != Tournament {
		t.Errorf("Type = %q, want %q", s.Type, Tournament)
	}
	if s.Location != "Home game" || s.Stake != "1/2" || s.Notes != "" {
		t.Errorf("text fields = %q/%q/%q", s.Location, s.Stake, s.Notes)
	}
	if want := M(50.50, ""); !s.Profit.Equal(want) {
		t.Errorf("Profit = %v, want %v", s.Profit, want)
	}
	if s.CreatedAt != 1700000000000 || s.UpdatedAt != 1700000000001 {
		t.Errorf("timestamps = %d/%d", s.CreatedAt, s.UpdatedAt)
	}
}

func TestSanitize_TypeIsExactMatchOnly(t *testing.T) {
	testCases := []struct {
		raw  any
		want Type
	}{
		{map[string]any{"sessionType": "tournament"}, Tournament},
		{map[string]any{"sessionType": "Tournament"}, Cash},
		{map[string]any{"sessionType": "cash"}, Cash},
		{map[string]any{"sessionType": "mtt"}, Cash},
		{map[string]any{}, Cash},
	}
	for _, tc := range testCases {
		if got := Sanitize(tc.raw).Type; got != tc.want {
			t.Errorf("Sanitize(%v).Type = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestSanitize_NumericCoercion(t *testing.T) {
	testCases := []struct {
		name string
		in   any
		want float64
	}{
		{"json number", json.Number("12.5"), 12.5},
		{"float", 99.0, 99},
		{"negative finite", -30.0, -30},
		{"numeric string", "7.25", 7.25},
		{"non numeric string", "a lot", 0},
		{"NaN", math.NaN(), 0},
		{"positive infinity", math.Inf(1), 0},
		{"negative infinity", math.Inf(-1), 0},
		{"nil", nil, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := Sanitize(map[string]any{"buyIn": tc.in})
			if got := s.BuyIn.InexactFloat64(); got != tc.want {
				t.Errorf("buyIn coerced to %v, want %v", got, tc.want)
			}
		})
	}
}

// TestSanitize_RoundTrip checks that a sanitized session survives a trip
// through the persisted format unchanged.
func TestSanitize_RoundTrip(t *testing.T) {
	s := Sanitize(map[string]any{
		"id":          "round-trip",
		"date":        "2025-11-02",
		"sessionType": "tournament",
		"stake":       "50 MTT",
		"buyIn":       json.Number("50"),
		"cashOut":     json.Number("175"),
		"createdAt":   json.Number("1730000000000"),
	})

	var buf bytes.Buffer
	if err := EncodeSessions(&buf, []Session{s}); err != nil {
		t.Fatalf("EncodeSessions() failed: %v", err)
	}
	got := DecodeSessions(&buf, "")
	if len(got) != 1 {
		t.Fatalf("DecodeSessions() returned %d sessions, want 1", len(got))
	}
	if !got[0].Equal(s) {
		t.Errorf("round trip changed the session:\n got %+v\nwant %+v", got[0], s)
	}
}
