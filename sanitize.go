package bankroll

import (
	"encoding/json"
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sanitize normalizes an arbitrary decoded value into a valid Session. It
// accepts anything, including nil, non-objects and partially typed objects,
// and never fails: every field falls back to its default independently.
//
// This is what makes the ledger resilient to corrupted, hand-edited, or
// partially-upgraded persisted data, such as records written before the
// updatedAt field existed.
func Sanitize(raw any) Session {
	safe, ok := raw.(map[string]any)
	if !ok {
		safe = map[string]any{}
	}

	buyIn := coerceAmount(safe["buyIn"])
	cashOut := coerceAmount(safe["cashOut"])

	s := Session{
		ID:        stringOr(safe["id"], ""),
		Date:      stringOr(safe["date"], ""),
		Type:      Cash,
		Location:  textOr(safe["location"]),
		Stake:     textOr(safe["stake"]),
		BuyIn:     Money{value: buyIn},
		CashOut:   Money{value: cashOut},
		Profit:    Money{value: cashOut.Sub(buyIn)},
		Notes:     textOr(safe["notes"]),
		CreatedAt: coerceMillis(safe["createdAt"]),
		UpdatedAt: coerceMillis(safe["updatedAt"]),
	}
	if safe["sessionType"] == string(Tournament) {
		s.Type = Tournament
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return s
}

// stringOr keeps v if it is a non-empty string.
func stringOr(v any, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

// textOr keeps v if it is a string, including the empty one.
func textOr(v any) string {
	s, _ := v.(string)
	return s
}

// coerceAmount turns an arbitrary decoded value into a finite decimal,
// defaulting to zero. Numbers and numeric strings coerce; everything else
// does not.
func coerceAmount(v any) decimal.Decimal {
	switch n := v.(type) {
	case json.Number:
		if d, err := decimal.NewFromString(n.String()); err == nil {
			return d
		}
	case float64:
		if !math.IsNaN(n) && !math.IsInf(n, 0) {
			return decimal.NewFromFloat(n)
		}
	case float32:
		if !math.IsNaN(float64(n)) && !math.IsInf(float64(n), 0) {
			return decimal.NewFromFloat32(n)
		}
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case string:
		if d, err := decimal.NewFromString(n); err == nil {
			return d
		}
	}
	return decimal.Zero
}

// coerceMillis turns an arbitrary decoded value into an epoch-millisecond
// timestamp, defaulting to zero.
func coerceMillis(v any) int64 {
	return coerceAmount(v).IntPart()
}
