package bankroll

import (
	"fmt"
	"time"
)

// DateFormat is the format used to represent session dates in ISO-8601.
const DateFormat = "2006-01-02"

// Type is a typed string distinguishing the kinds of recorded sessions.
type Type string

const (
	Cash       Type = "cash"
	Tournament Type = "tournament"
)

// ParseType parses a string into a session Type.
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case Cash:
		return Cash, nil
	case Tournament:
		return Tournament, nil
	default:
		return "", fmt.Errorf("unknown session type: %q", s)
	}
}

// Session is one recorded poker session with its monetary result.
//
// Profit is always derived from CashOut minus BuyIn; it is recomputed on
// every load and every write and never trusted from storage.
type Session struct {
	ID        string // opaque unique id, immutable after creation
	Date      string // ISO YYYY-MM-DD, or empty; empty sorts as earliest
	Type      Type
	Location  string
	Stake     string // free text stake or buy-in label
	BuyIn     Money
	CashOut   Money
	Profit    Money
	Notes     string
	CreatedAt int64 // epoch milliseconds
	UpdatedAt int64 // epoch milliseconds, zero until first update
}

// SessionInput carries the caller-supplied fields of a session, excluding the
// identity fields the ledger assigns itself (id and createdAt).
type SessionInput struct {
	Date     string
	Type     Type
	Location string
	Stake    string
	BuyIn    Money
	CashOut  Money
	Notes    string
}

// Input returns the session's mutable fields, the seed a form collaborator
// displays when an edit begins.
func (s Session) Input() SessionInput {
	return SessionInput{
		Date:     s.Date,
		Type:     s.Type,
		Location: s.Location,
		Stake:    s.Stake,
		BuyIn:    s.BuyIn,
		CashOut:  s.CashOut,
		Notes:    s.Notes,
	}
}

// apply replaces all mutable fields of the session and recomputes the profit.
func (s *Session) apply(input SessionInput) {
	s.Date = input.Date
	s.Type = input.Type
	if s.Type != Tournament {
		s.Type = Cash
	}
	s.Location = input.Location
	s.Stake = input.Stake
	s.BuyIn = input.BuyIn
	s.CashOut = input.CashOut
	s.Notes = input.Notes
	s.Profit = s.CashOut.Sub(s.BuyIn)
}

// Equal reports whether two sessions carry the same field values.
func (s Session) Equal(o Session) bool {
	return s.ID == o.ID &&
		s.Date == o.Date &&
		s.Type == o.Type &&
		s.Location == o.Location &&
		s.Stake == o.Stake &&
		s.BuyIn.Equal(o.BuyIn) &&
		s.CashOut.Equal(o.CashOut) &&
		s.Profit.Equal(o.Profit) &&
		s.Notes == o.Notes &&
		s.CreatedAt == o.CreatedAt &&
		s.UpdatedAt == o.UpdatedAt
}

// Today returns the current date in DateFormat.
func Today() string { return time.Now().Format(DateFormat) }

func nowMillis() int64 { return time.Now().UnixMilli() }
