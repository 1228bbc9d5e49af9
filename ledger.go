package bankroll

import (
	"iter"
	"log"
	"slices"

	"github.com/google/uuid"
)

// Ledger is the authoritative in-memory collection of sessions.
//
// The ledger owns the insertion-ordered canonical list; chronological
// ordering is a presentation concern resolved by the report functions. When a
// store is attached, every mutation persists the whole list and then notifies
// the registered subscribers.
type Ledger struct {
	name        string
	currency    string
	sessions    []Session
	store       Store
	subscribers []func()
}

// NewLedger creates an empty ledger with no attached store.
func NewLedger() *Ledger {
	return &Ledger{sessions: make([]Session, 0)}
}

// Name returns the ledger's name.
func (l *Ledger) Name() string { return l.name }

// Currency returns the ledger's display currency.
func (l *Ledger) Currency() string { return l.currency }

// Subscribe registers a callback invoked after every mutation. This is how
// presentation layers re-derive their views instead of being driven from
// inside the mutation code.
func (l *Ledger) Subscribe(fn func()) {
	l.subscribers = append(l.subscribers, fn)
}

// Len returns the number of sessions in the ledger.
func (l *Ledger) Len() int { return len(l.sessions) }

// Get returns the session with the given id.
func (l *Ledger) Get(id string) (Session, bool) {
	for _, s := range l.sessions {
		if s.ID == id {
			return s, true
		}
	}
	return Session{}, false
}

// Has reports whether a session with the given id exists.
func (l *Ledger) Has(id string) bool {
	_, ok := l.Get(id)
	return ok
}

// Sessions iterates over the canonical unsorted session list.
func (l *Ledger) Sessions() iter.Seq[Session] {
	return slices.Values(l.sessions)
}

// ListAll returns a copy of the canonical unsorted session list.
func (l *Ledger) ListAll() []Session {
	return slices.Clone(l.sessions)
}

// Create records a new session from the caller-supplied fields. The ledger
// assigns a fresh unique id and the creation timestamp, derives the profit,
// and persists.
func (l *Ledger) Create(input SessionInput) Session {
	var s Session
	s.apply(input)
	s.ID = uuid.NewString()
	s.CreatedAt = nowMillis()
	s.stamp(l.currency)
	l.sessions = append(l.sessions, s)
	l.changed()
	return s
}

// Update replaces all mutable fields of the session with the given id,
// derives the profit again and refreshes the update timestamp. An unknown id
// is a silent no-op, consistent with the sanitizer's posture.
func (l *Ledger) Update(id string, input SessionInput) (Session, bool) {
	for i := range l.sessions {
		if l.sessions[i].ID != id {
			continue
		}
		l.sessions[i].apply(input)
		l.sessions[i].UpdatedAt = nowMillis()
		l.sessions[i].stamp(l.currency)
		s := l.sessions[i]
		l.changed()
		return s, true
	}
	return Session{}, false
}

// Delete removes the session with the given id. An unknown id is a silent
// no-op.
func (l *Ledger) Delete(id string) bool {
	for i := range l.sessions {
		if l.sessions[i].ID == id {
			l.sessions = slices.Delete(l.sessions, i, i+1)
			l.changed()
			return true
		}
	}
	return false
}

// Normalize rewrites the session list in the report order and persists it.
func (l *Ledger) Normalize() {
	l.sessions = SortedView(l.sessions)
	l.changed()
}

// replace swaps the whole session list, used by load and canonicalization.
func (l *Ledger) replace(sessions []Session) {
	l.sessions = sessions
	for i := range l.sessions {
		l.sessions[i].stamp(l.currency)
	}
}

// stamp aligns the session's amounts with the ledger's display currency.
func (s *Session) stamp(currency string) {
	if currency == "" {
		return
	}
	s.BuyIn = s.BuyIn.In(currency)
	s.CashOut = s.CashOut.In(currency)
	s.Profit = s.Profit.In(currency)
}

// changed persists the whole ledger and notifies subscribers. Persistence
// failures are logged, never raised: by contract no ledger operation fails.
func (l *Ledger) changed() {
	if l.store != nil {
		if err := l.store.SaveAll(l.sessions); err != nil {
			log.Printf("could not save ledger %q: %v", l.name, err)
		}
	}
	for _, fn := range l.subscribers {
		fn()
	}
}
