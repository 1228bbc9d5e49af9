package bankroll

// Editor tracks which session, if any, is being edited. It is a two-state
// machine: idle, or editing one existing session by id.
//
// Submitting while editing updates that session and returns to idle;
// submitting while idle creates a new session. If the edited session is
// deleted from outside the edit flow, the editor falls back to idle on the
// ledger's change notification, so it never references a nonexistent id.
type Editor struct {
	ledger  *Ledger
	editing string // empty when idle
}

// NewEditor creates an idle editor bound to the ledger.
func NewEditor(l *Ledger) *Editor {
	e := &Editor{ledger: l}
	l.Subscribe(e.sync)
	return e
}

// Editing returns the id of the session being edited, if any.
func (e *Editor) Editing() (string, bool) {
	return e.editing, e.editing != ""
}

// StartEdit begins editing the session with the given id and returns its
// current values as the form seed. An unknown id is a no-op and leaves the
// editor idle.
func (e *Editor) StartEdit(id string) (SessionInput, bool) {
	s, ok := e.ledger.Get(id)
	if !ok {
		return SessionInput{}, false
	}
	e.editing = id
	return s.Input(), true
}

// Submit dispatches the input to the ledger: an update of the session being
// edited, or a creation when idle. The editor is idle afterwards either way.
func (e *Editor) Submit(input SessionInput) Session {
	if id, ok := e.Editing(); ok {
		e.editing = ""
		s, _ := e.ledger.Update(id, input)
		return s
	}
	return e.ledger.Create(input)
}

// Cancel discards the pending edit without touching the ledger.
func (e *Editor) Cancel() {
	e.editing = ""
}

// sync drops the pending edit when its session no longer exists.
func (e *Editor) sync() {
	if e.editing != "" && !e.ledger.Has(e.editing) {
		e.editing = ""
	}
}
