// Package renderer turns the bankroll reports into markdown documents.
//
// It is a pure presentation collaborator: it consumes the report values and
// never touches the ledger, so the ledger stays fully functional when no
// renderer output reaches the user.
package renderer

import "github.com/mverdier/bankroll"

// filterLabel names a type filter for titles.
func filterLabel(f bankroll.TypeFilter) string {
	switch f {
	case bankroll.FilterCash:
		return "Cash Sessions"
	case bankroll.FilterTournament:
		return "Tournaments"
	default:
		return "All Sessions"
	}
}
