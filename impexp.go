package bankroll

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// this file contains functions to move sessions in and out of the ledger's
// own format. Imports are forgiving, exports should remain human readable.

// ImportSessions reads an arbitrary JSON document from r, selects the list
// of session-shaped records with the given jsonpath (use "$" when the
// document is the list itself), sanitizes each record and records it in the
// ledger as a new session. It returns the number of sessions created.
//
// Imported records go through the regular create path, so they get fresh ids
// and creation timestamps; importing the same file twice duplicates its
// sessions.
func ImportSessions(l *Ledger, r io.Reader, path string) (int, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return 0, fmt.Errorf("cannot parse import document: %w", err)
	}

	if path == "" {
		path = "$"
	}
	selected, err := jsonpath.Get(path, doc)
	if err != nil {
		return 0, fmt.Errorf("cannot select %q in import document: %w", path, err)
	}

	list, ok := selected.([]any)
	if !ok {
		return 0, fmt.Errorf("path %q does not select a list of sessions", path)
	}

	for _, element := range list {
		s := Sanitize(element)
		l.Create(s.Input())
	}
	return len(list), nil
}

// ExportCSV writes the given sessions as CSV with a header row. Amounts are
// written as plain decimals, not display-formatted.
func ExportCSV(w io.Writer, sessions []Session) error {
	cw := csv.NewWriter(w)
	header := []string{"id", "date", "type", "location", "stake", "buyIn", "cashOut", "profit", "notes"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, s := range sessions {
		record := []string{
			s.ID,
			s.Date,
			string(s.Type),
			s.Location,
			s.Stake,
			s.BuyIn.Decimal().String(),
			s.CashOut.Decimal().String(),
			s.Profit.Decimal().String(),
			s.Notes,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

