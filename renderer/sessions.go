package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/mverdier/bankroll"
)

// SessionsMarkdown renders the session log, most recent first. The input is
// expected in the chronological SortedView order.
func SessionsMarkdown(sessions []bankroll.Session) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Session Log")
	if len(sessions) == 0 {
		doc.PlainText("No sessions yet. Record your first one with `bkr add`.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Type", "Location", "Stake", "Buy-in", "Cash-out", "P/L"},
		Rows:   [][]string{},
	}
	// newest entries on top
	for i := len(sessions) - 1; i >= 0; i-- {
		s := sessions[i]
		table.Rows = append(table.Rows, []string{
			s.Date,
			string(s.Type),
			s.Location,
			s.Stake,
			s.BuyIn.String(),
			s.CashOut.String(),
			s.Profit.SignedString(),
		})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("%d sessions.", len(sessions)))

	return doc.String()
}
