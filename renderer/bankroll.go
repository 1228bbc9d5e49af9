package renderer

import (
	"bytes"
	"math"

	md "github.com/nao1215/markdown"

	"github.com/mverdier/bankroll"
)

// BankrollMarkdown renders the cumulative bankroll trajectory, one row per
// session in chronological order, with a text bar following the running
// total.
func BankrollMarkdown(points []bankroll.BankrollPoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Cumulative Bankroll")
	if len(points) == 0 {
		doc.PlainText("No sessions yet.")
		return doc.String()
	}

	var max float64
	for _, p := range points {
		if abs := math.Abs(p.Total.InexactFloat64()); abs > max {
			max = abs
		}
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
		},
		Header: []string{"Date", "P/L", "Bankroll", ""},
		Rows:   [][]string{},
	}
	for _, p := range points {
		table.Rows = append(table.Rows, []string{
			p.Date,
			p.Profit.SignedString(),
			p.Total.String(),
			bar(p.Total.InexactFloat64(), max),
		})
	}
	doc.Table(table)

	return doc.String()
}
