package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/mverdier/bankroll"
)

// OverviewMarkdown renders the all-time and trailing-window summaries.
func OverviewMarkdown(o *bankroll.Overview) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Summary, %s", filterLabel(o.Filter)))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Window", "Sessions", "P/L", "Avg", "ROI"},
		Rows: [][]string{
			summaryRow("All time", o.AllTime),
			summaryRow("Last 7", o.Last7),
			summaryRow("Last 30", o.Last30),
		},
	}
	doc.Table(table)

	return doc.String()
}

func summaryRow(label string, s bankroll.Summary) []string {
	return []string{
		label,
		fmt.Sprintf("%d", s.Count),
		s.TotalProfit.SignedString(),
		s.AvgProfit.SignedString(),
		s.ROI.SignedString(),
	}
}
