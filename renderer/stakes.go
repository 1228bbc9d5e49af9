package renderer

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/mverdier/bankroll"
)

const barWidth = 20

// StakesMarkdown renders the profit grouped by stake, with a text bar chart
// scaled to the largest absolute profit.
func StakesMarkdown(groups []bankroll.StakeProfit) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Profit by Stake")
	if len(groups) == 0 {
		doc.PlainText("No sessions yet.")
		return doc.String()
	}

	var max float64
	for _, g := range groups {
		if abs := math.Abs(g.Profit.InexactFloat64()); abs > max {
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
		Header: []string{"Stake", "Sessions", "P/L", ""},
		Rows:   [][]string{},
	}
	for _, g := range groups {
		table.Rows = append(table.Rows, []string{
			g.Stake,
			fmt.Sprintf("%d", g.Sessions),
			g.Profit.SignedString(),
			bar(g.Profit.InexactFloat64(), max),
		})
	}
	doc.Table(table)

	return doc.String()
}

// bar draws a signed text bar scaled against the largest value.
func bar(value, max float64) string {
	if max == 0 {
		return ""
	}
	n := int(math.Round(math.Abs(value) / max * barWidth))
	if n == 0 && value != 0 {
		n = 1
	}
	if value < 0 {
		return strings.Repeat("▒", n)
	}
	return strings.Repeat("█", n)
}
