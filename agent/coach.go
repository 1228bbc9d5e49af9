package agent

import (
	"context"

	"google.golang.org/genai"

	"github.com/mverdier/bankroll"
	"github.com/mverdier/bankroll/renderer"
)

const model = "gemini-2.5-pro"

// NewCoach creates the bankroll coach expert. Its tools read the ledger
// through the same report functions the CLI renders, so every figure it
// quotes comes from the user's actual results.
func NewCoach(l *bankroll.Ledger) *Expert {
	lib := tools(l)
	return &Expert{
		Name: "Coach",
		Description: `The bankroll coach. It knows the user's recorded poker sessions
		and their derived statistics, and helps the user reason about their results.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a poker bankroll coach. The user's recorded sessions are
			available through the Tools: an overall summary with trailing windows,
			the profit grouped by stake, and the cumulative bankroll trajectory.

			Always read the relevant report before quoting a figure; never invent
			results. Be honest about variance and sample size: a few dozen
			sessions prove very little. Never give financial advice beyond
			bankroll discipline.
		`}}},
		},
		Library: NewLibrary(lib),
	}
}

// tools exposes the ledger's reports as callable functions. Every tool works
// on the same sorted, filtered view the CLI reports use.
func tools(l *bankroll.Ledger) []Function {
	view := func(filter string) []bankroll.Session {
		f, err := bankroll.ParseTypeFilter(filter)
		if err != nil {
			f = bankroll.FilterAll
		}
		return bankroll.FilterByType(bankroll.SortedView(l.ListAll()), f)
	}

	filterParam := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"filter": {
				Type:        genai.TypeString,
				Description: "Session type filter: all, cash or tournament. Defaults to all.",
			},
		},
	}

	result := func(id, name, output string) *genai.FunctionResponse {
		return &genai.FunctionResponse{
			ID:       id,
			Name:     name,
			Response: map[string]any{"output": output},
		}
	}

	return []Function{
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name: "Summary",
				Description: `Summary reports the session count, total profit, average profit
				and ROI over all time and over the last 7 and last 30 sessions.`,
				Parameters: filterParam,
			},
			Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
				filter, _ := args["filter"].(string)
				sessions := view(filter)
				o := bankroll.NewOverview(sessions, bankroll.TypeFilter(filter))
				return result(id, "Summary", renderer.OverviewMarkdown(o))
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Stakes",
				Description: `Stakes reports the profit grouped by stake label.`,
				Parameters:  filterParam,
			},
			Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
				filter, _ := args["filter"].(string)
				return result(id, "Stakes", renderer.StakesMarkdown(bankroll.StakeBreakdown(view(filter))))
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Bankroll",
				Description: `Bankroll reports the cumulative profit trajectory, one point per session.`,
				Parameters:  filterParam,
			},
			Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
				filter, _ := args["filter"].(string)
				return result(id, "Bankroll", renderer.BankrollMarkdown(bankroll.BankrollSeries(view(filter))))
			},
		},
	}
}
