// Package agent implements the `bkr assist` coach, a Gemini chat grounded in
// the ledger's own reports. It never mutates the ledger.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w     io.Writer
	r     *bufio.Reader
	Coach *Expert
}

// New creates a new Agent writing its output to w and reading user input
// from r.
func New(w io.Writer, r io.Reader, coach *Expert) *Agent {
	return &Agent{
		w:     w,
		r:     bufio.NewReader(r),
		Coach: coach,
	}
}

const prompt = "assist> "

// Run starts the interactive REPL session for the agent. The prompts are
// flushed first, then input is read from the reader until EOF or "bye".
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if err := a.Coach.Start(ctx, client); err != nil {
		return err
	}

	fmt.Fprintln(a.w, "Welcome to bkr assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		content, err := a.Coach.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, content.Parts[0].Text)
	}
}
