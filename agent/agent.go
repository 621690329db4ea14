// Package agent implements the interactive AI risk analyst over a
// positions snapshot, backed by Gemini.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hedgefolio/hedgefolio"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

const systemInstruction = `
You are a DeFi risk analyst. The user runs a delta-neutral style book:
lending positions on a money market hedged with perpetual futures.

Pull the reports you need through the available tools before answering.
Ground every number you quote in a report; never invent figures. Keep
answers short and concrete: name the asset, the number, and what to do
about it. A health factor under 1.5, an unhedged directional exposure,
or a negative combined APY are the things worth flagging first.
`

// Agent is the AI analyst chat session.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	library Library
	config  *genai.GenerateContentConfig
	chat    *genai.Chat
}

// New creates an analyst over a snapshot. Output goes to 'w' (e.g.
// os.Stdout), user input is read from 'r' (e.g. os.Stdin).
func New(w io.Writer, r io.Reader, s *hedgefolio.Snapshot, symbols hedgefolio.SymbolTable) *Agent {
	functions := ReportFunctions(s, symbols)
	return &Agent{
		w:       w,
		r:       bufio.NewReader(r),
		library: NewLibrary(functions),
		config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(functions)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
		},
	}
}

// Start creates the underlying chat.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, model, a.config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends one message and resolves function calls until the model
// produces a real answer.
func (a *Agent) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := a.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from the analyst")
	}
	part0 := resp.Candidates[0].Content.Parts[0]
	if part0.FunctionCall != nil {
		fresp := a.library(ctx, part0.FunctionCall)
		// Feed the report back and ask again until a real answer comes out.
		return a.Ask(ctx, &genai.Part{FunctionResponse: fresp})
	}
	return resp.Candidates[0].Content, nil
}

const prompt = "analyst> "

// Run starts the interactive REPL session. Initial prompts, if any, are
// consumed before reading from the user.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to the hfo risk analyst. Type 'bye' to exit.")

	// REPL loop
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

		content, err := a.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, content.Parts[0].Text)
	}
}
