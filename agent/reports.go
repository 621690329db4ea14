package agent

import (
	"context"

	"github.com/hedgefolio/hedgefolio"
	"github.com/hedgefolio/hedgefolio/renderer"
	"google.golang.org/genai"
)

// reportFunc exposes one rendered report to the model. The snapshot is
// captured once per session; the analyst always reasons over the same
// immutable batch the user is looking at.
type reportFunc struct {
	name        string
	description string
	render      func() string
}

// ReportFunctions builds the analyst's library over a snapshot: one
// function per report, each returning markdown.
func ReportFunctions(s *hedgefolio.Snapshot, symbols hedgefolio.SymbolTable) []*reportFunc {
	analysis := hedgefolio.AnalyzeExposure(s.Lending)
	return []*reportFunc{
		{
			name:        "get_exposure_report",
			description: "Lending book solvency: totals, health factor, leverage, utilization, net APY, per-asset breakdown and looped positions.",
			render: func() string {
				return renderer.ExposureMarkdown(analysis)
			},
		},
		{
			name:        "get_hedge_report",
			description: "Cross-protocol hedge analysis: per-asset lending vs perp legs, hedge ratios, effectiveness buckets, portfolio totals and blended APY.",
			render: func() string {
				return renderer.HedgeMarkdown(hedgefolio.AnalyzeHedge(s.Lending, s.Hedge, s.Prices, symbols))
			},
		},
		{
			name:        "get_greeks_report",
			description: "Simplified sensitivities: directional USD delta per asset, leverage, +1pp borrow-rate shock cost, and net carry projections.",
			render: func() string {
				return renderer.GreeksMarkdown(hedgefolio.CalculateGreeks(s.Lending, analysis))
			},
		},
	}
}

func (f *reportFunc) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        f.name,
		Description: f.description,
		Parameters: &genai.Schema{
			Type:       genai.TypeObject,
			Properties: map[string]*genai.Schema{},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "The report rendered as markdown.",
		},
	}
}

func (f *reportFunc) Call(_ context.Context, id string, _ map[string]any) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     f.name,
		Response: map[string]any{"output": f.render()},
	}
}
