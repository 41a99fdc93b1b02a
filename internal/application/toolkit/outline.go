package toolkit

import (
	"fmt"

	"github.com/diillson/optiscale-go/internal/domain/entity"
	"github.com/diillson/optiscale-go/internal/shared/types"
)

// ExecSummaryOutline builds the fixed five-section outline of an
// executive summary for the given goal and audience. The goal text is
// embedded verbatim; audience falls back to the application default
// when empty. Deterministic, no failure modes.
func ExecSummaryOutline(goal, audience string) *entity.SummaryOutline {
	if audience == "" {
		audience = types.DefaultAudience
	}

	return &entity.SummaryOutline{
		Title:    "Cloud Cost Optimization – Executive Summary",
		Audience: audience,
		Goal:     goal,
		Sections: []entity.OutlineSection{
			{
				Heading: "1. Context & Objectives",
				Bullets: []string{
					"Briefly describe current cloud cost baseline and growth trend.",
					fmt.Sprintf("State the primary goal: %s", goal),
					"Clarify time horizon and acceptable risk/constraints.",
				},
			},
			{
				Heading: "2. Key Cost Drivers",
				Bullets: []string{
					"Top 5 services/projects contributing to spend.",
					"Patterns by environment (prod, non-prod) and region.",
					"Any anomalous spikes or waste patterns detected.",
				},
			},
			{
				Heading: "3. Recommended Optimization Levers",
				Bullets: []string{
					"Rightsizing and decommissioning opportunities.",
					"Commitment-based discounts (Savings Plans / CUDs / Reservations).",
					"Storage and data transfer optimizations.",
					"Governance and tagging improvements.",
				},
			},
			{
				Heading: "4. Impact & Timeline",
				Bullets: []string{
					"Estimated monthly and annual savings (ranges).",
					"Phased rollout plan (Phase 1, 2, 3).",
					"Risks, dependencies, and owners.",
				},
			},
			{
				Heading: "5. Next Steps",
				Bullets: []string{
					"Decision points required from leadership.",
					"Initial actions for engineering / platform teams.",
					"How success will be tracked and reported.",
				},
			},
		},
	}
}
