package toolkit

import (
	"reflect"
	"strings"
	"testing"
)

func TestExecSummaryOutline(t *testing.T) {
	goal := "Cut costs 30%"
	outline := ExecSummaryOutline(goal, "finance")

	if outline.Audience != "finance" {
		t.Errorf("expected audience 'finance', got %q", outline.Audience)
	}
	if outline.Goal != goal {
		t.Errorf("expected goal echoed, got %q", outline.Goal)
	}
	if len(outline.Sections) != 5 {
		t.Fatalf("expected exactly 5 sections, got %d", len(outline.Sections))
	}

	wantHeadings := []string{
		"1. Context & Objectives",
		"2. Key Cost Drivers",
		"3. Recommended Optimization Levers",
		"4. Impact & Timeline",
		"5. Next Steps",
	}
	for i, section := range outline.Sections {
		if section.Heading != wantHeadings[i] {
			t.Errorf("section %d: expected heading %q, got %q", i, wantHeadings[i], section.Heading)
		}
		if len(section.Bullets) == 0 {
			t.Errorf("section %d: expected bullets", i)
		}
	}

	// O goal aparece literalmente nos bullets da primeira seção
	found := false
	for _, bullet := range outline.Sections[0].Bullets {
		if strings.Contains(bullet, goal) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected goal %q verbatim in section 1 bullets: %v", goal, outline.Sections[0].Bullets)
	}
}

func TestExecSummaryOutlineDefaultAudience(t *testing.T) {
	outline := ExecSummaryOutline("Reduce EC2 spend", "")
	if outline.Audience != "cxo" {
		t.Errorf("expected default audience 'cxo', got %q", outline.Audience)
	}
}

func TestExecSummaryOutlineDeterministic(t *testing.T) {
	first := ExecSummaryOutline("goal", "engineering")
	second := ExecSummaryOutline("goal", "engineering")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical outlines for identical inputs")
	}
}
