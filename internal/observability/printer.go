// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/hiring-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 64
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExplanationReport outputs a human-readable breakdown of one
// candidate's evaluation: the score waterfall, top evidence, skill gaps,
// counterfactuals, and the final decision.
func (p *Printer) PrintExplanationReport(report *types.ExplanationReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	name := report.CandidateName
	if name == "" {
		name = report.CandidateID
	}
	sb.WriteString(fmt.Sprintf("Candidate:  %s\n", name))
	sb.WriteString(fmt.Sprintf("Composite:  %.4f\n", report.Composite))
	sb.WriteString(fmt.Sprintf("Decision:   %s (%s)\n", report.Decision.Action, report.Decision.Rule))
	sb.WriteString(fmt.Sprintf("Confidence: %s (variance %.4f)\n", report.Confidence, report.Variance))
	sb.WriteString("\n")

	sb.WriteString("Score waterfall:\n")
	for _, step := range report.Waterfall {
		sb.WriteString(fmt.Sprintf("  %-22s %+.4f  → %.4f\n", step.Feature, step.Contribution, step.RunningTotal))
	}

	if len(report.TopMatches) > 0 {
		sb.WriteString("\nTop matched requirements:\n")
		count := min(len(report.TopMatches), maxItemsToShow)
		for i := 0; i < count; i++ {
			m := report.TopMatches[i]
			sb.WriteString(fmt.Sprintf("  %.2f  %s\n", m.Similarity, m.Requirement))
		}
	}

	if len(report.SkillGaps) > 0 {
		sb.WriteString("\nSkill gaps:\n")
		count := min(len(report.SkillGaps), maxItemsToShow)
		for i := 0; i < count; i++ {
			gap := report.SkillGaps[i]
			sb.WriteString(fmt.Sprintf("  • %s (best %.2f)\n", gap.Requirement, gap.BestSimilarity))
		}
		if len(report.SkillGaps) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.SkillGaps)-maxItemsToShow))
		}
	}

	if len(report.Counterfactuals) > 0 {
		sb.WriteString("\nWhat would change the decision:\n")
		for _, cf := range report.Counterfactuals {
			sb.WriteString(fmt.Sprintf("  %s %+.2f → %s\n", cf.Feature, cf.Delta, cf.Action))
		}
	} else {
		sb.WriteString("\nNo single-score change flips this decision.\n")
	}

	p.printBox("CANDIDATE EVALUATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs the batch ranking with tiers and the decision
// histogram.
func (p *Printer) PrintRanking(ranking *types.Ranking) {
	if ranking == nil || len(ranking.Ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates ranked: %d\n", len(ranking.Ranked)))
	if ranking.Failed > 0 {
		sb.WriteString(fmt.Sprintf("Failed:            %d\n", ranking.Failed))
	}
	sb.WriteString("\n")

	for _, rc := range ranking.Ranked {
		name := rc.CandidateName
		if name == "" {
			name = rc.CandidateID
		}
		sb.WriteString(fmt.Sprintf("#%-3d %-20s %.4f  %-9s %s\n", rc.Rank, name, rc.Composite, rc.Tier, rc.Action))
	}

	sb.WriteString("\nDecisions:\n")
	for _, action := range types.Actions {
		sb.WriteString(fmt.Sprintf("  %-22s %d\n", action, ranking.ActionCounts[action]))
	}

	p.printBox("BATCH RANKING", strings.TrimSuffix(sb.String(), "\n"))
}
