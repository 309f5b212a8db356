// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/24durgaprasad/HireSense-AI/internal/engine"
	"github.com/24durgaprasad/HireSense-AI/internal/ranking"
	"github.com/24durgaprasad/HireSense-AI/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreRecord outputs a human-readable summary of one scored candidate.
func (p *Printer) PrintScoreRecord(scored *engine.ScoredCandidate) {
	if scored == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidate: %s\n", scored.Record.CandidateID))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Skills:     %3d/100\n", scored.Record.Skills))
	sb.WriteString(fmt.Sprintf("Experience: %3d/100\n", scored.Record.Experience))
	sb.WriteString(fmt.Sprintf("Projects:   %3d/100\n", scored.Record.Projects))
	sb.WriteString(fmt.Sprintf("Education:  %3d/100\n", scored.Record.Education))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Total:      %3d/100  [%s]", scored.Record.Total, scored.Classification))

	if scored.Explanation != nil {
		sb.WriteString(fmt.Sprintf("\n\nRecommendation: %s", scored.Explanation.Recommendation))
	}

	p.printBox("SCORE RECORD", sb.String())
}

// PrintExplanation outputs the narrative explanation for a scored candidate.
func (p *Printer) PrintExplanation(expl *types.Explanation) {
	if expl == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(expl.Summary)
	sb.WriteString("\n")

	if len(expl.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		count := min(len(expl.Strengths), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  + %s\n", expl.Strengths[i]))
		}
	}

	if len(expl.Gaps) > 0 {
		sb.WriteString("\nGaps:\n")
		count := min(len(expl.Gaps), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  - %s\n", expl.Gaps[i]))
		}
	}

	if len(expl.InterviewFocusAreas) > 0 {
		sb.WriteString("\nInterview focus:\n")
		count := min(len(expl.InterviewFocusAreas), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", expl.InterviewFocusAreas[i]))
		}
	}

	p.printBox("EXPLANATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRanking outputs the top ranked candidates with scores.
func (p *Printer) PrintRanking(ranked []ranking.RankedCandidate) {
	if len(ranked) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates ranked: %d\n\n", len(ranked)))

	count := min(len(ranked), maxItemsToShow)
	for i := 0; i < count; i++ {
		rc := ranked[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", rc.Rank, rc.Record.CandidateID))
		sb.WriteString(fmt.Sprintf("    Total: %d  (S:%d E:%d P:%d Ed:%d)\n",
			rc.Record.Total, rc.Record.Skills, rc.Record.Experience, rc.Record.Projects, rc.Record.Education))
	}

	if len(ranked) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(ranked)-maxItemsToShow))
	}

	p.printBox("RANKED CANDIDATES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintComparison outputs per-dimension and overall winners.
func (p *Printer) PrintComparison(cmp *ranking.Comparison) {
	if cmp == nil {
		return
	}

	var sb strings.Builder
	for _, winner := range cmp.DimensionWinners {
		sb.WriteString(fmt.Sprintf("%-11s %s (%d)\n", winner.Dimension+":", winner.CandidateID, winner.Score))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Overall:    %s (%d)", cmp.OverallWinner, cmp.OverallScore))

	p.printBox("COMPARISON", sb.String())
}

// PrintThresholdCounts outputs the aggregate counts after a reclassification.
func (p *Printer) PrintThresholdCounts(counts engine.ThresholdCounts, threshold int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("New threshold: %d\n\n", threshold))
	sb.WriteString(fmt.Sprintf("Total:       %d\n", counts.Total))
	sb.WriteString(fmt.Sprintf("Shortlisted: %d\n", counts.Shortlisted))
	sb.WriteString(fmt.Sprintf("Borderline:  %d\n", counts.Borderline))
	sb.WriteString(fmt.Sprintf("Rejected:    %d", counts.Rejected))

	p.printBox("RECLASSIFICATION", sb.String())
}
