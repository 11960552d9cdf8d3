// Package observability provides formatted output utilities for the CLI
// search command.
package observability

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/jonathan/talent-search/internal/types"
)

// maxEvidenceItems caps how many highlight entries are shown per hit.
const maxEvidenceItems = 3

// Printer renders search results for terminal output.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// PrintSearchResult renders the ranked hits as a table followed by the
// aggregate stats.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSearchResult(result *types.SearchResult) {
	if result == nil {
		return
	}

	tw := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tSCORE\tLABEL\tSKILLS\tEXPERIENCE\tPROJECTS\tPROFILE")
	offset := (result.Pagination.Page - 1) * len(result.Talents)
	for i, t := range result.Talents {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%.0f\t%.0f\t%.0f\t%.0f\n",
			offset+i+1,
			t.Candidate.Name,
			t.RelevanceScore,
			t.MatchLabel,
			t.ScoreBreakdown.SkillMatch,
			t.ScoreBreakdown.Experience,
			t.ScoreBreakdown.ProjectQuality,
			t.ScoreBreakdown.ProfileQuality,
		)
	}
	tw.Flush()

	fmt.Fprintf(p.out, "\n%d candidates, average score %.1f, average experience %.0f months\n",
		result.Stats.Total, result.Stats.AverageScore, result.Stats.AverageExperience)
	fmt.Fprintf(p.out, "page %d/%d\n", result.Pagination.Page, result.Pagination.TotalPages)
}

// PrintMatchEvidence renders the why-did-this-match payload for one hit.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintMatchEvidence(t *types.ScoredCandidate) {
	if t == nil {
		return
	}

	fmt.Fprintf(p.out, "%s (%d, %s)\n", t.Candidate.Name, t.RelevanceScore, t.MatchLabel)

	if len(t.MatchHighlights.BioMatches) > 0 {
		keywords := make([]string, 0, len(t.MatchHighlights.BioMatches))
		for _, m := range t.MatchHighlights.BioMatches {
			keywords = append(keywords, m.Keyword)
		}
		fmt.Fprintf(p.out, "  bio mentions: %s\n", strings.Join(keywords, ", "))
	}

	for i, proj := range t.MatchHighlights.TopProjects {
		if i >= maxEvidenceItems {
			break
		}
		fmt.Fprintf(p.out, "  project: %s\n", proj.ProjectTitle)
	}
	for i, exp := range t.MatchHighlights.TopExperiences {
		if i >= maxEvidenceItems {
			break
		}
		fmt.Fprintf(p.out, "  experience: %s at %s\n", exp.Position, exp.Company)
	}
}
