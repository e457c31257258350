package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/keygram/keygram"
)

var (
	termStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	weightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	keywordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	occurrenceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	patternStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	segmentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// renderResult formats a ranked analysis result, one term block per entry.
func renderResult(input string, result *keygram.Result) string {
	if result.IsEmpty() {
		return labelStyle.Render(fmt.Sprintf("no term matches %q", input)) + "\n"
	}

	var sb strings.Builder
	for _, entry := range result.Entries() {
		sb.WriteString(fmt.Sprintf("%s %s\n",
			termStyle.Render(entry.Term.Name()),
			weightStyle.Render(fmt.Sprintf("(weight %.2f)", entry.Weight)),
		))
		sb.WriteString(renderSegmentations(entry.Segmentations))
	}
	return sb.String()
}

// renderSegmentationList formats the result of a single-term analysis.
func renderSegmentationList(term string, segmentations []keygram.Segmentation) string {
	if len(segmentations) == 0 {
		return labelStyle.Render(fmt.Sprintf("no segmentation for term %s", term)) + "\n"
	}
	return termStyle.Render(term) + "\n" + renderSegmentations(segmentations)
}

func renderSegmentations(segmentations []keygram.Segmentation) string {
	var sb strings.Builder
	for i, seg := range segmentations {
		sb.WriteString(fmt.Sprintf("  %s ", labelStyle.Render(fmt.Sprintf("%d.", i+1))))
		for j, e := range seg.Entries() {
			if j > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(fmt.Sprintf("%s=%s",
				keywordStyle.Render(e.Keyword.Name()),
				segmentStyle.Render(fmt.Sprintf("%q", e.Segment)),
			))
		}
		if seg.Len() == 0 {
			sb.WriteString(labelStyle.Render("(empty)"))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
