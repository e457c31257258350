package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keygram/keygram"
)

var termsCmd = &cobra.Command{
	Use:   "terms",
	Short: "Show the grammar's terms and keyword slots",
	Args:  cobra.NoArgs,
	RunE:  runTerms,
}

func runTerms(cmd *cobra.Command, args []string) error {
	g, err := keygram.LoadGrammar(grammarPath)
	if err != nil {
		return err
	}
	c, err := g.Build()
	if err != nil {
		return err
	}

	patterns := make(map[string]string, len(g.Keywords))
	for _, k := range g.Keywords {
		patterns[k.Name] = k.Pattern
	}

	var sb strings.Builder
	for _, term := range g.Terms {
		sb.WriteString(termStyle.Render(term.Name))
		sb.WriteByte('\n')
		for _, s := range term.Slots {
			occurrence, err := keygram.ParseOccurrence(s.Occurrence)
			if err != nil {
				return err
			}
			sb.WriteString(fmt.Sprintf("  %s %s %s\n",
				keywordStyle.Render(s.Keyword),
				occurrenceStyle.Render("("+occurrence.String()+")"),
				patternStyle.Render(patterns[s.Keyword]),
			))
		}
	}

	stats := c.Stats()
	sb.WriteString(labelStyle.Render(fmt.Sprintf(
		"%d terms, %d keyword slots, worst-case %d activation vectors per input\n",
		stats.Terms, stats.Keywords, stats.VectorBound,
	)))

	fmt.Print(sb.String())
	return nil
}
