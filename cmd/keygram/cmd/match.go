package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var matchTerm string

var matchCmd = &cobra.Command{
	Use:   "match <input>",
	Short: "List the terms an input matches",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&matchTerm, "term", "t", "", "match against a single term")
}

func runMatch(cmd *cobra.Command, args []string) error {
	input := args[0]

	c, err := loadClassifier()
	if err != nil {
		return err
	}

	if matchTerm != "" {
		ok, err := c.MatchesTerm(input, matchTerm)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%q does not match term %s", input, matchTerm)
		}
		fmt.Println(matchTerm)
		return nil
	}

	matching := c.Matching(input)
	if len(matching) == 0 {
		return fmt.Errorf("%q matches no term", input)
	}
	for _, term := range matching {
		fmt.Println(term.Name())
	}
	return nil
}
