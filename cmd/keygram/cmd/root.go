package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/keygram/keygram"
)

var (
	grammarPath string
	verbose     bool
	logger      *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "keygram",
	Short:         "keygram — grammar-based segmentation of short structured strings",
	Long:          "Segments names, addresses, dates and other short structured strings\naccording to a declared keyword grammar, and ranks every valid partition\nand candidate term.",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger = zap.NewNop()
		}
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&grammarPath, "grammar", "g", "grammar.yaml", "path to the YAML grammar file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(termsCmd)
}

// loadClassifier builds the classifier declared by the --grammar file,
// logging each term binding at debug level.
func loadClassifier() (*keygram.Classifier, error) {
	g, err := keygram.LoadGrammar(grammarPath)
	if err != nil {
		return nil, err
	}
	return g.Build(keygram.WithObserver(func(e keygram.TermEvent) {
		logger.Debug("bound term",
			zap.String("term", e.Term.Name()),
			zap.Int("keywords", len(e.Analyzer.Keywords())),
			zap.String("separator", e.Analyzer.Separator()),
		)
	}))
}
