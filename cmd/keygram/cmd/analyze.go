package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	analyzeTerm  string
	watchGrammar bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <input>",
	Short: "Rank every term and segmentation for an input",
	Long:  "Dispatches the input to every term of the grammar and prints the\nmatching terms by descending weight, each with every segmentation\nits keyword sequence admits.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeTerm, "term", "t", "", "analyze with a single term's analyzer")
	analyzeCmd.Flags().BoolVarP(&watchGrammar, "watch", "w", false, "re-run whenever the grammar file changes")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	input := args[0]

	if err := analyzeOnce(input); err != nil {
		return err
	}
	if !watchGrammar {
		return nil
	}
	return watchAndReanalyze(input)
}

// analyzeOnce rebuilds the classifier from the grammar file and prints the
// analysis for one input.
func analyzeOnce(input string) error {
	c, err := loadClassifier()
	if err != nil {
		return err
	}

	if analyzeTerm != "" {
		segmentations, err := c.AnalyzeTerm(input, analyzeTerm)
		if err != nil {
			return err
		}
		fmt.Print(renderSegmentationList(analyzeTerm, segmentations))
		return nil
	}

	result := c.Analyze(input)
	logger.Debug("analyzed input",
		zap.String("input", input),
		zap.Int("matching_terms", result.Len()),
	)
	fmt.Print(renderResult(input, result))
	return nil
}

// watchAndReanalyze re-runs the analysis every time the grammar file is
// written, until interrupted.
func watchAndReanalyze(input string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting grammar watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(grammarPath); err != nil {
		return fmt.Errorf("watching %s: %w", grammarPath, err)
	}
	fmt.Printf("watching %s, ctrl-c to stop\n", grammarPath)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("grammar changed", zap.String("file", event.Name))
			if err := analyzeOnce(input); err != nil {
				// A broken grammar mid-edit is expected; report and
				// keep watching.
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))
		case <-interrupt:
			return nil
		}
	}
}
