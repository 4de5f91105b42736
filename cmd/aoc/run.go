package cmd

import (
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SebastiaanZ/aoc-2020/internal/apperr"
	"github.com/SebastiaanZ/aoc-2020/internal/runner"
	_ "github.com/SebastiaanZ/aoc-2020/internal/solutions"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a puzzle's solution and report the answers",
	Long: "Run the selected day's solution. Answers are cached keyed by a hash of " +
		"the input and the solution source, so unchanged puzzles return instantly. " +
		"With --submit, the most advanced non-empty answer is sent to the website.",
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	submit := viper.GetBool("run.submit")

	if submit && !viper.GetBool("run.yes") {
		ok := false
		confirm := huh.NewConfirm().
			Title("Submit the resulting answer to the Advent of Code website?").
			Affirmative("Submit").
			Negative("Cancel").
			Value(&ok)
		if err := huh.NewForm(huh.NewGroup(confirm)).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return apperr.ErrCancelled
			}
			return err
		}
		if !ok {
			return apperr.ErrCancelled
		}
	}

	p, err := resolvePuzzle(cmd, "run")
	if err != nil {
		return err
	}
	return p.Run(cmd.Context(), runner.RunOptions{
		Submit:      submit,
		IgnoreCache: viper.GetBool("run.ignore-cache"),
	})
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Int("day", 0, "select a puzzle by day number (1-25)")
	runCmd.Flags().String("path", "", "select a puzzle by solution path")
	runCmd.Flags().Bool("today", false, "select today's puzzle (event days only)")
	runCmd.Flags().Bool("submit", false, "submit the answer to the website")
	runCmd.Flags().Bool("ignore-cache", false, "recompute even when a cached answer exists")
	runCmd.Flags().BoolP("yes", "y", false, "skip the submission confirmation prompt")

	viper.BindPFlag("run.day", runCmd.Flags().Lookup("day"))
	viper.BindPFlag("run.path", runCmd.Flags().Lookup("path"))
	viper.BindPFlag("run.today", runCmd.Flags().Lookup("today"))
	viper.BindPFlag("run.submit", runCmd.Flags().Lookup("submit"))
	viper.BindPFlag("run.ignore-cache", runCmd.Flags().Lookup("ignore-cache"))
	viper.BindPFlag("run.yes", runCmd.Flags().Lookup("yes"))
}
