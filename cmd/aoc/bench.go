package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	_ "github.com/SebastiaanZ/aoc-2020/internal/solutions"
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure the running time of a day's solving functions",
	Long: "Time the prepare, part one, and part two functions of the selected day " +
		"separately, averaging over an automatically chosen number of runs.",
	RunE: runBench,
}

func runBench(cmd *cobra.Command, args []string) error {
	p, err := resolvePuzzle(cmd, "bench")
	if err != nil {
		return err
	}
	report, err := p.Bench()
	if err != nil {
		return err
	}
	report.Render(cmd.OutOrStdout())
	return nil
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().Int("day", 0, "select a puzzle by day number (1-25)")
	benchCmd.Flags().String("path", "", "select a puzzle by solution path")
	benchCmd.Flags().Bool("today", false, "select today's puzzle (event days only)")

	viper.BindPFlag("bench.day", benchCmd.Flags().Lookup("day"))
	viper.BindPFlag("bench.path", benchCmd.Flags().Lookup("path"))
	viper.BindPFlag("bench.today", benchCmd.Flags().Lookup("today"))
}
