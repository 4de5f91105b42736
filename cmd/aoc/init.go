package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Download the input and scaffold the solution, without running",
	Long: "Prepare a puzzle day: download and store its input, create the solution " +
		"package from the template when missing, and create the answer cache file. " +
		"Remember to add the new package to the blank imports in internal/solutions.",
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	p, err := resolvePuzzle(cmd, "init")
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Initialized day %d.\n", p.Day)
	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().Int("day", 0, "select a puzzle by day number (1-25)")
	initCmd.Flags().String("path", "", "select a puzzle by solution path")
	initCmd.Flags().Bool("today", false, "select today's puzzle (event days only)")

	viper.BindPFlag("init.day", initCmd.Flags().Lookup("day"))
	viper.BindPFlag("init.path", initCmd.Flags().Lookup("path"))
	viper.BindPFlag("init.today", initCmd.Flags().Lookup("today"))
}
