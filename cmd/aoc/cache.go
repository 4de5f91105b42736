package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

// cacheCmd groups cache inspection commands
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect a day's answer cache",
}

// cacheShowCmd represents the cache show command
var cacheShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print a day's answer cache document",
	Long: "Print the full answer cache document of the selected day, including " +
		"cached answers per fingerprint and recorded submission verdicts.",
	RunE: runCacheShow,
}

func runCacheShow(cmd *cobra.Command, args []string) error {
	p, err := resolvePuzzle(cmd, "cache")
	if err != nil {
		return err
	}
	doc, err := p.CacheDocument()
	if err != nil {
		return err
	}

	var out []byte
	switch format := viper.GetString("cache.format"); format {
	case "", "yaml":
		out, err = yaml.Marshal(doc)
	case "json":
		if out, err = json.MarshalIndent(doc, "", "  "); err == nil {
			out = append(out, '\n')
		}
	default:
		return fmt.Errorf("invalid --format %q (expected yaml|json)", format)
	}
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheShowCmd)

	cacheShowCmd.Flags().Int("day", 0, "select a puzzle by day number (1-25)")
	cacheShowCmd.Flags().String("path", "", "select a puzzle by solution path")
	cacheShowCmd.Flags().Bool("today", false, "select today's puzzle (event days only)")
	cacheShowCmd.Flags().String("format", "yaml", "output format (yaml|json)")

	viper.BindPFlag("cache.day", cacheShowCmd.Flags().Lookup("day"))
	viper.BindPFlag("cache.path", cacheShowCmd.Flags().Lookup("path"))
	viper.BindPFlag("cache.today", cacheShowCmd.Flags().Lookup("today"))
	viper.BindPFlag("cache.format", cacheShowCmd.Flags().Lookup("format"))
}
