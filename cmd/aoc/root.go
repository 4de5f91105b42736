package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SebastiaanZ/aoc-2020/internal/apperr"
	"github.com/SebastiaanZ/aoc-2020/internal/cache"
	"github.com/SebastiaanZ/aoc-2020/internal/client"
	"github.com/SebastiaanZ/aoc-2020/internal/runner"
	"github.com/SebastiaanZ/aoc-2020/internal/ui"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "Advent of Code 2020 — solution runner & submitter",
	Long: "Runner for Advent of Code 2020 solutions. Downloads puzzle inputs, " +
		"scaffolds solution packages, caches answers keyed by a content hash, " +
		"and submits answers to the website with duplicate protection.",

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initUIAndBanner(cmd)
		wireLogging(cmd)
	},

	// When invoked without a subcommand, show help (with banner) instead of
	// printing a plain usage output.
	RunE: func(cmd *cobra.Command, args []string) error {
		initUIAndBanner(cmd)
		return cmd.Help()
	},
}

var (
	cfgFile  string
	noColor  bool
	noBanner bool
	logLevel string
	version  string
)

// registry is the process-wide store registry. Every command resolves answer
// caches through this single instance so a backing file never has two live
// in-memory copies.
var registry = cache.NewRegistry()

// SetVersion sets the version for the CLI.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// GetRootCmd returns the root command for use with fang.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.aoc.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noBanner, "no-banner", false, "disable the banner on startup")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "standard", "log verbosity (quiet|standard|debug)")

	// Ensure `--help` (and help subcommands) show the banner consistently.
	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		initUIAndBanner(cmd)
		defaultHelp(cmd, args)
	})
}

var bannerShown bool

func initUIAndBanner(cmd *cobra.Command) {
	ui.Init(noColor)
	if !noBanner && !bannerShown {
		bannerShown = true
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Color(ui.BannerASCII, ui.FgGreen))
	}
}

// wireLogging connects the per-package loggers according to --log-level.
// standard shows orchestration progress; debug adds web and cache traffic.
func wireLogging(cmd *cobra.Command) {
	level := strings.ToLower(strings.TrimSpace(logLevel))
	stderr := cmd.ErrOrStderr()
	switch level {
	case "quiet":
	case "debug":
		runner.SetLogger(stderr)
		client.SetLogger(stderr)
		cache.SetLogger(stderr)
	default:
		runner.SetLogger(stderr)
	}
}

func initConfig() {
	// A .env in the working directory may carry AOC_SESSION.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigType("yaml")
		viper.SetConfigName(".aoc")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
	}

	viper.SetDefault("year", 2020)
	viper.SetDefault("base-url", client.DefaultBaseURL)
	viper.SetDefault("http-timeout", 30)
	viper.SetDefault("inputs-dir", "inputs")
	viper.SetDefault("solutions-dir", "internal/solutions")

	viper.SetEnvPrefix("AOC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindEnv("session", "AOC_SESSION")

	if err := viper.ReadInConfig(); err != nil {
		notFound := &viper.ConfigFileNotFoundError{}
		if !errors.As(err, notFound) && cfgFile != "" {
			fmt.Fprintf(os.Stderr, "reading config file: %v\n", err)
		}
	}
}

// puzzleOptions assembles the collaborators every puzzle command needs.
func puzzleOptions(cmd *cobra.Command) runner.Options {
	timeout := viper.GetInt("http-timeout")
	if timeout <= 0 {
		timeout = 30
	}
	return runner.Options{
		Registry: registry,
		Client: client.New(
			viper.GetString("base-url"),
			viper.GetString("session"),
			time.Duration(timeout)*time.Second,
		),
		InputsDir:    viper.GetString("inputs-dir"),
		SolutionsDir: viper.GetString("solutions-dir"),
		Year:         viper.GetInt("year"),
		Out:          cmd.OutOrStdout(),
	}
}

// resolvePuzzle builds the puzzle selected by the namespaced --day, --path
// or --today flags of a subcommand.
func resolvePuzzle(cmd *cobra.Command, ns string) (*runner.Puzzle, error) {
	day := viper.GetInt(ns + ".day")
	path := viper.GetString(ns + ".path")
	today := viper.GetBool(ns + ".today")

	selected := 0
	if day > 0 {
		selected++
	}
	if path != "" {
		selected++
	}
	if today {
		selected++
	}
	if selected == 0 {
		return nil, apperr.User("select a puzzle with --day, --path, or --today")
	}
	if selected > 1 {
		return nil, apperr.User("--day, --path, and --today are mutually exclusive")
	}

	opts := puzzleOptions(cmd)
	ctx := cmd.Context()
	switch {
	case day > 0:
		return runner.New(ctx, day, opts)
	case path != "":
		return runner.FromPath(ctx, path, opts)
	default:
		return runner.FromDate(ctx, opts)
	}
}
