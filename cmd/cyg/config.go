package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/yongrenjie/cygnet/internal/config"
	"github.com/yongrenjie/cygnet/internal/render"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or set global configuration",
	Long: `Show or set global configuration stored in ` + "`~/.config/cygnet/config.yml`" + `.

Keys:
  mailto           Contact address for the Crossref polite pool
  default_format   Citation format used when --format is omitted
  timeout_seconds  Per-request lookup timeout

Examples:
  cyg config
  cyg config set mailto you@example.com
  cyg config set default_format markdown`,
	Run: runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	Run:   runConfigSet,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		fmt.Printf("config file: %s\n", config.GlobalConfigPath())
		fmt.Printf("mailto: %s\n", cfg.Mailto)
		fmt.Printf("default_format: %s\n", config.GetDefaultFormat())
		fmt.Printf("timeout_seconds: %d\n", cfg.TimeoutSeconds)
		if len(cfg.JournalAbbrevs) > 0 {
			fmt.Printf("journal_abbrevs: %d entries\n", len(cfg.JournalAbbrevs))
		}
		return
	}
	_ = outputJSON(cfg)
}

func runConfigSet(cmd *cobra.Command, args []string) {
	key, value := args[0], args[1]

	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	switch key {
	case "mailto":
		cfg.Mailto = value
	case "default_format":
		if _, err := render.ParseFormat(value); err != nil {
			exitWithError(ExitBadFormat, "%v", err)
		}
		cfg.DefaultFormat = value
	case "timeout_seconds":
		secs, err := strconv.Atoi(value)
		if err != nil || secs <= 0 {
			exitWithError(ExitError, "timeout_seconds must be a positive integer, got %q", value)
		}
		cfg.TimeoutSeconds = secs
	default:
		exitWithError(ExitError, "unknown config key %q", key)
	}

	if err := cfg.Save(); err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if humanOutput {
		fmt.Printf("%s = %s\n", key, value)
		return
	}
	_ = outputJSON(map[string]string{key: value})
}
