package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"finder-hq/spyglass/pkg/config"
	"finder-hq/spyglass/pkg/formula"
	"finder-hq/spyglass/pkg/formula/eval"
	"finder-hq/spyglass/pkg/telemetry/logging"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "spyglass",
	Short: "Spyglass - boolean formula search for files",
	Long: `Spyglass searches files and directories with boolean formulas over
named phrases, e.g. "(A OR B) AND NOT C".

It provides:
  - Symbol and word operator syntax (AND/&&, OR/||, NOT/!, NOR, XOR, XNOR)
  - Formula diagnostics with remediation suggestions
  - Concurrent line or whole-document scanning
  - Watch mode that rescans on file changes
  - Scan run history with retention pruning`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "spyglass.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads the configuration file with environment overrides.
// A missing file is only an error when --config was set explicitly;
// otherwise the defaults apply so the tool works with flags alone.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		if cmd.Flags().Changed("config") || rootCmd.PersistentFlags().Changed("config") {
			return nil, fmt.Errorf("config file %q not found", cfgFile)
		}
		return config.DefaultConfig(), nil
	}
	return config.LoadConfigWithEnvOverrides(cfgFile)
}

// newLogger builds the process logger from telemetry config; --verbose
// forces debug level.
func newLogger(cfg *config.Config) (*slog.Logger, error) {
	level := cfg.Telemetry.Logging.Level
	if verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Config{
		Level:  level,
		Format: cfg.Telemetry.Logging.Format,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

// buildBindings converts configured phrases into an evaluation binding
// set.
func buildBindings(cfg *config.Config) eval.BindingSet {
	bindings := make([]eval.Binding, 0, len(cfg.Phrases))
	for key, phrase := range cfg.Phrases {
		bindings = append(bindings, eval.Binding{
			Letter:        []rune(key)[0],
			Text:          phrase.Text,
			CaseSensitive: phrase.CaseSensitive,
		})
	}
	return eval.NewBindingSet(bindings...)
}

// compileAlphabet returns the variable letters formulas may use: the
// default alphabet extended with every configured phrase letter, so a
// phrase bound to "E" is a variable rather than an invalid character.
func compileAlphabet(cfg *config.Config) []rune {
	letters := append([]rune(nil), formula.DefaultAlphabet...)
	seen := make(map[rune]bool, len(letters))
	for _, letter := range letters {
		seen[letter] = true
	}
	for key := range cfg.Phrases {
		letter := []rune(key)[0]
		if !seen[letter] {
			seen[letter] = true
			letters = append(letters, letter)
		}
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}

// resolveFormula picks the formula text: the command argument wins,
// then the config file, then a conjunction of all bound phrases.
func resolveFormula(cfg *config.Config, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Formula != "" {
		return cfg.Formula, nil
	}

	var letters []rune
	for key, phrase := range cfg.Phrases {
		if phrase.Text != "" {
			letters = append(letters, []rune(key)[0])
		}
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })

	auto := formula.AutoConstruct(letters)
	if auto == "" {
		return "", fmt.Errorf("no formula given and no phrases bound; pass a formula argument or configure phrases")
	}
	return auto, nil
}
