package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"finder-hq/spyglass/pkg/cli"
	"finder-hq/spyglass/pkg/formula"
	"finder-hq/spyglass/pkg/formula/diag"
)

var checkFlags struct {
	format string
}

var checkCmd = &cobra.Command{
	Use:   "check [formula]",
	Short: "Validate a search formula",
	Long: `Validate a search formula without scanning anything.

The check command compiles the formula and reports:
  - Syntax errors (unmatched brackets, dangling operators, ...)
  - Blocking warnings (contradictions like "A AND NOT A")
  - Advisory warnings (tautologies, unbound variables)
  - Remediation suggestions for each finding

When no formula argument is given, the configured formula is checked.

Examples:
  # Check a formula directly
  spyglass check "(A OR B) AND NOT C"

  # Check the configured formula
  spyglass check

  # JSON output for CI/CD
  spyglass check "(A OR B" --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkFlags.format, "format", "text", "output format: text, json")
}

// CheckResult is the machine-readable outcome of a formula check.
type CheckResult struct {
	Formula     string            `json:"formula"`
	Normalized  string            `json:"normalized,omitempty"`
	Valid       bool              `json:"valid"`
	Blocked     bool              `json:"blocked"`
	Errors      []diag.Diagnostic `json:"errors,omitempty"`
	Warnings    []diag.Diagnostic `json:"warnings,omitempty"`
	Suggestions []string          `json:"suggestions,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cli.ParseFormat(checkFlags.format)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	text, err := resolveFormula(cfg, args)
	if err != nil {
		return err
	}

	bindings := buildBindings(cfg)
	alphabet := formula.WithAlphabet(compileAlphabet(cfg))
	validation := formula.Validate(text, bindings.Texts(), alphabet)

	result := CheckResult{
		Formula:     text,
		Valid:       validation.IsValid,
		Blocked:     validation.Blocked(),
		Errors:      validation.Errors,
		Warnings:    validation.Warnings,
		Suggestions: formula.Suggest(validation.Diagnostics()),
	}
	if compiled, err := formula.Compile(text, alphabet); err == nil {
		result.Normalized = compiled.Normalized()
	}

	if format == cli.FormatJSON {
		if err := cli.NewFormatter(format).FormatTo(os.Stdout, result); err != nil {
			return err
		}
	} else {
		printCheckText(result)
	}

	if result.Blocked {
		return cli.NewCommandError("check", fmt.Errorf("formula is blocked"))
	}
	return nil
}

func printCheckText(result CheckResult) {
	fmt.Printf("Checking %q...\n", result.Formula)

	if result.Valid && len(result.Warnings) == 0 {
		fmt.Println("✓ Formula is valid")
		return
	}

	for _, d := range result.Errors {
		fmt.Printf("✗ Error: %s", d.Message)
		if d.Position != nil {
			fmt.Printf(" (offset %s)", d.Position)
		}
		fmt.Println()
	}
	for _, d := range result.Warnings {
		glyph := "⚠"
		if d.Blocking() {
			glyph = "✗"
		}
		fmt.Printf("%s  Warning: %s", glyph, d.Message)
		if d.Position != nil {
			fmt.Printf(" (offset %s)", d.Position)
		}
		fmt.Println()
	}

	if len(result.Suggestions) > 0 {
		fmt.Println("\nSuggestions:")
		for _, s := range result.Suggestions {
			fmt.Printf("  - %s\n", s)
		}
	}

	fmt.Println()
	fmt.Printf("Summary: %d error(s), %d warning(s)\n", len(result.Errors), len(result.Warnings))
}
