// Package cli wires the srclint command-line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/srclint/internal/version"
	"github.com/arthur-debert/srclint/pkg/analyzer"
	"github.com/arthur-debert/srclint/pkg/config"
	"github.com/arthur-debert/srclint/pkg/logging"
	"github.com/arthur-debert/srclint/pkg/report"
	"github.com/arthur-debert/srclint/pkg/rule"
	"github.com/arthur-debert/srclint/pkg/ruleset"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "srclint",
		Short:   "A rule-based source code linter",
		Long:    "srclint runs a configurable set of rules over a source tree\nand reports violations as text, JSON, or YAML.",
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newRulesCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newAnalyzeCmd() *cobra.Command {
	var (
		includes    string
		excludes    string
		failOnError bool
		workers     int
		rulesetPath string
		ruleNames   []string
		format      string
	)

	cmd := &cobra.Command{
		Use:   "analyze [path]",
		Short: "Analyze a source tree and report rule violations",
		Long: `Analyze runs the configured rule set over every admitted file under
the given directory (default: the current directory). Configuration is read
from srclint.toml in that directory; flags override the file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			cfg, err := config.Load(root)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("includes") {
				cfg.Includes = includes
			}
			if cmd.Flags().Changed("excludes") {
				cfg.Excludes = excludes
			}
			if cmd.Flags().Changed("fail-on-error") {
				cfg.FailOnError = failOnError
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}
			if cmd.Flags().Changed("ruleset") {
				cfg.RuleSet = rulesetPath
			}
			if cmd.Flags().Changed("rules") {
				cfg.Rules = ruleNames
			}
			if cmd.Flags().Changed("format") {
				cfg.Format = format
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			rs, err := buildRuleSet(cfg)
			if err != nil {
				return err
			}

			renderer, err := report.New(cfg.Format)
			if err != nil {
				return err
			}

			a := analyzer.New(analyzer.Config{
				Includes:    cfg.Includes,
				Excludes:    cfg.Excludes,
				FailOnError: cfg.FailOnError,
				Workers:     cfg.Workers,
			})
			tree, err := a.Analyze(cmd.Context(), rs, root)
			if err != nil {
				return err
			}

			doc := report.Build(root, tree)
			if err := renderer.Render(cmd.OutOrStdout(), doc); err != nil {
				return err
			}
			if doc.Violations > 0 {
				return fmt.Errorf("%d violation(s) found", doc.Violations)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&includes, "includes", "", "Comma-separated patterns for files to analyze")
	cmd.Flags().StringVar(&excludes, "excludes", "", "Comma-separated patterns for files to skip")
	cmd.Flags().BoolVar(&failOnError, "fail-on-error", false, "Abort the run on the first per-file failure")
	cmd.Flags().IntVar(&workers, "workers", 0, "File-level parallelism (below 2 runs sequentially)")
	cmd.Flags().StringVar(&rulesetPath, "ruleset", "", "Path to an XML ruleset file")
	cmd.Flags().StringSliceVar(&ruleNames, "rules", nil, "Registered rule names to run (default: all)")
	cmd.Flags().StringVar(&format, "format", "text", "Report format: text, json, or yaml")

	return cmd
}

// buildRuleSet resolves the configured rules: an XML ruleset file when one
// is set, the named registered rules otherwise, every registered rule as
// the fallback.
func buildRuleSet(cfg *config.Config) (*ruleset.RuleSet, error) {
	if cfg.RuleSet != "" {
		f, err := os.Open(filepath.Clean(cfg.RuleSet))
		if err != nil {
			return nil, fmt.Errorf("cannot open ruleset %s: %w", cfg.RuleSet, err)
		}
		defer func() { _ = f.Close() }()
		return ruleset.LoadXML(f)
	}
	if len(cfg.Rules) > 0 {
		return ruleset.FromRegistry(cfg.Rules...)
	}
	return ruleset.AllRegistered()
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the registered rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range rule.Names() {
				r, err := rule.Create(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-28s P%d  %s\n", r.Name(), r.Priority(), r.Description())
			}
			return nil
		},
	}
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a commented srclint.toml with the default configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			const path = "srclint.toml"
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := os.WriteFile(path, []byte(config.DefaultConfigContent()), 0644); err != nil {
				return fmt.Errorf("cannot write %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "srclint version %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.Date)
		},
	}
}
