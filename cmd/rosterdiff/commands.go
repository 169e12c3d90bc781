package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/rosterdiff/internal/core"
	"github.com/JonMunkholm/rosterdiff/internal/logging"
	"github.com/JonMunkholm/rosterdiff/internal/render"
)

type diffOptions struct {
	extranet string
	operoo   string
	format   string
	logLevel string
}

// newRootCommand creates the root command with all subcommands.
func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rosterdiff",
		Short: "Reconcile Extranet and Operoo roster exports",
		Long: `rosterdiff compares a member roster exported from Extranet (CSV) with
the matching profile export from Operoo (XML spreadsheet) and reports every
discrepancy: members missing from either system and mismatched names,
primary contacts and dates of birth.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newDiffCommand(), newRulesCommand())
	return rootCmd
}

func newDiffCommand() *cobra.Command {
	var opts diffOptions

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Compare two roster exports",
		Args:  cobra.NoArgs,
		Example: `  rosterdiff diff --extranet members.csv --operoo profiles.xls
  rosterdiff diff --extranet members.csv --operoo profiles.xls --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDiff(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.extranet, "extranet", "", "path to the Extranet CSV export")
	cmd.Flags().StringVar(&opts.operoo, "operoo", "", "path to the Operoo XML spreadsheet export")
	cmd.Flags().StringVarP(&opts.format, "format", "o", string(render.FormatText), "output format: text, json")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	_ = cmd.MarkFlagRequired("extranet")
	_ = cmd.MarkFlagRequired("operoo")

	return cmd
}

func runDiff(cmd *cobra.Command, opts diffOptions) error {
	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), opts.logLevel, "text")

	extranet, err := os.ReadFile(opts.extranet)
	if err != nil {
		return fmt.Errorf("read extranet export: %w", err)
	}
	operoo, err := os.ReadFile(opts.operoo)
	if err != nil {
		return fmt.Errorf("read operoo export: %w", err)
	}

	start := time.Now()
	report, err := core.Diff(extranet, operoo)
	if err != nil {
		logger.Error("diff failed", "error", err, "code", core.MapError(err).Code)
		return err
	}

	logger.Info("diff complete",
		slog.Int("tables", report.Len()),
		slog.Int("rows", report.Rows()),
		slog.Duration("duration", time.Since(start)),
	)

	return render.Write(cmd.OutOrStdout(), report, format)
}

func newRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the discrepancy checks in evaluation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range core.RuleNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
