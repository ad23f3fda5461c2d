package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"foc/internal/category"
	"foc/internal/config"
	"foc/internal/logging"
	"foc/internal/organizer"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var pathFlag string
	var dryRun bool

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:           "foc",
		Short:         "Sort the files of a directory into category folders",
		Long:          "foc moves each top-level file of a directory into a subfolder named after its\ncategory (Images, Videos, Documents, ...), picked from the file extension.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrganize(cmd, ctx, pathFlag, dryRun)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path (TOML or YAML)")
	rootCmd.Flags().StringVarP(&pathFlag, "path", "p", "", "Path to organize (default: current directory)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without moving")

	rootCmd.AddCommand(newCategoriesCommand())
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))

	return rootCmd
}

func runOrganize(cmd *cobra.Command, ctx *commandContext, pathFlag string, dryRun bool) error {
	root, err := resolveRoot(pathFlag)
	if err != nil {
		return err
	}
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	runCtx := logging.WithRunID(cmd.Context(), logging.NewRunID())
	if ctx.configRead {
		logging.WithContext(runCtx, logger).Debug("loaded config", logging.String("config_path", ctx.configPath))
	}

	out := cmd.OutOrStdout()
	reporter := newConsoleReporter(out, shouldColorize(out))
	org := organizer.New(category.Default(), logger, reporter, organizer.OptionsFromConfig(cfg, dryRun))

	summary, err := org.Run(runCtx, root)
	if summary != nil && (err == nil || errors.Is(err, context.Canceled)) {
		reporter.Summary(summary)
	}
	return err
}

func resolveRoot(pathFlag string) (string, error) {
	path := strings.TrimSpace(pathFlag)
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("determine working directory: %w", err)
		}
		return wd, nil
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}
	return expanded, nil
}
