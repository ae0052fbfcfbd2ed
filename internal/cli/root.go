// SPDX-License-Identifier: MIT

// Package cli provides the gmat command-line interface: determinants,
// products, sums and wraparound views of matrices given as inline literals.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gabp/internal/cli/config"
)

// Version information (set at build time).
var Version = "0.1.0"

// configKey is used to store config in context.
type configKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "gmat",
		Short: "gmat - generic dense matrix toolkit",
		Long: `gmat evaluates matrix operations from the shell.

Matrices are inline literals: rows separated by ';', cells by ','.
Example: gmat det --a "7,13;18,6"`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.Verbose)
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = context.WithValue(ctx, configKey{}, cfg)
			ctx = context.WithValue(ctx, loggerKey{}, logger)
			cmd.SetContext(ctx)

			logger.Debug("config loaded",
				zap.String("element", cfg.Element),
				zap.String("output", cfg.Output),
				zap.Int("precision", cfg.Precision),
			)

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			_ = GetLogger(cmd.Context()).Sync()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./gmat.yaml)")
	rootCmd.PersistentFlags().StringP("element", "e", config.DefaultElement, "Element type (int|float)")
	rootCmd.PersistentFlags().StringP("output", "o", config.DefaultOutput, "Output format (text|table)")
	rootCmd.PersistentFlags().Int("precision", config.DefaultPrecision, "Float digits (-1 for shortest)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	_ = rootCmd.RegisterFlagCompletionFunc("element", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.ElementInt, config.ElementFloat}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.OutputText, config.OutputTable}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd(Version))
	rootCmd.AddCommand(newDetCmd())
	rootCmd.AddCommand(newMulCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newInverseCmd())
	rootCmd.AddCommand(newViewCmd())
	rootCmd.AddCommand(newTransposeCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return nil
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if ctx != nil {
		if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
			return c
		}
	}

	return config.Default()
}
