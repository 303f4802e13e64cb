// Package commands implements the CLI commands for the kiln build tool.
package commands

import (
	"context"
	"runtime"

	"github.com/spf13/cobra"
	"go.trai.ch/kiln/internal/app"
)

// CLI represents the command line interface for kiln.
type CLI struct {
	app         *app.App
	rootCmd     *cobra.Command
	preRunHooks []func(cmd *cobra.Command) error
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "kiln",
		Short:         "An incremental build tool for monorepos",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "kiln.yaml", "Path to the build declaration")
	rootCmd.PersistentFlags().IntP("jobs", "j", runtime.NumCPU(), "Number of tasks to evaluate in parallel")
	rootCmd.PersistentFlags().BoolP("keep-going", "k", false, "Keep evaluating independent groups after a failure")
	rootCmd.PersistentFlags().String("telemetry", "none", "Telemetry backend to trace group evaluation with: none, otel, or progrock")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	rootCmd.PersistentPreRunE = c.runPreRunHooks

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// runPreRunHooks runs every hook registered via SetConfigHook/SetTelemetryHook in
// registration order, stopping at the first error.
func (c *CLI) runPreRunHooks(cmd *cobra.Command, _ []string) error {
	for _, hook := range c.preRunHooks {
		if err := hook(cmd); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// GetConfigPath returns the value of the config flag.
func (c *CLI) GetConfigPath() string {
	config, _ := c.rootCmd.PersistentFlags().GetString("config")
	return config
}

// SetConfigHook registers a pre-run hook that retrieves the config flag and calls fn
// with the config path.
func (c *CLI) SetConfigHook(fn func(string)) {
	c.preRunHooks = append(c.preRunHooks, func(cmd *cobra.Command) error {
		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}
		fn(configPath)
		return nil
	})
}

// SetTelemetryHook registers a pre-run hook that retrieves the telemetry flag and calls
// fn with the selected backend name ("none", "otel", or "progrock").
func (c *CLI) SetTelemetryHook(fn func(backend string) error) {
	c.preRunHooks = append(c.preRunHooks, func(cmd *cobra.Command) error {
		backend, err := cmd.Flags().GetString("telemetry")
		if err != nil {
			return err
		}
		return fn(backend)
	})
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}
