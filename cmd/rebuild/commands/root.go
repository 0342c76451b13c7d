// Package commands implements the CLI commands for the rebuild build driver.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/rebuild/internal/build"
	"go.trai.ch/rebuild/internal/core/domain"
)

// CLI represents the command line interface for rebuild.
type CLI struct {
	app        Application
	rootCmd    *cobra.Command
	configPath string
	logJSON    bool
	logger     JSONLogger
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, configPath string, opts domain.BuildOptions) error
	Watch(ctx context.Context, configPath string, opts domain.BuildOptions) error
	Plan(ctx context.Context, configPath string) error
	Clean(ctx context.Context, configPath string) error
	Config(configPath string) (*domain.Config, error)
}

// JSONLogger is a logger that can switch to JSON output.
type JSONLogger interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "rebuild",
		Short:         "An incremental build driver for C and C++ projects",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "",
		"Path to "+domain.ConfigFileName+" (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().BoolVar(&c.logJSON, "log-json", false, "Write log messages as JSON")
	rootCmd.PersistentPreRun = func(*cobra.Command, []string) {
		if c.logJSON && c.logger != nil {
			c.logger.SetJSON(true)
		}
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newConfigCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// WithLogger lets --log-json switch logger to JSON output.
func (c *CLI) WithLogger(logger JSONLogger) *CLI {
	c.logger = logger
	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
