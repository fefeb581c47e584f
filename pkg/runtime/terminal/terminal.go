package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/retention-audit/pkg/runtime/terminal/commands"
	"github.com/de-tools/retention-audit/pkg/runtime/terminal/export"
	"github.com/de-tools/retention-audit/pkg/services/audit"
	csvexport "github.com/de-tools/retention-audit/pkg/services/export"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	settings audit.Settings
	logger   zerolog.Logger
	output   io.Writer
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Settings audit.Settings
	Logger   zerolog.Logger
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		settings: opts.Settings,
		logger:   opts.Logger,
		output:   opts.Output,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.ExecuteContext(context.Background())
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(cli.logger.WithContext(ctx))
}

// SetArgs overrides os.Args, mostly for tests
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "retention-audit",
		Short:         "Customer retention audit tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(cli.output)

	formats := commands.ReportFormats{
		"table": func(w io.Writer) commands.ReportHandler { return export.NewReporter(w) },
		"text":  func(w io.Writer) commands.ReportHandler { return NewReporter(w) },
		"csv":   func(w io.Writer) commands.ReportHandler { return csvexport.NewWriter(w) },
	}

	cmd.AddCommand(commands.NewRunCmd(cli.settings, formats))
	cmd.AddCommand(commands.NewBenchmarksCmd(cli.settings, formats["table"]))

	return cmd
}
