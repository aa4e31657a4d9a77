package terminal

import (
	"io"
	"os"

	"github.com/de-tools/chart-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/chart-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/chart-atlas/pkg/services/charts"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	registry charts.Registry
	reporter *export.Reporter
	lister   *Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Registry charts.Registry
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Registry == nil {
		opts.Registry = charts.DefaultRegistry()
	}

	cli := &CLI{
		registry: opts.Registry,
		reporter: export.NewReporter(opts.Output),
		lister:   NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// SetArgs overrides the process arguments, mainly for tests.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "chart-atlas",
		Short:         "Explore interactive chart variants from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(out)

	cmd.AddCommand(commands.NewChartsCmd(cli.registry, cli.lister))
	cmd.AddCommand(commands.NewPresetsCmd(cli.lister))
	cmd.AddCommand(commands.NewShowCmd(cli.registry, cli.reporter))

	return cmd
}
