package commands

import (
	"io"
	"time"

	"github.com/de-tools/retention-audit/pkg/adapters"
	"github.com/de-tools/retention-audit/pkg/services/audit"
	"github.com/spf13/cobra"
)

type BenchmarksCmd struct {
	benchmarksPath string
	settings       audit.Settings
	newHandler     func(w io.Writer) ReportHandler
}

func NewBenchmarksCmd(settings audit.Settings, newHandler func(w io.Writer) ReportHandler) *cobra.Command {
	bc := &BenchmarksCmd{settings: settings, newHandler: newHandler}
	cmd := &cobra.Command{
		Use:   "benchmarks",
		Short: "List industry benchmarks",
		RunE:  bc.run,
	}

	cmd.Flags().StringVar(&bc.benchmarksPath, "benchmarks", "", "Path to an INI benchmark table")

	return cmd
}

func (bc *BenchmarksCmd) run(cmd *cobra.Command, _ []string) error {
	settings, err := withBenchmarks(bc.settings, bc.benchmarksPath)
	if err != nil {
		return err
	}

	table := settings.Benchmarks
	if len(table) == 0 {
		table = audit.DefaultBenchmarks()
	}
	return bc.newHandler(cmd.OutOrStdout()).Handle(adapters.MapBenchmarksDomainToReport(table, time.Now().UTC()))
}
