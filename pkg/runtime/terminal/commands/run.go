package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/de-tools/retention-audit/pkg/adapters"
	"github.com/de-tools/retention-audit/pkg/models/domain"
	"github.com/de-tools/retention-audit/pkg/services/audit"
	"github.com/de-tools/retention-audit/pkg/services/config"
	"github.com/de-tools/retention-audit/pkg/services/export"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const FormatJSON = "json"

type ReportHandler interface {
	Handle(report *domain.Report) error
}

// ReportFormats maps a --format value to the handler writing that format
type ReportFormats map[string]func(w io.Writer) ReportHandler

func (f ReportFormats) names() []string {
	names := []string{FormatJSON}
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type RunCmd struct {
	inputPath      string
	benchmarksPath string
	format         string
	outputPath     string
	settings       audit.Settings
	formats        ReportFormats
}

func NewRunCmd(settings audit.Settings, formats ReportFormats) *cobra.Command {
	rc := &RunCmd{settings: settings, formats: formats}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a retention audit from a form file",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.inputPath, "input", "", "Path to the audit form (yaml, json or toml)")
	cmd.Flags().StringVar(&rc.benchmarksPath, "benchmarks", "", "Path to an INI benchmark table")
	cmd.Flags().StringVar(&rc.format, "format", "table",
		fmt.Sprintf("Output format (%s)", strings.Join(formats.names(), ", ")))
	cmd.Flags().StringVar(&rc.outputPath, "output", "", "Output file or directory (default is stdout)")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (rc *RunCmd) run(cmd *cobra.Command, _ []string) error {
	logger := zerolog.Ctx(cmd.Context())

	newHandler, ok := rc.formats[rc.format]
	if !ok && rc.format != FormatJSON {
		return fmt.Errorf("unsupported format %q. Supported formats: %v", rc.format, rc.formats.names())
	}

	settings, err := withBenchmarks(rc.settings, rc.benchmarksPath)
	if err != nil {
		return err
	}

	form, err := config.LoadForm(rc.inputPath)
	if err != nil {
		return err
	}
	if !audit.ValidateCritical(form) {
		logger.Warn().Msg("monthly revenue, total customers or average order value missing; fallback values are used")
	}

	results := audit.NewCalculator(settings).Calculate(form)
	logger.Debug().
		Str("id", results.ID).
		Float64("overall_score", results.OverallScore).
		Str("maturity", string(results.MaturityLevel)).
		Msg("audit calculated")

	out, closeOut, err := rc.openOutput(cmd.OutOrStdout(), results)
	if err != nil {
		return err
	}

	if rc.format == FormatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		err = enc.Encode(adapters.MapAuditResultsDomainToApi(results))
	} else {
		err = newHandler(out).Handle(adapters.MapAuditResultsDomainToReport(results))
	}

	if closeErr := closeOut(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close output file: %w", closeErr)
	}
	return err
}

// openOutput resolves --output. A directory receives a dated file name.
func (rc *RunCmd) openOutput(stdout io.Writer, results domain.AuditResults) (io.Writer, func() error, error) {
	if rc.outputPath == "" {
		return stdout, func() error { return nil }, nil
	}

	path := rc.outputPath
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		name := export.FileName(results.GeneratedAt)
		if rc.format != "csv" {
			name = strings.TrimSuffix(name, ".csv") + "." + rc.format
		}
		path = filepath.Join(path, name)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}

func withBenchmarks(settings audit.Settings, path string) (audit.Settings, error) {
	if path == "" {
		return settings, nil
	}
	table, err := config.LoadBenchmarks(path)
	if err != nil {
		return settings, err
	}
	settings.Benchmarks = table
	return settings, nil
}
