package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/de-tools/retention-audit/pkg/models/domain"
)

const filePrefix = "retention-audit"

var header = []string{"Metric", "Value"}

// Row is one metric/value pair of the CSV export
type Row struct {
	Metric string
	Value  string
}

// FileName returns the export file name for the given day
func FileName(t time.Time) string {
	return fmt.Sprintf("%s-%s.csv", filePrefix, t.Format("2006-01-02"))
}

// Rows flattens every report detail into a metric/value row. Floats are
// written with two decimals.
func Rows(report *domain.Report) []Row {
	var rows []Row
	for _, section := range report.Sections {
		for _, d := range section.Details {
			rows = append(rows, Row{Metric: d.Name, Value: FormatValue(d.Value)})
		}
	}
	return rows
}

func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case float64:
		return fmt.Sprintf("%.2f", val)
	case float32:
		return fmt.Sprintf("%.2f", val)
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}

// Writer writes reports as two-column CSV
type Writer struct {
	writer io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{writer: w}
}

func (w *Writer) Handle(report *domain.Report) error {
	return WriteCSV(w.writer, Rows(report))
}

func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Metric, r.Value}); err != nil {
			return fmt.Errorf("failed to write csv row %q: %w", r.Metric, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ParseCSV reads rows written by WriteCSV
func ParseCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)

	first, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty csv")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	if first[0] != header[0] || first[1] != header[1] {
		return nil, fmt.Errorf("unexpected csv header %v", first)
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		rows = append(rows, Row{Metric: rec[0], Value: rec[1]})
	}
}
