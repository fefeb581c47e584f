package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/retention-audit/pkg/models/domain"
	csvexport "github.com/de-tools/retention-audit/pkg/services/export"
)

// Reporter outputs reports to the console in a formatted text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report *domain.Report) error {
	tmpl := `
{{.Title}}
{{.Subtitle}}
Generated: {{.GeneratedAt.Format "2006-01-02"}}
{{range .Sections}}
=== {{.Title}} ===
{{range .Details}}- {{.Name}}: {{value .Value}}{{if .Unit}} {{.Unit}}{{end}}
{{if .Description}}  {{.Description}}
{{end}}{{end}}{{end}}`

	t, err := template.New("report").Funcs(template.FuncMap{"value": csvexport.FormatValue}).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
