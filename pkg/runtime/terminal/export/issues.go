package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/idfwu/ccem/pkg/models/domain"
)

const summaryRuleWidth = 50

const summaryTmpl = `CCEM Linear Issue Creation
{{rule}}
Project ID: {{.Target.ProjectID}}
Team ID: {{.Target.TeamID}}

Total issues to create: {{.TotalIssues}}
  - 1 Epic
  - {{.Epic.SubIssueCount}} Sub-issues across {{len .Epic.Phases}} phases
{{range .Epic.Phases}}      {{.Name}}: {{len .Issues}} issues
{{end}}
`

const savedTmpl = `✅ Issue structure saved to: {{.Path}}

Next steps:
1. Create Epic in Linear and note its ID
2. Create sub-issues in each phase with parentId set to Epic ID
3. Verify hierarchy in Linear project view

{{if .Target.ProjectURL}}Use Linear MCP server or visit:
{{.Target.ProjectURL}}
{{else}}Use Linear MCP server or GraphQL API to import the document.
{{end}}`

// IssueReporter prints the emitter summary and next-step guidance.
type IssueReporter struct {
	writer  io.Writer
	summary *template.Template
	saved   *template.Template
}

func NewIssueReporter(writer io.Writer) *IssueReporter {
	if writer == nil {
		writer = os.Stdout
	}

	funcMap := template.FuncMap{
		"rule": func() string { return strings.Repeat("=", summaryRuleWidth) },
	}

	return &IssueReporter{
		writer:  writer,
		summary: template.Must(template.New("summary").Funcs(funcMap).Parse(summaryTmpl)),
		saved:   template.Must(template.New("saved").Parse(savedTmpl)),
	}
}

func (r *IssueReporter) Summary(doc domain.IssueDocument) error {
	if err := r.summary.Execute(r.writer, doc); err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}
	return nil
}

func (r *IssueReporter) Saved(path string, target domain.Target) error {
	data := struct {
		Path   string
		Target domain.Target
	}{Path: path, Target: target}

	if err := r.saved.Execute(r.writer, data); err != nil {
		return fmt.Errorf("failed to render next steps: %w", err)
	}
	return nil
}
