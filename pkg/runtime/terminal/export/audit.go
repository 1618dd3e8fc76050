package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/fatih/color"
	"github.com/idfwu/ccem/pkg/models/domain"
)

const auditRuleWidth = 70

var (
	highRisk   = color.New(color.FgRed, color.Bold).SprintFunc()
	mediumRisk = color.New(color.FgYellow, color.Bold).SprintFunc()
	lowRisk    = color.New(color.FgBlue, color.Bold).SprintFunc()
)

const findingsTmpl = `
{{rule}}
🔒 SECURITY AUDIT - Post-Merge Configuration Review
{{rule}}

The following security-sensitive configurations were found during merge:

{{range $i, $a := .}}{{inc $i}}. [{{risk $a.Risk}}] {{$a.Flag}}
   Project: {{$a.Project}}
   Issue: {{$a.Description}}
   Recommendation: {{$a.Recommendation}}

{{end}}These flags were NOT carried over to user-level for security reasons.
If you need these permissions, please add them explicitly with proper scoping.

`

const completedTmpl = `Security audit completed. This message will not appear again.
{{rule}}

`

// AuditReporter prints the one-time security audit banner.
type AuditReporter struct {
	writer    io.Writer
	findings  *template.Template
	completed *template.Template
}

func NewAuditReporter(writer io.Writer) *AuditReporter {
	if writer == nil {
		writer = os.Stdout
	}

	funcMap := template.FuncMap{
		"rule": func() string { return strings.Repeat("=", auditRuleWidth) },
		"inc":  func(i int) int { return i + 1 },
		"risk": func(r domain.RiskLevel) string { return colorForRisk(r)(r.Label()) },
	}

	return &AuditReporter{
		writer:    writer,
		findings:  template.Must(template.New("findings").Funcs(funcMap).Parse(findingsTmpl)),
		completed: template.Must(template.New("completed").Funcs(funcMap).Parse(completedTmpl)),
	}
}

func (r *AuditReporter) Findings(records []domain.AuditRecord) error {
	if err := r.findings.Execute(r.writer, records); err != nil {
		return fmt.Errorf("failed to render findings: %w", err)
	}
	return nil
}

func (r *AuditReporter) Completed() error {
	if err := r.completed.Execute(r.writer, nil); err != nil {
		return fmt.Errorf("failed to render completion notice: %w", err)
	}
	return nil
}

func colorForRisk(r domain.RiskLevel) func(a ...interface{}) string {
	switch r {
	case domain.RiskHigh:
		return highRisk
	case domain.RiskMedium:
		return mediumRisk
	default:
		return lowRisk
	}
}
