package domain

import "strings"

type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskMedium
	RiskHigh
)

func (r RiskLevel) String() string {
	switch r {
	case RiskHigh:
		return "high"
	case RiskMedium:
		return "medium"
	default:
		return "low"
	}
}

// Label is the banner form of the risk level, e.g. "HIGH RISK".
func (r RiskLevel) Label() string {
	return strings.ToUpper(r.String()) + " RISK"
}

// AuditRecord describes one security-relevant configuration flag found during a merge.
type AuditRecord struct {
	Flag           string
	Project        string
	Risk           RiskLevel
	Description    string
	Recommendation string
}

// AuditStatus is the persisted marker recording that the audit banner was shown.
type AuditStatus struct {
	Completed bool
	Timestamp string
	Audits    []AuditRecord
}
