package api

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

type AuditRecord struct {
	Flag           string    `json:"flag"`
	Project        string    `json:"project"`
	Risk           RiskLevel `json:"risk"`
	Description    string    `json:"description"`
	Recommendation string    `json:"recommendation"`
}

// AuditStatus is the on-disk shape of the status marker and the
// response body of the security audit endpoint.
type AuditStatus struct {
	Completed bool          `json:"completed"`
	Timestamp string        `json:"timestamp"`
	Audits    []AuditRecord `json:"audits"`
}
