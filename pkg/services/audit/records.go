package audit

import "github.com/idfwu/ccem/pkg/models/domain"

// securityAudits are the flags that were withheld from user-level settings
// when the project configuration was merged.
var securityAudits = []domain.AuditRecord{
	{
		Flag:           "bypassPermissions",
		Project:        "idfwu",
		Risk:           domain.RiskHigh,
		Description:    "Bypass permissions mode was enabled. This allows unrestricted access.",
		Recommendation: "Review if this is still needed. Consider using specific permissions instead.",
	},
	{
		Flag:           "Bash(:*:*)",
		Project:        "idfwu",
		Risk:           domain.RiskHigh,
		Description:    "Overly permissive bash pattern allows any command execution.",
		Recommendation: "Replace with specific command patterns for better security.",
	},
}

// Records returns a copy of the fixed audit list.
func Records() []domain.AuditRecord {
	res := make([]domain.AuditRecord, len(securityAudits))
	copy(res, securityAudits)
	return res
}
