package adapters

import (
	"strings"

	"github.com/idfwu/ccem/pkg/models/api"
	"github.com/idfwu/ccem/pkg/models/domain"
)

func MapRiskDomainToApi(r domain.RiskLevel) api.RiskLevel {
	switch r {
	case domain.RiskLow:
		return api.RiskLow
	case domain.RiskMedium:
		return api.RiskMedium
	case domain.RiskHigh:
		return api.RiskHigh
	default:
		return api.RiskLow
	}
}

func MapRiskApiToDomain(r api.RiskLevel) domain.RiskLevel {
	switch api.RiskLevel(strings.ToLower(string(r))) {
	case api.RiskHigh:
		return domain.RiskHigh
	case api.RiskMedium:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

func MapAuditRecordDomainToApi(r domain.AuditRecord) api.AuditRecord {
	return api.AuditRecord{
		Flag:           r.Flag,
		Project:        r.Project,
		Risk:           MapRiskDomainToApi(r.Risk),
		Description:    r.Description,
		Recommendation: r.Recommendation,
	}
}

func MapAuditRecordApiToDomain(r api.AuditRecord) domain.AuditRecord {
	return domain.AuditRecord{
		Flag:           r.Flag,
		Project:        r.Project,
		Risk:           MapRiskApiToDomain(r.Risk),
		Description:    r.Description,
		Recommendation: r.Recommendation,
	}
}

func MapAuditStatusDomainToApi(s domain.AuditStatus) api.AuditStatus {
	res := api.AuditStatus{
		Completed: s.Completed,
		Timestamp: s.Timestamp,
		Audits:    make([]api.AuditRecord, 0, len(s.Audits)),
	}
	for _, r := range s.Audits {
		res.Audits = append(res.Audits, MapAuditRecordDomainToApi(r))
	}
	return res
}

func MapAuditStatusApiToDomain(s api.AuditStatus) domain.AuditStatus {
	res := domain.AuditStatus{
		Completed: s.Completed,
		Timestamp: s.Timestamp,
		Audits:    make([]domain.AuditRecord, 0, len(s.Audits)),
	}
	for _, r := range s.Audits {
		res.Audits = append(res.Audits, MapAuditRecordApiToDomain(r))
	}
	return res
}
