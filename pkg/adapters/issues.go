package adapters

import (
	"github.com/idfwu/ccem/pkg/models/api"
	"github.com/idfwu/ccem/pkg/models/domain"
)

func MapIssueDomainToApi(i domain.Issue) api.Issue {
	return api.Issue{
		Title:       i.Title,
		Priority:    int(i.Priority),
		Labels:      copyLabels(i.Labels),
		Description: i.Description,
	}
}

func MapIssueApiToDomain(i api.Issue) domain.Issue {
	return domain.Issue{
		Title:       i.Title,
		Description: i.Description,
		Priority:    domain.Priority(i.Priority),
		Labels:      copyLabels(i.Labels),
	}
}

func MapPhaseDomainToApi(p domain.Phase) api.Phase {
	res := api.Phase{
		Name:   p.Name,
		Issues: make([]api.Issue, 0, len(p.Issues)),
	}
	for _, i := range p.Issues {
		res.Issues = append(res.Issues, MapIssueDomainToApi(i))
	}
	return res
}

func MapPhaseApiToDomain(p api.Phase) domain.Phase {
	res := domain.Phase{
		Name:   p.Name,
		Issues: make([]domain.Issue, 0, len(p.Issues)),
	}
	for _, i := range p.Issues {
		res.Issues = append(res.Issues, MapIssueApiToDomain(i))
	}
	return res
}

func MapPhaseSummaryDomainToApi(p domain.Phase) api.PhaseSummary {
	return api.PhaseSummary{
		Name:       p.Name,
		IssueCount: len(p.Issues),
	}
}

func MapIssueDocumentDomainToApi(d domain.IssueDocument) api.IssueDocument {
	res := api.IssueDocument{
		ProjectID:   d.Target.ProjectID,
		TeamID:      d.Target.TeamID,
		TotalIssues: d.TotalIssues,
		Epic: api.Epic{
			Title:       d.Epic.Title,
			Description: d.Epic.Description,
			Priority:    int(d.Epic.Priority),
			Labels:      copyLabels(d.Epic.Labels),
		},
		Phases: make([]api.Phase, 0, len(d.Epic.Phases)),
		Instructions: api.Instructions{
			Method:     d.Instructions.Method,
			Order:      append([]string{}, d.Instructions.Order...),
			Validation: append([]string{}, d.Instructions.Validation...),
		},
	}
	for _, p := range d.Epic.Phases {
		res.Phases = append(res.Phases, MapPhaseDomainToApi(p))
	}
	return res
}

// MapIssueDocumentApiToDomain restores a parsed document. The target name and
// project URL are not part of the file and stay empty.
func MapIssueDocumentApiToDomain(d api.IssueDocument) domain.IssueDocument {
	res := domain.IssueDocument{
		Target: domain.Target{
			ProjectID: d.ProjectID,
			TeamID:    d.TeamID,
		},
		TotalIssues: d.TotalIssues,
		Epic: domain.Epic{
			Title:       d.Epic.Title,
			Description: d.Epic.Description,
			Priority:    domain.Priority(d.Epic.Priority),
			Labels:      copyLabels(d.Epic.Labels),
			Phases:      make([]domain.Phase, 0, len(d.Phases)),
		},
		Instructions: domain.ImportInstructions{
			Method:     d.Instructions.Method,
			Order:      append([]string{}, d.Instructions.Order...),
			Validation: append([]string{}, d.Instructions.Validation...),
		},
	}
	for _, p := range d.Phases {
		res.Epic.Phases = append(res.Epic.Phases, MapPhaseApiToDomain(p))
	}
	return res
}

func copyLabels(labels []string) []string {
	res := make([]string, len(labels))
	copy(res, labels)
	return res
}
