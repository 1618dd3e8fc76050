package api

type Issue struct {
	Title       string   `json:"title"`
	Priority    int      `json:"priority"`
	Labels      []string `json:"labels"`
	Description string   `json:"description"`
}

type Epic struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    int      `json:"priority"`
	Labels      []string `json:"labels"`
}

type Phase struct {
	Name   string  `json:"name"`
	Issues []Issue `json:"issues"`
}

type Instructions struct {
	Method     string   `json:"method"`
	Order      []string `json:"order"`
	Validation []string `json:"validation"`
}

// IssueDocument is the file written by the emitter for manual import.
type IssueDocument struct {
	ProjectID    string       `json:"project_id"`
	TeamID       string       `json:"team_id"`
	TotalIssues  int          `json:"total_issues"`
	Epic         Epic         `json:"epic"`
	Phases       []Phase      `json:"phases"`
	Instructions Instructions `json:"instructions"`
}

type PhaseSummary struct {
	Name       string `json:"name"`
	IssueCount int    `json:"issue_count"`
}
