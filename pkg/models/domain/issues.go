package domain

// Priority follows the tracker convention: lower is more urgent.
type Priority int

const (
	PriorityUrgent Priority = 1
	PriorityHigh   Priority = 2
)

type Issue struct {
	Title       string
	Description string
	Priority    Priority
	Labels      []string
}

type Phase struct {
	Name   string
	Issues []Issue
}

// Epic is the root of the issue hierarchy. Every phase belongs to exactly one epic.
type Epic struct {
	Title       string
	Description string
	Priority    Priority
	Labels      []string
	Phases      []Phase
}

// SubIssueCount returns the number of issues across all phases.
func (e Epic) SubIssueCount() int {
	count := 0
	for _, phase := range e.Phases {
		count += len(phase.Issues)
	}
	return count
}

// TotalIssues counts the epic itself plus every phase issue.
func (e Epic) TotalIssues() int {
	return 1 + e.SubIssueCount()
}

// Target identifies the tracker project the hierarchy is meant for.
type Target struct {
	Name       string
	ProjectID  string
	TeamID     string
	ProjectURL string
}

type ImportInstructions struct {
	Method     string
	Order      []string
	Validation []string
}

// IssueDocument is everything an operator needs to replicate the hierarchy by hand.
type IssueDocument struct {
	Target       Target
	TotalIssues  int
	Epic         Epic
	Instructions ImportInstructions
}
