package domain

import "time"

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// View selects which slice of the canonical task collection is visible.
const (
	ViewPersonal = "personal"
	ViewShared   = "shared"
	ViewAll      = "all"
)

// Filter narrows a view by status or relationship to the caller.
const (
	FilterAll          = "all"
	FilterActive       = "active"
	FilterCompleted    = "completed"
	FilterAssignedToMe = "assigned-to-me"
	FilterCreatedByMe  = "created-by-me"
)

type Task struct {
	CreatedAt    time.Time   `json:"created_at"`
	DueDate      *time.Time  `json:"due_date,omitempty"`
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description,omitempty"`
	CreatedBy    string      `json:"created_by"`
	AuthorInfo   AuthorInfo  `json:"author_info"`
	AssigneeID   string      `json:"assignee_id,omitempty"`
	AssigneeInfo *AuthorInfo `json:"assignee_info,omitempty"`
	TeamID       string      `json:"team_id,omitempty"`
	ProjectID    string      `json:"project_id,omitempty"`
	Priority     string      `json:"priority"`
	Comments     []Comment   `json:"comments"`
	Completed    bool        `json:"completed"`
}

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func ValidView(v string) bool {
	switch v {
	case ViewPersonal, ViewShared, ViewAll:
		return true
	}
	return false
}

func ValidFilter(f string) bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted, FilterAssignedToMe, FilterCreatedByMe:
		return true
	}
	return false
}
