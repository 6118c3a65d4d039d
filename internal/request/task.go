package request

import "time"

type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=500"`
	Description string     `json:"description" validate:"max=5000"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date"`
	AssigneeID  string     `json:"assignee_id" validate:"max=255"`
	TeamID      string     `json:"team_id" validate:"max=255"`
	ProjectID   string     `json:"project_id" validate:"max=255"`
}

type ToggleTaskRequest struct {
	TaskID string `json:"task_id" validate:"required,min=1,max=255"`
}

type DeleteTaskRequest struct {
	TaskID string `json:"task_id" validate:"required,min=1,max=255"`
}

type AddCommentRequest struct {
	TaskID  string `json:"task_id" validate:"required,min=1,max=255"`
	Content string `json:"content" validate:"max=5000"`
}
