package dto

import "time"

type AuthorInfoDTO struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

type CommentDTO struct {
	CreatedAt  time.Time     `json:"created_at"`
	ID         string        `json:"id"`
	Content    string        `json:"content"`
	AuthorID   string        `json:"author_id"`
	AuthorInfo AuthorInfoDTO `json:"author_info"`
	Mentions   []string      `json:"mentions"`
}

type TaskDTO struct {
	CreatedAt    time.Time      `json:"created_at"`
	DueDate      *time.Time     `json:"due_date,omitempty"`
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description,omitempty"`
	CreatedBy    string         `json:"created_by"`
	AuthorInfo   AuthorInfoDTO  `json:"author_info"`
	AssigneeID   string         `json:"assignee_id,omitempty"`
	AssigneeInfo *AuthorInfoDTO `json:"assignee_info,omitempty"`
	TeamID       string         `json:"team_id,omitempty"`
	ProjectID    string         `json:"project_id,omitempty"`
	Priority     string         `json:"priority"`
	Comments     []CommentDTO   `json:"comments"`
	Completed    bool           `json:"completed"`
}
