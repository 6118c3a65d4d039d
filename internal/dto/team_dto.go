package dto

import "time"

type TeamMemberDTO struct {
	JoinedAt time.Time     `json:"joined_at"`
	UserID   string        `json:"user_id"`
	Info     AuthorInfoDTO `json:"info"`
	Role     string        `json:"role"`
}

type ProjectDTO struct {
	CreatedAt   time.Time `json:"created_at"`
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	TeamID      string    `json:"team_id"`
	CreatedBy   string    `json:"created_by"`
	Color       string    `json:"color,omitempty"`
	Status      string    `json:"status"`
}

type TeamDTO struct {
	CreatedAt   time.Time       `json:"created_at"`
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	OwnerID     string          `json:"owner_id"`
	Members     []TeamMemberDTO `json:"members"`
	Projects    []ProjectDTO    `json:"projects"`
}
