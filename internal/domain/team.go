package domain

import "time"

const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusArchived  = "archived"
)

// DefaultProjectName is the project every team starts with.
const DefaultProjectName = "General"

type Team struct {
	CreatedAt   time.Time    `json:"created_at"`
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	OwnerID     string       `json:"owner_id"`
	Members     []TeamMember `json:"members"`
	Projects    []Project    `json:"projects"`
}

type TeamMember struct {
	JoinedAt time.Time  `json:"joined_at"`
	UserID   string     `json:"user_id"`
	Info     AuthorInfo `json:"info"`
	Role     string     `json:"role"`
}

type Project struct {
	CreatedAt   time.Time `json:"created_at"`
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	TeamID      string    `json:"team_id"`
	CreatedBy   string    `json:"created_by"`
	Color       string    `json:"color,omitempty"`
	Status      string    `json:"status"`
}

// HasMember reports whether userID belongs to the team.
func (t *Team) HasMember(userID string) bool {
	for _, m := range t.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}
