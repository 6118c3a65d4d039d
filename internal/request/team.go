package request

type CreateTeamRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"max=2000"`
}

type CreateProjectRequest struct {
	TeamID      string `json:"team_id" validate:"max=255"`
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"max=2000"`
	Color       string `json:"color" validate:"max=32"`
}
