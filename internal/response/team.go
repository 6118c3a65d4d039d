package response

import "task-manager-service/internal/dto"

type TeamResponse struct {
	Team dto.TeamDTO `json:"team"`
}

type TeamListResponse struct {
	Teams []dto.TeamDTO `json:"teams"`
	Count int           `json:"count"`
}

type ProjectResponse struct {
	Project *dto.ProjectDTO `json:"project"`
}

type AnalyticsResponse struct {
	Analytics dto.AnalyticsDTO `json:"analytics"`
}
