package response

import "task-manager-service/internal/dto"

type TaskResponse struct {
	Task dto.TaskDTO `json:"task"`
}

type TaskListResponse struct {
	Tasks []dto.TaskDTO `json:"tasks"`
	Count int           `json:"count"`
}

type CommentResponse struct {
	Comment *dto.CommentDTO `json:"comment"`
}
