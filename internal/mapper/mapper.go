package mapper

import (
	"task-manager-service/internal/domain"
	"task-manager-service/internal/dto"
)

func MapAuthorInfoToDTO(info domain.AuthorInfo) dto.AuthorInfoDTO {
	return dto.AuthorInfoDTO{
		Login:     info.Login,
		AvatarURL: info.AvatarURL,
	}
}

func MapDomainCommentToDTO(c *domain.Comment) dto.CommentDTO {
	return dto.CommentDTO{
		ID:         c.ID,
		Content:    c.Content,
		AuthorID:   c.AuthorID,
		AuthorInfo: MapAuthorInfoToDTO(c.AuthorInfo),
		CreatedAt:  c.CreatedAt,
		Mentions:   c.Mentions,
	}
}

func MapDomainTaskToDTO(task *domain.Task) dto.TaskDTO {
	comments := make([]dto.CommentDTO, len(task.Comments))
	for i := range task.Comments {
		comments[i] = MapDomainCommentToDTO(&task.Comments[i])
	}

	result := dto.TaskDTO{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		CreatedAt:   task.CreatedAt,
		CreatedBy:   task.CreatedBy,
		AuthorInfo:  MapAuthorInfoToDTO(task.AuthorInfo),
		AssigneeID:  task.AssigneeID,
		TeamID:      task.TeamID,
		ProjectID:   task.ProjectID,
		Priority:    task.Priority,
		DueDate:     task.DueDate,
		Comments:    comments,
		Completed:   task.Completed,
	}
	if task.AssigneeInfo != nil {
		info := MapAuthorInfoToDTO(*task.AssigneeInfo)
		result.AssigneeInfo = &info
	}
	return result
}

func MapDomainTasksToDTO(tasks []domain.Task) []dto.TaskDTO {
	result := make([]dto.TaskDTO, len(tasks))
	for i := range tasks {
		result[i] = MapDomainTaskToDTO(&tasks[i])
	}
	return result
}

func MapDomainProjectToDTO(p *domain.Project) dto.ProjectDTO {
	return dto.ProjectDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		TeamID:      p.TeamID,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
		Color:       p.Color,
		Status:      p.Status,
	}
}

func MapDomainTeamToDTO(team *domain.Team) dto.TeamDTO {
	members := make([]dto.TeamMemberDTO, len(team.Members))
	for i, m := range team.Members {
		members[i] = dto.TeamMemberDTO{
			UserID:   m.UserID,
			Info:     MapAuthorInfoToDTO(m.Info),
			Role:     m.Role,
			JoinedAt: m.JoinedAt,
		}
	}

	projects := make([]dto.ProjectDTO, len(team.Projects))
	for i := range team.Projects {
		projects[i] = MapDomainProjectToDTO(&team.Projects[i])
	}

	return dto.TeamDTO{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		OwnerID:     team.OwnerID,
		CreatedAt:   team.CreatedAt,
		Members:     members,
		Projects:    projects,
	}
}

func MapDomainTeamsToDTO(teams []domain.Team) []dto.TeamDTO {
	result := make([]dto.TeamDTO, len(teams))
	for i := range teams {
		result[i] = MapDomainTeamToDTO(&teams[i])
	}
	return result
}

func MapDomainUserToDTO(user *domain.UserInfo) dto.UserDTO {
	return dto.UserDTO{
		ID:        user.ID,
		Login:     user.Login,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
		IsOwner:   user.IsOwner,
	}
}

func MapPaymentStateToDTO(state domain.PaymentState) dto.PaymentStateDTO {
	return dto.PaymentStateDTO{
		IsPremium:   state.IsPremium,
		PaymentDate: state.PaymentDate,
		ExpiryDate:  state.ExpiryDate,
	}
}

func MapDomainAnalyticsToDTO(a *domain.Analytics) dto.AnalyticsDTO {
	return dto.AnalyticsDTO{
		TotalTasks:     a.TotalTasks,
		CompletedTasks: a.CompletedTasks,
		ActiveTasks:    a.ActiveTasks,
		CompletionRate: a.CompletionRate,
		PriorityCounts: a.PriorityCounts,
		TeamsJoined:    a.TeamsJoined,
		TeamsOwned:     a.TeamsOwned,
		TotalProjects:  a.TotalProjects,
	}
}
