package dto

type UserDTO struct {
	ID        string `json:"id"`
	Login     string `json:"login"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
	IsOwner   bool   `json:"is_owner"`
}

type PaymentStateDTO struct {
	IsPremium   bool   `json:"is_premium"`
	PaymentDate *int64 `json:"payment_date"`
	ExpiryDate  *int64 `json:"expiry_date"`
}

type AnalyticsDTO struct {
	PriorityCounts map[string]int `json:"priority_counts"`
	TotalTasks     int            `json:"total_tasks"`
	CompletedTasks int            `json:"completed_tasks"`
	ActiveTasks    int            `json:"active_tasks"`
	CompletionRate int            `json:"completion_rate"`
	TeamsJoined    int            `json:"teams_joined"`
	TeamsOwned     int            `json:"teams_owned"`
	TotalProjects  int            `json:"total_projects"`
}
