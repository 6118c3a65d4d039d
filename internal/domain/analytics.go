package domain

type Analytics struct {
	PriorityCounts map[string]int `json:"priority_counts"`
	TotalTasks     int            `json:"total_tasks"`
	CompletedTasks int            `json:"completed_tasks"`
	ActiveTasks    int            `json:"active_tasks"`
	CompletionRate int            `json:"completion_rate"`
	TeamsJoined    int            `json:"teams_joined"`
	TeamsOwned     int            `json:"teams_owned"`
	TotalProjects  int            `json:"total_projects"`
}
