package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/my_errors"

	"github.com/jung-kurt/gofpdf"
)

type AnalyticsService struct {
	taskRepo TaskRepository
	teamRepo TeamRepository
}

func NewAnalyticsService(taskRepo TaskRepository, teamRepo TeamRepository) *AnalyticsService {
	return &AnalyticsService{
		taskRepo: taskRepo,
		teamRepo: teamRepo,
	}
}

// Summary aggregates over the caller's personal tasks and their teams.
func (s *AnalyticsService) Summary(ctx context.Context, caller *domain.UserInfo) (*domain.Analytics, error) {
	if caller == nil || caller.ID == "" {
		return nil, fmt.Errorf("%w", my_errors.ErrNotAuthenticated)
	}

	tasks, err := s.taskRepo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	analytics := &domain.Analytics{
		PriorityCounts: map[string]int{
			domain.PriorityLow:    0,
			domain.PriorityMedium: 0,
			domain.PriorityHigh:   0,
		},
	}

	for _, t := range tasks {
		if t.CreatedBy != caller.ID {
			continue
		}
		analytics.TotalTasks++
		if t.Completed {
			analytics.CompletedTasks++
		} else {
			analytics.ActiveTasks++
		}
		analytics.PriorityCounts[t.Priority]++
	}

	if analytics.TotalTasks > 0 {
		rate := float64(analytics.CompletedTasks) / float64(analytics.TotalTasks) * 100
		analytics.CompletionRate = int(math.Round(rate))
	}

	teams, err := s.teamRepo.ListTeams(ctx)
	if err != nil {
		return nil, err
	}

	for _, team := range teams {
		if !team.HasMember(caller.ID) {
			continue
		}
		analytics.TeamsJoined++
		if team.OwnerID == caller.ID {
			analytics.TeamsOwned++
			// Simple sum; duplicates across teams are not collapsed.
			analytics.TotalProjects += len(team.Projects)
		}
	}

	return analytics, nil
}

// Export renders the summary as json, csv or pdf.
func (s *AnalyticsService) Export(ctx context.Context, caller *domain.UserInfo, format string) ([]byte, string, error) {
	summary, err := s.Summary(ctx, caller)
	if err != nil {
		return nil, "", err
	}

	switch strings.ToLower(format) {
	case "", "json":
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return nil, "", fmt.Errorf("failed to encode summary: %w", err)
		}
		return data, "application/json", nil
	case "csv":
		var b strings.Builder
		b.WriteString("metric,value\n")
		fmt.Fprintf(&b, "total_tasks,%d\n", summary.TotalTasks)
		fmt.Fprintf(&b, "completed_tasks,%d\n", summary.CompletedTasks)
		fmt.Fprintf(&b, "active_tasks,%d\n", summary.ActiveTasks)
		fmt.Fprintf(&b, "completion_rate,%d\n", summary.CompletionRate)
		fmt.Fprintf(&b, "priority_low,%d\n", summary.PriorityCounts[domain.PriorityLow])
		fmt.Fprintf(&b, "priority_medium,%d\n", summary.PriorityCounts[domain.PriorityMedium])
		fmt.Fprintf(&b, "priority_high,%d\n", summary.PriorityCounts[domain.PriorityHigh])
		fmt.Fprintf(&b, "teams_joined,%d\n", summary.TeamsJoined)
		fmt.Fprintf(&b, "teams_owned,%d\n", summary.TeamsOwned)
		fmt.Fprintf(&b, "total_projects,%d\n", summary.TotalProjects)
		return []byte(b.String()), "text/csv", nil
	case "pdf":
		data, err := renderPDF(caller, summary)
		if err != nil {
			return nil, "", err
		}
		return data, "application/pdf", nil
	default:
		return nil, "", fmt.Errorf("format %q: %w", format, my_errors.ErrInvalidInput)
	}
}

func renderPDF(caller *domain.UserInfo, summary *domain.Analytics) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Productivity Report")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 6, fmt.Sprintf("User: @%s", caller.Login), "0", "L", false)

	lines := []string{
		fmt.Sprintf("Tasks: %d total, %d completed, %d active (%d%% done)",
			summary.TotalTasks, summary.CompletedTasks, summary.ActiveTasks, summary.CompletionRate),
		fmt.Sprintf("By priority: %d low, %d medium, %d high",
			summary.PriorityCounts[domain.PriorityLow],
			summary.PriorityCounts[domain.PriorityMedium],
			summary.PriorityCounts[domain.PriorityHigh]),
		fmt.Sprintf("Teams: %d joined, %d owned, %d projects across owned teams",
			summary.TeamsJoined, summary.TeamsOwned, summary.TotalProjects),
	}
	for _, line := range lines {
		pdf.MultiCell(0, 6, line, "0", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
