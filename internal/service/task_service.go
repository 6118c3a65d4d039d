package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/identity"
	"task-manager-service/internal/my_errors"

	"github.com/google/uuid"
)

type CreateTaskInput struct {
	Title       string
	Description string
	Priority    string
	DueDate     *time.Time
	AssigneeID  string
	TeamID      string
	ProjectID   string
}

type TaskService struct {
	repo        TaskRepository
	payments    Entitlements
	identities  identity.Provider
	premiumGate bool
	now         func() time.Time
	newID       func() string
}

func NewTaskService(repo TaskRepository, payments Entitlements, identities identity.Provider, premiumGate bool) *TaskService {
	return &TaskService{
		repo:        repo,
		payments:    payments,
		identities:  identities,
		premiumGate: premiumGate,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

func (s *TaskService) Create(ctx context.Context, caller *domain.UserInfo, input CreateTaskInput) (*domain.Task, error) {
	if caller == nil || caller.ID == "" {
		return nil, fmt.Errorf("%w", my_errors.ErrNotAuthenticated)
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("title: %w", my_errors.ErrEmptyField)
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !domain.ValidPriority(priority) {
		return nil, fmt.Errorf("priority %q: %w", input.Priority, my_errors.ErrInvalidInput)
	}

	if s.premiumGate {
		if err := s.payments.RequirePremium(ctx, caller.ID); err != nil {
			return nil, err
		}
	}

	task := &domain.Task{
		ID:          s.newID(),
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		CreatedAt:   s.now(),
		CreatedBy:   caller.ID,
		AuthorInfo:  caller.Author(),
		TeamID:      input.TeamID,
		ProjectID:   input.ProjectID,
		Priority:    priority,
		DueDate:     input.DueDate,
		Comments:    []domain.Comment{},
	}

	if input.AssigneeID != "" {
		assignee, err := s.identities.ByID(ctx, input.AssigneeID)
		if err != nil {
			return nil, fmt.Errorf("assignee: %w", my_errors.ErrUserNotFound)
		}
		info := assignee.Author()
		task.AssigneeID = assignee.ID
		task.AssigneeInfo = &info
	}

	if err := s.repo.InsertTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}

	return task, nil
}

// Toggle flips the completion flag. Only the creator may do so;
// assignment does not grant mutation rights.
func (s *TaskService) Toggle(ctx context.Context, caller *domain.UserInfo, taskID string) (*domain.Task, error) {
	task, err := s.creatorOwnedTask(ctx, caller, taskID)
	if err != nil {
		return nil, err
	}

	task.Completed = !task.Completed
	if err := s.repo.UpdateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, caller *domain.UserInfo, taskID string) error {
	task, err := s.creatorOwnedTask(ctx, caller, taskID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteTask(ctx, task.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// AddComment appends a comment with its extracted mentions. Blank content
// is a no-op, not an error.
func (s *TaskService) AddComment(ctx context.Context, caller *domain.UserInfo, taskID, content string) (*domain.Comment, error) {
	if caller == nil || caller.ID == "" {
		return nil, fmt.Errorf("%w", my_errors.ErrNotAuthenticated)
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, nil
	}

	task, err := s.repo.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	comment := domain.Comment{
		ID:         s.newID(),
		Content:    content,
		AuthorID:   caller.ID,
		AuthorInfo: caller.Author(),
		CreatedAt:  s.now(),
		Mentions:   domain.ExtractMentions(content),
	}

	task.Comments = append(task.Comments, comment)
	if err := s.repo.UpdateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}

	return &comment, nil
}

// List is the pure view projection over the canonical collection. The
// result is freshly computed on every call, in insertion order.
func (s *TaskService) List(ctx context.Context, caller *domain.UserInfo, view, filter, teamID, projectID string) ([]domain.Task, error) {
	if caller == nil || caller.ID == "" {
		return nil, fmt.Errorf("%w", my_errors.ErrNotAuthenticated)
	}

	if view == "" {
		view = domain.ViewAll
	}
	if !domain.ValidView(view) {
		return nil, fmt.Errorf("view %q: %w", view, my_errors.ErrInvalidInput)
	}
	if filter == "" {
		filter = domain.FilterAll
	}
	if !domain.ValidFilter(filter) {
		return nil, fmt.Errorf("filter %q: %w", filter, my_errors.ErrInvalidInput)
	}

	tasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if !inView(t, caller.ID, view, teamID, projectID) {
			continue
		}
		if !matchesFilter(t, caller.ID, filter) {
			continue
		}
		result = append(result, t)
	}

	return result, nil
}

func inView(t domain.Task, callerID, view, teamID, projectID string) bool {
	switch view {
	case domain.ViewPersonal:
		return t.CreatedBy == callerID
	case domain.ViewShared:
		// With a team selected the shared view is team-scoped; without
		// one it shows other users' tasks.
		if teamID != "" {
			if t.TeamID != teamID {
				return false
			}
			return projectID == "" || t.ProjectID == projectID
		}
		return t.CreatedBy != callerID
	default:
		// The aggregate view unions the caller's own tasks with everyone
		// else's, which over the canonical collection is every task.
		return true
	}
}

func matchesFilter(t domain.Task, callerID, filter string) bool {
	switch filter {
	case domain.FilterActive:
		return !t.Completed
	case domain.FilterCompleted:
		return t.Completed
	case domain.FilterAssignedToMe:
		return t.AssigneeID == callerID
	case domain.FilterCreatedByMe:
		return t.CreatedBy == callerID
	default:
		return true
	}
}

func (s *TaskService) creatorOwnedTask(ctx context.Context, caller *domain.UserInfo, taskID string) (*domain.Task, error) {
	if caller == nil || caller.ID == "" {
		return nil, fmt.Errorf("%w", my_errors.ErrNotAuthenticated)
	}
	if taskID == "" {
		return nil, fmt.Errorf("task id: %w", my_errors.ErrEmptyField)
	}

	task, err := s.repo.GetTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if task.CreatedBy != caller.ID {
		return nil, fmt.Errorf("%w", my_errors.ErrNotTaskCreator)
	}

	return task, nil
}
