package repository

import (
	"context"
	"fmt"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/my_errors"
)

// TaskRepository owns the canonical task collection persisted in the
// shared-tasks slot, most recently created first. The personal and shared
// views are computed over it by the service layer.
type TaskRepository struct {
	store *SlotStore
}

func NewTaskRepository(store *SlotStore) *TaskRepository {
	return &TaskRepository{store: store}
}

func (r *TaskRepository) ListTasks(ctx context.Context) ([]domain.Task, error) {
	tasks := []domain.Task{}
	if _, err := r.store.Get(ctx, SlotSharedTasks, &tasks); err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	return tasks, nil
}

// InsertTask prepends the task. Inserting an identifier that already
// exists is a no-op, so the insert is idempotent.
func (r *TaskRepository) InsertTask(ctx context.Context, task *domain.Task) error {
	tasks, err := r.ListTasks(ctx)
	if err != nil {
		return err
	}

	for _, t := range tasks {
		if t.ID == task.ID {
			return nil
		}
	}

	tasks = append([]domain.Task{*task}, tasks...)
	return r.store.Put(ctx, SlotSharedTasks, tasks)
}

func (r *TaskRepository) GetTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	tasks, err := r.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	for i := range tasks {
		if tasks[i].ID == taskID {
			return &tasks[i], nil
		}
	}
	return nil, fmt.Errorf("%w", my_errors.ErrTaskNotFound)
}

// UpdateTask replaces the task with the same identifier in place,
// preserving collection order.
func (r *TaskRepository) UpdateTask(ctx context.Context, task *domain.Task) error {
	tasks, err := r.ListTasks(ctx)
	if err != nil {
		return err
	}

	for i := range tasks {
		if tasks[i].ID == task.ID {
			tasks[i] = *task
			return r.store.Put(ctx, SlotSharedTasks, tasks)
		}
	}
	return fmt.Errorf("%w", my_errors.ErrTaskNotFound)
}

func (r *TaskRepository) DeleteTask(ctx context.Context, taskID string) error {
	tasks, err := r.ListTasks(ctx)
	if err != nil {
		return err
	}

	remaining := tasks[:0]
	found := false
	for _, t := range tasks {
		if t.ID == taskID {
			found = true
			continue
		}
		remaining = append(remaining, t)
	}
	if !found {
		return fmt.Errorf("%w", my_errors.ErrTaskNotFound)
	}

	return r.store.Put(ctx, SlotSharedTasks, remaining)
}
