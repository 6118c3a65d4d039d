package service

import (
	"context"
	"testing"
	"time"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/identity"
	"task-manager-service/internal/my_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alice = domain.UserInfo{ID: "u1", Login: "alice", Email: "alice@example.com", AvatarURL: "https://a.example/alice.png"}
	bob   = domain.UserInfo{ID: "u2", Login: "bob", Email: "bob@example.com", AvatarURL: "https://a.example/bob.png"}
)

func newTaskService(repo *fakeTaskRepo, gate Entitlements, premiumGate bool) *TaskService {
	s := NewTaskService(repo, gate, identity.NewStaticProvider([]domain.UserInfo{alice, bob}), premiumGate)
	s.newID = sequentialIDs("task")
	return s
}

func TestCreateTask(t *testing.T) {
	ctx := context.Background()

	t.Run("created task is owned by the caller and visible in all views", func(t *testing.T) {
		repo := &fakeTaskRepo{}
		svc := newTaskService(repo, stubEntitlements{}, false)

		task, err := svc.Create(ctx, &alice, CreateTaskInput{Title: "Buy milk"})
		require.NoError(t, err)
		require.NotNil(t, task)
		assert.Equal(t, "u1", task.CreatedBy)
		assert.False(t, task.Completed)
		assert.Equal(t, domain.PriorityMedium, task.Priority)

		personal, err := svc.List(ctx, &alice, domain.ViewPersonal, domain.FilterAll, "", "")
		require.NoError(t, err)
		require.Len(t, personal, 1)
		assert.Equal(t, task.ID, personal[0].ID)

		all, err := svc.List(ctx, &alice, domain.ViewAll, domain.FilterAll, "", "")
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, task.ID, all[0].ID)
	})

	t.Run("newest task comes first", func(t *testing.T) {
		repo := &fakeTaskRepo{}
		svc := newTaskService(repo, stubEntitlements{}, false)

		_, err := svc.Create(ctx, &alice, CreateTaskInput{Title: "first"})
		require.NoError(t, err)
		second, err := svc.Create(ctx, &alice, CreateTaskInput{Title: "second"})
		require.NoError(t, err)

		tasks, err := svc.List(ctx, &alice, domain.ViewPersonal, domain.FilterAll, "", "")
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, second.ID, tasks[0].ID)
	})

	t.Run("blank title is rejected without mutation", func(t *testing.T) {
		repo := &fakeTaskRepo{}
		svc := newTaskService(repo, stubEntitlements{}, false)

		_, err := svc.Create(ctx, &alice, CreateTaskInput{Title: "   "})
		require.ErrorIs(t, err, my_errors.ErrEmptyField)
		assert.Empty(t, repo.tasks)
	})

	t.Run("unknown priority is rejected", func(t *testing.T) {
		svc := newTaskService(&fakeTaskRepo{}, stubEntitlements{}, false)

		_, err := svc.Create(ctx, &alice, CreateTaskInput{Title: "x", Priority: "urgent"})
		require.ErrorIs(t, err, my_errors.ErrInvalidInput)
	})

	t.Run("premium gate blocks non-subscribers and leaves the store untouched", func(t *testing.T) {
		repo := &fakeTaskRepo{}
		svc := newTaskService(repo, stubEntitlements{err: my_errors.ErrPremiumRequired}, true)

		_, err := svc.Create(ctx, &bob, CreateTaskInput{Title: "Buy milk"})
		require.ErrorIs(t, err, my_errors.ErrPremiumRequired)
		assert.Empty(t, repo.tasks)
	})

	t.Run("expired subscription surfaces its own error", func(t *testing.T) {
		repo := &fakeTaskRepo{}
		svc := newTaskService(repo, stubEntitlements{err: my_errors.ErrSubscriptionExpired}, true)

		_, err := svc.Create(ctx, &bob, CreateTaskInput{Title: "Buy milk"})
		require.ErrorIs(t, err, my_errors.ErrSubscriptionExpired)
		assert.Empty(t, repo.tasks)
	})

	t.Run("assignee info is denormalized onto the task", func(t *testing.T) {
		svc := newTaskService(&fakeTaskRepo{}, stubEntitlements{}, false)

		task, err := svc.Create(ctx, &alice, CreateTaskInput{Title: "review", AssigneeID: "u2"})
		require.NoError(t, err)
		require.NotNil(t, task.AssigneeInfo)
		assert.Equal(t, "bob", task.AssigneeInfo.Login)
	})

	t.Run("unknown assignee is rejected", func(t *testing.T) {
		svc := newTaskService(&fakeTaskRepo{}, stubEntitlements{}, false)

		_, err := svc.Create(ctx, &alice, CreateTaskInput{Title: "review", AssigneeID: "nobody"})
		require.ErrorIs(t, err, my_errors.ErrUserNotFound)
	})
}

func TestToggleTask(t *testing.T) {
	ctx := context.Background()

	t.Run("double toggle restores the original state", func(t *testing.T) {
		repo := &fakeTaskRepo{}
		svc := newTaskService(repo, stubEntitlements{}, false)

		task, err := svc.Create(ctx, &alice, CreateTaskInput{Title: "Buy milk"})
		require.NoError(t, err)

		toggled, err := svc.Toggle(ctx, &alice, task.ID)
		require.NoError(t, err)
		assert.True(t, toggled.Completed)

		restored, err := svc.Toggle(ctx, &alice, task.ID)
		require.NoError(t, err)
		assert.False(t, restored.Completed)
	})

	t.Run("non-creator cannot toggle and nothing changes", func(t *testing.T) {
		repo := &fakeTaskRepo{}
		svc := newTaskService(repo, stubEntitlements{}, false)

		task, err := svc.Create(ctx, &alice, CreateTaskInput{Title: "Buy milk"})
		require.NoError(t, err)
		before, err := repo.ListTasks(ctx)
		require.NoError(t, err)

		_, err = svc.Toggle(ctx, &bob, task.ID)
		require.ErrorIs(t, err, my_errors.ErrNotTaskCreator)

		after, err := repo.ListTasks(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("missing task", func(t *testing.T) {
		svc := newTaskService(&fakeTaskRepo{}, stubEntitlements{}, false)

		_, err := svc.Toggle(ctx, &alice, "nope")
		require.ErrorIs(t, err, my_errors.ErrTaskNotFound)
	})
}

func TestDeleteTask(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted task disappears from every view and filter", func(t *testing.T) {
		repo := &fakeTaskRepo{}
		svc := newTaskService(repo, stubEntitlements{}, false)

		task, err := svc.Create(ctx, &alice, CreateTaskInput{Title: "Buy milk"})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, &alice, task.ID))

		for _, view := range []string{domain.ViewPersonal, domain.ViewShared, domain.ViewAll} {
			for _, filter := range []string{domain.FilterAll, domain.FilterActive, domain.FilterCompleted, domain.FilterAssignedToMe, domain.FilterCreatedByMe} {
				tasks, err := svc.List(ctx, &alice, view, filter, "", "")
				require.NoError(t, err)
				for _, got := range tasks {
					assert.NotEqual(t, task.ID, got.ID)
				}
			}
		}
	})

	t.Run("non-creator cannot delete", func(t *testing.T) {
		repo := &fakeTaskRepo{}
		svc := newTaskService(repo, stubEntitlements{}, false)

		task, err := svc.Create(ctx, &alice, CreateTaskInput{Title: "Buy milk"})
		require.NoError(t, err)
		before, err := repo.ListTasks(ctx)
		require.NoError(t, err)

		err = svc.Delete(ctx, &bob, task.ID)
		require.ErrorIs(t, err, my_errors.ErrNotTaskCreator)

		after, err := repo.ListTasks(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestAddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("mentions are extracted in order of first appearance", func(t *testing.T) {
		repo := &fakeTaskRepo{}
		svc := newTaskService(repo, stubEntitlements{}, false)

		task, err := svc.Create(ctx, &alice, CreateTaskInput{Title: "Buy milk"})
		require.NoError(t, err)

		comment, err := svc.AddComment(ctx, &bob, task.ID, "hi @alice and @bob")
		require.NoError(t, err)
		require.NotNil(t, comment)
		assert.Equal(t, []string{"alice", "bob"}, comment.Mentions)
		assert.Equal(t, "u2", comment.AuthorID)

		stored, err := repo.GetTaskByID(ctx, task.ID)
		require.NoError(t, err)
		require.Len(t, stored.Comments, 1)
	})

	t.Run("blank content is a no-op", func(t *testing.T) {
		repo := &fakeTaskRepo{}
		svc := newTaskService(repo, stubEntitlements{}, false)

		task, err := svc.Create(ctx, &alice, CreateTaskInput{Title: "Buy milk"})
		require.NoError(t, err)

		comment, err := svc.AddComment(ctx, &alice, task.ID, "   ")
		require.NoError(t, err)
		assert.Nil(t, comment)

		stored, err := repo.GetTaskByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Empty(t, stored.Comments)
	})
}

func TestListTasks(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*TaskService, map[string]string) {
		t.Helper()
		repo := &fakeTaskRepo{}
		svc := newTaskService(repo, stubEntitlements{}, false)

		ids := map[string]string{}
		mine, err := svc.Create(ctx, &alice, CreateTaskInput{Title: "mine"})
		require.NoError(t, err)
		ids["mine"] = mine.ID

		done, err := svc.Create(ctx, &alice, CreateTaskInput{Title: "mine done"})
		require.NoError(t, err)
		_, err = svc.Toggle(ctx, &alice, done.ID)
		require.NoError(t, err)
		ids["done"] = done.ID

		assigned, err := svc.Create(ctx, &bob, CreateTaskInput{Title: "for alice", AssigneeID: "u1"})
		require.NoError(t, err)
		ids["assigned"] = assigned.ID

		team, err := svc.Create(ctx, &bob, CreateTaskInput{Title: "team task", TeamID: "t1", ProjectID: "p1"})
		require.NoError(t, err)
		ids["team"] = team.ID

		return svc, ids
	}

	taskIDs := func(tasks []domain.Task) []string {
		out := make([]string, len(tasks))
		for i, t := range tasks {
			out[i] = t.ID
		}
		return out
	}

	t.Run("personal view shows only the caller's tasks", func(t *testing.T) {
		svc, ids := seed(t)

		tasks, err := svc.List(ctx, &alice, domain.ViewPersonal, domain.FilterAll, "", "")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{ids["mine"], ids["done"]}, taskIDs(tasks))
	})

	t.Run("shared view without a team shows other users' tasks", func(t *testing.T) {
		svc, ids := seed(t)

		tasks, err := svc.List(ctx, &alice, domain.ViewShared, domain.FilterAll, "", "")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{ids["assigned"], ids["team"]}, taskIDs(tasks))
	})

	t.Run("shared view scoped to a team and project", func(t *testing.T) {
		svc, ids := seed(t)

		tasks, err := svc.List(ctx, &alice, domain.ViewShared, domain.FilterAll, "t1", "")
		require.NoError(t, err)
		assert.Equal(t, []string{ids["team"]}, taskIDs(tasks))

		tasks, err = svc.List(ctx, &alice, domain.ViewShared, domain.FilterAll, "t1", "p2")
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("all view unions everything", func(t *testing.T) {
		svc, _ := seed(t)

		tasks, err := svc.List(ctx, &alice, domain.ViewAll, domain.FilterAll, "", "")
		require.NoError(t, err)
		assert.Len(t, tasks, 4)
	})

	t.Run("status and relationship filters", func(t *testing.T) {
		svc, ids := seed(t)

		active, err := svc.List(ctx, &alice, domain.ViewPersonal, domain.FilterActive, "", "")
		require.NoError(t, err)
		assert.Equal(t, []string{ids["mine"]}, taskIDs(active))

		completed, err := svc.List(ctx, &alice, domain.ViewPersonal, domain.FilterCompleted, "", "")
		require.NoError(t, err)
		assert.Equal(t, []string{ids["done"]}, taskIDs(completed))

		assigned, err := svc.List(ctx, &alice, domain.ViewAll, domain.FilterAssignedToMe, "", "")
		require.NoError(t, err)
		assert.Equal(t, []string{ids["assigned"]}, taskIDs(assigned))

		created, err := svc.List(ctx, &bob, domain.ViewAll, domain.FilterCreatedByMe, "", "")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{ids["assigned"], ids["team"]}, taskIDs(created))
	})

	t.Run("unknown view and filter are rejected", func(t *testing.T) {
		svc, _ := seed(t)

		_, err := svc.List(ctx, &alice, "everything", domain.FilterAll, "", "")
		require.ErrorIs(t, err, my_errors.ErrInvalidInput)

		_, err = svc.List(ctx, &alice, domain.ViewAll, "urgent", "", "")
		require.ErrorIs(t, err, my_errors.ErrInvalidInput)
	})
}

func TestTaskServiceClockAndIDs(t *testing.T) {
	ctx := context.Background()

	repo := &fakeTaskRepo{}
	svc := newTaskService(repo, stubEntitlements{}, false)
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	first, err := svc.Create(ctx, &alice, CreateTaskInput{Title: "a"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, &alice, CreateTaskInput{Title: "b"})
	require.NoError(t, err)

	// Same instant, still distinct identifiers.
	assert.Equal(t, fixed, first.CreatedAt)
	assert.Equal(t, fixed, second.CreatedAt)
	assert.NotEqual(t, first.ID, second.ID)
}
