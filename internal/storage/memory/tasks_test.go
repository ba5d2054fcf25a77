package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskboard/internal/models"
	"taskboard/internal/storage"
)

func insertTask(t *testing.T, repo storage.TaskRepository, ownerID, title string, createdAt time.Time) *models.Task {
	t.Helper()
	task := &models.Task{
		OwnerID:   ownerID,
		Title:     title,
		Status:    models.StatusToDo,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if err := repo.Insert(context.Background(), task); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	return task
}

func TestInsertAssignsUniqueIDs(t *testing.T) {
	repo := NewTaskRepository()
	now := time.Now()

	first := insertTask(t, repo, "alice", "one", now)
	second := insertTask(t, repo, "alice", "two", now)

	if first.ID == 0 || second.ID == 0 {
		t.Fatal("expected assigned ids")
	}
	if first.ID == second.ID {
		t.Fatalf("ids not unique: %d", first.ID)
	}
}

func TestSelectByOwnerNewestFirst(t *testing.T) {
	repo := NewTaskRepository()
	base := time.Now()

	insertTask(t, repo, "alice", "oldest", base.Add(-2*time.Hour))
	insertTask(t, repo, "alice", "newest", base)
	insertTask(t, repo, "alice", "middle", base.Add(-time.Hour))
	insertTask(t, repo, "bob", "other owner", base)

	tasks, err := repo.SelectByOwner(context.Background(), "alice")
	if err != nil {
		t.Fatalf("SelectByOwner: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("got %d tasks, want 3", len(tasks))
	}
	for i, want := range []string{"newest", "middle", "oldest"} {
		if tasks[i].Title != want {
			t.Errorf("tasks[%d].Title = %q, want %q", i, tasks[i].Title, want)
		}
	}
}

func TestJointLookupScopesByOwner(t *testing.T) {
	repo := NewTaskRepository()
	task := insertTask(t, repo, "alice", "private", time.Now())

	_, err := repo.SelectByIDAndOwner(context.Background(), task.ID, "bob")
	if !errors.Is(err, storage.ErrTaskNotFound) {
		t.Fatalf("foreign owner lookup: got %v, want ErrTaskNotFound", err)
	}

	err = repo.Delete(context.Background(), task.ID, "bob")
	if !errors.Is(err, storage.ErrTaskNotFound) {
		t.Fatalf("foreign owner delete: got %v, want ErrTaskNotFound", err)
	}

	stolen := *task
	stolen.OwnerID = "bob"
	err = repo.Update(context.Background(), &stolen)
	if !errors.Is(err, storage.ErrTaskNotFound) {
		t.Fatalf("foreign owner update: got %v, want ErrTaskNotFound", err)
	}

	got, err := repo.SelectByIDAndOwner(context.Background(), task.ID, "alice")
	if err != nil {
		t.Fatalf("owner lookup: %v", err)
	}
	if got.Title != "private" {
		t.Errorf("got title %q", got.Title)
	}
}
