// Package memory holds an in-process TaskRepository used by tests
// and local runs that do not need Postgres.
package memory

import (
	"context"
	"sort"
	"sync"

	"taskboard/internal/models"
	"taskboard/internal/storage"
)

type taskRepository struct {
	mu     sync.Mutex
	nextID int64
	tasks  map[int64]models.Task
}

func NewTaskRepository() storage.TaskRepository {
	return &taskRepository{
		nextID: 1,
		tasks:  make(map[int64]models.Task),
	}
}

func (r *taskRepository) Insert(_ context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task.ID = r.nextID
	r.nextID++
	r.tasks[task.ID] = *task
	return nil
}

func (r *taskRepository) SelectByOwner(_ context.Context, ownerID string) ([]models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := make([]models.Task, 0)
	for _, task := range r.tasks {
		if task.OwnerID == ownerID {
			tasks = append(tasks, task)
		}
	}

	// Newest first, matching the Postgres ordering. Ids break ties
	// because they grow monotonically with creation time.
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].ID > tasks[j].ID
		}
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks, nil
}

func (r *taskRepository) SelectByIDAndOwner(_ context.Context, id int64, ownerID string) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return nil, storage.ErrTaskNotFound
	}
	return &task, nil
}

func (r *taskRepository) Update(_ context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.tasks[task.ID]
	if !ok || stored.OwnerID != task.OwnerID {
		return storage.ErrTaskNotFound
	}
	r.tasks[task.ID] = *task
	return nil
}

func (r *taskRepository) Delete(_ context.Context, id int64, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return storage.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}
