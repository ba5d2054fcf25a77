package storage

import (
	"context"
	"errors"

	"taskboard/internal/models"
)

// ErrTaskNotFound is returned by every lookup keyed on id and owner
// when no row matches. A task that exists but belongs to another
// owner is indistinguishable from one that never existed.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository persists tasks. Insert assigns the id and echoes
// storage timestamps back into the given task. Update and Delete key
// on id and owner jointly and report ErrTaskNotFound on a miss.
type TaskRepository interface {
	Insert(ctx context.Context, task *models.Task) error
	SelectByOwner(ctx context.Context, ownerID string) ([]models.Task, error)
	SelectByIDAndOwner(ctx context.Context, id int64, ownerID string) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id int64, ownerID string) error
}
