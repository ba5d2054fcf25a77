package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"taskboard/internal/models"
	"taskboard/internal/storage"
)

type taskRepository struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool
}

func NewTaskRepository(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
) storage.TaskRepository {
	return &taskRepository{
		logger: logger,
		pgPool: pgPool,
	}
}

func (r *taskRepository) Insert(ctx context.Context, task *models.Task) error {
	const insertTaskQuery = `
INSERT INTO tasks (user_id,
                   title,
                   status,
                   created_at,
                   updated_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`
	err := r.pgPool.QueryRow(
		ctx,
		insertTaskQuery,
		task.OwnerID,
		task.Title,
		task.Status,
		task.CreatedAt,
		task.UpdatedAt,
	).Scan(&task.ID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Msg("failed to insert task")
		return err
	}
	r.logger.Debug().
		Int64("task_id", task.ID).
		Msg("inserted task")
	return nil
}

func (r *taskRepository) SelectByOwner(ctx context.Context, ownerID string) ([]models.Task, error) {
	const selectTasksByOwnerQuery = `
SELECT id,
       title,
       status,
       created_at,
       updated_at
FROM tasks
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
`
	rows, err := r.pgPool.Query(
		ctx,
		selectTasksByOwnerQuery,
		ownerID,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Msg("failed to select tasks by owner")
		return nil, err
	}
	defer rows.Close()

	tasks := make([]models.Task, 0)
	for rows.Next() {
		task := models.Task{OwnerID: ownerID}
		err = rows.Scan(
			&task.ID,
			&task.Title,
			&task.Status,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if err != nil {
			r.logger.Error().
				Err(err).
				Msg("failed to scan task")
			return nil, err
		}
		tasks = append(tasks, task)
	}

	err = rows.Err()
	if err != nil {
		r.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}
	r.logger.Debug().
		Int("count", len(tasks)).
		Str("owner_id", ownerID).
		Msg("selected tasks by owner")
	return tasks, nil
}

func (r *taskRepository) SelectByIDAndOwner(ctx context.Context, id int64, ownerID string) (*models.Task, error) {
	task := &models.Task{
		ID:      id,
		OwnerID: ownerID,
	}

	const selectTaskQuery = `
SELECT title,
       status,
       created_at,
       updated_at
FROM tasks
WHERE id = $1 AND user_id = $2
`
	err := r.pgPool.QueryRow(
		ctx,
		selectTaskQuery,
		task.ID,
		task.OwnerID,
	).Scan(
		&task.Title,
		&task.Status,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrTaskNotFound
		}

		r.logger.Error().
			Err(err).
			Int64("task_id", task.ID).
			Msg("failed to select task")
		return nil, err
	}
	return task, nil
}

func (r *taskRepository) Update(ctx context.Context, task *models.Task) error {
	const updateTaskQuery = `
UPDATE tasks
SET title = $1,
    status = $2,
    updated_at = $3
WHERE id = $4 AND user_id = $5
`
	tag, err := r.pgPool.Exec(
		ctx,
		updateTaskQuery,
		task.Title,
		task.Status,
		task.UpdatedAt,
		task.ID,
		task.OwnerID,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int64("task_id", task.ID).
			Msg("failed to update task")
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrTaskNotFound
	}
	r.logger.Debug().
		Int64("task_id", task.ID).
		Msg("updated task")
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id int64, ownerID string) error {
	const deleteTaskQuery = `
DELETE FROM tasks
WHERE id = $1 AND user_id = $2
`
	tag, err := r.pgPool.Exec(
		ctx,
		deleteTaskQuery,
		id,
		ownerID,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to delete task")
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrTaskNotFound
	}
	r.logger.Debug().
		Int64("task_id", id).
		Msg("deleted task")
	return nil
}
