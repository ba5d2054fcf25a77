package services

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"taskboard/internal/models"
	"taskboard/internal/storage"
)

const maxTaskTitleLen = 255

type taskServiceImpl struct {
	logger zerolog.Logger
	tasks  storage.TaskRepository
}

func NewTaskService(
	logger zerolog.Logger,
	tasks storage.TaskRepository,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		tasks:  tasks,
	}
}

// normalizeTitle trims surrounding whitespace and enforces the
// 1..255 character bounds.
func normalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrTaskTitleRequired
	}
	if utf8.RuneCountInString(title) > maxTaskTitleLen {
		return "", ErrTaskTitleTooLong
	}
	return title, nil
}

func (s *taskServiceImpl) ListTasks(ctx context.Context, ownerID string) ([]models.Task, error) {
	tasks, err := s.tasks.SelectByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("owner_id", ownerID).
			Msg("failed to list tasks")
		return nil, err
	}

	s.logger.Info().
		Int("count", len(tasks)).
		Str("owner_id", ownerID).
		Msg("listed tasks")
	return tasks, nil
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error) {
	title, err := normalizeTitle(params.Title)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("owner_id", params.OwnerID).
			Msg("rejected task title")
		return nil, err
	}

	status := models.StatusToDo
	if params.Status != "" {
		status, err = models.ParseStatus(params.Status)
		if err != nil {
			s.logger.Warn().
				Str("status", params.Status).
				Msg("rejected task status")
			return nil, ErrInvalidTaskStatus
		}
	}

	now := time.Now()
	task := &models.Task{
		OwnerID:   params.OwnerID,
		Title:     title,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.tasks.Insert(ctx, task)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("owner_id", params.OwnerID).
			Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Str("owner_id", task.OwnerID).
		Msg("created task")
	return task, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.Task, error) {
	task, err := s.tasks.SelectByIDAndOwner(ctx, params.ID, params.OwnerID)
	if err != nil {
		if errors.Is(err, storage.ErrTaskNotFound) {
			s.logger.Warn().
				Int64("task_id", params.ID).
				Str("owner_id", params.OwnerID).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("task_id", params.ID).
			Msg("failed to select task")
		return nil, err
	}

	if params.Title == nil && params.Status == nil {
		s.logger.Warn().
			Int64("task_id", task.ID).
			Msg("no fields to update")
		return task, nil
	}

	if params.Title != nil {
		title, err := normalizeTitle(*params.Title)
		if err != nil {
			s.logger.Warn().
				Err(err).
				Int64("task_id", task.ID).
				Msg("rejected task title")
			return nil, err
		}
		task.Title = title
	}
	if params.Status != nil {
		status, err := models.ParseStatus(*params.Status)
		if err != nil {
			s.logger.Warn().
				Str("status", *params.Status).
				Int64("task_id", task.ID).
				Msg("rejected task status")
			return nil, ErrInvalidTaskStatus
		}
		task.Status = status
	}
	task.UpdatedAt = time.Now()

	err = s.tasks.Update(ctx, task)
	if err != nil {
		if errors.Is(err, storage.ErrTaskNotFound) {
			// Deleted between the lookup and the write.
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("task_id", task.ID).
			Msg("failed to update task")
		return nil, err
	}

	s.logger.Info().
		Int64("task_id", task.ID).
		Str("owner_id", task.OwnerID).
		Msg("updated task")
	return task, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, ownerID string, id int64) error {
	err := s.tasks.Delete(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, storage.ErrTaskNotFound) {
			s.logger.Warn().
				Int64("task_id", id).
				Str("owner_id", ownerID).
				Msg("task not found")
			return ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Int64("task_id", id).
			Msg("failed to delete task")
		return err
	}

	s.logger.Info().
		Int64("task_id", id).
		Str("owner_id", ownerID).
		Msg("deleted task")
	return nil
}
