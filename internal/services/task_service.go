package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pkamenev/go-task-manager/internal/cache"
	"github.com/pkamenev/go-task-manager/internal/models"
	"github.com/pkamenev/go-task-manager/internal/schedule"
	"github.com/pkamenev/go-task-manager/internal/storage"
)

type taskServiceImpl struct {
	logger   zerolog.Logger
	tasks    storage.TaskStore
	lists    storage.ListStore
	cache    cache.Cache
	cacheTTL time.Duration
	now      func() time.Time
}

func NewTaskService(
	logger zerolog.Logger,
	tasks storage.TaskStore,
	lists storage.ListStore,
	c cache.Cache,
	cacheTTL time.Duration,
) TaskService {
	return &taskServiceImpl{
		logger:   logger,
		tasks:    tasks,
		lists:    lists,
		cache:    c,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, task *models.Task) (*models.Task, error) {
	now := s.now().UTC()
	flags := schedule.Evaluate(now, task.EndHour, schedule.Flags{}, true)

	task.ID = primitive.NewObjectID().Hex()
	task.IsActive = flags.IsActive
	task.HasExpired = flags.HasExpired
	task.CreatedAt = now
	task.UpdatedAt = now

	err := s.tasks.Insert(ctx, task)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			s.logger.Error().
				Err(err).
				Str("task_id", task.ID).
				Msg("task id collision on insert")
			return nil, err
		}
		s.logger.Error().
			Err(err).
			Msg("failed to insert task")
		return nil, err
	}
	s.logger.Debug().
		Str("task_id", task.ID).
		Bool("has_expired", task.HasExpired).
		Msg("inserted task")

	if task.ListID != "" {
		pushed, err := s.lists.PushTaskID(ctx, task.ListID, task.ID)
		if err != nil {
			// The task already exists and is not rolled back.
			s.logger.Warn().
				Err(err).
				Str("list_id", task.ListID).
				Msg("failed to attach task to list")
		} else if !pushed {
			s.logger.Warn().
				Str("list_id", task.ListID).
				Msg("list not found while attaching task")
		} else {
			s.logger.Debug().
				Str("list_id", task.ListID).
				Str("task_id", task.ID).
				Msg("attached task to list")
		}
	}

	dropSnapshot(ctx, s.logger, s.cache, cache.AllTasksKey)

	s.logger.Info().
		Str("task_id", task.ID).
		Msg("created task")
	return task, nil
}

func (s *taskServiceImpl) GetTaskByID(ctx context.Context, id string) (*models.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Error().
				Str("task_id", id).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to fetch task")
		return nil, err
	}
	s.logger.Debug().
		Str("task_id", id).
		Msg("fetched task")
	return task, nil
}

func (s *taskServiceImpl) GetAllTasks(ctx context.Context) ([]models.Task, error) {
	tasks, err := fetchAllCached(ctx, s.logger, s.cache, cache.AllTasksKey, s.cacheTTL, s.tasks.FindAll)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to fetch all tasks")
		return nil, err
	}

	s.logger.Info().
		Int("count", len(tasks)).
		Msg("fetched all tasks")
	return tasks, nil
}

func (s *taskServiceImpl) GetTasksByListID(ctx context.Context, listID string) ([]models.Task, error) {
	tasks, err := s.tasks.FindByListID(ctx, listID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("list_id", listID).
			Msg("failed to fetch tasks by list id")
		return nil, err
	}

	s.logger.Info().
		Int("count", len(tasks)).
		Str("list_id", listID).
		Msg("fetched tasks by list id")
	return tasks, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, task *models.Task) (bool, error) {
	existing, err := s.tasks.FindByID(ctx, task.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Error().
				Str("task_id", task.ID).
				Msg("task not found")
			return false, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Str("task_id", task.ID).
			Msg("failed to load task for update")
		return false, err
	}

	now := s.now().UTC()
	flags := schedule.Evaluate(now, task.EndHour, schedule.Flags{
		IsActive:   existing.IsActive,
		HasExpired: existing.HasExpired,
	}, false)
	task.IsActive = flags.IsActive
	task.HasExpired = flags.HasExpired
	task.CreatedAt = existing.CreatedAt
	task.UpdatedAt = now

	modified, err := s.tasks.Update(ctx, task)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("task_id", task.ID).
			Msg("failed to update task")
		return false, err
	}

	dropSnapshot(ctx, s.logger, s.cache, cache.AllTasksKey)

	if !modified {
		s.logger.Warn().
			Str("task_id", task.ID).
			Msg("update modified no documents")
		return false, nil
	}
	s.logger.Info().
		Str("task_id", task.ID).
		Msg("updated task")
	return true, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, id string) error {
	deleted, err := s.tasks.Delete(ctx, id)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("task_id", id).
			Msg("failed to delete task")
		return err
	}
	if !deleted {
		s.logger.Error().
			Str("task_id", id).
			Msg("task not found")
		return ErrTaskNotFound
	}

	dropSnapshot(ctx, s.logger, s.cache, cache.AllTasksKey)

	s.logger.Info().
		Str("task_id", id).
		Msg("deleted task")
	return nil
}
