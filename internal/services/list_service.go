package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pkamenev/go-task-manager/internal/cache"
	"github.com/pkamenev/go-task-manager/internal/models"
	"github.com/pkamenev/go-task-manager/internal/storage"
)

type listServiceImpl struct {
	logger   zerolog.Logger
	lists    storage.ListStore
	cache    cache.Cache
	cacheTTL time.Duration
	now      func() time.Time
}

func NewListService(
	logger zerolog.Logger,
	lists storage.ListStore,
	c cache.Cache,
	cacheTTL time.Duration,
) ListService {
	return &listServiceImpl{
		logger:   logger,
		lists:    lists,
		cache:    c,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

func (s *listServiceImpl) CreateList(ctx context.Context, list *models.List) (*models.List, error) {
	now := s.now().UTC()
	list.ID = primitive.NewObjectID().Hex()
	if list.TaskIDs == nil {
		list.TaskIDs = make([]string, 0)
	}
	list.CreatedAt = now
	list.UpdatedAt = now

	err := s.lists.Insert(ctx, list)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			s.logger.Error().
				Err(err).
				Str("list_id", list.ID).
				Msg("list id collision on insert")
			return nil, err
		}
		s.logger.Error().
			Err(err).
			Msg("failed to insert list")
		return nil, err
	}

	dropSnapshot(ctx, s.logger, s.cache, cache.AllListsKey)

	s.logger.Info().
		Str("list_id", list.ID).
		Msg("created list")
	return list, nil
}

func (s *listServiceImpl) GetListByID(ctx context.Context, id string) (*models.List, error) {
	list, err := s.lists.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Error().
				Str("list_id", id).
				Msg("list not found")
			return nil, ErrListNotFound
		}

		s.logger.Error().
			Err(err).
			Str("list_id", id).
			Msg("failed to fetch list")
		return nil, err
	}
	s.logger.Debug().
		Str("list_id", id).
		Msg("fetched list")
	return list, nil
}

func (s *listServiceImpl) GetAllLists(ctx context.Context) ([]models.List, error) {
	lists, err := fetchAllCached(ctx, s.logger, s.cache, cache.AllListsKey, s.cacheTTL, s.lists.FindAll)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to fetch all lists")
		return nil, err
	}

	s.logger.Info().
		Int("count", len(lists)).
		Msg("fetched all lists")
	return lists, nil
}

func (s *listServiceImpl) UpdateList(ctx context.Context, list *models.List) (bool, error) {
	existing, err := s.lists.FindByID(ctx, list.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Error().
				Str("list_id", list.ID).
				Msg("list not found")
			return false, ErrListNotFound
		}

		s.logger.Error().
			Err(err).
			Str("list_id", list.ID).
			Msg("failed to load list for update")
		return false, err
	}

	list.CreatedAt = existing.CreatedAt
	list.UpdatedAt = s.now().UTC()

	modified, err := s.lists.Update(ctx, list)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("list_id", list.ID).
			Msg("failed to update list")
		return false, err
	}

	dropSnapshot(ctx, s.logger, s.cache, cache.AllListsKey)

	if !modified {
		s.logger.Warn().
			Str("list_id", list.ID).
			Msg("update modified no documents")
		return false, nil
	}
	s.logger.Info().
		Str("list_id", list.ID).
		Msg("updated list")
	return true, nil
}

func (s *listServiceImpl) DeleteList(ctx context.Context, id string) error {
	deleted, err := s.lists.Delete(ctx, id)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("list_id", id).
			Msg("failed to delete list")
		return err
	}
	if !deleted {
		s.logger.Error().
			Str("list_id", id).
			Msg("list not found")
		return ErrListNotFound
	}

	dropSnapshot(ctx, s.logger, s.cache, cache.AllListsKey)

	s.logger.Info().
		Str("list_id", id).
		Msg("deleted list")
	return nil
}
