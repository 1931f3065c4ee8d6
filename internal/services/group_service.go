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

type groupServiceImpl struct {
	logger   zerolog.Logger
	groups   storage.GroupStore
	cache    cache.Cache
	cacheTTL time.Duration
	now      func() time.Time
}

func NewGroupService(
	logger zerolog.Logger,
	groups storage.GroupStore,
	c cache.Cache,
	cacheTTL time.Duration,
) GroupService {
	return &groupServiceImpl{
		logger:   logger,
		groups:   groups,
		cache:    c,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

func (s *groupServiceImpl) CreateGroup(ctx context.Context, group *models.Group) (*models.Group, error) {
	now := s.now().UTC()
	group.ID = primitive.NewObjectID().Hex()
	group.CreatedAt = now
	group.UpdatedAt = now

	err := s.groups.Insert(ctx, group)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			s.logger.Error().
				Err(err).
				Str("group_id", group.ID).
				Msg("group id collision on insert")
			return nil, err
		}
		s.logger.Error().
			Err(err).
			Msg("failed to insert group")
		return nil, err
	}

	dropSnapshot(ctx, s.logger, s.cache, cache.AllGroupsKey)

	s.logger.Info().
		Str("group_id", group.ID).
		Msg("created group")
	return group, nil
}

func (s *groupServiceImpl) GetGroupByID(ctx context.Context, id string) (*models.Group, error) {
	group, err := s.groups.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Error().
				Str("group_id", id).
				Msg("group not found")
			return nil, ErrGroupNotFound
		}

		s.logger.Error().
			Err(err).
			Str("group_id", id).
			Msg("failed to fetch group")
		return nil, err
	}
	s.logger.Debug().
		Str("group_id", id).
		Msg("fetched group")
	return group, nil
}

func (s *groupServiceImpl) GetAllGroups(ctx context.Context) ([]models.Group, error) {
	groups, err := fetchAllCached(ctx, s.logger, s.cache, cache.AllGroupsKey, s.cacheTTL, s.groups.FindAll)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to fetch all groups")
		return nil, err
	}

	s.logger.Info().
		Int("count", len(groups)).
		Msg("fetched all groups")
	return groups, nil
}

func (s *groupServiceImpl) UpdateGroup(ctx context.Context, group *models.Group) (bool, error) {
	existing, err := s.groups.FindByID(ctx, group.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Error().
				Str("group_id", group.ID).
				Msg("group not found")
			return false, ErrGroupNotFound
		}

		s.logger.Error().
			Err(err).
			Str("group_id", group.ID).
			Msg("failed to load group for update")
		return false, err
	}

	group.CreatedAt = existing.CreatedAt
	group.UpdatedAt = s.now().UTC()

	modified, err := s.groups.Update(ctx, group)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("group_id", group.ID).
			Msg("failed to update group")
		return false, err
	}

	dropSnapshot(ctx, s.logger, s.cache, cache.AllGroupsKey)

	if !modified {
		s.logger.Warn().
			Str("group_id", group.ID).
			Msg("update modified no documents")
		return false, nil
	}
	s.logger.Info().
		Str("group_id", group.ID).
		Msg("updated group")
	return true, nil
}

func (s *groupServiceImpl) DeleteGroup(ctx context.Context, id string) error {
	deleted, err := s.groups.Delete(ctx, id)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("group_id", id).
			Msg("failed to delete group")
		return err
	}
	if !deleted {
		s.logger.Error().
			Str("group_id", id).
			Msg("group not found")
		return ErrGroupNotFound
	}

	dropSnapshot(ctx, s.logger, s.cache, cache.AllGroupsKey)

	s.logger.Info().
		Str("group_id", id).
		Msg("deleted group")
	return nil
}
