package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/pkamenev/go-task-manager/internal/cache"
	"github.com/pkamenev/go-task-manager/internal/models"
)

func newTestGroupService(t *testing.T) (*groupServiceImpl, *memGroupStore, *memCache) {
	t.Helper()
	groups := &memGroupStore{}
	c := newMemCache()
	svc := NewGroupService(zerolog.Nop(), groups, c, 30*time.Minute).(*groupServiceImpl)
	return svc, groups, c
}

func TestCreateGroupAssignsID(t *testing.T) {
	svc, groups, _ := newTestGroupService(t)

	group, err := svc.CreateGroup(context.Background(), &models.Group{Name: "Household"})
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	if group.ID == "" {
		t.Error("expected a service-assigned id")
	}
	if len(groups.items) != 1 {
		t.Fatalf("expected 1 stored group, got %d", len(groups.items))
	}
}

func TestGetAllGroupsReadThrough(t *testing.T) {
	svc, groups, c := newTestGroupService(t)
	groups.items = append(groups.items, models.Group{ID: "g1", Name: "Household"})

	first, err := svc.GetAllGroups(context.Background())
	if err != nil {
		t.Fatalf("GetAllGroups failed: %v", err)
	}
	if len(first) != 1 || c.sets != 1 {
		t.Fatalf("expected 1 group and a cached snapshot, got %d groups sets=%d", len(first), c.sets)
	}

	groups.items = append(groups.items, models.Group{ID: "g2", Name: "Work"})

	second, err := svc.GetAllGroups(context.Background())
	if err != nil {
		t.Fatalf("GetAllGroups failed: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("expected the stale snapshot with 1 group, got %d", len(second))
	}

	c.expire(cache.AllGroupsKey)

	third, err := svc.GetAllGroups(context.Background())
	if err != nil {
		t.Fatalf("GetAllGroups failed: %v", err)
	}
	if len(third) != 2 {
		t.Fatalf("expected the snapshot to self-heal to 2 groups, got %d", len(third))
	}
}

func TestGetGroupByIDNotFound(t *testing.T) {
	svc, _, _ := newTestGroupService(t)

	_, err := svc.GetGroupByID(context.Background(), "missing")
	if !errors.Is(err, ErrGroupNotFound) {
		t.Fatalf("expected ErrGroupNotFound, got %v", err)
	}
}

func TestUpdateGroupNotFound(t *testing.T) {
	svc, _, _ := newTestGroupService(t)

	updated, err := svc.UpdateGroup(context.Background(), &models.Group{
		ID:   "missing",
		Name: "renamed",
	})
	if !errors.Is(err, ErrGroupNotFound) {
		t.Fatalf("expected ErrGroupNotFound, got %v", err)
	}
	if updated {
		t.Error("expected updated=false")
	}
}

func TestDeleteGroupInvalidatesSnapshot(t *testing.T) {
	svc, groups, c := newTestGroupService(t)
	groups.items = append(groups.items, models.Group{
		ID:      "g1",
		Name:    "Household",
		ListIDs: []string{"l1"},
		TaskIDs: []string{"t1"},
	})
	c.entries[cache.AllGroupsKey] = memCacheEntry{data: []byte("[]")}

	if err := svc.DeleteGroup(context.Background(), "g1"); err != nil {
		t.Fatalf("DeleteGroup failed: %v", err)
	}
	if _, ok := c.entries[cache.AllGroupsKey]; ok {
		t.Error("expected the snapshot key to be invalidated")
	}
	if len(groups.items) != 0 {
		t.Error("expected the group to be removed")
	}
}
