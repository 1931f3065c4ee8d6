// Package cache provides the read-through cache layer the entity
// services put in front of the document store. Entries hold serialized
// snapshots of "all entities of a type" and expire by TTL; a cache
// failure is never fatal, callers fall through to the store.
package cache

import (
	"context"
	"time"
)

const (
	AllTasksKey  = "all_tasks"
	AllListsKey  = "all_lists"
	AllGroupsKey = "all_groups"
)

type Cache interface {
	// Get returns the cached value for key and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
