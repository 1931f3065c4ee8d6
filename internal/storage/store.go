// Package storage defines the document store contract the services
// depend on. The mongodb subpackage provides the production backend;
// tests substitute in-memory fakes.
package storage

import (
	"context"
	"errors"

	"github.com/pkamenev/go-task-manager/internal/models"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

// Update and Delete report whether at least one document was modified
// or removed. Updates write a fixed field set and never touch the
// document id or creation timestamp.

type TaskStore interface {
	Insert(ctx context.Context, task *models.Task) error
	FindByID(ctx context.Context, id string) (*models.Task, error)
	FindAll(ctx context.Context) ([]models.Task, error)
	FindByListID(ctx context.Context, listID string) ([]models.Task, error)
	Update(ctx context.Context, task *models.Task) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ListStore interface {
	Insert(ctx context.Context, list *models.List) error
	FindByID(ctx context.Context, id string) (*models.List, error)
	FindAll(ctx context.Context) ([]models.List, error)
	Update(ctx context.Context, list *models.List) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)

	// PushTaskID appends a task id to the list's task_ids via a
	// targeted partial update. It reports false when no list
	// matched the given id.
	PushTaskID(ctx context.Context, listID, taskID string) (bool, error)
}

type GroupStore interface {
	Insert(ctx context.Context, group *models.Group) error
	FindByID(ctx context.Context, id string) (*models.Group, error)
	FindAll(ctx context.Context) ([]models.Group, error)
	Update(ctx context.Context, group *models.Group) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}
