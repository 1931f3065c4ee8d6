package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pkamenev/go-task-manager/internal/models"
)

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrListNotFound         = errors.New("list not found")
	ErrGroupNotFound        = errors.New("group not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrUserPasswordMismatch = errors.New("user password mismatch")
)

type TaskService interface {
	// CreateTask assigns a fresh id, derives the activity flags from
	// the task's end hour and persists it. When the task names a
	// parent list, the new id is appended to that list's task ids;
	// a failure of that secondary update is logged but never rolls
	// the task back.
	CreateTask(ctx context.Context, task *models.Task) (*models.Task, error)

	// GetTaskByID looks the task up directly in the store, bypassing
	// the cache. It returns ErrTaskNotFound if the id is unknown.
	GetTaskByID(ctx context.Context, id string) (*models.Task, error)

	// GetAllTasks serves the snapshot from the cache when present and
	// repopulates it from the store on a miss.
	GetAllTasks(ctx context.Context) ([]models.Task, error)

	// GetTasksByListID is an uncached filtered query.
	GetTasksByListID(ctx context.Context, listID string) ([]models.Task, error)

	// UpdateTask merges the mutable field set over the stored task,
	// re-derives the activity flags and invalidates the snapshot
	// cache. It returns ErrTaskNotFound if the id is unknown; the
	// boolean reports whether the store modified a document.
	UpdateTask(ctx context.Context, task *models.Task) (bool, error)

	// DeleteTask removes the task. References to it from lists,
	// groups and users are left in place.
	DeleteTask(ctx context.Context, id string) error
}

type ListService interface {
	CreateList(ctx context.Context, list *models.List) (*models.List, error)
	GetListByID(ctx context.Context, id string) (*models.List, error)
	GetAllLists(ctx context.Context) ([]models.List, error)
	UpdateList(ctx context.Context, list *models.List) (bool, error)

	// DeleteList removes the list only. Tasks still referencing it
	// keep their dangling list id.
	DeleteList(ctx context.Context, id string) error
}

type GroupService interface {
	CreateGroup(ctx context.Context, group *models.Group) (*models.Group, error)
	GetGroupByID(ctx context.Context, id string) (*models.Group, error)
	GetAllGroups(ctx context.Context) ([]models.Group, error)
	UpdateGroup(ctx context.Context, group *models.Group) (bool, error)
	DeleteGroup(ctx context.Context, id string) error
}

type AuthService interface {
	// Register hashes the password, assigns an id and stores the
	// user. It returns ErrUserAlreadyExists if the username or the
	// email is already taken.
	Register(ctx context.Context, params RegisterParams) (*models.User, error)

	// Login verifies the password against the stored hash before any
	// token is issued. It returns ErrUserNotFound for an unknown
	// username and ErrUserPasswordMismatch for a wrong password.
	Login(ctx context.Context, params LoginParams) (*LoginResult, error)

	// ParseToken validates a signed token and returns its claims,
	// with the username in the subject.
	ParseToken(token string) (*jwt.RegisteredClaims, error)
}

type RegisterParams struct {
	Username string
	Password string
	Email    string
}

type LoginParams struct {
	Username string
	Password string
}

type LoginResult struct {
	Username  string
	Token     string
	ExpiresAt time.Time
}
