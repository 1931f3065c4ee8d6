package models

import (
	"time"

	"github.com/pkamenev/go-task-manager/internal/schedule"
)

type Task struct {
	ID            string              `bson:"_id"`
	Title         string              `bson:"title"`
	Description   string              `bson:"description,omitempty"`
	Status        bool                `bson:"status"`
	Priority      *int                `bson:"priority,omitempty"`
	ListID        string              `bson:"list_id,omitempty"`
	GroupID       string              `bson:"group_id,omitempty"`
	StartHour     *schedule.TimeOfDay `bson:"start_hour,omitempty"`
	EndHour       *schedule.TimeOfDay `bson:"end_hour,omitempty"`
	AssignedUsers []string            `bson:"assigned_users,omitempty"`

	// IsActive and HasExpired are derived from EndHour on every
	// create and update; submitted values are never trusted.
	IsActive   bool `bson:"is_active"`
	HasExpired bool `bson:"has_expired"`

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}
