package models

import "time"

type List struct {
	ID   string `bson:"_id"`
	Name string `bson:"name"`

	// TaskIDs grows as tasks are created against the list. Task
	// deletion does not remove entries, so ids may dangle.
	TaskIDs []string `bson:"task_ids"`

	OwnerUserID string    `bson:"owner_user_id,omitempty"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}
