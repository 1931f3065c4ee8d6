package models

import "time"

type Group struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	ListIDs     []string  `bson:"list_ids"`
	TaskIDs     []string  `bson:"task_ids"`
	UserIDs     []string  `bson:"user_ids"`
	OwnerUserID string    `bson:"owner_user_id,omitempty"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}
