package models

import "time"

type User struct {
	ID       string `bson:"_id"`
	Username string `bson:"username"`
	// Password holds the argon2id hash, never the plain text.
	Password  string    `bson:"password"`
	Email     string    `bson:"email"`
	TaskIDs   []string  `bson:"task_ids"`
	ListIDs   []string  `bson:"list_ids"`
	GroupIDs  []string  `bson:"group_ids"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}
