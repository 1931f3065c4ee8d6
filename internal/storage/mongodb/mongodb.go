// Package mongodb implements the storage interfaces on top of a
// MongoDB database, one typed collection per entity.
package mongodb

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pkamenev/go-task-manager/internal/storage"
)

const (
	tasksCollection  = "tasks"
	listsCollection  = "lists"
	groupsCollection = "groups"
	usersCollection  = "users"
)

func classifyInsertError(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", storage.ErrDuplicateKey, err)
	}
	return err
}

func classifyFindError(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return storage.ErrNotFound
	}
	return err
}
