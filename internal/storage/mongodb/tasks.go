package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pkamenev/go-task-manager/internal/models"
)

type TaskStore struct {
	col *mongo.Collection
}

func NewTaskStore(db *mongo.Database) *TaskStore {
	return &TaskStore{col: db.Collection(tasksCollection)}
}

func (s *TaskStore) Insert(ctx context.Context, task *models.Task) error {
	_, err := s.col.InsertOne(ctx, task)
	return classifyInsertError(err)
}

func (s *TaskStore) FindByID(ctx context.Context, id string) (*models.Task, error) {
	var task models.Task
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&task)
	if err != nil {
		return nil, classifyFindError(err)
	}
	return &task, nil
}

func (s *TaskStore) FindAll(ctx context.Context) ([]models.Task, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	tasks := make([]models.Task, 0)
	if err = cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskStore) FindByListID(ctx context.Context, listID string) ([]models.Task, error) {
	cursor, err := s.col.Find(ctx, bson.M{"list_id": listID})
	if err != nil {
		return nil, err
	}
	tasks := make([]models.Task, 0)
	if err = cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update writes the mutable field set of the task. The id and creation
// timestamp are never part of the update document.
func (s *TaskStore) Update(ctx context.Context, task *models.Task) (bool, error) {
	update := bson.M{"$set": bson.M{
		"title":          task.Title,
		"description":    task.Description,
		"priority":       task.Priority,
		"list_id":        task.ListID,
		"group_id":       task.GroupID,
		"start_hour":     task.StartHour,
		"end_hour":       task.EndHour,
		"assigned_users": task.AssignedUsers,
		"is_active":      task.IsActive,
		"has_expired":    task.HasExpired,
		"updated_at":     task.UpdatedAt,
	}}
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": task.ID}, update)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}

func (s *TaskStore) Delete(ctx context.Context, id string) (bool, error) {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
