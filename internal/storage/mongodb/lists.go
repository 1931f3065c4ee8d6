package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pkamenev/go-task-manager/internal/models"
)

type ListStore struct {
	col *mongo.Collection
}

func NewListStore(db *mongo.Database) *ListStore {
	return &ListStore{col: db.Collection(listsCollection)}
}

func (s *ListStore) Insert(ctx context.Context, list *models.List) error {
	_, err := s.col.InsertOne(ctx, list)
	return classifyInsertError(err)
}

func (s *ListStore) FindByID(ctx context.Context, id string) (*models.List, error) {
	var list models.List
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&list)
	if err != nil {
		return nil, classifyFindError(err)
	}
	return &list, nil
}

func (s *ListStore) FindAll(ctx context.Context) ([]models.List, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	lists := make([]models.List, 0)
	if err = cursor.All(ctx, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

func (s *ListStore) Update(ctx context.Context, list *models.List) (bool, error) {
	update := bson.M{"$set": bson.M{
		"name":          list.Name,
		"task_ids":      list.TaskIDs,
		"owner_user_id": list.OwnerUserID,
		"updated_at":    list.UpdatedAt,
	}}
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": list.ID}, update)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}

func (s *ListStore) Delete(ctx context.Context, id string) (bool, error) {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

func (s *ListStore) PushTaskID(ctx context.Context, listID, taskID string) (bool, error) {
	update := bson.M{"$push": bson.M{"task_ids": taskID}}
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": listID}, update)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}
