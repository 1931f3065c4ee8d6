package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pkamenev/go-task-manager/internal/models"
)

type GroupStore struct {
	col *mongo.Collection
}

func NewGroupStore(db *mongo.Database) *GroupStore {
	return &GroupStore{col: db.Collection(groupsCollection)}
}

func (s *GroupStore) Insert(ctx context.Context, group *models.Group) error {
	_, err := s.col.InsertOne(ctx, group)
	return classifyInsertError(err)
}

func (s *GroupStore) FindByID(ctx context.Context, id string) (*models.Group, error) {
	var group models.Group
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&group)
	if err != nil {
		return nil, classifyFindError(err)
	}
	return &group, nil
}

func (s *GroupStore) FindAll(ctx context.Context) ([]models.Group, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	groups := make([]models.Group, 0)
	if err = cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (s *GroupStore) Update(ctx context.Context, group *models.Group) (bool, error) {
	update := bson.M{"$set": bson.M{
		"name":          group.Name,
		"list_ids":      group.ListIDs,
		"task_ids":      group.TaskIDs,
		"user_ids":      group.UserIDs,
		"owner_user_id": group.OwnerUserID,
		"updated_at":    group.UpdatedAt,
	}}
	result, err := s.col.UpdateOne(ctx, bson.M{"_id": group.ID}, update)
	if err != nil {
		return false, err
	}
	return result.ModifiedCount > 0, nil
}

func (s *GroupStore) Delete(ctx context.Context, id string) (bool, error) {
	result, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
