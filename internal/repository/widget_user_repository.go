package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"fbcal_workspace/model"
)

// WidgetUserRepository persists one widget installation per (comp id,
// instance id) pair: design settings, the owner's saved events and the
// long-term access token.
type WidgetUserRepository interface {
	Get(ctx context.Context, compID, instanceID string) (*model.WidgetUser, error)
	SaveSettings(ctx context.Context, compID, instanceID string, settings model.Settings, events []model.SavedEvent) error
	SaveAccessToken(ctx context.Context, compID, instanceID string, token model.AccessTokenData) error
	ClearUserData(ctx context.Context, compID, instanceID string) error
}

type mongoWidgetUserRepo struct {
	col *mongo.Collection
}

func NewMongoWidgetUserRepo(client *mongo.Client, dbName string) WidgetUserRepository {
	return &mongoWidgetUserRepo{
		col: client.Database(dbName).Collection("widget_users"),
	}
}

func keyFilter(compID, instanceID string) bson.M {
	return bson.M{"comp_id": compID, "instance_id": instanceID}
}

// Get returns nil, nil when the widget has never stored anything; callers
// fall back to default settings.
func (r *mongoWidgetUserRepo) Get(ctx context.Context, compID, instanceID string) (*model.WidgetUser, error) {
	var user model.WidgetUser
	err := r.col.FindOne(ctx, keyFilter(compID, instanceID)).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *mongoWidgetUserRepo) SaveSettings(ctx context.Context, compID, instanceID string, settings model.Settings, events []model.SavedEvent) error {
	if events == nil {
		events = []model.SavedEvent{}
	}
	update := bson.M{"$set": bson.M{
		"settings": settings,
		"events":   events,
	}}
	opts := options.UpdateOne().SetUpsert(true)
	_, err := r.col.UpdateOne(ctx, keyFilter(compID, instanceID), update, opts)
	return err
}

func (r *mongoWidgetUserRepo) SaveAccessToken(ctx context.Context, compID, instanceID string, token model.AccessTokenData) error {
	update := bson.M{"$set": bson.M{"access_token_data": token}}
	opts := options.UpdateOne().SetUpsert(true)
	_, err := r.col.UpdateOne(ctx, keyFilter(compID, instanceID), update, opts)
	return err
}

// ClearUserData is the logout path: the token and saved events go, the
// design settings stay.
func (r *mongoWidgetUserRepo) ClearUserData(ctx context.Context, compID, instanceID string) error {
	update := bson.M{"$unset": bson.M{
		"access_token_data": "",
		"events":            "",
	}}
	_, err := r.col.UpdateOne(ctx, keyFilter(compID, instanceID), update)
	return err
}
