package bootstrap

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureWidgetIndexes creates the unique (comp_id, instance_id) index the
// upsert paths rely on.
func EnsureWidgetIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := db.Collection("widget_users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "comp_id", Value: 1},
			{Key: "instance_id", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_comp_instance"),
	})
	return err
}
