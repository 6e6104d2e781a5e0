// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup. Index creation is idempotent; problems
are aggregated so all of them are visible at once.

Note there is deliberately no unique index on joins(groupId,userEmail):
join uniqueness is enforced by a pre-insert existence check, and the
narrow duplicate window that leaves open is an accepted trade-off.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensure(ctx, db, "users", []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}); err != nil {
		problems = append(problems, "users: "+err.Error())
	}

	if err := ensure(ctx, db, "joins", []mongo.IndexModel{
		{Keys: bson.D{{Key: "groupId", Value: 1}}},
		{Keys: bson.D{{Key: "userEmail", Value: 1}}},
	}); err != nil {
		problems = append(problems, "joins: "+err.Error())
	}

	if err := ensure(ctx, db, "articles", []mongo.IndexModel{
		{Keys: bson.D{{Key: "publishDate", Value: -1}}},
	}); err != nil {
		problems = append(problems, "articles: "+err.Error())
	}

	if err := ensure(ctx, db, "comments", []mongo.IndexModel{
		{Keys: bson.D{{Key: "articleId", Value: 1}}},
	}); err != nil {
		problems = append(problems, "comments: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensure(ctx context.Context, db *mongo.Database, coll string, models []mongo.IndexModel) error {
	_, err := db.Collection(coll).Indexes().CreateMany(ctx, models)
	return err
}
