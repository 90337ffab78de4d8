package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/maze-sprint-api/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultRunLimit = 10

// RunRepo handles the persistence of completed sprint runs.
type RunRepo struct {
	collection *mongo.Collection
}

// NewRunRepo creates a new RunRepo with the given MongoDB client, database name, and collection name.
func NewRunRepo(client *mongo.Client, dbName, collectionName string) *RunRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &RunRepo{
		collection: collection,
	}
}

// EnsureIndexes creates the index ByPlayer queries against.
func (r *RunRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "playerId", Value: 1}, {Key: "finishedAt", Value: -1}},
	})
	return err
}

// Save inserts a finished run. Runs are immutable once recorded, so there is
// no upsert here.
func (r *RunRepo) Save(run *dmn.Run) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, run); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByPlayer retrieves the player's most recent runs, newest first, capped at
// limit.
func (r *RunRepo) ByPlayer(playerID uuid.UUID, limit int64) ([]dmn.Run, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if limit < 1 {
		limit = defaultRunLimit
	}

	filter := bson.M{"playerId": playerID}
	opts := options.Find().
		SetSort(bson.D{{Key: "finishedAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer cursor.Close(ctx)

	var runs []dmn.Run
	if err := cursor.All(ctx, &runs); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return runs, nil
}
