package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/devservices/backend/internal/model"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoStore holds the client and database handle shared by the Mongo repositories.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongo は MongoDB に接続し、疎通確認を行う
func NewMongo(ctx context.Context, uri, dbName string) (*MongoStore, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return &MongoStore{client: client, db: client.Database(dbName)}, nil
}

// Ping implements DB.
func (m *MongoStore) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, nil)
}

// Close disconnects the client.
func (m *MongoStore) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Drop removes the whole database.
func (m *MongoStore) Drop(ctx context.Context) error {
	return m.db.Drop(ctx)
}

// EnsureIndexes creates the unique id index and the listing/counting indexes.
func (m *MongoStore) EnsureIndexes(ctx context.Context) error {
	for _, name := range []model.Collection{model.CollectionServices, model.CollectionQuotes, model.CollectionConsultations} {
		indexes := []mongo.IndexModel{
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		}
		if name != model.CollectionServices {
			indexes = append(indexes, mongo.IndexModel{Keys: bson.D{{Key: "status", Value: 1}}})
		}
		if _, err := m.db.Collection(string(name)).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}

// mongoCollection implements the collection operations shared by every
// record type. Documents are addressed by their "id" field; Mongo's own _id is
// never exposed.
type mongoCollection[T any] struct {
	coll *mongo.Collection
}

func newMongoCollection[T any](m *MongoStore, name model.Collection) mongoCollection[T] {
	return mongoCollection[T]{coll: m.db.Collection(string(name))}
}

func (c mongoCollection[T]) insert(ctx context.Context, doc *T) error {
	_, err := c.coll.InsertOne(ctx, doc)
	return err
}

func (c mongoCollection[T]) findByID(ctx context.Context, id string) (*T, error) {
	var out T
	err := c.coll.FindOne(ctx, bson.D{{Key: "id", Value: id}},
		options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 0}}),
	).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c mongoCollection[T]) list(ctx context.Context, filter bson.D, sortDir, skip, limit int) ([]*T, error) {
	cur, err := c.coll.Find(ctx, filter, listFindOptions(sortDir, skip, limit))
	if err != nil {
		return nil, err
	}
	var docs []*T
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// listFindOptions orders by created_at, then id, in the given direction
// (-1 newest first) and hides Mongo's _id.
func listFindOptions(sortDir, skip, limit int) *options.FindOptionsBuilder {
	return options.Find().
		SetProjection(bson.D{{Key: "_id", Value: 0}}).
		SetSort(bson.D{{Key: "created_at", Value: sortDir}, {Key: "id", Value: sortDir}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))
}

func (c mongoCollection[T]) count(ctx context.Context, status model.Status) (int64, error) {
	return c.coll.CountDocuments(ctx, statusFilter(status))
}

func (c mongoCollection[T]) updateStatus(ctx context.Context, id string, status model.Status) error {
	res, err := c.coll.UpdateOne(ctx,
		bson.D{{Key: "id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "status", Value: string(status)}}}},
	)
	if err != nil {
		return err
	}
	// MatchedCount, not ModifiedCount: re-applying the same status still succeeds.
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func statusFilter(status model.Status) bson.D {
	if status == "" {
		return bson.D{}
	}
	return bson.D{{Key: "status", Value: string(status)}}
}

func sortDirection(opts model.ListOptions) int {
	if opts.Ascending {
		return 1
	}
	return -1
}
