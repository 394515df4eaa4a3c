// Package dao is the persistence layer: one generic MongoDB-backed store
// parameterized by entity type, driven by the entity's model.Descriptor.
package dao

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/Happykiller/DraftDream-sub004/authz"
	draft_errors "github.com/Happykiller/DraftDream-sub004/errors"
	logger "github.com/Happykiller/DraftDream-sub004/logging"
	"github.com/Happykiller/DraftDream-sub004/model"
)

const (
	// DefaultLimit is the page size when the caller supplies none.
	DefaultLimit int64 = 20
	// MaxLimit caps runaway page sizes.
	MaxLimit int64 = 100
)

// ListOptions are the store-level list parameters: explicit caller filters,
// the access scope computed upstream, and 1-based pagination.
type ListOptions struct {
	Q          string
	Locale     string
	Visibility model.Visibility
	UserID     string
	Scope      authz.Scope
	Page       int64
	Limit      int64
}

// Normalize applies the pagination defaults.
func (o *ListOptions) Normalize() {
	if o.Page < 1 {
		o.Page = 1
	}
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.Limit > MaxLimit {
		o.Limit = MaxLimit
	}
}

// Store is the per-entity repository contract. Absence and unique-key
// conflicts are nil results, never errors.
type Store[T any] interface {
	// Create inserts doc, returning nil on a duplicate-key conflict.
	Create(ctx context.Context, doc *T) (*T, error)
	// Get returns nil when id does not resolve to a live document.
	Get(ctx context.Context, id string) (*T, error)
	// List returns one page of documents matching the scoped filter,
	// sorted by updatedAt descending. Total counts the whole scoped set.
	List(ctx context.Context, opts ListOptions) (*model.Page[T], error)
	// Update applies a Mongo update document, returning the new state,
	// nil when absent, and nil on a duplicate-key conflict.
	Update(ctx context.Context, id string, update bson.M) (*T, error)
	// Delete removes (or soft-deletes) the document, reporting whether
	// anything was there.
	Delete(ctx context.Context, id string) (bool, error)
}

// MongoStore implements Store on a MongoDB collection.
type MongoStore[T any] struct {
	desc model.Descriptor
	coll *mongo.Collection
}

var _ Store[model.Meal] = &MongoStore[model.Meal]{}

// NewMongoStore binds a store to its collection and ensures the indexes the
// descriptor calls for.
func NewMongoStore[T any](db *mongo.Database, desc model.Descriptor) *MongoStore[T] {
	store := &MongoStore[T]{desc: desc, coll: db.Collection(desc.Collection)}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.ensureIndexes(ctx); err != nil {
		logger.Fatal("Failed to ensure indexes",
			zap.String("collection", desc.Collection), zap.Error(err))
	}
	return store
}

// ensureIndexes creates the unique slug+locale index for library content and
// the createdBy index every scoped list query hits.
func (s *MongoStore[T]) ensureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdBy", Value: 1}, {Key: "updatedAt", Value: -1}}},
	}
	if s.desc.Slugged {
		indexes = append(indexes, mongo.IndexModel{
			Keys:    bson.D{{Key: "slug", Value: 1}, {Key: "locale", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
	}
	if s.desc.Assignable {
		indexes = append(indexes, mongo.IndexModel{
			Keys: bson.D{{Key: "userId", Value: 1}},
		})
	}
	_, err := s.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (s *MongoStore[T]) Create(ctx context.Context, doc *T) (*T, error) {
	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, nil
		}
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		if d, ok := any(doc).(model.Document); ok {
			d.SetID(oid)
		}
	}
	return doc, nil
}

func (s *MongoStore[T]) Get(ctx context.Context, id string) (*T, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	var doc T
	err = s.coll.FindOne(ctx, s.idFilter(oid)).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *MongoStore[T]) List(ctx context.Context, opts ListOptions) (*model.Page[T], error) {
	opts.Normalize()
	filter := BuildListFilter(s.desc, opts)

	total, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "updatedAt", Value: -1}}).
		SetSkip((opts.Page - 1) * opts.Limit).
		SetLimit(opts.Limit)

	cursor, err := s.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []*T{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return &model.Page[T]{Items: items, Total: total, Page: opts.Page, Limit: opts.Limit}, nil
}

func (s *MongoStore[T]) Update(ctx context.Context, id string, update bson.M) (*T, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	var doc T
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = s.coll.FindOneAndUpdate(ctx, s.idFilter(oid), update, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

func (s *MongoStore[T]) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return false, err
	}
	if s.desc.SoftDelete {
		update := bson.M{"$set": bson.M{"deletedAt": time.Now()}}
		res, err := s.coll.UpdateOne(ctx, s.idFilter(oid), update)
		if err != nil {
			return false, err
		}
		return res.MatchedCount > 0, nil
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// idFilter matches one live document; soft-deleted documents are invisible
// to every read and write path.
func (s *MongoStore[T]) idFilter(oid primitive.ObjectID) bson.M {
	filter := bson.M{"_id": oid}
	if s.desc.SoftDelete {
		filter["deletedAt"] = bson.M{"$exists": false}
	}
	return filter
}

// parseObjectID rejects malformed ids before any query executes.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, draft_errors.ErrInvalidObjectID
	}
	return oid, nil
}
