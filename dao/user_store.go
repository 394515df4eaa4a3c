package dao

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	logger "github.com/Happykiller/DraftDream-sub004/logging"
	"github.com/Happykiller/DraftDream-sub004/model"
)

// UserStore adds the email lookup the login flow needs on top of the generic
// store. Emails are unique per deployment.
type UserStore struct {
	*MongoStore[model.User]
}

func NewUserStore(db *mongo.Database) *UserStore {
	store := &UserStore{MongoStore: NewMongoStore[model.User](db, model.UserDescriptor)}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := store.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		logger.Fatal("Failed to ensure unique email index", zap.Error(err))
	}
	return store
}

// GetByEmail returns nil when no account carries the email.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
