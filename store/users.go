package store

import (
	"context"
	"errors"
	"time"

	"snapill/config/db"
	"snapill/models"
	"snapill/util"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserStore interface {
	// FetchByEmail returns nil without an error when no account exists.
	FetchByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

var Users UserStore = &mongoUserStore{}

type mongoUserStore struct{}

func (s *mongoUserStore) FetchByEmail(ctx context.Context, email string) (*models.User, error) {
	collection := db.OpenCollections(util.UserCollection)
	var user models.User
	err := db.FindOne(ctx, collection, bson.M{"email": email}, &user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *mongoUserStore) Create(ctx context.Context, user *models.User) error {
	if user.Code == "" {
		user.Code = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	collection := db.OpenCollections(util.UserCollection)
	_, err := db.CreateOne(ctx, collection, user)
	return err
}
