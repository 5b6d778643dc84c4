package store

import (
	"context"
	"time"

	"snapill/config/db"
	"snapill/models"
	"snapill/util"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type IntakeStore interface {
	Create(ctx context.Context, session *models.IntakeSession) error
	Fetch(ctx context.Context, userId string, code string) (*models.IntakeSession, error)
	Update(ctx context.Context, code string, fields bson.M) error
}

var Intake IntakeStore = &mongoIntakeStore{}

type mongoIntakeStore struct{}

func (s *mongoIntakeStore) Create(ctx context.Context, session *models.IntakeSession) error {
	if session.Code == "" {
		session.Code = uuid.NewString()
	}
	now := time.Now()
	session.CreatedAt = now
	session.UpdatedAt = now
	collection := db.OpenCollections(util.IntakeCollection)
	_, err := db.CreateOne(ctx, collection, session)
	return err
}

func (s *mongoIntakeStore) Fetch(ctx context.Context, userId string, code string) (*models.IntakeSession, error) {
	collection := db.OpenCollections(util.IntakeCollection)
	var session models.IntakeSession
	if err := db.FindOne(ctx, collection, bson.M{"userId": userId, "code": code}, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *mongoIntakeStore) Update(ctx context.Context, code string, fields bson.M) error {
	fields["updatedAt"] = time.Now()
	collection := db.OpenCollections(util.IntakeCollection)
	updated, err := db.UpdateOne(ctx, collection, bson.M{"code": code}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if updated.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
