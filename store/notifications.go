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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotificationStore interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, userId string) ([]models.Notification, error)
	MarkRead(ctx context.Context, userId string, code string) error
}

var Notifications NotificationStore = &mongoNotificationStore{}

type mongoNotificationStore struct{}

func (s *mongoNotificationStore) Create(ctx context.Context, notification *models.Notification) error {
	if notification.Code == "" {
		notification.Code = uuid.NewString()
	}
	notification.CreatedAt = time.Now()
	collection := db.OpenCollections(util.NotificationCollection)
	_, err := db.CreateOne(ctx, collection, notification)
	return err
}

func (s *mongoNotificationStore) ListByUser(ctx context.Context, userId string) ([]models.Notification, error) {
	collection := db.OpenCollections(util.NotificationCollection)
	notifications := []models.Notification{}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if err := db.FindAll(ctx, collection, bson.M{"userId": userId}, &notifications, opts); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (s *mongoNotificationStore) MarkRead(ctx context.Context, userId string, code string) error {
	collection := db.OpenCollections(util.NotificationCollection)
	updated, err := db.UpdateOne(ctx, collection, bson.M{"userId": userId, "code": code}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return err
	}
	if updated.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
