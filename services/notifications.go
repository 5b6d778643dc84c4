package services

import (
	"errors"
	"log"

	"snapill/models"
	"snapill/store"
	"snapill/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func FetchAllNotifications(c *gin.Context) ([]models.Notification, error) {
	userId := c.GetString("userId")
	notifications, err := store.Notifications.ListByUser(c, userId)
	if err != nil {
		log.Println("Error from notifications list:", err)
		return nil, errors.New(util.FAILED_TO_LOAD_NOTIFICATIONS)
	}
	return notifications, nil
}

func MarkNotificationRead(c *gin.Context, code string) (string, error) {
	userId := c.GetString("userId")
	err := store.Notifications.MarkRead(c, userId, code)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", errors.New(util.NOTIFICATION_NOT_FOUND)
	}
	if err != nil {
		log.Println("Error from markRead:", err)
		return "", errors.New(util.NOTIFICATION_NOT_FOUND)
	}
	return "Notification marked as read", nil
}
