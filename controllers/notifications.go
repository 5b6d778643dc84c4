package controllers

import (
	"net/http"

	"snapill/services"
	"snapill/util"

	"github.com/gin-gonic/gin"
)

func Notifications(router *gin.Engine) {
	notifications := router.Group("/notifications")
	{
		notifications.GET("/fetchAll", FetchAllNotifications)
		notifications.PATCH("/read/:notificationCode", MarkNotificationRead)
	}
}

func FetchAllNotifications(c *gin.Context) {
	notifications, err := services.FetchAllNotifications(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(notifications))
}

func MarkNotificationRead(c *gin.Context) {
	notificationCode := c.Param("notificationCode")
	msg, err := services.MarkNotificationRead(c, notificationCode)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}
