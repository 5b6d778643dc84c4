package controllers

import (
	"net/http"

	"snapill/services"
	"snapill/util"

	"github.com/gin-gonic/gin"
)

func Assistant(router *gin.Engine) {
	assistant := router.Group("/assistant")
	{
		assistant.POST("/chat", Chat)
		assistant.POST("/vanguard", Vanguard)
	}
}

func Chat(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	response, err := services.Chat(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(map[string]interface{}{
		"response": response,
	}))
}

func Vanguard(c *gin.Context) {
	response, err := services.Vanguard(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(map[string]interface{}{
		"response": response,
	}))
}
