package controllers

import (
	"net/http"

	"snapill/services"
	"snapill/util"

	"github.com/gin-gonic/gin"
)

func Auth(router *gin.Engine) {
	router.POST("/signup", SignUp)
	router.POST("/login", Login)
}

/*
* Here binding happens with the respective fields if any error return error
* And if no error moves to services
 */
func SignUp(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	result, err := services.SignUp(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(result))
}

/*
* Bind the login fields and if any error return error
* If no error, pass to the services
 */
func Login(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	result, err := services.SignIn(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(result))
}
