package controllers

import (
	"net/http"

	"snapill/services"
	"snapill/util"

	"github.com/gin-gonic/gin"
)

func Medications(router *gin.Engine) {
	medications := router.Group("/medications")
	{
		medications.POST("/create", CreateMedication)
		medications.GET("/fetchAll", FetchAllMedications)
		medications.GET("/fetch/:medicationCode", FetchMedicationByCode)
		medications.PATCH("/update/:medicationCode", UpdateMedication)
		medications.PATCH("/updateQuantity/:medicationCode", UpdateQuantity)
		medications.PATCH("/take/:medicationCode", TakeDose)
		medications.DELETE("/delete/:medicationCode", DeleteMedication)
	}
	router.GET("/reminders/upcoming", UpcomingReminders)
}

func CreateMedication(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	result, err := services.CreateMedication(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(result))
}

func FetchAllMedications(c *gin.Context) {
	medications, err := services.FetchAllMedications(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(medications))
}

func FetchMedicationByCode(c *gin.Context) {
	medicationCode := c.Param("medicationCode")
	medication, err := services.FetchMedicationByCode(c, medicationCode)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(medication))
}

func UpdateMedication(c *gin.Context) {
	medicationCode := c.Param("medicationCode")
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	msg, err := services.UpdateMedication(c, medicationCode, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}

func UpdateQuantity(c *gin.Context) {
	medicationCode := c.Param("medicationCode")
	data := make(map[string]interface{})
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	msg, err := services.UpdateQuantity(c, medicationCode, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}

func TakeDose(c *gin.Context) {
	medicationCode := c.Param("medicationCode")
	result, err := services.TakeDose(c, medicationCode)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(result))
}

func DeleteMedication(c *gin.Context) {
	medicationCode := c.Param("medicationCode")
	msg, err := services.DeleteMedication(c, medicationCode)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}

func UpcomingReminders(c *gin.Context) {
	upcoming, err := services.UpcomingReminders(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(upcoming))
}
