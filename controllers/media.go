package controllers

import (
	"io"
	"net/http"

	"snapill/services"
	"snapill/util"

	"github.com/gin-gonic/gin"
)

func Media(router *gin.Engine) {
	media := router.Group("/media")
	{
		media.POST("/upload", UploadVideo)
		media.GET("/progress/:sessionCode", UploadProgress)
		media.POST("/extract", ExtractMedication)
	}
}

func UploadVideo(c *gin.Context) {
	result, err := services.UploadVideo(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(result))
}

func UploadProgress(c *gin.Context) {
	sessionCode := c.Param("sessionCode")
	percent := services.UploadProgress(sessionCode)
	c.JSON(http.StatusOK, util.SuccessResponse(map[string]interface{}{
		"percent": percent,
	}))
}

func ExtractMedication(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	draft, err := services.ExtractMedication(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(draft))
}

// DownloadVideo is registered outside the auth middleware: the extraction
// backend fetches the video by this URL, the same way the old storage
// provider's download links worked.
func DownloadVideo(c *gin.Context) {
	fileId := c.Param("fileId")
	stream, err := services.OpenVideo(c, fileId)
	if err != nil {
		c.JSON(http.StatusNotFound, util.FailedResponse(err))
		return
	}
	defer stream.Close()

	c.Header("Content-Type", "video/mp4")
	c.Status(http.StatusOK)
	io.Copy(c.Writer, stream)
}
