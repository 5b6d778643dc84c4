package routes

import (
	"snapill/controllers"

	jwt "snapill/config/jwt"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine) {

	//public
	controllers.Auth(r)
	r.GET("/media/video/:fileId", controllers.DownloadVideo)
	//privateroutes
	r.Use(jwt.JWTAuth())
	controllers.Medications(r)
	controllers.Media(r)
	controllers.Assistant(r)
	controllers.Notifications(r)
}
