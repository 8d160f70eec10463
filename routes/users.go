package routes

import (
	"elousia-backend/handlers/users"

	"github.com/gin-gonic/gin"
)

func UsersRoutes(api *gin.RouterGroup) {
	api.GET("/my-account/:user_id", users.MyProfile)
	api.POST("/update-account/:user_id", users.UpdateProfile)
}
