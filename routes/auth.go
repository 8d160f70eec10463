package routes

import (
	"elousia-backend/handlers/auth"
	"elousia-backend/middleware"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(api *gin.RouterGroup) {
	api.POST("/register", auth.Register)
	api.POST("/login", auth.Login)
	api.POST("/forgot-password", auth.ForgotPassword)
	api.POST("/reset-password", auth.ResetPassword)

	protected := api.Group("/", middleware.JWTAuth())
	protected.GET("/profile", auth.Profile)
	protected.POST("/logout", auth.Logout)
}
