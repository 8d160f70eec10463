package main

import (
	"log"
	"os"

	"elousia-backend/db"
	_ "elousia-backend/docs"
	"elousia-backend/routes"
	"elousia-backend/utils"

	"github.com/gin-gonic/gin"
)

// @title Elousia API
// @version 1.0
// @description Media catalog and subscription API for the Elousia mobile apps
// @host localhost:8080
// @BasePath /api
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	db.InitDB()

	if err := utils.InitCloudinary(); err != nil {
		log.Printf("Warning: Cloudinary initialization failed: %v", err)
		log.Println("Profile photo upload will not work correctly.")
	}

	r := routes.SetupRouter(db.NewRedisClient())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Error starting the server:", err)
	}
}
