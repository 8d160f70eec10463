package routes

import (
	"time"

	"elousia-backend/middleware"
	"elousia-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter(cache *redis.Client) *gin.Engine {

	r := gin.New()
	r.Use(gin.LoggerWithWriter(utils.LogWriter()), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	// hot public pages are cacheable for a short window
	cached := middleware.ResponseCache(cache, 60*time.Second)

	AuthRoutes(api)
	CatalogRoutes(api, cached)
	PagesRoutes(api)
	SubscriptionRoutes(api)
	PaymentRoutes(api)
	UsersRoutes(api)

	return r
}
