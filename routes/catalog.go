package routes

import (
	"elousia-backend/handlers/browse"
	"elousia-backend/handlers/catalog"
	"elousia-backend/handlers/livetv"
	"elousia-backend/handlers/movies"
	"elousia-backend/handlers/radios"

	"github.com/gin-gonic/gin"
)

func CatalogRoutes(api *gin.RouterGroup, cached gin.HandlerFunc) {
	api.GET("/home", cached, browse.HomePage)
	api.GET("/entertainment", cached, browse.Entertainment)
	api.GET("/search", browse.Search)

	api.GET("/live-tvs", livetv.ListLiveTVs)
	api.GET("/live-tv/details/:id", livetv.LiveTVDetails)

	api.GET("/movies", movies.ListMovies)
	api.GET("/elokidz/categories", movies.KidsCategories)
	api.GET("/elokidz/category/:id/movies", movies.KidsMoviesByCategory)

	api.GET("/radios", cached, radios.PopularRadios)
	api.GET("/radio/details/:id", radios.RadioDetails)

	api.GET("/details/:type/:id", catalog.Details)
	api.GET("/play/:type/:id", catalog.Play)
	api.GET("/download/:type/:id", catalog.Download)
}
