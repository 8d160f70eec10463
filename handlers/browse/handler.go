package browse

import (
	"net/http"

	"elousia-backend/db"
	"elousia-backend/models"
	"elousia-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Home page data
// @Description Recent live TVs and movies with their categories, home-page ads and FAQs
// @Tags browse
// @Produce json
// @Success 200 {object} map[string]interface{} "status, message, live_tvs, live_tv_categories, movies, movie_categories, ads, faqs"
// @Router /home [get]
func HomePage(c *gin.Context) {
	liveTVs := []models.LiveTV{}
	if err := db.DB.Where("status = ?", models.StatusActive).Order("ordering ASC").Limit(10).Find(&liveTVs).Error; err != nil {
		utils.LogError(err, "Error loading live TVs in HomePage")
		utils.SendError(c, http.StatusInternalServerError, "Error loading the home page")
		return
	}

	liveTVCategories := []models.LiveTVCategory{}
	if err := db.DB.Where("status = ?", models.StatusActive).Order("ordering ASC").Find(&liveTVCategories).Error; err != nil {
		utils.LogError(err, "Error loading live TV categories in HomePage")
		utils.SendError(c, http.StatusInternalServerError, "Error loading the home page")
		return
	}

	movies := []models.Movie{}
	if err := db.DB.Where("status = ?", models.MovieActive).Order("id DESC").Limit(10).Find(&movies).Error; err != nil {
		utils.LogError(err, "Error loading movies in HomePage")
		utils.SendError(c, http.StatusInternalServerError, "Error loading the home page")
		return
	}

	movieCategories := []models.Category{}
	if err := db.DB.Where("status = ?", 1).Order("id ASC").Find(&movieCategories).Error; err != nil {
		utils.LogError(err, "Error loading movie categories in HomePage")
		utils.SendError(c, http.StatusInternalServerError, "Error loading the home page")
		return
	}

	ads := []models.Ad{}
	if err := db.DB.Where("ad_page = ?", "home-page").Where("ad_status = ?", 1).Find(&ads).Error; err != nil {
		utils.LogError(err, "Error loading ads in HomePage")
		utils.SendError(c, http.StatusInternalServerError, "Error loading the home page")
		return
	}

	faqs := []models.FAQ{}
	if err := db.DB.Where("status = ?", models.StatusActive).Order("sort_order ASC").Find(&faqs).Error; err != nil {
		utils.LogError(err, "Error loading FAQs in HomePage")
		utils.SendError(c, http.StatusInternalServerError, "Error loading the home page")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":             true,
		"message":            "Home Page Data",
		"live_tvs":           liveTVs,
		"live_tv_categories": liveTVCategories,
		"movies":             movies,
		"movie_categories":   movieCategories,
		"ads":                ads,
		"faqs":               faqs,
	})
}

// @Summary Entertainment page data
// @Description Recent and top-rated movies, recent and most famous events, recent and popular series
// @Tags browse
// @Produce json
// @Success 200 {object} map[string]interface{} "status, page, movies, events, series"
// @Router /entertainment [get]
func Entertainment(c *gin.Context) {
	recentMovies := []models.Movie{}
	if err := db.DB.Where("status = ?", models.MovieActive).Order("created_at DESC").Limit(10).Find(&recentMovies).Error; err != nil {
		utils.LogError(err, "Error loading recent movies in Entertainment")
		utils.SendError(c, http.StatusInternalServerError, "Error loading the entertainment page")
		return
	}

	topRatedMovies := []models.Movie{}
	if err := db.DB.Where("status = ?", models.MovieActive).Order("imdb_rating DESC").Limit(10).Find(&topRatedMovies).Error; err != nil {
		utils.LogError(err, "Error loading top rated movies in Entertainment")
		utils.SendError(c, http.StatusInternalServerError, "Error loading the entertainment page")
		return
	}

	recentEvents := []models.Event{}
	if err := db.DB.Where("status = ?", models.StatusActive).Order("created_at DESC").Limit(10).Find(&recentEvents).Error; err != nil {
		utils.LogError(err, "Error loading recent events in Entertainment")
		utils.SendError(c, http.StatusInternalServerError, "Error loading the entertainment page")
		return
	}

	// "most famous" has always been ordering DESC in the admin data
	famousEvents := []models.Event{}
	if err := db.DB.Where("status = ?", models.StatusActive).Order("ordering DESC").Limit(10).Find(&famousEvents).Error; err != nil {
		utils.LogError(err, "Error loading famous events in Entertainment")
		utils.SendError(c, http.StatusInternalServerError, "Error loading the entertainment page")
		return
	}

	recentSeries := []models.Series{}
	if err := db.DB.Where("status = ?", models.StatusActive).Order("created_at DESC").Limit(10).Find(&recentSeries).Error; err != nil {
		utils.LogError(err, "Error loading recent series in Entertainment")
		utils.SendError(c, http.StatusInternalServerError, "Error loading the entertainment page")
		return
	}

	popularSeries := []models.Series{}
	if err := db.DB.Where("status = ?", models.StatusActive).Order("imdb_rating DESC").Limit(10).Find(&popularSeries).Error; err != nil {
		utils.LogError(err, "Error loading popular series in Entertainment")
		utils.SendError(c, http.StatusInternalServerError, "Error loading the entertainment page")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": true,
		"page":   "entertainment",
		"movies": gin.H{
			"recent":    recentMovies,
			"top_rated": topRatedMovies,
		},
		"events": gin.H{
			"recent":      recentEvents,
			"most_famous": famousEvents,
		},
		"series": gin.H{
			"recent":  recentSeries,
			"popular": popularSeries,
		},
	})
}

// @Summary Search the whole catalog
// @Description Case-insensitive name/slug/title search over live TVs, movies, series, radios and events
// @Tags browse
// @Produce json
// @Param query query string true "Search terms"
// @Success 200 {object} map[string]interface{} "status, query, live_tvs, movies, series, radios, events"
// @Failure 400 {object} map[string]interface{} "status: false, message"
// @Router /search [get]
func Search(c *gin.Context) {
	search := c.Query("query")
	if search == "" || len(search) > 255 {
		utils.SendError(c, http.StatusBadRequest, "The query parameter is required")
		return
	}

	pattern := "%" + search + "%"

	liveTVs := []models.LiveTV{}
	if err := db.DB.Where("status = ?", models.StatusActive).
		Where("name LIKE ? OR slug LIKE ?", pattern, pattern).
		Order("ordering ASC").Find(&liveTVs).Error; err != nil {
		utils.LogError(err, "Error searching live TVs in Search")
		utils.SendError(c, http.StatusInternalServerError, "Error running the search")
		return
	}

	movies := []models.Movie{}
	if err := db.DB.Where("status = ?", models.MovieActive).
		Where("name LIKE ? OR slug LIKE ?", pattern, pattern).
		Order("id DESC").Find(&movies).Error; err != nil {
		utils.LogError(err, "Error searching movies in Search")
		utils.SendError(c, http.StatusInternalServerError, "Error running the search")
		return
	}

	series := []models.Series{}
	if err := db.DB.Where("status = ?", models.StatusActive).
		Where("title LIKE ?", pattern).
		Order("id DESC").Find(&series).Error; err != nil {
		utils.LogError(err, "Error searching series in Search")
		utils.SendError(c, http.StatusInternalServerError, "Error running the search")
		return
	}

	radios := []models.Radio{}
	if err := db.DB.Where("status = ?", models.StatusActive).
		Where("name LIKE ? OR slug LIKE ?", pattern, pattern).
		Order("ordering ASC").Find(&radios).Error; err != nil {
		utils.LogError(err, "Error searching radios in Search")
		utils.SendError(c, http.StatusInternalServerError, "Error running the search")
		return
	}

	events := []models.Event{}
	if err := db.DB.Where("status = ?", models.StatusActive).
		Where("title LIKE ?", pattern).
		Order("ordering ASC").Find(&events).Error; err != nil {
		utils.LogError(err, "Error searching events in Search")
		utils.SendError(c, http.StatusInternalServerError, "Error running the search")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   true,
		"query":    search,
		"live_tvs": liveTVs,
		"movies":   movies,
		"series":   series,
		"radios":   radios,
		"events":   events,
	})
}
