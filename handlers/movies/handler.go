package movies

import (
	"fmt"
	"net/http"
	"strconv"

	"elousia-backend/db"
	"elousia-backend/models"
	"elousia-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary List movies
// @Description Active movies newest first, optionally filtered by a genre id
// @Tags movies
// @Produce json
// @Param category_id query int false "Genre filter"
// @Success 200 {object} map[string]interface{} "status, message, data"
// @Router /movies [get]
func ListMovies(c *gin.Context) {
	query := db.DB.Where("status = ?", models.MovieActive)

	if categoryID := c.Query("category_id"); categoryID != "" {
		if id, err := strconv.ParseInt(categoryID, 10, 64); err == nil {
			// genres is a jsonb array of string ids
			query = query.Where("genres @> ?", fmt.Sprintf(`["%d"]`, id))
		}
	}

	movies := []models.Movie{}
	if err := query.Order("id DESC").Find(&movies).Error; err != nil {
		utils.LogError(err, "Error loading movies in ListMovies")
		utils.SendError(c, http.StatusInternalServerError, "Error loading movies")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "All Movies",
		"data":    movies,
	})
}

// @Summary Kids section categories
// @Tags movies
// @Produce json
// @Success 200 {object} map[string]interface{} "status, categories"
// @Router /elokidz/categories [get]
func KidsCategories(c *gin.Context) {
	categories := []models.Category{}
	if err := db.DB.Where("status = ?", 1).Find(&categories).Error; err != nil {
		utils.LogError(err, "Error loading categories in KidsCategories")
		utils.SendError(c, http.StatusInternalServerError, "Error loading categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     true,
		"categories": categories,
	})
}

// @Summary Kids movies for one category
// @Description Active, non age-restricted movies carrying the genre id
// @Tags movies
// @Produce json
// @Param id path int true "Category id"
// @Success 200 {object} map[string]interface{} "status, category_id, movies"
// @Failure 400 {object} map[string]interface{} "status: false, message"
// @Router /elokidz/category/{id}/movies [get]
func KidsMoviesByCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid category id")
		return
	}

	movies := []models.Movie{}
	err = db.DB.Where("status = ?", models.MovieActive).
		Where("age_restricted = ?", 0).
		Where("genres @> ?", fmt.Sprintf(`["%d"]`, id)).
		Find(&movies).Error
	if err != nil {
		utils.LogError(err, "Error loading movies in KidsMoviesByCategory")
		utils.SendError(c, http.StatusInternalServerError, "Error loading movies")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      true,
		"category_id": id,
		"movies":      movies,
	})
}
