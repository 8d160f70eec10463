package livetv

import (
	"net/http"
	"strconv"

	"elousia-backend/db"
	"elousia-backend/models"
	"elousia-backend/services/relations"
	"elousia-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary List live TV channels
// @Description Active channels in ordering order, optionally filtered by category
// @Tags live-tv
// @Produce json
// @Param category_id query int false "Category filter"
// @Success 200 {object} map[string]interface{} "status, message, data"
// @Router /live-tvs [get]
func ListLiveTVs(c *gin.Context) {
	query := db.DB.Where("status = ?", models.StatusActive)

	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	liveTVs := []models.LiveTV{}
	if err := query.Order("ordering ASC").Find(&liveTVs).Error; err != nil {
		utils.LogError(err, "Error loading live TVs in ListLiveTVs")
		utils.SendError(c, http.StatusInternalServerError, "Error loading live TVs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "All Live TVs",
		"data":    liveTVs,
	})
}

// @Summary Live TV channel details
// @Description Channel row plus up to 10 related channels of the same category
// @Tags live-tv
// @Produce json
// @Param id path int true "Channel id"
// @Success 200 {object} map[string]interface{} "status, data, related"
// @Failure 404 {object} map[string]interface{} "status: false, message: Live TV not found"
// @Router /live-tv/details/{id} [get]
func LiveTVDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid id")
		return
	}

	var liveTV models.LiveTV
	if err := db.DB.First(&liveTV, "id = ?", id).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Live TV not found")
		return
	}

	resolver := relations.New(db.DB)
	related, err := resolver.RelatedLiveTVs(liveTV.ID, liveTV.CategoryID, 10)
	if err != nil {
		utils.LogError(err, "Error loading related channels in LiveTVDetails")
		utils.SendError(c, http.StatusInternalServerError, "Error loading related channels")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"data":    liveTV,
		"related": related,
	})
}
