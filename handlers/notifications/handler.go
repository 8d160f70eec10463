package notifications

import (
	"net/http"

	"elousia-backend/db"
	"elousia-backend/models"
	"elousia-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Notification feed
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]interface{} "status, count, notifications"
// @Router /notifications [get]
func List(c *gin.Context) {
	items := []models.Notification{}
	if err := db.DB.Order("created_at DESC").Find(&items).Error; err != nil {
		utils.LogError(err, "Error loading notifications in List")
		utils.SendError(c, http.StatusInternalServerError, "Error loading notifications")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        true,
		"count":         len(items),
		"notifications": items,
	})
}
