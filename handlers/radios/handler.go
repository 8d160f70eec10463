package radios

import (
	"net/http"
	"strconv"

	"elousia-backend/db"
	"elousia-backend/models"
	"elousia-backend/services/relations"
	"elousia-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary List radio stations
// @Description Active stations in ordering order
// @Tags radios
// @Produce json
// @Success 200 {object} map[string]interface{} "status, radios"
// @Router /radios [get]
func PopularRadios(c *gin.Context) {
	radios := []models.Radio{}
	if err := db.DB.Where("status = ?", models.StatusActive).Order("ordering ASC").Find(&radios).Error; err != nil {
		utils.LogError(err, "Error loading radios in PopularRadios")
		utils.SendError(c, http.StatusInternalServerError, "Error loading radios")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": true,
		"radios": radios,
	})
}

// @Summary Radio station details
// @Description Station row with language name and up to 10 related stations of the same category
// @Tags radios
// @Produce json
// @Param id path int true "Station id"
// @Success 200 {object} map[string]interface{} "status, data, related"
// @Failure 404 {object} map[string]interface{} "status: false, message: Radio not found"
// @Router /radio/details/{id} [get]
func RadioDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid id")
		return
	}

	var radio models.Radio
	if err := db.DB.First(&radio, "id = ?", id).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Radio not found")
		return
	}

	resolver := relations.New(db.DB)

	languageName, err := resolver.LanguageName(radio.LanguageID)
	if err != nil {
		utils.LogError(err, "Error resolving the language in RadioDetails")
		utils.SendError(c, http.StatusInternalServerError, "Error loading the radio details")
		return
	}

	related, err := resolver.RelatedRadios(radio.ID, radio.CategoryID, 10)
	if err != nil {
		utils.LogError(err, "Error loading related radios in RadioDetails")
		utils.SendError(c, http.StatusInternalServerError, "Error loading related radios")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"data":    radioDetail{Radio: radio, LanguageName: languageName},
		"related": related,
	})
}

// radioDetail is the station row enriched with its resolved language name.
type radioDetail struct {
	models.Radio
	LanguageName *string `json:"language_name"`
}
