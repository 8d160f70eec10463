package pages

import (
	"net/http"

	"elousia-backend/db"
	"elousia-backend/models"
	"elousia-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary FAQ list
// @Tags pages
// @Produce json
// @Success 200 {object} map[string]interface{} "status, count, faqs"
// @Router /faqs [get]
func FAQs(c *gin.Context) {
	faqs := []models.FAQ{}
	if err := db.DB.Where("status = ?", models.StatusActive).Order("sort_order ASC").Find(&faqs).Error; err != nil {
		utils.LogError(err, "Error loading FAQs in FAQs")
		utils.SendError(c, http.StatusInternalServerError, "Error loading FAQs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": true,
		"count":  len(faqs),
		"faqs":   faqs,
	})
}

// staticPage answers with the published page for a slug. The status flag
// mirrors whether the page exists, matching the mobile clients' contract.
func staticPage(c *gin.Context, slug string) {
	var page models.Page
	err := db.DB.Where("slug = ?", slug).Where("status = ?", models.PagePublished).First(&page).Error
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"status": false,
			"page":   nil,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": true,
		"page":   page,
	})
}

// @Summary About us page
// @Tags pages
// @Produce json
// @Success 200 {object} map[string]interface{} "status, page"
// @Router /about-us [get]
func AboutUs(c *gin.Context) {
	staticPage(c, "about-us")
}

// @Summary Help and support page
// @Tags pages
// @Produce json
// @Success 200 {object} map[string]interface{} "status, page"
// @Router /help-and-support [get]
func HelpAndSupport(c *gin.Context) {
	staticPage(c, "help-and-support")
}

// @Summary Terms and conditions page
// @Tags pages
// @Produce json
// @Success 200 {object} map[string]interface{} "status, page"
// @Router /terms-and-conditions [get]
func TermsAndConditions(c *gin.Context) {
	staticPage(c, "terms-and-conditions")
}

// @Summary Privacy policy page
// @Tags pages
// @Produce json
// @Success 200 {object} map[string]interface{} "status, page"
// @Router /privacy-policy [get]
func PrivacyPolicy(c *gin.Context) {
	staticPage(c, "privacy-policy")
}
