package contacts

import (
	"net/http"

	"elousia-backend/db"
	"elousia-backend/models"
	"elousia-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Submit a contact request
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body models.ContactCreate true "Contact information"
// @Success 200 {object} map[string]interface{} "status, message, id"
// @Failure 400 {object} map[string]interface{} "status: false, message"
// @Router /contact-us [post]
func ContactUs(c *gin.Context) {
	var input models.ContactCreate

	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	if !utils.ValidateEmail(input.Email) {
		utils.SendError(c, http.StatusBadRequest, "Invalid email format")
		return
	}

	contact := models.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}

	if err := db.DB.Create(&contact).Error; err != nil {
		utils.LogError(err, "Error creating the contact in ContactUs")
		utils.SendError(c, http.StatusInternalServerError, "Error submitting the message")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Your message has been submitted successfully.",
		"id":      contact.ID,
	})
}

// @Summary Submit feedback
// @Tags contacts
// @Accept json
// @Produce json
// @Param feedback body models.FeedbackCreate true "Feedback with a 1..5 rating"
// @Success 200 {object} map[string]interface{} "status, message, id"
// @Failure 400 {object} map[string]interface{} "status: false, message"
// @Router /feedback [post]
func SubmitFeedback(c *gin.Context) {
	var input models.FeedbackCreate

	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	if !utils.ValidateEmail(input.Email) {
		utils.SendError(c, http.StatusBadRequest, "Invalid email format")
		return
	}

	feedback := models.Feedback{
		Name:    input.Name,
		Email:   input.Email,
		Rating:  input.Rating,
		Message: input.Message,
	}

	if err := db.DB.Create(&feedback).Error; err != nil {
		utils.LogError(err, "Error creating the feedback in SubmitFeedback")
		utils.SendError(c, http.StatusInternalServerError, "Error submitting the feedback")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Thank you for your feedback.",
		"id":      feedback.ID,
	})
}
