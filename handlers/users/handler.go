package users

import (
	"net/http"
	"strconv"

	"elousia-backend/db"
	"elousia-backend/models"
	"elousia-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Account profile
// @Tags users
// @Produce json
// @Param user_id path int true "User id"
// @Success 200 {object} map[string]interface{} "status, data"
// @Failure 404 {object} map[string]interface{} "status: false, message: User not found."
// @Router /my-account/{user_id} [get]
func MyProfile(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	var profile models.UserProfile
	err = db.DB.Model(&models.User{}).Where("id = ?", userID).First(&profile).Error
	if err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": true,
		"data":   profile,
	})
}

// @Summary Update the account profile
// @Description Multipart form; profile_photo is optional and stored on Cloudinary
// @Tags users
// @Accept mpfd
// @Produce json
// @Param user_id path int true "User id"
// @Param name formData string false "Name"
// @Param email formData string false "Email"
// @Param phone formData string false "Phone"
// @Param country formData string false "Country"
// @Param date_of_birth formData string false "Date of birth"
// @Param profile_photo formData file false "Profile image"
// @Success 200 {object} map[string]interface{} "status, message, data"
// @Failure 400 {object} map[string]interface{} "status: false, message"
// @Router /update-account/{user_id} [post]
func UpdateProfile(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found.")
		return
	}

	updates := map[string]interface{}{}
	if name := c.PostForm("name"); name != "" {
		updates["name"] = name
	}
	if email := c.PostForm("email"); email != "" {
		if !utils.ValidateEmail(email) {
			utils.SendError(c, http.StatusBadRequest, "Invalid email format")
			return
		}
		updates["email"] = email
	}
	if phone := c.PostForm("phone"); phone != "" {
		updates["phone"] = phone
	}
	if country := c.PostForm("country"); country != "" {
		updates["country"] = country
	}
	if dob := c.PostForm("date_of_birth"); dob != "" {
		updates["date_of_birth"] = dob
	}

	if file, err := c.FormFile("profile_photo"); err == nil {
		photoURL, err := utils.UploadProfilePhoto(file, userID)
		if err != nil {
			utils.LogErrorWithUser(userID, err, "Error uploading the profile photo in UpdateProfile")
			utils.SendError(c, http.StatusBadRequest, err.Error())
			return
		}
		updates["profile_photo"] = photoURL
	}

	if len(updates) == 0 {
		utils.SendError(c, http.StatusOK, "No changes were made.")
		return
	}

	if err := db.DB.Model(&user).Updates(updates).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error updating the profile in UpdateProfile")
		utils.SendError(c, http.StatusInternalServerError, "Error updating the profile")
		return
	}

	var profile models.UserProfile
	if err := db.DB.Model(&models.User{}).Where("id = ?", userID).First(&profile).Error; err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error reloading the profile")
		return
	}

	utils.LogSuccessWithUser(userID, "Profile updated in UpdateProfile")
	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Profile updated successfully.",
		"data":    profile,
	})
}
