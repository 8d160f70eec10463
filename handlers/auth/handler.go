package auth

import (
	"errors"
	"net/http"
	"os"

	"elousia-backend/db"
	"elousia-backend/models"
	"elousia-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// @Summary Register a new user
// @Description Create a user account and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param user body models.UserCreate true "User information"
// @Success 201 {object} map[string]interface{} "status, message, token, user"
// @Failure 400 {object} map[string]interface{} "status: false, message"
// @Failure 409 {object} map[string]interface{} "status: false, message"
// @Router /register [post]
func Register(c *gin.Context) {
	var input models.UserCreate

	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	if !utils.ValidateEmail(input.Email) {
		utils.SendError(c, http.StatusBadRequest, "Invalid email format")
		return
	}

	if input.Password != input.PasswordConfirmation {
		utils.SendError(c, http.StatusBadRequest, "The password confirmation does not match")
		return
	}

	var existingUser models.User
	if err := db.DB.Where("email = ?", input.Email).First(&existingUser).Error; err == nil {
		utils.SendError(c, http.StatusConflict, "This email is already used")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.SendError(c, http.StatusInternalServerError, "Error when checking the email existence")
		return
	}

	passwordHash, err := hashPassword(input.Password)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error hashing the password")
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Password: passwordHash,
		UserType: models.RegularUser,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		utils.LogError(err, "Error creating the user in Register")
		utils.SendError(c, http.StatusInternalServerError, "Error creating the user")
		return
	}

	token, err := utils.GenerateJWT(user, 72)
	if err != nil {
		utils.LogErrorWithUser(user.ID, err, "Error generating the JWT in Register")
		utils.SendError(c, http.StatusInternalServerError, "Error generating the token")
		return
	}

	utils.LogSuccessWithUser(user.ID, "User registered successfully in Register")
	c.JSON(http.StatusCreated, gin.H{
		"status":  true,
		"message": "User registered successfully",
		"token":   token,
		"user":    user,
	})
}

// @Summary Log a user in
// @Description Check the credentials and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.UserLogin true "Credentials"
// @Success 200 {object} map[string]interface{} "status, message, token, user"
// @Failure 401 {object} map[string]interface{} "status: false, message: Invalid credentials"
// @Router /login [post]
func Login(c *gin.Context) {
	var input models.UserLogin

	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	var user models.User
	err := db.DB.Where("email = ?", input.Email).First(&user).Error
	if err != nil || !checkPassword(user.Password, input.Password) {
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateJWT(user, 72)
	if err != nil {
		utils.LogErrorWithUser(user.ID, err, "Error generating the JWT in Login")
		utils.SendError(c, http.StatusInternalServerError, "Error generating the token")
		return
	}

	utils.LogSuccessWithUser(user.ID, "Login successful in Login")
	c.JSON(http.StatusOK, gin.H{
		"status":  true,
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// @Summary Current user profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status, user"
// @Failure 401 {object} map[string]interface{} "status: false, message"
// @Router /profile [get]
func Profile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.SendError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": true,
		"user":   user,
	})
}

// @Summary Log the user out
// @Description Bearer tokens are stateless; the client discards its token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "status, message"
// @Router /logout [post]
func Logout(c *gin.Context) {
	utils.SendMessage(c, http.StatusOK, "Logged out successfully")
}

type forgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

// @Summary Request a password reset
// @Tags auth
// @Accept json
// @Produce json
// @Param email body forgotPasswordInput true "Account email"
// @Success 200 {object} map[string]interface{} "status, message, reset_link"
// @Failure 404 {object} map[string]interface{} "status: false, message: Email not found"
// @Router /forgot-password [post]
func ForgotPassword(c *gin.Context) {
	var input forgotPasswordInput

	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	var user models.User
	if err := db.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Email not found")
		return
	}

	token := uuid.NewString()
	err := db.DB.Model(&user).Update("remember_token", token).Error
	if err != nil {
		utils.LogErrorWithUser(user.ID, err, "Error storing the reset token in ForgotPassword")
		utils.SendError(c, http.StatusInternalServerError, "Error generating the reset link")
		return
	}

	resetLink := os.Getenv("APP_URL") + "/api/reset-password?token=" + token
	go utils.SendMail(user.Email, utils.PasswordResetMail(user.Email, resetLink))

	c.JSON(http.StatusOK, gin.H{
		"status":     true,
		"message":    "Password reset link generated successfully",
		"reset_link": resetLink,
	})
}

type resetPasswordInput struct {
	Token                string `json:"token" binding:"required"`
	Password             string `json:"password" binding:"required,min=6"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required"`
}

// @Summary Reset the password with a one-time token
// @Tags auth
// @Accept json
// @Produce json
// @Param reset body resetPasswordInput true "Reset token and new password"
// @Success 200 {object} map[string]interface{} "status, message"
// @Failure 400 {object} map[string]interface{} "status: false, message"
// @Router /reset-password [post]
func ResetPassword(c *gin.Context) {
	var input resetPasswordInput

	if !utils.ValidateRequestBody(c, &input) {
		return
	}

	if input.Password != input.PasswordConfirmation {
		utils.SendError(c, http.StatusBadRequest, "The password confirmation does not match")
		return
	}

	var user models.User
	if err := db.DB.Where("remember_token = ?", input.Token).First(&user).Error; err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid or expired token")
		return
	}

	passwordHash, err := hashPassword(input.Password)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Error hashing the password")
		return
	}

	err = db.DB.Model(&user).Updates(map[string]interface{}{
		"password":       passwordHash,
		"remember_token": "",
	}).Error
	if err != nil {
		utils.LogErrorWithUser(user.ID, err, "Error updating the password in ResetPassword")
		utils.SendError(c, http.StatusInternalServerError, "Error updating the password")
		return
	}

	utils.LogSuccessWithUser(user.ID, "Password reset successful in ResetPassword")
	utils.SendMessage(c, http.StatusOK, "Password reset successful")
}
