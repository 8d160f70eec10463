package middleware

import (
	"net/http"
	"strings"

	"elousia-backend/models"
	"elousia-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

func extractJwtClaims(c *gin.Context) (jwt.MapClaims, bool) {
	authHeader := c.GetHeader("Authorization")

	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"status": false, "message": "Authorization header missing"})
		c.Abort()
		return nil, false
	}

	authHeader = strings.Trim(authHeader, "\"' ")

	if !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		authHeader = "Bearer " + authHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		c.JSON(http.StatusUnauthorized, gin.H{"status": false, "message": "Invalid authorization format, expected: Bearer <token>"})
		c.Abort()
		return nil, false
	}

	tokenString := strings.Trim(parts[1], "\"' ")

	claims, err := utils.DecodeJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"status": false, "message": "Invalid or expired token: " + err.Error()})
		c.Abort()
		return nil, false
	}

	return claims, true
}

func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := extractJwtClaims(c)
		if !ok {
			return
		}

		// numeric claims come back as float64 from MapClaims
		if id, ok := claims["user_id"].(float64); ok {
			c.Set("user_id", int64(id))
		}
		c.Set("user_type", claims["user_type"])
		c.Next()
	}
}

func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := extractJwtClaims(c)
		if !ok {
			return
		}

		if id, ok := claims["user_id"].(float64); ok {
			c.Set("user_id", int64(id))
		}
		c.Set("user_type", claims["user_type"])

		if claims["user_type"] != string(models.AdminUser) {
			c.JSON(http.StatusForbidden, gin.H{"status": false, "message": "Access denied: admin role required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
