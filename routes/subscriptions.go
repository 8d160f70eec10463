package routes

import (
	"elousia-backend/handlers/payments"
	"elousia-backend/handlers/subscriptions"

	"github.com/gin-gonic/gin"
)

func SubscriptionRoutes(api *gin.RouterGroup) {
	api.GET("/plans", subscriptions.ListPlans)
	api.GET("/subscription/:user_id", subscriptions.UserSubscriptions)
	api.POST("/subscription/cancel/:id", subscriptions.CancelSubscription)
}

func PaymentRoutes(api *gin.RouterGroup) {
	api.POST("/payment/stripe", payments.PayWithStripe)
	api.POST("/payment/sentoo", payments.PayWithSentoo)
	api.POST("/payment/success", payments.PaymentSuccess)
}
