package payments

import (
	"errors"
	"net/http"

	"elousia-backend/db"
	pay "elousia-backend/services/payments"
	subs "elousia-backend/services/subscriptions"
	"elousia-backend/utils"

	"github.com/gin-gonic/gin"
)

type checkoutInput struct {
	PlanID int64 `json:"plan_id" binding:"required"`
	UserID int64 `json:"user_id" binding:"required"`
}

// initiate runs one gateway and maps its error taxonomy onto the HTTP
// surface: a missing plan/method is the caller's mistake (400), a provider
// failure is upstream (502) and must never look like success.
func initiate(c *gin.Context, gateway pay.Gateway) {
	var input checkoutInput

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	result, err := gateway.Initiate(c.Request.Context(), input.PlanID, input.UserID)
	if err != nil {
		var providerErr *pay.ProviderError
		switch {
		case errors.Is(err, pay.ErrInvalidPlanOrMethod):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan or payment method"})
		case errors.As(err, &providerErr):
			utils.LogErrorWithUser(input.UserID, err, "Payment provider failure in initiate")
			c.JSON(http.StatusBadGateway, gin.H{"error": "Payment provider error"})
		default:
			utils.LogErrorWithUser(input.UserID, err, "Payment initiation failure in initiate")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error initiating the payment"})
		}
		return
	}

	utils.LogSuccessWithUser(input.UserID, "Payment initiated in initiate")
	c.JSON(http.StatusOK, result)
}

// @Summary Start a Stripe payment
// @Description Creates a payment intent and returns the client secret for client-side confirmation
// @Tags payments
// @Accept json
// @Produce json
// @Param checkout body checkoutInput true "Plan and user"
// @Success 200 {object} map[string]string "client_secret"
// @Failure 400 {object} map[string]string "error: Invalid plan or payment method"
// @Failure 502 {object} map[string]string "error: Payment provider error"
// @Router /payment/stripe [post]
func PayWithStripe(c *gin.Context) {
	initiate(c, pay.NewStripeGateway(db.DB))
}

// @Summary Start a Sentoo payment
// @Description Posts the checkout to Sentoo and returns the provider response verbatim
// @Tags payments
// @Accept json
// @Produce json
// @Param checkout body checkoutInput true "Plan and user"
// @Success 200 {object} map[string]interface{} "provider response"
// @Failure 400 {object} map[string]string "error: Invalid plan or payment method"
// @Failure 502 {object} map[string]string "error: Payment provider error"
// @Router /payment/sentoo [post]
func PayWithSentoo(c *gin.Context) {
	initiate(c, pay.NewSentooGateway(db.DB))
}

type successInput struct {
	PlanID        int64   `json:"plan_id" binding:"required"`
	UserID        int64   `json:"user_id" binding:"required"`
	TransactionID string  `json:"transaction_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	Method        string  `json:"method" binding:"required"`
}

// @Summary Finalize a successful payment
// @Description Creates the subscription and its ledger row atomically. The amount and transaction id are caller-supplied and not re-verified against the provider.
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body successInput true "Payment result"
// @Success 200 {object} map[string]string "message: Subscription activated successfully"
// @Failure 400 {object} map[string]string "error: Invalid Plan"
// @Router /payment/success [post]
func PaymentSuccess(c *gin.Context) {
	var input successInput

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	manager := subs.New(db.DB)

	subscription, err := manager.Activate(input.UserID, input.PlanID, input.Amount, input.Method, input.TransactionID)
	if err != nil {
		if errors.Is(err, subs.ErrPlanNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Plan"})
			return
		}
		utils.LogErrorWithUser(input.UserID, err, "Error activating the subscription in PaymentSuccess")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error activating the subscription"})
		return
	}

	utils.LogSuccessWithUser(subscription.UserID, "Subscription activated in PaymentSuccess")
	c.JSON(http.StatusOK, gin.H{"message": "Subscription activated successfully"})
}
