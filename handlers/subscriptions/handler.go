package subscriptions

import (
	"errors"
	"net/http"
	"strconv"

	"elousia-backend/db"
	subs "elousia-backend/services/subscriptions"
	"elousia-backend/utils"

	"github.com/gin-gonic/gin"
)

// @Summary List subscription plans
// @Description Active plans, cheapest first
// @Tags subscriptions
// @Produce json
// @Success 200 {object} map[string]interface{} "status, count, plans"
// @Router /plans [get]
func ListPlans(c *gin.Context) {
	manager := subs.New(db.DB)

	plans, err := manager.ListPlans()
	if err != nil {
		utils.LogError(err, "Error loading plans in ListPlans")
		utils.SendError(c, http.StatusInternalServerError, "Error loading plans")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": true,
		"count":  len(plans),
		"plans":  plans,
	})
}

// @Summary Subscriptions of a user
// @Description The user's subscriptions joined with plan display fields, newest first
// @Tags subscriptions
// @Produce json
// @Param user_id path int true "User id"
// @Success 200 {object} map[string]interface{} "status, count, subscriptions"
// @Failure 400 {object} map[string]interface{} "status: false, message"
// @Router /subscription/{user_id} [get]
func UserSubscriptions(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	manager := subs.New(db.DB)

	subscriptions, err := manager.ListForUser(userID)
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error loading subscriptions in UserSubscriptions")
		utils.SendError(c, http.StatusInternalServerError, "Error loading subscriptions")
		return
	}

	// an unknown user and a user without subscriptions look identical here
	if len(subscriptions) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"status":  false,
			"message": "No subscription found for this user.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        true,
		"count":         len(subscriptions),
		"subscriptions": subscriptions,
	})
}

// @Summary Cancel a subscription
// @Description Sets the subscription cancelled; cancelling twice succeeds silently
// @Tags subscriptions
// @Produce json
// @Param id path int true "Subscription id"
// @Success 200 {object} map[string]interface{} "status, message"
// @Failure 400 {object} map[string]interface{} "status: false, message"
// @Router /subscription/cancel/{id} [post]
func CancelSubscription(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, "Invalid subscription id")
		return
	}

	manager := subs.New(db.DB)

	subscription, err := manager.Cancel(id)
	if err != nil {
		if errors.Is(err, subs.ErrSubscriptionNotFound) {
			c.JSON(http.StatusOK, gin.H{
				"status":  false,
				"message": "Subscription not found.",
			})
			return
		}
		utils.LogError(err, "Error cancelling the subscription in CancelSubscription")
		utils.SendError(c, http.StatusInternalServerError, "Error cancelling the subscription")
		return
	}

	utils.LogSuccessWithUser(subscription.UserID, "Subscription cancelled in CancelSubscription")
	utils.SendMessage(c, http.StatusOK, "Subscription has been cancelled successfully.")
}
