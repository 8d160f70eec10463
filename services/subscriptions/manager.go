// Package subscriptions owns the plan catalog and the per-user subscription
// lifecycle, including the payment ledger written at activation.
package subscriptions

import (
	"errors"
	"time"

	"elousia-backend/models"

	"gorm.io/gorm"
)

var (
	ErrPlanNotFound         = errors.New("plan not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

type Manager struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Manager {
	return &Manager{db: db}
}

// ListPlans returns the active plans, cheapest first.
func (m *Manager) ListPlans() ([]models.Plan, error) {
	plans := []models.Plan{}
	err := m.db.Where("status = ?", "active").Order("price ASC").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// ListForUser returns the user's subscriptions joined with current plan
// display fields, newest first. An unknown user id and a user with no
// subscriptions both come back as an empty slice.
func (m *Manager) ListForUser(userID int64) ([]models.SubscriptionWithPlan, error) {
	subs := []models.SubscriptionWithPlan{}
	err := m.db.Table("subscriptions").
		Select("subscriptions.*, plans.name AS plan_name, plans.price AS plan_price, plans.duration_days AS plan_duration, plans.description AS plan_description").
		Joins("JOIN plans ON subscriptions.plan_id = plans.id").
		Where("subscriptions.user_id = ?", userID).
		Order("subscriptions.created_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

// Activate creates the subscription and its ledger row in one transaction:
// both persist or neither does. The amount is what the caller actually
// charged and may differ from the plan price when a promotion applied.
func (m *Manager) Activate(userID, planID int64, amount float64, method, externalTxnID string) (*models.Subscription, error) {
	var plan models.Plan
	if err := m.db.First(&plan, "id = ?", planID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	start := time.Now()
	subscription := models.Subscription{
		UserID:     userID,
		PlanID:     plan.ID,
		Name:       plan.Name,
		Price:      plan.Price,
		FinalPrice: plan.Price,
		Duration:   plan.DurationDays,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, plan.DurationDays),
		Status:     models.SubscriptionActive,
	}

	err := m.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&subscription).Error; err != nil {
			return err
		}
		transaction := models.SubscriptionTransaction{
			SubscriptionsID: subscription.ID,
			UserID:          userID,
			Amount:          amount,
			PaymentType:     method,
			PaymentStatus:   models.PaymentStatusPaid,
			TransactionID:   externalTxnID,
			CreatedBy:       userID,
		}
		return tx.Create(&transaction).Error
	})
	if err != nil {
		return nil, err
	}

	return &subscription, nil
}

// Cancel marks the subscription cancelled. Cancelling an already cancelled
// subscription succeeds silently; there is no un-cancel.
func (m *Manager) Cancel(id int64) (*models.Subscription, error) {
	var subscription models.Subscription
	if err := m.db.First(&subscription, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}

	err := m.db.Model(&subscription).Update("status", models.SubscriptionCancelled).Error
	if err != nil {
		return nil, err
	}
	subscription.Status = models.SubscriptionCancelled

	return &subscription, nil
}
