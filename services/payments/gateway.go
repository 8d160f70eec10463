// Package payments adapts the checkout flow over the external payment
// providers. Provider credentials live in the payment_methods table and are
// re-read on every call, so operators can rotate keys without a restart.
package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"elousia-backend/models"

	"gorm.io/gorm"
)

var ErrInvalidPlanOrMethod = errors.New("invalid plan or payment method")

// ProviderError marks an upstream failure (network, timeout, provider 5xx)
// so handlers never mistake it for a client mistake.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider error: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Gateway initiates a payment for a plan and returns the provider-specific
// payload the client needs to complete it (client secret, redirect URL...).
type Gateway interface {
	Initiate(ctx context.Context, planID, userID int64) (map[string]interface{}, error)
}

type providerConfig struct {
	SecretKey  string `json:"secret_key"`
	MerchantID string `json:"merchant_id"`
	BaseURL    string `json:"base_url"`
}

// loadPlanAndConfig fetches the plan and the enabled payment-method row for
// the given provider code. Either one missing is the caller's mistake, not
// a provider failure.
func loadPlanAndConfig(db *gorm.DB, planID int64, code string) (*models.Plan, *providerConfig, error) {
	var plan models.Plan
	if err := db.First(&plan, "id = ?", planID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidPlanOrMethod
		}
		return nil, nil, err
	}

	var method models.PaymentMethod
	err := db.Where("status = ?", "active").Where("code = ?", code).First(&method).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidPlanOrMethod
		}
		return nil, nil, err
	}

	var cfg providerConfig
	if err := json.Unmarshal([]byte(method.ConfigJSON), &cfg); err != nil {
		return nil, nil, fmt.Errorf("malformed %s payment method config: %w", code, err)
	}

	return &plan, &cfg, nil
}
