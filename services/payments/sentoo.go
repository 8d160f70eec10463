package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"elousia-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SentooGateway posts the merchant credentials and amount to the provider
// and returns its response (redirect URL or token) to the client verbatim.
type SentooGateway struct {
	db     *gorm.DB
	client *http.Client
}

func NewSentooGateway(db *gorm.DB) *SentooGateway {
	return &SentooGateway{
		db: db,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (g *SentooGateway) Initiate(ctx context.Context, planID, userID int64) (map[string]interface{}, error) {
	plan, cfg, err := loadPlanAndConfig(g.db, planID, models.PaymentMethodSentoo)
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"merchant_id": cfg.MerchantID,
		"amount":      plan.Price,
		"currency":    "USD",
		"reference":   "txn_" + uuid.NewString(),
		"callback":    os.Getenv("APP_URL") + "/api/payment/sentoo/callback",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.BaseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+cfg.SecretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, &ProviderError{Provider: models.PaymentMethodSentoo, Err: err}
	}
	defer resp.Body.Close()

	var providerResp map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&providerResp); err != nil {
		return nil, &ProviderError{Provider: models.PaymentMethodSentoo, Err: err}
	}

	// provider-side failures come back as JSON too; 5xx still counts as a
	// provider error rather than a client mistake
	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, &ProviderError{Provider: models.PaymentMethodSentoo, Err: fmt.Errorf("provider returned status %d", resp.StatusCode)}
	}

	return providerResp, nil
}
