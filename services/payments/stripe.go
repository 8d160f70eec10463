package payments

import (
	"context"
	"strconv"

	"elousia-backend/models"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"gorm.io/gorm"
)

// StripeGateway creates a payment intent and hands the client secret back
// for client-side confirmation. Completion is reported later through the
// payment success callback, there is no server-side success detection.
type StripeGateway struct {
	db *gorm.DB
}

func NewStripeGateway(db *gorm.DB) *StripeGateway {
	return &StripeGateway{db: db}
}

func (g *StripeGateway) Initiate(ctx context.Context, planID, userID int64) (map[string]interface{}, error) {
	plan, cfg, err := loadPlanAndConfig(g.db, planID, models.PaymentMethodStripe)
	if err != nil {
		return nil, err
	}

	stripe.Key = cfg.SecretKey

	params := &stripe.PaymentIntentParams{
		// Stripe wants minor currency units
		Amount:   stripe.Int64(int64(plan.Price * 100)),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
	}
	params.Context = ctx
	params.AddMetadata("plan_id", strconv.FormatInt(plan.ID, 10))
	params.AddMetadata("user_id", strconv.FormatInt(userID, 10))

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, &ProviderError{Provider: models.PaymentMethodStripe, Err: err}
	}

	return map[string]interface{}{
		"client_secret": intent.ClientSecret,
	}, nil
}
