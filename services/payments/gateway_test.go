package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"elousia-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func expectPlan(mock sqlmock.Sqlmock, id int64, price float64) {
	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "plans" WHERE id = \$1`).
		WillReturnRows(mock.NewRows([]string{"id", "name", "price", "duration_days", "status", "created_at", "updated_at"}).
			AddRow(id, "Premium", price, 30, "active", now, now))
}

func expectMethod(mock sqlmock.Sqlmock, code, configJSON string) {
	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "payment_methods" WHERE status = \$1 AND code = \$2`).
		WillReturnRows(mock.NewRows([]string{"id", "code", "status", "config_json", "created_at", "updated_at"}).
			AddRow(1, code, "active", configJSON, now, now))
}

func TestSentooInitiate_ReturnsProviderResponse(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payments", r.URL.Path)
		assert.Equal(t, "Bearer sk_sentoo_test", r.Header.Get("Authorization"))

		var payload map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "merch_1", payload["merchant_id"])
		assert.Equal(t, 9.99, payload["amount"])
		assert.Equal(t, "USD", payload["currency"])
		assert.Contains(t, payload["reference"], "txn_")

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"redirect_url": "https://pay.example/abc"}`)
	}))
	defer provider.Close()

	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectPlan(mock, 1, 9.99)
	expectMethod(mock, "sentoo", fmt.Sprintf(`{"secret_key":"sk_sentoo_test","merchant_id":"merch_1","base_url":"%s"}`, provider.URL))

	gateway := NewSentooGateway(gormDB)
	resp, err := gateway.Initiate(context.Background(), 1, 5)

	assert.NoError(t, err)
	assert.Equal(t, "https://pay.example/abc", resp["redirect_url"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSentooInitiate_ProviderFailureIsProviderError(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error": "boom"}`)
	}))
	defer provider.Close()

	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectPlan(mock, 1, 9.99)
	expectMethod(mock, "sentoo", fmt.Sprintf(`{"secret_key":"sk","merchant_id":"m","base_url":"%s"}`, provider.URL))

	gateway := NewSentooGateway(gormDB)
	resp, err := gateway.Initiate(context.Background(), 1, 5)

	assert.Nil(t, resp)
	var providerErr *ProviderError
	assert.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "sentoo", providerErr.Provider)
}

func TestSentooInitiate_UnreachableProviderIsProviderError(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectPlan(mock, 1, 9.99)
	expectMethod(mock, "sentoo", `{"secret_key":"sk","merchant_id":"m","base_url":"http://127.0.0.1:1"}`)

	gateway := NewSentooGateway(gormDB)
	resp, err := gateway.Initiate(context.Background(), 1, 5)

	assert.Nil(t, resp)
	var providerErr *ProviderError
	assert.ErrorAs(t, err, &providerErr)
}

func TestSentooInitiate_UnknownPlan(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "plans" WHERE id = \$1`).
		WillReturnRows(mock.NewRows([]string{"id"}))

	gateway := NewSentooGateway(gormDB)
	resp, err := gateway.Initiate(context.Background(), 99, 5)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidPlanOrMethod)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStripeInitiate_DisabledMethod(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectPlan(mock, 1, 9.99)
	mock.ExpectQuery(`SELECT \* FROM "payment_methods" WHERE status = \$1 AND code = \$2`).
		WillReturnRows(mock.NewRows([]string{"id"}))

	gateway := NewStripeGateway(gormDB)
	resp, err := gateway.Initiate(context.Background(), 1, 5)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidPlanOrMethod)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStripeInitiate_MalformedConfig(t *testing.T) {
	gormDB, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectPlan(mock, 1, 9.99)
	expectMethod(mock, "stripe", `not json`)

	gateway := NewStripeGateway(gormDB)
	resp, err := gateway.Initiate(context.Background(), 1, 5)

	assert.Nil(t, resp)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidPlanOrMethod)
}
