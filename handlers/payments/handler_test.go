package payments

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"elousia-backend/testutils"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func TestPaymentSuccess_ActivatesSubscription(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "plans" WHERE id = \$1`).
		WillReturnRows(mock.NewRows([]string{"id", "name", "price", "duration_days", "status", "created_at", "updated_at"}).
			AddRow(1, "Premium", 9.99, 30, "active", now, now))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "subscriptions" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery(`INSERT INTO "subscriptions_transactions" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/payment/success", PaymentSuccess)

	paymentData := map[string]interface{}{
		"plan_id":        1,
		"user_id":        5,
		"transaction_id": "pi_3Nxyz",
		"amount":         9.99,
		"method":         "stripe",
	}
	jsonData, _ := json.Marshal(paymentData)

	req, _ := http.NewRequest(http.MethodPost, "/payment/success", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Subscription activated successfully", respBody["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentSuccess_InvalidPlan(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "plans" WHERE id = \$1`).
		WillReturnRows(mock.NewRows([]string{"id"}))

	r := testutils.SetupTestRouter()
	r.POST("/payment/success", PaymentSuccess)

	paymentData := map[string]interface{}{
		"plan_id":        999,
		"user_id":        5,
		"transaction_id": "pi_3Nxyz",
		"amount":         9.99,
		"method":         "stripe",
	}
	jsonData, _ := json.Marshal(paymentData)

	req, _ := http.NewRequest(http.MethodPost, "/payment/success", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Invalid Plan", respBody["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentSuccess_MissingTransactionId(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/payment/success", PaymentSuccess)

	paymentData := map[string]interface{}{
		"plan_id": 1,
		"user_id": 5,
		"amount":  9.99,
		"method":  "stripe",
	}
	jsonData, _ := json.Marshal(paymentData)

	req, _ := http.NewRequest(http.MethodPost, "/payment/success", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Contains(t, respBody["error"], "Field validation for 'TransactionID' failed")
}

func TestPayWithStripe_UnknownPlan(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "plans" WHERE id = \$1`).
		WillReturnRows(mock.NewRows([]string{"id"}))

	r := testutils.SetupTestRouter()
	r.POST("/payment/stripe", PayWithStripe)

	checkoutData := map[string]interface{}{
		"plan_id": 999,
		"user_id": 5,
	}
	jsonData, _ := json.Marshal(checkoutData)

	req, _ := http.NewRequest(http.MethodPost, "/payment/stripe", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Invalid plan or payment method", respBody["error"])
}

func TestPayWithSentoo_DisabledMethod(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "plans" WHERE id = \$1`).
		WillReturnRows(mock.NewRows([]string{"id", "name", "price", "duration_days", "status", "created_at", "updated_at"}).
			AddRow(1, "Premium", 9.99, 30, "active", now, now))
	mock.ExpectQuery(`SELECT \* FROM "payment_methods" WHERE status = \$1 AND code = \$2`).
		WillReturnRows(mock.NewRows([]string{"id"}))

	r := testutils.SetupTestRouter()
	r.POST("/payment/sentoo", PayWithSentoo)

	checkoutData := map[string]interface{}{
		"plan_id": 1,
		"user_id": 5,
	}
	jsonData, _ := json.Marshal(checkoutData)

	req, _ := http.NewRequest(http.MethodPost, "/payment/sentoo", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Invalid plan or payment method", respBody["error"])
}
