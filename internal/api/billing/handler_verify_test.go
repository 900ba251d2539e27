package billing

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coretalents-backend/config"
	"coretalents-backend/database"
	"coretalents-backend/internal/domain/billing"
	"coretalents-backend/internal/domain/plans"
	"coretalents-backend/internal/domain/users"
	"coretalents-backend/internal/infra/razorpay"
	"coretalents-backend/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeySecret = "test_key_secret"

func setupBillingDB(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.RAZORPAY_KEY_SECRET = testKeySecret
	database.DB = testutil.OpenDB(t,
		&users.User{},
		&plans.Plan{},
		&billing.Subscription{},
	)
}

func seedBilling(t *testing.T) (users.User, plans.Plan, billing.Subscription) {
	t.Helper()

	u := users.User{Name: "Ravi", Email: "ravi@example.com", Role: "user"}
	require.NoError(t, database.DB.Create(&u).Error)

	p := plans.Plan{Name: "Pro", Price: 499, ResumeLimit: 10, DurationInDays: 30, IsActive: true}
	require.NoError(t, database.DB.Create(&p).Error)

	sub := billing.Subscription{
		UserID:  u.ID,
		PlanID:  p.ID,
		OrderID: "order_test_1",
		Amount:  p.Price,
		Status:  billing.StatusCreated,
	}
	require.NoError(t, database.DB.Create(&sub).Error)

	return u, p, sub
}

func postVerify(t *testing.T, userID uint, role string, payload gin.H) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payment/verify-payment", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", userID)
	c.Set("role", role)

	VerifyPayment(c)
	return w
}

func TestVerifyPaymentActivates(t *testing.T) {
	setupBillingDB(t)
	u, p, sub := seedBilling(t)

	sig := razorpay.SignPayment(sub.OrderID, "pay_test_1", testKeySecret)
	w := postVerify(t, u.ID, "user", gin.H{
		"razorpay_order_id":   sub.OrderID,
		"razorpay_payment_id": "pay_test_1",
		"razorpay_signature":  sig,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var stored billing.Subscription
	require.NoError(t, database.DB.First(&stored, sub.ID).Error)
	assert.Equal(t, billing.StatusActive, stored.Status)
	require.NotNil(t, stored.PaymentID)
	assert.Equal(t, "pay_test_1", *stored.PaymentID)

	require.NotNil(t, stored.StartDate)
	require.NotNil(t, stored.EndDate)
	assert.WithinDuration(t, time.Now(), *stored.StartDate, 5*time.Second)

	// calendar-day addition, not elapsed seconds
	want := stored.StartDate.AddDate(0, 0, p.DurationInDays)
	assert.True(t, stored.EndDate.Equal(want), "endDate = startDate + %d days", p.DurationInDays)
}

func TestVerifyPaymentRejectsBadSignature(t *testing.T) {
	setupBillingDB(t)
	u, _, sub := seedBilling(t)

	sig := razorpay.SignPayment(sub.OrderID, "pay_test_1", testKeySecret)
	mutated := []byte(sig)
	if mutated[0] == '0' {
		mutated[0] = '1'
	} else {
		mutated[0] = '0'
	}

	w := postVerify(t, u.ID, "user", gin.H{
		"razorpay_order_id":   sub.OrderID,
		"razorpay_payment_id": "pay_test_1",
		"razorpay_signature":  string(mutated),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var stored billing.Subscription
	require.NoError(t, database.DB.First(&stored, sub.ID).Error)
	assert.Equal(t, billing.StatusCreated, stored.Status)
	assert.Nil(t, stored.PaymentID)
	assert.Nil(t, stored.StartDate)
}

func TestVerifyPaymentIdempotent(t *testing.T) {
	setupBillingDB(t)
	u, _, sub := seedBilling(t)

	payload := gin.H{
		"razorpay_order_id":   sub.OrderID,
		"razorpay_payment_id": "pay_test_1",
		"razorpay_signature":  razorpay.SignPayment(sub.OrderID, "pay_test_1", testKeySecret),
	}

	w := postVerify(t, u.ID, "user", payload)
	require.Equal(t, http.StatusOK, w.Code)

	var first billing.Subscription
	require.NoError(t, database.DB.First(&first, sub.ID).Error)

	// a duplicate client retry must succeed without moving the dates
	w = postVerify(t, u.ID, "user", payload)
	assert.Equal(t, http.StatusOK, w.Code)

	var second billing.Subscription
	require.NoError(t, database.DB.First(&second, sub.ID).Error)
	assert.True(t, second.EndDate.Equal(*first.EndDate))
	assert.True(t, second.StartDate.Equal(*first.StartDate))
}

func TestVerifyPaymentUnknownOrder(t *testing.T) {
	setupBillingDB(t)
	u, _, _ := seedBilling(t)

	w := postVerify(t, u.ID, "user", gin.H{
		"razorpay_order_id":   "order_missing",
		"razorpay_payment_id": "pay_test_1",
		"razorpay_signature":  razorpay.SignPayment("order_missing", "pay_test_1", testKeySecret),
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVerifyPaymentForeignOrder(t *testing.T) {
	setupBillingDB(t)
	_, _, sub := seedBilling(t)

	intruder := users.User{Name: "Mallory", Email: "mallory@example.com", Role: "user"}
	require.NoError(t, database.DB.Create(&intruder).Error)

	w := postVerify(t, intruder.ID, "user", gin.H{
		"razorpay_order_id":   sub.OrderID,
		"razorpay_payment_id": "pay_test_1",
		"razorpay_signature":  razorpay.SignPayment(sub.OrderID, "pay_test_1", testKeySecret),
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	var stored billing.Subscription
	require.NoError(t, database.DB.First(&stored, sub.ID).Error)
	assert.Equal(t, billing.StatusCreated, stored.Status)
}
