package billing

import (
	"log/slog"
	"net/http"
	"time"

	"coretalents-backend/config"
	"coretalents-backend/database"
	"coretalents-backend/internal/domain/billing"
	"coretalents-backend/internal/infra/razorpay"

	"github.com/gin-gonic/gin"
)

// POST /payment/verify-payment
//
// Purely local: recompute the gateway signature, and on a match flip the
// subscription created -> active with a conditional update so duplicate
// callbacks can never move the dates a second time.
func VerifyPayment(c *gin.Context) {
	var body struct {
		RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
		RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
		RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing payment details"})
		return
	}

	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	if !razorpay.VerifySignature(body.RazorpayOrderID, body.RazorpayPaymentID, body.RazorpaySignature, config.RAZORPAY_KEY_SECRET) {
		// potential tamper attempt, keep a distinct trace
		slog.Warn("payment signature mismatch",
			"order_id", body.RazorpayOrderID,
			"user_id", userID,
		)
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid signature"})
		return
	}

	var sub billing.Subscription
	if err := database.DB.Preload("Plan").
		Where("order_id = ?", body.RazorpayOrderID).
		First(&sub).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Subscription record not found"})
		return
	}

	// the order must belong to the caller
	if sub.UserID != userID && c.GetString("role") != "admin" {
		slog.Warn("payment verification for foreign order",
			"order_id", body.RazorpayOrderID,
			"owner_id", sub.UserID,
			"caller_id", userID,
		)
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Order does not belong to this user"})
		return
	}

	// duplicate callback after a successful activation
	if sub.Status == billing.StatusActive {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment already verified"})
		return
	}

	startDate := time.Now()
	endDate := startDate.AddDate(0, 0, sub.Plan.DurationInDays)

	res := database.DB.Model(&billing.Subscription{}).
		Where("order_id = ? AND status = ?", body.RazorpayOrderID, billing.StatusCreated).
		Updates(map[string]interface{}{
			"payment_id": body.RazorpayPaymentID,
			"status":     billing.StatusActive,
			"start_date": startDate,
			"end_date":   endDate,
		})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to activate subscription"})
		return
	}

	if res.RowsAffected == 0 {
		// lost the race to a concurrent verify; if that one activated
		// the subscription we are still a success
		var current billing.Subscription
		if err := database.DB.Where("order_id = ?", body.RazorpayOrderID).First(&current).Error; err == nil &&
			current.Status == billing.StatusActive {
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment already verified"})
			return
		}
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Subscription is not awaiting payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment verified, membership active"})
}
