package billing

import (
	"net/http"
	"time"

	"coretalents-backend/database"
	"coretalents-backend/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

// GET /payment/history
func GetMyPayments(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	expireOverdue(userID)

	var subs []billing.Subscription
	if err := database.DB.
		Preload("Plan").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&subs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payment history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": subs})
}

// GET /payment/history/all (admin)
//
// Reads flip any overdue active rows to expired before returning, so
// the listing never shows an "active" subscription past its end date.
func GetAllPaymentHistory(c *gin.Context) {
	expireOverdue(0)

	var subs []billing.Subscription
	if err := database.DB.
		Preload("User").
		Preload("Plan").
		Where("status IN ?", []billing.SubscriptionStatus{billing.StatusActive, billing.StatusExpired}).
		Order("created_at DESC").
		Find(&subs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payment history"})
		return
	}

	out := make([]gin.H, 0, len(subs))
	for _, s := range subs {
		out = append(out, gin.H{
			"id":         s.ID,
			"order_id":   s.OrderID,
			"payment_id": s.PaymentID,
			"amount":     s.Amount,
			"status":     s.Status,
			"start_date": s.StartDate,
			"end_date":   s.EndDate,
			"created_at": s.CreatedAt,
			"user": gin.H{
				"id":    s.User.ID,
				"name":  s.User.Name,
				"email": s.User.Email,
			},
			"plan": gin.H{
				"id":               s.Plan.ID,
				"name":             s.Plan.Name,
				"resume_limit":     s.Plan.ResumeLimit,
				"duration_in_days": s.Plan.DurationInDays,
			},
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": out})
}

// expireOverdue is the lazy active -> expired transition. userID 0 means
// all users. One conditional UPDATE, idempotent under concurrent reads.
func expireOverdue(userID uint) {
	q := database.DB.Model(&billing.Subscription{}).
		Where("status = ? AND end_date < ?", billing.StatusActive, time.Now())
	if userID != 0 {
		q = q.Where("user_id = ?", userID)
	}
	q.Update("status", billing.StatusExpired)
}
