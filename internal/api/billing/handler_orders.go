package billing

import (
	"log/slog"
	"net/http"

	"coretalents-backend/config"
	"coretalents-backend/database"
	"coretalents-backend/internal/domain/billing"
	"coretalents-backend/internal/domain/plans"
	"coretalents-backend/internal/infra/razorpay"

	"github.com/gin-gonic/gin"
)

type orderCreator interface {
	CreateOrder(amountPaise int64, currency string) (*razorpay.Order, error)
}

// swapped out in tests
var newGateway = func() orderCreator {
	return razorpay.NewGateway(config.RAZORPAY_KEY_ID, config.RAZORPAY_KEY_SECRET)
}

// POST /payment/create-order
//
// The gateway call happens first; the local subscription row is written
// only once the gateway has handed back a definite order id. A crash in
// between leaves an orphaned gateway order and no local row, which is
// the accepted degraded outcome.
func CreateOrder(c *gin.Context) {
	var body struct {
		PlanID uint `json:"plan_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid plan_id"})
		return
	}

	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return
	}

	var plan plans.Plan
	if err := database.DB.
		Where("id = ? AND is_active = ?", body.PlanID, true).
		First(&plan).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	// gateway wants the amount in paise
	order, err := newGateway().CreateOrder(plan.Price*100, "INR")
	if err != nil {
		slog.Error("gateway order creation failed", "plan_id", plan.ID, "user_id", userID, "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment gateway error"})
		return
	}

	sub := billing.Subscription{
		UserID:  userID,
		PlanID:  plan.ID,
		OrderID: order.ID,
		Amount:  plan.Price, // snapshot; later plan edits must not change it
		Status:  billing.StatusCreated,
	}
	if err := database.DB.Create(&sub).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"order":   order,
		"plan":    plan,
	})
}
