package billing

import (
	"time"

	"coretalents-backend/internal/domain/plans"
	"coretalents-backend/internal/domain/users"
)

type SubscriptionStatus string

const (
	StatusCreated SubscriptionStatus = "created"
	StatusActive  SubscriptionStatus = "active"
	StatusExpired SubscriptionStatus = "expired"
)

// Subscription is one purchase attempt. A row is created at checkout
// start with status "created", flipped to "active" exactly once by a
// verified payment, and aged out to "expired" lazily by read paths.
type Subscription struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"not null;index"`
	User   users.User
	PlanID uint `gorm:"not null"`
	Plan   plans.Plan

	OrderID   string  `gorm:"not null;uniqueIndex:idx_subscriptions_order_id"`
	PaymentID *string // set on activation

	// Amount is the plan price snapshotted at order creation, in rupees.
	// Later plan price edits must not touch it.
	Amount int64 `gorm:"not null"`

	Status    SubscriptionStatus `gorm:"type:varchar(20);not null;default:'created'"`
	StartDate *time.Time
	EndDate   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
