package entitlement

import (
	"errors"
	"time"

	"coretalents-backend/internal/domain/billing"

	"gorm.io/gorm"
)

// Entitlement is the grant of the user's current active subscription.
type Entitlement struct {
	Subscription billing.Subscription
	ResumeLimit  int
	EndDate      time.Time
}

// Resolve returns the user's current entitlement, or nil when none is
// active. Any active subscription whose end date has passed is flipped
// to expired first, so stale rows never leak out of a read. The flip is
// idempotent and safe under concurrent reads.
func Resolve(db *gorm.DB, userID uint, now time.Time) (*Entitlement, error) {
	if err := db.Model(&billing.Subscription{}).
		Where("user_id = ? AND status = ? AND end_date < ?", userID, billing.StatusActive, now).
		Update("status", billing.StatusExpired).Error; err != nil {
		return nil, err
	}

	var sub billing.Subscription
	err := db.Preload("Plan").
		Where("user_id = ? AND status = ? AND end_date >= ?", userID, billing.StatusActive, now).
		Order("end_date DESC").
		First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &Entitlement{
		Subscription: sub,
		ResumeLimit:  sub.Plan.ResumeLimit,
		EndDate:      *sub.EndDate,
	}, nil
}
