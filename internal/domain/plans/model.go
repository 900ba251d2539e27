package plans

import "time"

// Plan is a purchasable tier. Price is in whole rupees; the gateway
// gets it converted to paise at order creation.
type Plan struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"not null"`
	Price          int64  `gorm:"not null"`
	ResumeLimit    int    `gorm:"not null"`
	DurationInDays int    `gorm:"not null"`
	Description    string
	IsActive       bool `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
