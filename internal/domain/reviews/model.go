package reviews

import "time"

// Review is a public testimonial shown on the marketing site.
type Review struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"not null"`
	Work    string
	Content string `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
