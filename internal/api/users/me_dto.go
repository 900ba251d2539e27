package users

import "time"

type MeResponse struct {
	User         UserDTO          `json:"user"`
	Subscription *SubscriptionDTO `json:"subscription"`
}

type UserDTO struct {
	ID     uint    `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Phone  *string `json:"phone"`
	Role   string  `json:"role"`
	Avatar *string `json:"avatar,omitempty"`
}

// SubscriptionDTO is the resolved entitlement the frontend uses for the
// premium badge and remaining-quota display.
type SubscriptionDTO struct {
	Status      string    `json:"status"`
	EndDate     time.Time `json:"end_date"`
	ResumeLimit int       `json:"resume_limit"`
	Plan        PlanDTO   `json:"plan"`
}

type PlanDTO struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Price          int64  `json:"price"`
	ResumeLimit    int    `json:"resume_limit"`
	DurationInDays int    `json:"duration_in_days"`
}
