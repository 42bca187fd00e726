package model

import "time"

// RateLimit is one fixed window for a client under a named policy, keyed by
// rate_limit:<policy>:<client>.
type RateLimit struct {
	Key       string    `json:"key" gorm:"primaryKey;type:text;not null"`
	Count     int       `json:"count" gorm:"default:0;not null"`
	ResetAt   time.Time `json:"reset_at" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

func (r RateLimit) Expired(now time.Time) bool {
	return now.After(r.ResetAt)
}
