package dto

import "time"

// RateLimitInfo describes the caller's window after a check.
type RateLimitInfo struct {
	Allowed   bool      `json:"allowed"`
	Limit     int       `json:"limit"`
	Remaining int       `json:"remaining"`
	ResetAt   time.Time `json:"reset_at"`
}
