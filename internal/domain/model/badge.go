package model

import (
	"time"
)

// Badge is a digital credential issued by a third party and stored
// against a user. Badges are never deleted; the only mutation after
// creation is the public view counter.
type Badge struct {
	ID                string     `json:"id" bson:"id"`
	UserID            string     `json:"user_id" bson:"user_id"`
	Name              string     `json:"name" bson:"name"`
	Issuer            string     `json:"issuer" bson:"issuer"`
	Description       string     `json:"description" bson:"description"`
	ImageURL          string     `json:"image_url" bson:"image_url"`
	IssuedDate        time.Time  `json:"issued_date" bson:"issued_date"`
	ExpiryDate        *time.Time `json:"expiry_date,omitempty" bson:"expiry_date,omitempty"`
	Skills            []string   `json:"skills" bson:"skills"`
	VerificationURL   string     `json:"verification_url" bson:"verification_url"`
	BadgeClass        string     `json:"badge_class" bson:"badge_class"`
	Evidence          string     `json:"evidence,omitempty" bson:"evidence,omitempty"`
	Verified          bool       `json:"verified" bson:"verified"`
	VerificationScore float64    `json:"verification_score" bson:"verification_score"` // in [0,1]
	Views             int64      `json:"views" bson:"views"`
}

// VerificationResult is the response of a badge verification check.
type VerificationResult struct {
	BadgeID           string    `json:"badge_id"`
	Name              string    `json:"name"`
	Issuer            string    `json:"issuer"`
	Verified          bool      `json:"verified"`
	VerificationScore float64   `json:"verification_score"`
	VerificationHash  string    `json:"verification_hash"`
	VerifiedAt        time.Time `json:"verified_at"`
	NotExpired        bool      `json:"not_expired"`
}
