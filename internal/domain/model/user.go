package model

import (
	"time"
)

const DefaultPlan = "free"

type User struct {
	ID             string    `json:"id" bson:"id"`
	Email          string    `json:"email" bson:"email"`
	Name           string    `json:"name" bson:"name"`
	HashedPassword string    `json:"-" bson:"password"` // Not exposed
	Plan           string    `json:"plan" bson:"plan"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	Industry       string    `json:"industry,omitempty" bson:"industry,omitempty"`
	TargetRoles    []string  `json:"target_roles" bson:"target_roles"`
}
