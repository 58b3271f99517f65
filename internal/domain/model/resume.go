package model

import (
	"time"
)

// ResumeContent is an open key/value document. Callers assert specific
// fields only at the boundary where they need them.
type ResumeContent map[string]interface{}

type Resume struct {
	ID         string        `json:"id" bson:"id"`
	UserID     string        `json:"user_id" bson:"user_id"`
	Name       string        `json:"name" bson:"name"`
	TemplateID string        `json:"template_id" bson:"template_id"`
	Content    ResumeContent `json:"content" bson:"content"`
	CreatedAt  time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at" bson:"updated_at"`
	IsPublic   bool          `json:"is_public" bson:"is_public"`
	Views      int64         `json:"views" bson:"views"`
	Downloads  int64         `json:"downloads" bson:"downloads"`
}
