package model

import "time"

// Service is an offering shown on the marketing site. Services are immutable
// once created.
type Service struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Features    []string  `json:"features" bson:"features"`
	Icon        string    `json:"icon" bson:"icon"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
