package model

import "time"

// QuoteRequest is a public request for a project quote.
type QuoteRequest struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Email       string    `json:"email" bson:"email"`
	Company     *string   `json:"company" bson:"company"`
	Service     string    `json:"service" bson:"service"`
	Budget      *string   `json:"budget" bson:"budget"`
	Description string    `json:"description" bson:"description"`
	Status      Status    `json:"status" bson:"status"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
