package model

import "time"

// ConsultationBooking is a public request to book a consultation slot.
// PreferredDate and PreferredTime are kept as the client sent them.
type ConsultationBooking struct {
	ID            string    `json:"id" bson:"id"`
	Name          string    `json:"name" bson:"name"`
	Email         string    `json:"email" bson:"email"`
	Phone         *string   `json:"phone" bson:"phone"`
	PreferredDate string    `json:"preferred_date" bson:"preferred_date"`
	PreferredTime string    `json:"preferred_time" bson:"preferred_time"`
	Topic         string    `json:"topic" bson:"topic"`
	Message       *string   `json:"message" bson:"message"`
	Status        Status    `json:"status" bson:"status"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}
