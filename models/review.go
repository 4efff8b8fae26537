package models

import "time"

// Review is a customer's rating of a completed booking. Rating is 1..5.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	BookingID  string    `bson:"bookingId" json:"booking_id"`
	CustomerID string    `bson:"customerId" json:"customer_id"`
	ProviderID string    `bson:"providerId" json:"provider_id"`
	Rating     int       `bson:"rating" json:"rating"`
	ReviewText string    `bson:"reviewText,omitempty" json:"review_text,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"created_at"`
}
