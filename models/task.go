package models

import "time"

// Task statuses follow the customer-facing lifecycle, separate from booking statuses.
const (
	TaskOpen       = "open"
	TaskInProgress = "in-progress"
	TaskCompleted  = "completed"
)

// Task is a customer's posted service request.
type Task struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CustomerID  string    `bson:"customerId" json:"customer_id"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updated_at"`
}

// TaskUpdateRequest carries the optional fields of a partial task update.
type TaskUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}
