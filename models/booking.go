package models

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingAccepted   BookingStatus = "accepted"
	BookingInProgress BookingStatus = "in-progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
	BookingDeclined   BookingStatus = "declined"
)

// IsValid reports whether s is one of the known booking statuses.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingAccepted, BookingInProgress,
		BookingCompleted, BookingCancelled, BookingDeclined:
		return true
	}
	return false
}

// Display returns the customer-facing label for a status.
func (s BookingStatus) Display() string {
	switch s {
	case BookingPending:
		return "Waiting for Provider"
	case BookingAccepted:
		return "Provider Accepted"
	case BookingInProgress:
		return "Service in Progress"
	case BookingCompleted:
		return "Service Completed"
	case BookingCancelled:
		return "Cancelled"
	case BookingDeclined:
		return "Declined by Provider"
	}
	return string(s)
}

// Booking records a customer-provider service engagement. Bookings are never
// deleted; terminal statuses (completed, cancelled, declined) close them out.
// The persisted status is always the real status, including cancelled.
type Booking struct {
	ID         string        `bson:"id" json:"id"`
	TaskID     string        `bson:"taskId" json:"task_id"`
	CustomerID string        `bson:"customerId" json:"customer_id"`
	ProviderID string        `bson:"providerId" json:"provider_id"`
	Status     BookingStatus `bson:"status" json:"status"`
	CreatedAt  time.Time     `bson:"createdAt" json:"created_at"`

	// One timestamp per status transition, stamped when the transition lands.
	AcceptedAt  *time.Time `bson:"acceptedAt,omitempty" json:"accepted_at,omitempty"`
	StartedAt   *time.Time `bson:"startedAt,omitempty" json:"started_at,omitempty"`
	CompletedAt *time.Time `bson:"completedAt,omitempty" json:"completed_at,omitempty"`
	CancelledAt *time.Time `bson:"cancelledAt,omitempty" json:"cancelled_at,omitempty"`
}

// CustomerBookingView is a booking decorated for the customer's list screen.
type CustomerBookingView struct {
	Booking
	ServiceName        string `json:"service_name"`
	ServiceDescription string `json:"service_description,omitempty"`
	ProviderName       string `json:"provider_name"`
	ProviderPhone      string `json:"provider_phone,omitempty"`
	ProviderRating     float64 `json:"provider_rating,omitempty"`
	StatusDisplay      string `json:"status_display"`
	CanCancel          bool   `json:"can_cancel"`
	CanRate            bool   `json:"can_rate"`
}

// ProviderBookingView is a booking decorated for the provider's work queue.
type ProviderBookingView struct {
	Booking
	ServiceName        string `json:"service_name"`
	ServiceDescription string `json:"service_description,omitempty"`
	CustomerName       string `json:"customer_name"`
	CustomerPhone      string `json:"customer_phone,omitempty"`
	CustomerAddress    string `json:"customer_address,omitempty"`
	StatusDisplay      string `json:"status_display"`
	CanAccept          bool   `json:"can_accept"`
	CanDecline         bool   `json:"can_decline"`
	CanStart           bool   `json:"can_start"`
	CanComplete        bool   `json:"can_complete"`
}

// BookingStats is a per-status tally for a customer or provider dashboard.
type BookingStats struct {
	Total      int `json:"total_bookings"`
	Pending    int `json:"pending"`
	Accepted   int `json:"accepted"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
	Declined   int `json:"declined"`
}
