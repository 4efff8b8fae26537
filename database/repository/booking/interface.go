package bookingRepo

import (
	"servana/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingRepository abstracts persistence for bookings. Bookings are never
// deleted, so there is no Delete.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	ListByCustomer(customerID string) ([]models.Booking, error)
	ListByProvider(providerID string) ([]models.Booking, error)
	// List returns bookings matching an arbitrary equality filter; used by
	// maintenance commands.
	List(filter bson.M) ([]models.Booking, error)
	// UpdateFields applies a partial update and returns the updated booking.
	UpdateFields(id string, fields bson.M) (*models.Booking, error)
}
