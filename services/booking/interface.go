package booking

import (
	"context"

	bookingRepo "servana/database/repository/booking"
	profileRepo "servana/database/repository/profile"
	taskRepo "servana/database/repository/task"
	"servana/models"

	"go.uber.org/zap"
)

// BookingService owns the booking lifecycle: creation in pending state,
// status-machine-gated transitions, and the customer/provider views.
type BookingService interface {
	Create(ctx context.Context, taskID, customerID, providerID string) (*models.Booking, error)
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	Transition(ctx context.Context, bookingID string, requested models.BookingStatus) (*models.Booking, error)
	CustomerBookings(ctx context.Context, customerID string) ([]models.CustomerBookingView, error)
	ProviderBookings(ctx context.Context, providerID string) ([]models.ProviderBookingView, error)
	Stats(ctx context.Context, userID, role string) (models.BookingStats, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Tasks    taskRepo.TaskRepository
	Profiles profileRepo.ProfileRepository
	Logger   *zap.Logger
}
