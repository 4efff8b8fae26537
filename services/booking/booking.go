package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"servana/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Create inserts a new booking in pending state.
func (s *DefaultBookingService) Create(ctx context.Context, taskID, customerID, providerID string) (*models.Booking, error) {
	if taskID == "" || customerID == "" || providerID == "" {
		return nil, errors.New("task_id, customer_id and provider_id are required")
	}

	b := &models.Booking{
		ID:         uuid.New().String(),
		TaskID:     taskID,
		CustomerID: customerID,
		ProviderID: providerID,
		Status:     models.BookingPending,
	}
	if err := s.Repo.Create(b); err != nil {
		s.Logger.Error("Create: failed to persist booking", zap.Error(err))
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return b, nil
}

// GetByID fetches a single booking.
func (s *DefaultBookingService) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

// Transition moves a booking to the requested status if the fixed transition
// table allows it, stamping the per-status timestamp in the same write. The
// requested status is persisted as-is; cancelled bookings are stored as
// cancelled.
func (s *DefaultBookingService) Transition(ctx context.Context, bookingID string, requested models.BookingStatus) (*models.Booking, error) {
	if !requested.IsValid() {
		return nil, &InvalidStatusError{Status: requested}
	}

	current, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, ErrBookingNotFound
	}

	if !CanTransition(current.Status, requested) {
		return nil, &TransitionError{From: current.Status, To: requested}
	}

	fields := bson.M{"status": requested}
	if field := timestampField(requested); field != "" {
		fields[field] = time.Now()
	}

	updated, err := s.Repo.UpdateFields(bookingID, fields)
	if err != nil {
		s.Logger.Error("Transition: failed to update booking",
			zap.String("bookingID", bookingID), zap.Error(err))
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	s.Logger.Info("booking status updated",
		zap.String("bookingID", bookingID),
		zap.String("from", string(current.Status)),
		zap.String("to", string(requested)))
	return updated, nil
}

// CustomerBookings returns the customer's bookings decorated for their list
// screen, newest first.
func (s *DefaultBookingService) CustomerBookings(ctx context.Context, customerID string) ([]models.CustomerBookingView, error) {
	bookings, err := s.Repo.ListByCustomer(customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customer bookings: %w", err)
	}

	views := make([]models.CustomerBookingView, 0, len(bookings))
	for _, b := range bookings {
		view := models.CustomerBookingView{
			Booking:       b,
			StatusDisplay: b.Status.Display(),
			CanCancel:     CanTransition(b.Status, models.BookingCancelled),
			CanRate:       b.Status == models.BookingCompleted,
		}
		if task, err := s.Tasks.GetByID(b.TaskID); err == nil {
			view.ServiceName = task.Title
			view.ServiceDescription = task.Description
		}
		if prov, err := s.Profiles.GetByID(b.ProviderID); err == nil {
			view.ProviderName = prov.Name
			view.ProviderPhone = prov.Phone
			view.ProviderRating = prov.Rating
		}
		views = append(views, view)
	}
	return views, nil
}

// ProviderBookings returns the provider's bookings decorated for their work
// queue, newest first.
func (s *DefaultBookingService) ProviderBookings(ctx context.Context, providerID string) ([]models.ProviderBookingView, error) {
	bookings, err := s.Repo.ListByProvider(providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider bookings: %w", err)
	}

	views := make([]models.ProviderBookingView, 0, len(bookings))
	for _, b := range bookings {
		view := models.ProviderBookingView{
			Booking:       b,
			StatusDisplay: b.Status.Display(),
			CanAccept:     CanTransition(b.Status, models.BookingAccepted),
			CanDecline:    CanTransition(b.Status, models.BookingDeclined),
			CanStart:      CanTransition(b.Status, models.BookingInProgress),
			CanComplete:   CanTransition(b.Status, models.BookingCompleted),
		}
		if task, err := s.Tasks.GetByID(b.TaskID); err == nil {
			view.ServiceName = task.Title
			view.ServiceDescription = task.Description
		}
		if cust, err := s.Profiles.GetByID(b.CustomerID); err == nil {
			view.CustomerName = cust.Name
			view.CustomerPhone = cust.Phone
			view.CustomerAddress = cust.Address
		}
		views = append(views, view)
	}
	return views, nil
}

// Stats tallies the user's bookings per status.
func (s *DefaultBookingService) Stats(ctx context.Context, userID, role string) (models.BookingStats, error) {
	var (
		bookings []models.Booking
		err      error
	)
	if strings.EqualFold(role, models.RoleProvider) {
		bookings, err = s.Repo.ListByProvider(userID)
	} else {
		bookings, err = s.Repo.ListByCustomer(userID)
	}
	if err != nil {
		return models.BookingStats{}, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	stats := models.BookingStats{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case models.BookingPending:
			stats.Pending++
		case models.BookingAccepted:
			stats.Accepted++
		case models.BookingInProgress:
			stats.InProgress++
		case models.BookingCompleted:
			stats.Completed++
		case models.BookingCancelled:
			stats.Cancelled++
		case models.BookingDeclined:
			stats.Declined++
		}
	}
	return stats, nil
}
