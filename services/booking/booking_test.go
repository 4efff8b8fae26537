package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"servana/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, errors.New("no documents")
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookingRepo) ListByCustomer(customerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.CustomerID == customerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByProvider(providerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.ProviderID == providerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) List(filter bson.M) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateFields(id string, fields bson.M) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, errors.New("no documents")
	}
	for k, v := range fields {
		switch k {
		case "status":
			b.Status = v.(models.BookingStatus)
		case "acceptedAt":
			ts := v.(time.Time)
			b.AcceptedAt = &ts
		case "startedAt":
			ts := v.(time.Time)
			b.StartedAt = &ts
		case "completedAt":
			ts := v.(time.Time)
			b.CompletedAt = &ts
		case "cancelledAt":
			ts := v.(time.Time)
			b.CancelledAt = &ts
		}
	}
	cp := *b
	return &cp, nil
}

type fakeTaskRepo struct {
	tasks map[string]*models.Task
}

func (f *fakeTaskRepo) Create(t *models.Task) error { return nil }

func (f *fakeTaskRepo) GetByID(id string) (*models.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return nil, errors.New("no documents")
	}
	return t, nil
}

func (f *fakeTaskRepo) ListByCustomer(customerID string) ([]models.Task, error) {
	return nil, nil
}

func (f *fakeTaskRepo) UpdateFields(id string, fields bson.M) (*models.Task, error) {
	return nil, errors.New("not implemented")
}

type fakeProfileRepo struct {
	profiles map[string]*models.Profile
}

func (f *fakeProfileRepo) Create(p *models.Profile) error { return nil }
func (f *fakeProfileRepo) Update(p *models.Profile) error { return nil }

func (f *fakeProfileRepo) UpdateFields(id string, fields bson.M) (*models.Profile, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeProfileRepo) UpdateTokenHash(id, tokenHash string) error { return nil }

func (f *fakeProfileRepo) GetByID(id string) (*models.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, errors.New("no documents")
	}
	return p, nil
}

func (f *fakeProfileRepo) GetByEmail(email string) (*models.Profile, error) { return nil, nil }
func (f *fakeProfileRepo) GetAll() ([]models.Profile, error)               { return nil, nil }
func (f *fakeProfileRepo) ListByRole(role string) ([]models.Profile, error) {
	return nil, nil
}
func (f *fakeProfileRepo) ListProviderCards(skillTag string) ([]models.ProviderCard, error) {
	return nil, nil
}

func newTestService() (*DefaultBookingService, *fakeBookingRepo) {
	repo := newFakeBookingRepo()
	svc := &DefaultBookingService{
		Repo: repo,
		Tasks: &fakeTaskRepo{tasks: map[string]*models.Task{
			"task-1": {ID: "task-1", Title: "Deep clean apartment", Description: "Two bedrooms"},
		}},
		Profiles: &fakeProfileRepo{profiles: map[string]*models.Profile{
			"cust-1": {ID: "cust-1", Name: "Ada", Phone: "0700111222", Address: "12 Elm St", Role: models.RoleCustomer},
			"prov-1": {ID: "prov-1", Name: "Brian", Phone: "0700333444", Rating: 4.7, Role: models.RoleProvider},
		}},
		Logger: zap.NewNop(),
	}
	return svc, repo
}

func mustCreate(t *testing.T, svc *DefaultBookingService) *models.Booking {
	t.Helper()
	b, err := svc.Create(context.Background(), "task-1", "cust-1", "prov-1")
	require.NoError(t, err)
	return b
}

func TestCreateStartsPending(t *testing.T) {
	svc, _ := newTestService()

	b := mustCreate(t, svc)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, models.BookingPending, b.Status)
	assert.Nil(t, b.AcceptedAt)
}

func TestCreateRequiresIDs(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), "", "cust-1", "prov-1")
	assert.Error(t, err)
}

func TestTransitionHappyPath(t *testing.T) {
	svc, _ := newTestService()
	b := mustCreate(t, svc)
	ctx := context.Background()

	b, err := svc.Transition(ctx, b.ID, models.BookingAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.BookingAccepted, b.Status)
	require.NotNil(t, b.AcceptedAt)

	b, err = svc.Transition(ctx, b.ID, models.BookingInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.BookingInProgress, b.Status)
	require.NotNil(t, b.StartedAt)

	b, err = svc.Transition(ctx, b.ID, models.BookingCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, b.Status)
	require.NotNil(t, b.CompletedAt)
}

func TestTransitionRejectsPendingToCompleted(t *testing.T) {
	svc, _ := newTestService()
	b := mustCreate(t, svc)

	_, err := svc.Transition(context.Background(), b.ID, models.BookingCompleted)

	var terr *TransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, models.BookingPending, terr.From)
	assert.Equal(t, models.BookingCompleted, terr.To)
}

func TestTransitionTerminalStatesAreClosed(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	b := mustCreate(t, svc)
	_, err := svc.Transition(ctx, b.ID, models.BookingDeclined)
	require.NoError(t, err)

	_, err = svc.Transition(ctx, b.ID, models.BookingAccepted)
	var terr *TransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, models.BookingDeclined, terr.From)
}

func TestTransitionCancelledIsPersistedAsCancelled(t *testing.T) {
	svc, repo := newTestService()
	b := mustCreate(t, svc)

	updated, err := svc.Transition(context.Background(), b.ID, models.BookingCancelled)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, updated.Status)
	require.NotNil(t, updated.CancelledAt)

	stored, err := repo.GetByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, stored.Status)
}

func TestTransitionUnknownStatus(t *testing.T) {
	svc, _ := newTestService()
	b := mustCreate(t, svc)

	_, err := svc.Transition(context.Background(), b.ID, models.BookingStatus("archived"))

	var serr *InvalidStatusError
	assert.ErrorAs(t, err, &serr)
}

func TestTransitionMissingBooking(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Transition(context.Background(), "nope", models.BookingAccepted)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCustomerBookingsViews(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	b := mustCreate(t, svc)

	views, err := svc.CustomerBookings(ctx, "cust-1")
	require.NoError(t, err)
	require.Len(t, views, 1)

	v := views[0]
	assert.Equal(t, "Deep clean apartment", v.ServiceName)
	assert.Equal(t, "Brian", v.ProviderName)
	assert.Equal(t, "Waiting for Provider", v.StatusDisplay)
	assert.True(t, v.CanCancel)
	assert.False(t, v.CanRate)

	_, err = svc.Transition(ctx, b.ID, models.BookingAccepted)
	require.NoError(t, err)
	_, err = svc.Transition(ctx, b.ID, models.BookingInProgress)
	require.NoError(t, err)
	_, err = svc.Transition(ctx, b.ID, models.BookingCompleted)
	require.NoError(t, err)

	views, err = svc.CustomerBookings(ctx, "cust-1")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.False(t, views[0].CanCancel)
	assert.True(t, views[0].CanRate)
}

func TestProviderBookingsViews(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	b := mustCreate(t, svc)

	views, err := svc.ProviderBookings(ctx, "prov-1")
	require.NoError(t, err)
	require.Len(t, views, 1)

	v := views[0]
	assert.Equal(t, "Ada", v.CustomerName)
	assert.True(t, v.CanAccept)
	assert.True(t, v.CanDecline)
	assert.False(t, v.CanStart)
	assert.False(t, v.CanComplete)

	_, err = svc.Transition(ctx, b.ID, models.BookingAccepted)
	require.NoError(t, err)

	views, err = svc.ProviderBookings(ctx, "prov-1")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.False(t, views[0].CanAccept)
	assert.True(t, views[0].CanStart)
}

func TestStats(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first := mustCreate(t, svc)
	second := mustCreate(t, svc)
	mustCreate(t, svc)

	_, err := svc.Transition(ctx, first.ID, models.BookingAccepted)
	require.NoError(t, err)
	_, err = svc.Transition(ctx, second.ID, models.BookingCancelled)
	require.NoError(t, err)

	stats, err := svc.Stats(ctx, "cust-1", models.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Accepted)
	assert.Equal(t, 1, stats.Cancelled)

	providerStats, err := svc.Stats(ctx, "prov-1", models.RoleProvider)
	require.NoError(t, err)
	assert.Equal(t, 3, providerStats.Total)
}
