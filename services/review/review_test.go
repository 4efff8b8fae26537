package review

import (
	"context"
	"errors"
	"testing"

	"servana/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type fakeReviewRepo struct {
	reviews []models.Review
}

func (f *fakeReviewRepo) Create(r *models.Review) error {
	f.reviews = append(f.reviews, *r)
	return nil
}

func (f *fakeReviewRepo) ListByProvider(providerID string) ([]models.Review, error) {
	var out []models.Review
	for _, r := range f.reviews {
		if r.ProviderID == providerID {
			out = append(out, r)
		}
	}
	return out, nil
}

type ratingRecorder struct {
	lastRating float64
}

func (f *ratingRecorder) Create(p *models.Profile) error { return nil }
func (f *ratingRecorder) Update(p *models.Profile) error { return nil }

func (f *ratingRecorder) UpdateFields(id string, fields bson.M) (*models.Profile, error) {
	if rating, ok := fields["rating"].(float64); ok {
		f.lastRating = rating
	}
	return &models.Profile{ID: id, Rating: f.lastRating}, nil
}

func (f *ratingRecorder) UpdateTokenHash(id, tokenHash string) error { return nil }
func (f *ratingRecorder) GetByID(id string) (*models.Profile, error) {
	return nil, errors.New("no documents")
}
func (f *ratingRecorder) GetByEmail(email string) (*models.Profile, error) { return nil, nil }
func (f *ratingRecorder) GetAll() ([]models.Profile, error)               { return nil, nil }
func (f *ratingRecorder) ListByRole(role string) ([]models.Profile, error) {
	return nil, nil
}
func (f *ratingRecorder) ListProviderCards(skillTag string) ([]models.ProviderCard, error) {
	return nil, nil
}

func newTestService() (*DefaultReviewService, *ratingRecorder) {
	profiles := &ratingRecorder{}
	svc := &DefaultReviewService{
		Repo:     &fakeReviewRepo{},
		Profiles: profiles,
		Logger:   zap.NewNop(),
	}
	return svc, profiles
}

func review(rating int) *models.Review {
	return &models.Review{
		BookingID:  "bk-1",
		CustomerID: "cust-1",
		ProviderID: "prov-1",
		Rating:     rating,
	}
}

func TestCreateAssignsIDAndTimestamp(t *testing.T) {
	svc, _ := newTestService()

	r, err := svc.Create(context.Background(), review(5))
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.False(t, r.CreatedAt.IsZero())
}

func TestCreateRejectsOutOfRangeRating(t *testing.T) {
	svc, _ := newTestService()

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(context.Background(), review(rating))
		assert.Errorf(t, err, "rating %d should be rejected", rating)
	}
}

func TestCreateRefreshesProviderRating(t *testing.T) {
	svc, profiles := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, review(5))
	require.NoError(t, err)
	assert.InDelta(t, 5.0, profiles.lastRating, 0.001)

	_, err = svc.Create(ctx, review(2))
	require.NoError(t, err)
	assert.InDelta(t, 3.5, profiles.lastRating, 0.001)
}

func TestListByProvider(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, review(4))
	require.NoError(t, err)

	other := review(3)
	other.ProviderID = "prov-2"
	_, err = svc.Create(ctx, other)
	require.NoError(t, err)

	reviews, err := svc.ListByProvider(ctx, "prov-1")
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}
