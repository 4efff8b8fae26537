package review

import (
	"context"
	"fmt"
	"time"

	profileRepo "servana/database/repository/profile"
	reviewRepo "servana/database/repository/review"
	"servana/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ReviewService records customer ratings and keeps the provider's aggregate
// rating current.
type ReviewService interface {
	Create(ctx context.Context, review *models.Review) (*models.Review, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Review, error)
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Repo     reviewRepo.ReviewRepository
	Profiles profileRepo.ProfileRepository
	Logger   *zap.Logger
}

// Create validates and stores a review, then recomputes the provider's rating
// from all of their reviews.
func (s *DefaultReviewService) Create(ctx context.Context, review *models.Review) (*models.Review, error) {
	if review.BookingID == "" || review.CustomerID == "" || review.ProviderID == "" {
		return nil, fmt.Errorf("booking_id, customer_id and provider_id are required")
	}
	if review.Rating < 1 || review.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}

	review.ID = uuid.New().String()
	review.CreatedAt = time.Now()

	if err := s.Repo.Create(review); err != nil {
		s.Logger.Error("Create: failed to persist review", zap.Error(err))
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	if err := s.refreshProviderRating(review.ProviderID); err != nil {
		// The review itself landed; a stale aggregate repairs itself on the
		// next review.
		s.Logger.Warn("Create: failed to refresh provider rating",
			zap.String("providerID", review.ProviderID), zap.Error(err))
	}
	return review, nil
}

// ListByProvider returns a provider's reviews, newest first.
func (s *DefaultReviewService) ListByProvider(ctx context.Context, providerID string) ([]models.Review, error) {
	reviews, err := s.Repo.ListByProvider(providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	return reviews, nil
}

func (s *DefaultReviewService) refreshProviderRating(providerID string) error {
	reviews, err := s.Repo.ListByProvider(providerID)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		return nil
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	_, err = s.Profiles.UpdateFields(providerID, bson.M{"rating": avg})
	return err
}
