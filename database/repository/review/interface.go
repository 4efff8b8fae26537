package reviewRepo

import "servana/models"

// ReviewRepository abstracts persistence for reviews.
type ReviewRepository interface {
	Create(review *models.Review) error
	ListByProvider(providerID string) ([]models.Review, error)
}
