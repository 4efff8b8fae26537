package taskRepo

import (
	"servana/models"

	"go.mongodb.org/mongo-driver/bson"
)

// TaskRepository abstracts persistence for customer tasks.
type TaskRepository interface {
	Create(task *models.Task) error
	GetByID(id string) (*models.Task, error)
	ListByCustomer(customerID string) ([]models.Task, error)
	// UpdateFields applies a partial update and returns the updated task.
	UpdateFields(id string, fields bson.M) (*models.Task, error)
}
