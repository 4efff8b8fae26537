package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	taskRepo "servana/database/repository/task"
	"servana/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ErrTaskNotFound marks lookups where no task matched the given id.
var ErrTaskNotFound = errors.New("task not found")

// TaskService owns the customer's posted service requests.
type TaskService interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	GetByID(ctx context.Context, taskID string) (*models.Task, error)
	ListByCustomer(ctx context.Context, customerID string) ([]models.Task, error)
	Update(ctx context.Context, taskID string, req models.TaskUpdateRequest) (*models.Task, error)
}

// DefaultTaskService is the production implementation.
type DefaultTaskService struct {
	Repo   taskRepo.TaskRepository
	Logger *zap.Logger
}

// Create inserts a new open task for the customer.
func (s *DefaultTaskService) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	if task.Title == "" || task.CustomerID == "" {
		return nil, fmt.Errorf("title and customer_id are required")
	}

	task.ID = uuid.New().String()
	task.Status = models.TaskOpen
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt

	if err := s.Repo.Create(task); err != nil {
		s.Logger.Error("Create: failed to persist task", zap.Error(err))
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// GetByID fetches a single task.
func (s *DefaultTaskService) GetByID(ctx context.Context, taskID string) (*models.Task, error) {
	t, err := s.Repo.GetByID(taskID)
	if err != nil {
		return nil, ErrTaskNotFound
	}
	return t, nil
}

// ListByCustomer returns the customer's tasks, newest first.
func (s *DefaultTaskService) ListByCustomer(ctx context.Context, customerID string) ([]models.Task, error) {
	tasks, err := s.Repo.ListByCustomer(customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}
	return tasks, nil
}

// Update applies a partial update. An empty request is rejected rather than
// writing a no-op.
func (s *DefaultTaskService) Update(ctx context.Context, taskID string, req models.TaskUpdateRequest) (*models.Task, error) {
	fields := bson.M{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Status != nil {
		switch *req.Status {
		case models.TaskOpen, models.TaskInProgress, models.TaskCompleted:
		default:
			return nil, fmt.Errorf("unknown task status %q", *req.Status)
		}
		fields["status"] = *req.Status
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}
	fields["updatedAt"] = time.Now()

	updated, err := s.Repo.UpdateFields(taskID, fields)
	if err != nil {
		return nil, ErrTaskNotFound
	}
	return updated, nil
}
