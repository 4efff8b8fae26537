package task

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

type fakeTaskRepo struct {
	tasks map[string]*models.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[string]*models.Task)}
}

func (f *fakeTaskRepo) Create(t *models.Task) error {
	cp := *t
	f.tasks[t.ID] = &cp
	return nil
}

func (f *fakeTaskRepo) GetByID(id string) (*models.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return nil, errors.New("no documents")
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTaskRepo) ListByCustomer(customerID string) ([]models.Task, error) {
	var out []models.Task
	for _, t := range f.tasks {
		if t.CustomerID == customerID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) UpdateFields(id string, fields bson.M) (*models.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return nil, errors.New("no documents")
	}
	if title, ok := fields["title"].(string); ok {
		t.Title = title
	}
	if status, ok := fields["status"].(string); ok {
		t.Status = status
	}
	cp := *t
	return &cp, nil
}

func newTestService() *DefaultTaskService {
	return &DefaultTaskService{Repo: newFakeTaskRepo(), Logger: zap.NewNop()}
}

func TestCreateStartsOpen(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(context.Background(), &models.Task{
		Title:      "Fix leaking sink",
		CustomerID: "cust-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.TaskOpen, created.Status)
}

func TestCreateRequiresTitle(t *testing.T) {
	svc := newTestService()

	_, err := svc.Create(context.Background(), &models.Task{CustomerID: "cust-1"})
	assert.Error(t, err)
}

func TestUpdateStatus(t *testing.T) {
	svc := newTestService()
	created, err := svc.Create(context.Background(), &models.Task{
		Title:      "Fix leaking sink",
		CustomerID: "cust-1",
	})
	require.NoError(t, err)

	status := models.TaskCompleted
	updated, err := svc.Update(context.Background(), created.ID, models.TaskUpdateRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.TaskCompleted, updated.Status)
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	svc := newTestService()
	created, err := svc.Create(context.Background(), &models.Task{
		Title:      "Fix leaking sink",
		CustomerID: "cust-1",
	})
	require.NoError(t, err)

	status := "archived"
	_, err = svc.Update(context.Background(), created.ID, models.TaskUpdateRequest{Status: &status})
	assert.Error(t, err)
}

func TestUpdateRejectsEmptyRequest(t *testing.T) {
	svc := newTestService()
	created, err := svc.Create(context.Background(), &models.Task{
		Title:      "Fix leaking sink",
		CustomerID: "cust-1",
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, models.TaskUpdateRequest{})
	assert.Error(t, err)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}
