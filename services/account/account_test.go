package account

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

type fakeProfileRepo struct {
	byID    map[string]*models.Profile
	byEmail map[string]*models.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		byID:    make(map[string]*models.Profile),
		byEmail: make(map[string]*models.Profile),
	}
}

func (f *fakeProfileRepo) Create(p *models.Profile) error {
	cp := *p
	f.byID[p.ID] = &cp
	f.byEmail[p.Email] = &cp
	return nil
}

func (f *fakeProfileRepo) Update(p *models.Profile) error {
	return f.Create(p)
}

func (f *fakeProfileRepo) UpdateFields(id string, fields bson.M) (*models.Profile, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, errors.New("no documents")
	}
	if name, ok := fields["name"].(string); ok {
		p.Name = name
	}
	if phone, ok := fields["phone"].(string); ok {
		p.Phone = phone
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) UpdateTokenHash(id, tokenHash string) error {
	p, ok := f.byID[id]
	if !ok {
		return errors.New("no documents")
	}
	p.TokenHash = tokenHash
	return nil
}

func (f *fakeProfileRepo) GetByID(id string) (*models.Profile, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, errors.New("no documents")
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) GetByEmail(email string) (*models.Profile, error) {
	p, ok := f.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) GetAll() ([]models.Profile, error) { return nil, nil }

func (f *fakeProfileRepo) ListByRole(role string) ([]models.Profile, error) {
	var out []models.Profile
	for _, p := range f.byID {
		if p.Role == role {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProfileRepo) ListProviderCards(skillTag string) ([]models.ProviderCard, error) {
	return nil, nil
}

func newTestService() (*DefaultAccountService, *fakeProfileRepo) {
	repo := newFakeProfileRepo()
	return &DefaultAccountService{Repo: repo, Logger: zap.NewNop()}, repo
}

func registerCustomer(t *testing.T, svc *DefaultAccountService, email string) *AuthResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), &models.Profile{
		Name:     "Ada",
		Email:    email,
		Password: "hunter22",
		Role:     models.RoleCustomer,
	})
	require.NoError(t, err)
	return resp
}

func TestRegisterIssuesTokenAndHashesPassword(t *testing.T) {
	svc, repo := newTestService()

	resp := registerCustomer(t, svc, "ada@example.com")

	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.Profile.ID)
	assert.Empty(t, resp.Profile.Password)

	stored := repo.byEmail["ada@example.com"]
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "hunter22", stored.PasswordHash)
	assert.NotEmpty(t, stored.TokenHash)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	registerCustomer(t, svc, "ada@example.com")

	_, err := svc.Register(context.Background(), &models.Profile{
		Name:     "Other",
		Email:    "Ada@Example.com",
		Password: "secret99",
		Role:     models.RoleCustomer,
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), &models.Profile{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "hunter22",
		Role:     "admin",
	})
	assert.Error(t, err)
}

func TestRegisterProviderStartsAvailable(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.Register(context.Background(), &models.Profile{
		Name:      "Brian",
		Email:     "brian@example.com",
		Password:  "hunter22",
		Role:      models.RoleProvider,
		SkillTags: []string{"plumbing"},
	})
	require.NoError(t, err)
	assert.True(t, resp.Profile.Available)
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestService()
	registerCustomer(t, svc, "ada@example.com")

	resp, err := svc.Authenticate(context.Background(), "ada@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	svc, _ := newTestService()
	registerCustomer(t, svc, "ada@example.com")

	_, err := svc.Authenticate(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Authenticate(context.Background(), "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newTestService()
	resp := registerCustomer(t, svc, "ada@example.com")

	name := "Ada L."
	updated, err := svc.UpdateProfile(context.Background(), resp.Profile.ID, models.ProfileUpdateRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", updated.Name)
}

func TestUpdateProfileRejectsEmptyRequest(t *testing.T) {
	svc, _ := newTestService()
	resp := registerCustomer(t, svc, "ada@example.com")

	_, err := svc.UpdateProfile(context.Background(), resp.Profile.ID, models.ProfileUpdateRequest{})
	assert.Error(t, err)
}

func TestGetProfileNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
