package adoptionservice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gopets/internal/domain"
	apperror "gopets/internal/errors"
	"gopets/internal/pkg/logger"
	"gopets/internal/service/adoptionservice"
)

type MockAdoptionRepository struct {
	mock.Mock
}

func (m *MockAdoptionRepository) Create(ctx context.Context, req domain.AdoptionRequest) (domain.AdoptionRequest, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.AdoptionRequest), args.Error(1)
}

func (m *MockAdoptionRepository) FindByID(ctx context.Context, id int64) (domain.AdoptionRequest, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.AdoptionRequest), args.Error(1)
}

func (m *MockAdoptionRepository) List(ctx context.Context, filter domain.AdoptionRequestFilter) ([]domain.AdoptionRequest, int, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.AdoptionRequest), args.Int(1), args.Error(2)
}

func (m *MockAdoptionRepository) Update(ctx context.Context, id int64, patch domain.AdoptionRequestUpdate) (domain.AdoptionRequest, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.AdoptionRequest), args.Error(1)
}

func (m *MockAdoptionRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockPetFinder struct {
	mock.Mock
}

func (m *MockPetFinder) FindByID(ctx context.Context, id int64) (domain.Pet, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Pet), args.Error(1)
}

type MockUserFinder struct {
	mock.Mock
}

func (m *MockUserFinder) FindByID(ctx context.Context, id int64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

type fixture struct {
	repo  *MockAdoptionRepository
	pets  *MockPetFinder
	users *MockUserFinder
	svc   *adoptionservice.Service
}

func newFixture() fixture {
	f := fixture{
		repo:  new(MockAdoptionRepository),
		pets:  new(MockPetFinder),
		users: new(MockUserFinder),
	}
	f.svc = adoptionservice.NewService(f.repo, f.pets, f.users, logger.NewNop())
	return f
}

func TestCreateRequest_CopiesContactFromProfile(t *testing.T) {
	f := newFixture()
	f.pets.On("FindByID", mock.Anything, int64(1)).Return(domain.Pet{ID: 1}, nil)
	f.users.On("FindByID", mock.Anything, int64(2)).
		Return(domain.User{ID: 2, FullName: "Ana Souza", Email: "ana@example.com", Phone: "8199999"}, nil)

	expected := domain.AdoptionRequest{
		PetID: 1, UserID: 2, FullName: "Ana Souza", Email: "ana@example.com", Phone: "81 1234",
		Status: domain.AdoptionStatusPending,
	}
	f.repo.On("Create", mock.Anything, expected).Return(domain.AdoptionRequest{ID: 5, PetID: 1, UserID: 2}, nil)

	created, err := f.svc.CreateRequest(context.Background(), domain.AdoptionRequestCreate{
		PetID: 1, UserID: 2, Phone: "81 1234",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
	f.repo.AssertExpectations(t)
}

func TestCreateRequest_PetMustExist(t *testing.T) {
	f := newFixture()
	f.pets.On("FindByID", mock.Anything, int64(1)).Return(domain.Pet{}, apperror.NewNotFoundError("Pet não encontrado"))

	_, err := f.svc.CreateRequest(context.Background(), domain.AdoptionRequestCreate{PetID: 1, UserID: 2})

	assert.True(t, apperror.IsNotFound(err))
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateRequest_UserMustExist(t *testing.T) {
	f := newFixture()
	f.pets.On("FindByID", mock.Anything, int64(1)).Return(domain.Pet{ID: 1}, nil)
	f.users.On("FindByID", mock.Anything, int64(2)).Return(domain.User{}, apperror.NewNotFoundError("Usuário não encontrado"))

	_, err := f.svc.CreateRequest(context.Background(), domain.AdoptionRequestCreate{PetID: 1, UserID: 2})

	assert.True(t, apperror.IsNotFound(err))
}

func TestCreateRequest_Validation(t *testing.T) {
	f := newFixture()

	_, err := f.svc.CreateRequest(context.Background(), domain.AdoptionRequestCreate{Email: "x"})

	fields := apperror.FieldErrors(err)
	assert.Contains(t, fields, "pet_id")
	assert.Contains(t, fields, "user_id")
	assert.Contains(t, fields, "email")
}

func TestUpdateRequest_InvalidStatus(t *testing.T) {
	f := newFixture()
	status := domain.AdoptionStatus("cancelled")

	_, err := f.svc.UpdateRequest(context.Background(), 1, domain.AdoptionRequestUpdate{Status: &status})

	assert.Contains(t, apperror.FieldErrors(err), "status")
}

func TestUpdateRequest_Status(t *testing.T) {
	f := newFixture()
	status := domain.AdoptionStatusApproved
	patch := domain.AdoptionRequestUpdate{Status: &status}
	f.repo.On("Update", mock.Anything, int64(1), patch).
		Return(domain.AdoptionRequest{ID: 1, Status: domain.AdoptionStatusApproved}, nil)

	req, err := f.svc.UpdateRequest(context.Background(), 1, patch)

	require.NoError(t, err)
	assert.Equal(t, domain.AdoptionStatusApproved, req.Status)
}

func TestUpdateRequest_NormalizesContact(t *testing.T) {
	f := newFixture()
	email := "  Maria@Example.COM "
	name := " Maria Souza "
	f.repo.On("Update", mock.Anything, int64(1), mock.MatchedBy(func(p domain.AdoptionRequestUpdate) bool {
		return p.Email != nil && *p.Email == "maria@example.com" &&
			p.FullName != nil && *p.FullName == "Maria Souza"
	})).Return(domain.AdoptionRequest{ID: 1, Email: "maria@example.com"}, nil)

	req, err := f.svc.UpdateRequest(context.Background(), 1, domain.AdoptionRequestUpdate{Email: &email, FullName: &name})

	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", req.Email)
	f.repo.AssertExpectations(t)
}

func TestUpdateRequest_BlankNameIsRejected(t *testing.T) {
	f := newFixture()
	name := "   "

	_, err := f.svc.UpdateRequest(context.Background(), 1, domain.AdoptionRequestUpdate{FullName: &name})

	assert.Contains(t, apperror.FieldErrors(err), "full_name")
	f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestListRequests(t *testing.T) {
	f := newFixture()
	filter := domain.AdoptionRequestFilter{UserID: 2, Limit: 100}
	f.repo.On("List", mock.Anything, filter).Return([]domain.AdoptionRequest{{ID: 1}}, 1, nil)

	page, err := f.svc.ListRequests(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, 100, page.Limit)
}
