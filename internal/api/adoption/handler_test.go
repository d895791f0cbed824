package adoption_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gopets/internal/api/adoption"
	"gopets/internal/domain"
	apperror "gopets/internal/errors"
	"gopets/internal/pkg/logger"
	"gopets/internal/pkg/middleware"
	"gopets/internal/pkg/token"
)

type MockAdoptionService struct {
	mock.Mock
}

func (m *MockAdoptionService) CreateRequest(ctx context.Context, input domain.AdoptionRequestCreate) (domain.AdoptionRequest, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.AdoptionRequest), args.Error(1)
}

func (m *MockAdoptionService) GetRequest(ctx context.Context, id int64) (domain.AdoptionRequest, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.AdoptionRequest), args.Error(1)
}

func (m *MockAdoptionService) ListRequests(ctx context.Context, filter domain.AdoptionRequestFilter) (domain.AdoptionRequestPage, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(domain.AdoptionRequestPage), args.Error(1)
}

func (m *MockAdoptionService) UpdateRequest(ctx context.Context, id int64, patch domain.AdoptionRequestUpdate) (domain.AdoptionRequest, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.AdoptionRequest), args.Error(1)
}

func (m *MockAdoptionService) DeleteRequest(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var tokens = token.NewService("segredo-de-teste", time.Hour)

func setup() (*MockAdoptionService, http.Handler) {
	svc := new(MockAdoptionService)
	r := chi.NewRouter()
	r.Route("/adoption-requests", func(r chi.Router) {
		r.Use(middleware.OptionalAuth(tokens))
		adoption.NewHandler(svc, logger.NewNop()).Routes(r)
	})
	return svc, r
}

func TestListRequestsHandler_Filters(t *testing.T) {
	svc, router := setup()
	expected := domain.AdoptionRequestFilter{
		Status: domain.AdoptionStatusPending,
		PetID:  3,
		UserID: 2,
		Limit:  10,
	}
	svc.On("ListRequests", mock.Anything, expected).
		Return(domain.AdoptionRequestPage{AdoptionRequests: []domain.AdoptionRequest{}, Limit: 10}, nil).Once()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/adoption-requests?status=pending&pet_id=3&user_id=2&limit=10", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

func TestListRequestsHandler_BadPetID(t *testing.T) {
	svc, router := setup()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/adoption-requests?pet_id=um", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "ListRequests", mock.Anything, mock.Anything)
}

func TestCreateRequestHandler_UsesBodyUserWithoutToken(t *testing.T) {
	svc, router := setup()
	svc.On("CreateRequest", mock.Anything, domain.AdoptionRequestCreate{PetID: 1, UserID: 2}).
		Return(domain.AdoptionRequest{ID: 9, PetID: 1, UserID: 2, Status: domain.AdoptionStatusPending}, nil).Once()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/adoption-requests", strings.NewReader(`{"pet_id":1,"user_id":2}`)))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/adoption-requests/9", rr.Header().Get("Location"))
	svc.AssertExpectations(t)
}

func TestCreateRequestHandler_TokenOverridesBodyUser(t *testing.T) {
	svc, router := setup()
	tok, err := tokens.GenerateToken(5, "ana@email.com")
	require.NoError(t, err)

	svc.On("CreateRequest", mock.Anything, domain.AdoptionRequestCreate{PetID: 1, UserID: 5}).
		Return(domain.AdoptionRequest{ID: 10, PetID: 1, UserID: 5}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/adoption-requests", strings.NewReader(`{"pet_id":1,"user_id":2}`))
	req.Header.Set("Authorization", "Bearer "+tok)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	svc.AssertExpectations(t)
}

func TestCreateRequestHandler_InvalidTokenIsIgnored(t *testing.T) {
	svc, router := setup()
	svc.On("CreateRequest", mock.Anything, domain.AdoptionRequestCreate{PetID: 1, UserID: 2}).
		Return(domain.AdoptionRequest{ID: 11}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/adoption-requests", strings.NewReader(`{"pet_id":1,"user_id":2}`))
	req.Header.Set("Authorization", "Bearer lixo")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestGetRequestHandler_NotFound(t *testing.T) {
	svc, router := setup()
	svc.On("GetRequest", mock.Anything, int64(4)).
		Return(domain.AdoptionRequest{}, apperror.NewNotFoundError("Solicitação não encontrada")).Once()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/adoption-requests/4", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateRequestHandler(t *testing.T) {
	svc, router := setup()
	svc.On("UpdateRequest", mock.Anything, int64(4), mock.MatchedBy(func(p domain.AdoptionRequestUpdate) bool {
		return p.Status != nil && *p.Status == domain.AdoptionStatusApproved
	})).Return(domain.AdoptionRequest{ID: 4, Status: domain.AdoptionStatusApproved}, nil).Once()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/adoption-requests/4", strings.NewReader(`{"status":"approved"}`)))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"approved"`)
}

func TestDeleteRequestHandler(t *testing.T) {
	svc, router := setup()
	svc.On("DeleteRequest", mock.Anything, int64(4)).Return(nil).Once()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/adoption-requests/4", nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
}
