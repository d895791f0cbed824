package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gopets/internal/api/auth"
	"gopets/internal/domain"
	apperror "gopets/internal/errors"
	"gopets/internal/pkg/logger"
	"gopets/internal/pkg/middleware"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, registration domain.UserRegistration) (domain.User, error) {
	args := m.Called(ctx, registration)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthToken, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.AuthToken), args.Error(1)
}

func (m *MockAuthService) Me(ctx context.Context, userID int64) (domain.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.User), args.Error(1)
}

func TestRegisterHandler(t *testing.T) {
	svc := new(MockAuthService)
	h := auth.NewHandler(svc, logger.NewNop())
	svc.On("Register", mock.Anything, domain.UserRegistration{FullName: "Ana", Email: "ana@email.com", Password: "segredo1"}).
		Return(domain.User{ID: 1, FullName: "Ana", Email: "ana@email.com"}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"full_name":"Ana","email":"ana@email.com","password":"segredo1"}`))
	rr := httptest.NewRecorder()
	h.RegisterHandler(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	svc.AssertExpectations(t)
}

func TestLoginHandler_JSON(t *testing.T) {
	svc := new(MockAuthService)
	h := auth.NewHandler(svc, logger.NewNop())
	svc.On("Login", mock.Anything, domain.LoginRequest{Email: "ana@email.com", Password: "segredo1"}).
		Return(domain.AuthToken{AccessToken: "tok", TokenType: "bearer", ExpiresIn: 3600}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"ana@email.com","password":"segredo1"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.LoginHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var tok domain.AuthToken
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &tok))
	assert.Equal(t, "tok", tok.AccessToken)
	assert.Equal(t, "bearer", tok.TokenType)
}

func TestLoginHandler_Form(t *testing.T) {
	svc := new(MockAuthService)
	h := auth.NewHandler(svc, logger.NewNop())
	svc.On("Login", mock.Anything, domain.LoginRequest{Username: "ana@email.com", Password: "segredo1"}).
		Return(domain.AuthToken{AccessToken: "tok", TokenType: "bearer"}, nil).Once()

	form := url.Values{"username": {"ana@email.com"}, "password": {"segredo1"}}
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.LoginHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	svc.AssertExpectations(t)
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	svc := new(MockAuthService)
	h := auth.NewHandler(svc, logger.NewNop())
	svc.On("Login", mock.Anything, mock.Anything).
		Return(domain.AuthToken{}, apperror.NewUnauthorizedError(apperror.MsgInvalidCredentials)).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"ana@email.com","password":"errada"}`))
	rr := httptest.NewRecorder()
	h.LoginHandler(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
	assert.Contains(t, rr.Body.String(), apperror.MsgInvalidCredentials)
}

func TestMeHandler(t *testing.T) {
	t.Run("com claims", func(t *testing.T) {
		svc := new(MockAuthService)
		h := auth.NewHandler(svc, logger.NewNop())
		svc.On("Me", mock.Anything, int64(4)).Return(domain.User{ID: 4, Email: "ana@email.com"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req = req.WithContext(middleware.WithUserClaims(req.Context(), middleware.UserClaims{UserID: 4, Email: "ana@email.com"}))
		rr := httptest.NewRecorder()
		h.MeHandler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"id":4`)
	})

	t.Run("sem claims", func(t *testing.T) {
		svc := new(MockAuthService)
		h := auth.NewHandler(svc, logger.NewNop())

		rr := httptest.NewRecorder()
		h.MeHandler(rr, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		svc.AssertNotCalled(t, "Me", mock.Anything, mock.Anything)
	})
}
