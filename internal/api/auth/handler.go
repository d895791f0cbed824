package auth

import (
	"context"
	"mime"
	"net/http"

	"gopets/internal/domain"
	apperror "gopets/internal/errors"
	"gopets/internal/pkg/httpx"
	"gopets/internal/pkg/logger"
	"gopets/internal/pkg/middleware"
)

// AuthService define o contrato de autenticação esperado pelo Handler.
type AuthService interface {
	Register(ctx context.Context, registration domain.UserRegistration) (domain.User, error)
	Login(ctx context.Context, req domain.LoginRequest) (domain.AuthToken, error)
	Me(ctx context.Context, userID int64) (domain.User, error)
}

type Handler struct {
	Service AuthService
	Logger  logger.Logger
}

func NewHandler(svc AuthService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// RegisterHandler godoc
// @Summary      Cria uma conta
// @Tags         Autenticação
// @Accept       json
// @Produce      json
// @Param        user  body  domain.UserRegistration  true  "dados da conta"
// @Success      201  {object}  domain.User
// @Failure      400  {object}  domain.ErrorResponse
// @Router       /api/auth/register [post]
func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var input domain.UserRegistration
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Respond(w, r, h.Logger, nil, err, http.StatusCreated)
		return
	}

	user, err := h.Service.Register(r.Context(), input)
	httpx.Respond(w, r, h.Logger, user, err, http.StatusCreated)
}

// LoginHandler godoc
// @Summary      Emite um token de acesso
// @Description  Aceita JSON {"username"|"email", "password"} ou formulário username/password.
// @Tags         Autenticação
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        credentials  body  domain.LoginRequest  true  "credenciais"
// @Success      200  {object}  domain.AuthToken
// @Failure      401  {object}  domain.ErrorResponse
// @Router       /api/auth/login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	req, err := decodeLogin(r)
	if err != nil {
		httpx.Respond(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}

	tok, err := h.Service.Login(r.Context(), req)
	httpx.Respond(w, r, h.Logger, tok, err, http.StatusOK)
}

func decodeLogin(r *http.Request) (domain.LoginRequest, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" || mediaType == "multipart/form-data" {
		if err := r.ParseForm(); err != nil {
			return domain.LoginRequest{}, apperror.NewValidationError("Formulário inválido.")
		}
		return domain.LoginRequest{
			Username: r.PostFormValue("username"),
			Email:    r.PostFormValue("email"),
			Password: r.PostFormValue("password"),
		}, nil
	}

	var req domain.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return domain.LoginRequest{}, err
	}
	return req, nil
}

// MeHandler godoc
// @Summary      Perfil do usuário autenticado
// @Tags         Autenticação
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  domain.ErrorResponse
// @Router       /api/auth/me [get]
func (h *Handler) MeHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserClaimsFromContext(r.Context())
	if !ok {
		httpx.Respond(w, r, h.Logger, nil, apperror.NewUnauthorizedError(apperror.MsgInvalidCredentials), http.StatusOK)
		return
	}

	user, err := h.Service.Me(r.Context(), claims.UserID)
	httpx.Respond(w, r, h.Logger, user, err, http.StatusOK)
}
