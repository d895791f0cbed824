package user

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gopets/internal/domain"
	"gopets/internal/pkg/httpx"
	"gopets/internal/pkg/logger"
)

// UserService define o contrato que o Handler espera da camada de Serviço.
type UserService interface {
	CreateUser(ctx context.Context, input domain.UserCreate) (domain.User, error)
	GetUser(ctx context.Context, id int64) (domain.User, error)
	ListUsers(ctx context.Context, filter domain.UserFilter) (domain.UserPage, error)
	UpdateUser(ctx context.Context, id int64, patch domain.UserUpdate) (domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// Handler lida com as rotas de /users.
type Handler struct {
	Service UserService
	Logger  logger.Logger
}

func NewHandler(svc UserService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.ListUsersHandler)
	r.Post("/", h.CreateUserHandler)
	r.Get("/{id}", h.GetUserHandler)
	r.Put("/{id}", h.UpdateUserHandler)
	r.Delete("/{id}", h.DeleteUserHandler)
}

// ListUsersHandler godoc
// @Summary      Lista usuários
// @Tags         Usuários
// @Produce      json
// @Param        skip   query  int  false  "registros a pular"  default(0)
// @Param        limit  query  int  false  "tamanho da página (1-100)"  default(100)
// @Success      200  {object}  domain.UserPage
// @Router       /users [get]
func (h *Handler) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	q := httpx.NewQuery(r)
	filter := domain.UserFilter{
		Skip:  q.Int("skip", 0),
		Limit: q.Int("limit", domain.DefaultPageSize),
	}
	if err := q.Err(); err != nil {
		httpx.Respond(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}

	page, err := h.Service.ListUsers(r.Context(), filter)
	httpx.Respond(w, r, h.Logger, page, err, http.StatusOK)
}

// CreateUserHandler godoc
// @Summary      Cadastra um usuário
// @Description  Email duplicado retorna 400 "Email já existe".
// @Tags         Usuários
// @Accept       json
// @Produce      json
// @Param        user  body  domain.UserCreate  true  "dados do usuário"
// @Success      201  {object}  domain.User
// @Failure      400  {object}  domain.ErrorResponse
// @Router       /users [post]
func (h *Handler) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var input domain.UserCreate
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Respond(w, r, h.Logger, nil, err, http.StatusCreated)
		return
	}

	user, err := h.Service.CreateUser(r.Context(), input)
	if err == nil {
		httpx.Location(w, "/users", user.ID)
	}
	httpx.Respond(w, r, h.Logger, user, err, http.StatusCreated)
}

// GetUserHandler godoc
// @Summary      Busca um usuário
// @Tags         Usuários
// @Produce      json
// @Param        id  path  int  true  "ID do usuário"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  domain.ErrorResponse
// @Router       /users/{id} [get]
func (h *Handler) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.Respond(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}

	user, err := h.Service.GetUser(r.Context(), id)
	httpx.Respond(w, r, h.Logger, user, err, http.StatusOK)
}

// UpdateUserHandler godoc
// @Summary      Atualiza o perfil de um usuário
// @Tags         Usuários
// @Accept       json
// @Produce      json
// @Param        id    path  int                true  "ID do usuário"
// @Param        user  body  domain.UserUpdate  true  "campos a alterar"
// @Success      200  {object}  domain.User
// @Failure      400  {object}  domain.ErrorResponse
// @Failure      404  {object}  domain.ErrorResponse
// @Router       /users/{id} [put]
func (h *Handler) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.Respond(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}

	var patch domain.UserUpdate
	if err := httpx.DecodeJSON(r, &patch); err != nil {
		httpx.Respond(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}

	user, err := h.Service.UpdateUser(r.Context(), id, patch)
	httpx.Respond(w, r, h.Logger, user, err, http.StatusOK)
}

// DeleteUserHandler godoc
// @Summary      Remove um usuário
// @Description  Remove também as solicitações de adoção do usuário. Adotantes não podem ser removidos (409).
// @Tags         Usuários
// @Param        id  path  int  true  "ID do usuário"
// @Success      204
// @Failure      404  {object}  domain.ErrorResponse
// @Failure      409  {object}  domain.ErrorResponse
// @Router       /users/{id} [delete]
func (h *Handler) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.Respond(w, r, h.Logger, nil, err, http.StatusNoContent)
		return
	}

	err = h.Service.DeleteUser(r.Context(), id)
	httpx.Respond(w, r, h.Logger, nil, err, http.StatusNoContent)
}
