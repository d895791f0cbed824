package adoption

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gopets/internal/domain"
	"gopets/internal/pkg/httpx"
	"gopets/internal/pkg/logger"
	"gopets/internal/pkg/middleware"
)

// AdoptionService define o contrato que o Handler espera da camada de Serviço.
type AdoptionService interface {
	CreateRequest(ctx context.Context, input domain.AdoptionRequestCreate) (domain.AdoptionRequest, error)
	GetRequest(ctx context.Context, id int64) (domain.AdoptionRequest, error)
	ListRequests(ctx context.Context, filter domain.AdoptionRequestFilter) (domain.AdoptionRequestPage, error)
	UpdateRequest(ctx context.Context, id int64, patch domain.AdoptionRequestUpdate) (domain.AdoptionRequest, error)
	DeleteRequest(ctx context.Context, id int64) error
}

// Handler lida com as rotas de /adoption-requests.
type Handler struct {
	Service AdoptionService
	Logger  logger.Logger
}

func NewHandler(svc AdoptionService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// Routes registra as rotas. O POST deve ficar sob middleware.OptionalAuth
// para que o user_id possa vir do token.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.ListRequestsHandler)
	r.Post("/", h.CreateRequestHandler)
	r.Get("/{id}", h.GetRequestHandler)
	r.Put("/{id}", h.UpdateRequestHandler)
	r.Delete("/{id}", h.DeleteRequestHandler)
}

// ListRequestsHandler godoc
// @Summary      Lista solicitações de adoção
// @Tags         Adoção
// @Produce      json
// @Param        status   query  string  false  "pending | approved | rejected | completed"
// @Param        pet_id   query  int     false  "filtra por pet"
// @Param        user_id  query  int     false  "filtra por usuário"
// @Param        skip     query  int     false  "registros a pular"  default(0)
// @Param        limit    query  int     false  "tamanho da página (1-100)"  default(100)
// @Success      200  {object}  domain.AdoptionRequestPage
// @Failure      400  {object}  domain.ErrorResponse
// @Router       /adoption-requests [get]
func (h *Handler) ListRequestsHandler(w http.ResponseWriter, r *http.Request) {
	q := httpx.NewQuery(r)
	filter := domain.AdoptionRequestFilter{
		Status: domain.AdoptionStatus(q.String("status")),
		PetID:  q.Int64("pet_id"),
		UserID: q.Int64("user_id"),
		Skip:   q.Int("skip", 0),
		Limit:  q.Int("limit", domain.DefaultPageSize),
	}
	if err := q.Err(); err != nil {
		httpx.Respond(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}

	page, err := h.Service.ListRequests(r.Context(), filter)
	httpx.Respond(w, r, h.Logger, page, err, http.StatusOK)
}

// CreateRequestHandler godoc
// @Summary      Registra uma solicitação de adoção
// @Description  Com token Bearer válido, o user_id é o do usuário autenticado.
// @Tags         Adoção
// @Accept       json
// @Produce      json
// @Param        request  body  domain.AdoptionRequestCreate  true  "solicitação"
// @Success      201  {object}  domain.AdoptionRequest
// @Failure      400  {object}  domain.ErrorResponse
// @Failure      404  {object}  domain.ErrorResponse
// @Router       /adoption-requests [post]
func (h *Handler) CreateRequestHandler(w http.ResponseWriter, r *http.Request) {
	var input domain.AdoptionRequestCreate
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Respond(w, r, h.Logger, nil, err, http.StatusCreated)
		return
	}

	if claims, ok := middleware.GetUserClaimsFromContext(r.Context()); ok {
		input.UserID = claims.UserID
	}

	req, err := h.Service.CreateRequest(r.Context(), input)
	if err == nil {
		httpx.Location(w, "/adoption-requests", req.ID)
	}
	httpx.Respond(w, r, h.Logger, req, err, http.StatusCreated)
}

// GetRequestHandler godoc
// @Summary      Busca uma solicitação de adoção
// @Tags         Adoção
// @Produce      json
// @Param        id  path  int  true  "ID da solicitação"
// @Success      200  {object}  domain.AdoptionRequest
// @Failure      404  {object}  domain.ErrorResponse
// @Router       /adoption-requests/{id} [get]
func (h *Handler) GetRequestHandler(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.Respond(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}

	req, err := h.Service.GetRequest(r.Context(), id)
	httpx.Respond(w, r, h.Logger, req, err, http.StatusOK)
}

// UpdateRequestHandler godoc
// @Summary      Atualiza uma solicitação de adoção
// @Tags         Adoção
// @Accept       json
// @Produce      json
// @Param        id       path  int                           true  "ID da solicitação"
// @Param        request  body  domain.AdoptionRequestUpdate  true  "campos a alterar"
// @Success      200  {object}  domain.AdoptionRequest
// @Failure      400  {object}  domain.ErrorResponse
// @Failure      404  {object}  domain.ErrorResponse
// @Router       /adoption-requests/{id} [put]
func (h *Handler) UpdateRequestHandler(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.Respond(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}

	var patch domain.AdoptionRequestUpdate
	if err := httpx.DecodeJSON(r, &patch); err != nil {
		httpx.Respond(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}

	req, err := h.Service.UpdateRequest(r.Context(), id, patch)
	httpx.Respond(w, r, h.Logger, req, err, http.StatusOK)
}

// DeleteRequestHandler godoc
// @Summary      Remove uma solicitação de adoção
// @Tags         Adoção
// @Param        id  path  int  true  "ID da solicitação"
// @Success      204
// @Failure      404  {object}  domain.ErrorResponse
// @Router       /adoption-requests/{id} [delete]
func (h *Handler) DeleteRequestHandler(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.Respond(w, r, h.Logger, nil, err, http.StatusNoContent)
		return
	}

	err = h.Service.DeleteRequest(r.Context(), id)
	httpx.Respond(w, r, h.Logger, nil, err, http.StatusNoContent)
}
