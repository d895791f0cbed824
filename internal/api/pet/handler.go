package pet

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gopets/internal/domain"
	"gopets/internal/pkg/httpx"
	"gopets/internal/pkg/logger"
)

// PetService define o contrato que o Handler espera da camada de Serviço.
type PetService interface {
	CreatePet(ctx context.Context, input domain.PetCreate) (domain.Pet, error)
	GetPet(ctx context.Context, id int64) (domain.Pet, error)
	ListPets(ctx context.Context, filter domain.PetFilter) (domain.PetPage, error)
	SearchPets(ctx context.Context, query string) (domain.PetSearchResult, error)
	Stats(ctx context.Context) (domain.PetStats, error)
	FilterOptions(ctx context.Context) (domain.FilterOptions, error)
	UpdatePet(ctx context.Context, id int64, patch domain.PetUpdate) (domain.Pet, error)
	DeletePet(ctx context.Context, id int64) error
	AdoptPet(ctx context.Context, petID int64, req domain.AdoptRequest) (domain.Pet, error)
}

// Handler agrupa todos os métodos de Handler do pet.
type Handler struct {
	Service PetService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc PetService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// Routes registra as rotas de /pets. As rotas fixas vêm antes de /{id}.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.ListPetsHandler)
	r.Post("/", h.CreatePetHandler)
	r.Get("/search", h.SearchPetsHandler)
	r.Get("/stats", h.StatsHandler)
	r.Get("/filters/options", h.FilterOptionsHandler)
	r.Get("/{id}", h.GetPetHandler)
	r.Put("/{id}", h.UpdatePetHandler)
	r.Delete("/{id}", h.DeletePetHandler)
	r.Post("/{id}/adopt", h.AdoptPetHandler)
}

// ListPetsHandler godoc
// @Summary      Lista pets
// @Description  Lista paginada com filtros combinados (conjunção).
// @Tags         Pets
// @Produce      json
// @Param        species  query  string  false  "dog | cat"
// @Param        gender   query  string  false  "male | female"
// @Param        city     query  string  false  "trecho do nome da cidade"
// @Param        status   query  string  false  "available | pending | adopted"
// @Param        min_age  query  int     false  "idade mínima em meses"
// @Param        max_age  query  int     false  "idade máxima em meses"
// @Param        skip     query  int     false  "registros a pular"  default(0)
// @Param        limit    query  int     false  "tamanho da página (1-100)"  default(100)
// @Success      200  {object}  domain.PetPage
// @Failure      400  {object}  domain.ErrorResponse
// @Router       /pets [get]
func (h *Handler) ListPetsHandler(w http.ResponseWriter, r *http.Request) {
	q := httpx.NewQuery(r)
	filter := domain.PetFilter{
		Species: domain.Species(q.String("species")),
		Gender:  domain.Gender(q.String("gender")),
		City:    q.String("city"),
		Status:  domain.PetStatus(q.String("status")),
		MinAge:  q.OptionalInt("min_age"),
		MaxAge:  q.OptionalInt("max_age"),
		Skip:    q.Int("skip", 0),
		Limit:   q.Int("limit", domain.DefaultPageSize),
	}
	if err := q.Err(); err != nil {
		httpx.Respond(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}

	page, err := h.Service.ListPets(r.Context(), filter)
	httpx.Respond(w, r, h.Logger, page, err, http.StatusOK)
}

// SearchPetsHandler godoc
// @Summary      Busca pets por texto
// @Description  Procura o termo em nome, raça e cidade, sem diferenciar maiúsculas.
// @Tags         Pets
// @Produce      json
// @Param        q  query  string  true  "termo de busca"
// @Success      200  {object}  domain.PetSearchResult
// @Failure      400  {object}  domain.ErrorResponse
// @Router       /pets/search [get]
func (h *Handler) SearchPetsHandler(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.SearchPets(r.Context(), r.URL.Query().Get("q"))
	httpx.Respond(w, r, h.Logger, result, err, http.StatusOK)
}

// StatsHandler godoc
// @Summary      Estatísticas dos pets
// @Tags         Estatísticas
// @Produce      json
// @Success      200  {object}  domain.PetStats
// @Router       /pets/stats [get]
func (h *Handler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Stats(r.Context())
	httpx.Respond(w, r, h.Logger, stats, err, http.StatusOK)
}

// FilterOptionsHandler godoc
// @Summary      Opções para os filtros da listagem
// @Tags         Pets
// @Produce      json
// @Success      200  {object}  domain.FilterOptions
// @Router       /pets/filters/options [get]
func (h *Handler) FilterOptionsHandler(w http.ResponseWriter, r *http.Request) {
	opts, err := h.Service.FilterOptions(r.Context())
	httpx.Respond(w, r, h.Logger, opts, err, http.StatusOK)
}

// GetPetHandler godoc
// @Summary      Busca um pet
// @Tags         Pets
// @Produce      json
// @Param        id  path  int  true  "ID do pet"
// @Success      200  {object}  domain.Pet
// @Failure      404  {object}  domain.ErrorResponse
// @Router       /pets/{id} [get]
func (h *Handler) GetPetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.Respond(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}

	pet, err := h.Service.GetPet(r.Context(), id)
	httpx.Respond(w, r, h.Logger, pet, err, http.StatusOK)
}

// CreatePetHandler godoc
// @Summary      Cadastra um pet
// @Tags         Pets
// @Accept       json
// @Produce      json
// @Param        pet  body  domain.PetCreate  true  "dados do pet"
// @Success      201  {object}  domain.Pet
// @Failure      400  {object}  domain.ErrorResponse
// @Router       /pets [post]
func (h *Handler) CreatePetHandler(w http.ResponseWriter, r *http.Request) {
	var input domain.PetCreate
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.Respond(w, r, h.Logger, nil, err, http.StatusCreated)
		return
	}

	pet, err := h.Service.CreatePet(r.Context(), input)
	if err == nil {
		httpx.Location(w, "/pets", pet.ID)
	}
	httpx.Respond(w, r, h.Logger, pet, err, http.StatusCreated)
}

// UpdatePetHandler godoc
// @Summary      Atualiza um pet
// @Description  Atualização parcial: apenas os campos enviados são alterados.
// @Tags         Pets
// @Accept       json
// @Produce      json
// @Param        id   path  int               true  "ID do pet"
// @Param        pet  body  domain.PetUpdate  true  "campos a alterar"
// @Success      200  {object}  domain.Pet
// @Failure      400  {object}  domain.ErrorResponse
// @Failure      404  {object}  domain.ErrorResponse
// @Router       /pets/{id} [put]
func (h *Handler) UpdatePetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.Respond(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}

	var patch domain.PetUpdate
	if err := httpx.DecodeJSON(r, &patch); err != nil {
		httpx.Respond(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}

	pet, err := h.Service.UpdatePet(r.Context(), id, patch)
	httpx.Respond(w, r, h.Logger, pet, err, http.StatusOK)
}

// DeletePetHandler godoc
// @Summary      Remove um pet
// @Tags         Pets
// @Param        id  path  int  true  "ID do pet"
// @Success      204
// @Failure      404  {object}  domain.ErrorResponse
// @Router       /pets/{id} [delete]
func (h *Handler) DeletePetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.Respond(w, r, h.Logger, nil, err, http.StatusNoContent)
		return
	}

	err = h.Service.DeletePet(r.Context(), id)
	httpx.Respond(w, r, h.Logger, nil, err, http.StatusNoContent)
}

// AdoptPetHandler godoc
// @Summary      Adota um pet
// @Description  Transição available -> adopted. Pet indisponível retorna 409.
// @Tags         Adoção
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID do pet"
// @Param        body  body  domain.AdoptRequest  true  "adotante"
// @Success      200  {object}  domain.Pet
// @Failure      404  {object}  domain.ErrorResponse
// @Failure      409  {object}  domain.ErrorResponse
// @Router       /pets/{id}/adopt [post]
func (h *Handler) AdoptPetHandler(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r, "id")
	if err != nil {
		httpx.Respond(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}

	var req domain.AdoptRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Respond(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}

	pet, err := h.Service.AdoptPet(r.Context(), id, req)
	httpx.Respond(w, r, h.Logger, pet, err, http.StatusOK)
}
