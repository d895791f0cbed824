package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "gopets/docs" // registra a especificação swagger
	"gopets/internal/api/adoption"
	"gopets/internal/api/auth"
	"gopets/internal/api/health"
	"gopets/internal/api/pet"
	"gopets/internal/api/upload"
	"gopets/internal/api/user"
	"gopets/internal/domain"
	apperror "gopets/internal/errors"
	"gopets/internal/pkg/httpx"
	"gopets/internal/pkg/metrics"
	"gopets/internal/pkg/middleware"
)

// Handlers reúne os Handlers já inicializados por injeção de dependências.
type Handlers struct {
	Health   *health.Handler
	Pet      *pet.Handler
	Upload   *upload.Handler
	User     *user.Handler
	Auth     *auth.Handler
	Adoption *adoption.Handler
}

// NewRouter configura e retorna o roteador HTTP principal.
// rateLimit pode ser nil; nesse caso nenhuma limitação é aplicada.
func NewRouter(h Handlers, tokenSvc middleware.TokenService, rateLimit func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(metrics.InstrumentHandler)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteError(w, apperror.NewNotFoundError("Rota não encontrada"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		_ = httpx.WriteJSON(w, http.StatusMethodNotAllowed, domain.ErrorResponse{
			Code:     http.StatusMethodNotAllowed,
			Category: "METHOD_NOT_ALLOWED",
			Message:  "Método não permitido",
		})
	})

	// --- Rotas de infraestrutura (fora do rate limit) ---
	r.Get("/health", h.Health.HealthHandler)
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// --- Rotas da API ---
	r.Group(func(r chi.Router) {
		if rateLimit != nil {
			r.Use(rateLimit)
		}

		r.Route("/pets", func(r chi.Router) {
			h.Pet.Routes(r)
			r.Post("/{id}/photos", h.Upload.UploadPhotosHandler)
		})

		r.Route("/users", h.User.Routes)

		r.Route("/api/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.RegisterHandler)
			r.Post("/login", h.Auth.LoginHandler)
			r.With(middleware.NewAuthMiddleware(tokenSvc)).Get("/me", h.Auth.MeHandler)
		})

		r.Route("/adoption-requests", func(r chi.Router) {
			r.Use(middleware.OptionalAuth(tokenSvc))
			h.Adoption.Routes(r)
		})

		r.Get("/uploads/{filename}", h.Upload.ServeFileHandler)
	})

	return r
}
