package health

import (
	"context"
	"net/http"
	"time"

	"gopets/internal/pkg/httpx"
	"gopets/internal/pkg/logger"
)

// Pinger é satisfeito por *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Status é o corpo de GET /health.
type Status struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type Handler struct {
	DB     Pinger
	Logger logger.Logger
	now    func() time.Time
}

func NewHandler(db Pinger, log logger.Logger) *Handler {
	return &Handler{DB: db, Logger: log, now: time.Now}
}

// HealthHandler godoc
// @Summary      Verificação de saúde
// @Tags         Saúde
// @Produce      json
// @Success      200  {object}  health.Status
// @Failure      503  {object}  health.Status
// @Router       /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	status := Status{Status: "healthy", Timestamp: h.now().UTC()}

	if h.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.DB.PingContext(ctx); err != nil {
			h.Logger.Error("Health check: banco indisponível", err)
			status.Status = "unhealthy"
			_ = httpx.WriteJSON(w, http.StatusServiceUnavailable, status)
			return
		}
	}

	_ = httpx.WriteJSON(w, http.StatusOK, status)
}
