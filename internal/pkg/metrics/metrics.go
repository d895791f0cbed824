package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry guarda os coletores da aplicação.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gopets",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total de requisições HTTP atendidas.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gopets",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duração das requisições HTTP.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)

	adoptions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gopets",
			Subsystem: "pets",
			Name:      "adoptions_total",
			Help:      "Tentativas de adoção por resultado.",
		},
		[]string{"result"},
	)

	photosUploaded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gopets",
			Subsystem: "pets",
			Name:      "photos_uploaded_total",
			Help:      "Fotos gravadas com sucesso.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		adoptions,
		photosUploaded,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler expõe as métricas registradas.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ObserveAdoption conta uma tentativa de adoção ("success", "conflict", "not_found", "error").
func ObserveAdoption(result string) {
	adoptions.WithLabelValues(result).Inc()
}

// ObservePhotosUploaded soma n fotos gravadas.
func ObservePhotosUploaded(n int) {
	photosUploaded.Add(float64(n))
}

// InstrumentHandler mede cada requisição usando o padrão de rota do chi como rótulo,
// o que mantém a cardinalidade limitada (/pets/{id} em vez de /pets/42).
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Unwrap permite que http.ResponseController alcance o writer original.
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
