package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestInstrumentHandler_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(InstrumentHandler)
	r.Get("/pets/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/pets/{id}", "404"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pets/42", nil))

	after := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/pets/{id}", "404"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, before+1, after)
}

func TestObserveAdoption(t *testing.T) {
	before := testutil.ToFloat64(adoptions.WithLabelValues("conflict"))
	ObserveAdoption("conflict")
	assert.Equal(t, before+1, testutil.ToFloat64(adoptions.WithLabelValues("conflict")))
}
