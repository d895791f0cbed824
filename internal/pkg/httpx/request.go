package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	apperror "gopets/internal/errors"
)

const maxJSONBody = 1 << 20

// DecodeJSON lê o corpo em dst recusando campos desconhecidos e lixo após o objeto.
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.Is(err, io.EOF):
			return apperror.NewValidationError("Corpo da requisição vazio.")
		case errors.As(err, &typeErr) && typeErr.Field != "":
			return apperror.NewFieldValidationError(map[string]string{typeErr.Field: "tipo inválido"})
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
			return apperror.NewFieldValidationError(map[string]string{field: "campo desconhecido"})
		}
		return apperror.NewValidationError("Payload inválido. Verifique o formato JSON.")
	}

	if dec.More() {
		return apperror.NewValidationError("Payload inválido. Verifique o formato JSON.")
	}
	return nil
}

// PathID lê um parâmetro numérico da rota.
func PathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperror.NewFieldValidationError(map[string]string{name: "deve ser um número inteiro"})
	}
	return id, nil
}

// Query acumula os erros de conversão dos parâmetros de query.
type Query struct {
	values url.Values
	fields map[string]string
}

func NewQuery(r *http.Request) *Query {
	return &Query{values: r.URL.Query(), fields: map[string]string{}}
}

func (q *Query) String(name string) string {
	return strings.TrimSpace(q.values.Get(name))
}

// Int devolve def quando o parâmetro está ausente.
func (q *Query) Int(name string, def int) int {
	raw := q.String(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		q.fields[name] = "deve ser um número inteiro"
		return def
	}
	return v
}

// OptionalInt devolve nil quando o parâmetro está ausente.
func (q *Query) OptionalInt(name string) *int {
	if q.String(name) == "" {
		return nil
	}
	v := q.Int(name, 0)
	if _, bad := q.fields[name]; bad {
		return nil
	}
	return &v
}

func (q *Query) Int64(name string) int64 {
	raw := q.String(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		q.fields[name] = "deve ser um número inteiro"
		return 0
	}
	return v
}

// Err devolve um ValidationError com todos os parâmetros malformados, ou nil.
func (q *Query) Err() error {
	if len(q.fields) == 0 {
		return nil
	}
	return apperror.NewFieldValidationError(q.fields)
}

// ContentLengthExceeded informa se o erro veio de http.MaxBytesReader.
func ContentLengthExceeded(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// Location monta o cabeçalho Location de um recurso criado.
func Location(w http.ResponseWriter, base string, id int64) {
	w.Header().Set("Location", fmt.Sprintf("%s/%d", strings.TrimRight(base, "/"), id))
}
