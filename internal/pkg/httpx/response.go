// Package httpx padroniza as respostas JSON da API.
package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"

	"gopets/internal/domain"
	apperror "gopets/internal/errors"
	"gopets/internal/pkg/logger"
)

// WriteJSON serializa data com o status informado. data nil gera corpo vazio.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	if data == nil {
		w.WriteHeader(status)
		return nil
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// WriteError mapeia err para o corpo padrão {code, category, message, fields}.
func WriteError(w http.ResponseWriter, err error) (int, string) {
	status, category, message := apperror.MapToHTTPStatus(err)

	resp := domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
		Fields:   apperror.FieldErrors(err),
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	_ = WriteJSON(w, status, resp)
	return status, category
}

// Respond é o equivalente do handleServiceResponse: sucesso com data ou erro padronizado,
// registrando o resultado no log.
func Respond(w http.ResponseWriter, r *http.Request, log logger.Logger, data interface{}, err error, successStatus int) {
	if err == nil {
		if jsonErr := WriteJSON(w, successStatus, data); jsonErr != nil {
			log.Error("Falha ao codificar JSON de resposta", jsonErr)
			return
		}
		log.Debug("Requisição concluída com sucesso", map[string]interface{}{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": successStatus,
		})
		return
	}

	status, category := WriteError(w, err)
	if status >= 500 {
		log.Error(fmt.Sprintf("Erro de Servidor: %s %s (%s)", r.Method, r.URL.Path, category), err)
		return
	}
	log.Debug(fmt.Sprintf("Requisição rejeitada com status %d", status), map[string]interface{}{
		"method":   r.Method,
		"path":     r.URL.Path,
		"category": category,
	})
}
