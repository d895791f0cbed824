package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError é a interface central para todos os erros customizados do GoPets.
// Ela permite que o Handler acesse a Categoria, o Status HTTP e a Mensagem do erro.
type AppError interface {
	Error() string
	Category() string
	HTTPStatus() int
	Unwrap() error
}

// --- Erros de Domínio ---

// ValidationError representa falhas de validação de dados de entrada.
// Fields lista cada campo inválido (nome JSON -> mensagem).
type ValidationError struct {
	Msg    string
	Fields map[string]string
}

func (e *ValidationError) Error() string    { return fmt.Sprintf("Erro de Validação: %s", e.Msg) }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest }
func (e *ValidationError) Unwrap() error    { return nil }

// NewValidationError cria um novo erro de validação.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// NewFieldValidationError cria um erro de validação com o detalhe de cada campo.
func NewFieldValidationError(fields map[string]string) AppError {
	return &ValidationError{Msg: "Um ou mais campos são inválidos.", Fields: fields}
}

// NotFoundError representa a ausência de um recurso solicitado.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string    { return e.Msg }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound }
func (e *NotFoundError) Unwrap() error    { return nil }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// ConflictError representa uma violação de pré-condição de negócio (ex: pet indisponível).
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string    { return e.Msg }
func (e *ConflictError) Category() string { return "CONFLICT" }
func (e *ConflictError) HTTPStatus() int  { return http.StatusConflict }
func (e *ConflictError) Unwrap() error    { return nil }

// NewConflictError cria um novo erro de conflito.
func NewConflictError(msg string) AppError {
	return &ConflictError{Msg: msg}
}

// DuplicateError é o conflito de unicidade (email já cadastrado).
// Mantém o status 400 que os clientes da API já esperam.
type DuplicateError struct {
	Msg string
}

func (e *DuplicateError) Error() string    { return e.Msg }
func (e *DuplicateError) Category() string { return "CONFLICT" }
func (e *DuplicateError) HTTPStatus() int  { return http.StatusBadRequest }
func (e *DuplicateError) Unwrap() error    { return nil }

// NewDuplicateError cria um novo erro de duplicidade.
func NewDuplicateError(msg string) AppError {
	return &DuplicateError{Msg: msg}
}

// UnauthorizedError representa qualquer falha de autenticação.
// A mensagem não distingue token expirado, forjado ou credencial errada.
type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string    { return e.Msg }
func (e *UnauthorizedError) Category() string { return "UNAUTHORIZED" }
func (e *UnauthorizedError) HTTPStatus() int  { return http.StatusUnauthorized }
func (e *UnauthorizedError) Unwrap() error    { return nil }

// MsgInvalidCredentials é a mensagem única de falha de autenticação.
const MsgInvalidCredentials = "Não foi possível validar as credenciais."

// NewUnauthorizedError cria um novo erro de autenticação.
func NewUnauthorizedError(msg string) AppError {
	return &UnauthorizedError{Msg: msg}
}

// RateLimitError indica excesso de requisições do cliente.
type RateLimitError struct {
	Msg string
}

func (e *RateLimitError) Error() string    { return e.Msg }
func (e *RateLimitError) Category() string { return "RATE_LIMITED" }
func (e *RateLimitError) HTTPStatus() int  { return http.StatusTooManyRequests }
func (e *RateLimitError) Unwrap() error    { return nil }

// NewRateLimitError cria um novo erro de limite de requisições.
func NewRateLimitError(msg string) AppError {
	return &RateLimitError{Msg: msg}
}

// --- Erros de Infraestrutura ---

// InternalError representa falhas inesperadas no servidor, serviço ou repositório.
type InternalError struct {
	Msg string
	Err error
}

func (e *InternalError) Error() string    { return fmt.Sprintf("Erro Interno: %s", e.Msg) }
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError }
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro de servidor.
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewDBError é um atalho para criar um InternalError específico de falhas no DB.
func NewDBError(msg string, err error) AppError {
	return NewInternalError(fmt.Sprintf("%s (DB)", msg), err)
}

// --- Tradução final para o Handler ---

// MapToHTTPStatus recebe um erro e o traduz para o código HTTP, a categoria e a mensagem.
// Erros internos nunca expõem a causa ao cliente.
func MapToHTTPStatus(err error) (int, string, string) {
	var appErr AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPStatus() >= http.StatusInternalServerError {
			return appErr.HTTPStatus(), appErr.Category(), "Ocorreu um erro interno no servidor."
		}
		return appErr.HTTPStatus(), appErr.Category(), appErr.Error()
	}

	return http.StatusInternalServerError, "UNKNOWN_ERROR", "Ocorreu um erro inesperado."
}

// FieldErrors devolve o detalhe por campo quando err é um ValidationError.
func FieldErrors(err error) map[string]string {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Fields
	}
	return nil
}

// IsNotFound informa se a cadeia de err contém um NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
