// Package validation aplica as regras declaradas nas tags `validate` dos payloads
// e converte as falhas em um ValidationError com o detalhe de cada campo.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperror "gopets/internal/errors"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// Reporta os campos pelo nome JSON, que é o que o cliente enviou.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
		instance = v
	})
	return instance
}

// Validate verifica s e devolve nil ou um *errors.ValidationError listando todos os campos inválidos.
func Validate(s interface{}) error {
	err := get().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.NewInternalError("Falha ao validar payload.", err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		key := fieldKey(fe)
		if _, exists := fields[key]; exists {
			continue
		}
		fields[key] = message(fe)
	}
	return apperror.NewFieldValidationError(fields)
}

// fieldKey remove o nome da struct raiz do namespace ("PetCreate.photos[0]" -> "photos[0]").
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "email":
		return "email inválido"
	case "oneof":
		return fmt.Sprintf("valor inválido; permitidos: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "max":
		if isString {
			return fmt.Sprintf("deve ter no máximo %s caracteres", fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("deve ter no máximo %s itens", fe.Param())
		}
		return fmt.Sprintf("deve ser no máximo %s", fe.Param())
	case "min":
		if isString {
			return fmt.Sprintf("deve ter no mínimo %s caracteres", fe.Param())
		}
		return fmt.Sprintf("deve ser no mínimo %s", fe.Param())
	case "gte":
		return fmt.Sprintf("deve ser maior ou igual a %s", fe.Param())
	case "lte":
		return fmt.Sprintf("deve ser menor ou igual a %s", fe.Param())
	case "gt":
		return fmt.Sprintf("deve ser maior que %s", fe.Param())
	}
	return fmt.Sprintf("falhou na regra '%s'", fe.Tag())
}
