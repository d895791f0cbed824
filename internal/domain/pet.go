package domain

import (
	"fmt"
	"time"
)

// Limites de paginação e de idade (em meses).
const (
	DefaultPageSize = 100
	MaxPageSize     = 100
	MinAgeMonths    = 0
	MaxAgeMonths    = 300
)

// Pet representa um animal cadastrado para adoção.
// AdoptedAt e AdoptedBy são preenchidos juntos, apenas pela transição de adoção.
type Pet struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Species     Species    `json:"species"`
	Breed       string     `json:"breed"`
	Age         int        `json:"age"`
	AgeDisplay  string     `json:"age_display"`
	Gender      Gender     `json:"gender"`
	City        string     `json:"city"`
	Description string     `json:"description"`
	Photos      []string   `json:"photos"`
	Status      PetStatus  `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	AdoptedAt   *time.Time `json:"adopted_at"`
	AdoptedBy   *int64     `json:"adopted_by"`
}

// PetCreate é o payload de criação. Status aceita apenas available ou pending:
// "adopted" só é alcançado pela operação de adoção.
type PetCreate struct {
	Name        string    `json:"name" validate:"required,max=100"`
	Species     Species   `json:"species" validate:"required,oneof=dog cat"`
	Breed       string    `json:"breed" validate:"max=100"`
	Age         *int      `json:"age" validate:"required,gte=0,lte=300"`
	Gender      Gender    `json:"gender" validate:"required,oneof=male female"`
	City        string    `json:"city" validate:"max=100"`
	Description string    `json:"description" validate:"max=1000"`
	Photos      []string  `json:"photos" validate:"omitempty,max=20,dive,required,max=500"`
	Status      PetStatus `json:"status" validate:"omitempty,oneof=available pending"`
}

// PetUpdate é o payload de atualização parcial: campos nil não são alterados.
type PetUpdate struct {
	Name        *string    `json:"name" validate:"omitnil,min=1,max=100"`
	Species     *Species   `json:"species" validate:"omitnil,oneof=dog cat"`
	Breed       *string    `json:"breed" validate:"omitnil,max=100"`
	Age         *int       `json:"age" validate:"omitnil,gte=0,lte=300"`
	Gender      *Gender    `json:"gender" validate:"omitnil,oneof=male female"`
	City        *string    `json:"city" validate:"omitnil,max=100"`
	Description *string    `json:"description" validate:"omitnil,max=1000"`
	Status      *PetStatus `json:"status" validate:"omitnil,oneof=available pending"`
}

// IsEmpty informa se nenhum campo foi enviado.
func (u PetUpdate) IsEmpty() bool {
	return u.Name == nil && u.Species == nil && u.Breed == nil && u.Age == nil &&
		u.Gender == nil && u.City == nil && u.Description == nil && u.Status == nil
}

// PetFilter define os filtros (conjunção) e a paginação da listagem de pets.
type PetFilter struct {
	Species Species   `json:"species" validate:"omitempty,oneof=dog cat"`
	Gender  Gender    `json:"gender" validate:"omitempty,oneof=male female"`
	City    string    `json:"city" validate:"max=100"`
	Status  PetStatus `json:"status" validate:"omitempty,oneof=available pending adopted"`
	MinAge  *int      `json:"min_age" validate:"omitempty,gte=0,lte=300"`
	MaxAge  *int      `json:"max_age" validate:"omitempty,gte=0,lte=300"`
	Skip    int       `json:"skip" validate:"gte=0"`
	Limit   int       `json:"limit" validate:"gte=1,lte=100"`
}

// PetPage é uma página de resultados da listagem.
type PetPage struct {
	Pets  []Pet `json:"pets"`
	Total int   `json:"total"`
	Skip  int   `json:"skip"`
	Limit int   `json:"limit"`
}

// PetSearchResult é o resultado da busca textual.
type PetSearchResult struct {
	Pets  []Pet  `json:"pets"`
	Query string `json:"query"`
}

// PetStats agrega contagens por status e espécie.
type PetStats struct {
	Total     int `json:"total_pets"`
	Available int `json:"available_pets"`
	Pending   int `json:"pending_pets"`
	Adopted   int `json:"adopted_pets"`
	Dogs      int `json:"dogs"`
	Cats      int `json:"cats"`
}

// AgeRange é a faixa de idades (meses) dos pets cadastrados.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// FilterOptions enumera os valores válidos para os filtros da listagem.
type FilterOptions struct {
	Species  []Option `json:"species"`
	Genders  []Option `json:"genders"`
	Statuses []Option `json:"statuses"`
	Cities   []string `json:"cities"`
	AgeRange AgeRange `json:"age_range"`
}

// AdoptRequest é o payload de POST /pets/{id}/adopt.
type AdoptRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

// FormatAge converte a idade em meses para exibição ("8 meses", "2 anos e 3 meses").
func FormatAge(months int) string {
	if months < 12 {
		if months == 1 {
			return "1 mês"
		}
		return fmt.Sprintf("%d meses", months)
	}

	years := months / 12
	rest := months % 12
	yearsLabel := fmt.Sprintf("%d ano", years)
	if years > 1 {
		yearsLabel += "s"
	}
	switch rest {
	case 0:
		return yearsLabel
	case 1:
		return yearsLabel + " e 1 mês"
	}
	return fmt.Sprintf("%s e %d meses", yearsLabel, rest)
}
