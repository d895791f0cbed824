package domain

import "time"

// AdoptionRequest registra o interesse de um usuário em adotar um pet.
// FullName, Email e Phone são uma cópia do contato no momento do envio.
type AdoptionRequest struct {
	ID        int64          `json:"id"`
	PetID     int64          `json:"pet_id"`
	UserID    int64          `json:"user_id"`
	FullName  string         `json:"full_name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	Status    AdoptionStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// AdoptionRequestCreate é o payload de criação. UserID pode vir do token;
// os campos de contato, quando omitidos, são copiados do perfil do usuário.
type AdoptionRequestCreate struct {
	PetID    int64  `json:"pet_id" validate:"required,gt=0"`
	UserID   int64  `json:"user_id" validate:"required,gt=0"`
	FullName string `json:"full_name" validate:"max=200"`
	Email    string `json:"email" validate:"omitempty,email,max=255"`
	Phone    string `json:"phone" validate:"max=20"`
}

// AdoptionRequestUpdate altera status e correções de contato.
type AdoptionRequestUpdate struct {
	Status   *AdoptionStatus `json:"status" validate:"omitnil,oneof=pending approved rejected completed"`
	FullName *string         `json:"full_name" validate:"omitnil,min=1,max=200"`
	Email    *string         `json:"email" validate:"omitnil,email,max=255"`
	Phone    *string         `json:"phone" validate:"omitnil,max=20"`
}

// IsEmpty informa se nenhum campo foi enviado.
func (u AdoptionRequestUpdate) IsEmpty() bool {
	return u.Status == nil && u.FullName == nil && u.Email == nil && u.Phone == nil
}

// AdoptionRequestFilter filtra e pagina a listagem de solicitações.
type AdoptionRequestFilter struct {
	Status AdoptionStatus `json:"status" validate:"omitempty,oneof=pending approved rejected completed"`
	PetID  int64          `json:"pet_id" validate:"gte=0"`
	UserID int64          `json:"user_id" validate:"gte=0"`
	Skip   int            `json:"skip" validate:"gte=0"`
	Limit  int            `json:"limit" validate:"gte=1,lte=100"`
}

// AdoptionRequestPage é uma página de solicitações.
type AdoptionRequestPage struct {
	AdoptionRequests []AdoptionRequest `json:"adoption_requests"`
	Total            int               `json:"total"`
	Skip             int               `json:"skip"`
	Limit            int               `json:"limit"`
}
