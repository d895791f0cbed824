package domain

import "time"

// User representa uma conta de usuário (adotante).
type User struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Oculta o hash da senha no JSON de resposta
	Phone        string    `json:"phone"`
	City         string    `json:"city"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserCreate é o payload de POST /users. A senha é opcional nesse fluxo;
// sem ela a conta não consegue fazer login.
type UserCreate struct {
	FullName string `json:"full_name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"omitempty,min=6,max=72"`
	Phone    string `json:"phone" validate:"max=20"`
	City     string `json:"city" validate:"max=100"`
}

// UserRegistration é o payload de POST /api/auth/register.
type UserRegistration struct {
	FullName string `json:"full_name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Phone    string `json:"phone" validate:"max=20"`
	City     string `json:"city" validate:"max=100"`
}

// UserUpdate altera apenas os campos de perfil enviados.
type UserUpdate struct {
	FullName *string `json:"full_name" validate:"omitnil,min=1,max=200"`
	Email    *string `json:"email" validate:"omitnil,email,max=255"`
	Phone    *string `json:"phone" validate:"omitnil,max=20"`
	City     *string `json:"city" validate:"omitnil,max=100"`
}

// IsEmpty informa se nenhum campo foi enviado.
func (u UserUpdate) IsEmpty() bool {
	return u.FullName == nil && u.Email == nil && u.Phone == nil && u.City == nil
}

// LoginRequest aceita o usuário pelo campo username (formulário OAuth2) ou email.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Identifier devolve o email informado em qualquer um dos campos.
func (l LoginRequest) Identifier() string {
	if l.Username != "" {
		return l.Username
	}
	return l.Email
}

// AuthToken é a resposta do login.
type AuthToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	User        User   `json:"user"`
}

// UserFilter pagina a listagem de usuários.
type UserFilter struct {
	Skip  int `json:"skip" validate:"gte=0"`
	Limit int `json:"limit" validate:"gte=1,lte=100"`
}

// UserPage é uma página de usuários.
type UserPage struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
	Skip  int    `json:"skip"`
	Limit int    `json:"limit"`
}
