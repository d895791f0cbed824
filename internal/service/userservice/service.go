package userservice

import (
	"context"
	"strings"
	"time"

	"gopets/internal/domain"
	apperror "gopets/internal/errors"
	"gopets/internal/pkg/logger"
	"gopets/internal/pkg/password"
	"gopets/internal/pkg/validation"
)

// TokenService é o contrato da camada de token (internal/pkg/token).
type TokenService interface {
	GenerateToken(userID int64, email string) (string, error)
	Expiry() time.Duration
}

// UserService define o serviço de lógica de negócio para a entidade User.
type UserService struct {
	UserRepo domain.UserRepository
	TokenSvc TokenService
	logger   logger.Logger
}

// NewService cria uma nova instância do UserService, injetando o Repositório.
func NewService(repo domain.UserRepository, tokenSvc TokenService, log logger.Logger) *UserService {
	return &UserService{
		UserRepo: repo,
		TokenSvc: tokenSvc,
		logger:   log,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ensureEmailFree recusa um email já usado por outro usuário (exceptID = 0 para criação).
func (s *UserService) ensureEmailFree(ctx context.Context, email string, exceptID int64) error {
	existing, err := s.UserRepo.FindByEmail(ctx, email)
	if err == nil && existing.ID != exceptID {
		return apperror.NewDuplicateError("Email já existe")
	}
	if err != nil && !apperror.IsNotFound(err) {
		return err
	}
	return nil
}

func (s *UserService) create(ctx context.Context, user domain.User, plainPassword string) (domain.User, error) {
	user.Email = normalizeEmail(user.Email)

	if err := s.ensureEmailFree(ctx, user.Email, 0); err != nil {
		return domain.User{}, err
	}

	if plainPassword != "" {
		hash, err := password.Hash(plainPassword)
		if err != nil {
			return domain.User{}, apperror.NewInternalError("Falha ao gerar hash da senha.", err)
		}
		user.PasswordHash = hash
	}

	created, err := s.UserRepo.Create(ctx, user)
	if err != nil {
		return domain.User{}, err
	}

	s.logger.Info("Usuário criado.", map[string]interface{}{"user_id": created.ID})
	return created, nil
}

// CreateUser cadastra um usuário pelo fluxo administrativo (senha opcional).
func (s *UserService) CreateUser(ctx context.Context, input domain.UserCreate) (domain.User, error) {
	input.Email = strings.TrimSpace(input.Email)
	input.FullName = strings.TrimSpace(input.FullName)
	if err := validation.Validate(input); err != nil {
		return domain.User{}, err
	}

	return s.create(ctx, domain.User{
		FullName: input.FullName,
		Email:    input.Email,
		Phone:    input.Phone,
		City:     input.City,
	}, input.Password)
}

// Register registra um novo usuário com senha, que é guardada apenas como hash bcrypt.
func (s *UserService) Register(ctx context.Context, registration domain.UserRegistration) (domain.User, error) {
	registration.Email = strings.TrimSpace(registration.Email)
	registration.FullName = strings.TrimSpace(registration.FullName)
	if err := validation.Validate(registration); err != nil {
		return domain.User{}, err
	}

	return s.create(ctx, domain.User{
		FullName: registration.FullName,
		Email:    registration.Email,
		Phone:    registration.Phone,
		City:     registration.City,
	}, registration.Password)
}

// Login autentica um usuário, verifica a senha e gera um JWT.
// Usuário inexistente, senha errada e conta sem senha resultam no mesmo 401.
func (s *UserService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthToken, error) {
	identifier := normalizeEmail(req.Identifier())

	fields := map[string]string{}
	if identifier == "" {
		fields["username"] = "campo obrigatório"
	}
	if req.Password == "" {
		fields["password"] = "campo obrigatório"
	}
	if len(fields) > 0 {
		return domain.AuthToken{}, apperror.NewFieldValidationError(fields)
	}

	user, err := s.UserRepo.FindByEmail(ctx, identifier)
	if err != nil {
		if apperror.IsNotFound(err) {
			return domain.AuthToken{}, apperror.NewUnauthorizedError(apperror.MsgInvalidCredentials)
		}
		return domain.AuthToken{}, err
	}

	if !password.Verify(req.Password, user.PasswordHash) {
		s.logger.Info("Tentativa de login com credenciais inválidas.", map[string]interface{}{"user_id": user.ID})
		return domain.AuthToken{}, apperror.NewUnauthorizedError(apperror.MsgInvalidCredentials)
	}

	tokenString, err := s.TokenSvc.GenerateToken(user.ID, user.Email)
	if err != nil {
		return domain.AuthToken{}, apperror.NewInternalError("Falha ao gerar token de autenticação.", err)
	}

	return domain.AuthToken{
		AccessToken: tokenString,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.TokenSvc.Expiry().Seconds()),
		User:        user,
	}, nil
}

// Me devolve o perfil do dono do token. Um usuário removido depois da emissão
// do token é tratado como credencial inválida.
func (s *UserService) Me(ctx context.Context, userID int64) (domain.User, error) {
	user, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return domain.User{}, apperror.NewUnauthorizedError(apperror.MsgInvalidCredentials)
		}
		return domain.User{}, err
	}
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id int64) (domain.User, error) {
	if id <= 0 {
		return domain.User{}, apperror.NewNotFoundError("Usuário não encontrado")
	}
	return s.UserRepo.FindByID(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context, filter domain.UserFilter) (domain.UserPage, error) {
	if err := validation.Validate(filter); err != nil {
		return domain.UserPage{}, err
	}

	users, total, err := s.UserRepo.List(ctx, filter)
	if err != nil {
		return domain.UserPage{}, err
	}
	return domain.UserPage{Users: users, Total: total, Skip: filter.Skip, Limit: filter.Limit}, nil
}

// UpdateUser altera os dados de perfil. Trocar para um email de outro usuário é recusado.
func (s *UserService) UpdateUser(ctx context.Context, id int64, patch domain.UserUpdate) (domain.User, error) {
	if patch.Email != nil {
		email := normalizeEmail(*patch.Email)
		patch.Email = &email
	}
	if patch.FullName != nil {
		name := strings.TrimSpace(*patch.FullName)
		patch.FullName = &name
	}
	if err := validation.Validate(patch); err != nil {
		return domain.User{}, err
	}
	if id <= 0 {
		return domain.User{}, apperror.NewNotFoundError("Usuário não encontrado")
	}
	if patch.IsEmpty() {
		return s.UserRepo.FindByID(ctx, id)
	}

	if patch.Email != nil {
		if err := s.ensureEmailFree(ctx, *patch.Email, id); err != nil {
			return domain.User{}, err
		}
	}

	return s.UserRepo.Update(ctx, id, patch)
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperror.NewNotFoundError("Usuário não encontrado")
	}
	return s.UserRepo.Delete(ctx, id)
}
