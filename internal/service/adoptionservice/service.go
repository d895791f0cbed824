package adoptionservice

import (
	"context"
	"strings"

	"gopets/internal/domain"
	apperror "gopets/internal/errors"
	"gopets/internal/pkg/logger"
	"gopets/internal/pkg/validation"
)

// PetFinder e UserFinder são as leituras de que o serviço precisa para checar as referências.
type PetFinder interface {
	FindByID(ctx context.Context, id int64) (domain.Pet, error)
}

type UserFinder interface {
	FindByID(ctx context.Context, id int64) (domain.User, error)
}

// Service gerencia as solicitações de adoção.
type Service struct {
	repo   domain.AdoptionRequestRepository
	pets   PetFinder
	users  UserFinder
	logger logger.Logger
}

func NewService(repo domain.AdoptionRequestRepository, pets PetFinder, users UserFinder, log logger.Logger) *Service {
	return &Service{repo: repo, pets: pets, users: users, logger: log}
}

// CreateRequest registra uma solicitação. Pet e usuário precisam existir; os dados de
// contato omitidos são copiados do perfil do usuário.
func (s *Service) CreateRequest(ctx context.Context, input domain.AdoptionRequestCreate) (domain.AdoptionRequest, error) {
	input.Email = strings.TrimSpace(input.Email)
	if err := validation.Validate(input); err != nil {
		return domain.AdoptionRequest{}, err
	}

	if _, err := s.pets.FindByID(ctx, input.PetID); err != nil {
		return domain.AdoptionRequest{}, err
	}
	user, err := s.users.FindByID(ctx, input.UserID)
	if err != nil {
		return domain.AdoptionRequest{}, err
	}

	req := domain.AdoptionRequest{
		PetID:    input.PetID,
		UserID:   input.UserID,
		FullName: strings.TrimSpace(input.FullName),
		Email:    strings.ToLower(input.Email),
		Phone:    strings.TrimSpace(input.Phone),
		Status:   domain.AdoptionStatusPending,
	}
	if req.FullName == "" {
		req.FullName = user.FullName
	}
	if req.Email == "" {
		req.Email = user.Email
	}
	if req.Phone == "" {
		req.Phone = user.Phone
	}

	created, err := s.repo.Create(ctx, req)
	if err != nil {
		return domain.AdoptionRequest{}, err
	}

	s.logger.Info("Solicitação de adoção registrada.", map[string]interface{}{
		"request_id": created.ID,
		"pet_id":     created.PetID,
		"user_id":    created.UserID,
	})
	return created, nil
}

func (s *Service) GetRequest(ctx context.Context, id int64) (domain.AdoptionRequest, error) {
	if id <= 0 {
		return domain.AdoptionRequest{}, apperror.NewNotFoundError("Solicitação de adoção não encontrada")
	}
	return s.repo.FindByID(ctx, id)
}

func (s *Service) ListRequests(ctx context.Context, filter domain.AdoptionRequestFilter) (domain.AdoptionRequestPage, error) {
	if err := validation.Validate(filter); err != nil {
		return domain.AdoptionRequestPage{}, err
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return domain.AdoptionRequestPage{}, err
	}
	return domain.AdoptionRequestPage{AdoptionRequests: items, Total: total, Skip: filter.Skip, Limit: filter.Limit}, nil
}

// UpdateRequest altera status e contato. Um patch vazio devolve o registro atual.
func (s *Service) UpdateRequest(ctx context.Context, id int64, patch domain.AdoptionRequestUpdate) (domain.AdoptionRequest, error) {
	if patch.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*patch.Email))
		patch.Email = &email
	}
	if patch.FullName != nil {
		name := strings.TrimSpace(*patch.FullName)
		patch.FullName = &name
	}
	if err := validation.Validate(patch); err != nil {
		return domain.AdoptionRequest{}, err
	}
	if patch.IsEmpty() {
		return s.GetRequest(ctx, id)
	}
	if id <= 0 {
		return domain.AdoptionRequest{}, apperror.NewNotFoundError("Solicitação de adoção não encontrada")
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *Service) DeleteRequest(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperror.NewNotFoundError("Solicitação de adoção não encontrada")
	}
	return s.repo.Delete(ctx, id)
}
