package petservice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopets/internal/domain"
	apperror "gopets/internal/errors"
	"gopets/internal/pkg/logger"
	"gopets/internal/pkg/metrics"
	"gopets/internal/pkg/storage"
	"gopets/internal/pkg/validation"
)

// PhotoStorage é o contrato de armazenamento dos arquivos enviados.
type PhotoStorage interface {
	Save(r io.Reader, ext string) (string, error)
	Remove(name string) error
}

// PhotoUpload descreve um arquivo recebido. Open é chamado apenas depois que
// todos os arquivos da requisição passaram na validação.
type PhotoUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// UploadURLPrefix é o caminho público sob o qual as fotos são servidas.
const UploadURLPrefix = "/uploads/"

const maxSearchTermLength = 100

// Service concentra as regras de negócio de pets.
type Service struct {
	repo           domain.PetRepository
	photos         PhotoStorage
	maxUploadBytes int64
	logger         logger.Logger
}

// NewService cria o serviço de pets.
func NewService(repo domain.PetRepository, photos PhotoStorage, maxUploadBytes int64, log logger.Logger) *Service {
	return &Service{repo: repo, photos: photos, maxUploadBytes: maxUploadBytes, logger: log}
}

// CreatePet valida o payload e persiste o pet (status padrão available).
func (s *Service) CreatePet(ctx context.Context, input domain.PetCreate) (domain.Pet, error) {
	s.logger.Debug("Iniciando criação de pet no serviço.", map[string]interface{}{"name": input.Name})

	input.Name = strings.TrimSpace(input.Name)
	if err := validation.Validate(input); err != nil {
		return domain.Pet{}, err
	}

	return s.repo.Create(ctx, input)
}

// GetPet busca um pet pelo ID.
func (s *Service) GetPet(ctx context.Context, id int64) (domain.Pet, error) {
	if id <= 0 {
		return domain.Pet{}, apperror.NewNotFoundError("Pet não encontrado")
	}
	return s.repo.FindByID(ctx, id)
}

// ListPets aplica os filtros e devolve a página com o total.
func (s *Service) ListPets(ctx context.Context, filter domain.PetFilter) (domain.PetPage, error) {
	if err := validation.Validate(filter); err != nil {
		return domain.PetPage{}, err
	}
	if filter.MinAge != nil && filter.MaxAge != nil && *filter.MinAge > *filter.MaxAge {
		return domain.PetPage{}, apperror.NewFieldValidationError(map[string]string{
			"min_age": "deve ser menor ou igual a max_age",
		})
	}

	pets, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return domain.PetPage{}, err
	}

	return domain.PetPage{Pets: pets, Total: total, Skip: filter.Skip, Limit: filter.Limit}, nil
}

// SearchPets procura o termo em nome, raça e cidade.
func (s *Service) SearchPets(ctx context.Context, query string) (domain.PetSearchResult, error) {
	term := strings.TrimSpace(query)
	if term == "" {
		return domain.PetSearchResult{}, apperror.NewFieldValidationError(map[string]string{"q": "campo obrigatório"})
	}
	if len([]rune(term)) > maxSearchTermLength {
		return domain.PetSearchResult{}, apperror.NewFieldValidationError(map[string]string{
			"q": fmt.Sprintf("deve ter no máximo %d caracteres", maxSearchTermLength),
		})
	}

	pets, err := s.repo.Search(ctx, term)
	if err != nil {
		return domain.PetSearchResult{}, err
	}
	return domain.PetSearchResult{Pets: pets, Query: query}, nil
}

func (s *Service) Stats(ctx context.Context) (domain.PetStats, error) {
	return s.repo.Stats(ctx)
}

// FilterOptions reúne as enumerações com rótulos, as cidades cadastradas e a faixa de idade.
func (s *Service) FilterOptions(ctx context.Context) (domain.FilterOptions, error) {
	cities, err := s.repo.Cities(ctx)
	if err != nil {
		return domain.FilterOptions{}, err
	}
	ages, err := s.repo.AgeRange(ctx)
	if err != nil {
		return domain.FilterOptions{}, err
	}

	opts := domain.FilterOptions{Cities: cities, AgeRange: ages}
	for _, sp := range domain.AllSpecies {
		opts.Species = append(opts.Species, domain.Option{Value: string(sp), Label: sp.Label()})
	}
	for _, g := range domain.AllGenders {
		opts.Genders = append(opts.Genders, domain.Option{Value: string(g), Label: g.Label()})
	}
	for _, st := range domain.AllPetStatuses {
		opts.Statuses = append(opts.Statuses, domain.Option{Value: string(st), Label: st.Label()})
	}
	return opts, nil
}

// UpdatePet altera apenas os campos enviados. Um patch vazio devolve o pet atual.
func (s *Service) UpdatePet(ctx context.Context, id int64, patch domain.PetUpdate) (domain.Pet, error) {
	if err := validation.Validate(patch); err != nil {
		return domain.Pet{}, err
	}
	if id <= 0 {
		return domain.Pet{}, apperror.NewNotFoundError("Pet não encontrado")
	}
	if patch.IsEmpty() {
		return s.repo.FindByID(ctx, id)
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *Service) DeletePet(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperror.NewNotFoundError("Pet não encontrado")
	}
	return s.repo.Delete(ctx, id)
}

// AdoptPet marca o pet como adotado pelo usuário informado.
func (s *Service) AdoptPet(ctx context.Context, petID int64, req domain.AdoptRequest) (domain.Pet, error) {
	if err := validation.Validate(req); err != nil {
		return domain.Pet{}, err
	}

	pet, err := s.repo.Adopt(ctx, petID, req.UserID)
	metrics.ObserveAdoption(adoptionResult(err))
	if err != nil {
		return domain.Pet{}, err
	}

	s.logger.Info("Pet adotado.", map[string]interface{}{"pet_id": petID, "user_id": req.UserID})
	return pet, nil
}

func adoptionResult(err error) string {
	if err == nil {
		return "success"
	}
	var conflict *apperror.ConflictError
	switch {
	case apperror.IsNotFound(err):
		return "not_found"
	case errors.As(err, &conflict):
		return "conflict"
	}
	return "error"
}

// AddPhotos valida todos os arquivos, grava cada um e anexa os caminhos ao pet.
// Se a atualização no banco falhar, os arquivos já gravados são removidos.
func (s *Service) AddPhotos(ctx context.Context, petID int64, uploads []PhotoUpload) (domain.Pet, error) {
	if _, err := s.GetPet(ctx, petID); err != nil {
		return domain.Pet{}, err
	}

	if len(uploads) == 0 {
		return domain.Pet{}, apperror.NewFieldValidationError(map[string]string{"files": "campo obrigatório"})
	}

	fields := make(map[string]string)
	for i, up := range uploads {
		key := fmt.Sprintf("files[%d]", i)
		switch {
		case !storage.IsAllowedImage(up.ContentType):
			fields[key] = "tipo de arquivo não permitido; permitidos: jpeg, png, gif, webp"
		case up.Size > s.maxUploadBytes:
			fields[key] = fmt.Sprintf("arquivo excede o limite de %d MB", s.maxUploadBytes/(1024*1024))
		case up.Size == 0:
			fields[key] = "arquivo vazio"
		}
	}
	if len(fields) > 0 {
		return domain.Pet{}, apperror.NewFieldValidationError(fields)
	}

	saved := make([]string, 0, len(uploads))
	cleanup := func() {
		for _, name := range saved {
			if err := s.photos.Remove(name); err != nil {
				s.logger.Warn("Falha ao remover foto órfã.", map[string]interface{}{"file": name, "error": err.Error()})
			}
		}
	}

	for _, up := range uploads {
		name, err := s.savePhoto(up)
		if err != nil {
			cleanup()
			return domain.Pet{}, apperror.NewInternalError("Falha ao gravar foto.", err)
		}
		saved = append(saved, name)
	}

	paths := make([]string, len(saved))
	for i, name := range saved {
		paths[i] = UploadURLPrefix + name
	}

	pet, err := s.repo.AppendPhotos(ctx, petID, paths)
	if err != nil {
		cleanup()
		return domain.Pet{}, err
	}

	metrics.ObservePhotosUploaded(len(saved))
	s.logger.Info("Fotos anexadas ao pet.", map[string]interface{}{"pet_id": petID, "count": len(saved)})
	return pet, nil
}

func (s *Service) savePhoto(up PhotoUpload) (string, error) {
	rc, err := up.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	return s.photos.Save(io.LimitReader(rc, s.maxUploadBytes), storage.Extension(up.Filename, up.ContentType))
}
