package domain

import "context"

// --- Contratos de persistência (implementados em internal/repository) ---

// PetRepository define o que a camada de Serviço pode pedir à persistência de pets.
type PetRepository interface {
	Create(ctx context.Context, input PetCreate) (Pet, error)
	FindByID(ctx context.Context, id int64) (Pet, error)
	List(ctx context.Context, filter PetFilter) ([]Pet, int, error)
	Search(ctx context.Context, term string) ([]Pet, error)
	Stats(ctx context.Context) (PetStats, error)
	Cities(ctx context.Context) ([]string, error)
	AgeRange(ctx context.Context) (AgeRange, error)
	Update(ctx context.Context, id int64, patch PetUpdate) (Pet, error)
	Delete(ctx context.Context, id int64) error
	AppendPhotos(ctx context.Context, id int64, photos []string) (Pet, error)
	// Adopt executa a transição available -> adopted em uma única transação.
	Adopt(ctx context.Context, petID, userID int64) (Pet, error)
}

// UserRepository define o contrato de persistência para a entidade User.
type UserRepository interface {
	Create(ctx context.Context, user User) (User, error)
	FindByID(ctx context.Context, id int64) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, filter UserFilter) ([]User, int, error)
	Update(ctx context.Context, id int64, patch UserUpdate) (User, error)
	Delete(ctx context.Context, id int64) error
}

// AdoptionRequestRepository define o contrato de persistência das solicitações.
type AdoptionRequestRepository interface {
	Create(ctx context.Context, req AdoptionRequest) (AdoptionRequest, error)
	FindByID(ctx context.Context, id int64) (AdoptionRequest, error)
	List(ctx context.Context, filter AdoptionRequestFilter) ([]AdoptionRequest, int, error)
	Update(ctx context.Context, id int64, patch AdoptionRequestUpdate) (AdoptionRequest, error)
	Delete(ctx context.Context, id int64) error
}
