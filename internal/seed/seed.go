// Package seed popula um banco vazio com dados de demonstração.
package seed

import (
	"context"
	"fmt"

	"gopets/internal/domain"
	"gopets/internal/pkg/logger"
)

// PetStore é a parte do repositório de pets usada pela carga.
type PetStore interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, input domain.PetCreate) (domain.Pet, error)
}

// UserStore é a parte do repositório de usuários usada pela carga.
type UserStore interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
}

var cities = []string{
	"São Paulo", "Rio de Janeiro", "Belo Horizonte", "Salvador", "Brasília",
	"Fortaleza", "Manaus", "Curitiba", "Recife", "Porto Alegre",
}

var dogNames = []string{
	"Luna", "Max", "Bella", "Thor", "Lola", "Zeus", "Maya", "Apollo",
	"Nala", "Rocky", "Sofia", "Bruno", "Rex", "Mia", "Charlie",
}

var catNames = []string{
	"Mimi", "Simba", "Luna", "Felix", "Bella", "Garfield", "Nala", "Tom",
	"Maya", "Whiskers", "Sofia", "Shadow", "Lola", "Tiger", "Mia",
}

// Users devolve as contas de demonstração (sem senha, não fazem login).
func Users() []domain.User {
	return []domain.User{
		{FullName: "João Silva", Email: "joao@email.com", Phone: "11999999999", City: "São Paulo"},
		{FullName: "Maria Santos", Email: "maria@email.com", Phone: "21999999999", City: "Rio de Janeiro"},
	}
}

// Pets devolve os 30 pets de demonstração: 15 cães seguidos de 15 gatos.
func Pets() []domain.PetCreate {
	pets := make([]domain.PetCreate, 0, len(dogNames)+len(catNames))

	for i, name := range dogNames {
		gender := domain.GenderMale
		if i%2 == 0 {
			gender = domain.GenderFemale
		}
		pets = append(pets, domain.PetCreate{
			Name:        name,
			Species:     domain.SpeciesDog,
			Breed:       "Cachorro",
			Age:         intPtr(12 + i*2),
			Gender:      gender,
			City:        cities[i%len(cities)],
			Description: "Cachorro muito carinhoso e brincalhão",
		})
	}

	for i, name := range catNames {
		gender := domain.GenderFemale
		if i%2 == 0 {
			gender = domain.GenderMale
		}
		pets = append(pets, domain.PetCreate{
			Name:        name,
			Species:     domain.SpeciesCat,
			Breed:       "Gato",
			Age:         intPtr(8 + i*3/2),
			Gender:      gender,
			City:        cities[(i+5)%len(cities)],
			Description: "Gato muito dócil e independente",
		})
	}

	return pets
}

func intPtr(v int) *int { return &v }

// Run grava os dados de demonstração quando ainda não há pets cadastrados.
// Falhas individuais são registradas e a carga continua.
func Run(ctx context.Context, pets PetStore, users UserStore, log logger.Logger) error {
	n, err := pets.Count(ctx)
	if err != nil {
		return fmt.Errorf("falha ao contar pets: %w", err)
	}
	if n > 0 {
		log.Debug("Carga de demonstração ignorada: banco já possui pets.", map[string]interface{}{"pets": n})
		return nil
	}

	for _, u := range Users() {
		if _, err := users.Create(ctx, u); err != nil {
			log.Warn("Falha ao criar usuário de demonstração", map[string]interface{}{"email": u.Email, "error": err.Error()})
		}
	}

	created := 0
	for _, p := range Pets() {
		if _, err := pets.Create(ctx, p); err != nil {
			log.Warn("Falha ao criar pet de demonstração", map[string]interface{}{"name": p.Name, "error": err.Error()})
			continue
		}
		created++
	}

	log.Info("Dados de demonstração criados.", map[string]interface{}{"pets": created})
	return nil
}
