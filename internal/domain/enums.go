package domain

// Species é a espécie do pet.
type Species string

const (
	SpeciesDog Species = "dog"
	SpeciesCat Species = "cat"
)

// Gender é o sexo do pet.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// PetStatus é a disponibilidade do pet para adoção.
type PetStatus string

const (
	PetStatusAvailable PetStatus = "available"
	PetStatusPending   PetStatus = "pending"
	PetStatusAdopted   PetStatus = "adopted"
)

// AdoptionStatus é o estado de uma solicitação de adoção.
type AdoptionStatus string

const (
	AdoptionStatusPending   AdoptionStatus = "pending"
	AdoptionStatusApproved  AdoptionStatus = "approved"
	AdoptionStatusRejected  AdoptionStatus = "rejected"
	AdoptionStatusCompleted AdoptionStatus = "completed"
)

// AllSpecies, AllGenders e AllPetStatuses fixam a ordem de exibição das opções de filtro.
var (
	AllSpecies     = []Species{SpeciesDog, SpeciesCat}
	AllGenders     = []Gender{GenderMale, GenderFemale}
	AllPetStatuses = []PetStatus{PetStatusAvailable, PetStatusPending, PetStatusAdopted}
)

// Label devolve o rótulo em português da espécie.
func (s Species) Label() string {
	switch s {
	case SpeciesDog:
		return "Cachorro"
	case SpeciesCat:
		return "Gato"
	}
	return string(s)
}

// Label devolve o rótulo em português do sexo.
func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "Macho"
	case GenderFemale:
		return "Fêmea"
	}
	return string(g)
}

// Label devolve o rótulo em português do status.
func (s PetStatus) Label() string {
	switch s {
	case PetStatusAvailable:
		return "Disponível"
	case PetStatusPending:
		return "Pendente"
	case PetStatusAdopted:
		return "Adotado"
	}
	return string(s)
}

// Option é um par valor/rótulo usado nas opções de filtro.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
