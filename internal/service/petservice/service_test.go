package petservice_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gopets/internal/domain"
	apperror "gopets/internal/errors"
	"gopets/internal/pkg/logger"
	"gopets/internal/service/petservice"
)

// MockPetRepository é uma implementação mock de domain.PetRepository.
type MockPetRepository struct {
	mock.Mock
}

func (m *MockPetRepository) Create(ctx context.Context, input domain.PetCreate) (domain.Pet, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Pet), args.Error(1)
}

func (m *MockPetRepository) FindByID(ctx context.Context, id int64) (domain.Pet, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Pet), args.Error(1)
}

func (m *MockPetRepository) List(ctx context.Context, filter domain.PetFilter) ([]domain.Pet, int, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Pet), args.Int(1), args.Error(2)
}

func (m *MockPetRepository) Search(ctx context.Context, term string) ([]domain.Pet, error) {
	args := m.Called(ctx, term)
	return args.Get(0).([]domain.Pet), args.Error(1)
}

func (m *MockPetRepository) Stats(ctx context.Context) (domain.PetStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.PetStats), args.Error(1)
}

func (m *MockPetRepository) Cities(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPetRepository) AgeRange(ctx context.Context) (domain.AgeRange, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.AgeRange), args.Error(1)
}

func (m *MockPetRepository) Update(ctx context.Context, id int64, patch domain.PetUpdate) (domain.Pet, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Pet), args.Error(1)
}

func (m *MockPetRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPetRepository) AppendPhotos(ctx context.Context, id int64, photos []string) (domain.Pet, error) {
	args := m.Called(ctx, id, photos)
	return args.Get(0).(domain.Pet), args.Error(1)
}

func (m *MockPetRepository) Adopt(ctx context.Context, petID, userID int64) (domain.Pet, error) {
	args := m.Called(ctx, petID, userID)
	return args.Get(0).(domain.Pet), args.Error(1)
}

type memStorage struct {
	saved   map[string]string
	removed []string
	next    int
	failAt  int
}

func newMemStorage() *memStorage { return &memStorage{saved: map[string]string{}, failAt: -1} }

func (m *memStorage) Save(r io.Reader, ext string) (string, error) {
	if m.next == m.failAt {
		return "", errors.New("disco cheio")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.next++
	name := strings.Repeat("f", m.next) + ext
	m.saved[name] = string(data)
	return name, nil
}

func (m *memStorage) Remove(name string) error {
	delete(m.saved, name)
	m.removed = append(m.removed, name)
	return nil
}

func newService(repo *MockPetRepository, st *memStorage) *petservice.Service {
	return petservice.NewService(repo, st, 5*1024*1024, logger.NewNop())
}

func intPtr(v int) *int { return &v }

func upload(name, contentType, content string) petservice.PhotoUpload {
	return petservice.PhotoUpload{
		Filename:    name,
		ContentType: contentType,
		Size:        int64(len(content)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

// --- Criação ---

func TestCreatePet_Success(t *testing.T) {
	repo := new(MockPetRepository)
	svc := newService(repo, newMemStorage())

	input := domain.PetCreate{Name: "Luna", Species: domain.SpeciesDog, Age: intPtr(24), Gender: domain.GenderFemale}
	repo.On("Create", mock.Anything, input).
		Return(domain.Pet{ID: 1, Name: "Luna", Status: domain.PetStatusAvailable}, nil)

	pet, err := svc.CreatePet(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, domain.PetStatusAvailable, pet.Status)
	repo.AssertExpectations(t)
}

func TestCreatePet_InvalidPayloadListsAllFields(t *testing.T) {
	repo := new(MockPetRepository)
	svc := newService(repo, newMemStorage())

	_, err := svc.CreatePet(context.Background(), domain.PetCreate{
		Name: "", Species: "bird", Age: intPtr(301), Gender: "x",
	})

	require.Error(t, err)
	fields := apperror.FieldErrors(err)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "species")
	assert.Contains(t, fields, "age")
	assert.Contains(t, fields, "gender")
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreatePet_RejectsAdoptedStatus(t *testing.T) {
	repo := new(MockPetRepository)
	svc := newService(repo, newMemStorage())

	_, err := svc.CreatePet(context.Background(), domain.PetCreate{
		Name: "Luna", Species: domain.SpeciesCat, Age: intPtr(3), Gender: domain.GenderFemale,
		Status: domain.PetStatusAdopted,
	})

	assert.Contains(t, apperror.FieldErrors(err), "status")
}

// --- Listagem e busca ---

func TestListPets_MinAgeGreaterThanMaxAge(t *testing.T) {
	repo := new(MockPetRepository)
	svc := newService(repo, newMemStorage())

	_, err := svc.ListPets(context.Background(), domain.PetFilter{MinAge: intPtr(50), MaxAge: intPtr(10), Limit: 10})

	assert.Contains(t, apperror.FieldErrors(err), "min_age")
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestListPets_LimitOutOfRange(t *testing.T) {
	repo := new(MockPetRepository)
	svc := newService(repo, newMemStorage())

	_, err := svc.ListPets(context.Background(), domain.PetFilter{Limit: 101})
	assert.Contains(t, apperror.FieldErrors(err), "limit")

	_, err = svc.ListPets(context.Background(), domain.PetFilter{Limit: 10, Skip: -1})
	assert.Contains(t, apperror.FieldErrors(err), "skip")
}

func TestListPets_ReturnsPage(t *testing.T) {
	repo := new(MockPetRepository)
	svc := newService(repo, newMemStorage())
	filter := domain.PetFilter{Species: domain.SpeciesDog, Skip: 2, Limit: 2}

	repo.On("List", mock.Anything, filter).Return([]domain.Pet{{ID: 3}, {ID: 4}}, 9, nil)

	page, err := svc.ListPets(context.Background(), filter)

	require.NoError(t, err)
	assert.Equal(t, 9, page.Total)
	assert.Equal(t, 2, page.Skip)
	assert.Equal(t, 2, page.Limit)
	assert.Len(t, page.Pets, 2)
}

func TestSearchPets(t *testing.T) {
	repo := new(MockPetRepository)
	svc := newService(repo, newMemStorage())

	_, err := svc.SearchPets(context.Background(), "   ")
	assert.Contains(t, apperror.FieldErrors(err), "q")

	repo.On("Search", mock.Anything, "golden").Return([]domain.Pet{{ID: 1}}, nil)
	result, err := svc.SearchPets(context.Background(), " golden ")
	require.NoError(t, err)
	assert.Len(t, result.Pets, 1)
	assert.Equal(t, " golden ", result.Query)
}

func TestFilterOptions(t *testing.T) {
	repo := new(MockPetRepository)
	svc := newService(repo, newMemStorage())

	repo.On("Cities", mock.Anything).Return([]string{"Recife", "São Paulo"}, nil)
	repo.On("AgeRange", mock.Anything).Return(domain.AgeRange{Min: 2, Max: 120}, nil)

	opts, err := svc.FilterOptions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.Option{{Value: "dog", Label: "Cachorro"}, {Value: "cat", Label: "Gato"}}, opts.Species)
	assert.Len(t, opts.Genders, 2)
	assert.Len(t, opts.Statuses, 3)
	assert.Equal(t, []string{"Recife", "São Paulo"}, opts.Cities)
	assert.Equal(t, 120, opts.AgeRange.Max)
}

// --- Atualização ---

func TestUpdatePet_EmptyPatchReturnsCurrent(t *testing.T) {
	repo := new(MockPetRepository)
	svc := newService(repo, newMemStorage())

	repo.On("FindByID", mock.Anything, int64(5)).Return(domain.Pet{ID: 5, Name: "Bolt"}, nil)

	pet, err := svc.UpdatePet(context.Background(), 5, domain.PetUpdate{})

	require.NoError(t, err)
	assert.Equal(t, "Bolt", pet.Name)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePet_RejectsEmptyName(t *testing.T) {
	repo := new(MockPetRepository)
	svc := newService(repo, newMemStorage())
	empty := ""

	_, err := svc.UpdatePet(context.Background(), 5, domain.PetUpdate{Name: &empty})

	assert.Contains(t, apperror.FieldErrors(err), "name")
}

// --- Adoção ---

func TestAdoptPet(t *testing.T) {
	t.Run("sucesso", func(t *testing.T) {
		repo := new(MockPetRepository)
		svc := newService(repo, newMemStorage())
		by := int64(2)
		repo.On("Adopt", mock.Anything, int64(1), int64(2)).
			Return(domain.Pet{ID: 1, Status: domain.PetStatusAdopted, AdoptedBy: &by}, nil)

		pet, err := svc.AdoptPet(context.Background(), 1, domain.AdoptRequest{UserID: 2})

		require.NoError(t, err)
		assert.Equal(t, domain.PetStatusAdopted, pet.Status)
	})

	t.Run("conflito repassado", func(t *testing.T) {
		repo := new(MockPetRepository)
		svc := newService(repo, newMemStorage())
		repo.On("Adopt", mock.Anything, int64(1), int64(2)).
			Return(domain.Pet{}, apperror.NewConflictError("Pet não disponível"))

		_, err := svc.AdoptPet(context.Background(), 1, domain.AdoptRequest{UserID: 2})

		status, category, _ := apperror.MapToHTTPStatus(err)
		assert.Equal(t, 409, status)
		assert.Equal(t, "CONFLICT", category)
	})

	t.Run("user_id obrigatório", func(t *testing.T) {
		repo := new(MockPetRepository)
		svc := newService(repo, newMemStorage())

		_, err := svc.AdoptPet(context.Background(), 1, domain.AdoptRequest{})

		assert.Contains(t, apperror.FieldErrors(err), "user_id")
		repo.AssertNotCalled(t, "Adopt", mock.Anything, mock.Anything, mock.Anything)
	})
}

// --- Fotos ---

func TestAddPhotos_Success(t *testing.T) {
	repo := new(MockPetRepository)
	st := newMemStorage()
	svc := newService(repo, st)

	repo.On("FindByID", mock.Anything, int64(1)).Return(domain.Pet{ID: 1}, nil)
	repo.On("AppendPhotos", mock.Anything, int64(1), []string{"/uploads/f.jpg", "/uploads/ff.png"}).
		Return(domain.Pet{ID: 1, Photos: []string{"/uploads/f.jpg", "/uploads/ff.png"}}, nil)

	pet, err := svc.AddPhotos(context.Background(), 1, []petservice.PhotoUpload{
		upload("a.JPG", "image/jpeg", "jpg-bytes"),
		upload("b", "image/png", "png-bytes"),
	})

	require.NoError(t, err)
	assert.Len(t, pet.Photos, 2)
	assert.Equal(t, "jpg-bytes", st.saved["f.jpg"])
	repo.AssertExpectations(t)
}

func TestAddPhotos_PetMissingComesFirst(t *testing.T) {
	repo := new(MockPetRepository)
	st := newMemStorage()
	svc := newService(repo, st)

	repo.On("FindByID", mock.Anything, int64(9)).Return(domain.Pet{}, apperror.NewNotFoundError("Pet não encontrado"))

	_, err := svc.AddPhotos(context.Background(), 9, []petservice.PhotoUpload{upload("a.pdf", "application/pdf", "x")})

	assert.True(t, apperror.IsNotFound(err))
	assert.Empty(t, st.saved)
}

func TestAddPhotos_ValidatesAllBeforeWriting(t *testing.T) {
	repo := new(MockPetRepository)
	st := newMemStorage()
	svc := newService(repo, st)

	repo.On("FindByID", mock.Anything, int64(1)).Return(domain.Pet{ID: 1}, nil)
	big := upload("big.png", "image/png", "x")
	big.Size = 6 * 1024 * 1024

	_, err := svc.AddPhotos(context.Background(), 1, []petservice.PhotoUpload{
		upload("ok.png", "image/png", "x"),
		upload("doc.pdf", "application/pdf", "x"),
		big,
	})

	fields := apperror.FieldErrors(err)
	assert.Contains(t, fields, "files[1]")
	assert.Contains(t, fields, "files[2]")
	assert.NotContains(t, fields, "files[0]")
	assert.Empty(t, st.saved)
	repo.AssertNotCalled(t, "AppendPhotos", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddPhotos_RemovesFilesWhenDBFails(t *testing.T) {
	repo := new(MockPetRepository)
	st := newMemStorage()
	svc := newService(repo, st)

	repo.On("FindByID", mock.Anything, int64(1)).Return(domain.Pet{ID: 1}, nil)
	repo.On("AppendPhotos", mock.Anything, int64(1), mock.Anything).
		Return(domain.Pet{}, apperror.NewDBError("Falha ao anexar fotos", errors.New("timeout")))

	_, err := svc.AddPhotos(context.Background(), 1, []petservice.PhotoUpload{
		upload("a.png", "image/png", "1"),
		upload("b.png", "image/png", "2"),
	})

	assert.IsType(t, &apperror.InternalError{}, err)
	assert.Empty(t, st.saved)
	assert.ElementsMatch(t, []string{"f.png", "ff.png"}, st.removed)
}

func TestAddPhotos_RemovesFilesWhenStorageFails(t *testing.T) {
	repo := new(MockPetRepository)
	st := newMemStorage()
	st.failAt = 1
	svc := newService(repo, st)

	repo.On("FindByID", mock.Anything, int64(1)).Return(domain.Pet{ID: 1}, nil)

	_, err := svc.AddPhotos(context.Background(), 1, []petservice.PhotoUpload{
		upload("a.png", "image/png", "1"),
		upload("b.png", "image/png", "2"),
	})

	assert.IsType(t, &apperror.InternalError{}, err)
	assert.Equal(t, []string{"f.png"}, st.removed)
}
