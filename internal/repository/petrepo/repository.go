package petrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"

	"gopets/internal/domain"
	apperror "gopets/internal/errors"
	"gopets/internal/pkg/cache"
	"gopets/internal/pkg/logger"
)

const petColumns = `id, name, species, breed, age, gender, city, description, photos, status,
	created_at, updated_at, adopted_at, adopted_by`

const msgPetNotFound = "Pet não encontrado"

// PetRepository implementa domain.PetRepository sobre PostgreSQL, com cache-aside por id.
type PetRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	Cache     cache.Client
	CacheTTL  time.Duration
	logger    logger.Logger
}

// NewPetRepository cria o repositório. cacheClient nil equivale a cache desligado.
func NewPetRepository(db *sql.DB, dbTimeout time.Duration, cacheClient cache.Client, cacheTTL time.Duration, log logger.Logger) *PetRepository {
	if cacheClient == nil {
		cacheClient = cache.NopClient{}
	}
	return &PetRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		Cache:     cacheClient,
		CacheTTL:  cacheTTL,
		logger:    log,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPet(row rowScanner) (domain.Pet, error) {
	var (
		p         domain.Pet
		photos    []string
		adoptedAt sql.NullTime
		adoptedBy sql.NullInt64
	)
	err := row.Scan(
		&p.ID, &p.Name, &p.Species, &p.Breed, &p.Age, &p.Gender, &p.City, &p.Description,
		pq.Array(&photos), &p.Status, &p.CreatedAt, &p.UpdatedAt, &adoptedAt, &adoptedBy,
	)
	if err != nil {
		return domain.Pet{}, err
	}

	if photos == nil {
		photos = []string{}
	}
	p.Photos = photos
	if adoptedAt.Valid {
		t := adoptedAt.Time
		p.AdoptedAt = &t
	}
	if adoptedBy.Valid {
		id := adoptedBy.Int64
		p.AdoptedBy = &id
	}
	p.AgeDisplay = domain.FormatAge(p.Age)
	return p, nil
}

func cacheKey(id int64) string {
	return "pet:" + strconv.FormatInt(id, 10)
}

func (r *PetRepository) invalidate(ctx context.Context, id int64) {
	if err := r.Cache.Delete(ctx, cacheKey(id)); err != nil {
		r.logger.Warn("Falha ao invalidar cache do pet.", map[string]interface{}{"pet_id": id, "error": err.Error()})
	}
}

// escapeLike protege os curingas do LIKE para que o termo seja tratado literalmente.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// Create insere um pet; status vazio vira available.
func (r *PetRepository) Create(ctx context.Context, input domain.PetCreate) (domain.Pet, error) {
	r.logger.Debug("Iniciando Create de pet no repositório.", map[string]interface{}{"name": input.Name})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	status := input.Status
	if status == "" {
		status = domain.PetStatusAvailable
	}
	photos := input.Photos
	if photos == nil {
		photos = []string{}
	}
	age := 0
	if input.Age != nil {
		age = *input.Age
	}

	query := `INSERT INTO pets (name, species, breed, age, gender, city, description, photos, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + petColumns

	pet, err := scanPet(r.DB.QueryRowContext(ctxTimeout, query,
		input.Name, input.Species, input.Breed, age, input.Gender, input.City, input.Description,
		pq.Array(photos), status,
	))
	if err != nil {
		r.logger.Error("Falha ao inserir pet no DB.", err)
		return domain.Pet{}, apperror.NewDBError("Falha ao criar pet", err)
	}

	r.logger.Info("Pet criado com sucesso no repositório.", map[string]interface{}{"pet_id": pet.ID})
	return pet, nil
}

// FindByID consulta o cache antes do banco. Falhas de cache são apenas registradas.
func (r *PetRepository) FindByID(ctx context.Context, id int64) (domain.Pet, error) {
	r.logger.Debug("Iniciando FindByID de pet no repositório.", map[string]interface{}{"pet_id": id})

	if cached, err := r.Cache.Get(ctx, cacheKey(id)); err == nil {
		var pet domain.Pet
		if jsonErr := json.Unmarshal([]byte(cached), &pet); jsonErr == nil {
			return pet, nil
		}
		r.invalidate(ctx, id)
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		r.logger.Warn("Falha ao consultar cache do pet.", map[string]interface{}{"pet_id": id, "error": err.Error()})
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT ` + petColumns + ` FROM pets WHERE id = $1`
	pet, err := scanPet(r.DB.QueryRowContext(ctxTimeout, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Pet{}, apperror.NewNotFoundError(msgPetNotFound)
		}
		r.logger.Error("Falha ao buscar pet por ID no DB.", err)
		return domain.Pet{}, apperror.NewDBError("Falha ao buscar pet", err)
	}

	if data, jsonErr := json.Marshal(pet); jsonErr == nil {
		if err := r.Cache.Set(ctx, cacheKey(id), data, r.CacheTTL); err != nil {
			r.logger.Warn("Falha ao gravar pet no cache.", map[string]interface{}{"pet_id": id, "error": err.Error()})
		}
	}

	return pet, nil
}

// buildWhere monta a conjunção dos filtros presentes. Os placeholders começam em $1.
func buildWhere(f domain.PetFilter) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)
	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.Species != "" {
		add("species = $%d", f.Species)
	}
	if f.Gender != "" {
		add("gender = $%d", f.Gender)
	}
	if city := strings.TrimSpace(f.City); city != "" {
		add(`city ILIKE $%d ESCAPE '\'`, "%"+escapeLike(city)+"%")
	}
	if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if f.MinAge != nil {
		add("age >= $%d", *f.MinAge)
	}
	if f.MaxAge != nil {
		add("age <= $%d", *f.MaxAge)
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// List devolve a página pedida e o total que satisfaz os mesmos filtros.
func (r *PetRepository) List(ctx context.Context, filter domain.PetFilter) ([]domain.Pet, int, error) {
	r.logger.Debug("Iniciando List de pets no repositório.", map[string]interface{}{"skip": filter.Skip, "limit": filter.Limit})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	where, args := buildWhere(filter)

	var total int
	if err := r.DB.QueryRowContext(ctxTimeout, `SELECT COUNT(*) FROM pets`+where, args...).Scan(&total); err != nil {
		r.logger.Error("Falha ao contar pets no DB.", err)
		return nil, 0, apperror.NewDBError("Falha ao listar pets", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM pets%s ORDER BY id ASC LIMIT $%d OFFSET $%d`,
		petColumns, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Skip)

	pets, err := r.queryPets(ctxTimeout, query, args...)
	if err != nil {
		return nil, 0, err
	}

	r.logger.Info("Pets listados com sucesso.", map[string]interface{}{"count": len(pets), "total": total})
	return pets, total, nil
}

// Search procura o termo (sem diferenciar maiúsculas) em nome, raça e cidade.
func (r *PetRepository) Search(ctx context.Context, term string) ([]domain.Pet, error) {
	r.logger.Debug("Iniciando Search de pets no repositório.", map[string]interface{}{"term": term})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT ` + petColumns + ` FROM pets
		WHERE name ILIKE $1 ESCAPE '\' OR breed ILIKE $1 ESCAPE '\' OR city ILIKE $1 ESCAPE '\'
		ORDER BY id ASC LIMIT $2`

	return r.queryPets(ctxTimeout, query, "%"+escapeLike(term)+"%", domain.MaxPageSize)
}

func (r *PetRepository) queryPets(ctx context.Context, query string, args ...interface{}) ([]domain.Pet, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Falha ao consultar pets no DB.", err)
		return nil, apperror.NewDBError("Falha ao consultar pets", err)
	}
	defer rows.Close()

	pets := make([]domain.Pet, 0)
	for rows.Next() {
		pet, err := scanPet(rows)
		if err != nil {
			r.logger.Error("Falha ao ler linha de pet.", err)
			return nil, apperror.NewDBError("Falha ao ler pets", err)
		}
		pets = append(pets, pet)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Erro durante a iteração de pets.", err)
		return nil, apperror.NewDBError("Falha ao ler pets", err)
	}
	return pets, nil
}

// Stats agrega as contagens em uma única consulta.
func (r *PetRepository) Stats(ctx context.Context) (domain.PetStats, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT
		COUNT(*),
		COUNT(*) FILTER (WHERE status = 'available'),
		COUNT(*) FILTER (WHERE status = 'pending'),
		COUNT(*) FILTER (WHERE status = 'adopted'),
		COUNT(*) FILTER (WHERE species = 'dog'),
		COUNT(*) FILTER (WHERE species = 'cat')
	FROM pets`

	var s domain.PetStats
	err := r.DB.QueryRowContext(ctxTimeout, query).Scan(
		&s.Total, &s.Available, &s.Pending, &s.Adopted, &s.Dogs, &s.Cats,
	)
	if err != nil {
		r.logger.Error("Falha ao calcular estatísticas de pets.", err)
		return domain.PetStats{}, apperror.NewDBError("Falha ao calcular estatísticas", err)
	}
	return s, nil
}

// Cities lista as cidades distintas e não vazias, em ordem alfabética.
func (r *PetRepository) Cities(ctx context.Context) ([]string, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, `SELECT DISTINCT city FROM pets WHERE city <> '' ORDER BY city`)
	if err != nil {
		r.logger.Error("Falha ao listar cidades.", err)
		return nil, apperror.NewDBError("Falha ao listar cidades", err)
	}
	defer rows.Close()

	cities := make([]string, 0)
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, apperror.NewDBError("Falha ao ler cidades", err)
		}
		cities = append(cities, city)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("Falha ao ler cidades", err)
	}
	return cities, nil
}

// AgeRange devolve a menor e a maior idade cadastradas (0/0 sem pets).
func (r *PetRepository) AgeRange(ctx context.Context) (domain.AgeRange, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var ar domain.AgeRange
	err := r.DB.QueryRowContext(ctxTimeout, `SELECT COALESCE(MIN(age), 0), COALESCE(MAX(age), 0) FROM pets`).
		Scan(&ar.Min, &ar.Max)
	if err != nil {
		r.logger.Error("Falha ao calcular faixa de idade.", err)
		return domain.AgeRange{}, apperror.NewDBError("Falha ao calcular faixa de idade", err)
	}
	return ar, nil
}

// Update aplica apenas os campos presentes. Sair de "adopted" limpa adopted_at/adopted_by.
func (r *PetRepository) Update(ctx context.Context, id int64, patch domain.PetUpdate) (domain.Pet, error) {
	r.logger.Debug("Iniciando Update de pet no repositório.", map[string]interface{}{"pet_id": id})

	var (
		sets []string
		args []interface{}
	)
	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Species != nil {
		set("species", *patch.Species)
	}
	if patch.Breed != nil {
		set("breed", *patch.Breed)
	}
	if patch.Age != nil {
		set("age", *patch.Age)
	}
	if patch.Gender != nil {
		set("gender", *patch.Gender)
	}
	if patch.City != nil {
		set("city", *patch.City)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Status != nil {
		set("status", *patch.Status)
		sets = append(sets, "adopted_at = NULL", "adopted_by = NULL")
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE pets SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), petColumns)

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	pet, err := scanPet(r.DB.QueryRowContext(ctxTimeout, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Pet{}, apperror.NewNotFoundError(msgPetNotFound)
		}
		r.logger.Error("Falha ao atualizar pet no DB.", err)
		return domain.Pet{}, apperror.NewDBError("Falha ao atualizar pet", err)
	}

	r.invalidate(ctx, id)
	r.logger.Info("Pet atualizado com sucesso.", map[string]interface{}{"pet_id": id})
	return pet, nil
}

// Delete remove o pet; as solicitações de adoção associadas caem em cascata.
func (r *PetRepository) Delete(ctx context.Context, id int64) error {
	r.logger.Debug("Iniciando Delete de pet no repositório.", map[string]interface{}{"pet_id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return apperror.NewConflictError("Pet possui registros dependentes e não pode ser removido")
		}
		r.logger.Error("Falha ao remover pet no DB.", err)
		return apperror.NewDBError("Falha ao remover pet", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperror.NewDBError("Falha ao verificar linhas afetadas", err)
	}
	if affected == 0 {
		return apperror.NewNotFoundError(msgPetNotFound)
	}

	r.invalidate(ctx, id)
	r.logger.Info("Pet removido com sucesso.", map[string]interface{}{"pet_id": id})
	return nil
}

// AppendPhotos acrescenta os caminhos ao final da lista de fotos de forma atômica.
func (r *PetRepository) AppendPhotos(ctx context.Context, id int64, photos []string) (domain.Pet, error) {
	r.logger.Debug("Iniciando AppendPhotos no repositório.", map[string]interface{}{"pet_id": id, "count": len(photos)})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `UPDATE pets SET photos = photos || $1::text[], updated_at = now()
		WHERE id = $2 RETURNING ` + petColumns

	pet, err := scanPet(r.DB.QueryRowContext(ctxTimeout, query, pq.Array(photos), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Pet{}, apperror.NewNotFoundError(msgPetNotFound)
		}
		r.logger.Error("Falha ao anexar fotos ao pet.", err)
		return domain.Pet{}, apperror.NewDBError("Falha ao anexar fotos", err)
	}

	r.invalidate(ctx, id)
	return pet, nil
}

// Adopt executa a transição available -> adopted. O SELECT ... FOR UPDATE serializa
// tentativas concorrentes: só a primeira encontra o pet disponível.
func (r *PetRepository) Adopt(ctx context.Context, petID, userID int64) (domain.Pet, error) {
	r.logger.Debug("Iniciando adoção no repositório.", map[string]interface{}{"pet_id": petID, "user_id": userID})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	tx, err := r.DB.BeginTx(ctxTimeout, nil)
	if err != nil {
		r.logger.Error("Falha ao iniciar transação de adoção.", err)
		return domain.Pet{}, apperror.NewDBError("Falha ao iniciar transação", err)
	}
	defer tx.Rollback()

	var status domain.PetStatus
	err = tx.QueryRowContext(ctxTimeout, `SELECT status FROM pets WHERE id = $1 FOR UPDATE`, petID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Pet{}, apperror.NewNotFoundError(msgPetNotFound)
	}
	if err != nil {
		r.logger.Error("Falha ao bloquear pet para adoção.", err)
		return domain.Pet{}, apperror.NewDBError("Falha ao buscar pet para adoção", err)
	}

	if status != domain.PetStatusAvailable {
		r.logger.Warn("Tentativa de adotar pet indisponível.", map[string]interface{}{"pet_id": petID, "status": string(status)})
		return domain.Pet{}, apperror.NewConflictError("Pet não disponível")
	}

	var found int64
	err = tx.QueryRowContext(ctxTimeout, `SELECT id FROM users WHERE id = $1 FOR KEY SHARE`, userID).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Pet{}, apperror.NewNotFoundError("Usuário não encontrado")
	}
	if err != nil {
		r.logger.Error("Falha ao buscar adotante.", err)
		return domain.Pet{}, apperror.NewDBError("Falha ao buscar usuário", err)
	}

	query := `UPDATE pets SET status = 'adopted', adopted_by = $1, adopted_at = now(), updated_at = now()
		WHERE id = $2 RETURNING ` + petColumns

	pet, err := scanPet(tx.QueryRowContext(ctxTimeout, query, userID, petID))
	if err != nil {
		r.logger.Error("Falha ao registrar adoção.", err)
		return domain.Pet{}, apperror.NewDBError("Falha ao registrar adoção", err)
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Falha ao commitar transação de adoção.", err)
		return domain.Pet{}, apperror.NewDBError("Falha ao commitar transação", err)
	}

	r.invalidate(ctx, petID)
	r.logger.Info("Pet adotado com sucesso.", map[string]interface{}{"pet_id": petID, "user_id": userID})
	return pet, nil
}

// Count informa quantos pets existem; usado pelo seed de dados de demonstração.
func (r *PetRepository) Count(ctx context.Context) (int, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var n int
	if err := r.DB.QueryRowContext(ctxTimeout, `SELECT COUNT(*) FROM pets`).Scan(&n); err != nil {
		return 0, apperror.NewDBError("Falha ao contar pets", err)
	}
	return n, nil
}
