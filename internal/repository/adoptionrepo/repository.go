package adoptionrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"gopets/internal/domain"
	apperror "gopets/internal/errors"
	"gopets/internal/pkg/logger"
)

const requestColumns = `id, pet_id, user_id, full_name, email, phone, status, created_at, updated_at`

const msgRequestNotFound = "Solicitação de adoção não encontrada"

// AdoptionRequestRepository implementa domain.AdoptionRequestRepository.
type AdoptionRequestRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

func NewAdoptionRequestRepository(db *sql.DB, dbTimeout time.Duration, log logger.Logger) *AdoptionRequestRepository {
	return &AdoptionRequestRepository{DB: db, DBTimeout: dbTimeout, logger: log}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRequest(row rowScanner) (domain.AdoptionRequest, error) {
	var a domain.AdoptionRequest
	err := row.Scan(&a.ID, &a.PetID, &a.UserID, &a.FullName, &a.Email, &a.Phone, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// Create grava a solicitação. Pet ou usuário removidos entre a checagem e o INSERT
// aparecem como violação de FK e viram 404.
func (r *AdoptionRequestRepository) Create(ctx context.Context, req domain.AdoptionRequest) (domain.AdoptionRequest, error) {
	r.logger.Debug("Iniciando Create de solicitação de adoção.", map[string]interface{}{"pet_id": req.PetID, "user_id": req.UserID})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	status := req.Status
	if status == "" {
		status = domain.AdoptionStatusPending
	}

	query := `INSERT INTO adoption_requests (pet_id, user_id, full_name, email, phone, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + requestColumns

	created, err := scanRequest(r.DB.QueryRowContext(ctxTimeout, query,
		req.PetID, req.UserID, req.FullName, req.Email, req.Phone, status,
	))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return domain.AdoptionRequest{}, apperror.NewNotFoundError("Pet ou usuário não encontrado")
		}
		r.logger.Error("Falha ao inserir solicitação de adoção.", err)
		return domain.AdoptionRequest{}, apperror.NewDBError("Falha ao criar solicitação de adoção", err)
	}

	r.logger.Info("Solicitação de adoção criada.", map[string]interface{}{"request_id": created.ID})
	return created, nil
}

func (r *AdoptionRequestRepository) FindByID(ctx context.Context, id int64) (domain.AdoptionRequest, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	req, err := scanRequest(r.DB.QueryRowContext(ctxTimeout,
		`SELECT `+requestColumns+` FROM adoption_requests WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.AdoptionRequest{}, apperror.NewNotFoundError(msgRequestNotFound)
		}
		r.logger.Error("Falha ao buscar solicitação de adoção.", err)
		return domain.AdoptionRequest{}, apperror.NewDBError("Falha ao buscar solicitação de adoção", err)
	}
	return req, nil
}

// List filtra por status, pet e usuário (valores zero são ignorados).
func (r *AdoptionRequestRepository) List(ctx context.Context, filter domain.AdoptionRequestFilter) ([]domain.AdoptionRequest, int, error) {
	var (
		conds []string
		args  []interface{}
	)
	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if filter.Status != "" {
		add("status = $%d", filter.Status)
	}
	if filter.PetID > 0 {
		add("pet_id = $%d", filter.PetID)
	}
	if filter.UserID > 0 {
		add("user_id = $%d", filter.UserID)
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(ctxTimeout, `SELECT COUNT(*) FROM adoption_requests`+where, args...).Scan(&total); err != nil {
		r.logger.Error("Falha ao contar solicitações de adoção.", err)
		return nil, 0, apperror.NewDBError("Falha ao listar solicitações de adoção", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM adoption_requests%s ORDER BY id ASC LIMIT $%d OFFSET $%d`,
		requestColumns, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Skip)

	rows, err := r.DB.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		r.logger.Error("Falha ao listar solicitações de adoção.", err)
		return nil, 0, apperror.NewDBError("Falha ao listar solicitações de adoção", err)
	}
	defer rows.Close()

	requests := make([]domain.AdoptionRequest, 0)
	for rows.Next() {
		a, err := scanRequest(rows)
		if err != nil {
			return nil, 0, apperror.NewDBError("Falha ao ler solicitações de adoção", err)
		}
		requests = append(requests, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperror.NewDBError("Falha ao ler solicitações de adoção", err)
	}

	return requests, total, nil
}

func (r *AdoptionRequestRepository) Update(ctx context.Context, id int64, patch domain.AdoptionRequestUpdate) (domain.AdoptionRequest, error) {
	var (
		sets []string
		args []interface{}
	)
	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Status != nil {
		set("status", *patch.Status)
	}
	if patch.FullName != nil {
		set("full_name", *patch.FullName)
	}
	if patch.Email != nil {
		set("email", *patch.Email)
	}
	if patch.Phone != nil {
		set("phone", *patch.Phone)
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE adoption_requests SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), requestColumns)

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	req, err := scanRequest(r.DB.QueryRowContext(ctxTimeout, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.AdoptionRequest{}, apperror.NewNotFoundError(msgRequestNotFound)
		}
		r.logger.Error("Falha ao atualizar solicitação de adoção.", err)
		return domain.AdoptionRequest{}, apperror.NewDBError("Falha ao atualizar solicitação de adoção", err)
	}

	r.logger.Info("Solicitação de adoção atualizada.", map[string]interface{}{"request_id": id})
	return req, nil
}

func (r *AdoptionRequestRepository) Delete(ctx context.Context, id int64) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM adoption_requests WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao remover solicitação de adoção.", err)
		return apperror.NewDBError("Falha ao remover solicitação de adoção", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperror.NewDBError("Falha ao verificar linhas afetadas", err)
	}
	if affected == 0 {
		return apperror.NewNotFoundError(msgRequestNotFound)
	}
	return nil
}
