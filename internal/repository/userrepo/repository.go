package userrepo

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

const userColumns = `id, full_name, email, password_hash, phone, city, created_at, updated_at`

const (
	msgUserNotFound   = "Usuário não encontrado"
	msgDuplicateEmail = "Email já existe"
)

// UserRepository implementa a interface domain.UserRepository
type UserRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewUserRepository cria uma nova instância do UserRepository, injetando o DB.
func NewUserRepository(db *sql.DB, dbTimeout time.Duration, log logger.Logger) *UserRepository {
	return &UserRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    log,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.Phone, &u.City, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// mapWriteError traduz violações de constraint do PostgreSQL.
func (r *UserRepository) mapWriteError(err error, msg string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return apperror.NewDuplicateError(msgDuplicateEmail)
		case "23503":
			return apperror.NewConflictError("Usuário possui pets adotados e não pode ser removido")
		}
	}
	r.logger.Error(msg, err)
	return apperror.NewDBError(msg, err)
}

// Create insere um novo usuário. O email é gravado em minúsculas.
func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	r.logger.Debug("Iniciando Create de usuário no repositório.", map[string]interface{}{"email": user.Email})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `INSERT INTO users (full_name, email, password_hash, phone, city)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns

	created, err := scanUser(r.DB.QueryRowContext(ctxTimeout, query,
		user.FullName, strings.ToLower(user.Email), user.PasswordHash, user.Phone, user.City,
	))
	if err != nil {
		return domain.User{}, r.mapWriteError(err, "Falha ao inserir usuário")
	}

	r.logger.Info("Usuário salvo com sucesso no repositório.", map[string]interface{}{"user_id": created.ID})
	return created, nil
}

// FindByID busca um usuário pelo ID.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	user, err := scanUser(r.DB.QueryRowContext(ctxTimeout, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, apperror.NewNotFoundError(msgUserNotFound)
		}
		r.logger.Error("Falha ao buscar usuário por ID no DB.", err)
		return domain.User{}, apperror.NewDBError("Falha ao buscar usuário", err)
	}
	return user, nil
}

// FindByEmail busca um usuário pelo endereço de e-mail, sem diferenciar maiúsculas.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	r.logger.Debug("Iniciando FindByEmail de usuário no repositório.", map[string]interface{}{"email_attempt": email})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`
	user, err := scanUser(r.DB.QueryRowContext(ctxTimeout, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, apperror.NewNotFoundError(msgUserNotFound)
		}
		r.logger.Error("Falha ao buscar usuário por email no DB.", err)
		return domain.User{}, apperror.NewDBError("Falha ao buscar usuário por email", err)
	}
	return user, nil
}

// List devolve a página de usuários em ordem de id e o total.
func (r *UserRepository) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, int, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var total int
	if err := r.DB.QueryRowContext(ctxTimeout, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		r.logger.Error("Falha ao contar usuários no DB.", err)
		return nil, 0, apperror.NewDBError("Falha ao listar usuários", err)
	}

	rows, err := r.DB.QueryContext(ctxTimeout,
		`SELECT `+userColumns+` FROM users ORDER BY id ASC LIMIT $1 OFFSET $2`, filter.Limit, filter.Skip)
	if err != nil {
		r.logger.Error("Falha ao listar usuários no DB.", err)
		return nil, 0, apperror.NewDBError("Falha ao listar usuários", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, apperror.NewDBError("Falha ao ler usuários", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperror.NewDBError("Falha ao ler usuários", err)
	}

	return users, total, nil
}

// Update altera apenas os campos de perfil enviados.
func (r *UserRepository) Update(ctx context.Context, id int64, patch domain.UserUpdate) (domain.User, error) {
	r.logger.Debug("Iniciando Update de usuário no repositório.", map[string]interface{}{"user_id": id})

	var (
		sets []string
		args []interface{}
	)
	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.FullName != nil {
		set("full_name", *patch.FullName)
	}
	if patch.Email != nil {
		set("email", strings.ToLower(*patch.Email))
	}
	if patch.Phone != nil {
		set("phone", *patch.Phone)
	}
	if patch.City != nil {
		set("city", *patch.City)
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), userColumns)

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	user, err := scanUser(r.DB.QueryRowContext(ctxTimeout, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, apperror.NewNotFoundError(msgUserNotFound)
		}
		return domain.User{}, r.mapWriteError(err, "Falha ao atualizar usuário")
	}

	r.logger.Info("Usuário atualizado com sucesso.", map[string]interface{}{"user_id": id})
	return user, nil
}

// Delete remove o usuário. Se ele for adotante de algum pet, a FK recusa a remoção.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return r.mapWriteError(err, "Falha ao remover usuário")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperror.NewDBError("Falha ao verificar linhas afetadas", err)
	}
	if affected == 0 {
		return apperror.NewNotFoundError(msgUserNotFound)
	}

	r.logger.Info("Usuário removido com sucesso.", map[string]interface{}{"user_id": id})
	return nil
}
