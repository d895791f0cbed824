package userrepo

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopets/internal/domain"
	apperror "gopets/internal/errors"
	"gopets/internal/pkg/logger"
)

var columns = []string{"id", "full_name", "email", "password_hash", "phone", "city", "created_at", "updated_at"}

func newTestRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewUserRepository(db, time.Second, logger.NewNop()), mock
}

func TestCreate_LowercasesEmail(t *testing.T) {
	repo, mock := newTestRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("Ana Souza", "ana@example.com", "hash", "", "Recife").
		WillReturnRows(sqlmock.NewRows(columns).AddRow(1, "Ana Souza", "ana@example.com", "hash", "", "Recife", now, now))

	user, err := repo.Create(context.Background(), domain.User{
		FullName: "Ana Souza", Email: "Ana@Example.com", PasswordHash: "hash", City: "Recife",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), domain.User{FullName: "Ana", Email: "ana@example.com"})

	var dup *apperror.DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "Email já existe", dup.Error())
}

func TestFindByEmail_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(email) = LOWER($1)")).
		WithArgs("x@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail(context.Background(), "x@example.com")

	assert.True(t, apperror.IsNotFound(err))
}

func TestList(t *testing.T) {
	repo, mock := newTestRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta("FROM users ORDER BY id ASC LIMIT $1 OFFSET $2")).
		WithArgs(2, 1).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(2, "B", "b@example.com", "", "", "", now, now).
			AddRow(3, "C", "c@example.com", "", "", "", now, now))

	users, total, err := repo.List(context.Background(), domain.UserFilter{Skip: 1, Limit: 2})

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, users, 2)
	assert.Equal(t, int64(2), users[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_OnlyPresentFields(t *testing.T) {
	repo, mock := newTestRepo(t)
	now := time.Now()
	city := "Natal"

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET city = $1, updated_at = now() WHERE id = $2")).
		WithArgs("Natal", int64(5)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(5, "Ana", "ana@example.com", "", "", "Natal", now, now))

	user, err := repo.Update(context.Background(), 5, domain.UserUpdate{City: &city})

	require.NoError(t, err)
	assert.Equal(t, "Natal", user.City)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	t.Run("adotante não pode ser removido", func(t *testing.T) {
		repo, mock := newTestRepo(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
			WithArgs(int64(2)).
			WillReturnError(&pq.Error{Code: "23503"})

		err := repo.Delete(context.Background(), 2)

		var conflict *apperror.ConflictError
		assert.ErrorAs(t, err, &conflict)
	})

	t.Run("não encontrado", func(t *testing.T) {
		repo, mock := newTestRepo(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
			WithArgs(int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.True(t, apperror.IsNotFound(repo.Delete(context.Background(), 2)))
	})
}
