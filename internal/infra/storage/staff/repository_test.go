package staff

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barber-booking/internal/domain"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepository_Create(t *testing.T) {
	t.Run("stores lowercased email", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO staff (email,password_hash,name) VALUES ($1,$2,$3) RETURNING id")).
			WithArgs("admin@barber.local", "hash", "Admin").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

		account, err := repo.Create(context.Background(), &domain.StaffAccount{
			Email:        " Admin@Barber.Local ",
			PasswordHash: "hash",
			Name:         "Admin",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), account.ID)
		assert.Equal(t, "admin@barber.local", account.Email)
	})

	t.Run("email taken", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectQuery(`INSERT INTO staff`).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "staff_email_key"})

		_, err := repo.Create(context.Background(), &domain.StaffAccount{Email: "a@b.c", PasswordHash: "h", Name: "Ana"})
		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestRepository_GetByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, name FROM staff WHERE email = $1")).
			WithArgs("admin@barber.local").
			WillReturnRows(sqlmock.NewRows(staffColumns).AddRow(int64(1), "admin@barber.local", "hash", "Admin"))

		account, err := repo.GetByEmail(context.Background(), "ADMIN@barber.local")
		require.NoError(t, err)
		assert.Equal(t, "Admin", account.Name)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectQuery(`FROM staff WHERE email`).
			WillReturnRows(sqlmock.NewRows(staffColumns))

		_, err := repo.GetByEmail(context.Background(), "nobody@barber.local")
		assert.ErrorIs(t, err, ErrStaffNotFound)
	})

	t.Run("storage down", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectQuery(`FROM staff WHERE email`).
			WillReturnError(errors.New("connection reset"))

		_, err := repo.GetByEmail(context.Background(), "a@b.c")
		assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
	})
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM staff WHERE id = $1")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(staffColumns).AddRow(int64(2), "b@barber.local", "hash", "Bruno"))

	account, err := repo.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "b@barber.local", account.Email)
}
