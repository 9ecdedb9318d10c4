package repositories

import (
	"testing"

	"ecommerce-api/models"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositoryCreateAssignsID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("A", "X", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))

	email := "a@x.com"
	user := &models.User{Name: "A", Address: "X", Email: &email}

	repo := NewUserRepository(mock)
	require.NoError(t, repo.Create(user))
	assert.Equal(t, 7, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryFindByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	email := "a@x.com"
	mock.ExpectQuery("SELECT id, name, address, email FROM users").
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "address", "email"}).
			AddRow(1, "A", "X", &email))

	repo := NewUserRepository(mock)
	user, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, "A", user.Name)
	require.NotNil(t, user.Email)
	assert.Equal(t, "a@x.com", *user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryFindByIDNoRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT id, name, address, email FROM users").
		WithArgs(42).
		WillReturnError(pgx.ErrNoRows)

	repo := NewUserRepository(mock)
	_, err = repo.FindByID(42)
	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryDeleteMissingRow(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM users").
		WithArgs(42).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	repo := NewUserRepository(mock)
	assert.ErrorIs(t, repo.Delete(42), pgx.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("UPDATE users SET").
		WithArgs("B", "Y", pgxmock.AnyArg(), 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	repo := NewUserRepository(mock)
	err = repo.Update(&models.User{ID: 1, Name: "B", Address: "Y"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
