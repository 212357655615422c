package gorm

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iqmath/iqmath-server/pkg/model"
	"github.com/iqmath/iqmath-server/pkg/server/store"
)

func userColumns() []string {
	return []string{"id", "email", "password_hash", "name", "role", "created_at", "updated_at"}
}

func TestUsersStoreByEmail(t *testing.T) {
	mockDB := newMockDB(t)
	users := NewUsersStore(mockDB.GormDB)

	now := time.Now()
	rows := sqlmock.NewRows(userColumns()).
		AddRow("u-1", "admin@iqmath.in", "$2a$12$hash", "Admin", "admin", now, now)

	mockDB.Mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("admin@iqmath.in").
		WillReturnRows(rows)

	user, err := users.ByEmail(" Admin@IQMath.in ")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "admin", user.Role)

	mockDB.verify(t)
}

func TestUsersStoreByEmailNotFound(t *testing.T) {
	mockDB := newMockDB(t)
	users := NewUsersStore(mockDB.GormDB)

	mockDB.Mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("nobody@iqmath.in").
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := users.ByEmail("nobody@iqmath.in")
	assert.ErrorIs(t, err, store.ErrNotFound)

	mockDB.verify(t)
}

func TestUsersStoreCreate(t *testing.T) {
	mockDB := newMockDB(t)
	users := NewUsersStore(mockDB.GormDB)

	mockDB.Mock.ExpectBegin()
	mockDB.Mock.ExpectExec(`INSERT INTO "users"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mockDB.Mock.ExpectCommit()

	user := &model.User{
		Email:        " New@IQMath.in ",
		PasswordHash: "$2a$12$hash",
		Name:         "New Editor",
	}
	err := users.Create(user)
	require.NoError(t, err)
	assert.Equal(t, "new@iqmath.in", user.Email)
	assert.Equal(t, model.RoleEditor, user.Role)
	assert.NotEmpty(t, user.ID)

	mockDB.verify(t)
}

func TestUsersStoreCreateDuplicateEmail(t *testing.T) {
	mockDB := newMockDB(t)
	users := NewUsersStore(mockDB.GormDB)

	mockDB.Mock.ExpectBegin()
	mockDB.Mock.ExpectExec(`INSERT INTO "users"`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
	mockDB.Mock.ExpectRollback()

	err := users.Create(&model.User{
		Email:        "admin@iqmath.in",
		PasswordHash: "$2a$12$hash",
		Name:         "Admin",
	})
	assert.ErrorIs(t, err, store.ErrDuplicateKey)

	mockDB.verify(t)
}

func TestUsersStoreUpdatePassword(t *testing.T) {
	mockDB := newMockDB(t)
	users := NewUsersStore(mockDB.GormDB)

	mockDB.Mock.ExpectBegin()
	mockDB.Mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mockDB.Mock.ExpectCommit()

	err := users.UpdatePassword("admin@iqmath.in", "$2a$12$newhash")
	require.NoError(t, err)

	mockDB.verify(t)
}

func TestUsersStoreUpdatePasswordNotFound(t *testing.T) {
	mockDB := newMockDB(t)
	users := NewUsersStore(mockDB.GormDB)

	mockDB.Mock.ExpectBegin()
	mockDB.Mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mockDB.Mock.ExpectCommit()

	err := users.UpdatePassword("nobody@iqmath.in", "$2a$12$newhash")
	assert.ErrorIs(t, err, store.ErrNotFound)

	mockDB.verify(t)
}

func TestUsersStoreCount(t *testing.T) {
	mockDB := newMockDB(t)
	users := NewUsersStore(mockDB.GormDB)

	mockDB.Mock.ExpectQuery(`SELECT count`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := users.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	mockDB.verify(t)
}
