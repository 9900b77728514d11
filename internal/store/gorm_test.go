package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func userColumns() []string {
	return []string{"id", "name", "email", "avatar", "password", "created_at", "updated_at"}
}

func TestGormUserStore_FindByEmail(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewGormUserStore(gdb)

	id := uuid.New()
	now := time.Now()
	rows := sqlmock.NewRows(userColumns()).
		AddRow(id.String(), "Jane", "jane@example.com", "http://a", "$2a$10$hash", now, now)
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).WillReturnRows(rows)

	user, err := s.FindByEmail("jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "Jane", user.Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserStore_FindByEmail_NotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewGormUserStore(gdb)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := s.FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserStore_FindByID_NotFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewGormUserStore(gdb)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := s.FindByID(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormProfileStore_DeleteWithUser_SingleTransaction(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewGormProfileStore(gdb)
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "profiles" WHERE user_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "users" WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, s.DeleteWithUser(userID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormProfileStore_DeleteWithUser_RollsBackOnError(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewGormProfileStore(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "profiles" WHERE user_id = \$1`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := s.DeleteWithUser(uuid.New())
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
