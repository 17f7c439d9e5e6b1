package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMarkReadSetsReadAt(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMessageRepository(db)

	mock.ExpectExec("UPDATE `messages`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkRead(context.Background(), 7, 42)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkReadAlreadyReadIsIdempotent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMessageRepository(db)

	// The guarded update touches nothing, but the message exists for the
	// recipient, so re-marking succeeds without resetting read_at.
	mock.ExpectExec("UPDATE `messages`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))

	err := repo.MarkRead(context.Background(), 7, 42)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkReadUnknownMessage(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMessageRepository(db)

	mock.ExpectExec("UPDATE `messages`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	err := repo.MarkRead(context.Background(), 7, 99)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
