package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"crewledger/internal/adapters/persistence/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return db, mock
}

func paymentFixture() (*models.PersonnelPayment, *models.Transaction) {
	date := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	payment := &models.PersonnelPayment{
		CompanyID:   1,
		PersonnelID: 5,
		Amount:      2500,
		Date:        date,
		Category:    "Payroll",
	}
	ledger := &models.Transaction{
		CompanyID: 1,
		UserID:    2,
		Type:      models.TxTypeExpense,
		Amount:    2500,
		Date:      date,
		Category:  "Payroll",
	}
	return payment, ledger
}

func TestCreateWithLedgerCommitsBothRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)
	payment, ledger := paymentFixture()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `transactions`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO `personnel_payments`").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectCommit()

	err := repo.CreateWithLedger(context.Background(), payment, ledger)
	require.NoError(t, err)

	// The payment row references the ledger row written in the same transaction
	assert.EqualValues(t, 7, ledger.ID)
	assert.EqualValues(t, 7, payment.TransactionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithLedgerRollsBackOnPaymentFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)
	payment, ledger := paymentFixture()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `transactions`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectExec("INSERT INTO `personnel_payments`").
		WillReturnError(errors.New("duplicate entry"))
	mock.ExpectRollback()

	err := repo.CreateWithLedger(context.Background(), payment, ledger)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateWithLedgerRollsBackOnLedgerFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)
	payment, ledger := paymentFixture()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `transactions`").
		WillReturnError(errors.New("connection lost"))
	mock.ExpectRollback()

	err := repo.CreateWithLedger(context.Background(), payment, ledger)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
