package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MateoDumas/ProntoClick-sub002/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func userRows(id uuid.UUID, points int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "full_name", "email", "password", "role", "points", "pending_penalty", "referrals_count", "is_active"}).
		AddRow(id, "Test User", "test@example.com", "hash", "customer", points, 0, 0, true)
}

func TestCreditPoints(t *testing.T) {
	db, mock := newMockDB(t)
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1(.|\n)*FOR UPDATE`).
		WithArgs(userID, 1).
		WillReturnRows(userRows(userID, 50))
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "point_transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	err := db.Transaction(func(tx *gorm.DB) error {
		return CreditPoints(tx, userID, 100, models.PointTypeEarn, "Points earned for order", nil, nil)
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreditPointsRejectsNonPositiveAmount(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := db.Transaction(func(tx *gorm.DB) error {
		return CreditPoints(tx, uuid.New(), 0, models.PointTypeEarn, "", nil, nil)
	})

	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDebitPointsInsufficientBalance(t *testing.T) {
	db, mock := newMockDB(t)
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1(.|\n)*FOR UPDATE`).
		WithArgs(userID, 1).
		WillReturnRows(userRows(userID, 40))
	mock.ExpectRollback()

	err := db.Transaction(func(tx *gorm.DB) error {
		return DebitPoints(tx, userID, 100, models.PointTypeRedeem, "Redeemed reward", nil, nil)
	})

	assert.ErrorIs(t, err, ErrInsufficientBalance)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDebitPointsWritesLedgerAndBalanceTogether(t *testing.T) {
	db, mock := newMockDB(t)
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1(.|\n)*FOR UPDATE`).
		WithArgs(userID, 1).
		WillReturnRows(userRows(userID, 100))
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "point_transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectCommit()

	err := db.Transaction(func(tx *gorm.DB) error {
		return DebitPoints(tx, userID, 100, models.PointTypeRedeem, "Redeemed reward", nil, nil)
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
