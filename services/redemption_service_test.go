package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MateoDumas/ProntoClick-sub002/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rewardRows(id uuid.UUID, pointsCost int, active bool, stock interface{}, redeemedCount int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "description", "points_cost", "type", "discount", "is_active", "stock", "redeemed_count"}).
		AddRow(id, "10% Off Your Order", "A discount coupon", pointsCost, "discount", 10, active, stock, redeemedCount)
}

func TestRedeemRewardInactive(t *testing.T) {
	db, mock := newMockDB(t)
	database.DB = db
	rewardID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "rewards" WHERE id = \$1(.|\n)*FOR UPDATE`).
		WithArgs(rewardID, 1).
		WillReturnRows(rewardRows(rewardID, 100, false, nil, 0))
	mock.ExpectRollback()

	_, err := RedeemReward(uuid.New(), rewardID)

	assert.ErrorIs(t, err, ErrRewardInactive)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedeemRewardOutOfStock(t *testing.T) {
	db, mock := newMockDB(t)
	database.DB = db
	rewardID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "rewards" WHERE id = \$1(.|\n)*FOR UPDATE`).
		WithArgs(rewardID, 1).
		WillReturnRows(rewardRows(rewardID, 100, true, 1, 1))
	mock.ExpectRollback()

	_, err := RedeemReward(uuid.New(), rewardID)

	assert.ErrorIs(t, err, ErrOutOfStock)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedeemRewardInsufficientBalance(t *testing.T) {
	db, mock := newMockDB(t)
	database.DB = db
	rewardID := uuid.New()
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "rewards" WHERE id = \$1(.|\n)*FOR UPDATE`).
		WithArgs(rewardID, 1).
		WillReturnRows(rewardRows(rewardID, 500, true, nil, 3))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1(.|\n)*FOR UPDATE`).
		WithArgs(userID, 1).
		WillReturnRows(userRows(userID, 499))
	mock.ExpectRollback()

	_, err := RedeemReward(userID, rewardID)

	assert.ErrorIs(t, err, ErrInsufficientBalance)
	require.NoError(t, mock.ExpectationsWereMet())
}

// A 500-point reward redeemed at a 600-point balance leaves 100 points, a
// minted coupon code and a -500 ledger entry, all in one transaction.
func TestRedeemRewardSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	database.DB = db
	rewardID := uuid.New()
	userID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "rewards" WHERE id = \$1(.|\n)*FOR UPDATE`).
		WithArgs(rewardID, 1).
		WillReturnRows(rewardRows(rewardID, 500, true, nil, 3))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1(.|\n)*FOR UPDATE`).
		WithArgs(userID, 1).
		WillReturnRows(userRows(userID, 600))
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "point_transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectExec(`UPDATE "rewards" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "user_rewards"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WithArgs(userID, 1).
		WillReturnRows(userRows(userID, 100))
	mock.ExpectCommit()

	result, err := RedeemReward(userID, rewardID)

	require.NoError(t, err)
	assert.Equal(t, 100, result.RemainingPoints)
	require.NotNil(t, result.UserReward.CouponCode)
	assert.Contains(t, *result.UserReward.CouponCode, "PC-")
	require.NoError(t, mock.ExpectationsWereMet())
}
