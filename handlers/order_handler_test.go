package handlers

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MateoDumas/ProntoClick-sub002/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Consuming a reward coupon at checkout must only touch the user_rewards
// row; the preloaded catalog reward is read, never written back.
func TestApplyCouponConsumesRewardCoupon(t *testing.T) {
	mock := setupMockDB(t)

	userID := uuid.New()
	rewardID := uuid.New()
	userRewardID := uuid.New()
	code := "PC-TESTCODE00"

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "user_rewards" WHERE user_id = \$1 AND coupon_code = \$2 AND used_at IS NULL(.|\n)*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "reward_id", "coupon_code", "used_at", "redeemed_at"}).
			AddRow(userRewardID, userID, rewardID, code, nil, time.Now()))
	mock.ExpectQuery(`SELECT \* FROM "rewards" WHERE "rewards"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "type", "discount", "is_active"}).
			AddRow(rewardID, "discount", 20, true))
	mock.ExpectExec(`UPDATE "user_rewards" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	var discount, fee float64
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		discount, fee, err = applyCoupon(tx, userID, code, "restaurant", 100, 5)
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, 20.0, discount)
	assert.Equal(t, 5.0, fee)
	require.NoError(t, mock.ExpectationsWereMet())
}
