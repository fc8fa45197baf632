package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MateoDumas/ProntoClick-sub002/database"
	"github.com/MateoDumas/ProntoClick-sub002/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func referralRows(id, referrerID, referredID uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "referrer_id", "referred_user_id", "status", "reward_points", "completed_at", "rewarded_at"}).
		AddRow(id, referrerID, referredID, "pending", ReferralRewardPoints, nil, nil)
}

// expectReferralCredit covers the crediting sequence: the referrer row is
// locked and updated, a ledger entry is appended and the referral row is
// stamped. Only these statements may run; a stray write fails the test.
func expectReferralCredit(mock sqlmock.Sqlmock, referrerID uuid.UUID) {
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1(.|\n)*FOR UPDATE`).
		WithArgs(referrerID, 1).
		WillReturnRows(userRows(referrerID, 0))
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "point_transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))
	mock.ExpectExec(`UPDATE "referrals" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
}

func TestApplyReferralCodeUnknownCode(t *testing.T) {
	db, mock := newMockDB(t)
	newUser := &models.User{ID: uuid.New()}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE referral_code = \$1 AND is_active = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	err := db.Transaction(func(tx *gorm.DB) error {
		return ApplyReferralCode(tx, newUser, "NOSUCHCODE")
	})

	// The typed failure rolls everything back; no Referral row is written.
	assert.ErrorIs(t, err, ErrInvalidReferralCode)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteReferralCreditsOnce(t *testing.T) {
	t.Setenv("REFERRAL_COMPLETION_POLICY", "any_order")

	db, mock := newMockDB(t)
	database.DB = db

	referredID := uuid.New()
	referrerID := uuid.New()
	referralID := uuid.New()

	// First delivery: the pending referral is found, the referrer is
	// credited and the referral is stamped completed.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "referrals" WHERE referred_user_id = \$1 AND status = \$2 AND rewarded_at IS NULL(.|\n)*FOR UPDATE`).
		WillReturnRows(referralRows(referralID, referrerID, referredID))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = \$1`).
		WillReturnRows(userRows(referrerID, 0))
	expectReferralCredit(mock, referrerID)
	mock.ExpectCommit()

	CompleteReferralIfApplicable(referredID)
	require.NoError(t, mock.ExpectationsWereMet())

	// Retried delivery: rewarded_at is no longer null, so the query finds
	// nothing and no second credit is issued.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "referrals" WHERE referred_user_id = \$1 AND status = \$2 AND rewarded_at IS NULL(.|\n)*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectCommit()

	CompleteReferralIfApplicable(referredID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteReferralFirstOrderLaterDelivery(t *testing.T) {
	t.Setenv("REFERRAL_COMPLETION_POLICY", "first_order")

	db, mock := newMockDB(t)
	database.DB = db

	referredID := uuid.New()
	referrerID := uuid.New()
	referralID := uuid.New()

	// The referral is still pending on the user's second delivery, so the
	// credit happens now instead of being lost with the first order.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "referrals" WHERE referred_user_id = \$1 AND status = \$2 AND rewarded_at IS NULL(.|\n)*FOR UPDATE`).
		WillReturnRows(referralRows(referralID, referrerID, referredID))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = \$1`).
		WillReturnRows(userRows(referrerID, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "orders" WHERE user_id = \$1 AND status = \$2`).
		WithArgs(referredID, models.OrderStatusDelivered).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	expectReferralCredit(mock, referrerID)
	mock.ExpectCommit()

	CompleteReferralIfApplicable(referredID)
	require.NoError(t, mock.ExpectationsWereMet())
}
