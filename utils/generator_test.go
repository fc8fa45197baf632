package utils

import (
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestGenerateCouponCode(t *testing.T) {
	code := GenerateCouponCode()

	assert.True(t, strings.HasPrefix(code, "PC-"))
	assert.Len(t, code, len("PC-")+couponCodeLength)

	for _, r := range strings.TrimPrefix(code, "PC-") {
		assert.Contains(t, letterBytes, string(r))
	}
}

func TestGenerateUniqueReferralCode(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	// No user owns the first candidate, so it is returned as-is.
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE referral_code = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	code, err := GenerateUniqueReferralCode(db)
	require.NoError(t, err)

	assert.Len(t, code, referralCodeLength)
	for _, r := range code {
		assert.Contains(t, letterBytes, string(r))
	}
	require.NoError(t, mock.ExpectationsWereMet())
}
