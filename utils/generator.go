package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/MateoDumas/ProntoClick-sub002/models"
	"gorm.io/gorm"
)

const referralCodeLength = 8
const couponCodeLength = 10
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func randomCode(length int) string {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, length)
	for i := range b {
		b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
	}
	return string(b)
}

func GenerateUniqueReferralCode(tx *gorm.DB) (string, error) {
	for {
		code := randomCode(referralCodeLength)

		var user models.User
		err := tx.Where("referral_code = ?", code).First(&user).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return code, nil
			}
			return "", err
		}
	}
}

// GenerateCouponCode mints a coupon code for a redeemed reward. Codes are
// prefixed so support staff can tell reward coupons from promotion codes.
func GenerateCouponCode() string {
	return fmt.Sprintf("PC-%s", randomCode(couponCodeLength))
}
