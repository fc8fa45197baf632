package services

import (
	"testing"
	"time"

	"github.com/MateoDumas/ProntoClick-sub002/models"
	"github.com/stretchr/testify/assert"
)

func TestPromotionActiveAt(t *testing.T) {
	// 2026-08-26 is a Wednesday (weekday 3).
	wednesday := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	thursday := wednesday.AddDate(0, 0, 1)

	dayOfWeek := func(d int) *int { return &d }
	at := func(v time.Time) *time.Time { return &v }

	t.Run("day-of-week promotion only on its day", func(t *testing.T) {
		promo := models.Promotion{IsActive: true, DayOfWeek: dayOfWeek(3)}

		assert.True(t, PromotionActiveAt(promo, wednesday))
		assert.False(t, PromotionActiveAt(promo, thursday))
	})

	t.Run("nil day-of-week means every day", func(t *testing.T) {
		promo := models.Promotion{IsActive: true}

		for i := 0; i < 7; i++ {
			assert.True(t, PromotionActiveAt(promo, wednesday.AddDate(0, 0, i)))
		}
	})

	t.Run("inactive flag wins", func(t *testing.T) {
		promo := models.Promotion{IsActive: false, DayOfWeek: dayOfWeek(3)}

		assert.False(t, PromotionActiveAt(promo, wednesday))
	})

	t.Run("date window bounds", func(t *testing.T) {
		promo := models.Promotion{
			IsActive:  true,
			StartDate: at(wednesday.AddDate(0, 0, -7)),
			EndDate:   at(wednesday.AddDate(0, 0, 7)),
		}

		assert.True(t, PromotionActiveAt(promo, wednesday))
		assert.False(t, PromotionActiveAt(promo, wednesday.AddDate(0, 0, -8)))
		assert.False(t, PromotionActiveAt(promo, wednesday.AddDate(0, 0, 8)))
	})

	t.Run("date window and day-of-week combine", func(t *testing.T) {
		promo := models.Promotion{
			IsActive:  true,
			DayOfWeek: dayOfWeek(3),
			StartDate: at(wednesday.AddDate(0, 0, -1)),
			EndDate:   at(wednesday.AddDate(0, 0, 1)),
		}

		assert.True(t, PromotionActiveAt(promo, wednesday))
		// Thursday is inside the window but on the wrong day.
		assert.False(t, PromotionActiveAt(promo, thursday))
	})
}

func TestPromotionDiscount(t *testing.T) {
	percent := 50
	amount := 20.0

	t.Run("percentage discount", func(t *testing.T) {
		promo := models.Promotion{DiscountPercent: &percent}
		assert.InDelta(t, 15.0, PromotionDiscount(promo, 30), 0.001)
	})

	t.Run("fixed amount capped at subtotal", func(t *testing.T) {
		promo := models.Promotion{DiscountAmount: &amount}
		assert.InDelta(t, 20.0, PromotionDiscount(promo, 30), 0.001)
		assert.InDelta(t, 10.0, PromotionDiscount(promo, 10), 0.001)
	})

	t.Run("free delivery has no subtotal discount", func(t *testing.T) {
		promo := models.Promotion{FreeDelivery: true}
		assert.Zero(t, PromotionDiscount(promo, 30))
	})
}
