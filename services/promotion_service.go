package services

import (
	"errors"
	"time"

	"github.com/MateoDumas/ProntoClick-sub002/database"
	"github.com/MateoDumas/ProntoClick-sub002/models"
	"gorm.io/gorm"
)

var (
	ErrInvalidPromoCode   = errors.New("invalid promotion code")
	ErrPromoBelowMinOrder = errors.New("order subtotal below promotion minimum")
)

const FeaturedPromotionLimit = 5

// PromotionActiveAt reports whether a promotion is live at the given
// moment: the admin flag is on, the date window (when set) contains now,
// and the day-of-week restriction (when set) matches today.
func PromotionActiveAt(p models.Promotion, now time.Time) bool {
	if !p.IsActive {
		return false
	}
	if p.StartDate != nil && now.Before(*p.StartDate) {
		return false
	}
	if p.EndDate != nil && now.After(*p.EndDate) {
		return false
	}
	if p.DayOfWeek != nil && *p.DayOfWeek != int(now.Weekday()) {
		return false
	}
	return true
}

// ActivePromotions lists promotions live right now, optionally narrowed to
// a storefront category. Pure read-side computation; nothing is mutated to
// rotate promotions.
func ActivePromotions(now time.Time, category string) ([]models.Promotion, error) {
	query := database.DB.Where("is_active = ?", true).Order("created_at asc")
	if category != "" && category != models.PromotionCategoryAll {
		query = query.Where("category IN ?", []string{category, models.PromotionCategoryAll})
	}

	var candidates []models.Promotion
	if err := query.Find(&candidates).Error; err != nil {
		return nil, err
	}

	active := make([]models.Promotion, 0, len(candidates))
	for _, p := range candidates {
		if PromotionActiveAt(p, now) {
			active = append(active, p)
		}
	}
	return active, nil
}

// FeaturedPromotions is the active list truncated for the storefront
// banner. No priority field exists, so creation order is the tie-break.
func FeaturedPromotions(now time.Time, category string) ([]models.Promotion, error) {
	active, err := ActivePromotions(now, category)
	if err != nil {
		return nil, err
	}
	if len(active) > FeaturedPromotionLimit {
		active = active[:FeaturedPromotionLimit]
	}
	return active, nil
}

// ValidatePromoCode resolves a checkout code against the live promotion
// set and the order it is being applied to.
func ValidatePromoCode(code, category string, subtotal float64, now time.Time) (*models.Promotion, error) {
	var promo models.Promotion
	if err := database.DB.Where("code = ?", code).First(&promo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidPromoCode
		}
		return nil, err
	}

	if !PromotionActiveAt(promo, now) {
		return nil, ErrInvalidPromoCode
	}
	if promo.Category != models.PromotionCategoryAll && category != "" && promo.Category != category {
		return nil, ErrInvalidPromoCode
	}
	if subtotal < promo.MinOrder {
		return nil, ErrPromoBelowMinOrder
	}
	return &promo, nil
}

// PromotionDiscount computes the money value of a promotion for an order.
// Free delivery is handled by the caller since it offsets the delivery fee
// rather than the subtotal.
func PromotionDiscount(p models.Promotion, subtotal float64) float64 {
	switch {
	case p.DiscountPercent != nil:
		return subtotal * float64(*p.DiscountPercent) / 100
	case p.DiscountAmount != nil:
		if *p.DiscountAmount > subtotal {
			return subtotal
		}
		return *p.DiscountAmount
	default:
		return 0
	}
}
