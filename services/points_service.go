package services

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/MateoDumas/ProntoClick-sub002/database"
	"github.com/MateoDumas/ProntoClick-sub002/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrInsufficientBalance = errors.New("insufficient point balance")

// CreditPoints adds points to a user and appends the matching ledger entry.
// It must be called inside an open transaction so the balance update and
// the ledger row commit or roll back together.
func CreditPoints(tx *gorm.DB, userID uuid.UUID, amount int, pointType, description string, orderID, rewardID *uuid.UUID) error {
	if amount <= 0 {
		return fmt.Errorf("credit amount must be positive, got %d", amount)
	}

	var user models.User
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, "id = ?", userID).Error; err != nil {
		return err
	}

	user.Points += amount
	if err := tx.Save(&user).Error; err != nil {
		return err
	}

	entry := models.PointTransaction{
		UserID:      userID,
		Points:      amount,
		Type:        pointType,
		Description: description,
		OrderID:     orderID,
		RewardID:    rewardID,
	}
	return tx.Create(&entry).Error
}

// DebitPoints removes points from a user. The row lock makes the balance
// check and the write a single atomic unit, so two concurrent debits for
// the same user cannot both observe the pre-debit balance.
func DebitPoints(tx *gorm.DB, userID uuid.UUID, amount int, pointType, description string, orderID, rewardID *uuid.UUID) error {
	if amount <= 0 {
		return fmt.Errorf("debit amount must be positive, got %d", amount)
	}

	var user models.User
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, "id = ?", userID).Error; err != nil {
		return err
	}

	if user.Points < amount {
		return ErrInsufficientBalance
	}

	user.Points -= amount
	if err := tx.Save(&user).Error; err != nil {
		return err
	}

	entry := models.PointTransaction{
		UserID:      userID,
		Points:      -amount,
		Type:        pointType,
		Description: description,
		OrderID:     orderID,
		RewardID:    rewardID,
	}
	return tx.Create(&entry).Error
}

// AwardOrderPoints credits one point per currency unit spent on a delivered
// order. Called from the order-delivered flow; awarding twice for the same
// order is prevented by checking the ledger for an existing entry.
func AwardOrderPoints(order *models.Order) {
	points := int(math.Floor(order.Total))
	if points <= 0 {
		return
	}

	err := database.WithRetry(func() error {
		return database.DB.Transaction(func(tx *gorm.DB) error {
			var existing int64
			if err := tx.Model(&models.PointTransaction{}).
				Where("order_id = ? AND type = ?", order.ID, models.PointTypeEarn).
				Count(&existing).Error; err != nil {
				return err
			}
			if existing > 0 {
				return nil
			}

			description := fmt.Sprintf("Points earned for order %s", order.ID)
			return CreditPoints(tx, order.UserID, points, models.PointTypeEarn, description, &order.ID, nil)
		})
	})

	if err != nil {
		log.Printf("🔥 Failed to award points for order %s: %v", order.ID, err)
	} else {
		log.Printf("✅ Awarded %d points to user %s for order %s.", points, order.UserID, order.ID)
	}
}
