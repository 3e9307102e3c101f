package services

import (
	"errors"
	"fmt"

	"github.com/quillworks/quill/pkg/internal/models"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func GetAccount(tx *gorm.DB, id uint) (models.Account, error) {
	var account models.Account
	if err := tx.Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account, notFound("account")
		}
		return account, err
	}
	return account, nil
}

func GetAccountByName(tx *gorm.DB, name string) (models.Account, error) {
	var account models.Account
	if err := tx.Where("name = ?", name).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account, notFound("account")
		}
		return account, err
	}
	return account, nil
}

func NewAccount(tx *gorm.DB, account models.Account) (models.Account, error) {
	if err := tx.Create(&account).Error; err != nil {
		return account, fmt.Errorf("unable to create account: %w", err)
	}
	return account, nil
}

// FollowAccount subscribes follower to target's articles. Following an
// account twice is a no-op.
func FollowAccount(tx *gorm.DB, follower models.Account, target models.Account) error {
	relation := models.Follow{
		FollowerID:  follower.ID,
		FollowingID: target.ID,
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&relation).Error
}

func UnfollowAccount(tx *gorm.DB, follower models.Account, target models.Account) error {
	return tx.
		Where("follower_id = ? AND following_id = ?", follower.ID, target.ID).
		Delete(&models.Follow{}).Error
}

func IsFollowing(tx *gorm.DB, follower uint, target uint) (bool, error) {
	var count int64
	if err := tx.Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", follower, target).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListFollowingIDs returns the ids of every account the given account
// follows.
func ListFollowingIDs(tx *gorm.DB, accountID uint) ([]uint, error) {
	var relations []models.Follow
	if err := tx.Where("follower_id = ?", accountID).Find(&relations).Error; err != nil {
		return nil, err
	}
	return lo.Map(relations, func(item models.Follow, _ int) uint {
		return item.FollowingID
	}), nil
}

func CountFollowers(tx *gorm.DB, accountID uint) (int64, error) {
	var count int64
	if err := tx.Model(&models.Follow{}).
		Where("following_id = ?", accountID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
