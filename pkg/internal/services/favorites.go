package services

import (
	"github.com/quillworks/quill/pkg/internal/models"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FavoriteArticle adds the article to the account's favorites. The
// membership insert and the counter bump commit together; favoriting an
// already-favorited article changes nothing.
func FavoriteArticle(tx *gorm.DB, account models.Account, article models.Article) error {
	return tx.Transaction(func(tx *gorm.DB) error {
		relation := models.Favorite{
			AccountID: account.ID,
			ArticleID: article.ID,
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&relation)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		return tx.Model(&models.Article{}).
			Where("id = ?", article.ID).
			UpdateColumn("favorites_count", gorm.Expr("favorites_count + 1")).Error
	})
}

// UnfavoriteArticle is the inverse; removing a non-member leaves the
// counter alone, and the counter never drops below zero.
func UnfavoriteArticle(tx *gorm.DB, account models.Account, article models.Article) error {
	return tx.Transaction(func(tx *gorm.DB) error {
		res := tx.
			Where("account_id = ? AND article_id = ?", account.ID, article.ID).
			Delete(&models.Favorite{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		return tx.Model(&models.Article{}).
			Where("id = ? AND favorites_count > 0", article.ID).
			UpdateColumn("favorites_count", gorm.Expr("favorites_count - 1")).Error
	})
}

func IsFavorited(tx *gorm.DB, accountID uint, articleID uint) (bool, error) {
	var count int64
	if err := tx.Model(&models.Favorite{}).
		Where("account_id = ? AND article_id = ?", accountID, articleID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListFavoritedIDs narrows the given article ids down to the ones the
// account has favorited. Used to batch-render favorited flags.
func ListFavoritedIDs(tx *gorm.DB, accountID uint, articleIDs []uint) ([]uint, error) {
	if len(articleIDs) == 0 {
		return nil, nil
	}

	var relations []models.Favorite
	if err := tx.
		Where("account_id = ? AND article_id IN ?", accountID, articleIDs).
		Find(&relations).Error; err != nil {
		return nil, err
	}
	return lo.Map(relations, func(item models.Favorite, _ int) uint {
		return item.ArticleID
	}), nil
}

func CountArticleFavorites(tx *gorm.DB, articleID uint) int64 {
	var count int64
	if err := tx.Model(&models.Favorite{}).
		Where("article_id = ?", articleID).
		Count(&count).Error; err != nil {
		return 0
	}

	return count
}
