package services

import (
	"errors"
	"fmt"

	"github.com/quillworks/quill/pkg/internal/models"
	"gorm.io/gorm"
)

// NewComment attaches a comment to the article, authored by the given
// account, and persists it immediately.
func NewComment(tx *gorm.DB, author models.Account, article models.Article, body string) (models.Comment, error) {
	comment := models.Comment{
		Body:      body,
		AuthorID:  author.ID,
		Author:    author,
		ArticleID: article.ID,
	}

	if err := tx.Create(&comment).Error; err != nil {
		return comment, fmt.Errorf("unable to save comment: %w", err)
	}

	return comment, nil
}

// DeleteComment removes the comment when it belongs to the article's
// collection. A comment id that is unknown or attached to another
// article is tolerated as a stale request and left untouched; the
// returned flag reports whether anything was deleted.
func DeleteComment(tx *gorm.DB, article models.Article, commentID uint) (bool, error) {
	var comment models.Comment
	if err := tx.Where("id = ?", commentID).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if comment.ArticleID != article.ID {
		return false, nil
	}

	if err := tx.Delete(&comment).Error; err != nil {
		return false, fmt.Errorf("unable to delete comment: %w", err)
	}
	return true, nil
}

func ListComment(tx *gorm.DB, article models.Article) ([]models.Comment, error) {
	var comments []models.Comment
	if err := tx.
		Preload("Author").
		Where("article_id = ?", article.ID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		return comments, err
	}

	return comments, nil
}

func CountComment(tx *gorm.DB, articleID uint) int64 {
	var count int64
	if err := tx.Model(&models.Comment{}).
		Where("article_id = ?", articleID).
		Count(&count).Error; err != nil {
		return 0
	}

	return count
}
