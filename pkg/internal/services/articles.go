package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/quillworks/quill/pkg/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func FilterArticleWithTag(tx *gorm.DB, probe string) *gorm.DB {
	return tx.Where("CAST(tag_list AS TEXT) LIKE ?", "%"+probe+"%")
}

func FilterArticleWithAuthor(tx *gorm.DB, authorID uint) *gorm.DB {
	return tx.Where("author_id = ?", authorID)
}

func FilterArticleFavoritedBy(tx *gorm.DB, accountID uint) *gorm.DB {
	return tx.
		Joins("JOIN favorites ON favorites.article_id = articles.id").
		Where("favorites.account_id = ?", accountID)
}

func CountArticle(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Article{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func GetArticleBySlug(tx *gorm.DB, slug string) (models.Article, error) {
	var item models.Article
	if err := tx.
		Preload("Author").
		Where("slug = ?", slug).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item, notFound("article")
		}
		return item, err
	}

	return item, nil
}

// BuildArticleSlug derives a URL-safe slug from the title, suffixed with
// a short random discriminator when the plain form is already taken.
// The collision check runs unscoped: soft-deleted rows still hold the
// unique slug index.
func BuildArticleSlug(tx *gorm.DB, title string) (string, error) {
	candidate := slug.Make(title)

	var count int64
	if err := tx.Unscoped().Model(&models.Article{}).
		Where("slug = ?", candidate).
		Count(&count).Error; err != nil {
		return candidate, err
	}
	if count > 0 {
		candidate = fmt.Sprintf("%s-%s", candidate, uuid.NewString()[:8])
	}

	return candidate, nil
}

type ArticleDraft struct {
	Title       string
	Description string
	Body        string
	TagList     []string
}

func (d ArticleDraft) validate() error {
	var missing []string
	if len(d.Title) == 0 {
		missing = append(missing, "title")
	}
	if len(d.Description) == 0 {
		missing = append(missing, "description")
	}
	if len(d.Body) == 0 {
		missing = append(missing, "body")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// NewArticle persists a new article for the given author and reconciles
// the tag vocabulary with the draft's tag list. The article row and any
// new tag rows land in one transaction; an abort leaves neither behind.
func NewArticle(tx *gorm.DB, author models.Account, draft ArticleDraft) (models.Article, error) {
	var item models.Article
	if err := draft.validate(); err != nil {
		return item, err
	}

	articleSlug, err := BuildArticleSlug(tx, draft.Title)
	if err != nil {
		return item, err
	}

	tagList := NormalizeTagList(draft.TagList)

	item = models.Article{
		Slug:        articleSlug,
		Title:       draft.Title,
		Description: draft.Description,
		Body:        draft.Body,
		Language:    DetectLanguage(draft.Body),
		TagList:     datatypes.NewJSONSlice(tagList),
		AuthorID:    author.ID,
		Author:      author,
	}

	err = tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return fmt.Errorf("unable to save article: %w", err)
		}
		return EnsureTags(tx, tagList)
	})

	return item, err
}

type ArticlePatch struct {
	Title       *string
	Description *string
	Body        *string
	TagList     []string
}

// EditArticle applies an overwrite-merge of the patch onto the article
// addressed by slug. The slug itself is never re-derived; it identifies
// the article for its lifetime.
func EditArticle(tx *gorm.DB, slug string, patch ArticlePatch) (models.Article, error) {
	item, err := GetArticleBySlug(tx, slug)
	if err != nil {
		return item, err
	}

	if patch.Title != nil {
		item.Title = *patch.Title
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Body != nil {
		item.Body = *patch.Body
		item.Language = DetectLanguage(item.Body)
	}
	var tagList []string
	if patch.TagList != nil {
		tagList = NormalizeTagList(patch.TagList)
		item.TagList = datatypes.NewJSONSlice(tagList)
	}

	err = tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&item).Error; err != nil {
			return fmt.Errorf("unable to save article: %w", err)
		}
		return EnsureTags(tx, tagList)
	})

	return item, err
}

// DeleteArticleBySlug removes the article directly at the storage layer
// and reports the number of rows removed. Comment cleanup rides on the
// storage layer's cascade rule.
func DeleteArticleBySlug(tx *gorm.DB, slug string) (int64, error) {
	res := tx.Where("slug = ?", slug).Delete(&models.Article{})
	return res.RowsAffected, res.Error
}
