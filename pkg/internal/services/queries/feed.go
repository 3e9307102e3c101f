package queries

import (
	"github.com/quillworks/quill/pkg/internal/models"
	"github.com/quillworks/quill/pkg/internal/services"
	"gorm.io/gorm"
)

// ListFeed returns articles authored by accounts the viewer follows,
// newest first. No viewer, or a viewer following nobody, yields an
// empty feed rather than an error.
func ListFeed(tx *gorm.DB, viewer *models.Account, limit *int, offset *int) ([]ArticleView, int64, error) {
	if err := (ArticleFilter{Limit: limit, Offset: offset}).validate(); err != nil {
		return nil, 0, err
	}

	if viewer == nil {
		return []ArticleView{}, 0, nil
	}

	followingIDs, err := services.ListFollowingIDs(tx, viewer.ID)
	if err != nil {
		return nil, 0, err
	}
	if len(followingIDs) == 0 {
		return []ArticleView{}, 0, nil
	}

	source := tx
	tx = tx.Model(&models.Article{}).Where("author_id IN ?", followingIDs)

	count, err := services.CountArticle(tx)
	if err != nil {
		return nil, 0, err
	}

	if limit != nil {
		tx = tx.Limit(*limit)
	}
	if offset != nil {
		tx = tx.Offset(*offset)
	}

	var articles []models.Article
	if err := tx.
		Preload("Author").
		Order("created_at DESC").
		Find(&articles).Error; err != nil {
		return nil, 0, err
	}

	views, err := RenderArticles(source, viewer, articles)
	if err != nil {
		return nil, 0, err
	}

	return views, count, nil
}
