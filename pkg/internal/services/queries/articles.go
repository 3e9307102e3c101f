package queries

import (
	"errors"

	"github.com/quillworks/quill/pkg/internal/models"
	"github.com/quillworks/quill/pkg/internal/services"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// ProfileView is an account as seen by an optional viewer.
type ProfileView struct {
	models.Account
	Following bool `json:"following"`
}

// ArticleView is an article rendered for an optional viewer, with the
// personalized favorited/following flags every transport representation
// must carry.
type ArticleView struct {
	models.Article
	Favorited bool        `json:"favorited"`
	Author    ProfileView `json:"author"`
}

type CommentView struct {
	models.Comment
	Author ProfileView `json:"author"`
}

// ArticleFilter narrows an article listing. Limit and Offset paginate
// only when supplied; nil means unbounded.
type ArticleFilter struct {
	Tag       string
	Author    string
	Favorited string
	Limit     *int
	Offset    *int
}

func (f ArticleFilter) validate() error {
	var bad []string
	if f.Limit != nil && *f.Limit < 0 {
		bad = append(bad, "limit")
	}
	if f.Offset != nil && *f.Offset < 0 {
		bad = append(bad, "offset")
	}
	if len(bad) > 0 {
		return &services.ValidationError{Fields: bad}
	}
	return nil
}

// buildArticleFilter applies the filter set conjunctively. When the
// author or favoriter username resolves to nobody the listing is known
// to be empty, reported through the second return value, and no article
// query needs to run at all.
func buildArticleFilter(tx *gorm.DB, filter ArticleFilter) (*gorm.DB, bool, error) {
	if len(filter.Tag) > 0 {
		tx = services.FilterArticleWithTag(tx, filter.Tag)
	}

	if len(filter.Author) > 0 {
		author, err := services.GetAccountByName(tx.Session(&gorm.Session{NewDB: true}), filter.Author)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return tx, true, nil
			}
			return tx, false, err
		}
		tx = services.FilterArticleWithAuthor(tx, author.ID)
	}

	if len(filter.Favorited) > 0 {
		favoriter, err := services.GetAccountByName(tx.Session(&gorm.Session{NewDB: true}), filter.Favorited)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return tx, true, nil
			}
			return tx, false, err
		}
		tx = services.FilterArticleFavoritedBy(tx, favoriter.ID)
	}

	return tx, false, nil
}

// ListArticles returns one page of matching articles rendered for the
// viewer, newest first, together with the total match count computed
// before pagination.
func ListArticles(tx *gorm.DB, viewer *models.Account, filter ArticleFilter) ([]ArticleView, int64, error) {
	if err := filter.validate(); err != nil {
		return nil, 0, err
	}

	source := tx
	tx, empty, err := buildArticleFilter(tx.Model(&models.Article{}), filter)
	if err != nil {
		return nil, 0, err
	}
	if empty {
		return []ArticleView{}, 0, nil
	}

	count, err := services.CountArticle(tx)
	if err != nil {
		return nil, 0, err
	}

	if filter.Limit != nil {
		tx = tx.Limit(*filter.Limit)
	}
	if filter.Offset != nil {
		tx = tx.Offset(*filter.Offset)
	}

	var articles []models.Article
	if err := tx.
		Preload("Author").
		Order("articles.created_at DESC").
		Find(&articles).Error; err != nil {
		return nil, 0, err
	}

	views, err := RenderArticles(source, viewer, articles)
	if err != nil {
		return nil, 0, err
	}

	return views, count, nil
}

// GetArticle fetches one article by slug rendered for the viewer. An
// unknown slug yields a nil view, not an error.
func GetArticle(tx *gorm.DB, viewer *models.Account, slug string) (*ArticleView, error) {
	item, err := services.GetArticleBySlug(tx, slug)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	views, err := RenderArticles(tx, viewer, []models.Article{item})
	if err != nil {
		return nil, err
	}

	return &views[0], nil
}

// RenderArticles computes the personalized flags for a batch of
// articles in two relation queries rather than one pair per row.
func RenderArticles(tx *gorm.DB, viewer *models.Account, articles []models.Article) ([]ArticleView, error) {
	favorited := map[uint]bool{}
	following := map[uint]bool{}

	if viewer != nil && len(articles) > 0 {
		articleIDs := lo.Map(articles, func(item models.Article, _ int) uint {
			return item.ID
		})

		favoritedIDs, err := services.ListFavoritedIDs(tx, viewer.ID, articleIDs)
		if err != nil {
			return nil, err
		}
		for _, id := range favoritedIDs {
			favorited[id] = true
		}

		followingIDs, err := services.ListFollowingIDs(tx, viewer.ID)
		if err != nil {
			return nil, err
		}
		for _, id := range followingIDs {
			following[id] = true
		}
	}

	return lo.Map(articles, func(item models.Article, _ int) ArticleView {
		return ArticleView{
			Article:   item,
			Favorited: favorited[item.ID],
			Author: ProfileView{
				Account:   item.Author,
				Following: following[item.AuthorID],
			},
		}
	}), nil
}

// RenderComments mirrors RenderArticles for comment authors. Each
// renderer loads the viewer's follow set on its own; callers rendering
// comments next to an article pay one extra relation query rather than
// threading flags between renderers.
func RenderComments(tx *gorm.DB, viewer *models.Account, comments []models.Comment) ([]CommentView, error) {
	following := map[uint]bool{}

	if viewer != nil && len(comments) > 0 {
		followingIDs, err := services.ListFollowingIDs(tx, viewer.ID)
		if err != nil {
			return nil, err
		}
		for _, id := range followingIDs {
			following[id] = true
		}
	}

	return lo.Map(comments, func(item models.Comment, _ int) CommentView {
		return CommentView{
			Comment: item,
			Author: ProfileView{
				Account:   item.Author,
				Following: following[item.AuthorID],
			},
		}
	}), nil
}

// RenderProfile renders a single account against the optional viewer.
func RenderProfile(tx *gorm.DB, viewer *models.Account, account models.Account) (ProfileView, error) {
	view := ProfileView{Account: account}
	if viewer != nil {
		follows, err := services.IsFollowing(tx, viewer.ID, account.ID)
		if err != nil {
			return view, err
		}
		view.Following = follows
	}
	return view, nil
}
