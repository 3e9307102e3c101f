package services

import (
	"testing"

	"github.com/quillworks/quill/pkg/internal/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestNewArticle(t *testing.T) {
	db := newTestDB(t)
	author := seedAccount(t, db, "jane")

	article, err := NewArticle(db, author, ArticleDraft{
		Title:       "How to Train Your Dragon",
		Description: "Ever wondered how?",
		Body:        "You have to believe in yourself and practice every day.",
		TagList:     NormalizeTagList("dragons, training, dragons"),
	})
	require.NoError(t, err)
	require.Equal(t, "how-to-train-your-dragon", article.Slug)
	require.Equal(t, author.ID, article.AuthorID)
	require.Equal(t, "en", article.Language)
	require.EqualValues(t, []string{"dragons", "training"}, []string(article.TagList))

	var tags []models.Tag
	require.NoError(t, db.Order("name ASC").Find(&tags).Error)
	require.Equal(t, []string{"dragons", "training"}, lo.Map(tags, func(item models.Tag, _ int) string {
		return item.Name
	}))
}

func TestNewArticleReusesVocabulary(t *testing.T) {
	db := newTestDB(t)
	author := seedAccount(t, db, "jane")

	_, err := GetTagOrCreate(db, "foo")
	require.NoError(t, err)

	article, err := NewArticle(db, author, ArticleDraft{
		Title:       "Vocabulary Reuse",
		Description: "desc",
		Body:        "body text goes here",
		TagList:     NormalizeTagList("foo, bar, foo"),
	})
	require.NoError(t, err)
	require.EqualValues(t, []string{"foo", "bar"}, []string(article.TagList))

	var count int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&count).Error)
	require.EqualValues(t, 2, count)
}

func TestNewArticleValidation(t *testing.T) {
	db := newTestDB(t)
	author := seedAccount(t, db, "jane")

	_, err := NewArticle(db, author, ArticleDraft{
		Description: "desc",
		Body:        "body",
		TagList:     []string{"foo"},
	})
	var invalid *ValidationError
	require.ErrorAs(t, err, &invalid)
	require.Contains(t, invalid.Fields, "title")

	// Nothing may survive a failed creation, neither the article nor
	// any tag row.
	var articles, tags int64
	require.NoError(t, db.Model(&models.Article{}).Count(&articles).Error)
	require.NoError(t, db.Model(&models.Tag{}).Count(&tags).Error)
	require.Zero(t, articles)
	require.Zero(t, tags)
}

func TestNewArticleValidationNamesEveryMissingField(t *testing.T) {
	db := newTestDB(t)
	author := seedAccount(t, db, "jane")

	_, err := NewArticle(db, author, ArticleDraft{})
	var invalid *ValidationError
	require.ErrorAs(t, err, &invalid)
	require.ElementsMatch(t, []string{"title", "description", "body"}, invalid.Fields)
}

func TestBuildArticleSlugCollision(t *testing.T) {
	db := newTestDB(t)
	author := seedAccount(t, db, "jane")
	seedArticle(t, db, author, "Same Title")

	slug, err := BuildArticleSlug(db, "Same Title")
	require.NoError(t, err)
	require.NotEqual(t, "same-title", slug)
	require.Contains(t, slug, "same-title-")
}

func TestNewArticleAfterDeleteWithSameTitle(t *testing.T) {
	db := newTestDB(t)
	author := seedAccount(t, db, "jane")
	article := seedArticle(t, db, author, "Same Title")

	count, err := DeleteArticleBySlug(db, article.Slug)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	// The tombstoned row still holds the slug, so the fresh article
	// must land on the suffixed form instead of tripping the unique
	// index.
	recreated, err := NewArticle(db, author, ArticleDraft{
		Title:       "Same Title",
		Description: "desc",
		Body:        "body text goes here",
	})
	require.NoError(t, err)
	require.NotEqual(t, article.Slug, recreated.Slug)
	require.Contains(t, recreated.Slug, "same-title-")
}

func TestNewArticleNormalizesRawTagList(t *testing.T) {
	db := newTestDB(t)
	author := seedAccount(t, db, "jane")

	article, err := NewArticle(db, author, ArticleDraft{
		Title:       "Raw Tags",
		Description: "desc",
		Body:        "body text goes here",
		TagList:     []string{" foo", "bar", "foo", ""},
	})
	require.NoError(t, err)
	require.EqualValues(t, []string{"foo", "bar"}, []string(article.TagList))

	var count int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&count).Error)
	require.EqualValues(t, 2, count)
}

func TestEditArticleMergesPartialFields(t *testing.T) {
	db := newTestDB(t)
	author := seedAccount(t, db, "jane")
	article := seedArticle(t, db, author, "Original Title", "foo")

	updated, err := EditArticle(db, article.Slug, ArticlePatch{
		Title:   lo.ToPtr("Renamed Title"),
		TagList: []string{"foo", "baz"},
	})
	require.NoError(t, err)
	require.Equal(t, "Renamed Title", updated.Title)
	require.Equal(t, article.Description, updated.Description)
	require.Equal(t, article.Body, updated.Body)
	// The slug keeps identifying the article even after a rename.
	require.Equal(t, article.Slug, updated.Slug)

	tag, err := GetTagByName(db, "baz")
	require.NoError(t, err)
	require.Equal(t, "baz", tag.Name)
}

func TestEditArticleUnknownSlug(t *testing.T) {
	db := newTestDB(t)

	_, err := EditArticle(db, "no-such-slug", ArticlePatch{Title: lo.ToPtr("x")})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteArticleBySlug(t *testing.T) {
	db := newTestDB(t)
	author := seedAccount(t, db, "jane")
	article := seedArticle(t, db, author, "Short Lived")

	count, err := DeleteArticleBySlug(db, article.Slug)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	count, err = DeleteArticleBySlug(db, article.Slug)
	require.NoError(t, err)
	require.Zero(t, count)

	_, err = GetArticleBySlug(db, article.Slug)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetArticleBySlugPreloadsAuthor(t *testing.T) {
	db := newTestDB(t)
	author := seedAccount(t, db, "jane")
	article := seedArticle(t, db, author, "With Author")

	found, err := GetArticleBySlug(db, article.Slug)
	require.NoError(t, err)
	require.Equal(t, "jane", found.Author.Name)
}
