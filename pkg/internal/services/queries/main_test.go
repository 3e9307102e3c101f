package queries

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/quillworks/quill/pkg/internal/database"
	"github.com/quillworks/quill/pkg/internal/models"
	"github.com/quillworks/quill/pkg/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigration(db))

	return db
}

func seedAccount(t *testing.T, tx *gorm.DB, name string) models.Account {
	t.Helper()

	account, err := services.NewAccount(tx, models.Account{Name: name, Nick: name})
	require.NoError(t, err)
	return account
}

// seedArticle creates an article backdated by age so creation order is
// deterministic in listings.
func seedArticle(t *testing.T, tx *gorm.DB, author models.Account, title string, age time.Duration, tags ...string) models.Article {
	t.Helper()

	article, err := services.NewArticle(tx, author, services.ArticleDraft{
		Title:       title,
		Description: "about " + title,
		Body:        "The quick brown fox jumps over the lazy dog.",
		TagList:     tags,
	})
	require.NoError(t, err)

	require.NoError(t, tx.Model(&models.Article{}).
		Where("id = ?", article.ID).
		UpdateColumn("created_at", time.Now().Add(-age)).Error)

	return article
}

func ptr(v int) *int {
	return &v
}
