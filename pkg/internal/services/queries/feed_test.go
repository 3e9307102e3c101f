package queries

import (
	"testing"
	"time"

	"github.com/quillworks/quill/pkg/internal/services"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestListFeedReturnsFollowedAuthorsOnly(t *testing.T) {
	db := newTestDB(t)
	jane := seedAccount(t, db, "jane")
	joe := seedAccount(t, db, "joe")
	viewer := seedAccount(t, db, "eve")

	seedArticle(t, db, jane, "From Jane", time.Hour)
	seedArticle(t, db, joe, "From Joe", 2*time.Hour)

	require.NoError(t, services.FollowAccount(db, viewer, jane))

	views, count, err := ListFeed(db, &viewer, nil, nil)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
	require.Equal(t, "From Jane", views[0].Title)
	require.True(t, views[0].Author.Following)
}

func TestListFeedNewestFirstWithTotalCount(t *testing.T) {
	db := newTestDB(t)
	jane := seedAccount(t, db, "jane")
	viewer := seedAccount(t, db, "eve")
	require.NoError(t, services.FollowAccount(db, viewer, jane))

	seedArticle(t, db, jane, "Oldest", 3*time.Hour)
	seedArticle(t, db, jane, "Newest", time.Hour)
	seedArticle(t, db, jane, "Middle", 2*time.Hour)

	views, count, err := ListFeed(db, &viewer, ptr(2), ptr(0))
	require.NoError(t, err)
	require.EqualValues(t, 3, count)
	require.Equal(t, []string{"Newest", "Middle"}, lo.Map(views, func(item ArticleView, _ int) string {
		return item.Title
	}))
}

func TestListFeedWithoutViewerIsEmpty(t *testing.T) {
	db := newTestDB(t)
	jane := seedAccount(t, db, "jane")
	seedArticle(t, db, jane, "Published", time.Hour)

	views, count, err := ListFeed(db, nil, nil, nil)
	require.NoError(t, err)
	require.Empty(t, views)
	require.Zero(t, count)
}

func TestListFeedFollowingNobodyIsEmpty(t *testing.T) {
	db := newTestDB(t)
	jane := seedAccount(t, db, "jane")
	viewer := seedAccount(t, db, "eve")
	seedArticle(t, db, jane, "Published", time.Hour)

	views, count, err := ListFeed(db, &viewer, nil, nil)
	require.NoError(t, err)
	require.Empty(t, views)
	require.Zero(t, count)
}
