package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quillworks/quill/pkg/internal/database"
	"github.com/quillworks/quill/pkg/internal/services"
	"github.com/quillworks/quill/pkg/internal/services/queries"
)

func favoriteArticle(c *fiber.Ctx) error {
	viewer, err := requireViewer(c)
	if err != nil {
		return err
	}

	article, err := services.GetArticleBySlug(database.C, c.Params("slug"))
	if err != nil {
		return remapServiceError(err)
	}

	if err := services.FavoriteArticle(database.C, viewer, article); err != nil {
		return remapServiceError(err)
	}

	rendered, err := queries.GetArticle(database.C, &viewer, article.Slug)
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{"article": rendered})
}

func unfavoriteArticle(c *fiber.Ctx) error {
	viewer, err := requireViewer(c)
	if err != nil {
		return err
	}

	article, err := services.GetArticleBySlug(database.C, c.Params("slug"))
	if err != nil {
		return remapServiceError(err)
	}

	if err := services.UnfavoriteArticle(database.C, viewer, article); err != nil {
		return remapServiceError(err)
	}

	rendered, err := queries.GetArticle(database.C, &viewer, article.Slug)
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{"article": rendered})
}
