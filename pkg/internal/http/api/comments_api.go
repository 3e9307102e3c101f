package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/quillworks/quill/pkg/internal/database"
	"github.com/quillworks/quill/pkg/internal/http/exts"
	"github.com/quillworks/quill/pkg/internal/models"
	"github.com/quillworks/quill/pkg/internal/services"
	"github.com/quillworks/quill/pkg/internal/services/queries"
)

func listComments(c *fiber.Ctx) error {
	article, err := services.GetArticleBySlug(database.C, c.Params("slug"))
	if err != nil {
		return remapServiceError(err)
	}

	comments, err := services.ListComment(database.C, article)
	if err != nil {
		return remapServiceError(err)
	}

	views, err := queries.RenderComments(database.C, viewerOf(c), comments)
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{"comments": views})
}

func createComment(c *fiber.Ctx) error {
	viewer, err := requireViewer(c)
	if err != nil {
		return err
	}

	var data struct {
		Body string `json:"body" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	article, err := services.GetArticleBySlug(database.C, c.Params("slug"))
	if err != nil {
		return remapServiceError(err)
	}

	comment, err := services.NewComment(database.C, viewer, article, data.Body)
	if err != nil {
		return remapServiceError(err)
	}

	views, err := queries.RenderComments(database.C, &viewer, []models.Comment{comment})
	if err != nil {
		return remapServiceError(err)
	}

	rendered, err := queries.GetArticle(database.C, &viewer, article.Slug)
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{
		"comment": views[0],
		"article": rendered,
	})
}

func deleteComment(c *fiber.Ctx) error {
	viewer, err := requireViewer(c)
	if err != nil {
		return err
	}

	commentID, err := strconv.Atoi(c.Params("commentId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid comment id")
	}

	article, err := services.GetArticleBySlug(database.C, c.Params("slug"))
	if err != nil {
		return remapServiceError(err)
	}

	if _, err := services.DeleteComment(database.C, article, uint(commentID)); err != nil {
		return remapServiceError(err)
	}

	rendered, err := queries.GetArticle(database.C, &viewer, article.Slug)
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{"article": rendered})
}
