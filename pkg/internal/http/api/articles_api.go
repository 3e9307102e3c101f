package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quillworks/quill/pkg/internal/database"
	"github.com/quillworks/quill/pkg/internal/http/exts"
	"github.com/quillworks/quill/pkg/internal/services"
	"github.com/quillworks/quill/pkg/internal/services/queries"
)

func listArticles(c *fiber.Ctx) error {
	limit, err := paging(c, "limit")
	if err != nil {
		return err
	}
	offset, err := paging(c, "offset")
	if err != nil {
		return err
	}

	filter := queries.ArticleFilter{
		Tag:       c.Query("tag"),
		Author:    c.Query("author"),
		Favorited: c.Query("favorited"),
		Limit:     limit,
		Offset:    offset,
	}

	articles, count, err := queries.ListArticles(database.C, viewerOf(c), filter)
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{
		"articles":       articles,
		"articles_count": count,
	})
}

func listFeed(c *fiber.Ctx) error {
	limit, err := paging(c, "limit")
	if err != nil {
		return err
	}
	offset, err := paging(c, "offset")
	if err != nil {
		return err
	}

	articles, count, err := queries.ListFeed(database.C, viewerOf(c), limit, offset)
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{
		"articles":       articles,
		"articles_count": count,
	})
}

func getArticle(c *fiber.Ctx) error {
	article, err := queries.GetArticle(database.C, viewerOf(c), c.Params("slug"))
	if err != nil {
		return remapServiceError(err)
	}
	if article == nil {
		return c.JSON(fiber.Map{"article": nil})
	}

	return c.JSON(fiber.Map{"article": article})
}

func createArticle(c *fiber.Ctx) error {
	viewer, err := requireViewer(c)
	if err != nil {
		return err
	}

	var data struct {
		Title       string `json:"title" validate:"required,max=1024"`
		Description string `json:"description" validate:"required"`
		Body        string `json:"body" validate:"required"`
		TagList     any    `json:"tag_list"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.NewArticle(database.C, viewer, services.ArticleDraft{
		Title:       data.Title,
		Description: data.Description,
		Body:        data.Body,
		TagList:     services.NormalizeTagList(data.TagList),
	})
	if err != nil {
		return remapServiceError(err)
	}

	article, err := queries.GetArticle(database.C, &viewer, item.Slug)
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{"article": article})
}

func updateArticle(c *fiber.Ctx) error {
	viewer := viewerOf(c)

	var data struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Body        *string `json:"body"`
		TagList     any     `json:"tag_list"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	patch := services.ArticlePatch{
		Title:       data.Title,
		Description: data.Description,
		Body:        data.Body,
	}
	if data.TagList != nil {
		patch.TagList = services.NormalizeTagList(data.TagList)
	}

	item, err := services.EditArticle(database.C, c.Params("slug"), patch)
	if err != nil {
		return remapServiceError(err)
	}

	article, err := queries.GetArticle(database.C, viewer, item.Slug)
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{"article": article})
}

func deleteArticle(c *fiber.Ctx) error {
	count, err := services.DeleteArticleBySlug(database.C, c.Params("slug"))
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{"count": count})
}
