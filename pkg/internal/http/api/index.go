package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/quillworks/quill/pkg/internal/database"
	"github.com/quillworks/quill/pkg/internal/models"
	"github.com/quillworks/quill/pkg/internal/services"
)

func MapAPIs(app *fiber.App, baseURL string) {
	api := app.Group(baseURL).Use(resolveViewer)
	{
		articles := api.Group("/articles")
		{
			articles.Get("/", listArticles)
			articles.Get("/feed", listFeed)
			articles.Post("/", createArticle)
			articles.Get("/:slug", getArticle)
			articles.Put("/:slug", updateArticle)
			articles.Delete("/:slug", deleteArticle)

			articles.Post("/:slug/favorite", favoriteArticle)
			articles.Delete("/:slug/favorite", unfavoriteArticle)

			articles.Get("/:slug/comments", listComments)
			articles.Post("/:slug/comments", createComment)
			articles.Delete("/:slug/comments/:commentId", deleteComment)
		}

		api.Get("/tags", listTags)

		profiles := api.Group("/profiles")
		{
			profiles.Get("/:name", getProfile)
			profiles.Post("/:name/follow", followAccount)
			profiles.Delete("/:name/follow", unfollowAccount)
		}
	}
}

// resolveViewer trusts the account id placed in the X-Account-ID header
// by the authentication layer in front of this service, and loads the
// matching account into the request locals.
func resolveViewer(c *fiber.Ctx) error {
	raw := c.Get("X-Account-ID")
	if len(raw) == 0 {
		return c.Next()
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid account id")
	}

	account, err := services.GetAccount(database.C, uint(id))
	if err != nil {
		return remapServiceError(err)
	}

	c.Locals("viewer", account)
	return c.Next()
}

func viewerOf(c *fiber.Ctx) *models.Account {
	if account, ok := c.Locals("viewer").(models.Account); ok {
		return &account
	}
	return nil
}

func requireViewer(c *fiber.Ctx) (models.Account, error) {
	if account, ok := c.Locals("viewer").(models.Account); ok {
		return account, nil
	}
	return models.Account{}, fiber.NewError(fiber.StatusUnauthorized, "authentication required")
}

func remapServiceError(err error) error {
	var invalid *services.ValidationError
	switch {
	case errors.Is(err, services.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.As(err, &invalid):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}

// paging reads an optional numeric query parameter, failing fast on
// malformed input instead of coercing it to zero.
func paging(c *fiber.Ctx, key string) (*int, error) {
	raw := c.Query(key)
	if len(raw) == 0 {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid "+key)
	}
	return &value, nil
}
