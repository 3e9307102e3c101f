package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quillworks/quill/pkg/internal/database"
	"github.com/quillworks/quill/pkg/internal/services"
	"github.com/quillworks/quill/pkg/internal/services/queries"
)

func getProfile(c *fiber.Ctx) error {
	account, err := services.GetAccountByName(database.C, c.Params("name"))
	if err != nil {
		return remapServiceError(err)
	}

	profile, err := queries.RenderProfile(database.C, viewerOf(c), account)
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{"profile": profile})
}

func followAccount(c *fiber.Ctx) error {
	viewer, err := requireViewer(c)
	if err != nil {
		return err
	}

	target, err := services.GetAccountByName(database.C, c.Params("name"))
	if err != nil {
		return remapServiceError(err)
	}

	if err := services.FollowAccount(database.C, viewer, target); err != nil {
		return remapServiceError(err)
	}

	profile, err := queries.RenderProfile(database.C, &viewer, target)
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{"profile": profile})
}

func unfollowAccount(c *fiber.Ctx) error {
	viewer, err := requireViewer(c)
	if err != nil {
		return err
	}

	target, err := services.GetAccountByName(database.C, c.Params("name"))
	if err != nil {
		return remapServiceError(err)
	}

	if err := services.UnfollowAccount(database.C, viewer, target); err != nil {
		return remapServiceError(err)
	}

	profile, err := queries.RenderProfile(database.C, &viewer, target)
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{"profile": profile})
}
