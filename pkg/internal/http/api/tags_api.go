package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quillworks/quill/pkg/internal/database"
	"github.com/quillworks/quill/pkg/internal/models"
	"github.com/quillworks/quill/pkg/internal/services"
)

func listTags(c *fiber.Ctx) error {
	take := c.QueryInt("take", 100)
	offset := c.QueryInt("offset", 0)

	var err error
	var tags []models.Tag

	if probe := c.Query("probe"); len(probe) > 0 {
		tags, err = services.SearchTag(database.C, take, offset, probe)
	} else {
		tags, err = services.ListTag(database.C, take, offset)
	}
	if err != nil {
		return remapServiceError(err)
	}

	return c.JSON(fiber.Map{"tags": tags})
}
