package database

import (
	"github.com/quillworks/quill/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Account{},
	&models.Tag{},
	&models.Article{},
	&models.Comment{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(
		append(
			AutoMaintainRange,
			&models.Favorite{},
			&models.Follow{},
		)...,
	); err != nil {
		return err
	}

	return nil
}
