package services

import (
	"errors"
	"strings"

	"github.com/quillworks/quill/pkg/internal/models"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// NormalizeTagList accepts the two shapes clients send tag lists in, a
// comma-separated string or a list of strings, and flattens either into
// a deduplicated list of trimmed names in first-seen order.
func NormalizeTagList(raw any) []string {
	var names []string
	switch value := raw.(type) {
	case string:
		names = strings.Split(value, ",")
	case []string:
		names = value
	case []any:
		for _, entry := range value {
			if str, ok := entry.(string); ok {
				names = append(names, str)
			}
		}
	}

	names = lo.Map(names, func(item string, _ int) string {
		return strings.TrimSpace(item)
	})
	names = lo.Filter(names, func(item string, _ int) bool {
		return len(item) > 0
	})

	return lo.Uniq(names)
}

func GetTagByName(tx *gorm.DB, name string) (models.Tag, error) {
	var tag models.Tag
	if err := tx.Where(models.Tag{Name: name}).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tag, notFound("tag")
		}
		return tag, err
	}
	return tag, nil
}

func GetTagOrCreate(tx *gorm.DB, name string) (models.Tag, error) {
	var tag models.Tag
	if err := tx.Where(models.Tag{Name: name}).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tag = models.Tag{Name: name}
			err := tx.Create(&tag).Error
			return tag, err
		}
		return tag, err
	}
	return tag, nil
}

// EnsureTags reconciles the vocabulary with the given names, inserting
// the ones it has not seen before. Existing rows are left untouched.
func EnsureTags(tx *gorm.DB, names []string) error {
	for _, name := range names {
		if _, err := GetTagOrCreate(tx, name); err != nil {
			return err
		}
	}
	return nil
}

func ListTag(tx *gorm.DB, take int, offset int) ([]models.Tag, error) {
	var tags []models.Tag
	err := tx.Offset(offset).Limit(take).Order("name ASC").Find(&tags).Error

	return tags, err
}

func SearchTag(tx *gorm.DB, take int, offset int, probe string) ([]models.Tag, error) {
	probe = "%" + probe + "%"

	var tags []models.Tag
	err := tx.Where("name LIKE ?", probe).Offset(offset).Limit(take).Find(&tags).Error

	return tags, err
}
