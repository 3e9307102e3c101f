package models

import (
	"time"

	"gorm.io/datatypes"
)

type Article struct {
	BaseModel

	Slug        string `json:"slug" gorm:"uniqueIndex"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Body        string `json:"body"`
	Language    string `json:"language"`

	// TagList is a denormalized copy of the article's tag names; the
	// global Tag table is a separate vocabulary with no foreign key
	// between the two.
	TagList datatypes.JSONSlice[string] `json:"tag_list"`

	// FavoritesCount mirrors the number of Favorite rows pointing at
	// this article.
	FavoritesCount int64 `json:"favorites_count"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`

	Comments []Comment `json:"comments" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
}

type Comment struct {
	BaseModel

	Body string `json:"body"`

	AuthorID  uint    `json:"author_id"`
	Author    Account `json:"author"`
	ArticleID uint    `json:"article_id"`
}

// Favorite links an account to an article it bookmarked.
type Favorite struct {
	AccountID uint      `json:"account_id" gorm:"primaryKey"`
	ArticleID uint      `json:"article_id" gorm:"primaryKey;index"`
	CreatedAt time.Time `json:"created_at"`
}
