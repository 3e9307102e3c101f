package models

import "time"

type Account struct {
	BaseModel

	Name   string `json:"name" gorm:"uniqueIndex"`
	Nick   string `json:"nick"`
	Bio    string `json:"bio"`
	Avatar string `json:"avatar"`

	Articles []Article `json:"articles" gorm:"foreignKey:AuthorID"`
}

// Follow links a follower account to the account it follows.
type Follow struct {
	FollowerID  uint      `json:"follower_id" gorm:"primaryKey"`
	FollowingID uint      `json:"following_id" gorm:"primaryKey;index"`
	CreatedAt   time.Time `json:"created_at"`
}
