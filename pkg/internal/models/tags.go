package models

// Tag is an entry in the global tag vocabulary. Names are unique and
// case-sensitive; articles carry their own denormalized tag lists.
type Tag struct {
	BaseModel

	Name string `json:"name" gorm:"uniqueIndex"`
}
