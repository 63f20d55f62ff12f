package model

import "time"

// Gallery is a single gallery image entry. The image URL usually points
// at an external host and is served through the image proxy.
type Gallery struct {
	ID          int64      `gorm:"column:id;primaryKey" json:"id"`
	Title       string     `gorm:"column:title" json:"title"`
	Description *string    `gorm:"column:description" json:"description"`
	ImageURL    string     `gorm:"column:image_url" json:"image_url"`
	Thumbnail   *string    `gorm:"column:thumbnail" json:"thumbnail"`
	CategoryID  *int64     `gorm:"column:category_id" json:"category_id"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt   *time.Time `gorm:"column:deleted_at" json:"-"`
}

func (Gallery) TableName() string {
	return "galleries"
}
