package model

import "time"

// Article is a blog/news article. Content is rich HTML stored verbatim;
// title, slug and author are sanitized plain text.
type Article struct {
	ID          int64      `gorm:"column:id;primaryKey" json:"id"`
	Title       string     `gorm:"column:title" json:"title"`
	Slug        string     `gorm:"column:slug" json:"slug"`
	Content     string     `gorm:"column:content" json:"content"`
	Thumbnail   *string    `gorm:"column:thumbnail" json:"thumbnail"`
	CategoryID  *int64     `gorm:"column:category_id" json:"category_id"`
	Author      *string    `gorm:"column:author" json:"author"`
	PublishedAt *string    `gorm:"column:published_at" json:"published_at"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt   *time.Time `gorm:"column:deleted_at" json:"-"`
}

func (Article) TableName() string {
	return "articles"
}
