package blog

import (
	"time"

	"coretalents-backend/internal/domain/users"

	"gorm.io/datatypes"
)

type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
	StatusArchived  PostStatus = "archived"
)

type Post struct {
	ID   uint   `gorm:"primaryKey"`
	Slug string `gorm:"not null;uniqueIndex:idx_blog_posts_slug"`

	Title           string `gorm:"not null"`
	Description     string
	MetaTitle       string
	MetaDescription string

	CoverImageURL string
	CoverImageAlt string

	AuthorID uint `gorm:"not null"`
	Author   users.User

	Status      PostStatus `gorm:"type:varchar(20);not null;default:'draft'"`
	PublishedAt *time.Time

	Category string
	Tags     datatypes.JSON

	// ContentBlocks holds the serialized Blocks union; handlers decode
	// and validate through blog.Blocks before anything is stored here.
	ContentBlocks datatypes.JSON

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Post) TableName() string {
	return "blog_posts"
}
