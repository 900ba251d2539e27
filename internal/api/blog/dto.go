package blog

import "coretalents-backend/internal/domain/blog"

type PostInput struct {
	Slug            string      `json:"slug" binding:"required"`
	Title           string      `json:"title" binding:"required"`
	Description     string      `json:"description"`
	MetaTitle       string      `json:"meta_title"`
	MetaDescription string      `json:"meta_description"`
	CoverImageURL   string      `json:"cover_image_url"`
	CoverImageAlt   string      `json:"cover_image_alt"`
	Category        string      `json:"category"`
	Tags            []string    `json:"tags"`
	Status          string      `json:"status"`
	ContentBlocks   blog.Blocks `json:"content_blocks"`
}
