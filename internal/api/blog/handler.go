package blog

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"coretalents-backend/database"
	"coretalents-backend/internal/domain/blog"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// GET /blogs — published posts only, newest first.
func ListPosts(c *gin.Context) {
	var posts []blog.Post
	if err := database.DB.
		Preload("Author").
		Where("status = ?", blog.StatusPublished).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GET /blogs/:slug
func GetPostBySlug(c *gin.Context) {
	var post blog.Post
	if err := database.DB.
		Preload("Author").
		Where("slug = ? AND status = ?", c.Param("slug"), blog.StatusPublished).
		First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// POST /admin/blogs
func CreatePost(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := input.ContentBlocks.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post := blog.Post{
		Slug:     strings.ToLower(strings.TrimSpace(input.Slug)),
		AuthorID: userID,
		Status:   blog.StatusDraft,
	}
	applyInput(&post, input)

	if post.Status == blog.StatusPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := database.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Slug may already exist"})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// PUT /admin/blogs/:slug
func UpdatePost(c *gin.Context) {
	var post blog.Post
	if err := database.DB.Where("slug = ?", c.Param("slug")).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var input PostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := input.ContentBlocks.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wasPublished := post.Status == blog.StatusPublished
	applyInput(&post, input)

	if post.Status == blog.StatusPublished && !wasPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := database.DB.Save(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// DELETE /admin/blogs/:slug
func DeletePost(c *gin.Context) {
	res := database.DB.Delete(&blog.Post{}, "slug = ?", c.Param("slug"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

func applyInput(post *blog.Post, input PostInput) {
	post.Title = input.Title
	post.Description = input.Description
	post.MetaTitle = input.MetaTitle
	post.MetaDescription = input.MetaDescription
	post.CoverImageURL = input.CoverImageURL
	post.CoverImageAlt = input.CoverImageAlt

	post.Category = input.Category
	if post.Category == "" {
		post.Category = "Uncategorized"
	}

	switch blog.PostStatus(input.Status) {
	case blog.StatusDraft, blog.StatusPublished, blog.StatusArchived:
		post.Status = blog.PostStatus(input.Status)
	}

	tags, _ := json.Marshal(input.Tags)
	post.Tags = datatypes.JSON(tags)

	blocks, _ := json.Marshal(input.ContentBlocks)
	post.ContentBlocks = datatypes.JSON(blocks)
}
