package reviews

import (
	"net/http"

	"coretalents-backend/database"
	"coretalents-backend/internal/domain/reviews"

	"github.com/gin-gonic/gin"
)

type reviewInput struct {
	Name    string `json:"name" binding:"required"`
	Work    string `json:"work"`
	Content string `json:"content" binding:"required"`
}

// GET /reviews
func ListReviews(c *gin.Context) {
	var list []reviews.Review
	if err := database.DB.Order("created_at DESC").Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": list})
}

// POST /admin/reviews
func CreateReview(c *gin.Context) {
	var input reviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review := reviews.Review{
		Name:    input.Name,
		Work:    input.Work,
		Content: input.Content,
	}
	if err := database.DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": review})
}

// PUT /admin/reviews/:id
func UpdateReview(c *gin.Context) {
	var review reviews.Review
	if err := database.DB.First(&review, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	var input reviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review.Name = input.Name
	review.Work = input.Work
	review.Content = input.Content

	if err := database.DB.Save(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": review})
}

// DELETE /admin/reviews/:id
func DeleteReview(c *gin.Context) {
	res := database.DB.Delete(&reviews.Review{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Review deleted"})
}
