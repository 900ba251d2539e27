package plans

import (
	"net/http"

	"coretalents-backend/database"
	"coretalents-backend/internal/domain/plans"

	"github.com/gin-gonic/gin"
)

// GET /plans — the public catalog, active tiers only.
func ListPlans(c *gin.Context) {
	var plansList []plans.Plan
	if err := database.DB.
		Where("is_active = ?", true).
		Order("price ASC").
		Find(&plansList).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plans"})
		return
	}

	c.JSON(http.StatusOK, plansList)
}

// GET /admin/plans — everything, inactive tiers included.
func ListAllPlans(c *gin.Context) {
	var plansList []plans.Plan
	if err := database.DB.Order("price ASC").Find(&plansList).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plans"})
		return
	}

	c.JSON(http.StatusOK, plansList)
}

type planInput struct {
	Name           string `json:"name" binding:"required"`
	Price          int64  `json:"price" binding:"required,gt=0"`
	ResumeLimit    int    `json:"resume_limit" binding:"required,gt=0"`
	DurationInDays int    `json:"duration_in_days" binding:"required,gt=0"`
	Description    string `json:"description"`
	IsActive       *bool  `json:"is_active"`
}

// POST /admin/plans
func CreatePlan(c *gin.Context) {
	var input planInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan := plans.Plan{
		Name:           input.Name,
		Price:          input.Price,
		ResumeLimit:    input.ResumeLimit,
		DurationInDays: input.DurationInDays,
		Description:    input.Description,
		IsActive:       true,
	}
	if input.IsActive != nil {
		plan.IsActive = *input.IsActive
	}

	if err := database.DB.Create(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create plan"})
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// PUT /admin/plans/:id
//
// Price edits never touch existing subscriptions: amount was
// snapshotted at order creation.
func UpdatePlan(c *gin.Context) {
	var plan plans.Plan
	if err := database.DB.First(&plan, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	var input planInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan.Name = input.Name
	plan.Price = input.Price
	plan.ResumeLimit = input.ResumeLimit
	plan.DurationInDays = input.DurationInDays
	plan.Description = input.Description
	if input.IsActive != nil {
		plan.IsActive = *input.IsActive
	}

	if err := database.DB.Save(&plan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plan"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DELETE /admin/plans/:id — deactivates rather than deletes so existing
// subscriptions keep their plan reference.
func DeletePlan(c *gin.Context) {
	res := database.DB.Model(&plans.Plan{}).
		Where("id = ?", c.Param("id")).
		Update("is_active", false)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate plan"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Plan deactivated"})
}
