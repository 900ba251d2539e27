package resumes

import (
	"net/http"
	"time"

	"coretalents-backend/database"
	"coretalents-backend/internal/domain/entitlement"
	"coretalents-backend/internal/domain/resumes"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

// POST /resume/create
//
// The quota gate. Count and insert run in one transaction so two
// near-limit requests cannot both slip through. The client pre-checks
// the same condition for UX, but only this check is authoritative.
func CreateResume(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var input ResumeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role := c.GetString("role")

	var created resumes.Resume
	var decision entitlement.Decision

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&resumes.Resume{}).
			Where("user_id = ?", userID).
			Count(&count).Error; err != nil {
			return err
		}

		ent, err := entitlement.Resolve(tx, userID, time.Now())
		if err != nil {
			return err
		}

		decision = entitlement.DecideCreate(role, count, ent)
		if !decision.Allowed {
			return nil
		}

		created = newResume(userID, input)
		return tx.Create(&created).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create resume"})
		return
	}

	if !decision.Allowed {
		// structured rejection: the frontend branches on isLimitReached
		// and redirects to the plans page
		c.JSON(http.StatusForbidden, gin.H{
			"error":          "Resume limit reached. Upgrade your plan to create more resumes.",
			"isLimitReached": true,
			"limit":          decision.Limit,
		})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GET /resume
func ListMyResumes(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var list []resumes.Resume
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load resumes"})
		return
	}

	c.JSON(http.StatusOK, list)
}

// GET /resume/:id
func GetResume(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var resume resumes.Resume
	if err := database.DB.
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&resume).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resume not found"})
		return
	}

	c.JSON(http.StatusOK, resume)
}

// PUT /resume/:id — updates never consume quota.
func UpdateResume(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var resume resumes.Resume
	if err := database.DB.
		Where("id = ? AND user_id = ?", c.Param("id"), userID).
		First(&resume).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resume not found"})
		return
	}

	var input ResumeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	applyInput(&resume, input)

	if err := database.DB.Save(&resume).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update resume"})
		return
	}

	c.JSON(http.StatusOK, resume)
}

// DELETE /resume/:id
func DeleteResume(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res := database.DB.Delete(&resumes.Resume{}, "id = ? AND user_id = ?", c.Param("id"), userID)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete resume"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resume not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Resume deleted successfully"})
}

func newResume(userID uint, input ResumeInput) resumes.Resume {
	r := resumes.Resume{UserID: userID}
	applyInput(&r, input)
	if r.Title == "" {
		r.Title = "Untitled Resume"
	}
	if r.ThemeColor == "" {
		r.ThemeColor = "#3b82f6"
	}
	return r
}

func applyInput(r *resumes.Resume, input ResumeInput) {
	if input.Title != "" {
		r.Title = input.Title
	}
	r.Summary = input.Summary
	if input.ThemeColor != "" {
		r.ThemeColor = input.ThemeColor
	}
	if input.PersonalInfo != nil {
		r.PersonalInfo = datatypes.JSON(input.PersonalInfo)
	}
	if input.Experience != nil {
		r.Experience = datatypes.JSON(input.Experience)
	}
	if input.Education != nil {
		r.Education = datatypes.JSON(input.Education)
	}
	if input.Projects != nil {
		r.Projects = datatypes.JSON(input.Projects)
	}
	if input.Skills != nil {
		r.Skills = datatypes.JSON(input.Skills)
	}
}
