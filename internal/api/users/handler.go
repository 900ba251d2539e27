package users

import (
	"net/http"
	"time"

	"coretalents-backend/database"
	"coretalents-backend/internal/domain/entitlement"
	"coretalents-backend/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// GET /auth/me
func GetCurrentUser(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var user users.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	ent, err := entitlement.Resolve(database.DB, user.ID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve subscription"})
		return
	}

	var sub *SubscriptionDTO
	if ent != nil {
		sub = &SubscriptionDTO{
			Status:      string(ent.Subscription.Status),
			EndDate:     ent.EndDate,
			ResumeLimit: ent.ResumeLimit,
			Plan: PlanDTO{
				ID:             ent.Subscription.Plan.ID,
				Name:           ent.Subscription.Plan.Name,
				Price:          ent.Subscription.Plan.Price,
				ResumeLimit:    ent.Subscription.Plan.ResumeLimit,
				DurationInDays: ent.Subscription.Plan.DurationInDays,
			},
		}
	}

	c.JSON(http.StatusOK, MeResponse{
		User: UserDTO{
			ID:     user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Phone:  stringPtrIfNotEmpty(user.Phone),
			Role:   user.Role,
			Avatar: user.Avatar,
		},
		Subscription: sub,
	})
}

func stringPtrIfNotEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// GET /admin/users
func ListAllUsers(c *gin.Context) {
	var all []users.User
	if err := database.DB.Order("created_at DESC").Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	out := make([]UserDTO, 0, len(all))
	for _, u := range all {
		out = append(out, UserDTO{
			ID:     u.ID,
			Name:   u.Name,
			Email:  u.Email,
			Phone:  stringPtrIfNotEmpty(u.Phone),
			Role:   u.Role,
			Avatar: u.Avatar,
		})
	}

	c.JSON(http.StatusOK, out)
}

// GET /admin/users/:id
func GetUserByID(c *gin.Context) {
	var user users.User
	if err := database.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, UserDTO{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Phone:  stringPtrIfNotEmpty(user.Phone),
		Role:   user.Role,
		Avatar: user.Avatar,
	})
}

// DELETE /admin/users/:id
func DeleteUser(c *gin.Context) {
	res := database.DB.Delete(&users.User{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
