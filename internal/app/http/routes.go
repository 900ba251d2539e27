package routes

import (
	authapi "coretalents-backend/internal/api/auth"
	billingapi "coretalents-backend/internal/api/billing"
	blogapi "coretalents-backend/internal/api/blog"
	plansapi "coretalents-backend/internal/api/plans"
	resumesapi "coretalents-backend/internal/api/resumes"
	reviewsapi "coretalents-backend/internal/api/reviews"
	usersapi "coretalents-backend/internal/api/users"
	"coretalents-backend/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/auth/register", authapi.Register)
	public.POST("/auth/login", authapi.Login)
	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	public.GET("/plans", plansapi.ListPlans)
	public.GET("/blogs", blogapi.ListPosts)
	public.GET("/blogs/:slug", blogapi.GetPostBySlug)
	public.GET("/reviews", reviewsapi.ListReviews)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())

	auth.GET("/auth/me", usersapi.GetCurrentUser)
	auth.POST("/auth/change-password", authapi.ChangePassword)

	auth.POST("/payment/create-order", billingapi.CreateOrder)
	auth.POST("/payment/verify-payment", billingapi.VerifyPayment)
	auth.GET("/payment/history", billingapi.GetMyPayments)

	auth.POST("/resume/create", resumesapi.CreateResume)
	auth.GET("/resume", resumesapi.ListMyResumes)
	auth.GET("/resume/:id", resumesapi.GetResume)
	auth.PUT("/resume/:id", resumesapi.UpdateResume)
	auth.DELETE("/resume/:id", resumesapi.DeleteResume)

	// Admin
	admin := r.Group("/")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))

	admin.GET("/payment/history/all", billingapi.GetAllPaymentHistory)

	admin.GET("/admin/users", usersapi.ListAllUsers)
	admin.GET("/admin/users/:id", usersapi.GetUserByID)
	admin.DELETE("/admin/users/:id", usersapi.DeleteUser)

	admin.GET("/admin/plans", plansapi.ListAllPlans)
	admin.POST("/admin/plans", plansapi.CreatePlan)
	admin.PUT("/admin/plans/:id", plansapi.UpdatePlan)
	admin.DELETE("/admin/plans/:id", plansapi.DeletePlan)

	admin.POST("/admin/blogs", blogapi.CreatePost)
	admin.PUT("/admin/blogs/:slug", blogapi.UpdatePost)
	admin.DELETE("/admin/blogs/:slug", blogapi.DeletePost)

	admin.POST("/admin/reviews", reviewsapi.CreateReview)
	admin.PUT("/admin/reviews/:id", reviewsapi.UpdateReview)
	admin.DELETE("/admin/reviews/:id", reviewsapi.DeleteReview)
}
