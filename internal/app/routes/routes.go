package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/interatlas/interatlas/internal/app/controllers"
	"github.com/interatlas/interatlas/internal/app/models/dto"
	"github.com/interatlas/interatlas/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	departmentController *controllers.DepartmentController,
	courseController *controllers.CourseController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Department routes (public access; creation is administrative)
	departments := v1.Group("/departments")
	{
		departments.POST("", departmentController.CreateDepartment)
		departments.GET("", departmentController.GetAllDepartments)
		departments.GET("/:id/courses", departmentController.GetDepartmentCourses)
	}

	// Course routes
	courses := v1.Group("/courses")
	{
		courses.POST("", courseController.CreateCourse)
	}

	// Registration and login
	v1.POST("/register", authController.Register)
	v1.POST("/login", authController.Login)

	// Authenticated routes
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/profile", authController.GetProfile)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
