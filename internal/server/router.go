package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/courseatlas/backend/internal/handlers"
)

type RouterConfig struct {
	AllowOrigins []string

	CatalogHandler        *handlers.CatalogHandler
	AnalyticsHandler      *handlers.AnalyticsHandler
	CartHandler           *handlers.CartHandler
	UserHandler           *handlers.UserHandler
	AssistantHandler      *handlers.AssistantHandler
	RecommendationHandler *handlers.RecommendationHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	// Catalog
	router.GET("/majors", cfg.CatalogHandler.ListMajors)
	router.GET("/courses/:majorId", cfg.CatalogHandler.GetCourses)
	router.GET("/faculty/:majorId", cfg.CatalogHandler.GetFaculty)

	// Analytics
	router.POST("/courses/:code/view", cfg.AnalyticsHandler.RecordView)
	router.GET("/analytics", cfg.AnalyticsHandler.ListAnalytics)

	// Assistant
	router.POST("/assistant", cfg.AssistantHandler.Ask)
	router.POST("/summarize", cfg.AssistantHandler.Summarize)

	// Recommendations
	router.GET("/recommend/:courseId", cfg.RecommendationHandler.Recommend)

	// Selection cart
	router.POST("/select-course", cfg.CartHandler.SelectCourse)
	router.DELETE("/remove-course/:code", cfg.CartHandler.RemoveCourse)
	router.GET("/selected-courses", cfg.CartHandler.ListSelected)

	// Users
	router.POST("/signup", cfg.UserHandler.Signup)
	router.POST("/login", cfg.UserHandler.Login)
	router.GET("/welcome/:uid", cfg.UserHandler.Welcome)
	router.POST("/complete-registration", cfg.UserHandler.CompleteRegistration)
	router.GET("/user-registrations/:uid", cfg.UserHandler.GetRegistrations)
	router.DELETE("/user-registrations/:uid", cfg.UserHandler.ClearRegistrations)

	return router
}
