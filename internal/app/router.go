package app

import (
	"unicourse_backend/docs"
	"unicourse_backend/internal/config"
	"unicourse_backend/internal/middleware"
	"unicourse_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		public.GET("/courses", c.course.List)
		public.GET("/courses/:id", c.course.Get)

		public.POST("/recommendations", c.recommendation.Generate)
		public.GET("/recommendations/:responseId", c.recommendation.GetByResponse)

		public.POST("/drafts", c.draft.Save)
		public.POST("/drafts/:id/claim", c.draft.Claim)

		public.POST("/admin/login", c.admin.Login)
	}

	// 管理路由
	admin := router.Group("/api/admin")
	admin.Use(middleware.AdminAuthMiddleware(cfg))
	{
		admin.POST("/embeddings/backfill", c.admin.RunBackfill)
		admin.GET("/embeddings/status", c.admin.EmbeddingStatus)
		admin.POST("/courses/import", c.admin.ImportCourses)
	}
}
