package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"unicourse_backend/internal/config"
	"unicourse_backend/internal/controller"
	"unicourse_backend/internal/repository"
	"unicourse_backend/internal/service"
	"unicourse_backend/pkg/database"
	"unicourse_backend/pkg/logger"
	"unicourse_backend/pkg/monitoring"
	"unicourse_backend/pkg/security"
	"unicourse_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services
}

type repositories struct {
	course          *repository.CourseRepository
	studentResponse *repository.StudentResponseRepository
	recommendation  *repository.RecommendationRepository
}

type services struct {
	embedding      *service.EmbeddingService
	recommendation *service.RecommendationService
	backfill       *service.BackfillService
	catalog        *service.CatalogService
	draft          *service.DraftService
}

type controllers struct {
	recommendation *controller.RecommendationController
	admin          *controller.AdminController
	course         *controller.CourseController
	draft          *controller.DraftController
	health         *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		course:          repository.NewCourseRepository(db),
		studentResponse: repository.NewStudentResponseRepository(db),
		recommendation:  repository.NewRecommendationRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.embedding = service.NewEmbeddingService(cfg.Embedding)
	s.recommendation = service.NewRecommendationService(
		s.embedding,
		repos.course,
		repos.studentResponse,
		repos.recommendation,
	)
	s.backfill = service.NewBackfillService(s.embedding, repos.course, cfg.Embedding)
	s.catalog = service.NewCatalogService(repos.course)
	s.draft = service.NewDraftService(rdb)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		recommendation: controller.NewRecommendationController(s.recommendation),
		admin:          controller.NewAdminController(s.backfill, s.catalog, a.Config),
		course:         controller.NewCourseController(s.catalog),
		draft:          controller.NewDraftController(s.draft),
		health:         controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// ApplyConfig 配置热加载回调，仅更新运行时可安全替换的部分
func (a *App) ApplyConfig(cfg *config.Config) {
	a.services.embedding.UpdateConfig(cfg.Embedding)
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		_, err := tracing.InitTracer("unicourse-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
