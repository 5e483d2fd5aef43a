package app

import (
	"context"
	"exam_coach_backend/internal/config"
	"exam_coach_backend/internal/controller"
	"exam_coach_backend/internal/repository"
	"exam_coach_backend/internal/service"
	"exam_coach_backend/pkg/database"
	"exam_coach_backend/pkg/logger"
	"exam_coach_backend/pkg/monitoring"
	"exam_coach_backend/pkg/security"
	"exam_coach_backend/pkg/tracing"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

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
	Policies *service.PolicyTable
}

type repositories struct {
	exam     *repository.ExamRepository
	question *repository.QuestionRepository
	progress *repository.ProgressRepository
	attempt  *repository.AttemptRepository
}

type services struct {
	practice *service.PracticeService
	progress *service.ProgressService
}

type controllers struct {
	exam     *controller.ExamController
	practice *controller.PracticeController
	progress *controller.ProgressController
	health   *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		exam:     repository.NewExamRepository(db),
		question: repository.NewQuestionRepository(db, rdb),
		progress: repository.NewProgressRepository(db),
		attempt:  repository.NewAttemptRepository(db),
	}
}

func (a *App) initServices(repos *repositories, db *gorm.DB) *services {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &services{
		practice: service.NewPracticeService(repos.question, repos.attempt, repos.progress, a.Policies, db, rng),
		progress: service.NewProgressService(repos.question, repos.progress, a.Policies, db),
	}
}

func (a *App) initControllers(svcs *services, repos *repositories, db *gorm.DB) *controllers {
	return &controllers{
		exam:     controller.NewExamController(repos.exam),
		practice: controller.NewPracticeController(svcs.practice),
		progress: controller.NewProgressController(svcs.progress),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(monitoring.MetricsMiddleware())

	if cfg.RateLimit.MaxRequests > 0 {
		window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
		if window <= 0 {
			window = time.Minute
		}
		router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, window))
	}

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}
}

// ReloadConfig applies a freshly loaded config to the running app. Only the
// exam policy table is hot-swappable; server and store settings need a
// restart.
func (a *App) ReloadConfig(cfg *config.Config) {
	a.Policies.Replace(cfg.Exams)
	logger.Log.Info("Exam policies reloaded", zap.Int("exams", len(cfg.Exams)))
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := database.Seed(db, cfg.Exams); err != nil {
		logger.Log.Fatal("Failed to seed database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config:   cfg,
		DB:       db,
		Redis:    rdb,
		Policies: service.NewPolicyTable(cfg.Exams),
	}

	repos := app.initRepositories(db, rdb)
	svcs := app.initServices(repos, db)
	ctrls := app.initControllers(svcs, repos, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("exam-coach", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, ctrls, cfg)

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
