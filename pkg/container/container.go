package container

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"catalog-review-backend/internal/config"
	"catalog-review-backend/internal/infrastructure/cache"
	"catalog-review-backend/internal/infrastructure/database"
	"catalog-review-backend/internal/infrastructure/queue"
	"catalog-review-backend/pkg/jwt"

	"catalog-review-backend/internal/domains/comment"
	commentHandler "catalog-review-backend/internal/domains/comment/handler"
	commentRepo "catalog-review-backend/internal/domains/comment/repository"
	commentService "catalog-review-backend/internal/domains/comment/service"
	"catalog-review-backend/internal/domains/review"
	reviewHandler "catalog-review-backend/internal/domains/review/handler"
	reviewRepo "catalog-review-backend/internal/domains/review/repository"
	reviewService "catalog-review-backend/internal/domains/review/service"
	"catalog-review-backend/internal/domains/taxonomy"
	taxonomyHandler "catalog-review-backend/internal/domains/taxonomy/handler"
	taxonomyRepo "catalog-review-backend/internal/domains/taxonomy/repository"
	taxonomyService "catalog-review-backend/internal/domains/taxonomy/service"
	"catalog-review-backend/internal/domains/title"
	titleHandler "catalog-review-backend/internal/domains/title/handler"
	titleRepo "catalog-review-backend/internal/domains/title/repository"
	titleService "catalog-review-backend/internal/domains/title/service"
	"catalog-review-backend/internal/domains/user"
	userHandler "catalog-review-backend/internal/domains/user/handler"
	userRepo "catalog-review-backend/internal/domains/user/repository"
	userService "catalog-review-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application; it is the root of
// the dependency graph.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config      *config.Config
	DB          *database.PostgresDB
	Redis       *cache.RedisClient
	AsynqClient *asynq.Client
	JWTManager  *jwt.Manager

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	UserRepo     user.Repository
	CategoryRepo taxonomy.Repository
	GenreRepo    taxonomy.Repository
	TitleRepo    title.Repository
	ReviewRepo   review.Repository
	CommentRepo  comment.Repository

	// ========================================
	// SERVICE LAYER
	// ========================================
	AuthService     user.AuthService
	UserService     user.Service
	CategoryService taxonomy.Service
	GenreService    taxonomy.Service
	TitleService    title.Service
	ReviewService   review.Service
	CommentService  comment.Service

	// ========================================
	// HANDLER LAYER
	// ========================================
	AuthHandler     *userHandler.AuthHandler
	UserHandler     *userHandler.UserHandler
	CategoryHandler *taxonomyHandler.TermHandler
	GenreHandler    *taxonomyHandler.TermHandler
	TitleHandler    *titleHandler.TitleHandler
	ReviewHandler   *reviewHandler.ReviewHandler
	CommentHandler  *commentHandler.CommentHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the whole dependency graph.
//
// Order matters:
// 1. Config
// 2. Infrastructure (DB, Redis, queue client) - needs Config
// 3. Repositories - need Infrastructure
// 4. Services - need Repositories
// 5. Handlers - need Services
func NewContainer() (*Container, error) {
	log.Info().Msg("Initializing DI container")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("Config loaded")

	// ========================================
	// STEP 2: INITIALIZE INFRASTRUCTURE
	// ========================================
	if err := c.initInfrastructure(); err != nil {
		c.Cleanup()
		return nil, err
	}

	// ========================================
	// STEP 3-5: DOMAIN WIRING
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("DI container ready")
	return c, nil
}

func (c *Container) initInfrastructure() error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	// Redis backs the code attempt limiter. It is not fatal: the limiter
	// fails open and the worker owns the queue.
	c.Redis = cache.NewRedisClient(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	if err := c.Redis.Connect(ctx); err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, code attempt limiting disabled until it recovers")
	}

	c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     c.Config.Redis.Host,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	})

	c.JWTManager = jwt.NewManager(c.Config.JWT.Secret, c.Config.JWT.AccessTokenExpiry)
	return nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.CategoryRepo = taxonomyRepo.NewPostgresRepository(pool, taxonomy.Categories)
	c.GenreRepo = taxonomyRepo.NewPostgresRepository(pool, taxonomy.Genres)
	c.TitleRepo = titleRepo.NewPostgresRepository(pool)
	c.ReviewRepo = reviewRepo.NewPostgresRepository(pool)
	c.CommentRepo = commentRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	attempts := cache.NewAttemptLimiter(c.Redis, c.Config.Auth.MaxCodeAttempts, c.Config.Auth.AttemptWindow)
	mailer := queue.NewMailer(c.AsynqClient)

	c.AuthService = userService.NewAuthService(c.UserRepo, mailer, c.JWTManager, attempts)
	c.UserService = userService.NewUserService(c.UserRepo)
	c.CategoryService = taxonomyService.NewTermService(c.CategoryRepo)
	c.GenreService = taxonomyService.NewTermService(c.GenreRepo)
	c.TitleService = titleService.NewTitleService(c.TitleRepo, c.CategoryRepo, c.GenreRepo)
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo, c.TitleRepo)
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.ReviewRepo)
}

func (c *Container) initHandlers() {
	c.AuthHandler = userHandler.NewAuthHandler(c.AuthService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.CategoryHandler = taxonomyHandler.NewTermHandler(c.CategoryService)
	c.GenreHandler = taxonomyHandler.NewTermHandler(c.GenreService)
	c.TitleHandler = titleHandler.NewTitleHandler(c.TitleService)
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
}

// ========================================
// CLEANUP
// ========================================

// Cleanup releases infrastructure in reverse order of creation
func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up resources")

	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close asynq client")
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Redis")
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}
}
