// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/habit-tracker/backend/config"
	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/application/usecase/auth"
	"github.com/habit-tracker/backend/internal/application/usecase/category"
	"github.com/habit-tracker/backend/internal/application/usecase/check"
	"github.com/habit-tracker/backend/internal/application/usecase/goal"
	"github.com/habit-tracker/backend/internal/application/usecase/stats"
	"github.com/habit-tracker/backend/internal/application/usecase/user"
	"github.com/habit-tracker/backend/internal/infra/server/router"
	"github.com/habit-tracker/backend/internal/integration/adapters"
	"github.com/habit-tracker/backend/internal/integration/cache"
	"github.com/habit-tracker/backend/internal/integration/email"
	"github.com/habit-tracker/backend/internal/integration/email/templates"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/habit-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/habit-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil; score caching is skipped in that case.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	checkRepo := persistence.NewCheckRepository(db)
	streakRepo := persistence.NewStreakRecordRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	clock := adapters.NewSystemClock()

	var scoresCache adapter.ScoresCache
	if redisClient != nil {
		scoresCache = cache.NewScoresCache(redisClient)
	}

	// Create email pipeline
	emailService := email.NewService(emailQueueRepo)
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	var sender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		sender = email.NewMockEmailSender()
	}
	emailWorker := email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create user use cases
	getCurrentUserUseCase := user.NewGetCurrentUserUseCase(userRepo)
	updatePrefsUseCase := user.NewUpdatePreferencesUseCase(userRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	getCategoryUseCase := category.NewGetCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo, goalRepo)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo, categoryRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo, categoryRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo, scoresCache)
	reorderGoalsUseCase := goal.NewReorderGoalsUseCase(goalRepo)

	// Create check use cases
	toggleCheckUseCase := check.NewToggleCheckUseCase(checkRepo, goalRepo, scoresCache)
	weekChecksUseCase := check.NewGetWeekChecksUseCase(checkRepo, goalRepo, clock)
	dateChecksUseCase := check.NewGetDateChecksUseCase(checkRepo, goalRepo)
	deleteCheckUseCase := check.NewDeleteCheckUseCase(checkRepo, scoresCache)

	// Create stats use cases
	dashboardStatsUseCase := stats.NewGetDashboardStatsUseCase(
		goalRepo,
		checkRepo,
		streakRepo,
		userRepo,
		emailService,
		clock,
		cfg.Stats.StreakLookbackDays,
	)
	streaksUseCase := stats.NewGetStreaksUseCase(goalRepo, checkRepo, streakRepo, clock)
	scoresUseCase := stats.NewGetScoresUseCase(goalRepo, checkRepo, scoresCache)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	userController := controller.NewUserController(
		getCurrentUserUseCase,
		updatePrefsUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		getCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		createGoalUseCase,
		getGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
		reorderGoalsUseCase,
	)

	checkController := controller.NewCheckController(
		toggleCheckUseCase,
		weekChecksUseCase,
		dateChecksUseCase,
		deleteCheckUseCase,
	)

	statsController := controller.NewStatsController(
		dashboardStatsUseCase,
		streaksUseCase,
		scoresUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		categoryController,
		goalController,
		checkController,
		statsController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		EmailWorker: emailWorker,
	}, nil
}
