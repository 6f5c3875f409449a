package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/ebdapp/cadastro/internal/app/controllers"
	appMigrations "github.com/ebdapp/cadastro/internal/app/migrations"
	appRepos "github.com/ebdapp/cadastro/internal/app/repositories"
	appRoutes "github.com/ebdapp/cadastro/internal/app/routes"
	appServices "github.com/ebdapp/cadastro/internal/app/services"
	"github.com/ebdapp/cadastro/internal/config"
	"github.com/ebdapp/cadastro/internal/db"
	appMiddleware "github.com/ebdapp/cadastro/internal/middleware"
	pkgAuth "github.com/ebdapp/cadastro/internal/pkg/auth"
	"github.com/ebdapp/cadastro/internal/pkg/helpers"
	"github.com/ebdapp/cadastro/internal/pkg/logger"
	"github.com/ebdapp/cadastro/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService      *appServices.AuthService
	PessoaService    *appServices.PessoaService
	ReportService    *appServices.ReportService
	AuthController   *appControllers.AuthController
	PessoaController *appControllers.PessoaController
	ReportController *appControllers.ReportController
	AuthMiddleware   *appMiddleware.AuthMiddleware
	Repos            *appRepos.Repositories
	JWTService       *pkgAuth.JWTService
	Logger           zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), cfg, dbPool, lgr); err != nil {
		// Startup continues; the register flow can still create accounts
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	sessaoRepo := appRepos.NewSessaoRepository(dbPool)
	if removed, err := sessaoRepo.DeleteExpired(context.Background()); err != nil {
		lgr.Warn().Err(err).Msg("Failed to purge expired sessoes")
	} else if removed > 0 {
		lgr.Info().Int64("removed", removed).Msg("Purged expired sessoes")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.Session.Secret,
		SessionTokenExp: helpers.ParseDuration(cfg.Session.TokenExpiration, 12*time.Hour),
		TokenIssuer:     cfg.Session.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UsuarioRepository,
		deps.Repos.SessaoRepository,
		deps.JWTService,
		lgr,
	)
	deps.PessoaService = appServices.NewPessoaService(deps.Repos.PessoaRepository, lgr)
	deps.ReportService = appServices.NewReportService(deps.Repos.PessoaRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService,
		func(c *gin.Context, jti string) error {
			return deps.AuthService.ValidateSession(c, jti)
		})

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.PessoaController = appControllers.NewPessoaController(deps.PessoaService, deps.AuthService)
	deps.ReportController = appControllers.NewReportController(deps.ReportService, deps.AuthService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.PessoaController,
		deps.ReportController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
