package bootstrap

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillpath/lms-backend/internal/app/controllers"
	"github.com/skillpath/lms-backend/internal/app/migrations"
	"github.com/skillpath/lms-backend/internal/app/repositories"
	"github.com/skillpath/lms-backend/internal/app/routes"
	"github.com/skillpath/lms-backend/internal/app/services"
	"github.com/skillpath/lms-backend/internal/config"
	"github.com/skillpath/lms-backend/internal/db"
	"github.com/skillpath/lms-backend/internal/middleware"
	pkgauth "github.com/skillpath/lms-backend/internal/pkg/auth"
	"github.com/skillpath/lms-backend/internal/pkg/helpers"
	"github.com/skillpath/lms-backend/internal/pkg/logger"
	"github.com/skillpath/lms-backend/internal/seed"
)

const (
	defaultConfigPath     = "configs/config.yaml"
	defaultMigrationsPath = "migrations"
	defaultTokenExpiry    = 168 * time.Hour
)

// Application bundles everything main needs to run and shut down
type Application struct {
	Config *config.Config
	DB     *db.PostgresDB
	Router *gin.Engine
}

// App wires configuration, database, migrations, seed data and the HTTP
// router together
func App() (*Application, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
	})

	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	migrator := migrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(defaultMigrationsPath); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	repos := repositories.NewRepositories(database.Pool)

	if err := seed.EnsureDefaultAdmin(context.Background(), repos.UserRepository); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to seed admin account: %w", err)
	}

	jwtService := pkgauth.NewJWTService(pkgauth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, defaultTokenExpiry),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	svcs := services.NewServices(repos, jwtService)
	ctrls := controllers.NewControllers(svcs)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	routes.SetupRoutes(router, ctrls, repos, jwtService, cfg)

	logger.Info().
		Str("port", cfg.Server.Port).
		Str("mode", cfg.Server.Mode).
		Msg("Application initialized")

	return &Application{
		Config: cfg,
		DB:     database,
		Router: router,
	}, nil
}
