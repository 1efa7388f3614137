package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"provider_map/internal/auth"
	"provider_map/internal/config"
	"provider_map/internal/handlers"
	"provider_map/internal/logger"
	"provider_map/internal/middleware"
	"provider_map/internal/models"
	"provider_map/internal/routes"
	"provider_map/internal/services"
	"provider_map/internal/storage"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := openDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected", "driver", cfg.Database.Driver)

	if err := migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedCategories(gormDB); err != nil {
		logger.Fatal("Failed to seed categories", "error", err)
	}
	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// openDatabase подключается к postgres или mysql по конфигу.
// TranslateError нужен, чтобы репозитории ловили gorm.ErrDuplicatedKey.
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}

	switch cfg.Database.Driver {
	case "mysql":
		return gorm.Open(mysql.Open(cfg.Database.DSN), gormCfg)
	case "postgres", "":
		return gorm.Open(postgres.Open(cfg.Database.DSN), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.ServiceProvider{},
		&models.User{},
		&models.Message{},
	)
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	files, err := storage.NewLocalStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}

	serviceContainer := services.NewServiceContainer(gormDB, cfg, files)
	appHandlers := handlers.NewAppHandlers(serviceContainer)

	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(ginRouter, appHandlers, files.BasePath())

	return ginRouter
}

// defaultCategories - стартовый набор; пустой справочник бесполезен для карты
var defaultCategories = []models.Category{
	{Value: "cargo", Label: "Грузовые машины"},
	{Value: "plumber", Label: "Сантехники"},
	{Value: "tow_truck", Label: "Эвакуаторы"},
	{Value: "electrician", Label: "Электрики"},
	{Value: "other", Label: "Другое"},
}

func seedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if err := db.Create(&defaultCategories).Error; err != nil {
		return err
	}
	logger.Info("Seeded default categories", "count", len(defaultCategories))
	return nil
}

// seedFirstAdmin создает супер-админа при первом запуске
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.Seed.AdminUsername == "" || cfg.Seed.AdminPassword == "" {
		logger.Warn("ADMIN_USERNAME or ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("role = ?", models.UserRoleSuperAdmin).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:     cfg.Seed.AdminUsername,
		Email:        cfg.Seed.AdminEmail,
		PasswordHash: hashed,
		Role:         models.UserRoleSuperAdmin,
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logger.Info("Seeded first super admin", "username", admin.Username)
	return nil
}
