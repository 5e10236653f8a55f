// @title        Daily Diet API
// @version      1.0
// @description  記錄每日餐點並統計飲食計畫達成狀況的 API
// @host         localhost:3333
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"daily-diet/internal/cache"
	"daily-diet/internal/database"
	"daily-diet/internal/logging"
	"daily-diet/internal/router"
	"daily-diet/internal/telemetry"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	_ "daily-diet/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

type config struct {
	dbURL         string
	redisAddr     string
	redisPassword string
	redisDB       int
	port          string
	tokenTTL      time.Duration
	logLevel      string
}

func loadConfig() (config, error) {
	cfg := config{
		dbURL:         os.Getenv("DATABASE_URL"),
		redisAddr:     os.Getenv("REDIS_ADDR"),
		redisPassword: os.Getenv("REDIS_PASSWORD"),
		port:          os.Getenv("PORT"),
		logLevel:      os.Getenv("LOG_LEVEL"),
		tokenTTL:      24 * time.Hour,
	}
	if cfg.dbURL == "" {
		return cfg, fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}
	if cfg.redisAddr == "" {
		return cfg, fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}

	redisDBStr := os.Getenv("REDIS_DB")
	if redisDBStr == "" {
		return cfg, fmt.Errorf("環境變數 REDIS_DB 未設定")
	}
	redisIndex, err := strconv.Atoi(redisDBStr)
	if err != nil {
		return cfg, fmt.Errorf("無效的 REDIS_DB: %v", err)
	}
	cfg.redisDB = redisIndex

	if os.Getenv("JWT_SECRET") == "" {
		return cfg, fmt.Errorf("環境變數 JWT_SECRET 未設定")
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl <= 0 {
			return cfg, fmt.Errorf("無效的 TOKEN_TTL: %q", v)
		}
		cfg.tokenTTL = ttl
	}

	if cfg.port == "" {
		cfg.port = "3333"
	}
	return cfg, nil
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.logLevel)
	if err != nil {
		return fmt.Errorf("無效的 LOG_LEVEL: %v", err)
	}

	db, err := newPgxPool(context.Background(), cfg.dbURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.redisAddr, cfg.redisPassword, cfg.redisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			logger.WithError(err).Warn("關閉 Redis 連線失敗")
		}
	}()

	if err := runMigrationsFn(cfg.dbURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.RequestID())
	e.Use(logging.Inject(logger))
	e.Use(logging.RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(telemetry.Middleware())

	router.Setup(e, db, rdb, cfg.tokenTTL)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	logger.WithFields(logrus.Fields{"port": cfg.port, "token_ttl": cfg.tokenTTL.String()}).Info("server starting")
	return startServer(e, ":"+cfg.port)
}

func main() {
	if err := run(); err != nil {
		logrus.WithError(err).Error("service exited")
		exitFunc(1)
	}
}
