// @title        Admin Console API
// @version      1.0
// @description  管理後台 API：建立使用者、查詢送出紀錄
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"admin-console/internal/cache"
	"admin-console/internal/client"
	"admin-console/internal/config"
	"admin-console/internal/database"
	"admin-console/internal/events"
	"admin-console/internal/form"
	"admin-console/internal/router"
	"admin-console/internal/service"
	"admin-console/internal/view"
	"admin-console/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	glog "github.com/labstack/gommon/log"

	_ "admin-console/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps the form schema for Echo
// swagger:ignore
type CustomValidator struct {
	schema *form.Schema
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.schema.Struct(i)
}

const (
	workerQueueSize = 64
	// 送出鎖需比上游呼叫多撐一段時間，避免呼叫中途過期
	lockTTLMargin = 5 * time.Second
)

func lockTTL(submitTimeout time.Duration) time.Duration {
	return submitTimeout + lockTTLMargin
}

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	ensureAdmin     = service.EnsureAdmin
	newWorkerPool   = worker.NewPool
	newPublisher    = func(url, subject string) (events.Publisher, error) {
		return events.NewNATSPublisher(url, subject)
	}
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc    = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		created, err := ensureAdmin(context.Background(), db, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword)
		if err != nil {
			return fmt.Errorf("建立管理員失敗: %v", err)
		}
		if created {
			log.Printf("已建立管理員 %s", cfg.AdminEmail)
		}
	}

	var publisher events.Publisher = events.Nop{}
	if cfg.NATSURL != "" {
		publisher, err = newPublisher(cfg.NATSURL, cfg.NATSSubject)
		if err != nil {
			return err
		}
	}
	defer publisher.Close()

	wp := newWorkerPool(cfg.WorkerCount, workerQueueSize)
	defer wp.Stop()

	renderer, err := view.NewRenderer()
	if err != nil {
		return fmt.Errorf("載入樣板失敗: %v", err)
	}

	schema := form.NewSchema()

	e := echo.New()
	e.Validator = &CustomValidator{schema: schema}
	e.Renderer = renderer
	e.Logger.SetLevel(glog.INFO)
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	submitter := service.NewSubmitter(service.SubmitterConfig{
		Users:     client.NewUserAPI(cfg.UserAPIURL, client.WithAdminIDResolution(cfg.ResolveAdminID)),
		Lock:      cache.NewFormLock(rdb, lockTTL(cfg.SubmitTimeout)),
		DB:        db,
		Pool:      wp,
		Publisher: publisher,
		Logger:    e.Logger,
		Timeout:   cfg.SubmitTimeout,
	})

	router.Setup(e, router.Deps{
		DB:        db,
		Cache:     rdb,
		Schema:    schema,
		Submitter: submitter,
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, cfg.HTTPAddr)
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
