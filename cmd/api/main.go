package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/organizeja/gestor-api/internal/audit"
	"github.com/organizeja/gestor-api/internal/billing"
	"github.com/organizeja/gestor-api/internal/config"
	dbpkg "github.com/organizeja/gestor-api/internal/db"
	infraRepo "github.com/organizeja/gestor-api/internal/infra/repository"
	"github.com/organizeja/gestor-api/internal/jobs"
	"github.com/organizeja/gestor-api/internal/lock"
	"github.com/organizeja/gestor-api/internal/routes"
)

func main() {

	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	logrus.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
	}
	locker := lock.NewLocker(rdb)

	billingService, err := billing.NewService(db, cfg)
	if err != nil {
		logrus.Fatalf("failed to init billing: %v", err)
	}

	// Varredura diária de estoque baixo
	sweep := jobs.NewLowStockSweep(
		infraRepo.NewInventoryGormRepository(db),
		audit.NewDispatcher(audit.New(db)),
	)
	if err := sweep.Start(cfg.LowStockCron); err != nil {
		logrus.Fatalf("failed to start jobs: %v", err)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, locker, billingService)

	logrus.Infof("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logrus.Fatalf("failed to start server: %v", err)
	}
}
