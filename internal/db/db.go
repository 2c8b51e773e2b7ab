package db

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/organizeja/gestor-api/internal/config"
	"github.com/organizeja/gestor-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	// gen_random_uuid precisa do pgcrypto em Postgres < 13
	db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`)

	if err := db.AutoMigrate(
		&models.Company{},
		&models.User{},
		&models.CompanyMember{},
		&models.CompanyPlan{},
		&models.ProductCategory{},
		&models.Product{},
		&models.ProductMovement{},
		&models.Service{},
		&models.ServiceMaterial{},
		&models.Client{},
		&models.Event{},
		&models.FinancialMovement{},
		&models.AuditLog{},
	); err != nil {
		logrus.Fatalf("failed to migrate: %v", err)
	}

	return db
}
