package config

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	DB   *pgxpool.Pool
	Gorm *gorm.DB
)

func InitDB() {
	dsn := databaseURL()
	initPgx(dsn)
	initGORM(dsn)
}

func databaseURL() string {
	if url := getEnv("DATABASE_URL", ""); url != "" {
		return url
	}
	Log.Warn("⚠️ DATABASE_URL not set, using local default")
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "fixora"),
	)
}

func initPgx(dsn string) {
	var err error
	DB, err = pgxpool.New(context.Background(), dsn)
	if err != nil {
		Log.Fatalf("❌ Unable to connect to database: %v", err)
	}

	if err = DB.Ping(context.Background()); err != nil {
		Log.Fatalf("❌ Database ping failed: %v", err)
	}

	Log.Info("✅ Database connected (pgx)")
}

func initGORM(dsn string) {
	gormLogger := logger.Default.LogMode(logger.Info)
	if App.IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var err error
	Gorm, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		Log.Fatalf("❌ Failed to connect to database with GORM: %v", err)
	}
	if sqlDB, err := Gorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	Log.Info("✅ Database connected (GORM)")
}

func CloseDB() {
	if DB != nil {
		DB.Close()
		Log.Info("✅ Database connection closed (pgx)")
	}
	if Gorm != nil {
		sqlDB, _ := Gorm.DB()
		if sqlDB != nil {
			sqlDB.Close()
			Log.Info("✅ Database connection closed (GORM)")
		}
	}
}

// WithTimeout returns a context with a 10s timeout
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}
