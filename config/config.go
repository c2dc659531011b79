package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database connection described by the environment.
//
// DB_DRIVER selects the driver: "mysql" (default) builds a DSN from the
// DB_USER/DB_PASSWORD/DB_HOST/DB_PORT/DB_NAME variables, "sqlite" opens the
// file named by DB_PATH (":memory:" if unset).
func InitDB() (*gorm.DB, error) {
	driver := getEnv("DB_DRIVER", "mysql")

	switch driver {
	case "sqlite":
		path := getEnv("DB_PATH", ":memory:")
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	case "mysql":
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			getEnv("DB_USER", "root"),
			os.Getenv("DB_PASSWORD"),
			getEnv("DB_HOST", "127.0.0.1"),
			getEnv("DB_PORT", "3306"),
			getEnv("DB_NAME", "hotel"),
		)
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", driver)
	}
}

// ServerPort returns the HTTP listen port (PORT env, default 10000).
func ServerPort() string {
	return getEnv("PORT", "10000")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
