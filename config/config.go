package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB membuka koneksi database berdasarkan environment.
// DB_DRIVER=sqlite dipakai untuk pengembangan lokal, default mysql.
func InitDB() (*gorm.DB, error) {
	driver := getEnv("DB_DRIVER", "mysql")

	if driver == "sqlite" {
		path := getEnv("DB_PATH", "seating.db")
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		getEnv("DB_USER", "seating_user"),
		getEnv("DB_PASSWORD", "seating_password"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "3306"),
		getEnv("DB_NAME", "restaurant_seating"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// NoShowGraceMinutes mengembalikan grace period (menit) sebelum reservasi
// PENDING dianggap NO_SHOW.
func NoShowGraceMinutes() int {
	if v := os.Getenv("NOSHOW_GRACE_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 30
}
