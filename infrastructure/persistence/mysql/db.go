/*
Package mysql implements the repository interfaces on GORM/MySQL. GORM
association features are not used; every child row is written and read
explicitly so the order aggregate boundary stays visible in the code.
*/
package mysql

import (
	"fmt"

	"farmshop/config"
	"farmshop/domain/catalog"
	"farmshop/domain/order"
	"farmshop/domain/shipping"
	"farmshop/domain/user"
	"farmshop/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the MySQL connection, applies pool settings and runs
// the schema migration.
func Connect(cfg *config.DatabaseConfig, logLevel string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&loc=Local&charset=utf8mb4&collation=utf8mb4_unicode_ci&readTimeout=10s&writeTimeout=10s",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Database)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.NewGormLoggerAdapter(parseLogLevel(logLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	logger.Info("Database connected",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Database),
		zap.Int("max_open_conns", cfg.MaxOpenConns),
	)

	return db, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&user.Token{},
		&user.Address{},
		&user.UserAddress{},
		&catalog.Product{},
		&catalog.ProductTranslation{},
		&catalog.Category{},
		&catalog.CategoryTranslation{},
		&catalog.ProductCategory{},
		&catalog.Language{},
		&shipping.City{},
		&shipping.PickupStop{},
		&shipping.Pickup{},
		&shipping.HomeDelivery{},
		&order.PlacedOrder{},
		&order.LineItem{},
		&order.OrderAddress{},
		&order.Customer{},
		&order.PickupOrder{},
		&order.HomeDeliveryOrder{},
	)
}

func parseLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "debug", "info":
		return gormlogger.Info
	case "warn":
		return gormlogger.Warn
	case "error":
		return gormlogger.Error
	case "silent":
		return gormlogger.Silent
	default:
		return gormlogger.Warn
	}
}
