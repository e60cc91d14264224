package config

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"public-chat-app/config/common"
	"public-chat-app/config/logger"
	"public-chat-app/entity"
)

type DBConfig struct {
	*gorm.DB
	*logger.AppLogger
}

func NewDB(config *common.Config, log *logger.AppLogger) *DBConfig {
	db := initDatabase(config, log)
	return &DBConfig{DB: db, AppLogger: log}
}

func (db *DBConfig) GetDB() *gorm.DB {
	return db.DB
}

func initDatabase(cfg *common.Config, log *logger.AppLogger) *gorm.DB {
	dbHost, dbUser, dbPassword, dbName, dbPort := cfg.GetDatabaseConfig()
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		dbHost, dbUser, dbPassword, dbName, dbPort,
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Http.Error.Error().Err(err).Msg("failed to connect to database")
		panic("failed to connect database")
	}

	conn, err := db.DB()
	if err != nil {
		panic("failed to connect database")
	}

	if err := Migrate(db); err != nil {
		log.Http.Error.Error().Err(err).Msg("failed to run migration")
		panic("failed run migration")
	}

	conn.SetMaxIdleConns(10)
	conn.SetMaxOpenConns(100)
	conn.SetConnMaxLifetime(time.Second * time.Duration(300))

	log.Http.Info.Info().Str("database", dbName).Msg("connection opened to database")
	return db
}

// Migrate creates the schema and seeds the fixed theme presets plus the
// settings singleton. Idempotent, so it runs on every start.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Message{},
		&entity.ChatTheme{},
		&entity.ChatSettings{},
	); err != nil {
		return err
	}

	return seed(db)
}

func seed(db *gorm.DB) error {
	for _, preset := range entity.DefaultThemes() {
		theme := preset
		if err := db.Where("name = ?", theme.Name).FirstOrCreate(&theme).Error; err != nil {
			return err
		}
	}

	var settings entity.ChatSettings
	return db.FirstOrCreate(&settings, entity.ChatSettings{ID: 1}).Error
}
