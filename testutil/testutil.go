package testutil

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"public-chat-app/config"
	"public-chat-app/config/common"
	"public-chat-app/config/logger"
)

// NewTestDB opens an in-memory sqlite database with the full schema and
// seed data (theme presets plus the settings row).
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return db
}

// NewTestConfig builds a Config without touching the filesystem.
func NewTestConfig(t *testing.T) *common.Config {
	t.Helper()

	v := viper.New()
	v.Set("APP_NAME", "public-chat-app-test")
	v.Set("JWT_SECRET", "test-secret")
	v.Set("PRESENCE_WINDOW_SECONDS", 30)
	return &common.Config{Viper: v}
}

func NewQuietLog() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// NewQuietAppLogger builds an AppLogger that discards everything, so
// tests never create the logs directory.
func NewQuietAppLogger() *logger.AppLogger {
	quiet := zerolog.New(io.Discard)
	channel := logger.CommonLogger{
		Info:    quiet,
		Error:   quiet,
		Trace:   quiet,
		Warning: quiet,
	}
	return &logger.AppLogger{Http: channel, WS: channel}
}
