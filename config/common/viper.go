package common

import (
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/viper"
)

type Config struct {
	Viper *viper.Viper
}

func NewViper() *Config {
	config := viper.New()
	config.SetConfigFile(".env")
	config.AddConfigPath("../")
	config.AutomaticEnv()

	log.Trace("Checking file .env ....")
	if err := config.ReadInConfig(); err != nil {
		panic("failed read config")
	}
	return &Config{Viper: config}
}

func (c *Config) GetAppConfig() (appName string) {
	return c.Viper.GetString("APP_NAME")
}

func (c *Config) GetServerPort() string {
	port := c.Viper.GetString("APP_PORT")
	if port == "" {
		port = "8080"
	}
	return port
}

func (c *Config) GetCorsOrigins() string {
	origins := c.Viper.GetString("CORS_ORIGINS")
	if origins == "" {
		origins = "http://localhost:5173"
	}
	return origins
}

func (c *Config) GetDatabaseConfig() (dbHost, dbUser, dbPassword, dbName, dbPort string) {
	dbHost = c.Viper.GetString("DB_HOSTNAME")
	dbUser = c.Viper.GetString("DB_USER")
	dbPassword = c.Viper.GetString("DB_PASSWORD")
	dbName = c.Viper.GetString("DB_NAME")
	dbPort = c.Viper.GetString("DB_PORT")

	return dbHost, dbUser, dbPassword, dbName, dbPort
}

func (c *Config) GetJwtConfig() []byte {
	jwtSecret := c.Viper.GetString("JWT_SECRET")
	return []byte(jwtSecret)
}

// GetPresenceWindow is how long a user stays "online" after their last
// authenticated request; the user-count poll reads this.
func (c *Config) GetPresenceWindow() time.Duration {
	seconds := c.Viper.GetInt("PRESENCE_WINDOW_SECONDS")
	if seconds <= 0 {
		seconds = 30
	}
	return time.Duration(seconds) * time.Second
}
