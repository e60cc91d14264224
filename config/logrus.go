package config

import "github.com/sirupsen/logrus"

// NewLog is the application logger handed to usecases and handlers; the
// file-backed zerolog pair in config/logger covers the rotated audit logs.
func NewLog() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetLevel(logrus.InfoLevel)
	return log
}
