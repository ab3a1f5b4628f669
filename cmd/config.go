package cmd

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	// CORSOrigins is a comma separated list of admin portal origins.
	CORSOrigins string

	OtelExporterEndpoint string
	OtelServiceName      string
	OtelSampleRate       string

	ReconcileSchedule string
	LogLevel          string
}

// DSN is the PostgreSQL connection string for gorm.
func (c Config) DSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslMode)
}

// AllowOrigins splits CORSOrigins; an empty value allows every origin.
func (c Config) AllowOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.CORSOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SampleRate parses OtelSampleRate, defaulting to sampling everything.
func (c Config) SampleRate() (float64, error) {
	if c.OtelSampleRate == "" {
		return 1, nil
	}
	rate, err := strconv.ParseFloat(c.OtelSampleRate, 64)
	if err != nil || rate < 0 || rate > 1 {
		return 0, fmt.Errorf("OTEL_SAMPLE_RATE must be a number in [0, 1], got %q", c.OtelSampleRate)
	}
	return rate, nil
}

// Level parses LogLevel (debug, info, warn, error); empty means info.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}
