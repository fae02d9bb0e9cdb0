package env

import (
	"net"
	"os"
	"slot_backend/internal/config"
	"strings"

	"go.uber.org/zap/zapcore"
)

const (
	httpAddrEnvName = "HTTP_ADDR"
	logLevelEnvName = "LOG_LEVEL"

	defaultHTTPAddr = ":8080"
)

type httpConfig struct {
	address string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	addr := os.Getenv(httpAddrEnvName)
	if addr == "" {
		addr = defaultHTTPAddr
	}
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return nil, err
	}

	return &httpConfig{address: addr}, nil
}

func (cfg *httpConfig) Address() string {
	return cfg.address
}

type logConfig struct {
	level zapcore.Level
}

// NewLogConfig - уровень логирования, по умолчанию info
func NewLogConfig() (config.LogConfig, error) {
	raw := strings.TrimSpace(os.Getenv(logLevelEnvName))
	if raw == "" {
		return &logConfig{level: zapcore.InfoLevel}, nil
	}

	level, err := zapcore.ParseLevel(raw)
	if err != nil {
		return nil, err
	}
	return &logConfig{level: level}, nil
}

func (cfg *logConfig) Level() zapcore.Level {
	return cfg.level
}
