package env

import (
	"fmt"
	"os"
	"slot_machine/internal/config"
	"strconv"
)

const (
	logModeEnvName  = "LOG_MODE"
	logLevelEnvName = "LOG_LEVEL"
	logAppEnvName   = "LOG_APP"
	logDirEnvName   = "LOG_DIR"
	logFileEnvName  = "LOG_FILE"
)

type logConfig struct {
	mode  string
	level string
	app   string
	dir   string
	file  bool
}

func NewLogConfig() (config.LogConfig, error) {
	cfg := &logConfig{
		mode:  getenv(logModeEnvName, "dev"),
		level: getenv(logLevelEnvName, "info"),
		app:   getenv(logAppEnvName, "slot_machine"),
		dir:   getenv(logDirEnvName, "logs"),
	}

	if raw := os.Getenv(logFileEnvName); len(raw) != 0 {
		file, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", logFileEnvName, err)
		}
		cfg.file = file
	}

	return cfg, nil
}

func getenv(name, def string) string {
	if v := os.Getenv(name); len(v) != 0 {
		return v
	}
	return def
}

func (cfg *logConfig) Mode() string {
	return cfg.mode
}

func (cfg *logConfig) Level() string {
	return cfg.level
}

func (cfg *logConfig) App() string {
	return cfg.app
}

func (cfg *logConfig) Dir() string {
	return cfg.dir
}

func (cfg *logConfig) File() bool {
	return cfg.file
}
