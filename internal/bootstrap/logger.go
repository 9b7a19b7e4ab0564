package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/LoadoutCalc_Go/internal/config"
	"github.com/osse101/LoadoutCalc_Go/internal/logger"
)

// SetupLogger initializes the application logger with a timestamped log file
// in cfg.LogDir. With console set, records are also written to stdout; the
// terminal planner passes false because it owns the screen.
// Returns the log file handle (caller must close) and any error encountered.
func SetupLogger(cfg *config.Config, program string, console bool) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(cfg.LogDir, program)

	timestamp := time.Now().Format(LogFileTimestampFormat)
	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, program, timestamp))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	var w io.Writer = logFile
	if console {
		w = io.MultiWriter(os.Stdout, logFile)
	}

	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, cfg.IsDevelopment())
	logger.InitLoggerWithWriter(logCfg, w)

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "file", logFileName)
	slog.Info(LogMsgStarting,
		"program", program,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"data_dir", cfg.DataDir,
		"schema_check", cfg.SchemaCheck,
		"cost_cache_size", cfg.CostCacheSize,
		"port", cfg.Port)

	return logFile, nil
}

// cleanupLogs removes the oldest log files of program so that, together with
// the file about to be opened, at most LogFileRetentionCount+1 remain.
func cleanupLogs(logDir, program string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	prefix := program + "_"
	var logFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() && strings.HasPrefix(name, prefix) && strings.HasSuffix(name, LogFileExtension) {
			logFiles = append(logFiles, name)
		}
	}

	// Timestamped names sort chronologically
	sort.Strings(logFiles)

	for len(logFiles) > LogFileRetentionCount {
		if err := os.Remove(filepath.Join(logDir, logFiles[0])); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", logFiles[0], "error", err)
		}
		logFiles = logFiles[1:]
	}
}
