package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config — настройки логгера. Переменные: SENIORITY_LOG_LEVEL, SENIORITY_LOG_FORMAT, SENIORITY_LOG_FILE.
type Config struct {
	Level  string `envconfig:"LEVEL" default:"info"`
	Format string `envconfig:"FORMAT" default:"text"` // text | json
	File   string `envconfig:"FILE" default:"app.log"` // пусто — только stderr
}

// logWriter открывает файл лога и возвращает writer в файл + stderr (и в файл, и в консоль).
// Без имени файла или при ошибке открытия возвращает только stderr.
func logWriter(file string) io.Writer {
	if file == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return os.Stderr
	}
	return io.MultiWriter(f, os.Stderr)
}

// New возвращает логгер с текстовым выводом в stderr и уровнем Info.
func New() *slog.Logger {
	return NewFromConfig(Config{Level: "info"})
}

// NewWithLevel возвращает логгер с заданным уровнем (debug, info, warn, error).
func NewWithLevel(level string) *slog.Logger {
	return NewFromConfig(Config{Level: level})
}

// NewFromConfig собирает логгер по конфигу.
func NewFromConfig(cfg Config) *slog.Logger {
	return newLogger(logWriter(cfg.File), cfg)
}

func newLogger(w io.Writer, cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel переводит строку в slog.Level; неизвестное значение — Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
