package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config — настройки логгера. Переменные: FIBONACCI_LOG_LEVEL, FIBONACCI_LOG_FILE.
type Config struct {
	Level string `default:"info"`
	File  string `default:"app.log"` // пусто — только stderr
}

// logWriter открывает файл и возвращает writer в файл + stderr (и в файл, и в консоль).
// При ошибке открытия файла или пустом имени возвращает только stderr.
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

// ParseLevel переводит строку (debug, info, warn, error) в slog.Level. Неизвестное значение — Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New возвращает логгер с текстовым выводом по конфигу.
func New(cfg Config) *slog.Logger {
	return NewWithWriter(logWriter(cfg.File), cfg.Level)
}

// NewWithWriter возвращает логгер с заданным уровнем, пишущий в w.
func NewWithWriter(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}
