package utils

import (
	"io"
	"log"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// LoggerConfig определяет конфигурацию для логгера
type LoggerConfig struct {
	// text or json
	Format string
	// defaults to os.Stdout
	Output io.Writer
	// Включить/выключить цвета для консоли
	EnableColors bool
}

// Logger wraps the standard logger with the colour choice made at startup.
type Logger struct {
	*log.Logger
	colors bool
}

// InitLogger инициализирует и возвращает логгер
func InitLogger(config ...LoggerConfig) *Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	prefix := "[Growth Journal] "

	if cfg.Format == "json" {
		return &Logger{Logger: log.New(cfg.Output, prefix, log.LstdFlags|log.LUTC)}
	}

	if cfg.EnableColors {
		prefix = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Render(prefix)
	}
	return &Logger{
		Logger: log.New(cfg.Output, prefix, log.LstdFlags|log.Lshortfile|log.LUTC),
		colors: cfg.EnableColors,
	}
}

// Status renders an HTTP status, coloured by class when colours are on.
func (l *Logger) Status(status int) string {
	s := strconv.Itoa(status)
	if !l.colors {
		return s
	}
	return lipgloss.NewStyle().Foreground(statusColor(status)).Render(s)
}

// Method renders an HTTP method, coloured when colours are on.
func (l *Logger) Method(method string) string {
	if !l.colors {
		return method
	}
	return lipgloss.NewStyle().Bold(true).Foreground(methodColor(method)).Render(method)
}

func statusColor(status int) lipgloss.Color {
	switch {
	case status >= 500:
		return lipgloss.Color("1") // Красный
	case status >= 400:
		return lipgloss.Color("3") // Желтый
	case status >= 300:
		return lipgloss.Color("6") // Голубой
	case status >= 200:
		return lipgloss.Color("2") // Зеленый
	default:
		return lipgloss.Color("7")
	}
}

func methodColor(method string) lipgloss.Color {
	switch method {
	case "GET":
		return lipgloss.Color("4")
	case "POST":
		return lipgloss.Color("3")
	default:
		return lipgloss.Color("7")
	}
}
