package logger

import (
	"strings"

	"github.com/xraph/go-utils/log"
)

// Logger represents the logging interface.
type Logger = log.Logger

// Field represents a structured log field.
type Field = log.Field

// Field constructors.
var (
	String   = log.String
	Int      = log.Int
	Bool     = log.Bool
	Duration = log.Duration
	Error    = log.Error
)

// NewDevelopmentLogger creates a development logger with enhanced colors.
func NewDevelopmentLogger() Logger {
	return log.NewDevelopmentLogger()
}

// NewProductionLogger creates a production logger.
func NewProductionLogger() Logger {
	return log.NewProductionLogger()
}

// NewNoopLogger creates a logger that does nothing.
func NewNoopLogger() Logger {
	return log.NewNoopLogger()
}

// ForEnvironment picks the development logger for "development" and "dev",
// and the production logger for everything else.
func ForEnvironment(env string) Logger {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "development", "dev":
		return NewDevelopmentLogger()
	default:
		return NewProductionLogger()
	}
}

// OrNoop returns l, or a noop logger when l is nil.
func OrNoop(l Logger) Logger {
	if l == nil {
		return NewNoopLogger()
	}

	return l
}
