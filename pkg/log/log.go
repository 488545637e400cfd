// Package log envolve o logrus com correlation id por requisição e campos de registro (dono e período).
package log

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Fields logrus.Fields

type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
}

type contextKey string

const CorrelationIDKey contextKey = "correlation_id"

const (
	correlationIDField = "correlation_id"
	ownerField         = "owner_id"
	periodField        = "period"
)

type logger struct {
	entry *logrus.Entry
}

// L é o logger global; Configure e SetupTestLogger o substituem
var L Logger = newLogger()

func newLogger() Logger {
	return &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
}

// IsDevelopment considera desenvolvimento quando APP_ENV está vazio, "dev" ou "development"
func IsDevelopment() bool {
	switch os.Getenv("APP_ENV") {
	case "", "dev", "development":
		return true
	}
	return false
}

// Configure usa texto em desenvolvimento e JSON nos demais ambientes.
// Níveis inválidos caem para info.
func Configure(level string) {
	if IsDevelopment() {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05",
			PadLevelText:    true,
		})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
	logrus.SetOutput(os.Stdout)

	L = newLogger()
}

func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetReportCaller(false)

	L = newLogger()
}

// Em desenvolvimento só estes campos (e os user_*) chegam na saída
var devFields = map[string]bool{
	correlationIDField: true,
	ownerField:         true,
	periodField:        true,
	"method":           true,
	"path":             true,
	"status_code":      true,
	"duration_ms":      true,
	"error":            true,
	"level":            true,
	"job":              true,
}

func keepInDevelopment(key string) bool {
	return devFields[key] || strings.HasPrefix(key, "user_")
}

func (l *logger) WithField(key string, value interface{}) Logger {
	return l.WithFields(Fields{key: value})
}

func (l *logger) WithFields(fields Fields) Logger {
	kept := logrus.Fields(fields)
	if IsDevelopment() {
		kept = logrus.Fields{}
		for k, v := range fields {
			if keepInDevelopment(k) {
				kept[k] = v
			}
		}
	}
	if len(kept) == 0 {
		return l
	}
	return &logger{entry: l.entry.WithFields(kept)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

func (l *logger) WithContext(ctx context.Context) Logger {
	if id := GetCorrelationID(ctx); id != "" {
		return l.WithField(correlationIDField, id)
	}
	return l
}

func (l *logger) Debug(args ...interface{}) {
	l.entry.Debug(args...)
}

func (l *logger) Info(args ...interface{}) {
	l.entry.Info(args...)
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *logger) Warn(args ...interface{}) {
	l.entry.Warn(args...)
}

func (l *logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *logger) Error(args ...interface{}) {
	l.entry.Error(args...)
}

func (l *logger) Fatal(args ...interface{}) {
	l.entry.Fatal(args...)
}

// WithCorrelationID gera um id novo para a requisição e o guarda no contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}

// ForRecord identifica o dono e o período do registro em processamento
func ForRecord(ctx context.Context, owner int, period fmt.Stringer) Logger {
	return ForContext(ctx).WithFields(Fields{
		ownerField:  owner,
		periodField: period.String(),
	})
}
