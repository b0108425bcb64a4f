package logger

import (
	"context"
	"fmt"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	ct "cadastro/pkg/context"
)

// Logger writes structured JSON lines and, through otelzap, attaches the
// trace and span ids found in the context. The request id is added when the
// context carries one.
type Logger struct {
	Logger      *otelzap.Logger
	serviceName string
}

func New(serviceName string, development bool) (*Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.TimeKey = "timestamp"

	if development {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	zapLogger, err := config.Build()

	if err != nil {
		return nil, fmt.Errorf("failed to create zap logger: %w", err)
	}

	return Wrap(zapLogger, serviceName), nil
}

// NewNop discards everything, used by tests.
func NewNop() *Logger {
	return Wrap(zap.NewNop(), "test")
}

func Wrap(zapLogger *zap.Logger, serviceName string) *Logger {
	return &Logger{
		Logger:      otelzap.New(zapLogger, otelzap.WithMinLevel(zapcore.InfoLevel)),
		serviceName: serviceName,
	}
}

func (l *Logger) Sync() error {
	return l.Logger.Sync()
}

func (l *Logger) InfoWithTrace(ctx context.Context, msg string, fields ...zap.Field) {
	l.logWithTrace(ctx, zapcore.InfoLevel, msg, fields...)
}

func (l *Logger) WarnWithTrace(ctx context.Context, msg string, fields ...zap.Field) {
	l.logWithTrace(ctx, zapcore.WarnLevel, msg, fields...)
}

func (l *Logger) ErrorWithTrace(ctx context.Context, msg string, fields ...zap.Field) {
	l.logWithTrace(ctx, zapcore.ErrorLevel, msg, fields...)
}

func (l *Logger) logWithTrace(ctx context.Context, level zapcore.Level, msg string, fields ...zap.Field) {
	fields = append(fields, zap.String("service", l.serviceName))

	if requestID := ct.RequestID(ctx); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}

	switch level {
	case zapcore.ErrorLevel:
		l.Logger.Ctx(ctx).Error(msg, fields...)
	case zapcore.WarnLevel:
		l.Logger.Ctx(ctx).Warn(msg, fields...)
	default:
		l.Logger.Ctx(ctx).Info(msg, fields...)
	}
}
