package logger

import (
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger writes structured JSON log lines tagged with service and hostname.
type Logger struct {
	service  string
	hostname string
	handler  *zap.Logger
}

// New creates a logger for service writing JSON to w at the given level
// ("debug", "info", "warn", "error"). Unknown levels fall back to info.
func New(service, level string, w io.Writer) *Logger {
	hostname, _ := os.Hostname()

	lvl := zapcore.InfoLevel
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	encoderCfg.MessageKey = "message"

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(w),
		lvl,
	)

	return &Logger{
		service:  service,
		hostname: hostname,
		handler:  zap.New(core),
	}
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{handler: zap.NewNop()}
}

// GenerateRequestID returns a new random request identifier.
func GenerateRequestID() string {
	return uuid.NewString()
}

func (l *Logger) Debug(action, message, requestID string, fields map[string]interface{}) {
	l.handler.Debug(message, l.fields(action, requestID, fields)...)
}

func (l *Logger) Info(action, message, requestID string, fields map[string]interface{}) {
	l.handler.Info(message, l.fields(action, requestID, fields)...)
}

func (l *Logger) Warn(action, message, requestID string, fields map[string]interface{}) {
	l.handler.Warn(message, l.fields(action, requestID, fields)...)
}

// Error logs at error level. err may be nil.
func (l *Logger) Error(action, message, requestID string, err error, fields map[string]interface{}) {
	zf := l.fields(action, requestID, fields)
	if err != nil {
		zf = append(zf, zap.Error(err))
	}
	l.handler.Error(message, zf...)
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() error {
	return l.handler.Sync()
}

func (l *Logger) fields(action, requestID string, extra map[string]interface{}) []zap.Field {
	zf := make([]zap.Field, 0, 4+len(extra))
	zf = append(zf,
		zap.String("service", l.service),
		zap.String("hostname", l.hostname),
		zap.String("action", action),
	)
	if requestID != "" {
		zf = append(zf, zap.String("request_id", requestID))
	}
	for k, v := range extra {
		zf = append(zf, zap.Any(k, v))
	}
	return zf
}
