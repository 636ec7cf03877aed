package logger

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"marketdeck/internal/trace"
)

var (
	// Global logger instance
	globalLogger *slog.Logger
	// Log level controlled by environment variable
	logLevel slog.Level
	// Whether detailed logging is enabled
	detailedLogging bool
)

// LogConfig holds logging configuration
type LogConfig struct {
	Level           string // DEBUG, INFO, WARN, ERROR
	Format          string // json or text
	DetailedLogging bool   // Enable detailed logs
}

// Init initializes the global logger based on environment variables.
// Tracing is initialized separately by the trace package; this logger only
// enriches records with the active span's ids.
func Init() error {
	return InitWithConfig(LoadConfigFromEnv())
}

// LoadConfigFromEnv loads logging configuration from environment variables
func LoadConfigFromEnv() LogConfig {
	return LogConfig{
		Level:           getEnvOrDefault("LOG_LEVEL", "INFO"),
		Format:          getEnvOrDefault("LOG_FORMAT", "json"),
		DetailedLogging: getEnvOrDefault("LOG_DETAILED", "false") == "true",
	}
}

// InitWithConfig initializes the logger with specific configuration
func InitWithConfig(config LogConfig) error {
	logLevel = parseLogLevel(config.Level)
	detailedLogging = config.DetailedLogging

	// Source information is attached manually in logWithTrace so the caller
	// location is the logging call site, not this package.
	opts := &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: false,
	}

	var handler slog.Handler
	if config.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
	return nil
}

// parseLogLevel converts string log level to slog.Level
func parseLogLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// getEnvOrDefault gets environment variable or returns default value
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Debug logs a debug message
func Debug(ctx context.Context, msg string, args ...any) {
	if !detailedLogging {
		return
	}
	logWithTrace(ctx, slog.LevelDebug, msg, 2, args...)
}

// Info logs an info message
func Info(ctx context.Context, msg string, args ...any) {
	logWithTrace(ctx, slog.LevelInfo, msg, 2, args...)
}

// Warn logs a warning message
func Warn(ctx context.Context, msg string, args ...any) {
	logWithTrace(ctx, slog.LevelWarn, msg, 2, args...)
}

// Error logs an error message
func Error(ctx context.Context, msg string, args ...any) {
	logWithTrace(ctx, slog.LevelError, msg, 2, args...)
}

// ErrorWithErr logs an error message with an error object
func ErrorWithErr(ctx context.Context, msg string, err error, args ...any) {
	if trace.Enabled() {
		span := oteltrace.SpanFromContext(ctx)
		if span.SpanContext().IsValid() {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}

	allArgs := append([]any{"error", err}, args...)
	logWithTrace(ctx, slog.LevelError, msg, 2, allArgs...)
}

// logWithTrace logs a message with trace ID and span ID if available.
// skip indicates how many stack frames to skip to reach the actual caller.
func logWithTrace(ctx context.Context, level slog.Level, msg string, skip int, args ...any) {
	if traceID, spanID, ok := trace.GetTraceFields(ctx); ok {
		args = append([]any{"trace_id", traceID, "span_id", spanID}, args...)
	}

	if detailedLogging {
		if pc, file, line, ok := runtime.Caller(skip); ok {
			if fn := runtime.FuncForPC(pc); fn != nil {
				args = append(args, "source", slog.GroupValue(
					slog.String("function", fn.Name()),
					slog.String("file", file),
					slog.Int("line", line),
				))
			}
		}
	}

	l := globalLogger
	if l == nil {
		l = slog.Default()
	}
	l.Log(ctx, level, msg, args...)
}

// OperationTimer helps measure operation duration with OpenTelemetry spans
type OperationTimer struct {
	ctx    context.Context
	span   oteltrace.Span
	start  time.Time
	fields []any
}

// StartOperation starts timing an operation with an OpenTelemetry span
func StartOperation(ctx context.Context, operation string, fields ...any) *OperationTimer {
	var span oteltrace.Span
	if trace.Enabled() {
		ctx, span = trace.StartSpan(ctx, operation)
		span.SetAttributes(spanAttrs(fields)...)
	}

	if detailedLogging {
		Debug(ctx, "Operation started", append([]any{"operation", operation}, fields...)...)
	}

	return &OperationTimer{
		ctx:    ctx,
		span:   span,
		start:  time.Now(),
		fields: fields,
	}
}

// End completes the operation timer and logs the duration
func (ot *OperationTimer) End(additionalFields ...any) {
	duration := time.Since(ot.start)

	if trace.Enabled() && ot.span != nil {
		ot.span.SetAttributes(attribute.Int64("duration_ms", duration.Milliseconds()))
		ot.span.SetAttributes(spanAttrs(additionalFields)...)
		ot.span.SetStatus(codes.Ok, "completed")
		ot.span.End()
	}

	if detailedLogging {
		fields := append(ot.fields, "duration_ms", duration.Milliseconds())
		fields = append(fields, additionalFields...)
		Debug(ot.ctx, "Operation completed", fields...)
	}
}

// EndWithError completes the operation timer with an error
func (ot *OperationTimer) EndWithError(err error, additionalFields ...any) {
	duration := time.Since(ot.start)

	if trace.Enabled() && ot.span != nil {
		ot.span.SetAttributes(attribute.Int64("duration_ms", duration.Milliseconds()))
		ot.span.RecordError(err)
		ot.span.SetStatus(codes.Error, err.Error())
		ot.span.End()
	}

	fields := append(ot.fields, "duration_ms", duration.Milliseconds(), "error", err)
	fields = append(fields, additionalFields...)
	Error(ot.ctx, "Operation failed", fields...)
}

// GetContext returns the context with the span
func (ot *OperationTimer) GetContext() context.Context {
	return ot.ctx
}

// spanAttrs converts alternating key/value log fields into span attributes.
func spanAttrs(fields []any) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		switch v := fields[i+1].(type) {
		case string:
			attrs = append(attrs, attribute.String(key, v))
		case int:
			attrs = append(attrs, attribute.Int(key, v))
		case int64:
			attrs = append(attrs, attribute.Int64(key, v))
		case float64:
			attrs = append(attrs, attribute.Float64(key, v))
		case bool:
			attrs = append(attrs, attribute.Bool(key, v))
		}
	}
	return attrs
}

// Query logs a served snapshot query (always logged regardless of level)
func Query(ctx context.Context, symbol string, lookbackDays int, capital float64, fields ...any) {
	if trace.Enabled() {
		span := oteltrace.SpanFromContext(ctx)
		if span.SpanContext().IsValid() {
			span.AddEvent("snapshot_query", oteltrace.WithAttributes(
				attribute.String("symbol", symbol),
				attribute.Int("lookback_days", lookbackDays),
				attribute.Float64("capital", capital),
			))
		}
	}

	allFields := append([]any{
		"type", "QUERY",
		"symbol", symbol,
		"lookback_days", lookbackDays,
		"capital", capital,
	}, fields...)
	logWithTrace(ctx, slog.LevelInfo, "Snapshot query served", 2, allFields...)
}

// Simulation logs a completed strategy run for one symbol
func Simulation(ctx context.Context, symbol, strategyID string, trades int, totalReturnPct float64, fields ...any) {
	if trace.Enabled() {
		span := oteltrace.SpanFromContext(ctx)
		if span.SpanContext().IsValid() {
			span.AddEvent("strategy_simulation", oteltrace.WithAttributes(
				attribute.String("symbol", symbol),
				attribute.String("strategy", strategyID),
				attribute.Int("trades", trades),
				attribute.Float64("total_return_pct", totalReturnPct),
			))
		}
	}

	allFields := append([]any{
		"type", "SIMULATION",
		"symbol", symbol,
		"strategy", strategyID,
		"trades", trades,
		"total_return_pct", totalReturnPct,
	}, fields...)
	logWithTrace(ctx, slog.LevelInfo, "Strategy simulation completed", 2, allFields...)
}

// Generation logs the one-time synthetic catalog build
func Generation(ctx context.Context, symbols, days int, fields ...any) {
	allFields := append([]any{
		"type", "GENERATION",
		"symbols", symbols,
		"days", days,
	}, fields...)
	logWithTrace(ctx, slog.LevelInfo, "Synthetic catalog generated", 2, allFields...)
}

// IsDebugEnabled returns whether debug logging is enabled
func IsDebugEnabled() bool {
	return detailedLogging
}
