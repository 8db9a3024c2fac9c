package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldProvider is the structured log field key for the AI provider name.
	FieldProvider = "ai_provider"
	// FieldModel is the structured log field key for the AI model identifier.
	FieldModel = "ai_model"
	// FieldCapability names the external capability in use (generate, embed).
	FieldCapability = "ai_capability"
	// FieldReportID ties every entry of one analysis together.
	FieldReportID = "report_id"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches fields to the logger, falling back to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	logger = OrNop(logger)
	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// CapabilityFields describes an external capability call. Empty values are dropped.
func CapabilityFields(provider, model, capability string) []zap.Field {
	return StringFields(
		StringField{Key: FieldProvider, Value: provider},
		StringField{Key: FieldModel, Value: model},
		StringField{Key: FieldCapability, Value: capability},
	)
}

// WithCapability attaches the capability fields to the provided logger.
func WithCapability(logger *zap.Logger, provider, model, capability string) *zap.Logger {
	return WithFields(logger, CapabilityFields(provider, model, capability)...)
}
