package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStringFields(t *testing.T) {
	fields := StringFields(
		StringField{Key: "  provider  ", Value: "  Gemini  "},
		StringField{Key: "ignored", Value: "   "},
		StringField{Key: "   ", Value: "empty key"},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != "provider" || fields[0].String != "Gemini" {
		t.Fatalf("unexpected provider field: %+v", fields[0])
	}
}

func TestWithFieldsNilLogger(t *testing.T) {
	enriched := WithFields(nil, zap.String("baz", "qux"))
	if enriched == nil {
		t.Fatalf("expected fallback logger when nil provided")
	}

	enriched.Info("another log")
}

func TestCapabilityFields(t *testing.T) {
	fields := CapabilityFields("gemini", "  text-embedding-004 ", "")
	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}

	if fields[1].Key != FieldModel || fields[1].String != "text-embedding-004" {
		t.Fatalf("unexpected model field: %+v", fields[1])
	}
}

func TestWithCapability(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)

	WithCapability(zap.New(core), "gemini", "gemini-2.5-pro", "generate").Info("call")

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	ctx := entries[0].ContextMap()
	if ctx[FieldProvider] != "gemini" || ctx[FieldModel] != "gemini-2.5-pro" || ctx[FieldCapability] != "generate" {
		t.Fatalf("unexpected context: %v", ctx)
	}
}
