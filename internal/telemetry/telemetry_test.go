package telemetry

import (
	"context"
	"errors"
	"testing"
)

func TestConfigured(t *testing.T) {
	env := map[string]string{}
	getenv := func(k string) string { return env[k] }

	if Configured(getenv) {
		t.Error("Configured() = true with no headers")
	}
	env["OTEL_EXPORTER_OTLP_HEADERS"] = "x-honeycomb-team=abc"
	if !Configured(getenv) {
		t.Error("Configured() = false with headers set")
	}
}

func TestSetupWithoutCredentials(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	shutdown, err := Setup(context.Background())
	if !errors.Is(err, ErrNoCredentials) {
		t.Errorf("Setup() error = %v, want ErrNoCredentials", err)
	}
	if shutdown != nil {
		t.Error("Setup() returned a shutdown func without credentials")
	}
}

func TestTracersAreUsableWithoutSetup(t *testing.T) {
	_, span := Tracer("test").Start(context.Background(), "op")
	span.End()

	_, span = NoopTracer().Start(context.Background(), "op")
	if span.IsRecording() {
		t.Error("NoopTracer span is recording")
	}
	span.End()
}
