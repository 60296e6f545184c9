package log

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

func decode(t *testing.T, b *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(b.Bytes()), &m); err != nil {
		t.Fatalf("decode %q: %v", b.String(), err)
	}
	return m
}

func TestNew_LevelAndService(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "WARN", Output: &buf})
	l.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %q", buf.String())
	}
	l.Warn().Msg("shown")
	m := decode(t, &buf)
	if m["service"] != "govsn" || m["message"] != "shown" {
		t.Fatalf("unexpected entry %v", m)
	}
}

func TestConfigure_WithComponent(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Output: &buf, Service: "test"})
	t.Cleanup(func() { Configure(Config{}) })

	l := WithComponent("api")
	l.Info().Msg("hello")
	m := decode(t, &buf)
	if m["component"] != "api" || m["service"] != "test" {
		t.Fatalf("unexpected entry %v", m)
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Output: &buf, Format: "console"})
	l.Info().Msg("plain")
	if strings.HasPrefix(buf.String(), "{") {
		t.Fatalf("console output should not be JSON: %q", buf.String())
	}
}

func TestContext(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "rid-1")
	if got := RequestIDFromContext(ctx); got != "rid-1" {
		t.Fatalf("request id = %q", got)
	}
	if RequestIDFromContext(context.Background()) != "" {
		t.Fatal("expected empty request id")
	}

	var buf bytes.Buffer
	l := WithContext(ctx, zerolog.New(&buf))
	l.Info().Msg("x")
	if m := decode(t, &buf); m["request_id"] != "rid-1" {
		t.Fatalf("unexpected entry %v", m)
	}

	attached := zerolog.New(&buf).With().Str("k", "v").Logger()
	if got := FromContext(attached.WithContext(context.Background())); got.GetLevel() == zerolog.Disabled {
		t.Fatal("expected attached logger")
	}
	if FromContext(context.Background()) == nil {
		t.Fatal("expected base logger")
	}
}
