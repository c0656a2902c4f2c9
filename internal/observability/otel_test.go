package observability

import (
	"context"
	"testing"

	"github.com/yungbote/ticketdesk/internal/config"
	"github.com/yungbote/ticketdesk/internal/platform/logger"
)

func TestInitTracingDisabledIsNoop(t *testing.T) {
	shutdown, err := InitTracing(context.Background(), logger.Nop(), config.TracingConfig{}, "test")
	if err != nil {
		t.Fatalf("InitTracing: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}

	_, span := Tracer().Start(context.Background(), "noop")
	if span.SpanContext().IsValid() {
		t.Fatalf("expected a non-recording span without a provider")
	}
	span.End()
}
