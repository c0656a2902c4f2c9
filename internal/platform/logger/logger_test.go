package logger

import (
	"strings"
	"testing"
)

func TestSanitizeKVsRedactsSecrets(t *testing.T) {
	out := sanitizeKVs([]interface{}{"api_key", "abc", "ticket_id", 3, "client_ip", "10.0.0.1", "dangling"})

	if got := out[1]; got != "[REDACTED]" {
		t.Fatalf("api_key=%v, want redacted", got)
	}
	if got := out[3]; got != 3 {
		t.Fatalf("ticket_id=%v, want passthrough", got)
	}
	if got, _ := out[5].(string); !strings.HasPrefix(got, "hash:") || strings.Contains(got, "10.0.0.1") {
		t.Fatalf("client_ip=%v, want hashed", out[5])
	}
	if got := out[6]; got != "dangling" {
		t.Fatalf("dangling key dropped: %v", out)
	}
}

func TestNopLoggerIsUsable(t *testing.T) {
	l := Nop().With("component", "test")
	l.Info("hello", "k", "v")
	l.Sync()
}
