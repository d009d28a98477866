package utils

import (
	"testing"
	"time"
)

func TestGetEnvAsString(t *testing.T) {
	t.Setenv("TEST_STRING", "hello")
	if got := GetEnvAsString("TEST_STRING", "fallback"); got != "hello" {
		t.Errorf("expected hello, got %q", got)
	}
	if got := GetEnvAsString("TEST_STRING_UNSET", "fallback"); got != "fallback" {
		t.Errorf("expected fallback, got %q", got)
	}
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	if got := GetEnvAsInt("TEST_INT", 7); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	t.Setenv("TEST_INT_BAD", "not-a-number")
	if got := GetEnvAsInt("TEST_INT_BAD", 7); got != 7 {
		t.Errorf("expected default for unparsable value, got %d", got)
	}
	if got := GetEnvAsInt("TEST_INT_UNSET", 7); got != 7 {
		t.Errorf("expected default, got %d", got)
	}
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	if !GetEnvAsBool("TEST_BOOL", false) {
		t.Error("expected true")
	}
	t.Setenv("TEST_BOOL_BAD", "yep")
	if GetEnvAsBool("TEST_BOOL_BAD", false) {
		t.Error("expected default for unparsable value")
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "90s")
	if got := GetEnvAsDuration("TEST_DURATION", time.Minute); got != 90*time.Second {
		t.Errorf("expected 90s, got %v", got)
	}
	if got := GetEnvAsDuration("TEST_DURATION_UNSET", time.Minute); got != time.Minute {
		t.Errorf("expected default, got %v", got)
	}
}
