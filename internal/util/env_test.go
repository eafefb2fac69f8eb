package util

import "testing"

func TestGetEnv(t *testing.T) {
	if got := GetEnv("PHOTOBOOTH_TEST_UNSET", "fallback"); got != "fallback" {
		t.Fatalf("got %q", got)
	}
	t.Setenv("PHOTOBOOTH_TEST_SET", "value")
	if got := GetEnv("PHOTOBOOTH_TEST_SET", "fallback"); got != "value" {
		t.Fatalf("got %q", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	if got := GetEnvInt("PHOTOBOOTH_TEST_UNSET", 42); got != 42 {
		t.Fatalf("got %d", got)
	}
	t.Setenv("PHOTOBOOTH_TEST_INT", "7")
	if got := GetEnvInt("PHOTOBOOTH_TEST_INT", 42); got != 7 {
		t.Fatalf("got %d", got)
	}
	t.Setenv("PHOTOBOOTH_TEST_INT", "not a number")
	if got := GetEnvInt("PHOTOBOOTH_TEST_INT", 42); got != 42 {
		t.Fatalf("got %d", got)
	}
}
