package main

import (
	"testing"

	"github.com/labstack/gommon/log"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Lvl{
		"debug": log.DEBUG,
		"INFO":  log.INFO,
		"Warn":  log.WARN,
		"error": log.ERROR,
		"off":   log.OFF,
		"":      log.INFO,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
