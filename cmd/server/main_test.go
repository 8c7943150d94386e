package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"port", "env-file"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Fatalf("flag --%s missing", name)
		}
	}
}

func TestRootCmd_Version(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--version"})
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("--version: %v", err)
	}
	if !strings.Contains(out.String(), version) {
		t.Fatalf("version output = %q", out.String())
	}
}

func TestRootCmd_InvalidConfigFailsBeforeListening(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")
	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	err := cmd.ExecuteContext(context.Background())
	if err == nil || !strings.Contains(err.Error(), "LOG_LEVEL") {
		t.Fatalf("expected config error, got %v", err)
	}
}
