package calllog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func captureLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })
	log.Logger = zerolog.New(&buf)
	return &buf
}

func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, ln := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if ln == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(ln), &m); err != nil {
			t.Fatalf("bad log line %q: %v", ln, err)
		}
		out = append(out, m)
	}
	return out
}

func TestCall_Success_LogsStartAndEnd(t *testing.T) {
	buf := captureLogger(t)

	got, err := Call(context.Background(), Service, "Greeting", func(context.Context) (string, error) {
		return "hi", nil
	})
	if err != nil || got != "hi" {
		t.Fatalf("Call = %q, %v", got, err)
	}

	ll := lines(t, buf)
	if len(ll) != 2 {
		t.Fatalf("expected 2 log lines, got %d:\n%s", len(ll), buf.String())
	}
	if ll[0]["message"] != "call start" || ll[0]["level"] != "info" || ll[0]["layer"] != "Service" || ll[0]["op"] != "Greeting" {
		t.Fatalf("unexpected start line: %v", ll[0])
	}
	if ll[1]["message"] != "call end" || ll[1]["level"] != "info" {
		t.Fatalf("unexpected end line: %v", ll[1])
	}
	if _, ok := ll[1]["elapsed_ms"]; !ok {
		t.Fatalf("end line missing elapsed_ms: %v", ll[1])
	}
}

func TestCall_Error_LoggedAndReturnedUnchanged(t *testing.T) {
	buf := captureLogger(t)
	sentinel := errors.New("boom")

	_, err := Call(context.Background(), Controller, "Home", func(context.Context) (int, error) {
		return 0, sentinel
	})
	if err != sentinel {
		t.Fatalf("error identity changed: %v", err)
	}

	ll := lines(t, buf)
	last := ll[len(ll)-1]
	if last["level"] != "error" || last["message"] != "call failed" || last["error"] != "boom" || last["layer"] != "Controller" {
		t.Fatalf("unexpected failure line: %v", last)
	}
}

func TestCall_Panic_LoggedAndRepanicked(t *testing.T) {
	buf := captureLogger(t)

	defer func() {
		rec := recover()
		if rec != "kaboom" {
			t.Fatalf("panic value changed: %v", rec)
		}
		if !strings.Contains(buf.String(), `"panic":"kaboom"`) {
			t.Fatalf("panic not logged:\n%s", buf.String())
		}
		logged := lines(t, buf)
		last := logged[len(logged)-1]
		stack, _ := last["stack"].(string)
		if !strings.Contains(stack, "calllog_test.go") {
			t.Fatalf("failure line must carry the stack of the panicking call, got %q", stack)
		}
	}()

	_, _ = Call(context.Background(), Service, "Explode", func(context.Context) (int, error) {
		panic("kaboom")
	})
	t.Fatalf("Call should have re-panicked")
}

func TestCall_ElapsedCoversBlocking(t *testing.T) {
	buf := captureLogger(t)

	_ = Do(context.Background(), Service, "Sleep", func(context.Context) error {
		time.Sleep(20 * time.Millisecond)
		return nil
	})

	ll := lines(t, buf)
	ms, _ := ll[len(ll)-1]["elapsed_ms"].(float64)
	if ms < 20 {
		t.Fatalf("elapsed_ms = %v; want >= 20", ms)
	}
}

func TestCall_UsesContextLogger(t *testing.T) {
	global := captureLogger(t)

	var scoped bytes.Buffer
	l := zerolog.New(&scoped).With().Str("request_id", "rid-1").Logger()
	ctx := l.WithContext(context.Background())

	if err := Do(ctx, Service, "Scoped", func(context.Context) error { return nil }); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(scoped.String(), `"request_id":"rid-1"`) {
		t.Fatalf("expected context logger to be used, got:\n%s", scoped.String())
	}
	if global.Len() != 0 {
		t.Fatalf("global logger should be untouched, got:\n%s", global.String())
	}
}

func TestCall_PassesContextThrough(t *testing.T) {
	_ = captureLogger(t)
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")

	got, _ := Call(ctx, Service, "Ctx", func(ctx context.Context) (any, error) {
		return ctx.Value(key{}), nil
	})
	if got != "v" {
		t.Fatalf("context not passed through: %v", got)
	}
}
