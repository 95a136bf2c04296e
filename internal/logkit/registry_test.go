package logkit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestGet_CreatesFileSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	r := New(dir, zapcore.InfoLevel)

	log, err := r.Get("bootstrap")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	log.Info("hello")
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "bootstrap.log"))
	if err != nil {
		t.Fatalf("reading sink: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("sink content = %q", data)
	}
	if !strings.Contains(string(data), `"channel":"bootstrap"`) {
		t.Errorf("sink missing channel field: %q", data)
	}
}

func TestGet_DuplicateReturnsSameLogger(t *testing.T) {
	r := New(filepath.Join(t.TempDir(), "logs"), zapcore.InfoLevel)

	first, err := r.Get("install")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	second, err := r.Get("install")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if first != second {
		t.Error("duplicate registration produced a second logger")
	}
	if got := r.Channels(); len(got) != 1 {
		t.Errorf("Channels = %v, want one entry", got)
	}
}

func TestGet_SeparateChannelsSeparateSinks(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	r := New(dir, zapcore.DebugLevel)

	a, err := r.Get("front")
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.Get("back")
	if err != nil {
		t.Fatal(err)
	}
	a.Info("front message")
	b.Info("back message")
	_ = r.Close()

	front, err := os.ReadFile(filepath.Join(dir, "front.log"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(front), "back message") {
		t.Error("front sink received back channel output")
	}
}
