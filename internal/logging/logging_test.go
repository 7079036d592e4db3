package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_EmptyPathIsNop(t *testing.T) {
	// Given no log file configured
	// When New is called
	l, err := New("", "info")

	// Then a usable no-op logger is returned
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	l.Info("ignored", "k", "v")
	l.Sync()
}

func TestNew_WritesToFile(t *testing.T) {
	// Given a log file path
	path := filepath.Join(t.TempDir(), "contacts.log")
	l, err := New(path, "info")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// When entries are logged at and below the level
	l.With("component", "test").Info("contact added", "row", 3)
	l.Debug("hidden detail")
	l.Sync()

	// Then only the info entry reaches the file, with its fields
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	out := string(data)
	for _, want := range []string{"contact added", `"row":3`, `"component":"test"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output should contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "hidden detail") {
		t.Errorf("debug entry should be filtered at info level, got:\n%s", out)
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.log")

	_, err := New(path, "loud")

	if err == nil {
		t.Fatal("New() with invalid level should return error")
	}
}
