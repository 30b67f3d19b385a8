package capture

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCaptureKeepsTail(t *testing.T) {
	in := strings.NewReader("one\ntwo\nthree\nfour\n")
	var out bytes.Buffer
	// Capacity 10 retains at most 10 cells; "one"+"two" get evicted.
	if err := run(in, &out, 10, 8, "", ""); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	if strings.Contains(got, "one") {
		t.Fatalf("evicted record in output: %q", got)
	}
	if !strings.Contains(got, "three") || !strings.Contains(got, "four") {
		t.Fatalf("retained tail missing: %q", got)
	}
}

func TestCaptureFilter(t *testing.T) {
	in := strings.NewReader("aa\nbbbb\ncc\n")
	var out bytes.Buffer
	if err := run(in, &out, 64, 8, "size > 2", ""); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "bbbb" {
		t.Fatalf("filter output: %q", got)
	}
}

func TestCaptureBadFilter(t *testing.T) {
	if err := run(strings.NewReader(""), &bytes.Buffer{}, 64, 8, "not a (valid", ""); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestCaptureSnapshotFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.html")
	in := strings.NewReader("hello\n")
	if err := run(in, &bytes.Buffer{}, 64, 8, "", path); err != nil {
		t.Fatalf("run: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if !strings.Contains(string(b), "hello") {
		t.Fatalf("snapshot missing data: %s", b)
	}
}
