package serverrun

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	cfgpkg "github.com/pavver/flexbuf/internal/config"
	"github.com/pavver/flexbuf/internal/linebuf"
	logpkg "github.com/pavver/flexbuf/pkg/log"
)

func TestIngestWritesLines(t *testing.T) {
	buf, err := linebuf.New(linebuf.Options{Capacity: 64, MaxRecords: 8})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger := logpkg.NewLogger(logpkg.WithLevel(logpkg.ErrorLevel),
		logpkg.WithFormatter(&logpkg.TextFormatter{}),
		logpkg.WithOutput(logpkg.NewWriterOutput(&bytes.Buffer{})))
	in := strings.NewReader("alpha\nbeta\n\ngamma\n")
	ingest(context.Background(), buf, logger, in)

	if got := buf.Len(); got != 3 {
		t.Fatalf("records: %d", got)
	}
	snap, err := buf.ReadOldest()
	if err != nil {
		t.Fatalf("read oldest: %v", err)
	}
	defer snap.Release()
	if string(snap.Bytes()) != "alpha" {
		t.Fatalf("oldest: %q", snap.Bytes())
	}
}

func TestIngestSkipsOversizedLines(t *testing.T) {
	buf, err := linebuf.New(linebuf.Options{Capacity: 16, MaxRecords: 4})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger := logpkg.NewLogger(logpkg.WithLevel(logpkg.ErrorLevel),
		logpkg.WithFormatter(&logpkg.TextFormatter{}),
		logpkg.WithOutput(logpkg.NewWriterOutput(&bytes.Buffer{})))
	in := strings.NewReader("this line is far too long\nok\n")
	ingest(context.Background(), buf, logger, in)

	if got := buf.Len(); got != 1 {
		t.Fatalf("records: %d", got)
	}
	snap, err := buf.ReadNewest()
	if err != nil {
		t.Fatalf("read newest: %v", err)
	}
	defer snap.Release()
	if string(snap.Bytes()) != "ok" {
		t.Fatalf("newest: %q", snap.Bytes())
	}
}

// TestRunIntegration starts the server with a cancelled-soon context and
// verifies Run returns cleanly.
func TestRunIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	cfg := cfgpkg.Default()
	cfg.HTTPAddr = "127.0.0.1:0"
	cfg.Log.Level = "error"

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := Run(ctx, Options{Config: cfg, Input: strings.NewReader("hello\n")})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
}
