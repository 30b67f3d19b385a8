package serverrun

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	cfgpkg "github.com/pavver/flexbuf/internal/config"
	"github.com/pavver/flexbuf/internal/linebuf"
	"github.com/pavver/flexbuf/internal/runtime"
	httpserver "github.com/pavver/flexbuf/internal/server/http"
	logpkg "github.com/pavver/flexbuf/pkg/log"
)

type Options struct {
	Config cfgpkg.Config
	// Input is the record source; one record per line. Defaults to os.Stdin.
	Input io.Reader
}

// Run starts the diagnostic HTTP server and feeds Input into the buffer,
// blocking until ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	// Layer a local signal context over the provided one so callers that
	// don't pass a signal-aware context still shut down cleanly.
	sctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := runtime.Open(runtime.Options{Config: opts.Config})
	if err != nil {
		return err
	}
	defer rt.Close()

	logCfg := opts.Config.Log
	procLogger, err := logpkg.ApplyConfig(&logCfg)
	if err != nil {
		procLogger = logpkg.NewLogger(logpkg.WithFormatter(&logpkg.TextFormatter{}))
	}
	logpkg.RedirectStdLog(procLogger)

	procLogger.Info("starting flexbuf server",
		logpkg.F("http", opts.Config.HTTPAddr),
		logpkg.F("capacity", opts.Config.Capacity),
		logpkg.F("max_records", opts.Config.MaxRecords),
		logpkg.F("thread_safe", opts.Config.ThreadSafe),
	)

	hsrv := httpserver.New(rt, procLogger)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := hsrv.ListenAndServe(sctx, opts.Config.HTTPAddr); err != nil && sctx.Err() == nil {
			procLogger.Error("http server", logpkg.Err(err))
		}
	}()

	in := opts.Input
	if in == nil {
		in = os.Stdin
	}
	// Not joined on shutdown: a blocked read on stdin has no cancellation
	// point, and the process is exiting anyway.
	go ingest(sctx, rt.Buffer(), procLogger.WithComponent("ingest"), in)

	<-sctx.Done()
	hsrv.Close()
	wg.Wait()
	return nil
}

// ingest writes each input line as one record until EOF or ctx cancellation.
func ingest(ctx context.Context, buf *linebuf.Buffer, logger logpkg.Logger, in io.Reader) {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), linebuf.MaxCapacity)
	for sc.Scan() {
		if ctx.Err() != nil {
			return
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if _, err := buf.WriteRecord(line); err != nil {
			logger.Warn("record rejected", logpkg.F("size", len(line)), logpkg.Err(err))
		}
	}
	if err := sc.Err(); err != nil {
		logger.Error("input read", logpkg.Err(err))
		return
	}
	logger.Info("input drained")
}
