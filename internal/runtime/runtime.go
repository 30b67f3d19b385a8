package runtime

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	cfgpkg "github.com/pavver/flexbuf/internal/config"
	"github.com/pavver/flexbuf/internal/linebuf"
)

// Options for building the Runtime.
type Options struct {
	Config cfgpkg.Config
}

// Runtime wires the buffer, metrics, and config for a single instance.
type Runtime struct {
	buf      *linebuf.Buffer
	config   cfgpkg.Config
	registry *prometheus.Registry
}

// Open validates the configuration and builds the buffer and its metrics.
func Open(opts Options) (*Runtime, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}

	var locker linebuf.Locker
	if !opts.Config.ThreadSafe {
		locker = linebuf.NopLocker{}
	}

	registry := prometheus.NewRegistry()
	metrics := linebuf.NewMetrics()
	if err := metrics.Register(registry); err != nil {
		return nil, err
	}

	buf, err := linebuf.New(linebuf.Options{
		Capacity:   opts.Config.Capacity,
		MaxRecords: opts.Config.MaxRecords,
		Locker:     locker,
		Metrics:    metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Runtime{buf: buf, config: opts.Config, registry: registry}, nil
}

// Close releases runtime resources. The buffer is purely in-memory, so this
// is currently a no-op kept for lifecycle symmetry.
func (r *Runtime) Close() error { return nil }

// CheckHealth performs a simple health check.
func (r *Runtime) CheckHealth(ctx context.Context) error {
	if r.buf == nil {
		return errors.New("buffer not open")
	}
	return ctx.Err()
}

// Buffer returns the line buffer facade.
func (r *Runtime) Buffer() *linebuf.Buffer { return r.buf }

// Config returns the runtime configuration.
func (r *Runtime) Config() cfgpkg.Config { return r.config }

// Registry exposes the metrics registry for the diagnostic HTTP server.
func (r *Runtime) Registry() *prometheus.Registry { return r.registry }
