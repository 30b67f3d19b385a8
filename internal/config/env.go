package config

import (
	"os"
	"strconv"
)

// FromEnv overlays FLEXBUF_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("FLEXBUF_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Capacity = n
		}
	}
	if v := os.Getenv("FLEXBUF_MAX_RECORDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxRecords = n
		}
	}
	if v := os.Getenv("FLEXBUF_THREAD_SAFE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.ThreadSafe = b
		}
	}
	if v := os.Getenv("FLEXBUF_HTTP"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("FLEXBUF_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("FLEXBUF_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}
