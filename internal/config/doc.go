// Package config provides loading and environment overlay for flexbuf
// configuration. It exposes a Default() baseline, file loading for JSON and
// YAML, and a FLEXBUF_* environment overlay.
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load("/etc/flexbuf.yaml"); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
