// Package log provides flexbuf's structured logging facade.
//
// # Overview
//
// The package exposes a small Logger interface with leveled methods and a
// simple Field type for structured context. Internally it is backed by Go's
// standard library slog via a custom handler that routes records through a
// formatter/output pipeline, so output stays consistent across the codebase
// while remaining interoperable with the slog ecosystem.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	    log.WithOutput(log.NewConsoleOutput()),
//	)
//	l = l.WithComponent("server")
//	l.Info("server started", log.F("addr", ":8080"))
//
// # Configuration
//
// Use ApplyConfig to build a logger from a declarative Config supporting
// text or JSON formatting. RedirectStdLog routes standard library log output
// through the facade for libraries that log via the global logger.
package log
