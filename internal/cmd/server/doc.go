// Package serverrun exposes a shared Run entrypoint used by the CLI to start
// the flexbuf runtime with the diagnostic HTTP server, handling lifecycle and
// shutdown. Input lines are ingested into the buffer as records until EOF.
//
// Example:
//
//	opts := serverrun.Options{Config: config.Default()}
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	_ = serverrun.Run(ctx, opts)
package serverrun
