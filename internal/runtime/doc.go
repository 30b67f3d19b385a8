// Package runtime wires config, metrics, and the line buffer into a single
// flexbuf instance. It exposes Open/Close, a basic health check, and the
// buffer facade used by the CLI and the diagnostic HTTP server.
//
// Example:
//
//	cfg := config.Default()
//	rt, _ := runtime.Open(runtime.Options{Config: cfg})
//	defer rt.Close()
//	_ = rt.CheckHealth(context.Background())
//	id, _ := rt.Buffer().WriteRecord([]byte("hello"))
//	_ = id
package runtime
