// Package httpserver exposes flexbuf's diagnostic HTTP endpoints: health,
// buffer statistics, the HTML/text snapshot view, and Prometheus metrics.
// Every endpoint is read-only; records enter the buffer in-process, never
// over the network.
package httpserver
