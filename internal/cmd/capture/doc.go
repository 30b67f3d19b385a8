// Package capture provides the `flexbuf capture` command.
//
// capture reads lines from stdin into a ring buffer, then drains the
// retained window to stdout in oldest-to-newest order. Because the buffer
// is fixed-capacity, the output is the tail of the input that still fits.
//
// Usage
//
//	journalctl -f | flexbuf capture --capacity 4096 --max-records 128
//
//	# keep only large records
//	flexbuf capture --filter 'size > 80' < app.log
//
//	# write an HTML snapshot of the final buffer state
//	flexbuf capture --out snapshot.html < app.log
package capture
