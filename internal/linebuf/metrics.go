package linebuf

import "github.com/prometheus/client_golang/prometheus"

// Reject reasons used as label values on the rejections counter.
const (
	ReasonLength = "invalid_length"
	ReasonStale  = "stale_writer"
	ReasonEmpty  = "empty"
)

// Metrics instruments buffer operations. All helpers tolerate a nil
// receiver, so an uninstrumented Buffer carries no overhead beyond a nil
// check.
type Metrics struct {
	WritesTotal              prometheus.Counter
	AppendsTotal             prometheus.Counter
	BytesWrittenTotal        prometheus.Counter
	RejectionsTotal          *prometheus.CounterVec
	EvictionsTotal           prometheus.Counter
	MarkerRingEvictionsTotal prometheus.Counter
	RetainedRecords          prometheus.Gauge
	RetainedBytes            prometheus.Gauge
}

// NewMetrics creates the buffer metric collectors. Call Register to attach
// them to a registry.
func NewMetrics() *Metrics {
	return &Metrics{
		WritesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flexbuf",
			Subsystem: "buffer",
			Name:      "writes_total",
			Help:      "Total number of records accepted by WriteRecord",
		}),
		AppendsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flexbuf",
			Subsystem: "buffer",
			Name:      "appends_total",
			Help:      "Total number of successful AppendToNewest calls",
		}),
		BytesWrittenTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flexbuf",
			Subsystem: "buffer",
			Name:      "bytes_written_total",
			Help:      "Total cells written into the arena",
		}),
		RejectionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flexbuf",
			Subsystem: "buffer",
			Name:      "rejections_total",
			Help:      "Total rejected operations by reason",
		}, []string{"reason"}),
		EvictionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flexbuf",
			Subsystem: "buffer",
			Name:      "evictions_total",
			Help:      "Total records evicted because their cells were overwritten",
		}),
		MarkerRingEvictionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flexbuf",
			Subsystem: "buffer",
			Name:      "marker_ring_evictions_total",
			Help:      "Total records dropped because the marker ring was full; a non-zero value means maxRecords is sized too small",
		}),
		RetainedRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "flexbuf",
			Subsystem: "buffer",
			Name:      "retained_records",
			Help:      "Records currently in the active window",
		}),
		RetainedBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "flexbuf",
			Subsystem: "buffer",
			Name:      "retained_bytes",
			Help:      "Cells currently covered by the active window",
		}),
	}
}

// Register attaches all collectors to the given registerer.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.WritesTotal,
		m.AppendsTotal,
		m.BytesWrittenTotal,
		m.RejectionsTotal,
		m.EvictionsTotal,
		m.MarkerRingEvictionsTotal,
		m.RetainedRecords,
		m.RetainedBytes,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) write(n int) {
	if m == nil {
		return
	}
	m.WritesTotal.Inc()
	m.BytesWrittenTotal.Add(float64(n))
}

func (m *Metrics) append(n int) {
	if m == nil {
		return
	}
	m.AppendsTotal.Inc()
	m.BytesWrittenTotal.Add(float64(n))
}

func (m *Metrics) reject(reason string) {
	if m == nil {
		return
	}
	m.RejectionsTotal.WithLabelValues(reason).Inc()
}

func (m *Metrics) evict() {
	if m == nil {
		return
	}
	m.EvictionsTotal.Inc()
}

func (m *Metrics) markerRingEviction() {
	if m == nil {
		return
	}
	m.MarkerRingEvictionsTotal.Inc()
	m.EvictionsTotal.Inc()
}

func (m *Metrics) setRetention(records, bytes int) {
	if m == nil {
		return
	}
	m.RetainedRecords.Set(float64(records))
	m.RetainedBytes.Set(float64(bytes))
}
