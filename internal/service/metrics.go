package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"formpdf/internal/storage"
)

// Metrics holds the document-level Prometheus collectors.
// A nil *Metrics records nothing.
type Metrics struct {
	created        prometheus.Counter
	renderDuration prometheus.Histogram
}

// NewMetrics registers document metrics on reg, including a gauge reporting
// how many documents store currently holds.
func NewMetrics(reg prometheus.Registerer, store storage.Storage) (*Metrics, error) {
	m := &Metrics{
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "documents_created_total",
			Help: "Total number of documents rendered and stored.",
		}),
		renderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "pdf_render_duration_seconds",
			Help:    "Time spent rendering a document to PDF.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	stored := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "documents_stored",
		Help: "Number of documents currently held in memory.",
	}, func() float64 { return float64(store.Len()) })

	for _, c := range []prometheus.Collector{m.created, m.renderDuration, stored} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) documentCreated() {
	if m == nil {
		return
	}
	m.created.Inc()
}

func (m *Metrics) observeRender(d time.Duration) {
	if m == nil {
		return
	}
	m.renderDuration.Observe(d.Seconds())
}
