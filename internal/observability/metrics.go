package observability

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// DecodeMetrics counts decoded records for one dump.
type DecodeMetrics struct {
	registry     *prometheus.Registry
	records      *prometheus.CounterVec
	payloadBytes *prometheus.CounterVec
	unknown      prometheus.Counter
}

func NewDecodeMetrics() *DecodeMetrics {
	m := &DecodeMetrics{
		registry: prometheus.NewRegistry(),
		records: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "poddump",
				Subsystem: "decode",
				Name:      "records_total",
				Help:      "Decoded records by block family.",
			},
			[]string{"family"},
		),
		payloadBytes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "poddump",
				Subsystem: "decode",
				Name:      "payload_bytes_total",
				Help:      "Decoded payload bytes by value encoding.",
			},
			[]string{"encoding"},
		),
		unknown: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "poddump",
				Subsystem: "decode",
				Name:      "unknown_records_total",
				Help:      "Records whose identifier has no descriptor.",
			},
		),
	}
	m.registry.MustRegister(m.records, m.payloadBytes, m.unknown)
	return m
}

// Registry exposes the underlying registry for gathering.
func (m *DecodeMetrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *DecodeMetrics) RecordBlock(family, encoding string, payloadLen int, unknown bool) {
	if m == nil {
		return
	}
	m.records.WithLabelValues(family).Inc()
	m.payloadBytes.WithLabelValues(encoding).Add(float64(payloadLen))
	if unknown {
		m.unknown.Inc()
	}
}

// FamilyCount is one row of a dump summary.
type FamilyCount struct {
	Family  string
	Records uint64
}

// Summary returns per-family record counts sorted by family name.
func (m *DecodeMetrics) Summary() ([]FamilyCount, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, err
	}
	var out []FamilyCount
	for _, mf := range families {
		if mf.GetName() != "poddump_decode_records_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			out = append(out, FamilyCount{
				Family:  labelValue(metric, "family"),
				Records: uint64(metric.GetCounter().GetValue()),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Family < out[j].Family })
	return out, nil
}

func labelValue(metric *dto.Metric, name string) string {
	for _, lp := range metric.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}
