package metrics

import (
	"fmt"
	"sort"

	dto "github.com/prometheus/client_model/go"

	"github.com/probgen/heredity/pkg/logging"
)

// Summary gathers the registry and flattens every metric into log fields.
// This process exposes no network listener, so end-of-run logging is how
// metric values leave the process.
func (r *Registry) Summary() []logging.Field {
	families, err := r.registry.Gather()
	if err != nil {
		return []logging.Field{logging.Error(err)}
	}

	fields := make([]logging.Field, 0, len(families))
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fields = append(fields, logging.Float64(metricKey(mf, m), metricValue(mf, m)))
		}
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Key < fields[j].Key })
	return fields
}

// metricKey builds a flat field name: family name plus any label values.
func metricKey(mf *dto.MetricFamily, m *dto.Metric) string {
	key := mf.GetName()
	for _, lp := range m.GetLabel() {
		key += fmt.Sprintf("{%s=%s}", lp.GetName(), lp.GetValue())
	}
	return key
}

// metricValue extracts the scalar value; histograms report their sample sum.
func metricValue(mf *dto.MetricFamily, m *dto.Metric) float64 {
	switch mf.GetType() {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	case dto.MetricType_HISTOGRAM:
		return m.GetHistogram().GetSampleSum()
	case dto.MetricType_SUMMARY:
		return m.GetSummary().GetSampleSum()
	default:
		return m.GetUntyped().GetValue()
	}
}
