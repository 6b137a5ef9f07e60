package production

import (
	"errors"
	"fmt"
	"io"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/comalice/reducerx/internal/core"
	"github.com/comalice/reducerx/internal/primitives"
)

// PrometheusObserver implements core.Observer with Prometheus metrics.
// All methods are safe on a nil receiver.
type PrometheusObserver struct {
	dispatch *prom.CounterVec
	mounted  prom.Gauge
}

var _ core.Observer = (*PrometheusObserver)(nil)

// NewPrometheusObserver constructs and registers the metrics on reg. A nil reg
// gets a private registry.
func NewPrometheusObserver(reg prom.Registerer) *PrometheusObserver {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	po := &PrometheusObserver{
		dispatch: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "reducerx",
			Name:      "dispatch_total",
			Help:      "Dispatched actions by store, operation and result",
		}, []string{"store", "op", "result"}),
		mounted: prom.NewGauge(prom.GaugeOpts{
			Namespace: "reducerx",
			Name:      "mounted_stores",
			Help:      "Number of stores currently mounted",
		}),
	}
	reg.MustRegister(po.dispatch, po.mounted)
	return po
}

// ObserveDispatch counts one dispatch. result is "ok", "unknown_action",
// "unmounted" or "error".
func (p *PrometheusObserver) ObserveDispatch(store string, op primitives.Op, err error) {
	if p == nil || p.dispatch == nil {
		return
	}
	if op == "" {
		op = "none"
	}
	p.dispatch.WithLabelValues(store, string(op), resultLabel(err)).Inc()
}

// ObserveMount tracks the number of live stores.
func (p *PrometheusObserver) ObserveMount(_ string, mounted bool) {
	if p == nil || p.mounted == nil {
		return
	}
	if mounted {
		p.mounted.Inc()
	} else {
		p.mounted.Dec()
	}
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case primitives.IsUnknownAction(err):
		return "unknown_action"
	case isUnmounted(err):
		return "unmounted"
	default:
		return "error"
	}
}

// WriteMetrics gathers g and writes every family in the Prometheus text format.
func WriteMetrics(w io.Writer, g prom.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

func isUnmounted(err error) bool {
	return errors.Is(err, core.ErrUnmounted)
}
