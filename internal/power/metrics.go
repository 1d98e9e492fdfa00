package power

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	pulses          *prometheus.CounterVec
	writeFailures   prometheus.Counter
	handleOpens     prometheus.Counter
	governorChanges prometheus.Counter
	tuningApplies   prometheus.Counter
	interactive     prometheus.Gauge
}

// NewMetrics builds the HAL metrics and registers them with reg when it is
// not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		pulses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "powerhal_boost_pulses_total",
			Help: "Boost pulses written successfully, by target (cpu or gpu).",
		}, []string{"target"}),
		writeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "powerhal_boost_write_failures_total",
			Help: "Failed writes to the cached CPU boostpulse handle.",
		}),
		handleOpens: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "powerhal_boost_handle_opens_total",
			Help: "Successful opens of a governor boostpulse file.",
		}),
		governorChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "powerhal_governor_changes_total",
			Help: "Scaling governor changes detected while boosting.",
		}),
		tuningApplies: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "powerhal_tuning_applies_total",
			Help: "Times governor and GPU tuning was written.",
		}),
		interactive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "powerhal_interactive",
			Help: "1 while the display is interactive, 0 while it is off.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.pulses, m.writeFailures, m.handleOpens, m.governorChanges, m.tuningApplies, m.interactive)
	}
	return m
}
