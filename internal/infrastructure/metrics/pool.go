package metrics

import (
	"github.com/dashboard/backend/internal/infrastructure/persistence"
	"github.com/prometheus/client_golang/prometheus"
)

// PoolStatsSource reports database pool statistics.
type PoolStatsSource interface {
	Stats() persistence.ConnectionStats
}

// RegisterPoolMetrics exposes connection pool statistics as Prometheus gauges
// sampled on every scrape.
func RegisterPoolMetrics(reg prometheus.Registerer, src PoolStatsSource) error {
	gauge := func(name, help string, value func(persistence.ConnectionStats) float64) prometheus.Collector {
		return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: "db_pool",
			Name:      name,
			Help:      help,
		}, func() float64 {
			return value(src.Stats())
		})
	}

	collectors := []prometheus.Collector{
		gauge("max_open_conns", "Maximum number of open connections to the database",
			func(s persistence.ConnectionStats) float64 { return float64(s.MaxOpenConnections) }),
		gauge("open_conns", "Number of established connections, in use and idle",
			func(s persistence.ConnectionStats) float64 { return float64(s.OpenConnections) }),
		gauge("in_use_conns", "Number of connections currently in use",
			func(s persistence.ConnectionStats) float64 { return float64(s.InUse) }),
		gauge("idle_conns", "Number of idle connections",
			func(s persistence.ConnectionStats) float64 { return float64(s.Idle) }),
		gauge("wait_count", "Total number of connections waited for",
			func(s persistence.ConnectionStats) float64 { return float64(s.WaitCount) }),
		gauge("wait_duration_seconds", "Total time blocked waiting for a new connection",
			func(s persistence.ConnectionStats) float64 { return s.WaitDuration.Seconds() }),
		gauge("max_idle_closed", "Total number of connections closed due to the idle limit",
			func(s persistence.ConnectionStats) float64 { return float64(s.MaxIdleClosed) }),
		gauge("max_lifetime_closed", "Total number of connections closed due to the lifetime limit",
			func(s persistence.ConnectionStats) float64 { return float64(s.MaxLifetimeClosed) }),
	}

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
