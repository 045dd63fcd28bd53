package light

import "github.com/prometheus/client_golang/prometheus"

var (
	finalizedHeadersTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "beaconlc_finalized_headers_total",
		Help: "Number of finalized beacon headers accepted by the store.",
	})
	executionHeadersTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "beaconlc_execution_headers_total",
		Help: "Number of execution-layer headers accepted by the store.",
	})
	syncCommitteeUpdatesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "beaconlc_sync_committee_updates_total",
		Help: "Number of sync committee rotations applied by the store.",
	})
)

// RegisterMetrics registers the package's counters with reg. Safe to call
// once per registry; callers embedding this module in a larger process
// should pass their own registry rather than the global default.
func RegisterMetrics(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{finalizedHeadersTotal, executionHeadersTotal, syncCommitteeUpdatesTotal} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}
