package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const Namespace = "chatsift"

var (
	ProcessedBlocks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "processed_blocks_total",
		Help:      "Total number of raw blocks run through the filter",
	}, []string{"mode"})

	AcceptedMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "accepted_messages_total",
		Help:      "Total number of messages surfaced to viewers",
	}, []string{"mode"})

	RejectedMessages = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "rejected_messages_total",
		Help:      "Total number of rejected blocks",
	}, []string{"filter"})

	SiftDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "sift_duration_seconds",
		Help:      "Duration of one filtering call",
		Buckets:   prometheus.DefBuckets,
	}, []string{"mode", "status"})

	DedupEntries = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "dedup_entries",
		Help:      "Content keys currently held in the dedup cache",
	})
)

func IncProcessed(mode string) {
	ProcessedBlocks.WithLabelValues(mode).Inc()
}

func IncAccepted(mode string) {
	AcceptedMessages.WithLabelValues(mode).Inc()
}

func IncRejected(filter string) {
	RejectedMessages.WithLabelValues(filter).Inc()
}

func SetDedupEntries(count float64) {
	DedupEntries.Set(count)
}

func ObserveSift(mode string, duration float64, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	SiftDuration.WithLabelValues(mode, status).Observe(duration)
}
