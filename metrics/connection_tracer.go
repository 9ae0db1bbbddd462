// Package metrics provides a Prometheus implementation of
// logging.ConnectionTracer.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/quic-kit/connwatch/logging"
)

const metricNamespace = "connwatch"

var (
	timeoutsDetected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "timeouts_detected_total",
			Help:      "Connections abandoned due to a timeout",
		},
		[]string{"reason"},
	)
	pathHealthEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "path_health_events_total",
			Help:      "Path degradation, MTU reduction and blackhole signals",
		},
		[]string{"event"},
	)
	datagramsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "datagrams_processed_total",
			Help:      "Datagrams by queue outcome",
		},
		[]string{"outcome"},
	)
	datagramBytesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "datagram_bytes_processed_total",
			Help:      "Datagram payload bytes by queue outcome",
		},
		[]string{"outcome"},
	)
	streamLimitViolations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "stream_limit_violations_total",
			Help:      "Peer-created streams beyond the advertised limit",
		},
		[]string{"stream_type"},
	)
	streamLimitUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "stream_limit_updates_total",
			Help:      "Stream ceiling raises",
		},
		[]string{"stream_type"},
	)
	congestionStateChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "congestion_state_changes_total",
			Help:      "Congestion controller state transitions",
		},
		[]string{"state"},
	)
	congestionWindow = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: metricNamespace,
			Name:      "congestion_window_bytes",
			Help:      "Congestion window after every update",
			Buckets:   prometheus.ExponentialBuckets(1280, 2, 20),
		},
	)
	smoothedRTT = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: metricNamespace,
			Name:      "smoothed_rtt_seconds",
			Help:      "Smoothed RTT after every RTT update",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 20),
		},
	)
	lostPackets = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "lost_packets_total",
			Help:      "Packets declared lost",
		},
	)
	connsClosed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "connections_closed_total",
			Help:      "Connections Closed",
		},
	)
)

// NewConnectionTracer creates a new connection tracer using the default
// Prometheus registerer.
func NewConnectionTracer() *logging.ConnectionTracer {
	return NewConnectionTracerWithRegisterer(prometheus.DefaultRegisterer)
}

// NewConnectionTracerWithRegisterer creates a new connection tracer using a
// given Prometheus registerer. The underlying collectors are shared between
// all connections; the tracer itself must not be shared.
func NewConnectionTracerWithRegisterer(registerer prometheus.Registerer) *logging.ConnectionTracer {
	for _, c := range [...]prometheus.Collector{
		timeoutsDetected,
		pathHealthEvents,
		datagramsProcessed,
		datagramBytesProcessed,
		streamLimitViolations,
		streamLimitUpdates,
		congestionStateChanges,
		congestionWindow,
		smoothedRTT,
		lostPackets,
		connsClosed,
	} {
		if err := registerer.Register(c); err != nil {
			if ok := errors.As(err, &prometheus.AlreadyRegisteredError{}); !ok {
				panic(err)
			}
		}
	}

	countDatagram := func(outcome string, size logging.ByteCount) {
		tags := getStringSlice()
		defer putStringSlice(tags)

		*tags = append(*tags, outcome)
		datagramsProcessed.WithLabelValues(*tags...).Inc()
		datagramBytesProcessed.WithLabelValues(*tags...).Add(float64(size))
	}

	return &logging.ConnectionTracer{
		TimeoutDetected: func(reason logging.TimeoutReason) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, reason.String())
			timeoutsDetected.WithLabelValues(*tags...).Inc()
		},
		PathHealthEventDetected: func(event logging.PathHealthEvent) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, event.String())
			pathHealthEvents.WithLabelValues(*tags...).Inc()
		},
		SentDatagram: func(size logging.ByteCount) {
			countDatagram("sent", size)
		},
		QueuedDatagram: func(size logging.ByteCount) {
			countDatagram("queued", size)
		},
		ExpiredDatagram: func(size logging.ByteCount) {
			countDatagram("expired", size)
		},
		StreamLimitReached: func(streamType logging.StreamType) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, streamType.String())
			streamLimitViolations.WithLabelValues(*tags...).Inc()
		},
		UpdatedStreamLimit: func(streamType logging.StreamType, _ logging.StreamID) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, streamType.String())
			streamLimitUpdates.WithLabelValues(*tags...).Inc()
		},
		UpdatedCongestionState: func(state logging.CongestionState) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, state.String())
			congestionStateChanges.WithLabelValues(*tags...).Inc()
		},
		UpdatedCongestionWindow: func(cwnd logging.ByteCount) {
			congestionWindow.Observe(float64(cwnd))
		},
		UpdatedRTT: func(_, smoothed, _ time.Duration) {
			smoothedRTT.Observe(smoothed.Seconds())
		},
		LostPacket: func(_ logging.ByteCount) {
			lostPackets.Inc()
		},
		Close: func() {
			connsClosed.Inc()
		},
	}
}
