// Package logging defines an event interface that transport components use to
// report state changes to pluggable tracers (qlog, metrics, ...).
package logging

import "time"

// A ConnectionTracer records events happening on a connection.
// Every callback is optional; components check for nil before calling.
// All callbacks are invoked on the connection's sequence.
type ConnectionTracer struct {
	TimeoutDetected         func(reason TimeoutReason)
	PathHealthEventDetected func(event PathHealthEvent)
	SentDatagram            func(size ByteCount)
	QueuedDatagram          func(size ByteCount)
	ExpiredDatagram         func(size ByteCount)
	StreamLimitReached      func(streamType StreamType)
	UpdatedStreamLimit      func(streamType StreamType, maxStreamID StreamID)
	UpdatedCongestionState  func(state CongestionState)
	UpdatedCongestionWindow func(congestionWindow ByteCount)
	UpdatedRTT              func(minRTT, smoothedRTT, latestRTT time.Duration)
	LostPacket              func(size ByteCount)
	Close                   func()
}

// NewMultiplexedConnectionTracer creates a new connection tracer that
// multiplexes events to all given tracers.
func NewMultiplexedConnectionTracer(tracers ...*ConnectionTracer) *ConnectionTracer {
	if len(tracers) == 0 {
		return nil
	}
	if len(tracers) == 1 {
		return tracers[0]
	}
	return &ConnectionTracer{
		TimeoutDetected: func(reason TimeoutReason) {
			for _, t := range tracers {
				if t.TimeoutDetected != nil {
					t.TimeoutDetected(reason)
				}
			}
		},
		PathHealthEventDetected: func(event PathHealthEvent) {
			for _, t := range tracers {
				if t.PathHealthEventDetected != nil {
					t.PathHealthEventDetected(event)
				}
			}
		},
		SentDatagram: func(size ByteCount) {
			for _, t := range tracers {
				if t.SentDatagram != nil {
					t.SentDatagram(size)
				}
			}
		},
		QueuedDatagram: func(size ByteCount) {
			for _, t := range tracers {
				if t.QueuedDatagram != nil {
					t.QueuedDatagram(size)
				}
			}
		},
		ExpiredDatagram: func(size ByteCount) {
			for _, t := range tracers {
				if t.ExpiredDatagram != nil {
					t.ExpiredDatagram(size)
				}
			}
		},
		StreamLimitReached: func(streamType StreamType) {
			for _, t := range tracers {
				if t.StreamLimitReached != nil {
					t.StreamLimitReached(streamType)
				}
			}
		},
		UpdatedStreamLimit: func(streamType StreamType, maxStreamID StreamID) {
			for _, t := range tracers {
				if t.UpdatedStreamLimit != nil {
					t.UpdatedStreamLimit(streamType, maxStreamID)
				}
			}
		},
		UpdatedCongestionState: func(state CongestionState) {
			for _, t := range tracers {
				if t.UpdatedCongestionState != nil {
					t.UpdatedCongestionState(state)
				}
			}
		},
		UpdatedCongestionWindow: func(congestionWindow ByteCount) {
			for _, t := range tracers {
				if t.UpdatedCongestionWindow != nil {
					t.UpdatedCongestionWindow(congestionWindow)
				}
			}
		},
		UpdatedRTT: func(minRTT, smoothedRTT, latestRTT time.Duration) {
			for _, t := range tracers {
				if t.UpdatedRTT != nil {
					t.UpdatedRTT(minRTT, smoothedRTT, latestRTT)
				}
			}
		},
		LostPacket: func(size ByteCount) {
			for _, t := range tracers {
				if t.LostPacket != nil {
					t.LostPacket(size)
				}
			}
		},
		Close: func() {
			for _, t := range tracers {
				if t.Close != nil {
					t.Close()
				}
			}
		},
	}
}
