// Package qlog writes connection events in a qlog-like JSON-SEQ format,
// one JSON object per record, each preceded by an RS character.
package qlog

import (
	"io"
	"sync"
	"time"

	"github.com/quic-kit/connwatch/logging"
)

// NewConnectionTracer creates a new tracer that records events to w.
// The tracer keeps writing in the background until the Close callback is
// invoked, which flushes remaining events and closes w.
func NewConnectionTracer(w io.WriteCloser, p logging.Perspective) *logging.ConnectionTracer {
	tr := &trace{
		VantagePoint: vantagePoint{Type: p},
		CommonFields: commonFields{ReferenceTime: time.Now()},
	}
	t := &connectionTracer{w: newWriter(w, tr)}
	go t.w.Run()
	return &logging.ConnectionTracer{
		TimeoutDetected: func(reason logging.TimeoutReason) {
			t.recordEvent(eventConnectionClosed{Reason: reason})
		},
		PathHealthEventDetected: func(ev logging.PathHealthEvent) {
			t.recordEvent(eventPathHealth{Event: ev})
		},
		SentDatagram: func(size logging.ByteCount) {
			t.recordEvent(eventDatagramSent{Length: size})
		},
		QueuedDatagram: func(size logging.ByteCount) {
			t.recordEvent(eventDatagramQueued{Length: size})
		},
		ExpiredDatagram: func(size logging.ByteCount) {
			t.recordEvent(eventDatagramDropped{Length: size})
		},
		StreamLimitReached: func(streamType logging.StreamType) {
			t.recordEvent(eventStreamLimitReached{StreamType: streamType})
		},
		UpdatedStreamLimit: func(streamType logging.StreamType, maxStreamID logging.StreamID) {
			t.recordEvent(eventStreamLimitUpdated{StreamType: streamType, MaxStreamID: maxStreamID})
		},
		UpdatedCongestionState: func(state logging.CongestionState) {
			t.recordEvent(eventCongestionStateUpdated{state: state})
		},
		UpdatedCongestionWindow: func(cwnd logging.ByteCount) {
			t.recordEvent(eventCongestionWindowUpdated{CongestionWindow: cwnd})
		},
		UpdatedRTT: func(minRTT, smoothedRTT, latestRTT time.Duration) {
			t.recordEvent(eventRTTUpdated{MinRTT: minRTT, SmoothedRTT: smoothedRTT, LatestRTT: latestRTT})
		},
		LostPacket: func(size logging.ByteCount) {
			t.recordEvent(eventPacketLost{Length: size})
		},
		Close: func() {
			t.w.Close()
		},
	}
}

type connectionTracer struct {
	mutex sync.Mutex
	w     *writer
}

func (t *connectionTracer) recordEvent(details eventDetails) {
	t.mutex.Lock()
	t.w.RecordEvent(time.Now(), details)
	t.mutex.Unlock()
}
