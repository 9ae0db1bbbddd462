package connwatch

import (
	"github.com/go-logr/logr"

	"github.com/quic-kit/connwatch/internal/protocol"
	"github.com/quic-kit/connwatch/logging"
)

// A StreamsMap combines the bidirectional and unidirectional stream-ID
// accounting of one connection and dispatches frame-derived stream IDs to the
// right half.
type StreamsMap struct {
	perspective protocol.Perspective
	bidi        *StreamIDManager
	uni         *StreamIDManager
}

// NewStreamsMap creates the stream-ID accounting for one connection.
// maxIncomingBidiStreams and maxIncomingUniStreams are the local limits
// advertised to the peer; the outgoing limits are raised via
// SetMaxOpenOutgoingStreams once the peer's transport parameters are known.
// tracer may be nil.
func NewStreamsMap(
	perspective protocol.Perspective,
	maxIncomingBidiStreams, maxIncomingUniStreams int64,
	tracer *logging.ConnectionTracer,
	logger logr.Logger,
) *StreamsMap {
	return &StreamsMap{
		perspective: perspective,
		bidi:        NewStreamIDManager(protocol.StreamTypeBidi, perspective, maxIncomingBidiStreams, tracer, logger),
		uni:         NewStreamIDManager(protocol.StreamTypeUni, perspective, maxIncomingUniStreams, tracer, logger),
	}
}

func (m *StreamsMap) manager(streamType protocol.StreamType) *StreamIDManager {
	if streamType == protocol.StreamTypeBidi {
		return m.bidi
	}
	return m.uni
}

// CanOpenNextOutgoingStream says if another outgoing stream of the given type
// stays within the peer's advertised limit.
func (m *StreamsMap) CanOpenNextOutgoingStream(streamType protocol.StreamType) bool {
	return m.manager(streamType).CanOpenNextOutgoingStream()
}

// NextOutgoingStreamID returns the ID for the next outgoing stream of the
// given type. Callers must check CanOpenNextOutgoingStream first.
func (m *StreamsMap) NextOutgoingStreamID(streamType protocol.StreamType) protocol.StreamID {
	return m.manager(streamType).NextOutgoingStreamID()
}

// MaybeIncreaseLargestPeerStreamID records a peer-created stream ID, routed
// by the ID's type. It returns false on a protocol violation: an ID beyond
// the advertised limit, or an ID the peer cannot have initiated.
func (m *StreamsMap) MaybeIncreaseLargestPeerStreamID(id protocol.StreamID) bool {
	if id.InitiatedBy() == m.perspective {
		return false
	}
	return m.manager(id.Type()).MaybeIncreaseLargestPeerStreamID(id)
}

// IsAvailableStream says if the peer may still create a stream with this ID.
func (m *StreamsMap) IsAvailableStream(id protocol.StreamID) bool {
	if id.InitiatedBy() == m.perspective {
		return false
	}
	return m.manager(id.Type()).IsAvailableStream(id)
}

// OnStreamClosed removes a peer-created ID from the available set.
func (m *StreamsMap) OnStreamClosed(id protocol.StreamID) {
	if id.InitiatedBy() == m.perspective {
		return
	}
	m.manager(id.Type()).OnStreamClosed(id)
}

// SetMaxOpenOutgoingStreams raises the outgoing ceiling for the given stream
// type, typically from a limit-update frame. Lowering attempts are ignored.
func (m *StreamsMap) SetMaxOpenOutgoingStreams(streamType protocol.StreamType, count int64) {
	m.manager(streamType).SetMaxOpenOutgoingStreams(count)
}

// SetMaxOpenIncomingStreams raises the incoming ceiling for the given stream
// type. Lowering attempts are ignored.
func (m *StreamsMap) SetMaxOpenIncomingStreams(streamType protocol.StreamType, count int64) {
	m.manager(streamType).SetMaxOpenIncomingStreams(count)
}
