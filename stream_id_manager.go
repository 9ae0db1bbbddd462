package connwatch

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/quic-kit/connwatch/internal/protocol"
	"github.com/quic-kit/connwatch/logging"
)

// A StreamIDManager does the stream-ID accounting for one stream type
// (bidirectional or unidirectional) of a connection: admission of the
// connection's own outgoing streams against the peer's advertised ceiling,
// and tracking of the IDs the peer has created or may still create.
type StreamIDManager struct {
	streamType  protocol.StreamType
	perspective protocol.Perspective
	tracer      *logging.ConnectionTracer
	logger      logr.Logger

	nextOutgoingStreamID       protocol.StreamID
	maxAllowedOutgoingStreamID protocol.StreamID

	largestPeerCreatedStreamID protocol.StreamID
	maxAllowedIncomingStreamID protocol.StreamID

	// Peer-creatable stream IDs below largestPeerCreatedStreamID that the
	// peer has not used yet. Bounded by the incoming ceiling.
	availableStreams map[protocol.StreamID]struct{}
}

// NewStreamIDManager creates the accounting for one stream type.
// maxIncomingStreams is the local limit advertised to the peer; the outgoing
// ceiling starts at zero and is raised via SetMaxOpenOutgoingStreams once the
// peer's limit is known. tracer may be nil.
func NewStreamIDManager(
	streamType protocol.StreamType,
	perspective protocol.Perspective,
	maxIncomingStreams int64,
	tracer *logging.ConnectionTracer,
	logger logr.Logger,
) *StreamIDManager {
	return &StreamIDManager{
		streamType:                 streamType,
		perspective:                perspective,
		tracer:                     tracer,
		logger:                     logger,
		nextOutgoingStreamID:       protocol.FirstStreamID(streamType, perspective),
		maxAllowedOutgoingStreamID: protocol.InvalidStreamID,
		largestPeerCreatedStreamID: protocol.InvalidStreamID,
		maxAllowedIncomingStreamID: protocol.MaxStreamID(streamType, maxIncomingStreams, perspective.Opposite()),
		availableStreams:           make(map[protocol.StreamID]struct{}),
	}
}

// CanOpenNextOutgoingStream says if opening another outgoing stream stays
// within the peer's advertised limit.
func (m *StreamIDManager) CanOpenNextOutgoingStream() bool {
	return m.maxAllowedOutgoingStreamID != protocol.InvalidStreamID &&
		m.nextOutgoingStreamID <= m.maxAllowedOutgoingStreamID
}

// NextOutgoingStreamID returns the ID for the next outgoing stream and
// advances the counter. Callers must check CanOpenNextOutgoingStream first.
func (m *StreamIDManager) NextOutgoingStreamID() protocol.StreamID {
	if !m.CanOpenNextOutgoingStream() {
		panic(fmt.Sprintf("connwatch BUG: opened %s stream %d beyond the peer's limit", m.streamType, m.nextOutgoingStreamID))
	}
	id := m.nextOutgoingStreamID
	m.nextOutgoingStreamID += protocol.StreamIDStride
	return id
}

// MaybeIncreaseLargestPeerStreamID records a peer-created stream ID.
// Every same-class ID between the previous largest and id becomes available
// for the peer to use later. It returns false if id exceeds the advertised
// incoming limit; that is a protocol violation the caller handles, never a
// reason to crash.
func (m *StreamIDManager) MaybeIncreaseLargestPeerStreamID(id protocol.StreamID) bool {
	if id <= m.largestPeerCreatedStreamID {
		return true
	}
	if m.maxAllowedIncomingStreamID == protocol.InvalidStreamID || id > m.maxAllowedIncomingStreamID {
		m.logger.V(1).Info("peer exceeded stream limit",
			"stream_id", int64(id), "max_allowed", int64(m.maxAllowedIncomingStreamID))
		if m.tracer != nil && m.tracer.StreamLimitReached != nil {
			m.tracer.StreamLimitReached(m.streamType)
		}
		return false
	}
	first := m.largestPeerCreatedStreamID + protocol.StreamIDStride
	if m.largestPeerCreatedStreamID == protocol.InvalidStreamID {
		first = protocol.FirstStreamID(m.streamType, m.perspective.Opposite())
	}
	for available := first; available < id; available += protocol.StreamIDStride {
		m.availableStreams[available] = struct{}{}
	}
	m.largestPeerCreatedStreamID = id
	return true
}

// IsAvailableStream says if the peer may still create a stream with this ID:
// it lies below the largest peer-created ID but was skipped so far.
func (m *StreamIDManager) IsAvailableStream(id protocol.StreamID) bool {
	_, ok := m.availableStreams[id]
	return ok
}

// OnStreamClosed removes the ID from the available set, if present.
// Ceilings are not affected.
func (m *StreamIDManager) OnStreamClosed(id protocol.StreamID) {
	delete(m.availableStreams, id)
}

// SetMaxOpenOutgoingStreams raises the outgoing stream ceiling to allow count
// concurrently open streams. Attempts to lower an already advertised ceiling
// are ignored.
func (m *StreamIDManager) SetMaxOpenOutgoingStreams(count int64) {
	max := protocol.MaxStreamID(m.streamType, count, m.perspective)
	if max <= m.maxAllowedOutgoingStreamID {
		return
	}
	m.maxAllowedOutgoingStreamID = max
	if m.tracer != nil && m.tracer.UpdatedStreamLimit != nil {
		m.tracer.UpdatedStreamLimit(m.streamType, max)
	}
}

// SetMaxOpenIncomingStreams raises the incoming stream ceiling to allow count
// concurrently open streams. Attempts to lower an already advertised ceiling
// are ignored.
func (m *StreamIDManager) SetMaxOpenIncomingStreams(count int64) {
	max := protocol.MaxStreamID(m.streamType, count, m.perspective.Opposite())
	if max <= m.maxAllowedIncomingStreamID {
		return
	}
	m.maxAllowedIncomingStreamID = max
	if m.tracer != nil && m.tracer.UpdatedStreamLimit != nil {
		m.tracer.UpdatedStreamLimit(m.streamType, max)
	}
}

// LargestPeerCreatedStreamID is the largest stream ID the peer has used so
// far, or protocol.InvalidStreamID if the peer has not opened any stream.
func (m *StreamIDManager) LargestPeerCreatedStreamID() protocol.StreamID {
	return m.largestPeerCreatedStreamID
}

// NumAvailableStreams is the number of IDs the peer skipped and may still use.
func (m *StreamIDManager) NumAvailableStreams() int {
	return len(m.availableStreams)
}
