package logging

import "github.com/quic-kit/connwatch/internal/protocol"

type (
	// A ByteCount in QUIC
	ByteCount = protocol.ByteCount
	// A StreamID is a QUIC stream ID.
	StreamID = protocol.StreamID
	// The StreamType is the type of the stream (unidirectional or bidirectional).
	StreamType = protocol.StreamType
	// The Perspective is the role of a QUIC endpoint (client or server).
	Perspective = protocol.Perspective
)

const (
	// PerspectiveServer is used for a QUIC server
	PerspectiveServer = protocol.PerspectiveServer
	// PerspectiveClient is used for a QUIC client
	PerspectiveClient = protocol.PerspectiveClient
)

const (
	// StreamTypeUni is a unidirectional stream
	StreamTypeUni = protocol.StreamTypeUni
	// StreamTypeBidi is a bidirectional stream
	StreamTypeBidi = protocol.StreamTypeBidi
)

// A TimeoutReason is the reason why a connection is abandoned.
type TimeoutReason uint8

const (
	// TimeoutReasonHandshake is used when the connection is closed due to a handshake timeout.
	TimeoutReasonHandshake TimeoutReason = iota
	// TimeoutReasonIdle is used when the connection is closed due to an idle timeout.
	TimeoutReasonIdle
)

func (r TimeoutReason) String() string {
	switch r {
	case TimeoutReasonHandshake:
		return "handshake_timeout"
	case TimeoutReasonIdle:
		return "idle_timeout"
	default:
		return "unknown timeout reason"
	}
}

// A PathHealthEvent is a change of the path-health state detected on a connection.
type PathHealthEvent uint8

const (
	// PathHealthDegrading is reported when the path is degrading, but possibly still alive.
	PathHealthDegrading PathHealthEvent = iota
	// PathHealthMTUReduction is reported when the path stopped supporting the current packet size.
	PathHealthMTUReduction
	// PathHealthBlackhole is reported when the path is considered dead.
	PathHealthBlackhole
)

func (e PathHealthEvent) String() string {
	switch e {
	case PathHealthDegrading:
		return "path_degrading"
	case PathHealthMTUReduction:
		return "mtu_reduction"
	case PathHealthBlackhole:
		return "blackhole"
	default:
		return "unknown path health event"
	}
}

// The CongestionState is the state of the congestion controller.
type CongestionState uint8

const (
	// CongestionStateSlowStart is the slow start phase of Reno / Cubic
	CongestionStateSlowStart CongestionState = iota
	// CongestionStateCongestionAvoidance is the congestion avoidance phase of Reno / Cubic
	CongestionStateCongestionAvoidance
	// CongestionStateRecovery is the recovery phase of Reno / Cubic
	CongestionStateRecovery
	// CongestionStateApplicationLimited means that the congestion controller is application limited
	CongestionStateApplicationLimited
)

func (s CongestionState) String() string {
	switch s {
	case CongestionStateSlowStart:
		return "slow_start"
	case CongestionStateCongestionAvoidance:
		return "congestion_avoidance"
	case CongestionStateRecovery:
		return "recovery"
	case CongestionStateApplicationLimited:
		return "application_limited"
	default:
		return "unknown congestion state"
	}
}
