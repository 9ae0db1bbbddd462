// Package connwatch implements the per-connection resource and liveness
// management of a QUIC-like transport: handshake and idle timeout detection,
// path-health (blackhole) detection, stream-ID admission accounting and an
// expiry queue for unreliable datagrams.
//
// All components are constructed once per connection and run on the
// connection's sequence; none of them perform internal locking.
package connwatch

import (
	"math"
	"time"
)

// InfiniteTimeout disables a timeout.
const InfiniteTimeout time.Duration = math.MaxInt64

// A SendStatus is the outcome of handing a datagram to the send path.
type SendStatus uint8

const (
	// SendStatusSent means the datagram was accepted by the send path.
	SendStatusSent SendStatus = iota
	// SendStatusBlocked means the send path cannot accept a datagram right now.
	// The datagram stays queued and is retried later.
	SendStatusBlocked
	// SendStatusExpired means the datagram spent longer in the queue than its
	// maximum time in queue and was dropped without being sent.
	SendStatusExpired
)

func (s SendStatus) String() string {
	switch s {
	case SendStatusSent:
		return "sent"
	case SendStatusBlocked:
		return "blocked"
	case SendStatusExpired:
		return "expired"
	default:
		return "unknown send status"
	}
}

// A DatagramSender hands datagrams to the connection's write path.
// It must only return SendStatusSent or SendStatusBlocked.
type DatagramSender interface {
	SendDatagram(payload []byte, forceFlush bool) SendStatus
}

// A DatagramQueueObserver is notified of the final outcome of every datagram
// handed to a DatagramQueue.
type DatagramQueueObserver interface {
	OnDatagramProcessed(status SendStatus)
}

// An IdleNetworkDetectorDelegate is notified when an IdleNetworkDetector
// declares the connection dead.
type IdleNetworkDetectorDelegate interface {
	OnHandshakeTimeout()
	OnIdleNetworkDetected()
}

// A NetworkBlackholeDetectorDelegate is notified of path-health signals
// detected by a NetworkBlackholeDetector. Only OnBlackholeDetected is
// terminal; the other two are early warnings.
type NetworkBlackholeDetectorDelegate interface {
	OnPathDegradingDetected()
	OnPathMtuReductionDetected()
	OnBlackholeDetected()
}
