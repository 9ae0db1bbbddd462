package connwatch

import (
	"time"

	"github.com/go-logr/logr"

	"github.com/quic-kit/connwatch/internal/utils"
	"github.com/quic-kit/connwatch/logging"
)

// An IdleNetworkDetector watches a connection for handshake and idle timeouts.
// A single alarm stands for the earlier of the two logical deadlines:
// start + handshake timeout and last network activity + idle timeout.
type IdleNetworkDetector struct {
	delegate  IdleNetworkDetectorDelegate
	scheduler Scheduler
	alarm     Alarm
	tracer    *logging.ConnectionTracer
	logger    logr.Logger

	startTime        time.Time
	handshakeTimeout time.Duration
	idleTimeout      time.Duration

	// Time the last packet was received, initialized to the start time.
	lastReceivedTime time.Time
	// Time the first packet was sent after receiving a packet.
	// Equals the unset deadline if no packet was sent since then.
	firstSentAfterReceiving Deadline

	stopped bool
}

// NewIdleNetworkDetector creates a detector for a connection established now.
// Both timeouts start out disabled; call SetTimeouts to arm the detector.
// tracer may be nil.
func NewIdleNetworkDetector(
	delegate IdleNetworkDetectorDelegate,
	scheduler Scheduler,
	tracer *logging.ConnectionTracer,
	logger logr.Logger,
) *IdleNetworkDetector {
	d := &IdleNetworkDetector{
		delegate:         delegate,
		scheduler:        scheduler,
		tracer:           tracer,
		logger:           logger,
		startTime:        scheduler.Now(),
		handshakeTimeout: InfiniteTimeout,
		idleTimeout:      InfiniteTimeout,
	}
	d.lastReceivedTime = d.startTime
	d.alarm = scheduler.NewAlarm(d.onAlarm)
	return d
}

// SetTimeouts stores both timeouts and re-arms the alarm.
// InfiniteTimeout disables the respective timeout.
func (d *IdleNetworkDetector) SetTimeouts(handshakeTimeout, idleTimeout time.Duration) {
	d.handshakeTimeout = handshakeTimeout
	d.idleTimeout = idleTimeout
	d.setAlarm()
}

// OnPacketSent records the first packet sent after receiving a packet.
// Later sends before the next receive don't move the idle deadline.
func (d *IdleNetworkDetector) OnPacketSent(now time.Time) {
	if d.firstSentAfterReceiving.IsSet() && d.firstSentAfterReceiving.Time().After(d.lastReceivedTime) {
		return
	}
	t := now
	if d.firstSentAfterReceiving.IsSet() {
		t = utils.MaxTime(t, d.firstSentAfterReceiving.Time())
	}
	d.firstSentAfterReceiving = DeadlineFrom(t)
	d.setAlarm()
}

// OnPacketReceived records network activity and pushes the idle deadline out.
// The activity marker never moves backward.
func (d *IdleNetworkDetector) OnPacketReceived(now time.Time) {
	d.lastReceivedTime = utils.MaxTime(d.lastReceivedTime, now)
	d.setAlarm()
}

// StopDetection disables both timeouts and permanently cancels the alarm.
// It is idempotent and may be called from inside a delegate callback.
func (d *IdleNetworkDetector) StopDetection() {
	d.alarm.PermanentCancel()
	d.handshakeTimeout = InfiniteTimeout
	d.idleTimeout = InfiniteTimeout
	d.stopped = true
}

// LastNetworkActivityTime is the time the connection last made progress:
// the later of the last receive and the first send after it.
func (d *IdleNetworkDetector) LastNetworkActivityTime() time.Time {
	if d.firstSentAfterReceiving.IsSet() {
		return utils.MaxTime(d.lastReceivedTime, d.firstSentAfterReceiving.Time())
	}
	return d.lastReceivedTime
}

// NextDeadline returns the deadline the alarm gets armed for: the earlier of
// the handshake deadline and the idle deadline, skipping disabled timeouts.
func (d *IdleNetworkDetector) NextDeadline() Deadline {
	var handshake, idle Deadline
	if d.handshakeTimeout != InfiniteTimeout {
		handshake = DeadlineFrom(d.startTime.Add(d.handshakeTimeout))
	}
	if d.idleTimeout != InfiniteTimeout {
		idle = DeadlineFrom(d.LastNetworkActivityTime().Add(d.idleTimeout))
	}
	return minDeadline(handshake, idle)
}

func (d *IdleNetworkDetector) setAlarm() {
	if d.stopped {
		return
	}
	d.alarm.Update(d.NextDeadline())
}

func (d *IdleNetworkDetector) onAlarm(time.Time) {
	reason := d.timeoutToReport()
	d.logger.V(1).Info("connection timed out", "reason", reason.String())
	if d.tracer != nil && d.tracer.TimeoutDetected != nil {
		d.tracer.TimeoutDetected(reason)
	}
	switch reason {
	case logging.TimeoutReasonHandshake:
		d.delegate.OnHandshakeTimeout()
	case logging.TimeoutReasonIdle:
		d.delegate.OnIdleNetworkDetected()
	}
}

// timeoutToReport decides which timeout a firing alarm stands for.
// Network activity may have pushed the idle deadline past the handshake
// deadline between arming and firing; in that case the handshake deadline
// is the one that expired.
func (d *IdleNetworkDetector) timeoutToReport() logging.TimeoutReason {
	if d.handshakeTimeout == InfiniteTimeout && d.idleTimeout == InfiniteTimeout {
		panic("connwatch BUG: idle network detector fired with both timeouts disabled")
	}
	if d.handshakeTimeout == InfiniteTimeout {
		return logging.TimeoutReasonIdle
	}
	if d.idleTimeout == InfiniteTimeout {
		return logging.TimeoutReasonHandshake
	}
	idleDeadline := d.LastNetworkActivityTime().Add(d.idleTimeout)
	handshakeDeadline := d.startTime.Add(d.handshakeTimeout)
	if idleDeadline.After(handshakeDeadline) {
		return logging.TimeoutReasonHandshake
	}
	return logging.TimeoutReasonIdle
}
