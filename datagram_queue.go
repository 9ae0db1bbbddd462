package connwatch

import (
	"time"

	"github.com/go-logr/logr"

	"github.com/quic-kit/connwatch/congestion"
	"github.com/quic-kit/connwatch/internal/protocol"
	"github.com/quic-kit/connwatch/internal/utils"
	"github.com/quic-kit/connwatch/internal/utils/ringbuffer"
	"github.com/quic-kit/connwatch/logging"
)

// Multiplier for the default maximum time a datagram waits in the queue,
// in units of the minimum RTT.
const expiryInMinRTTs = 1.25

// Lower bound for the default maximum time in queue, in pacing windows,
// with the timer granularity as the window size.
const minPacingWindows = 4

type queuedDatagram struct {
	payload []byte
	expiry  time.Time
}

// A DatagramQueue buffers unreliable datagrams that the send path cannot
// accept yet. Queued datagrams keep their submission order and expire after a
// bounded time in queue; expiry is lazy, checked on the next queue operation,
// never by a background timer.
type DatagramQueue struct {
	sender    DatagramSender
	observer  DatagramQueueObserver
	rttStats  *congestion.RTTStats
	scheduler Scheduler
	tracer    *logging.ConnectionTracer
	logger    logr.Logger

	queue ringbuffer.RingBuffer[queuedDatagram]

	// Overrides the RTT-derived maximum time in queue when non-zero.
	maxTimeInQueue time.Duration
	forceFlush     bool
}

// NewDatagramQueue creates a queue draining into sender.
// observer and tracer may be nil.
func NewDatagramQueue(
	sender DatagramSender,
	observer DatagramQueueObserver,
	rttStats *congestion.RTTStats,
	scheduler Scheduler,
	tracer *logging.ConnectionTracer,
	logger logr.Logger,
) *DatagramQueue {
	return &DatagramQueue{
		sender:    sender,
		observer:  observer,
		rttStats:  rttStats,
		scheduler: scheduler,
		tracer:    tracer,
		logger:    logger,
	}
}

// SetMaxTimeInQueue overrides the RTT-derived maximum time a datagram may
// spend in the queue. It only applies to datagrams queued afterwards.
func (q *DatagramQueue) SetMaxTimeInQueue(d time.Duration) {
	q.maxTimeInQueue = d
}

// SetForceFlush sets the flush flag passed to the sender with every datagram.
func (q *DatagramQueue) SetForceFlush(forceFlush bool) {
	q.forceFlush = forceFlush
}

// SendOrQueueDatagram hands the datagram to the sender right away if the
// queue is empty, and queues it at the tail otherwise. Queuing never reorders
// datagrams. It returns SendStatusBlocked if the datagram was queued.
func (q *DatagramQueue) SendOrQueueDatagram(payload []byte) SendStatus {
	if q.queue.Empty() {
		if status := q.sender.SendDatagram(payload, q.forceFlush); status != SendStatusBlocked {
			q.onProcessed(status, protocol.ByteCount(len(payload)))
			return status
		}
	}
	expiry := q.scheduler.Now().Add(q.timeInQueueLimit())
	q.queue.PushBack(queuedDatagram{payload: payload, expiry: expiry})
	if q.tracer != nil && q.tracer.QueuedDatagram != nil {
		q.tracer.QueuedDatagram(protocol.ByteCount(len(payload)))
	}
	return SendStatusBlocked
}

// TrySendingNextDatagram purges expired datagrams from the head of the queue
// and hands the remaining head to the sender. On a non-blocked outcome the
// datagram is removed and the outcome reported to the observer.
// ok is false if nothing is left to send.
func (q *DatagramQueue) TrySendingNextDatagram() (status SendStatus, ok bool) {
	q.removeExpiredDatagrams()
	if q.queue.Empty() {
		return 0, false
	}
	datagram := q.queue.PeekFront()
	status = q.sender.SendDatagram(datagram.payload, q.forceFlush)
	if status != SendStatusBlocked {
		q.queue.PopFront()
		q.onProcessed(status, protocol.ByteCount(len(datagram.payload)))
	}
	return status, true
}

// SendDatagrams drains the queue until the sender blocks or the queue is
// empty. It returns the number of datagrams handed off.
func (q *DatagramQueue) SendDatagrams() int {
	var sent int
	for {
		status, ok := q.TrySendingNextDatagram()
		if !ok || status == SendStatusBlocked {
			return sent
		}
		sent++
	}
}

// Len returns the number of queued datagrams, including ones that already
// expired but haven't been purged yet.
func (q *DatagramQueue) Len() int {
	return q.queue.Len()
}

// Clear discards all queued datagrams without reporting them.
// Used at connection teardown.
func (q *DatagramQueue) Clear() {
	q.queue.Clear()
}

func (q *DatagramQueue) removeExpiredDatagrams() {
	now := q.scheduler.Now()
	for !q.queue.Empty() && !q.queue.PeekFront().expiry.After(now) {
		datagram := q.queue.PopFront()
		q.logger.V(1).Info("datagram expired in queue", "size", len(datagram.payload))
		if q.tracer != nil && q.tracer.ExpiredDatagram != nil {
			q.tracer.ExpiredDatagram(protocol.ByteCount(len(datagram.payload)))
		}
		if q.observer != nil {
			q.observer.OnDatagramProcessed(SendStatusExpired)
		}
	}
}

func (q *DatagramQueue) onProcessed(status SendStatus, size protocol.ByteCount) {
	if status == SendStatusSent && q.tracer != nil && q.tracer.SentDatagram != nil {
		q.tracer.SentDatagram(size)
	}
	if q.observer != nil {
		q.observer.OnDatagramProcessed(status)
	}
}

// timeInQueueLimit returns the maximum time a datagram queued now may wait:
// the explicit override if set, else 1.25 times the minimum RTT, but at
// least a few pacing windows so fresh connections don't drop everything.
func (q *DatagramQueue) timeInQueueLimit() time.Duration {
	if q.maxTimeInQueue != 0 {
		return q.maxTimeInQueue
	}
	limit := time.Duration(expiryInMinRTTs * float64(q.rttStats.MinRTT()))
	return utils.Max(limit, minPacingWindows*protocol.TimerGranularity)
}
