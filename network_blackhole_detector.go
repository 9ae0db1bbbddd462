package connwatch

import (
	"time"

	"github.com/go-logr/logr"

	"github.com/quic-kit/connwatch/logging"
)

// A NetworkBlackholeDetector tracks up to three path-health deadlines on one
// alarm: path degrading, path MTU reduction, and blackhole. The blackhole
// deadline is the terminal signal; when set it must be the latest of the
// three, so that the early warnings always fire first.
type NetworkBlackholeDetector struct {
	delegate NetworkBlackholeDetectorDelegate
	alarm    Alarm
	tracer   *logging.ConnectionTracer
	logger   logr.Logger

	pathDegradingDeadline    Deadline
	blackholeDeadline        Deadline
	pathMTUReductionDeadline Deadline
}

// NewNetworkBlackholeDetector creates a detector with no deadlines set.
// tracer may be nil.
func NewNetworkBlackholeDetector(
	delegate NetworkBlackholeDetectorDelegate,
	scheduler Scheduler,
	tracer *logging.ConnectionTracer,
	logger logr.Logger,
) *NetworkBlackholeDetector {
	d := &NetworkBlackholeDetector{
		delegate: delegate,
		tracer:   tracer,
		logger:   logger,
	}
	d.alarm = scheduler.NewAlarm(d.onAlarm)
	return d
}

// RestartDetection replaces all three deadlines and re-arms the alarm for the
// earliest of them. Unset deadlines disable the respective signal.
func (d *NetworkBlackholeDetector) RestartDetection(pathDegrading, blackhole, pathMTUReduction Deadline) {
	d.pathDegradingDeadline = pathDegrading
	d.blackholeDeadline = blackhole
	d.pathMTUReductionDeadline = pathMTUReduction
	if d.blackholeDeadline.IsSet() && !d.blackholeDeadline.Equal(d.lastDeadline()) {
		panic("connwatch BUG: blackhole deadline is not the latest deadline")
	}
	d.updateAlarm()
}

// StopDetection clears all three deadlines. If permanent, the alarm rejects
// all future arming attempts; otherwise detection may be restarted later.
func (d *NetworkBlackholeDetector) StopDetection(permanent bool) {
	if permanent {
		d.alarm.PermanentCancel()
	} else {
		d.alarm.Cancel()
	}
	d.pathDegradingDeadline = Deadline{}
	d.blackholeDeadline = Deadline{}
	d.pathMTUReductionDeadline = Deadline{}
}

// IsDetectionInProgress says if the alarm is currently armed.
func (d *NetworkBlackholeDetector) IsDetectionInProgress() bool {
	return d.alarm.IsSet()
}

func (d *NetworkBlackholeDetector) onAlarm(time.Time) {
	earliest := d.earliestDeadline()
	if !earliest.IsSet() {
		panic("connwatch BUG: network blackhole detector fired with no deadline set")
	}
	var event logging.PathHealthEvent
	switch {
	case earliest.Equal(d.pathDegradingDeadline):
		d.pathDegradingDeadline = Deadline{}
		event = logging.PathHealthDegrading
	case earliest.Equal(d.pathMTUReductionDeadline):
		d.pathMTUReductionDeadline = Deadline{}
		event = logging.PathHealthMTUReduction
	default:
		d.blackholeDeadline = Deadline{}
		event = logging.PathHealthBlackhole
	}
	d.logger.V(1).Info("path health event", "event", event.String())
	if d.tracer != nil && d.tracer.PathHealthEventDetected != nil {
		d.tracer.PathHealthEventDetected(event)
	}
	switch event {
	case logging.PathHealthDegrading:
		d.delegate.OnPathDegradingDetected()
	case logging.PathHealthMTUReduction:
		d.delegate.OnPathMtuReductionDetected()
	case logging.PathHealthBlackhole:
		d.delegate.OnBlackholeDetected()
	}
	d.updateAlarm()
}

func (d *NetworkBlackholeDetector) updateAlarm() {
	d.alarm.Update(d.earliestDeadline())
}

func (d *NetworkBlackholeDetector) earliestDeadline() Deadline {
	return minDeadline(d.pathDegradingDeadline, d.blackholeDeadline, d.pathMTUReductionDeadline)
}

func (d *NetworkBlackholeDetector) lastDeadline() Deadline {
	return maxDeadline(d.pathDegradingDeadline, d.blackholeDeadline, d.pathMTUReductionDeadline)
}
