package connwatch

import (
	"sort"
	"sync"
	"time"
)

// An Alarm fires a single callback when its deadline is reached.
// Alarms are one-shot: firing clears the deadline, and the owner re-arms
// from inside the callback if it wants another shot.
type Alarm interface {
	// Update arms the alarm for the given deadline, replacing any previously
	// set deadline. Updating with an unset deadline cancels the alarm.
	// After PermanentCancel, Update is a no-op.
	Update(deadline Deadline)
	// Cancel unarms the alarm. It may be armed again later.
	Cancel()
	// PermanentCancel unarms the alarm and rejects all future arming attempts.
	// It is idempotent.
	PermanentCancel()
	// IsSet says if the alarm is currently armed.
	IsSet() bool
	// Deadline returns the deadline the alarm is armed for,
	// or the unset deadline if the alarm is not armed.
	Deadline() Deadline
}

// A Scheduler supplies the time base of a connection and creates the alarms
// that fire against it. Alarm callbacks are delivered on the connection's
// sequence, and a callback only fires after the call that armed it.
type Scheduler interface {
	Now() time.Time
	NewAlarm(onFire func(now time.Time)) Alarm
}

// NewSystemScheduler returns a Scheduler backed by real time.
// Alarm callbacks are handed to post, which must run them on the connection's
// sequence. A nil post runs callbacks directly on the timer goroutine.
func NewSystemScheduler(post func(f func())) Scheduler {
	if post == nil {
		post = func(f func()) { f() }
	}
	return &systemScheduler{post: post}
}

type systemScheduler struct {
	post func(func())
}

func (s *systemScheduler) Now() time.Time { return time.Now() }

func (s *systemScheduler) NewAlarm(onFire func(now time.Time)) Alarm {
	return &systemAlarm{scheduler: s, onFire: onFire}
}

type systemAlarm struct {
	mx        sync.Mutex
	scheduler *systemScheduler
	onFire    func(time.Time)
	timer     *time.Timer
	deadline  Deadline
	// gen invalidates timer fires that raced with Update or Cancel.
	gen  uint64
	dead bool
}

func (a *systemAlarm) Update(deadline Deadline) {
	a.mx.Lock()
	defer a.mx.Unlock()
	if a.dead {
		return
	}
	a.unarm()
	if !deadline.IsSet() {
		return
	}
	a.deadline = deadline
	gen := a.gen
	d := time.Until(deadline.Time())
	if d < 0 {
		d = 0
	}
	a.timer = time.AfterFunc(d, func() { a.fire(gen) })
}

func (a *systemAlarm) fire(gen uint64) {
	a.scheduler.post(func() {
		a.mx.Lock()
		if a.dead || gen != a.gen {
			a.mx.Unlock()
			return
		}
		a.unarm()
		a.mx.Unlock()
		a.onFire(time.Now())
	})
}

func (a *systemAlarm) unarm() {
	a.gen++
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.deadline = Deadline{}
}

func (a *systemAlarm) Cancel() {
	a.mx.Lock()
	defer a.mx.Unlock()
	a.unarm()
}

func (a *systemAlarm) PermanentCancel() {
	a.mx.Lock()
	defer a.mx.Unlock()
	a.unarm()
	a.dead = true
}

func (a *systemAlarm) IsSet() bool {
	a.mx.Lock()
	defer a.mx.Unlock()
	return a.deadline.IsSet()
}

func (a *systemAlarm) Deadline() Deadline {
	a.mx.Lock()
	defer a.mx.Unlock()
	return a.deadline
}

// A ManualScheduler is a deterministic Scheduler for tests: time only moves
// when Advance or AdvanceTo is called, and due alarms fire synchronously from
// inside those calls, in deadline order.
// It is not safe for concurrent use.
type ManualScheduler struct {
	now    time.Time
	alarms []*manualAlarm
}

var _ Scheduler = &ManualScheduler{}

// NewManualScheduler returns a ManualScheduler whose clock reads start.
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

func (s *ManualScheduler) Now() time.Time { return s.now }

func (s *ManualScheduler) NewAlarm(onFire func(now time.Time)) Alarm {
	a := &manualAlarm{scheduler: s, onFire: onFire}
	s.alarms = append(s.alarms, a)
	return a
}

// Advance moves the clock forward by d, firing all alarms due on the way.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.AdvanceTo(s.now.Add(d))
}

// AdvanceTo moves the clock forward to t, firing all alarms due on the way.
// Alarm callbacks run synchronously with the clock set to their deadline
// (never before it), so a callback re-arming an already elapsed deadline
// fires again before AdvanceTo returns.
func (s *ManualScheduler) AdvanceTo(t time.Time) {
	if t.Before(s.now) {
		panic("connwatch BUG: manual scheduler advanced backwards")
	}
	for {
		a := s.nextDueAlarm(t)
		if a == nil {
			break
		}
		deadline := a.deadline.Time()
		if deadline.After(s.now) {
			s.now = deadline
		}
		a.deadline = Deadline{}
		a.onFire(s.now)
	}
	s.now = t
}

func (s *ManualScheduler) nextDueAlarm(t time.Time) *manualAlarm {
	due := make([]*manualAlarm, 0, len(s.alarms))
	for _, a := range s.alarms {
		if a.deadline.IsSet() && !a.deadline.Time().After(t) {
			due = append(due, a)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.SliceStable(due, func(i, j int) bool { return due[i].deadline.Time().Before(due[j].deadline.Time()) })
	return due[0]
}

type manualAlarm struct {
	scheduler *ManualScheduler
	onFire    func(time.Time)
	deadline  Deadline
	dead      bool
}

func (a *manualAlarm) Update(deadline Deadline) {
	if a.dead {
		return
	}
	a.deadline = deadline
}

func (a *manualAlarm) Cancel() { a.deadline = Deadline{} }

func (a *manualAlarm) PermanentCancel() {
	a.deadline = Deadline{}
	a.dead = true
}

func (a *manualAlarm) IsSet() bool { return a.deadline.IsSet() }

func (a *manualAlarm) Deadline() Deadline { return a.deadline }
