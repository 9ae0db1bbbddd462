package congestion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/quic-kit/connwatch/internal/protocol"
)

// The emulated multi-connection alpha and beta, mirroring the arithmetic in
// Cubic.alpha and Cubic.beta so the expected values round identically.
func nConnectionBeta() float32 {
	return (float32(defaultNumConnections) - 1 + beta) / float32(defaultNumConnections)
}

func nConnectionBetaLastMax() float32 {
	return (float32(defaultNumConnections) - 1 + betaLastMax) / float32(defaultNumConnections)
}

func nConnectionAlpha() float32 {
	b := nConnectionBeta()
	return 3 * float32(defaultNumConnections) * float32(defaultNumConnections) * (1 - b) / (1 + b)
}

func TestCubicTCPFriendlyRegion(t *testing.T) {
	var clock mockClock
	cubic := NewCubic(&clock)
	const rttMin = 100 * time.Millisecond
	clock.Advance(time.Millisecond)

	// With no previous loss the TCP-friendly window dominates the cubic curve,
	// so the growth per ack follows the Reno formula.
	cwnd := 10 * maxDatagramSize
	for _i := 0; _i < 50; _i++ {
		expected := cwnd + protocol.ByteCount(float32(maxDatagramSize)*nConnectionAlpha()*float32(maxDatagramSize)/float32(cwnd))
		cwnd = cubic.CongestionWindowAfterAck(maxDatagramSize, cwnd, rttMin, clock.Now())
		require.Equal(t, expected, cwnd)
		clock.Advance(10 * time.Millisecond)
	}
}

func TestCubicLossEvents(t *testing.T) {
	var clock mockClock
	cubic := NewCubic(&clock)
	const rttMin = 100 * time.Millisecond
	clock.Advance(time.Millisecond)

	cwnd := 422 * maxDatagramSize
	cubic.CongestionWindowAfterAck(maxDatagramSize, cwnd, rttMin, clock.Now())
	expected := protocol.ByteCount(float32(cwnd) * nConnectionBeta())
	require.Equal(t, expected, cubic.CongestionWindowAfterPacketLoss(cwnd))
	require.Equal(t, expected, cubic.CongestionWindowAfterPacketLoss(cwnd))
}

func TestCubicFastConvergence(t *testing.T) {
	var clock mockClock
	cubic := NewCubic(&clock)

	cwnd := 422 * maxDatagramSize
	cubic.CongestionWindowAfterPacketLoss(cwnd)
	require.Equal(t, cwnd, cubic.lastMaxCongestionWindow)

	// A loss well below the previous maximum means we are competing with
	// another flow: the remembered maximum is backed off further to speed up
	// convergence.
	lower := 100 * maxDatagramSize
	cubic.CongestionWindowAfterPacketLoss(lower)
	require.Equal(t, protocol.ByteCount(nConnectionBetaLastMax()*float32(lower)), cubic.lastMaxCongestionWindow)
}

func TestCubicBelowOrigin(t *testing.T) {
	// Concave growth after a loss: the window climbs back towards the
	// pre-loss maximum and eventually exceeds it.
	var clock mockClock
	cubic := NewCubic(&clock)
	const rttMin = 100 * time.Millisecond
	clock.Advance(time.Millisecond)

	cwnd := 422 * maxDatagramSize
	cubic.CongestionWindowAfterAck(maxDatagramSize, cwnd, rttMin, clock.Now())
	cwnd = cubic.CongestionWindowAfterPacketLoss(cwnd)
	// First ack after the loss starts the new epoch.
	cwnd = cubic.CongestionWindowAfterAck(maxDatagramSize, cwnd, rttMin, clock.Now())
	for _i := 0; _i < 250; _i++ {
		clock.Advance(30 * time.Millisecond)
		next := cubic.CongestionWindowAfterAck(maxDatagramSize, cwnd, rttMin, clock.Now())
		require.GreaterOrEqual(t, next, cwnd)
		cwnd = next
	}
	require.Greater(t, cwnd, 415*maxDatagramSize)
}

func TestCubicClampsElapsedTime(t *testing.T) {
	const rttMin = 100 * time.Millisecond

	run := func(gap time.Duration) protocol.ByteCount {
		var clock mockClock
		clock.Advance(time.Millisecond)
		cubic := NewCubic(&clock)
		cwnd := cubic.CongestionWindowAfterPacketLoss(400 * maxDatagramSize)
		cubic.CongestionWindowAfterAck(50*maxDatagramSize, cwnd, rttMin, clock.Now())
		clock.Advance(gap)
		return cubic.CongestionWindowAfterAck(50*maxDatagramSize, cwnd, rttMin, clock.Now())
	}

	// A gap between two acks larger than the cap must produce the same window
	// as a gap of exactly the cap, no matter how large the jump.
	require.Equal(t, run(30*time.Millisecond), run(10*time.Second))
	require.Equal(t, run(30*time.Millisecond), run(time.Hour))
	// Smaller gaps are unaffected.
	require.Less(t, run(10*time.Millisecond), run(30*time.Millisecond))
}

func TestCubicApplicationLimitedResetsEpoch(t *testing.T) {
	var clock mockClock
	cubic := NewCubic(&clock)
	const rttMin = 100 * time.Millisecond
	clock.Advance(time.Millisecond)

	cwnd := 10 * maxDatagramSize
	cwnd = cubic.CongestionWindowAfterAck(maxDatagramSize, cwnd, rttMin, clock.Now())
	require.False(t, cubic.epoch.IsZero())
	cubic.OnApplicationLimited()
	require.True(t, cubic.epoch.IsZero())

	// After a long quiescent period a single ack must not inflate the window.
	clock.Advance(10 * time.Second)
	next := cubic.CongestionWindowAfterAck(maxDatagramSize, cwnd, rttMin, clock.Now())
	require.LessOrEqual(t, next, cwnd+maxDatagramSize)
}

func TestCubicReset(t *testing.T) {
	var clock mockClock
	cubic := NewCubic(&clock)
	const rttMin = 100 * time.Millisecond
	clock.Advance(time.Millisecond)

	cwnd := 422 * maxDatagramSize
	cubic.CongestionWindowAfterAck(maxDatagramSize, cwnd, rttMin, clock.Now())
	cubic.CongestionWindowAfterPacketLoss(cwnd)
	cubic.Reset()
	require.True(t, cubic.epoch.IsZero())
	require.Zero(t, cubic.lastMaxCongestionWindow)
	require.Zero(t, cubic.ackedBytesCount)
	require.Zero(t, cubic.estimatedTCPcongestionWindow)
}
