package congestion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/quic-kit/connwatch/internal/protocol"
)

func TestRTTStatsDefaultsBeforeUpdate(t *testing.T) {
	var rttStats RTTStats
	require.Zero(t, rttStats.MinRTT())
	require.Zero(t, rttStats.SmoothedRTT())
	require.Zero(t, rttStats.LatestRTT())
}

func TestRTTStatsSmoothedRTT(t *testing.T) {
	var rttStats RTTStats
	// Verify that ack_delay is ignored in the first measurement.
	rttStats.UpdateRTT(300*time.Millisecond, 100*time.Millisecond, time.Time{})
	require.Equal(t, 300*time.Millisecond, rttStats.LatestRTT())
	require.Equal(t, 300*time.Millisecond, rttStats.SmoothedRTT())
	// Verify that smoothed RTT includes max ack delay if it's reasonable.
	rttStats.UpdateRTT(350*time.Millisecond, 50*time.Millisecond, time.Time{})
	require.Equal(t, 300*time.Millisecond, rttStats.LatestRTT())
	require.Equal(t, 300*time.Millisecond, rttStats.SmoothedRTT())
	// Verify that large erroneous ack_delay does not change smoothed RTT.
	rttStats.UpdateRTT(200*time.Millisecond, 300*time.Millisecond, time.Time{})
	require.Equal(t, 200*time.Millisecond, rttStats.LatestRTT())
	require.Equal(t, 287500*time.Microsecond, rttStats.SmoothedRTT())
}

func TestRTTStatsMinRTT(t *testing.T) {
	var rttStats RTTStats
	rttStats.UpdateRTT(200*time.Millisecond, 0, time.Time{})
	require.Equal(t, 200*time.Millisecond, rttStats.MinRTT())
	rttStats.UpdateRTT(10*time.Millisecond, 0, time.Time{}.Add(10*time.Millisecond))
	require.Equal(t, 10*time.Millisecond, rttStats.MinRTT())
	rttStats.UpdateRTT(50*time.Millisecond, 0, time.Time{}.Add(20*time.Millisecond))
	require.Equal(t, 10*time.Millisecond, rttStats.MinRTT())
	// Verify that ack_delay does not go into recording of MinRTT.
	rttStats.UpdateRTT(7*time.Millisecond, 2*time.Millisecond, time.Time{}.Add(30*time.Millisecond))
	require.Equal(t, 7*time.Millisecond, rttStats.MinRTT())
}

func TestRTTStatsUpdateWithBadSendDeltas(t *testing.T) {
	// Make sure we ignore bad RTTs.
	var rttStats RTTStats
	initialRTT := 10 * time.Millisecond
	rttStats.UpdateRTT(initialRTT, 0, time.Time{})
	require.Equal(t, initialRTT, rttStats.MinRTT())
	require.Equal(t, initialRTT, rttStats.SmoothedRTT())

	badSendDeltas := []time.Duration{
		0,
		-1000 * time.Microsecond,
	}
	for _, badSendDelta := range badSendDeltas {
		rttStats.UpdateRTT(badSendDelta, 0, time.Time{})
		require.Equal(t, initialRTT, rttStats.MinRTT())
		require.Equal(t, initialRTT, rttStats.SmoothedRTT())
	}
}

func TestRTTStatsPTO(t *testing.T) {
	var rttStats RTTStats
	// Without any measurement the PTO falls back to twice the initial RTT.
	require.Equal(t, 2*defaultInitialRTT, rttStats.PTO(true))

	rttStats.SetMaxAckDelay(25 * time.Millisecond)
	rttStats.UpdateRTT(100*time.Millisecond, 0, time.Time{})
	require.Equal(t, 100*time.Millisecond, rttStats.SmoothedRTT())
	require.Equal(t, 50*time.Millisecond, rttStats.MeanDeviation())
	require.Equal(t, 100*time.Millisecond+4*50*time.Millisecond, rttStats.PTO(false))
	require.Equal(t, 100*time.Millisecond+4*50*time.Millisecond+25*time.Millisecond, rttStats.PTO(true))
}

func TestRTTStatsPTOGranularityFloor(t *testing.T) {
	var rttStats RTTStats
	// With a tiny mean deviation the timer granularity takes over.
	for _i := 0; _i < 10; _i++ {
		rttStats.UpdateRTT(time.Millisecond, 0, time.Time{})
	}
	require.Less(t, 4*rttStats.MeanDeviation(), protocol.TimerGranularity)
	require.Equal(t, rttStats.SmoothedRTT()+protocol.TimerGranularity, rttStats.PTO(false))
}

func TestRTTStatsSetInitialRTT(t *testing.T) {
	var rttStats RTTStats
	rttStats.SetInitialRTT(10 * time.Millisecond)
	require.Equal(t, 10*time.Millisecond, rttStats.SmoothedRTT())
	require.Equal(t, 10*time.Millisecond, rttStats.LatestRTT())
	require.Zero(t, rttStats.MinRTT())

	// The restored value is discarded once a measurement exists.
	var measured RTTStats
	measured.UpdateRTT(200*time.Millisecond, 0, time.Time{})
	measured.SetInitialRTT(10 * time.Millisecond)
	require.Equal(t, 200*time.Millisecond, measured.SmoothedRTT())
}

func TestRTTStatsResetAfterConnectionMigration(t *testing.T) {
	var rttStats RTTStats
	rttStats.UpdateRTT(200*time.Millisecond, 0, time.Time{})
	require.Equal(t, 200*time.Millisecond, rttStats.LatestRTT())
	require.Equal(t, 200*time.Millisecond, rttStats.SmoothedRTT())
	require.Equal(t, 200*time.Millisecond, rttStats.MinRTT())

	// Reset rtt stats on connection migrations.
	rttStats.OnConnectionMigration()
	require.Zero(t, rttStats.LatestRTT())
	require.Zero(t, rttStats.SmoothedRTT())
	require.Zero(t, rttStats.MinRTT())
}
