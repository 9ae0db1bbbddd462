package protocol

import "time"

// TimerGranularity is the granularity of alarm deadlines.
// Deadlines closer together than this are treated as coincident.
const TimerGranularity = time.Millisecond

// MinPacingDelay is the minimum duration that is used for packet pacing
const MinPacingDelay = time.Millisecond

// DefaultMaxIncomingBidiStreams is the number of peer-initiated bidirectional
// streams admitted if the caller doesn't configure a limit.
const DefaultMaxIncomingBidiStreams = 100

// DefaultMaxIncomingUniStreams is the number of peer-initiated unidirectional
// streams admitted if the caller doesn't configure a limit.
const DefaultMaxIncomingUniStreams = 100
