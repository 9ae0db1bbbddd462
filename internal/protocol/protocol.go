// Package protocol holds the value types shared by the connection-level
// managers: packet numbers, stream IDs, byte counts and the constants that
// govern them.
package protocol

// A ByteCount in QUIC
type ByteCount int64

// MaxByteCount is the maximum value of a ByteCount
const MaxByteCount = ByteCount(1<<62 - 1)

// InitialPacketSize is the assumed maximum datagram size before path MTU
// discovery has run.
const InitialPacketSize ByteCount = 1280
