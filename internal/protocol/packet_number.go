package protocol

// MaxPacketNumberValue is the largest packet number allowed by the transport.
const MaxPacketNumberValue uint64 = 1<<62 - 1

// A PacketNumber is a monotonically increasing packet counter with an explicit
// uninitialized state. The zero value is uninitialized.
//
// All arithmetic panics on overflow past MaxPacketNumberValue, on underflow
// below zero, and on use of an uninitialized number. Those are caller bugs;
// a correct sender never wraps a packet number.
type PacketNumber struct {
	// the packet number, offset by 1, so that 0 can mean "uninitialized"
	pn uint64
}

// PacketNumberFrom constructs an initialized PacketNumber.
func PacketNumberFrom(v uint64) PacketNumber {
	if v > MaxPacketNumberValue {
		panic("protocol BUG: packet number exceeds maximum value")
	}
	return PacketNumber{pn: v + 1}
}

// IsInitialized says if this packet number carries a value.
func (p PacketNumber) IsInitialized() bool { return p.pn != 0 }

// Value returns the packet number. It panics if the number is uninitialized.
func (p PacketNumber) Value() uint64 {
	if !p.IsInitialized() {
		panic("protocol BUG: use of uninitialized packet number")
	}
	return p.pn - 1
}

// Add returns the packet number advanced by n.
func (p PacketNumber) Add(n uint64) PacketNumber {
	v := p.Value()
	if n > MaxPacketNumberValue-v {
		panic("protocol BUG: packet number overflow")
	}
	return PacketNumber{pn: p.pn + n}
}

// Sub returns the packet number reduced by n.
func (p PacketNumber) Sub(n uint64) PacketNumber {
	v := p.Value()
	if n > v {
		panic("protocol BUG: packet number underflow")
	}
	return PacketNumber{pn: p.pn - n}
}

// Next is shorthand for Add(1).
func (p PacketNumber) Next() PacketNumber { return p.Add(1) }

// Prev is shorthand for Sub(1).
func (p PacketNumber) Prev() PacketNumber { return p.Sub(1) }

// Equal says if two packet numbers are the same.
// Two uninitialized numbers are equal.
func (p PacketNumber) Equal(o PacketNumber) bool { return p.pn == o.pn }

// Before says if p was assigned before o. Both must be initialized.
func (p PacketNumber) Before(o PacketNumber) bool { return p.Value() < o.Value() }

// After says if p was assigned after o. Both must be initialized.
func (p PacketNumber) After(o PacketNumber) bool { return p.Value() > o.Value() }

// MaxPacketNumber returns the later of two initialized packet numbers.
func MaxPacketNumber(a, b PacketNumber) PacketNumber {
	if a.After(b) {
		return a
	}
	return b
}

// A PacketNumberLen is the length of the packet number in bytes
type PacketNumberLen uint8

const (
	// PacketNumberLen1 is a packet number length of 1 byte
	PacketNumberLen1 PacketNumberLen = 1
	// PacketNumberLen2 is a packet number length of 2 bytes
	PacketNumberLen2 PacketNumberLen = 2
	// PacketNumberLen3 is a packet number length of 3 bytes
	PacketNumberLen3 PacketNumberLen = 3
	// PacketNumberLen4 is a packet number length of 4 bytes
	PacketNumberLen4 PacketNumberLen = 4
)

// DecodePacketNumber calculates the packet number based on the received
// truncated packet number, its length and the largest packet number seen.
func DecodePacketNumber(length PacketNumberLen, largest PacketNumber, wire uint64) PacketNumber {
	expected := int64(largest.Value()) + 1
	win := int64(1) << (length * 8)
	hwin := win / 2
	mask := win - 1
	candidate := (expected & ^mask) | int64(wire)
	if candidate <= expected-hwin && candidate < int64(1)<<62-win {
		return PacketNumberFrom(uint64(candidate + win))
	}
	if candidate > expected+hwin && candidate >= win {
		return PacketNumberFrom(uint64(candidate - win))
	}
	return PacketNumberFrom(uint64(candidate))
}
