package protocol

// A StreamType is the type of the stream (unidirectional or bidirectional)
type StreamType uint8

const (
	// StreamTypeUni is a unidirectional stream
	StreamTypeUni StreamType = iota
	// StreamTypeBidi is a bidirectional stream
	StreamTypeBidi
)

func (t StreamType) String() string {
	switch t {
	case StreamTypeUni:
		return "unidirectional"
	case StreamTypeBidi:
		return "bidirectional"
	default:
		return "unknown stream type"
	}
}

// A StreamID in QUIC.
// The two low bits encode the stream type and the initiating perspective;
// IDs of one type / initiator class are spaced StreamIDStride apart.
type StreamID int64

// InvalidStreamID is an invalid stream ID.
// It is used for stream ceilings before any stream of that class is allowed.
const InvalidStreamID StreamID = -1

// StreamIDStride is the distance between two consecutive stream IDs of the
// same type and initiator.
const StreamIDStride = 4

// InitiatedBy says if the stream was initiated by the client or by the server
func (s StreamID) InitiatedBy() Perspective {
	if s%2 == 0 {
		return PerspectiveClient
	}
	return PerspectiveServer
}

// Type says if this is a unidirectional or bidirectional stream
func (s StreamID) Type() StreamType {
	if s%4 >= 2 {
		return StreamTypeUni
	}
	return StreamTypeBidi
}

// FirstStreamID returns the lowest stream ID of the given type that the given
// perspective is allowed to open.
func FirstStreamID(stype StreamType, pers Perspective) StreamID {
	var first StreamID
	if pers == PerspectiveServer {
		first += 1
	}
	if stype == StreamTypeUni {
		first += 2
	}
	return first
}

// MaxStreamID is the highest stream ID of the given type that the given
// perspective is allowed to open, when it is allowed to open count streams.
// It returns InvalidStreamID for a count of zero.
func MaxStreamID(stype StreamType, count int64, pers Perspective) StreamID {
	if count <= 0 {
		return InvalidStreamID
	}
	return FirstStreamID(stype, pers) + StreamIDStride*StreamID(count-1)
}

// StreamCount returns the number of streams of this ID's class whose IDs are
// less than or equal to this ID.
func (s StreamID) StreamCount() int64 {
	return int64(s/StreamIDStride) + 1
}
