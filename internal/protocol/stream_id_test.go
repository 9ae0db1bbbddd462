package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStreamIDInitiatedBy(t *testing.T) {
	require.Equal(t, PerspectiveClient, StreamID(4).InitiatedBy())
	require.Equal(t, PerspectiveServer, StreamID(5).InitiatedBy())
	require.Equal(t, PerspectiveClient, StreamID(6).InitiatedBy())
	require.Equal(t, PerspectiveServer, StreamID(7).InitiatedBy())
}

func TestStreamIDType(t *testing.T) {
	require.Equal(t, StreamTypeBidi, StreamID(4).Type())
	require.Equal(t, StreamTypeBidi, StreamID(5).Type())
	require.Equal(t, StreamTypeUni, StreamID(6).Type())
	require.Equal(t, StreamTypeUni, StreamID(7).Type())
}

func TestStreamIDStreamCount(t *testing.T) {
	require.Equal(t, int64(1), StreamID(0).StreamCount())
	require.Equal(t, int64(1), StreamID(1).StreamCount())
	require.Equal(t, int64(1), StreamID(2).StreamCount())
	require.Equal(t, int64(1), StreamID(3).StreamCount())
	require.Equal(t, int64(2), StreamID(4).StreamCount())
	require.Equal(t, int64(100), StreamID(397).StreamCount())
}

func TestFirstStreamID(t *testing.T) {
	require.Equal(t, StreamID(0), FirstStreamID(StreamTypeBidi, PerspectiveClient))
	require.Equal(t, StreamID(1), FirstStreamID(StreamTypeBidi, PerspectiveServer))
	require.Equal(t, StreamID(2), FirstStreamID(StreamTypeUni, PerspectiveClient))
	require.Equal(t, StreamID(3), FirstStreamID(StreamTypeUni, PerspectiveServer))
}

func TestMaxStreamID(t *testing.T) {
	require.Equal(t, StreamID(0), MaxStreamID(StreamTypeBidi, 1, PerspectiveClient))
	require.Equal(t, StreamID(397), MaxStreamID(StreamTypeBidi, 100, PerspectiveServer))
	require.Equal(t, StreamID(398), MaxStreamID(StreamTypeUni, 100, PerspectiveClient))
	require.Equal(t, StreamID(399), MaxStreamID(StreamTypeUni, 100, PerspectiveServer))
	// a count of zero means no stream of that class is allowed
	require.Equal(t, InvalidStreamID, MaxStreamID(StreamTypeBidi, 0, PerspectiveClient))
	require.Equal(t, InvalidStreamID, MaxStreamID(StreamTypeUni, -1, PerspectiveServer))
}

func TestPerspectiveOpposite(t *testing.T) {
	require.Equal(t, PerspectiveServer, PerspectiveClient.Opposite())
	require.Equal(t, PerspectiveClient, PerspectiveServer.Opposite())
	require.Equal(t, "client", PerspectiveClient.String())
	require.Equal(t, "server", PerspectiveServer.String())
}
