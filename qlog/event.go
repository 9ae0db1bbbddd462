package qlog

import (
	"time"

	"github.com/francoispqt/gojay"

	"github.com/quic-kit/connwatch/logging"
)

type eventDetails interface {
	Category() category
	Name() string
	gojay.MarshalerJSONObject
}

type event struct {
	RelativeTime time.Duration
	eventDetails
}

var _ gojay.MarshalerJSONObject = event{}

func (e event) IsNil() bool { return false }
func (e event) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Float64Key("time", milliseconds(e.RelativeTime.Nanoseconds()))
	enc.StringKey("name", e.Category().String()+":"+e.Name())
	enc.ObjectKey("data", e.eventDetails)
}

type eventConnectionClosed struct {
	Reason logging.TimeoutReason
}

var _ eventDetails = &eventConnectionClosed{}

func (e eventConnectionClosed) Category() category { return categoryTransport }
func (e eventConnectionClosed) Name() string       { return "connection_closed" }
func (e eventConnectionClosed) IsNil() bool        { return false }

func (e eventConnectionClosed) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("owner", "local")
	enc.StringKey("trigger", e.Reason.String())
}

type eventPathHealth struct {
	Event logging.PathHealthEvent
}

var _ eventDetails = &eventPathHealth{}

func (e eventPathHealth) Category() category { return categoryRecovery }
func (e eventPathHealth) Name() string       { return "path_health_updated" }
func (e eventPathHealth) IsNil() bool        { return false }

func (e eventPathHealth) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("state", e.Event.String())
}

type eventDatagramSent struct {
	Length logging.ByteCount
}

var _ eventDetails = &eventDatagramSent{}

func (e eventDatagramSent) Category() category { return categoryTransport }
func (e eventDatagramSent) Name() string       { return "datagram_sent" }
func (e eventDatagramSent) IsNil() bool        { return false }

func (e eventDatagramSent) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Int64Key("length", int64(e.Length))
}

type eventDatagramQueued struct {
	Length logging.ByteCount
}

var _ eventDetails = &eventDatagramQueued{}

func (e eventDatagramQueued) Category() category { return categoryTransport }
func (e eventDatagramQueued) Name() string       { return "datagram_queued" }
func (e eventDatagramQueued) IsNil() bool        { return false }

func (e eventDatagramQueued) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Int64Key("length", int64(e.Length))
}

type eventDatagramDropped struct {
	Length logging.ByteCount
}

var _ eventDetails = &eventDatagramDropped{}

func (e eventDatagramDropped) Category() category { return categoryTransport }
func (e eventDatagramDropped) Name() string       { return "datagram_dropped" }
func (e eventDatagramDropped) IsNil() bool        { return false }

func (e eventDatagramDropped) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Int64Key("length", int64(e.Length))
	enc.StringKey("trigger", "expired")
}

type eventStreamLimitReached struct {
	StreamType logging.StreamType
}

var _ eventDetails = &eventStreamLimitReached{}

func (e eventStreamLimitReached) Category() category { return categoryTransport }
func (e eventStreamLimitReached) Name() string       { return "stream_limit_reached" }
func (e eventStreamLimitReached) IsNil() bool        { return false }

func (e eventStreamLimitReached) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("stream_type", e.StreamType.String())
}

type eventStreamLimitUpdated struct {
	StreamType  logging.StreamType
	MaxStreamID logging.StreamID
}

var _ eventDetails = &eventStreamLimitUpdated{}

func (e eventStreamLimitUpdated) Category() category { return categoryTransport }
func (e eventStreamLimitUpdated) Name() string       { return "stream_limit_updated" }
func (e eventStreamLimitUpdated) IsNil() bool        { return false }

func (e eventStreamLimitUpdated) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("stream_type", e.StreamType.String())
	enc.Int64Key("maximum_stream_id", int64(e.MaxStreamID))
}

type eventCongestionStateUpdated struct {
	state logging.CongestionState
}

var _ eventDetails = &eventCongestionStateUpdated{}

func (e eventCongestionStateUpdated) Category() category { return categoryRecovery }
func (e eventCongestionStateUpdated) Name() string       { return "congestion_state_updated" }
func (e eventCongestionStateUpdated) IsNil() bool        { return false }

func (e eventCongestionStateUpdated) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("new", e.state.String())
}

type eventCongestionWindowUpdated struct {
	CongestionWindow logging.ByteCount
}

var _ eventDetails = &eventCongestionWindowUpdated{}

func (e eventCongestionWindowUpdated) Category() category { return categoryRecovery }
func (e eventCongestionWindowUpdated) Name() string       { return "metrics_updated" }
func (e eventCongestionWindowUpdated) IsNil() bool        { return false }

func (e eventCongestionWindowUpdated) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Int64Key("congestion_window", int64(e.CongestionWindow))
}

type eventRTTUpdated struct {
	MinRTT      time.Duration
	SmoothedRTT time.Duration
	LatestRTT   time.Duration
}

var _ eventDetails = &eventRTTUpdated{}

func (e eventRTTUpdated) Category() category { return categoryRecovery }
func (e eventRTTUpdated) Name() string       { return "metrics_updated" }
func (e eventRTTUpdated) IsNil() bool        { return false }

func (e eventRTTUpdated) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Float64Key("min_rtt", milliseconds(e.MinRTT.Nanoseconds()))
	enc.Float64Key("smoothed_rtt", milliseconds(e.SmoothedRTT.Nanoseconds()))
	enc.Float64Key("latest_rtt", milliseconds(e.LatestRTT.Nanoseconds()))
}

type eventPacketLost struct {
	Length logging.ByteCount
}

var _ eventDetails = &eventPacketLost{}

func (e eventPacketLost) Category() category { return categoryRecovery }
func (e eventPacketLost) Name() string       { return "packet_lost" }
func (e eventPacketLost) IsNil() bool        { return false }

func (e eventPacketLost) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Int64Key("packet_size", int64(e.Length))
}
