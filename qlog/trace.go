package qlog

import (
	"time"

	"github.com/francoispqt/gojay"

	"github.com/quic-kit/connwatch/logging"
)

type topLevel struct {
	trace trace
}

func (topLevel) IsNil() bool { return false }
func (l topLevel) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("qlog_format", "JSON-SEQ")
	enc.StringKey("qlog_version", "0.3")
	enc.StringKey("title", "connwatch qlog")
	enc.ObjectKey("trace", l.trace)
}

type vantagePoint struct {
	Type logging.Perspective
}

func (p vantagePoint) IsNil() bool { return false }
func (p vantagePoint) MarshalJSONObject(enc *gojay.Encoder) {
	switch p.Type {
	case logging.PerspectiveClient:
		enc.StringKey("type", "client")
	case logging.PerspectiveServer:
		enc.StringKey("type", "server")
	}
}

type commonFields struct {
	ReferenceTime time.Time
}

func (f commonFields) IsNil() bool { return false }
func (f commonFields) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Float64Key("reference_time", milliseconds(f.ReferenceTime.UnixNano()))
	enc.StringKey("time_format", "relative")
}

type trace struct {
	VantagePoint vantagePoint
	CommonFields commonFields
}

func (t trace) IsNil() bool { return false }
func (t trace) MarshalJSONObject(enc *gojay.Encoder) {
	enc.ObjectKey("vantage_point", t.VantagePoint)
	enc.ObjectKey("common_fields", t.CommonFields)
}
