// Copyright: This file is part of otlp-data-analyzer, released under https://github.com/weltenwort/otlp-data-analyzer/blob/main/LICENSE

package otlp

import (
	"github.com/valyala/fastjson"
	otlpcommon "go.opentelemetry.io/proto/otlp/common/v1"
	"google.golang.org/protobuf/encoding/protojson"
)

// Body decodes the record's body field from the OTLP [otlpcommon.AnyValue]
// JSON encoding into a plain Go value. ok is false when the record has no
// body or the body does not follow the AnyValue encoding.
func (r *LogRecord) Body() (value any, ok bool) {
	body := r.field("body")
	if body == nil {
		return nil, false
	}
	var av otlpcommon.AnyValue
	if err := protojson.Unmarshal(body.MarshalTo(nil), &av); err != nil {
		return nil, false
	}
	return valueOf(&av), true
}

// SeverityText returns the record's severityText, or "" when absent.
func (r *LogRecord) SeverityText() string {
	if v := r.field("severityText"); v != nil && v.Type() == fastjson.TypeString {
		return string(v.GetStringBytes())
	}
	return ""
}

func (r *LogRecord) field(name string) *fastjson.Value {
	v, err := fastjson.ParseBytes(r.Raw)
	if err != nil {
		return nil
	}
	return v.Get(name)
}

// valueOf converts an [otlpcommon.AnyValue] to a plain Go value.
func valueOf(v *otlpcommon.AnyValue) any {
	switch v := v.Value.(type) {
	case *otlpcommon.AnyValue_StringValue:
		return v.StringValue
	case *otlpcommon.AnyValue_BoolValue:
		return v.BoolValue
	case *otlpcommon.AnyValue_IntValue:
		return v.IntValue
	case *otlpcommon.AnyValue_DoubleValue:
		return v.DoubleValue
	case *otlpcommon.AnyValue_ArrayValue:
		a := make([]any, len(v.ArrayValue.Values))
		for i, v := range v.ArrayValue.Values {
			a[i] = valueOf(v)
		}
		return a
	case *otlpcommon.AnyValue_KvlistValue:
		m := make(map[string]any, len(v.KvlistValue.Values))
		for _, kv := range v.KvlistValue.Values {
			m[kv.Key] = valueOf(kv.Value)
		}
		return m
	case *otlpcommon.AnyValue_BytesValue:
		return v.BytesValue
	}
	return nil
}
