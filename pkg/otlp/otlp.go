// Copyright: This file is part of otlp-data-analyzer, released under https://github.com/weltenwort/otlp-data-analyzer/blob/main/LICENSE

// Package otlp extracts log records from OTLP JSON as emitted in JSONL
// streams, tolerating partially malformed payloads.
//
// The OTLP logs data model nests records three levels deep:
//
//	resourceLogs[].scopeLogs[].logRecords[]
//
// Real emitters occasionally produce broken substructures, so extraction is
// best-effort salvage rather than schema enforcement: inner containers of
// the wrong type are skipped silently. Only two violations are hard errors,
// unparseable JSON and a resourceLogs field that is not an array.
package otlp

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/valyala/fastjson"
)

// LogRecord is one log record extracted from a JSONL line.
type LogRecord struct {
	// TimeUnixNano is the record's resolved timestamp, nil when the
	// timeUnixNano field was missing, non-numeric or of the wrong type.
	TimeUnixNano *int64
	// Line is the 1-based line number in the input stream.
	Line int
	// Index is the 0-based position among all records extracted from the
	// same line, in document order.
	Index int
	// Raw is the record object as JSON, retained for display.
	Raw []byte
}

// StructureError reports a line whose OTLP structure could not be parsed.
type StructureError struct {
	Line   int
	Reason string
}

func (e *StructureError) Error() string { return e.Reason }

var parsers fastjson.ParserPool

// ParseLine extracts all log records from one line of OTLP JSONL.
//
// Empty and whitespace-only lines yield no records and no error, as do
// valid JSON documents without a resourceLogs field. A syntactically
// invalid document, or a resourceLogs that is not an array, is a
// *StructureError.
func ParseLine(line []byte, lineNumber int) ([]LogRecord, error) {
	if len(bytes.TrimSpace(line)) == 0 {
		return nil, nil
	}
	p := parsers.Get()
	defer parsers.Put(p)
	v, err := p.ParseBytes(line)
	if err != nil {
		return nil, &StructureError{Line: lineNumber, Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}
	resourceLogs := v.Get("resourceLogs")
	if resourceLogs == nil {
		return nil, nil
	}
	if resourceLogs.Type() != fastjson.TypeArray {
		return nil, &StructureError{Line: lineNumber, Reason: "resourceLogs must be an array"}
	}

	var records []LogRecord
	for _, resourceLog := range resourceLogs.GetArray() {
		for _, scopeLog := range elements(resourceLog, "scopeLogs") {
			for _, record := range elements(scopeLog, "logRecords") {
				records = append(records, LogRecord{
					TimeUnixNano: timeUnixNano(record),
					Line:         lineNumber,
					Index:        len(records),
					Raw:          record.MarshalTo(nil),
				})
			}
		}
	}
	return records, nil
}

// elements returns the object members of the named array field of v.
// Anything that is not an object holding an array contributes nothing, and
// non-object array members are dropped.
func elements(v *fastjson.Value, field string) []*fastjson.Value {
	if v.Type() != fastjson.TypeObject {
		return nil
	}
	array := v.Get(field)
	if array == nil || array.Type() != fastjson.TypeArray {
		return nil
	}
	var members []*fastjson.Value
	for _, m := range array.GetArray() {
		if m.Type() == fastjson.TypeObject {
			members = append(members, m)
		}
	}
	return members
}

// timeUnixNano resolves a record's timestamp. The field may be a JSON
// integer or a decimal string per the OTLP JSON mapping of 64-bit values.
// Fractional numbers, other types and unparseable strings resolve to nil.
func timeUnixNano(record *fastjson.Value) *int64 {
	v := record.Get("timeUnixNano")
	if v == nil {
		return nil
	}
	switch v.Type() {
	case fastjson.TypeNumber:
		n, err := v.Int64()
		if err != nil {
			return nil
		}
		return &n
	case fastjson.TypeString:
		n, err := strconv.ParseInt(string(v.GetStringBytes()), 10, 64)
		if err != nil {
			return nil
		}
		return &n
	default:
		return nil
	}
}
