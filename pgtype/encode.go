package pgtype

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/stndrs/pgl-types/pgio"
)

// Encode serializes value as the length-prefixed binary wire representation
// PostgreSQL's typesend dispatch expects, given the descriptor ti.
//
// Every successful output is length-prefixed: a big-endian signed i32
// length L followed by L payload bytes. Null emits L = -1 with no payload.
// The encoder never returns partial output: on error the returned byte
// slice is nil.
func Encode(value Value, ti TypeInfo) ([]byte, error) {
	if value.Kind == KindNull {
		return pgio.AppendInt32(nil, -1), nil
	}

	payload, err := encodePayload(value, ti)
	if err != nil {
		return nil, err
	}

	buf := pgio.AppendInt32(make([]byte, 0, 4+len(payload)), int32(len(payload)))
	return append(buf, payload...), nil
}

func mismatchErr(expectedSend string, ti TypeInfo) error {
	return fmt.Errorf("Attempted to encode %s as %s", expectedSend, ti.Typesend)
}

func encodePayload(value Value, ti TypeInfo) ([]byte, error) {
	switch value.Kind {
	case KindBool:
		return encodeBool(value, ti)
	case KindInt:
		return encodeInt(value, ti)
	case KindFloat:
		return encodeFloat(value, ti)
	case KindText:
		return encodeText(value, ti)
	case KindBytea:
		return encodeBytea(value, ti)
	case KindUUID:
		return encodeUUID(value, ti)
	case KindDate:
		return encodeDate(value, ti)
	case KindTime:
		return encodeTime(value, ti)
	case KindTimestamp:
		return encodeTimestamp(value, ti)
	case KindTimestamptz:
		return encodeTimestamptz(value, ti)
	case KindInterval:
		return encodeInterval(value, ti)
	case KindArray:
		return encodeArray(value, ti)
	default:
		return nil, fmt.Errorf("cannot encode value of kind %d", value.Kind)
	}
}

func encodeBool(value Value, ti TypeInfo) ([]byte, error) {
	if ti.Typesend != "boolsend" {
		return nil, mismatchErr("boolsend", ti)
	}
	if value.Bool {
		return []byte{1}, nil
	}
	return []byte{0}, nil
}

func encodeInt(value Value, ti TypeInfo) ([]byte, error) {
	n := value.Int
	switch ti.Typesend {
	case "oidsend":
		if n < 0 || n > math.MaxUint32 {
			return nil, fmt.Errorf("Out of range for oid")
		}
		return pgio.AppendUint32(nil, uint32(n)), nil
	case "int2send":
		if n < math.MinInt16 || n > math.MaxInt16 {
			return nil, fmt.Errorf("Out of range for int2")
		}
		return pgio.AppendInt16(nil, int16(n)), nil
	case "int4send":
		if n < math.MinInt32 || n > math.MaxInt32 {
			return nil, fmt.Errorf("Out of range for int4")
		}
		return pgio.AppendInt32(nil, int32(n)), nil
	case "int8send":
		if n < math.MinInt64 || n > math.MaxInt64 {
			return nil, fmt.Errorf("Out of range for int8")
		}
		return pgio.AppendInt64(nil, n), nil
	default:
		return nil, mismatchErr(strconv.FormatInt(n, 10), ti)
	}
}

func encodeFloat(value Value, ti TypeInfo) ([]byte, error) {
	switch ti.Typesend {
	case "float4send":
		return pgio.AppendFloat32(nil, float32(value.Float)), nil
	case "float8send":
		return pgio.AppendFloat64(nil, value.Float), nil
	default:
		return nil, fmt.Errorf("Unsupported float type")
	}
}

func encodeText(value Value, ti TypeInfo) ([]byte, error) {
	switch ti.Typesend {
	case "varcharsend", "textsend", "charsend", "namesend":
		return []byte(value.Text), nil
	default:
		return nil, mismatchErr(fmt.Sprintf("'%s'", value.Text), ti)
	}
}

func encodeBytea(value Value, ti TypeInfo) ([]byte, error) {
	if ti.Typesend != "byteasend" {
		return nil, mismatchErr("byteasend", ti)
	}
	return value.Bytes, nil
}

func encodeUUID(value Value, ti TypeInfo) ([]byte, error) {
	if ti.Typesend != "uuid_send" {
		return nil, mismatchErr("uuid_send", ti)
	}
	return value.UUID[:], nil
}

func encodeDate(value Value, ti TypeInfo) ([]byte, error) {
	if ti.Typesend != "date_send" {
		return nil, mismatchErr("date_send", ti)
	}
	days := DateToGregorianDays(value.Date.Year, value.Date.Month, value.Date.Day) - postgresGDEpoch
	return pgio.AppendInt32(nil, days), nil
}

func encodeTime(value Value, ti TypeInfo) ([]byte, error) {
	if ti.Typesend != "time_send" {
		return nil, mismatchErr("time_send", ti)
	}
	t := value.Time
	micros := int64(t.Hours)*3600*microsecondsPerSecond +
		int64(t.Minutes)*60*microsecondsPerSecond +
		int64(t.Seconds)*microsecondsPerSecond +
		int64(t.Nanoseconds)/1000
	return pgio.AppendInt64(nil, micros), nil
}

// instantMicrosSincePGEpoch converts a time.Time's Unix-epoch instant into
// microseconds since the PostgreSQL epoch (2000-01-01).
func instantMicrosSincePGEpoch(t time.Time) int64 {
	return (t.Unix()-unixToPGSeconds)*microsecondsPerSecond + int64(t.Nanosecond())/1000
}

func encodeTimestamp(value Value, ti TypeInfo) ([]byte, error) {
	if ti.Typesend != "timestamp_send" {
		return nil, mismatchErr("timestamp_send", ti)
	}
	return pgio.AppendInt64(nil, instantMicrosSincePGEpoch(value.Timestamp)), nil
}

// shiftTimestamptz applies the wire-compatible (and, per the package's
// governing specification, deliberately not "corrected") offset sign
// convention: positive offsets shift the encoded instant earlier, negative
// offsets shift it later, and the sign of Minutes is ignored when Hours is
// 0. Reproduced verbatim from the source this package is ported from; do
// not silently fix.
func shiftTimestamptz(t time.Time, off Offset) time.Time {
	sign := -1
	hours := off.Hours
	if hours < 0 {
		sign = 1
		hours = -hours
	}
	minutes := (hours*60 + off.Minutes) * sign
	return t.Add(time.Duration(minutes) * time.Minute)
}

func encodeTimestamptz(value Value, ti TypeInfo) ([]byte, error) {
	if ti.Typesend != "timestamptz_send" {
		return nil, mismatchErr("timestamptz_send", ti)
	}
	shifted := shiftTimestamptz(value.TimestamptzTime, value.TimestamptzOff)
	return pgio.AppendInt64(nil, instantMicrosSincePGEpoch(shifted)), nil
}

func encodeInterval(value Value, ti TypeInfo) ([]byte, error) {
	if ti.Typesend != "interval_send" {
		return nil, mismatchErr("interval_send", ti)
	}
	i := value.Interval
	micros := i.Seconds*microsecondsPerSecond + i.Microseconds
	buf := make([]byte, 0, 16)
	buf = pgio.AppendInt64(buf, micros)
	buf = pgio.AppendInt32(buf, i.Days)
	buf = pgio.AppendInt32(buf, i.Months)
	return buf, nil
}

// nullMarker is the 4-byte encoding of a length of -1, used to detect
// whether a recursively encoded array element was NULL.
var nullMarker = pgio.AppendInt32(nil, -1)

func encodeArray(value Value, ti TypeInfo) ([]byte, error) {
	if ti.Typesend != "array_send" {
		return nil, mismatchErr("array_send", ti)
	}
	if ti.ElemType == nil {
		return nil, fmt.Errorf("Missing elem type info")
	}

	dims := dimensionsOf(ArrayDims(value.Array))

	buf := make([]byte, 0, 12+8*len(dims))
	buf = pgio.AppendInt32(buf, int32(len(dims)))
	hasNullsAt := len(buf)
	buf = pgio.AppendInt32(buf, 0) // flags placeholder, patched below
	buf = pgio.AppendInt32(buf, int32(ti.ElemType.OID))
	for _, d := range dims {
		buf = pgio.AppendInt32(buf, d.Length)
		buf = pgio.AppendInt32(buf, d.LowerBound)
	}

	hasNulls := false
	flat := flattenArray(value.Array)
	for _, elem := range flat {
		elemBuf, err := Encode(elem, *ti.ElemType)
		if err != nil {
			return nil, err
		}
		if bytesEqual(elemBuf, nullMarker) {
			hasNulls = true
		}
		buf = append(buf, elemBuf...)
	}

	if hasNulls {
		pgio.SetInt32(buf[hasNullsAt:hasNullsAt+4], 1)
	}

	return buf, nil
}

// flattenArray walks a (possibly nested) rectangular Value array in
// row-major order, returning the leaf elements in the order the wire
// element stream expects.
func flattenArray(elems []Value) []Value {
	if len(elems) == 0 {
		return nil
	}
	if elems[0].Kind != KindArray {
		return elems
	}

	var out []Value
	for _, e := range elems {
		out = append(out, flattenArray(e.Array)...)
	}
	return out
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
