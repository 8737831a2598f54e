package pgtype

import (
	"fmt"
	"time"
)

// Kind discriminates the variant held by a Value. Kind is a closed,
// exhaustive sum — see §3.1 of the package's governing specification.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindText
	KindBytea
	KindUUID
	KindTime
	KindDate
	KindTimestamp
	KindTimestamptz
	KindInterval
	KindArray
)

// TimeOfDay is a civil time of day, with no associated date or zone.
type TimeOfDay struct {
	Hours       int
	Minutes     int
	Seconds     int
	Nanoseconds int
}

// CivilDate is a civil calendar date: year, month (1-12), day.
type CivilDate struct {
	Year  int
	Month int
	Day   int
}

// Offset is a UTC displacement, as carried by timestamptz values. Its
// magnitude is the wall-clock displacement from UTC; see
// Value.TimestamptzOff and Encode's timestamptz handling for the sign convention actually
// applied on the wire.
type Offset struct {
	Hours   int
	Minutes int
}

// Value is the tagged sum of every PostgreSQL value this package encodes or
// decodes. Only the payload field selected by Kind is meaningful (for
// KindTimestamptz, the pair TimestamptzTime and TimestamptzOff); the zero
// Value is Null.
type Value struct {
	Kind Kind

	Bool  bool
	Int   int64
	Float float64
	Text  string
	Bytes []byte
	UUID  [16]byte

	Time TimeOfDay
	Date CivilDate

	// Timestamp and Timestamptz store the instant as a time.Time. Only the
	// wall-clock instant (seconds + nanoseconds since the Unix epoch)
	// matters to the codec; the location carried by a Go time.Time is not
	// itself part of the wire value.
	Timestamp       time.Time
	TimestamptzTime time.Time
	TimestamptzOff  Offset

	Interval Interval

	Array []Value
}

// Null is the absence of a value; it encodes to a length of -1.
func Null() Value { return Value{Kind: KindNull} }

func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Int holds a signed integer value. The wire size used to encode it is
// determined by the TypeInfo passed to Encode, not by n's magnitude.
func Int(n int64) Value { return Value{Kind: KindInt, Int: n} }

// Float holds a double. The wire width (32 or 64 bit) is determined by the
// TypeInfo passed to Encode.
func Float(f float64) Value { return Value{Kind: KindFloat, Float: f} }

func Text(s string) Value { return Value{Kind: KindText, Text: s} }

func Bytea(b []byte) Value { return Value{Kind: KindBytea, Bytes: b} }

// UUIDValue constructs a Value from exactly 16 raw bytes.
func UUIDValue(b [16]byte) Value { return Value{Kind: KindUUID, UUID: b} }

// UUIDFromBytes constructs a UUID Value from a byte slice of unverified
// length, as a caller decoding hex or reading from an untyped source would
// have. It returns an error ("Invalid UUID") unless b is exactly 16 bytes;
// see §3.1's requirement that a Uuid carry exactly 128 bits.
func UUIDFromBytes(b []byte) (Value, error) {
	if len(b) != 16 {
		return Value{}, fmt.Errorf("Invalid UUID")
	}
	var raw [16]byte
	copy(raw[:], b)
	return UUIDValue(raw), nil
}

func TimeValue(t TimeOfDay) Value { return Value{Kind: KindTime, Time: t} }

func DateValue(d CivilDate) Value { return Value{Kind: KindDate, Date: d} }

func TimestampValue(t time.Time) Value { return Value{Kind: KindTimestamp, Timestamp: t} }

func TimestamptzValue(t time.Time, off Offset) Value {
	return Value{Kind: KindTimestamptz, TimestamptzTime: t, TimestamptzOff: off}
}

func IntervalValue(i Interval) Value { return Value{Kind: KindInterval, Interval: i} }

func ArrayValue(elems []Value) Value { return Value{Kind: KindArray, Array: elems} }

// ArrayDims determines the dimensions of a rectangular array value by
// walking the first element chain: an empty array has no dimensions; a
// nested array has its own length followed by the dimensions of its first
// element; any other non-empty array has a single dimension equal to its
// length. Ragged nesting is not validated — callers must supply
// rectangular arrays.
func ArrayDims(elems []Value) []int {
	if len(elems) == 0 {
		return []int{}
	}

	if elems[0].Kind == KindArray {
		return append([]int{len(elems)}, ArrayDims(elems[0].Array)...)
	}

	return []int{len(elems)}
}
