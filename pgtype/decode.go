package pgtype

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/stndrs/pgl-types/pgio"
)

const (
	infinityMicros         = math.MaxInt64
	negativeInfinityMicros = math.MinInt64

	infinityDayOffset         = math.MaxInt32
	negativeInfinityDayOffset = math.MinInt32
)

// Decode parses payload — the value bytes with any outer length prefix
// already stripped by the caller — into a Dynamic, dispatching on
// ti.Typereceive. Array elements are delimited by their own per-element
// length prefixes internally; see decodeArray.
func Decode(payload []byte, ti TypeInfo) (Dynamic, error) {
	switch ti.Typereceive {
	case "boolrecv":
		if len(payload) != 1 {
			return Dynamic{}, fmt.Errorf("invalid bool")
		}
		return NewDynBool(payload[0] != 0), nil
	case "oidrecv":
		if len(payload) != 4 {
			return Dynamic{}, fmt.Errorf("invalid oid")
		}
		_, n := pgio.NextUint32(payload)
		return NewDynInt(int64(n)), nil
	case "int2recv":
		if len(payload) != 2 {
			return Dynamic{}, fmt.Errorf("invalid int2")
		}
		_, n := pgio.NextInt16(payload)
		return NewDynInt(int64(n)), nil
	case "int4recv":
		if len(payload) != 4 {
			return Dynamic{}, fmt.Errorf("invalid int4")
		}
		_, n := pgio.NextInt32(payload)
		return NewDynInt(int64(n)), nil
	case "int8recv":
		if len(payload) != 8 {
			return Dynamic{}, fmt.Errorf("invalid int8")
		}
		_, n := pgio.NextInt64(payload)
		return NewDynInt(n), nil
	case "float4recv":
		if len(payload) != 4 {
			return Dynamic{}, fmt.Errorf("invalid float4")
		}
		_, f := pgio.NextFloat32(payload)
		return NewDynFloat(roundTo(float64(f), 4)), nil
	case "float8recv":
		if len(payload) != 8 {
			return Dynamic{}, fmt.Errorf("invalid float8")
		}
		_, f := pgio.NextFloat64(payload)
		return NewDynFloat(roundTo(f, 8)), nil
	case "textrecv", "varcharrecv", "namerecv", "charrecv":
		return decodeText(payload, ti)
	case "bytearecv":
		return NewDynBytes(payload), nil
	case "uuid_recv":
		if len(payload) != 16 {
			return Dynamic{}, fmt.Errorf("invalid uuid")
		}
		return NewDynBytes(payload), nil
	case "time_recv":
		return decodeTime(payload)
	case "date_recv":
		return decodeDate(payload)
	case "timestamp_recv", "timestamptz_recv":
		return decodeTimestamp(payload)
	case "interval_recv":
		return decodeInterval(payload)
	case "array_recv":
		return decodeArray(payload, ti)
	default:
		return Dynamic{}, fmt.Errorf("Unsupported type")
	}
}

func roundTo(f float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(f*scale) / scale
}

func decodeText(payload []byte, ti TypeInfo) (Dynamic, error) {
	if !utf8.Valid(payload) {
		if ti.Typereceive == "varcharrecv" {
			return Dynamic{}, fmt.Errorf("invalid varchar")
		}
		return Dynamic{}, fmt.Errorf("invalid text")
	}
	return NewDynString(string(payload)), nil
}

func decodeTime(payload []byte) (Dynamic, error) {
	if len(payload) != 8 {
		return Dynamic{}, fmt.Errorf("invalid time")
	}
	_, usec := pgio.NextInt64(payload)

	hours := usec / microsecondsPerHour
	usec -= hours * microsecondsPerHour
	minutes := usec / microsecondsPerMinute
	usec -= minutes * microsecondsPerMinute
	seconds := usec / microsecondsPerSecond
	usec -= seconds * microsecondsPerSecond

	return NewDynArray([]Dynamic{
		NewDynInt(hours),
		NewDynInt(minutes),
		NewDynInt(seconds),
		NewDynInt(usec),
	}), nil
}

const (
	microsecondsPerMinute = 60 * microsecondsPerSecond
	microsecondsPerHour   = 60 * microsecondsPerMinute
)

func decodeDate(payload []byte) (Dynamic, error) {
	if len(payload) != 4 {
		return Dynamic{}, fmt.Errorf("invalid date")
	}
	_, days := pgio.NextInt32(payload)

	switch days {
	case infinityDayOffset:
		return NewDynString("infinity"), nil
	case negativeInfinityDayOffset:
		return NewDynString("-infinity"), nil
	}

	date := GregorianDaysToDate(days + postgresGDEpoch)
	if date.Month < 1 || date.Month > 12 {
		return Dynamic{}, fmt.Errorf("Invalid month")
	}
	return NewDynArray([]Dynamic{
		NewDynInt(int64(date.Year)),
		NewDynInt(int64(date.Month)),
		NewDynInt(int64(date.Day)),
	}), nil
}

func decodeTimestamp(payload []byte) (Dynamic, error) {
	if len(payload) != 8 {
		return Dynamic{}, fmt.Errorf("invalid timestamp")
	}
	_, n := pgio.NextInt64(payload)

	switch n {
	case infinityMicros:
		return NewDynString("infinity"), nil
	case negativeInfinityMicros:
		return NewDynString("-infinity"), nil
	}

	q := n / microsecondsPerSecond
	r := n % microsecondsPerSecond
	unixMicros := (q+unixToPGSeconds)*microsecondsPerSecond + r
	return NewDynInt(unixMicros), nil
}

func decodeInterval(payload []byte) (Dynamic, error) {
	if len(payload) != 16 {
		return Dynamic{}, fmt.Errorf("invalid interval")
	}
	rest, micros := pgio.NextInt64(payload)
	rest, days := pgio.NextInt32(rest)
	_, months := pgio.NextInt32(rest)

	return NewDynArray([]Dynamic{
		NewDynInt(int64(months)),
		NewDynInt(int64(days)),
		NewDynInt(micros),
	}), nil
}

func decodeArray(payload []byte, ti TypeInfo) (Dynamic, error) {
	if ti.ElemType == nil {
		return Dynamic{}, fmt.Errorf("elem type missing")
	}
	if len(payload) < 12 {
		return Dynamic{}, fmt.Errorf("invalid array")
	}

	rest, numDims := pgio.NextInt32(payload)
	rest, _ = pgio.NextInt32(rest) // flags, passthrough only
	rest, _ = pgio.NextInt32(rest) // element OID, ignored: elem type comes from ti.ElemType

	if len(rest) < int(numDims)*8 {
		return Dynamic{}, fmt.Errorf("invalid array")
	}
	dims := make([]arrayDimension, numDims)
	for i := int32(0); i < numDims; i++ {
		var length, lowerBound int32
		rest, length, lowerBound = nextDim(rest)
		dims[i] = arrayDimension{Length: length, LowerBound: lowerBound}
	}
	wantElems := 0
	if numDims > 0 {
		wantElems = cardinality(dims)
	}

	var elems []Dynamic
	for len(rest) > 0 {
		if len(rest) < 4 {
			return Dynamic{}, fmt.Errorf("invalid array")
		}
		var size int32
		rest, size = pgio.NextInt32(rest)
		if size == -1 {
			elems = append(elems, NewDynNil())
			continue
		}
		if size < 0 || len(rest) < int(size) {
			return Dynamic{}, fmt.Errorf("invalid array")
		}
		elemPayload := rest[:size]
		rest = rest[size:]

		elem, err := Decode(elemPayload, *ti.ElemType)
		if err != nil {
			return Dynamic{}, err
		}
		elems = append(elems, elem)
	}

	if len(elems) != wantElems {
		return Dynamic{}, fmt.Errorf("invalid array")
	}

	return NewDynArray(elems), nil
}

func nextDim(buf []byte) (rest []byte, length, lowerBound int32) {
	rest, length = pgio.NextInt32(buf)
	rest, lowerBound = pgio.NextInt32(rest)
	return rest, length, lowerBound
}
