package pgtype

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ToSQLLiteral renders value as a PostgreSQL-parseable literal, suitable for
// splicing into a single-value position of a SQL string. It is a boundary
// helper, not part of the binary wire codec: non-core for correctness but
// part of this package's stable interface.
func ToSQLLiteral(value Value) string {
	switch value.Kind {
	case KindNull:
		return "NULL"
	case KindBool:
		if value.Bool {
			return "TRUE"
		}
		return "FALSE"
	case KindInt:
		return strconv.FormatInt(value.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(value.Float, 'g', -1, 64)
	case KindText:
		return quoteLiteralString(value.Text)
	case KindBytea:
		return fmt.Sprintf("'\\x%s'", strings.ToUpper(hex.EncodeToString(value.Bytes)))
	case KindUUID:
		return formatUUID(value.UUID)
	case KindTime:
		return "'" + formatTimeOfDay(value.Time) + "'"
	case KindDate:
		return fmt.Sprintf("'%04d-%02d-%02d'", value.Date.Year, value.Date.Month, value.Date.Day)
	case KindTimestamp:
		return fmt.Sprintf("'%s'", value.Timestamp.UTC().Format(time.RFC3339Nano))
	case KindTimestamptz:
		shifted := value.TimestamptzTime.Add(timestamptzLiteralOffset(value.TimestamptzOff))
		return fmt.Sprintf("'%s'", shifted.UTC().Format(time.RFC3339Nano))
	case KindInterval:
		return fmt.Sprintf("'%s'", ToISO8601String(value.Interval))
	case KindArray:
		parts := make([]string, len(value.Array))
		for i, e := range value.Array {
			parts[i] = ToSQLLiteral(e)
		}
		return "ARRAY[" + strings.Join(parts, ", ") + "]"
	default:
		return "NULL"
	}
}

// quoteLiteralString surrounds s in single quotes, escaping every embedded
// quote as \'.
func quoteLiteralString(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		if r == '\'' {
			b.WriteString(`\'`)
		} else {
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

func formatTimeOfDay(t TimeOfDay) string {
	base := fmt.Sprintf("%02d:%02d:%02d", t.Hours, t.Minutes, t.Seconds)
	ms := t.Nanoseconds / 1_000_000
	if ms == 0 {
		return base
	}
	switch {
	case ms < 10:
		return fmt.Sprintf("%s.00%d", base, ms)
	case ms < 100:
		return fmt.Sprintf("%s.0%d", base, ms)
	default:
		return fmt.Sprintf("%s.%d", base, ms)
	}
}

func formatUUID(b [16]byte) string {
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}

// timestamptzLiteralOffset mirrors shiftTimestamptz's sign convention so the
// literal renderer and the binary encoder stay in lockstep for the same
// Value.
func timestamptzLiteralOffset(off Offset) time.Duration {
	sign := -1
	hours := off.Hours
	if hours < 0 {
		sign = 1
		hours = -hours
	}
	minutes := (hours*60 + off.Minutes) * sign
	return time.Duration(minutes) * time.Minute
}
