package pgtype

import (
	"fmt"
	"strconv"
	"strings"
)

const microsecondsPerSecond = 1_000_000

// Interval is PostgreSQL's composite duration type: independent
// months/days/seconds/microseconds fields with no cross-unit
// normalization. All fields may be negative.
type Interval struct {
	Months       int32
	Days         int32
	Seconds      int64
	Microseconds int64
}

// Months returns an Interval with only the months field set.
func Months(n int32) Interval { return Interval{Months: n} }

// Days returns an Interval with only the days field set.
func Days(n int32) Interval { return Interval{Days: n} }

// Seconds returns an Interval with only the seconds field set.
func Seconds(n int64) Interval { return Interval{Seconds: n} }

// Microseconds returns an Interval with only the microseconds field set.
func Microseconds(n int64) Interval { return Interval{Microseconds: n} }

// AddIntervals sums a and b fieldwise. It is commutative and associative,
// with Interval{} as the identity.
func AddIntervals(a, b Interval) Interval {
	return Interval{
		Months:       a.Months + b.Months,
		Days:         a.Days + b.Days,
		Seconds:      a.Seconds + b.Seconds,
		Microseconds: a.Microseconds + b.Microseconds,
	}
}

// DecodeIntervalDynamic builds an Interval from the (months, days,
// microseconds) triple the binary decoder produces for interval_recv.
func DecodeIntervalDynamic(months, days int32, microseconds int64) Interval {
	return Interval{
		Months:       months,
		Days:         days,
		Seconds:      microseconds / microsecondsPerSecond,
		Microseconds: microseconds % microsecondsPerSecond,
	}
}

// ToISO8601String renders i as an ISO-8601 duration, e.g. "P3M7DT30.2S".
// Interval{} renders as "PT0S".
func ToISO8601String(i Interval) string {
	if i == (Interval{}) {
		return "PT0S"
	}

	var b strings.Builder
	b.WriteByte('P')

	if i.Months != 0 {
		fmt.Fprintf(&b, "%dM", i.Months)
	}
	if i.Days != 0 {
		fmt.Fprintf(&b, "%dD", i.Days)
	}

	totalSeconds := i.Seconds + i.Microseconds/microsecondsPerSecond
	microseconds := i.Microseconds % microsecondsPerSecond

	if totalSeconds == 0 && microseconds == 0 {
		return b.String()
	}

	b.WriteByte('T')
	if microseconds == 0 {
		fmt.Fprintf(&b, "%dS", totalSeconds)
		return b.String()
	}

	if microseconds < 0 {
		microseconds = -microseconds
	}
	frac := strconv.FormatInt(microseconds, 10)
	if len(frac) < 6 {
		frac = strings.Repeat("0", 6-len(frac)) + frac
	}
	frac = strings.TrimRight(frac, "0")

	fmt.Fprintf(&b, "%d.%sS", totalSeconds, frac)
	return b.String()
}
