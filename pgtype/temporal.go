package pgtype

import "time"

const (
	// postgresGDEpoch is the Gregorian day count of 2000-01-01 — days since
	// 0000-12-31 in the proleptic Gregorian calendar.
	postgresGDEpoch = 730_485

	// unixToPGSeconds converts a Unix-epoch second count into a
	// PostgreSQL-epoch (2000-01-01) second count: postgresGSEpoch -
	// gsToUnixEpoch collapses to this one constant.
	unixToPGSeconds = 946_684_800

	// postgresGSEpoch and gsToUnixEpoch are the two constants the timestamp
	// wire format is specified against (§4.2, §4.3.1); unixToPGSeconds above
	// is their difference, kept as a derived constant for callers that only
	// need the Unix<->PG shift.
	postgresGSEpoch = 63_113_904_000
	gsToUnixEpoch   = 62_167_219_200

	secondsPerDay = 86_400

	// daysUnixEpochFromGD0 is the Gregorian day count of 1970-01-01, used to
	// translate between Unix-epoch-based civil date arithmetic and the
	// Gregorian day count postgresGDEpoch is expressed in.
	daysUnixEpochFromGD0 = postgresGDEpoch - unixToPGSeconds/secondsPerDay
)

// DateToGregorianDays computes the Gregorian day count for the civil date
// (year, month, day), where day 0 denotes 0000-12-31 and postgresGDEpoch
// (730485) corresponds to 2000-01-01.
func DateToGregorianDays(year int, month, day int) int32 {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	unixDays := t.Unix() / secondsPerDay
	return int32(unixDays + daysUnixEpochFromGD0)
}

// GregorianDaysToDate inverts DateToGregorianDays.
func GregorianDaysToDate(days int32) CivilDate {
	unixDays := int64(days) - daysUnixEpochFromGD0
	t := time.Unix(unixDays*secondsPerDay, 0).UTC()
	return CivilDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// SecondsToTime decomposes a count of seconds within a day (0 <= seconds <
// 86400) into hours, minutes, and seconds.
func SecondsToTime(seconds int) (hours, minutes, secs int) {
	hours = seconds / 3600
	minutes = (seconds % 3600) / 60
	secs = seconds % 60
	return hours, minutes, secs
}
