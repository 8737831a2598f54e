package pgtype

import "testing"

func TestDateToGregorianDaysEpoch(t *testing.T) {
	got := DateToGregorianDays(2000, 1, 1)
	if got != postgresGDEpoch {
		t.Errorf("DateToGregorianDays(2000-01-01) = %v, want %v", got, postgresGDEpoch)
	}
}

func TestDateToGregorianDaysUnixEpoch(t *testing.T) {
	got := DateToGregorianDays(1970, 1, 1)
	want := int32(daysUnixEpochFromGD0)
	if got != want {
		t.Errorf("DateToGregorianDays(1970-01-01) = %v, want %v", got, want)
	}
}

func TestGregorianDaysToDateRoundTrip(t *testing.T) {
	cases := []CivilDate{
		{Year: 2000, Month: 1, Day: 1},
		{Year: 1970, Month: 1, Day: 1},
		{Year: 1969, Month: 12, Day: 31},
		{Year: 2024, Month: 2, Day: 29},
		{Year: 1900, Month: 3, Day: 15},
		{Year: 2100, Month: 7, Day: 4},
	}
	for _, want := range cases {
		days := DateToGregorianDays(want.Year, want.Month, want.Day)
		got := GregorianDaysToDate(days)
		if got != want {
			t.Errorf("GregorianDaysToDate(DateToGregorianDays(%+v)) = %+v, want %+v", want, got, want)
		}
	}
}

func TestSecondsToTime(t *testing.T) {
	tests := []struct {
		seconds                 int
		hours, minutes, secs int
	}{
		{0, 0, 0, 0},
		{79, 0, 1, 19},
		{3661, 1, 1, 1},
		{86399, 23, 59, 59},
	}
	for _, tt := range tests {
		h, m, s := SecondsToTime(tt.seconds)
		if h != tt.hours || m != tt.minutes || s != tt.secs {
			t.Errorf("SecondsToTime(%d) = %d:%d:%d, want %d:%d:%d", tt.seconds, h, m, s, tt.hours, tt.minutes, tt.secs)
		}
	}
}
