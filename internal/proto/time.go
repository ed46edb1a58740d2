package proto

import "time"

// WinFileTime is a 64-bit count of 100ns intervals since 1601-01-01 UTC,
// split into the two 32-bit halves the wire carries.
type WinFileTime struct {
	LowDateTime  uint32
	HighDateTime uint32
}

// The offset between the Unix and Windows file-time epochs, in seconds.
const fileTimeEpochDifference = 11_644_473_600

// TimeToFileTime converts a time point to a Windows file time.
func TimeToFileTime(t time.Time) WinFileTime {
	total := uint64(t.Unix()+fileTimeEpochDifference) * 10_000_000
	return WinFileTime{
		LowDateTime:  uint32(total),
		HighDateTime: uint32(total >> 32),
	}
}

// DateTime is the calendar decomposition carried by the packed 32-bit
// date-time value.
type DateTime struct {
	Years   int
	Months  int
	Days    int
	Hours   int
	Minutes int
}

// Packed returns the 32-bit packed encoding, low to high:
// years(12), months(4), days(5), hours(5), minutes(6).
// Each subfield saturates at its maximum.
func (dt DateTime) Packed() uint32 {
	return uint32(clamp(dt.Years, 4095)) |
		uint32(clamp(dt.Months, 15))<<12 |
		uint32(clamp(dt.Days, 31))<<16 |
		uint32(clamp(dt.Hours, 31))<<21 |
		uint32(clamp(dt.Minutes, 63))<<26
}

// UnpackDateTime is the partial inverse of Packed, up to saturation.
func UnpackDateTime(v uint32) DateTime {
	return DateTime{
		Years:   int(v & 0xFFF),
		Months:  int(v >> 12 & 0xF),
		Days:    int(v >> 16 & 0x1F),
		Hours:   int(v >> 21 & 0x1F),
		Minutes: int(v >> 26 & 0x3F),
	}
}

// TimeToPacked converts a time point to the packed date-time encoding,
// using the UTC calendar date.
func TimeToPacked(t time.Time) uint32 {
	t = t.UTC()
	return DateTime{
		Years:   t.Year(),
		Months:  int(t.Month()),
		Days:    t.Day(),
		Hours:   t.Hour(),
		Minutes: t.Minute(),
	}.Packed()
}

// DurationToPacked converts a remaining duration to the packed date-time
// encoding, used for countdown displays such as egg hatching.
func DurationToPacked(d time.Duration) uint32 {
	secondsPerYear := int64(365 * 24 * 3600)
	secondsPerMonth := secondsPerYear / 12

	left := int64(d / time.Second)

	dt := DateTime{}
	dt.Years = int(left / secondsPerYear)
	left -= int64(dt.Years) * secondsPerYear
	dt.Months = int(left / secondsPerMonth)
	left -= int64(dt.Months) * secondsPerMonth
	dt.Days = int(left / 86_400)
	left -= int64(dt.Days) * 86_400
	dt.Hours = int(left / 3_600)
	left -= int64(dt.Hours) * 3_600
	dt.Minutes = int(left / 60)

	return dt.Packed()
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
