package proto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFileTimeEpoch(t *testing.T) {
	// The Unix epoch is 11644473600 seconds past the file-time epoch.
	ft := TimeToFileTime(time.Unix(0, 0))
	total := uint64(ft.HighDateTime)<<32 | uint64(ft.LowDateTime)
	require.Equal(t, uint64(11_644_473_600)*10_000_000, total)
}

func TestPackedDateTimeFields(t *testing.T) {
	dt := DateTime{Years: 2024, Months: 12, Days: 31, Hours: 23, Minutes: 59}
	packed := dt.Packed()

	require.Equal(t, dt, UnpackDateTime(packed))

	require.Equal(t, uint32(2024), packed&0xFFF)
	require.Equal(t, uint32(12), packed>>12&0xF)
	require.Equal(t, uint32(31), packed>>16&0x1F)
	require.Equal(t, uint32(23), packed>>21&0x1F)
	require.Equal(t, uint32(59), packed>>26&0x3F)
}

func TestPackedDateTimeSaturation(t *testing.T) {
	dt := DateTime{Years: 9999, Months: 99, Days: 99, Hours: 99, Minutes: 99}
	unpacked := UnpackDateTime(dt.Packed())

	require.Equal(t, 4095, unpacked.Years)
	require.Equal(t, 15, unpacked.Months)
	require.Equal(t, 31, unpacked.Days)
	require.Equal(t, 31, unpacked.Hours)
	require.Equal(t, 63, unpacked.Minutes)
}

func TestTimeToPacked(t *testing.T) {
	point := time.Date(2012, time.June, 15, 8, 30, 12, 0, time.UTC)
	unpacked := UnpackDateTime(TimeToPacked(point))

	require.Equal(t, 2012, unpacked.Years)
	require.Equal(t, 6, unpacked.Months)
	require.Equal(t, 15, unpacked.Days)
	require.Equal(t, 8, unpacked.Hours)
	require.Equal(t, 30, unpacked.Minutes)
}

func TestDurationToPacked(t *testing.T) {
	unpacked := UnpackDateTime(DurationToPacked(26*time.Hour + 5*time.Minute))
	require.Equal(t, 0, unpacked.Years)
	require.Equal(t, 1, unpacked.Days)
	require.Equal(t, 2, unpacked.Hours)
	require.Equal(t, 5, unpacked.Minutes)
}
