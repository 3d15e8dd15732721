package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToEpochSeconds(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want int64
	}{
		{
			name: "utc_midnight_2021",
			in:   time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
			want: 1609459200,
		},
		{
			name: "sub_second_truncated",
			in:   time.Date(2021, 1, 1, 0, 0, 0, 999_000_000, time.UTC),
			want: 1609459200,
		},
		{
			name: "offset_zone_same_instant",
			in:   time.Date(2021, 1, 1, 5, 30, 0, 0, time.FixedZone("IST", 5*3600+1800)),
			want: 1609459200,
		},
		{
			name: "epoch",
			in:   time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "before_epoch",
			in:   time.Date(1969, 12, 31, 23, 59, 59, 0, time.UTC),
			want: -1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToEpochSeconds(tt.in))
		})
	}
}

func TestFromEpochSeconds(t *testing.T) {
	got := FromEpochSeconds(1609459200)
	assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestEpochRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 1609459200, 253402300799, -62135596800} {
		assert.Equal(t, n, ToEpochSeconds(FromEpochSeconds(n)))
	}
}
