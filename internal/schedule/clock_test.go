package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := map[string]int{
		"00:00": 0,
		"09:30": 570,
		"23:59": 1439,
	}
	for in, want := range cases {
		got, err := ParseClock(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "9:30", "09:3", "24:00", "12:60", "ab:cd", "12.30", "12:300"} {
		_, err := ParseClock(bad)
		assert.ErrorIs(t, err, ErrFormat, bad)
	}
}

func TestFormatClock_RoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "07:05", "12:30", "23:59"} {
		v, err := ParseClock(s)
		require.NoError(t, err)
		assert.Equal(t, s, FormatClock(v))
	}
}

func TestOverlaps(t *testing.T) {
	// candidate starts inside existing
	assert.True(t, Overlaps(630, 690, 600, 660))
	// candidate ends inside existing
	assert.True(t, Overlaps(570, 630, 600, 660))
	// candidate encloses existing
	assert.True(t, Overlaps(540, 720, 600, 660))
	// identical
	assert.True(t, Overlaps(600, 660, 600, 660))

	// back-to-back bookings touch but never conflict
	assert.False(t, Overlaps(540, 600, 600, 660))
	assert.False(t, Overlaps(600, 660, 540, 600))
	// fully apart
	assert.False(t, Overlaps(540, 570, 600, 660))
}

// The source expressed overlap as three redundant boolean cases; the single
// two-inequality form must accept and reject the same interval pairs. Sweep
// pairs on a small grid to confirm.
func TestOverlaps_EquivalentToThreeCaseForm(t *testing.T) {
	threeCase := func(aStart, aEnd, bStart, bEnd int) bool {
		startsInside := aStart >= bStart && aStart < bEnd
		endsInside := aEnd > bStart && aEnd <= bEnd
		encloses := aStart <= bStart && aEnd >= bEnd
		return startsInside || endsInside || encloses
	}
	for aStart := 0; aStart < 8; aStart++ {
		for aEnd := aStart + 1; aEnd <= 8; aEnd++ {
			for bStart := 0; bStart < 8; bStart++ {
				for bEnd := bStart + 1; bEnd <= 8; bEnd++ {
					assert.Equal(t,
						threeCase(aStart, aEnd, bStart, bEnd),
						Overlaps(aStart, aEnd, bStart, bEnd),
						"a=[%d,%d) b=[%d,%d)", aStart, aEnd, bStart, bEnd)
				}
			}
		}
	}
}
