package convert

import (
	"errors"
	"testing"

	"github.com/mattsmi/cjdn/internal/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardConversions(t *testing.T) {
	t.Run("gregorian", func(t *testing.T) {
		j, err := GregorianToCJDN("2000", "1", "1")
		require.NoError(t, err)
		assert.Equal(t, 2451545, j)
	})

	t.Run("julian epoch", func(t *testing.T) {
		j, err := JulianToCJDN("-4712", "1", "1")
		require.NoError(t, err)
		assert.Equal(t, 0, j)
	})

	t.Run("milankovic", func(t *testing.T) {
		j, err := MilankovicToCJDN("2000", "3", "1")
		require.NoError(t, err)
		assert.Equal(t, 2451605, j)
	})

	t.Run("out-of-range day converts without error", func(t *testing.T) {
		j, err := GregorianToCJDN("1900", "2", "29")
		require.NoError(t, err)
		want, err := GregorianToCJDN("1900", "3", "1")
		require.NoError(t, err)
		assert.Equal(t, want, j)
	})
}

func TestParseError(t *testing.T) {
	cases := []struct {
		name         string
		y, m, d      string
		field, value string
	}{
		{"bad year", "20x0", "1", "1", "year", "20x0"},
		{"bad month", "2000", "Jan", "1", "month", "Jan"},
		{"bad day", "2000", "1", "", "day", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := GregorianToCJDN(c.y, c.m, c.d)
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, c.field, perr.Field)
			assert.Equal(t, c.value, perr.Value)
			assert.NotNil(t, errors.Unwrap(perr))
		})
	}
}

func TestInverseConversions(t *testing.T) {
	t.Run("full date string", func(t *testing.T) {
		assert.Equal(t, "2000-01-01", CJDNToGregorian(2451545, Selection{}))
		assert.Equal(t, "1999-12-19", CJDNToJulian(2451545, Selection{}))
		assert.Equal(t, "2000-03-01", CJDNToMilankovic(2451605, Selection{}))
	})

	t.Run("negative year formatting", func(t *testing.T) {
		assert.Equal(t, "-4712-01-01", CJDNToJulian(0, Selection{}))
		assert.Equal(t, "-0001-01-01", CJDNToJulian(1720693, Selection{}))
	})

	t.Run("single fields", func(t *testing.T) {
		assert.Equal(t, "2000", CJDNToGregorian(2451545, Selection{Year: true}))
		assert.Equal(t, "1", CJDNToGregorian(2451545, Selection{Month: true}))
		assert.Equal(t, "1", CJDNToGregorian(2451545, Selection{Day: true}))
		assert.Equal(t, "-4712", CJDNToJulian(0, Selection{Year: true}))
	})
}

// Year beats month beats day when several flags are set.
func TestSelectionPrecedence(t *testing.T) {
	assert.Equal(t, "1999", CJDNToJulian(2451545, Selection{Year: true, Day: true}))
	assert.Equal(t, "12", CJDNToJulian(2451545, Selection{Month: true, Day: true}))
	assert.Equal(t, "1999", CJDNToJulian(2451545, Selection{Year: true, Month: true, Day: true}))

	v, ok := Extract(calendar.Julian, 2451545, Selection{})
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestBetween(t *testing.T) {
	assert.Equal(t, calendar.Date{Year: 1999, Month: 12, Day: 19},
		Between(calendar.Gregorian, calendar.Julian, calendar.Date{Year: 2000, Month: 1, Day: 1}))
	assert.Equal(t, calendar.Date{Year: 2000, Month: 1, Day: 1},
		Between(calendar.Julian, calendar.Gregorian, calendar.Date{Year: 1999, Month: 12, Day: 19}))
	// Milanković and Gregorian agree on modern dates.
	assert.Equal(t, calendar.Date{Year: 2024, Month: 2, Day: 29},
		Between(calendar.Gregorian, calendar.Milankovic, calendar.Date{Year: 2024, Month: 2, Day: 29}))
}
