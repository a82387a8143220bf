package tui

import (
	"testing"

	"github.com/mattsmi/cjdn/internal/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCJDN(t *testing.T) {
	res, err := Resolve("2451545", calendar.Gregorian)
	require.NoError(t, err)

	assert.Equal(t, 2451545, res.CJDN)
	assert.Equal(t, 6, res.Weekday) // Saturday
	assert.Equal(t, calendar.Date{Year: 2000, Month: 1, Day: 1}, res.Gregorian)
	assert.Equal(t, calendar.Date{Year: 1999, Month: 12, Day: 19}, res.Julian)
	assert.Equal(t, calendar.Date{Year: 2000, Month: 4, Day: 23}, res.WesternEaster)
	assert.Equal(t, calendar.Date{Year: 2000, Month: 4, Day: 30}, res.OrthodoxEaster)
	assert.Empty(t, res.Note)
}

func TestResolveDate(t *testing.T) {
	t.Run("on the selected calendar", func(t *testing.T) {
		res, err := Resolve("2000-01-01", calendar.Gregorian)
		require.NoError(t, err)
		assert.Equal(t, 2451545, res.CJDN)

		res, err = Resolve("2000-01-01", calendar.Julian)
		require.NoError(t, err)
		assert.Equal(t, 2451558, res.CJDN)
	})

	t.Run("negative year", func(t *testing.T) {
		res, err := Resolve("-0001-01-01", calendar.Julian)
		require.NoError(t, err)
		assert.Equal(t, 1720693, res.CJDN)
	})

	t.Run("whitespace tolerated", func(t *testing.T) {
		res, err := Resolve("  2451545 ", calendar.Gregorian)
		require.NoError(t, err)
		assert.Equal(t, 2451545, res.CJDN)
	})
}

func TestResolveNote(t *testing.T) {
	res, err := Resolve("1900-02-29", calendar.Gregorian)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Note)
	assert.Equal(t, calendar.Date{Year: 1900, Month: 3, Day: 1}, res.Gregorian)

	res, err = Resolve("1900-02-29", calendar.Julian)
	require.NoError(t, err)
	assert.Empty(t, res.Note) // valid on the Julian calendar
}

func TestResolveErrors(t *testing.T) {
	for _, input := range []string{"", "   ", "yesterday", "2000-01", "2000-01-xx"} {
		_, err := Resolve(input, calendar.Gregorian)
		assert.Error(t, err, "input %q", input)
	}
}
