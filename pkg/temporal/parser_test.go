package temporal_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datecheck/pkg/temporal"
)

func TestParse_Date(t *testing.T) {
	t.Parallel()

	p := temporal.New()

	t.Run("valid formats", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			input string
			want  string
		}{
			{"1/1/01", "2001-01-01"},
			{"29/10/2005", "2005-10-29"},
			{" 8\\12\\63", "1963-12-08"},
			{"11\\1\\06", "2006-01-11"},
			{"5-6-2007", "2007-06-05"},
			{"5 6 2007", "2007-06-05"},
			{"5 / 6 / 2007", "2007-06-05"},
			{"16 MaR 60", "1960-03-16"},
			{"22 dec 1985 ", "1985-12-22"},
			{"1 Jan 06", "2006-01-01"},
			{"3 september 1999", "1999-09-03"},
			{"2006-01-11", "2006-01-11"},
			{"2006-1-2", "2006-01-02"},
			{"29/2/2004", "2004-02-29"},
		}
		for _, tt := range tests {
			v, err := p.Parse(tt.input, temporal.ModeDate)
			require.NoError(t, err, "input %q", tt.input)
			assert.Equal(t, tt.want, v.String(), "input %q", tt.input)
			assert.Equal(t, temporal.ModeDate, v.Mode())
		}
	})

	t.Run("invalid formats", func(t *testing.T) {
		t.Parallel()
		inputs := []string{
			"aksjhdaksjhd",
			"meow",
			"chocolate",
			"221 jan 05",
			"21 JAN 001",
			"1/2/3/4",
			"11/22/33",
			"10/10/990",
			"189 /1 /9",
			"12\\ f m",
			"1 Jaw 00",
			"30/2/06",
			"29/2/2005",
			"31/4/2010",
			"0/1/2010",
			"1/13/2010",
			"1/1/0000",
		}
		for _, input := range inputs {
			_, err := p.Parse(input, temporal.ModeDate)
			require.Error(t, err, "input %q", input)
			assert.ErrorIs(t, err, temporal.ErrInvalid, "input %q", input)
			assert.ErrorIs(t, err, temporal.ErrInvalidDate, "input %q", input)
		}
	})
}

func TestParse_USDateFormat(t *testing.T) {
	t.Parallel()

	us := temporal.New(temporal.WithUSDateFormat(true))

	v, err := us.Parse("11/22/33", temporal.ModeDate)
	require.NoError(t, err)
	assert.Equal(t, "2033-11-22", v.String())

	_, err = us.Parse("22/11/33", temporal.ModeDate)
	assert.ErrorIs(t, err, temporal.ErrInvalidDate)

	// month names and ISO dates are unaffected by the ordering flag
	v, err = us.Parse("16 Mar 60", temporal.ModeDate)
	require.NoError(t, err)
	assert.Equal(t, "1960-03-16", v.String())

	v, err = us.Parse("2006-01-11", temporal.ModeDate)
	require.NoError(t, err)
	assert.Equal(t, "2006-01-11", v.String())
}

func TestParse_TwoDigitYearPivot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pivot int
		input string
		year  int
	}{
		{50, "1/1/49", 2049},
		{50, "1/1/50", 1950},
		{50, "1/1/00", 2000},
		{30, "1/1/45", 1945},
		{30, "1/1/29", 2029},
		{0, "1/1/05", 1905},
		{100, "1/1/99", 2099},
	}
	for _, tt := range tests {
		p := temporal.New(temporal.WithTwoDigitYearPivot(tt.pivot))
		v, err := p.Parse(tt.input, temporal.ModeDate)
		require.NoError(t, err)
		assert.Equal(t, tt.year, v.Year(), "pivot %d input %q", tt.pivot, tt.input)
	}

	t.Run("four digit years ignore the pivot", func(t *testing.T) {
		p := temporal.New(temporal.WithTwoDigitYearPivot(0))
		v, err := p.Parse("1/1/2049", temporal.ModeDate)
		require.NoError(t, err)
		assert.Equal(t, 2049, v.Year())
	})

	t.Run("out of range pivot panics", func(t *testing.T) {
		assert.Panics(t, func() { temporal.New(temporal.WithTwoDigitYearPivot(101)) })
		assert.Panics(t, func() { temporal.New(temporal.WithTwoDigitYearPivot(-1)) })
	})
}

func TestParse_Time(t *testing.T) {
	t.Parallel()

	valid := map[string]string{
		"9:05":     "09:05:00",
		"09:05":    "09:05:00",
		"23:59:59": "23:59:59",
		"0:0":      "00:00:00",
		" 7:3:9 ":  "07:03:09",
	}
	for input, want := range valid {
		v, err := temporal.Parse(input, temporal.ModeTime)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, v.String())
		assert.Equal(t, 2000, v.Year(), "pure times use the placeholder date")
	}

	for _, input := range []string{"24:00", "12:60", "12:30:60", "123:00", "12", "12:", "noon", "1/1/2000"} {
		_, err := temporal.Parse(input, temporal.ModeTime)
		assert.ErrorIs(t, err, temporal.ErrInvalidTime, "input %q", input)
	}
}

func TestParse_DateTime(t *testing.T) {
	t.Parallel()

	valid := map[string]string{
		"1/1/01 10:30":        "2001-01-01 10:30:00",
		"16 Mar 60 23:59:59":  "1960-03-16 23:59:59",
		"2006-01-02 15:04:05": "2006-01-02 15:04:05",
		"2006-01-02T15:04":    "2006-01-02 15:04:00",
	}
	for input, want := range valid {
		v, err := temporal.Parse(input, temporal.ModeDateTime)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, v.String())
	}

	for _, input := range []string{"1/1/01", "10:30", "30/2/06 10:30", "1/1/01 25:00", "1 Jaw 00 10:00"} {
		_, err := temporal.Parse(input, temporal.ModeDateTime)
		assert.ErrorIs(t, err, temporal.ErrInvalidDateTime, "input %q", input)
	}
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	var nilValue *temporal.Value
	var nilTime *time.Time
	inputs := []any{nil, "", "   ", []byte(""), temporal.Value{}, nilValue, time.Time{}, nilTime}
	for _, input := range inputs {
		_, err := temporal.Parse(input, temporal.ModeDate)
		assert.ErrorIs(t, err, temporal.ErrEmpty, "input %#v", input)
		assert.False(t, errors.Is(err, temporal.ErrInvalid), "empty input is not a parse failure")
	}
}

func TestParse_StructuredInput(t *testing.T) {
	t.Parallel()

	t.Run("value is an identity parse", func(t *testing.T) {
		d, err := temporal.Date(2006, 1, 1)
		require.NoError(t, err)

		v, err := temporal.Parse(d, temporal.ModeDate)
		require.NoError(t, err)
		assert.True(t, d.Equal(v))

		v, err = temporal.Parse(&d, temporal.ModeDate)
		require.NoError(t, err)
		assert.True(t, d.Equal(v))
	})

	t.Run("time.Time is projected onto the mode", func(t *testing.T) {
		tm := time.Date(1963, 4, 5, 13, 14, 15, 999, time.UTC)

		v, err := temporal.Parse(tm, temporal.ModeDate)
		require.NoError(t, err)
		assert.Equal(t, "1963-04-05", v.String())

		v, err = temporal.Parse(tm, temporal.ModeTime)
		require.NoError(t, err)
		assert.Equal(t, "13:14:15", v.String())

		v, err = temporal.Parse(&tm, temporal.ModeDateTime)
		require.NoError(t, err)
		assert.Equal(t, "1963-04-05 13:14:15", v.String())
	})

	t.Run("unsupported types fail", func(t *testing.T) {
		_, err := temporal.Parse(42, temporal.ModeDate)
		assert.ErrorIs(t, err, temporal.ErrUnsupportedType)
		assert.ErrorIs(t, err, temporal.ErrInvalid)
	})

	t.Run("invalid mode", func(t *testing.T) {
		_, err := temporal.Parse("1/1/2001", temporal.Mode(0))
		assert.ErrorIs(t, err, temporal.ErrInvalidMode)
	})
}

func TestParse_CalendarProperty(t *testing.T) {
	t.Parallel()

	p := temporal.New()
	for year := 1999; year <= 2001; year++ {
		for month := 1; month <= 12; month++ {
			for day := 1; day <= 31; day++ {
				input := itoa(day) + "/" + itoa(month) + "/" + itoa(year)
				v, err := p.Parse(input, temporal.ModeDate)

				want := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
				if want.Day() != day {
					assert.ErrorIs(t, err, temporal.ErrInvalidDate, "input %q", input)
					continue
				}
				require.NoError(t, err, "input %q", input)
				assert.Equal(t, year, v.Year())
				assert.Equal(t, month, v.Month())
				assert.Equal(t, day, v.Day())
			}
		}
	}
}

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := map[temporal.Mode][]string{
		temporal.ModeDate:     {"1/1/01", "16 MaR 60", "29/2/2004", "31/12/1999"},
		temporal.ModeTime:     {"0:00", "9:5:7", "23:59:59"},
		temporal.ModeDateTime: {"1/1/01 10:30", "16 Mar 60 0:0:1"},
	}
	for mode, list := range inputs {
		for _, input := range list {
			v, err := temporal.Parse(input, mode)
			require.NoError(t, err)

			again, err := temporal.Parse(v.String(), mode)
			require.NoError(t, err, "canonical %q", v.String())
			assert.True(t, v.Equal(again), "round trip of %q", input)
		}
	}
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	p, err := temporal.NewFromConfig(temporal.Config{USDateFormat: true, TwoDigitYearPivot: 30})
	require.NoError(t, err)
	assert.Equal(t, temporal.Config{USDateFormat: true, TwoDigitYearPivot: 30}, p.Config())

	_, err = temporal.NewFromConfig(temporal.Config{TwoDigitYearPivot: 200})
	assert.ErrorIs(t, err, temporal.ErrInvalidPivot)
}

func itoa(n int) string {
	const digits = "0123456789"
	if n < 10 {
		return string(digits[n])
	}
	return itoa(n/10) + string(digits[n%10])
}
