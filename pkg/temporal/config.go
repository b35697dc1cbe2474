package temporal

import "fmt"

// DefaultTwoDigitYearPivot maps "00".."49" to 2000..2049 and "50".."99" to 1950..1999.
const DefaultTwoDigitYearPivot = 50

// Config holds the process-wide parsing preferences.
// Load it once at startup and build a Parser from it.
type Config struct {
	USDateFormat      bool `env:"TEMPORAL_US_DATE_FORMAT" envDefault:"false"`    // USDateFormat reads numeric dates as month/day/year.
	TwoDigitYearPivot int  `env:"TEMPORAL_TWO_DIGIT_YEAR_PIVOT" envDefault:"50"` // TwoDigitYearPivot is the first two digit year that lands in the 1900s.
}

func DefaultConfig() Config {
	return Config{TwoDigitYearPivot: DefaultTwoDigitYearPivot}
}

// Option configures a Parser.
type Option func(*Config)

// WithUSDateFormat selects month/day/year ordering for numeric dates.
func WithUSDateFormat(enabled bool) Option {
	return func(c *Config) { c.USDateFormat = enabled }
}

// WithTwoDigitYearPivot sets the century pivot for two digit years.
// Panics for pivots outside 0..100: a bad pivot is a startup misconfiguration.
func WithTwoDigitYearPivot(pivot int) Option {
	return func(c *Config) {
		if pivot < 0 || pivot > 100 {
			panic(fmt.Errorf("%w: got %d", ErrInvalidPivot, pivot))
		}
		c.TwoDigitYearPivot = pivot
	}
}
