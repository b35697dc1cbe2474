// Package temporal parses human-entered date, time and date-time strings into
// normalized, totally ordered values.
//
// The parser is tolerant about formats and strict about meaning: it accepts
// numeric triplets separated by slashes, backslashes, dashes or whitespace
// ("29/10/2005", " 8\12\63"), ISO dates ("2006-01-11"), day/month-name/year
// forms ("16 MaR 60") and clock times ("9:05", "23:59:59"), but rejects every
// string that does not denote exactly one real calendar value. "30/2/06" is an
// error, not the 2nd of March.
//
// # Usage
//
//	p := temporal.New(temporal.WithUSDateFormat(false))
//
//	v, err := p.Parse("1/1/01", temporal.ModeDate)
//	switch {
//	case errors.Is(err, temporal.ErrEmpty):
//	    // blank input, decide whether that's allowed
//	case err != nil:
//	    // malformed input
//	default:
//	    fmt.Println(v) // 2001-01-01
//	}
//
// # Configuration
//
// Two settings change how a string is read:
//
//   - USDateFormat switches numeric triplets from day-month-year to
//     month-day-year.
//   - TwoDigitYearPivot decides the century of two digit years: years below the
//     pivot land in the 2000s, the rest in the 1900s. The default pivot is 50.
//
// Both are captured when the Parser is built and never change afterwards, so a
// Parser can be shared between goroutines. Config carries env tags and can be
// populated with the config package.
//
// # Error Handling
//
// Blank input returns ErrEmpty. Every rejected input returns an error wrapping
// ErrInvalid (more precisely ErrInvalidDate, ErrInvalidTime or
// ErrInvalidDateTime), so callers can tell "nothing entered" from "entered
// something wrong" with errors.Is.
package temporal
