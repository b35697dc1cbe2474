package temporal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

var (
	// d/m/y or m/d/y separated by / \ - (optionally padded) or plain whitespace.
	numericDatePattern = regexp.MustCompile(`^(\d{1,2})(?:\s*[/\\-]\s*|\s+)(\d{1,2})(?:\s*[/\\-]\s*|\s+)(\d{2}|\d{4})$`)
	isoDatePattern     = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})[-/](\d{1,2})$`)
	namedDatePattern   = regexp.MustCompile(`^(\d{1,2})\s+(\pL+)\s+(\d{2}|\d{4})$`)
	clockPattern       = regexp.MustCompile(`^(\d{1,2}):(\d{1,2})(?::(\d{1,2}))?$`)
	dateTimePattern    = regexp.MustCompile(`^(.*\S)(?:\s+|T)(\d{1,2}:\d{1,2}(?::\d{1,2})?)$`)
)

var monthNames = map[string]int{
	"january": 1, "february": 2, "march": 3, "april": 4, "may": 5, "june": 6,
	"july": 7, "august": 8, "september": 9, "october": 10, "november": 11, "december": 12,
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

var defaultParser = New()

// Parser converts raw input into Values.
// It is immutable after construction and safe for concurrent use.
type Parser struct {
	cfg Config
}

// New builds a Parser from DefaultConfig and the given options.
func New(opts ...Option) *Parser {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Parser{cfg: cfg}
}

// NewFromConfig builds a Parser from a loaded Config.
func NewFromConfig(cfg Config) (*Parser, error) {
	if cfg.TwoDigitYearPivot < 0 || cfg.TwoDigitYearPivot > 100 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPivot, cfg.TwoDigitYearPivot)
	}
	return &Parser{cfg: cfg}, nil
}

// Config returns the settings the parser was built with.
func (p *Parser) Config() Config { return p.cfg }

// Parse parses raw with the default parser (day/month/year, pivot 50).
func Parse(raw any, mode Mode) (Value, error) {
	return defaultParser.Parse(raw, mode)
}

// Parse extracts a Value of the given mode from raw.
//
// Strings and byte slices are parsed; Value and time.Time inputs (or pointers to
// them) are accepted as they are and projected onto mode. nil, zero and blank
// inputs return ErrEmpty. Anything else returns ErrUnsupportedType.
func (p *Parser) Parse(raw any, mode Mode) (Value, error) {
	if !mode.Valid() {
		return Value{}, fmt.Errorf("%w: %s", ErrInvalidMode, mode)
	}

	switch v := raw.(type) {
	case nil:
		return Value{}, ErrEmpty
	case string:
		return p.ParseString(v, mode)
	case []byte:
		return p.ParseString(string(v), mode)
	case Value:
		if v.IsZero() {
			return Value{}, ErrEmpty
		}
		return v.In(mode), nil
	case *Value:
		if v == nil {
			return Value{}, ErrEmpty
		}
		return p.Parse(*v, mode)
	case time.Time:
		if v.IsZero() {
			return Value{}, ErrEmpty
		}
		return FromTime(v, mode), nil
	case *time.Time:
		if v == nil {
			return Value{}, ErrEmpty
		}
		return p.Parse(*v, mode)
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedType, raw)
	}
}

// ParseString parses s as a value of the given mode.
func (p *Parser) ParseString(s string, mode Mode) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}, ErrEmpty
	}

	switch mode {
	case ModeDate:
		y, m, d, ok := p.parseDate(s)
		if !ok {
			return Value{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		return Date(y, m, d)
	case ModeTime:
		h, mi, sec, ok := parseClock(s)
		if !ok {
			return Value{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}
		return Clock(h, mi, sec)
	case ModeDateTime:
		parts := dateTimePattern.FindStringSubmatch(s)
		if parts == nil {
			return Value{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, s)
		}
		y, m, d, ok := p.parseDate(strings.TrimSpace(parts[1]))
		if !ok {
			return Value{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, s)
		}
		h, mi, sec, ok := parseClock(parts[2])
		if !ok {
			return Value{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, s)
		}
		return DateTime(y, m, d, h, mi, sec)
	default:
		return Value{}, fmt.Errorf("%w: %s", ErrInvalidMode, mode)
	}
}

// parseDate matches s against the accepted date syntaxes. It only checks the
// structure; calendar validity is left to Date.
func (p *Parser) parseDate(s string) (year, month, day int, ok bool) {
	if m := isoDatePattern.FindStringSubmatch(s); m != nil {
		return atoi(m[1]), atoi(m[2]), atoi(m[3]), true
	}

	if m := numericDatePattern.FindStringSubmatch(s); m != nil {
		first, second := atoi(m[1]), atoi(m[2])
		if p.cfg.USDateFormat {
			return p.expandYear(m[3]), first, second, true
		}
		return p.expandYear(m[3]), second, first, true
	}

	if m := namedDatePattern.FindStringSubmatch(s); m != nil {
		month, found := monthNames[cases.Fold().String(m[2])]
		if !found {
			return 0, 0, 0, false
		}
		return p.expandYear(m[3]), month, atoi(m[1]), true
	}

	return 0, 0, 0, false
}

func (p *Parser) expandYear(s string) int {
	year := atoi(s)
	if len(s) != 2 {
		return year
	}
	if year < p.cfg.TwoDigitYearPivot {
		return 2000 + year
	}
	return 1900 + year
}

func parseClock(s string) (hour, minute, second int, ok bool) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, 0, false
	}
	if m[3] != "" {
		second = atoi(m[3])
	}
	return atoi(m[1]), atoi(m[2]), second, true
}

// atoi is only called on regexp-matched digit runs of at most four characters.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
