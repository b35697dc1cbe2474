package multiparam

import (
	"maps"
	"slices"
	"strings"

	"github.com/dmitrymomot/datecheck/pkg/temporal"
)

// Group holds the components submitted for one attribute.
type Group struct {
	Name string
	// Mode is the temporal kind of the attribute; zero for composite attributes.
	Mode temporal.Mode
	// Values maps 1-based positions to components. A missing position is absent;
	// an empty string is a supplied but empty component.
	Values map[int]string
}

// Components returns the supplied components ordered by position.
func (g Group) Components() []string {
	positions := slices.Sorted(maps.Keys(g.Values))
	out := make([]string, 0, len(positions))
	for _, p := range positions {
		out = append(out, g.Values[p])
	}
	return out
}

// Assemble joins the group into a string for the parser. ok is false when
// every component is absent, meaning the attribute should be cleared.
//
// Partial dates are passed through as they are; it is up to the parser to
// reject them. Groups without a temporal mode are joined with spaces.
func Assemble(g Group) (string, bool) {
	values := g.Components()
	if len(values) == 0 {
		return "", false
	}

	switch g.Mode {
	case temporal.ModeDate:
		return assembleDate(values), true
	case temporal.ModeTime:
		return assembleTime(values), true
	case temporal.ModeDateTime:
		n := min(3, len(values))
		return assembleDate(values[:n]) + " " + assembleTime(values[n:]), true
	default:
		return strings.Join(values, " "), true
	}
}

// assembleDate keeps the year as given and pads month and day.
func assembleDate(values []string) string {
	parts := []string{values[0]}
	for _, v := range values[1:min(3, len(values))] {
		parts = append(parts, pad(v))
	}
	return strings.Join(parts, "-")
}

func assembleTime(values []string) string {
	if len(values) > 3 {
		values = values[len(values)-3:]
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = pad(v)
	}
	return strings.Join(parts, ":")
}

func pad(s string) string {
	if len(s) >= 2 {
		return s
	}
	return strings.Repeat("0", 2-len(s)) + s
}
