package multiparam

import (
	"fmt"
	"maps"
	"mime"
	"net/http"
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// DefaultMaxMemory bounds the memory used when parsing multipart forms.
const DefaultMaxMemory = 10 << 20

var keyPattern = regexp.MustCompile(`^([^()]+)\((\d+)[if]?\)$`)

// ParseKey splits "name(2i)" into its attribute name and position.
func ParseKey(key string) (name string, position int, ok bool) {
	m := keyPattern.FindStringSubmatch(key)
	if m == nil {
		return "", 0, false
	}
	position, err := strconv.Atoi(m[2])
	if err != nil || position < 1 {
		return "", 0, false
	}
	return m[1], position, true
}

// FromForm collects the multiparameter keys of values into groups sorted by
// attribute name. Blank inputs are treated as absent so that an untouched set
// of selects clears the attribute. Plain keys are ignored.
func FromForm(values url.Values) []Group {
	byName := make(map[string]*Group)
	for key, vs := range values {
		name, pos, ok := ParseKey(key)
		if !ok {
			continue
		}
		g, exists := byName[name]
		if !exists {
			g = &Group{Name: name, Values: make(map[int]string)}
			byName[name] = g
		}
		if len(vs) == 0 || strings.TrimSpace(vs[0]) == "" {
			continue
		}
		g.Values[pos] = strings.TrimSpace(vs[0])
	}

	groups := make([]Group, 0, len(byName))
	for _, name := range slices.Sorted(maps.Keys(byName)) {
		groups = append(groups, *byName[name])
	}
	return groups
}

// PlainValues returns the keys of values that are not multiparameter keys,
// keeping the first value of each.
func PlainValues(values url.Values) map[string]string {
	out := make(map[string]string)
	for key, vs := range values {
		if _, _, ok := ParseKey(key); ok || len(vs) == 0 {
			continue
		}
		out[key] = vs[0]
	}
	return out
}

// AssignForm assigns plain keys directly and multiparameter groups through
// AssignBatch. A plain assignment error stops before any group is assigned.
func AssignForm(t Target, values url.Values) error {
	plain := PlainValues(values)
	for _, name := range slices.Sorted(maps.Keys(plain)) {
		if err := t.Assign(name, plain[name]); err != nil {
			return fmt.Errorf("assign %s: %w", name, err)
		}
	}
	return AssignBatch(t, FromForm(values))
}

// Bind parses an url-encoded or multipart request body and assigns it to t
// with AssignForm.
func Bind(r *http.Request, t Target) error {
	values, err := formValues(r)
	if err != nil {
		return err
	}
	return AssignForm(t, values)
}

func formValues(r *http.Request) (url.Values, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, fmt.Errorf("%w: expected application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed content type", ErrInvalidForm)
	}

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		return r.PostForm, nil

	case "multipart/form-data":
		if !validBoundary(params["boundary"]) {
			return nil, fmt.Errorf("%w: invalid boundary parameter", ErrInvalidForm)
		}
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		if r.MultipartForm == nil {
			return url.Values{}, nil
		}
		return url.Values(r.MultipartForm.Value), nil

	default:
		return nil, fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mediaType)
	}
}

// validBoundary follows RFC 2046: 1 to 70 characters from a restricted set,
// not ending in a space.
func validBoundary(b string) bool {
	if len(b) == 0 || len(b) > 70 || strings.HasSuffix(b, " ") {
		return false
	}
	for _, c := range b {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.ContainsRune("'()+_,-./:=? ", c):
		default:
			return false
		}
	}
	return true
}
