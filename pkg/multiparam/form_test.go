package multiparam_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datecheck/pkg/multiparam"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		key  string
		name string
		pos  int
		ok   bool
	}{
		{"date_of_birth(1i)", "date_of_birth", 1, true},
		{"amount(2f)", "amount", 2, true},
		{"starts_at(4)", "starts_at", 4, true},
		{"date_of_birth", "", 0, false},
		{"date_of_birth(0i)", "", 0, false},
		{"date_of_birth(xi)", "", 0, false},
		{"(1i)", "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			name, pos, ok := multiparam.ParseKey(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.pos, pos)
		})
	}
}

func TestFromForm(t *testing.T) {
	values := url.Values{
		"date_of_death(3i)": {""},
		"date_of_birth(3i)": {"11"},
		"date_of_birth(1i)": {"2006"},
		"date_of_birth(2i)": {" 1 "},
		"date_of_death(1i)": {""},
		"name":              {"Henry"},
	}

	groups := multiparam.FromForm(values)
	require.Len(t, groups, 2)

	assert.Equal(t, "date_of_birth", groups[0].Name)
	assert.Equal(t, map[int]string{1: "2006", 2: "1", 3: "11"}, groups[0].Values)

	assert.Equal(t, "date_of_death", groups[1].Name)
	assert.Empty(t, groups[1].Values, "blank selects are absent")

	assert.Equal(t, map[string]string{"name": "Henry"}, multiparam.PlainValues(values))
}

func TestAssignForm(t *testing.T) {
	target := personTarget()
	err := multiparam.AssignForm(target, url.Values{
		"name":              {"Henry"},
		"date_of_birth(1i)": {"1963"},
		"date_of_birth(2i)": {"12"},
		"date_of_birth(3i)": {"8"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Henry", target.assigned["name"])
	assert.Equal(t, "1963-12-08", target.assigned["date_of_birth"])
}

func TestBind(t *testing.T) {
	t.Run("url encoded", func(t *testing.T) {
		body := url.Values{"date_of_birth(1i)": {"2006"}, "date_of_birth(2i)": {"1"}, "date_of_birth(3i)": {"11"}}
		req := httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader(body.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		target := personTarget()
		require.NoError(t, multiparam.Bind(req, target))
		assert.Equal(t, "2006-01-11", target.assigned["date_of_birth"])
	})

	t.Run("multipart", func(t *testing.T) {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		require.NoError(t, w.WriteField("time_of_birth(4i)", "7"))
		require.NoError(t, w.WriteField("time_of_birth(5i)", "5"))
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/validate", &buf)
		req.Header.Set("Content-Type", w.FormDataContentType())

		target := personTarget()
		require.NoError(t, multiparam.Bind(req, target))
		assert.Equal(t, "07:05", target.assigned["time_of_birth"])
	})

	t.Run("content type errors", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/validate", strings.NewReader("{}"))
		assert.ErrorIs(t, multiparam.Bind(req, personTarget()), multiparam.ErrMissingContentType)

		req.Header.Set("Content-Type", "application/json")
		assert.ErrorIs(t, multiparam.Bind(req, personTarget()), multiparam.ErrUnsupportedMediaType)

		req.Header.Set("Content-Type", "multipart/form-data; boundary=")
		assert.ErrorIs(t, multiparam.Bind(req, personTarget()), multiparam.ErrInvalidForm)
	})
}
