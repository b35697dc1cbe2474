package model_test

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datecheck/pkg/model"
	"github.com/dmitrymomot/datecheck/pkg/multiparam"
	"github.com/dmitrymomot/datecheck/pkg/temporal"
	"github.com/dmitrymomot/datecheck/pkg/validator"
)

func people(t *testing.T, opts ...model.Option) *model.Schema {
	t.Helper()
	s := model.NewSchema("person", opts...)
	require.NoError(t, s.Define(model.String("name"), model.Date("date_of_death")))
	require.NoError(t, s.ValidatesDate("date_of_birth", validator.AllowBlank()))
	return s
}

func jonathan(t *testing.T, s *model.Schema) *model.Record {
	t.Helper()
	p := s.New()
	require.NoError(t, p.Set("name", "Jonathan"))
	return p
}

func TestRecord_NoDateChecking(t *testing.T) {
	p := jonathan(t, people(t))

	assert.NoError(t, p.Update(map[string]any{"date_of_birth": nil, "date_of_death": nil}))
	assert.NoError(t, p.Update(map[string]any{"date_of_death": "All Blacks"}), "date_of_death is not validated")

	_, ok := p.Temporal("date_of_death")
	assert.False(t, ok)
	assert.Equal(t, "All Blacks", p.RawValue("date_of_death"))
}

func TestRecord_NumericFormat(t *testing.T) {
	p := jonathan(t, people(t))

	tests := map[string]string{
		"1/1/01":     "2001-01-01",
		"29/10/2005": "2005-10-29",
		` 8\12\63`:   "1963-12-08",
		`11\1\06`:    "2006-01-11",
	}
	for input, want := range tests {
		require.NoError(t, p.Update(map[string]any{"date_of_birth": input}), input)
		got, ok := p.Temporal("date_of_birth")
		require.True(t, ok, input)
		assert.Equal(t, want, got.String(), input)
	}

	err := p.Update(map[string]any{"date_of_birth": "30/2/06"})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidRecord)
	assert.Equal(t, []string{"is an invalid date"}, p.Errors().Get("date_of_birth"))
}

func TestRecord_NamedMonthFormat(t *testing.T) {
	p := jonathan(t, people(t))

	require.NoError(t, p.Update(map[string]any{"date_of_birth": "16 MaR 60"}))
	got, _ := p.Temporal("date_of_birth")
	assert.Equal(t, "1960-03-16", got.String())

	require.NoError(t, p.Update(map[string]any{"date_of_birth": "22 dec 1985 "}))
	got, _ = p.Temporal("date_of_birth")
	assert.Equal(t, "1985-12-22", got.String())

	assert.Error(t, p.Update(map[string]any{"date_of_birth": "1 Jaw 00"}))
}

func TestRecord_InvalidFormats(t *testing.T) {
	p := jonathan(t, people(t))

	for _, input := range []string{
		"aksjhdaksjhd", "meow", "chocolate",
		"221 jan 05", "21 JAN 001",
		"1/2/3/4", "11/22/33", "10/10/990", "189 /1 /9", `12\ f m`,
	} {
		err := p.Update(map[string]any{"date_of_birth": input})
		assert.ErrorIs(t, err, model.ErrInvalidRecord, input)
		assert.True(t, validator.IsValidationError(err), input)
	}
}

func TestRecord_RepeatedValidation(t *testing.T) {
	p := jonathan(t, people(t))
	require.NoError(t, p.Set("date_of_birth", "1 Jan 06"))

	assert.True(t, p.Valid())
	assert.True(t, p.Valid())

	require.NoError(t, p.Set("date_of_birth", "meow"))
	assert.False(t, p.Valid())
	assert.False(t, p.Valid())
	assert.Len(t, p.Errors(), 1, "errors do not pile up between passes")
}

func TestRecord_DateObjects(t *testing.T) {
	p := jonathan(t, people(t))

	require.NoError(t, p.Update(map[string]any{"date_of_birth": time.Date(2006, 1, 1, 0, 0, 0, 0, time.UTC)}))
	got, _ := p.Temporal("date_of_birth")
	assert.Equal(t, "2006-01-01", got.String())

	require.NoError(t, p.Update(map[string]any{"date_of_birth": "1 Jan 05"}))
	got, _ = p.Temporal("date_of_birth")
	assert.Equal(t, "2005-01-01", got.String())

	v, err := temporal.Date(1963, 4, 5)
	require.NoError(t, err)
	require.NoError(t, p.Update(map[string]any{"date_of_birth": v}))
	got, _ = p.Temporal("date_of_birth")
	assert.Equal(t, "1963-04-05", got.String())
}

func TestRecord_BlankDateObjects(t *testing.T) {
	var zero time.Time
	for _, blank := range []any{(*time.Time)(nil), &zero, zero, temporal.Value{}} {
		p := jonathan(t, people(t))
		require.NoError(t, p.Update(map[string]any{"date_of_birth": blank}), "%#v", blank)
		assert.Empty(t, p.Errors(), "%#v", blank)

		_, ok := p.Temporal("date_of_birth")
		assert.False(t, ok)
	}
}

func TestRecord_Restrictions(t *testing.T) {
	s := model.NewSchema("person")
	require.NoError(t, s.Define(model.Date("date_of_death")))
	require.NoError(t, s.ValidatesDate("date_of_birth",
		validator.After(validator.Value("1 Jan 1900")),
		validator.Before(validator.Field("date_of_death"))))

	p := s.New()
	require.NoError(t, p.Set("date_of_birth", "1 Jan 1950"))
	assert.True(t, p.Valid(), "unset sibling is skipped")

	require.NoError(t, p.Set("date_of_death", "1 Jan 1940"))
	assert.False(t, p.Valid())
	assert.Equal(t, []string{"must be before Date of death"}, p.Errors().Get("date_of_birth"))
	assert.Equal(t, []validator.ErrorKind{validator.KindBefore}, p.Errors().Kinds("date_of_birth"))

	require.NoError(t, p.Set("date_of_birth", "1/1/1900"))
	assert.False(t, p.Valid())
	assert.Equal(t, []string{"must be after 1900-01-01"}, p.Errors().Get("date_of_birth"))
}

func TestRecord_USFormat(t *testing.T) {
	s := people(t, model.WithParser(temporal.New(temporal.WithUSDateFormat(true))))
	p := s.New()

	require.NoError(t, p.Update(map[string]any{"date_of_birth": "11/22/33"}))
	got, _ := p.Temporal("date_of_birth")
	assert.Equal(t, "2033-11-22", got.String())
}

func TestRecord_Set(t *testing.T) {
	p := people(t).New()

	err := p.Set("shoe_size", 42)
	assert.ErrorIs(t, err, model.ErrUnknownAttribute)

	require.NoError(t, p.Set("name", 42))
	assert.Equal(t, "42", p.Get("name"))
	assert.Equal(t, 42, p.RawValue("name"))

	require.NoError(t, p.Set("name", nil))
	assert.Nil(t, p.Get("name"))

	require.NoError(t, p.Set("date_of_birth", "1/2/2003"))
	assert.Equal(t, map[string]string{"date_of_birth": "2003-02-01"}, p.Values())
	assert.Equal(t, p.Get("date_of_birth"), p.FieldValue("date_of_birth"))
	assert.Nil(t, p.FieldValue("date_of_death"))
}

type money struct {
	cents    int
	currency string
}

func TestRecord_Multiparameter(t *testing.T) {
	s := people(t)
	require.NoError(t, s.Define(model.Composite("balance", func(values []string) (any, error) {
		if len(values) != 2 {
			return nil, errors.New("want amount and currency")
		}
		cents, err := strconv.Atoi(values[0])
		if err != nil {
			return nil, err
		}
		return money{cents: cents, currency: strings.ToUpper(values[1])}, nil
	})))
	require.NoError(t, s.ValidatesTime("time_of_birth", validator.AllowBlank()))

	t.Run("assembles dates and composites", func(t *testing.T) {
		p := s.New()
		err := multiparam.AssignForm(p, url.Values{
			"name":              {"Henry"},
			"date_of_birth(1i)": {"2006"},
			"date_of_birth(2i)": {"1"},
			"date_of_birth(3i)": {"11"},
			"time_of_birth(4i)": {"9"},
			"time_of_birth(5i)": {"5"},
			"balance(1i)":       {"1050"},
			"balance(2)":        {"eur"},
		})
		require.NoError(t, err)
		assert.True(t, p.Valid())

		dob, _ := p.Temporal("date_of_birth")
		assert.Equal(t, "2006-01-11", dob.String())
		tob, _ := p.Temporal("time_of_birth")
		assert.Equal(t, "09:05:00", tob.String())
		assert.Equal(t, money{cents: 1050, currency: "EUR"}, p.Get("balance"))
	})

	t.Run("blank selects clear the attribute", func(t *testing.T) {
		p := s.New()
		require.NoError(t, p.Set("date_of_birth", "1 Jan 2000"))
		require.NoError(t, multiparam.AssignForm(p, url.Values{
			"date_of_birth(1i)": {""}, "date_of_birth(2i)": {""}, "date_of_birth(3i)": {""},
		}))
		assert.Nil(t, p.RawValue("date_of_birth"))
		assert.True(t, p.Valid())
	})

	t.Run("partial date reaches validation", func(t *testing.T) {
		p := s.New()
		require.NoError(t, multiparam.AssignForm(p, url.Values{"date_of_birth(1i)": {"2006"}}))
		assert.Equal(t, "2006", p.RawValue("date_of_birth"))
		assert.False(t, p.Valid())
		assert.Equal(t, []validator.ErrorKind{validator.KindFormat}, p.Errors().Kinds("date_of_birth"))
	})

	t.Run("malformed composites fail together", func(t *testing.T) {
		p := s.New()
		err := multiparam.AssignBatch(p, []multiparam.Group{
			{Name: "balance", Values: map[int]string{1: "ten", 2: "eur"}},
			{Name: "unknown", Values: map[int]string{1: "x"}},
		})
		var batch *multiparam.AssignmentErrors
		require.ErrorAs(t, err, &batch)
		assert.Equal(t, []string{"balance", "unknown"}, batch.Fields())
		assert.ErrorIs(t, err, multiparam.ErrUnknownAttribute)
	})
}

func TestRecord_ErrorDetails(t *testing.T) {
	p := people(t).New()
	require.NoError(t, p.Set("date_of_birth", "meow"))
	require.False(t, p.Valid())

	errs := p.Errors().GetErrors("date_of_birth")
	require.Len(t, errs, 1)
	assert.Equal(t, "validation.invalid_date", errs[0].TranslationKey)

	p.AddError("name", validator.KindFormat, "is odd")
	assert.Equal(t, []string{"is odd"}, p.Errors().Get("name"))
}
