package multiparam_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/datecheck/pkg/multiparam"
	"github.com/dmitrymomot/datecheck/pkg/temporal"
)

type money struct {
	cents    int
	currency string
}

func composeMoney(values []string) (any, error) {
	if len(values) != 2 {
		return nil, errors.New("want amount and currency")
	}
	cents, err := strconv.Atoi(values[0])
	if err != nil {
		return nil, err
	}
	return money{cents: cents, currency: values[1]}, nil
}

func personTarget() *fakeTarget {
	return newTarget(map[string]multiparam.Field{
		"date_of_birth": {Mode: temporal.ModeDate},
		"time_of_birth": {Mode: temporal.ModeTime},
		"registered_at": {Mode: temporal.ModeDateTime},
		"balance":       {Compose: composeMoney},
		"deposit":       {Compose: composeMoney},
		"name":          {},
	})
}

func TestAssignBatch(t *testing.T) {
	target := personTarget()
	err := multiparam.AssignBatch(target, []multiparam.Group{
		{Name: "date_of_birth", Values: map[int]string{1: "2006", 2: "1", 3: "11"}},
		{Name: "time_of_birth", Values: map[int]string{4: "6", 5: "45"}},
		{Name: "balance", Values: map[int]string{1: "1050", 2: "EUR"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "2006-01-11", target.assigned["date_of_birth"])
	assert.Equal(t, "06:45", target.assigned["time_of_birth"])
	assert.Equal(t, money{cents: 1050, currency: "EUR"}, target.assigned["balance"])
}

func TestAssignBatch_AllAbsentClears(t *testing.T) {
	target := personTarget()
	target.assigned["date_of_birth"] = "2000-01-01"

	err := multiparam.AssignBatch(target, []multiparam.Group{{Name: "date_of_birth"}})
	require.NoError(t, err)

	v, ok := target.assigned["date_of_birth"]
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestAssignBatch_AggregatesFailures(t *testing.T) {
	target := personTarget()
	err := multiparam.AssignBatch(target, []multiparam.Group{
		{Name: "balance", Values: map[int]string{1: "ten", 2: "EUR"}},
		{Name: "date_of_birth", Values: map[int]string{1: "2006", 2: "1", 3: "11"}},
		{Name: "deposit", Values: map[int]string{1: "5"}},
	})
	require.Error(t, err)
	assert.Equal(t, "2 error(s) on assignment of multiparameter attributes", err.Error())

	var batch *multiparam.AssignmentErrors
	require.ErrorAs(t, err, &batch)
	assert.Equal(t, []string{"balance", "deposit"}, batch.Fields())
	assert.Equal(t, []string{"ten", "EUR"}, batch.Errors[0].Values)
	assert.Contains(t, batch.Detail(), `error on assignment ["ten" "EUR"] to balance`)

	assert.Equal(t, "2006-01-11", target.assigned["date_of_birth"], "valid groups are still assigned")
}

func TestAssignBatch_ErrorKinds(t *testing.T) {
	assignErr := errors.New("read only")
	target := personTarget()
	target.failOn["registered_at"] = assignErr
	target.fields["exploding"] = multiparam.Field{Compose: func([]string) (any, error) { panic("boom") }}

	err := multiparam.AssignBatch(target, []multiparam.Group{
		{Name: "nickname", Values: map[int]string{1: "x"}},
		{Name: "name", Values: map[int]string{1: "x"}},
		{Name: "exploding", Values: map[int]string{1: "x"}},
		{Name: "registered_at", Values: map[int]string{1: "2006", 2: "1", 3: "11", 4: "1", 5: "2"}},
	})
	require.Error(t, err)

	var batch *multiparam.AssignmentErrors
	require.ErrorAs(t, err, &batch)
	require.Len(t, batch.Errors, 4)

	assert.ErrorIs(t, err, multiparam.ErrUnknownAttribute)
	assert.ErrorIs(t, err, multiparam.ErrNotComposite)
	assert.ErrorIs(t, err, multiparam.ErrComposePanic)
	assert.ErrorIs(t, err, assignErr)
	assert.ErrorIs(t, batch.Errors[2], multiparam.ErrComposePanic)
}

func TestAssignBatch_Empty(t *testing.T) {
	assert.NoError(t, multiparam.AssignBatch(personTarget(), nil))
}
