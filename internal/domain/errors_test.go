package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func uuidMust(t *testing.T) uuid.UUID {
	t.Helper()
	id, err := uuid.NewRandom()
	require.NoError(t, err)
	return id
}

func TestQueryExecutionErrorWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := &QueryExecutionError{
		Report: "store_statistic",
		Params: map[string]any{"lower_bound": "100"},
		Err:    cause,
	}

	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "store_statistic")
	require.Contains(t, err.Error(), "connection refused")

	var target *QueryExecutionError
	require.ErrorAs(t, error(err), &target)
	require.Equal(t, "store_statistic", target.Report)
}

func TestResultMappingErrorWrapping(t *testing.T) {
	cause := errors.New("cannot scan text into int64")
	err := &ResultMappingError{Report: "order_day_statistic", Err: cause}

	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "order_day_statistic")
}
