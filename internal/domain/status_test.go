package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, status := range AllStatuses {
		parsed, err := ParseStatus(string(status))
		require.NoError(t, err)
		require.Equal(t, status, parsed)
	}
}

func TestParseStatusUnknown(t *testing.T) {
	_, err := ParseStatus("SHIPPED")
	require.Error(t, err)
	require.Contains(t, err.Error(), "SHIPPED")
}

func TestStatusValid(t *testing.T) {
	require.True(t, StatusSentToStore.Valid())
	require.False(t, Status("").Valid())
	require.False(t, Status("sent_to_store").Valid())
}

func TestNewOrderSetsCreatedAtOnce(t *testing.T) {
	first := NewOrder(uuidMust(t), uuidMust(t))
	require.Equal(t, StatusNew, first.Status)
	require.False(t, first.CreatedAt.IsZero())
	require.Equal(t, "UTC", first.CreatedAt.Location().String())
}
