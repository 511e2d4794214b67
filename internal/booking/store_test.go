package booking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fareboard/fareboard/internal/booking"
)

func TestStore_Lifecycle(t *testing.T) {
	store := booking.NewStore()

	assert.Equal(t, booking.StatusLoading, store.Status())
	assert.Nil(t, store.Snapshot())
	assert.Nil(t, store.Records())

	store.Load(nil)
	assert.Equal(t, booking.StatusEmpty, store.Status())
	require.NotNil(t, store.Snapshot())
	assert.Empty(t, store.Records())

	store.Load([]booking.Record{{Route: "AKLDEL"}})
	assert.Equal(t, booking.StatusReady, store.Status())
	assert.Len(t, store.Records(), 1)
}

func TestStore_ReloadSwapsSnapshot(t *testing.T) {
	store := booking.NewStore()

	store.Load([]booking.Record{{Route: "AKLDEL"}})
	first := store.Snapshot()
	require.NotNil(t, first)

	store.Load([]booking.Record{{Route: "SYDBKK"}, {Route: "AKLDEL"}})
	second := store.Snapshot()
	require.NotNil(t, second)

	// The old snapshot is untouched by the reload.
	assert.Len(t, first.Records, 1)
	assert.Len(t, second.Records, 2)
	assert.False(t, second.LoadedAt.Before(first.LoadedAt))
}
