package order_test

import (
	"testing"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name           string
		started        bool
		finished       bool
		hasActivePause bool
		want           order.Status
	}{
		{"fresh order", false, false, false, order.Created},
		{"started order", true, false, false, order.Running},
		{"started with open pause", true, false, true, order.Paused},
		{"never started with open pause", false, false, true, order.Paused},
		{"finished order", true, true, false, order.Finished},
		{"finished while paused", true, true, true, order.Finished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, order.DeriveStatus(tt.started, tt.finished, tt.hasActivePause))
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Created", order.Created.String())
	assert.Equal(t, "Running", order.Running.String())
	assert.Equal(t, "Paused", order.Paused.String())
	assert.Equal(t, "Finished", order.Finished.String())
	assert.Equal(t, "Unknown", order.Unknown.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range []order.Status{order.Created, order.Running, order.Paused, order.Finished} {
		require.NoError(t, s.Validate(), s.String())
	}

	require.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.Status(-1).Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.Status(99).Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Finished.IsTerminal())
	assert.False(t, order.Running.IsTerminal())
	assert.False(t, order.Paused.IsTerminal())
	assert.False(t, order.Created.IsTerminal())
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "OrderCreated", order.OrderCreated.String())
	assert.Equal(t, "OrderUpdated", order.OrderUpdated.String())
	assert.Equal(t, "Unknown", order.EventUnknown.String())
}
