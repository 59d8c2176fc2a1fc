package queue

import (
	"encoding/json"
	"testing"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	msg := ports.OutboxMessage{
		ID:          kernel.NewUUID(),
		EventName:   "shipment.status_changed",
		AggregateID: kernel.NewUUID(),
		Payload:     []byte(`{"to":"DELIVERED"}`),
		OccurredAt:  time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	}

	task, err := NewTask(msg)
	require.NoError(t, err)
	assert.Equal(t, "notify:shipment.status_changed", task.Type())

	var env Envelope
	require.NoError(t, json.Unmarshal(task.Payload(), &env))
	assert.Equal(t, msg.ID.String(), env.ID)
	assert.Equal(t, msg.AggregateID.String(), env.AggregateID)
	assert.True(t, msg.OccurredAt.Equal(env.OccurredAt))
	assert.JSONEq(t, `{"to":"DELIVERED"}`, string(env.Payload))
}

func TestDisabledPublisherRefusesMessages(t *testing.T) {
	p := NewPublisher(Config{})

	assert.False(t, p.Enabled())
	assert.ErrorIs(t, p.Publish(t.Context(), ports.OutboxMessage{ID: kernel.NewUUID()}), ErrPublisherDisabled)
	assert.NoError(t, p.Close())
}
