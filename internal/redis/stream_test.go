package redisclient

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackgods/clinic-scheduling/internal/appointment"
	"github.com/hackgods/clinic-scheduling/internal/config"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := Connect(context.Background(), config.Config{RedisAddr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestStreamPublisher_Publish(t *testing.T) {
	_, client := newTestRedis(t)
	pub := NewStreamPublisher(client, "clinic:events")
	ctx := context.Background()

	apptID := uuid.New()
	ev := appointment.Event{
		ID:            uuid.New(),
		EventType:     appointment.EventAppointmentBooked,
		AppointmentID: &apptID,
		Payload:       []byte(`{"kind":"office"}`),
		CreatedAt:     time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, pub.Publish(ctx, ev))
	require.NoError(t, pub.Publish(ctx, appointment.Event{ID: uuid.New(), EventType: appointment.EventBillingIssued}))

	msgs, err := client.XRange(ctx, "clinic:events", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	first := msgs[0].Values
	assert.Equal(t, appointment.EventAppointmentBooked, first["event_type"])
	assert.Equal(t, apptID.String(), first["appointment_id"])
	assert.Equal(t, `{"kind":"office"}`, first["payload"])
	assert.Equal(t, "2026-10-14T09:00:00Z", first["created_at"])

	_, ok := msgs[1].Values["appointment_id"]
	assert.False(t, ok)
}

func TestStreamPublisher_ServerDown(t *testing.T) {
	mr, client := newTestRedis(t)
	pub := NewStreamPublisher(client, "clinic:events")
	mr.Close()

	err := pub.Publish(context.Background(), appointment.Event{ID: uuid.New(), EventType: appointment.EventAppointmentCanceled})
	assert.ErrorContains(t, err, "xadd clinic:events")
}

func TestConnect_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := Connect(context.Background(), config.Config{RedisAddr: addr})
	assert.ErrorContains(t, err, "ping redis")
}
