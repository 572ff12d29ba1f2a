package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hackgods/clinic-scheduling/internal/appointment"
)

// defaultMaxLen caps the stream so an unread audit trail cannot grow without bound.
const defaultMaxLen = 10000

// StreamPublisher appends engine events to a Redis stream with XADD.
type StreamPublisher struct {
	client *redis.Client
	stream string
	maxLen int64
}

func NewStreamPublisher(client *redis.Client, stream string) *StreamPublisher {
	return &StreamPublisher{client: client, stream: stream, maxLen: defaultMaxLen}
}

func (p *StreamPublisher) Publish(ctx context.Context, ev appointment.Event) error {
	values := map[string]any{
		"event_id":   ev.ID.String(),
		"event_type": ev.EventType,
		"payload":    string(ev.Payload),
		"created_at": ev.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if ev.AppointmentID != nil {
		values["appointment_id"] = ev.AppointmentID.String()
	}

	err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: p.maxLen,
		Approx: true,
		Values: values,
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", p.stream, err)
	}
	return nil
}
