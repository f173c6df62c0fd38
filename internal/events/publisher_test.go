package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/internal/events"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestKafkaPublisher_Publish(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("keyed by order number", func(t *testing.T) {
		w := &fakeWriter{}
		p := events.NewPublisher(logger, w)

		event := entities.OrderEvent{
			Type:        entities.EventOrderPaid,
			OrderNumber: "ORD_1",
			Status:      entities.StatusPaid,
			TotalPrice:  50000,
			Currency:    "INR",
			PaymentID:   "pay_1",
			OccurredAt:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}
		require.NoError(t, p.Publish(context.Background(), event))
		require.Len(t, w.msgs, 1)

		msg := w.msgs[0]
		assert.Equal(t, "ORD_1", string(msg.Key))
		assert.Equal(t, "order.paid", string(msg.Headers[0].Value))

		var got entities.OrderEvent
		require.NoError(t, json.Unmarshal(msg.Value, &got))
		assert.Equal(t, event, got)
	})

	t.Run("writer error", func(t *testing.T) {
		p := events.NewPublisher(logger, &fakeWriter{err: errors.New("broker down")})
		assert.Error(t, p.Publish(context.Background(), entities.OrderEvent{OrderNumber: "ORD_1"}))
	})
}
