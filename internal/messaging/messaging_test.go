package messaging

import (
	"context"
	"errors"
	"testing"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandon-nx/Food-Ordering-System/internal/logger"
	"github.com/brandon-nx/Food-Ordering-System/internal/models"
)

type recordingAcker struct {
	acked   []uint64
	nacked  []uint64
	requeue []bool
}

func (a *recordingAcker) Ack(tag uint64, multiple bool) error {
	a.acked = append(a.acked, tag)
	return nil
}

func (a *recordingAcker) Nack(tag uint64, multiple, requeue bool) error {
	a.nacked = append(a.nacked, tag)
	a.requeue = append(a.requeue, requeue)
	return nil
}

func (a *recordingAcker) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

func TestProcessMessage_AckNackPolicy(t *testing.T) {
	tests := []struct {
		name        string
		handlerErr  error
		wantAck     bool
		wantRequeue bool
	}{
		{name: "success acks", handlerErr: nil, wantAck: true},
		{name: "transient failure requeues", handlerErr: errors.New("temporary"), wantRequeue: true},
		{name: "discard drops", handlerErr: ErrDiscard, wantRequeue: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acker := &recordingAcker{}
			c := NewConsumer(nil, logger.NewNop(), NotificationsQueue, "test", 1)

			var got []byte
			c.processMessage(context.Background(), amqp091.Delivery{
				Acknowledger: acker,
				DeliveryTag:  7,
				Body:         []byte("hello"),
			}, func(ctx context.Context, body []byte) error {
				got = body
				return tt.handlerErr
			})

			assert.Equal(t, "hello", string(got))
			if tt.wantAck {
				assert.Equal(t, []uint64{7}, acker.acked)
				assert.Empty(t, acker.nacked)
				return
			}
			assert.Empty(t, acker.acked)
			require.Len(t, acker.nacked, 1)
			assert.Equal(t, tt.wantRequeue, acker.requeue[0])
		})
	}
}

func TestEncodeNotification(t *testing.T) {
	n, err := models.NewNotification(models.NotificationLowStock, models.StockAlertMessage{
		Restaurant: "Yummy Restaurant",
		ItemName:   "Cola",
		Remaining:  3,
		Threshold:  5,
	})
	require.NoError(t, err)

	p, err := encodeNotification(n)
	require.NoError(t, err)
	assert.Equal(t, "application/json", p.ContentType)
	assert.Equal(t, "low_stock", p.Type)
	assert.Equal(t, amqp091.Persistent, p.DeliveryMode)

	back, err := models.ParseNotification(p.Body)
	require.NoError(t, err)
	assert.Equal(t, models.NotificationLowStock, back.Type)
}
