package kafka_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	sellerkafka "sellerops/internal/adapters/out/kafka"
	"sellerops/internal/core/domain/model/kernel"
	"sellerops/internal/pkg/logger"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockMessageWriter struct{ mock.Mock }

func (m *MockMessageWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockMessageWriter) Close() error {
	return m.Called().Error(0)
}

var occurredAt = time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

func TestPublisher_Publish_KeysByAggregateID(t *testing.T) {
	writer := &MockMessageWriter{}
	var written []kafka.Message
	writer.On("WriteMessages", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			written = args.Get(1).([]kafka.Message)
		}).
		Return(nil).
		Once()

	publisher := sellerkafka.NewPublisher(writer, time.Second, logger.Nop())
	err := publisher.Publish(context.Background(),
		kernel.LifecycleEvent{Aggregate: "order", ID: "ORD-1", Status: "CANCELLED", OccurredAt: occurredAt},
		kernel.LifecycleEvent{Aggregate: "shipment", ID: "SHIP-1", Status: "SHIPPED", OccurredAt: occurredAt},
	)

	require.NoError(t, err)
	require.Len(t, written, 2)
	assert.Equal(t, "ORD-1", string(written[0].Key))
	assert.Equal(t, "SHIP-1", string(written[1].Key))
	assert.Equal(t, occurredAt, written[0].Time)
	assert.Equal(t, "aggregate", written[0].Headers[0].Key)
	assert.Equal(t, "order", string(written[0].Headers[0].Value))

	var decoded kernel.LifecycleEvent
	require.NoError(t, json.Unmarshal(written[0].Value, &decoded))
	assert.Equal(t, "CANCELLED", decoded.Status)
	assert.JSONEq(t,
		`{"aggregate":"order","id":"ORD-1","status":"CANCELLED","occurred_at":"2024-03-10T09:30:00Z"}`,
		string(written[0].Value))
	writer.AssertExpectations(t)
}

func TestPublisher_Publish_NoEvents_DoesNotWrite(t *testing.T) {
	writer := &MockMessageWriter{}

	err := sellerkafka.NewPublisher(writer, 0, nil).Publish(context.Background())

	require.NoError(t, err)
	writer.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
}

func TestPublisher_Publish_WriterError_IsWrapped(t *testing.T) {
	writer := &MockMessageWriter{}
	brokerDown := errors.New("dial tcp: connection refused")
	writer.On("WriteMessages", mock.Anything, mock.Anything).Return(brokerDown).Once()

	err := sellerkafka.NewPublisher(writer, time.Second, logger.Nop()).Publish(context.Background(),
		kernel.LifecycleEvent{Aggregate: "refund", ID: "TXN-1", Status: "PROCESSED", OccurredAt: occurredAt},
	)

	require.ErrorIs(t, err, brokerDown)
	assert.Contains(t, err.Error(), "write 1 lifecycle events")
}

func TestPublisher_Close(t *testing.T) {
	writer := &MockMessageWriter{}
	writer.On("Close").Return(nil).Once()

	require.NoError(t, sellerkafka.NewPublisher(writer, time.Second, logger.Nop()).Close())
	writer.AssertExpectations(t)
}

func TestNewWriter(t *testing.T) {
	_, err := sellerkafka.NewWriter(sellerkafka.Config{Brokers: []string{"localhost:9092"}})
	require.ErrorIs(t, err, sellerkafka.ErrTopicIsRequired)

	_, err = sellerkafka.NewWriter(sellerkafka.Config{Topic: "sellerops.lifecycle"})
	require.Error(t, err)

	writer, err := sellerkafka.NewWriter(sellerkafka.Config{
		Brokers: []string{"localhost:9092"},
		Topic:   "sellerops.lifecycle",
	})
	require.NoError(t, err)
	assert.Equal(t, "sellerops.lifecycle", writer.Topic)
	assert.Equal(t, sellerkafka.DefaultBatchTimeout, writer.BatchTimeout)
	assert.IsType(t, &kafka.Hash{}, writer.Balancer)
}
