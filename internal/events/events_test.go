package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var fixedTime = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func TestEncode(t *testing.T) {
	payload := map[string]any{"shortCode": "a1b2c3d4", "clickCount": 3}

	data, err := Encode(EventClicked, payload, fixedTime)
	require.NoError(t, err)

	message, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "Clicked", message[FieldEvent])
	assert.Equal(t, "2026-03-01T10:00:00Z", message[FieldOccurredAt])
	assert.Equal(t, "a1b2c3d4", message[FieldShortCode])
	assert.EqualValues(t, 3, message["clickCount"])

	// payload не изменяется
	assert.NotContains(t, payload, FieldEvent)
}

func TestEncode_Unsupported(t *testing.T) {
	_, err := Encode(EventCreated, map[string]any{"bad": make(chan int)}, fixedTime)

	require.Error(t, err)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode([]byte("not json"))

	require.Error(t, err)
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}

	assert.NoError(t, p.Publish(context.Background(), EventCreated, nil))
	assert.NoError(t, p.Close())
}

func TestLogPublisher(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	p := NewLogPublisher(zap.New(core))

	err := p.Publish(context.Background(), EventDeleted, map[string]any{"shortCode": "a1b2c3d4"})

	require.NoError(t, err)
	entries := logs.FilterMessage("Sending event").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Deleted", entries[0].ContextMap()["event"])
}

// fakeWriter запоминает отправленные в Kafka сообщения
type fakeWriter struct {
	mu       sync.Mutex
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	// Arrange
	writer := &fakeWriter{}
	p := newKafkaPublisher(writer)
	p.now = func() time.Time { return fixedTime }

	// Act
	err := p.Publish(context.Background(), EventCreated, map[string]any{
		"shortCode":   "a1b2c3d4",
		"originalUrl": "https://example.com",
	})

	// Assert
	require.NoError(t, err)
	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	assert.Equal(t, []byte("a1b2c3d4"), msg.Key)
	assert.Equal(t, []kafka.Header{{Key: "event", Value: []byte("Created")}}, msg.Headers)
	assert.JSONEq(t,
		`{"shortCode":"a1b2c3d4","originalUrl":"https://example.com","event":"Created","occurredAt":"2026-03-01T10:00:00Z"}`,
		string(msg.Value),
	)

	require.NoError(t, p.Close())
	assert.True(t, writer.closed)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	writerErr := errors.New("broker unavailable")
	p := newKafkaPublisher(&fakeWriter{err: writerErr})

	err := p.Publish(context.Background(), EventDeleted, map[string]any{"shortCode": "a1b2c3d4"})

	assert.ErrorIs(t, err, writerErr)
}

// fakeReader отдаёт заранее заданные сообщения, затем ждёт отмены контекста
type fakeReader struct {
	messages []kafka.Message
	errs     []error
}

func (r *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.errs) > 0 {
		err := r.errs[0]
		r.errs = r.errs[1:]
		return kafka.Message{}, err
	}
	if len(r.messages) > 0 {
		msg := r.messages[0]
		r.messages = r.messages[1:]
		return msg, nil
	}
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (r *fakeReader) Close() error {
	return nil
}

func TestKafkaConsumer_Run(t *testing.T) {
	// Arrange
	valid, err := Encode(EventCreated, map[string]any{"shortCode": "a1b2c3d4"}, fixedTime)
	require.NoError(t, err)

	reader := &fakeReader{
		errs: []error{errors.New("temporary failure")},
		messages: []kafka.Message{
			{Key: []byte("a1b2c3d4"), Value: valid, Offset: 1},
			{Key: []byte("broken"), Value: []byte("{"), Offset: 2},
		},
	}
	core, logs := observer.New(zap.InfoLevel)
	consumer := newKafkaConsumer(reader, zap.New(core))
	consumer.retryDelay = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	// Act
	go func() {
		consumer.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return logs.FilterMessage("Received event").Len() == 1 &&
			logs.FilterMessage("skipping malformed event").Len() == 1
	}, time.Second, 10*time.Millisecond)
	cancel()

	// Assert
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop after cancel")
	}
	assert.Equal(t, 1, logs.FilterMessage("kafka read failed").Len())
	received := logs.FilterMessage("Received event").All()[0]
	assert.Equal(t, "Created", received.ContextMap()["event"])
	assert.NoError(t, consumer.Close())
}

// fakeChannel запоминает публикации в RabbitMQ
type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
	closed   bool
}

func (c *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if c.err != nil {
		return c.err
	}
	c.exchange, c.key, c.msg = exchange, key, msg
	return nil
}

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

func TestRabbitPublisher_Publish(t *testing.T) {
	// Arrange
	channel := &fakeChannel{}
	p := newRabbitPublisher(channel, "url-events")
	p.now = func() time.Time { return fixedTime }

	// Act
	err := p.Publish(context.Background(), EventDeactivated, map[string]any{"shortCode": "a1b2c3d4"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "url-events", channel.exchange)
	assert.Equal(t, "url.deactivated", channel.key)
	assert.Equal(t, "application/json", channel.msg.ContentType)
	assert.Equal(t, amqp.Persistent, channel.msg.DeliveryMode)
	assert.Equal(t, "Deactivated", channel.msg.Type)
	assert.NotEmpty(t, channel.msg.MessageId)
	assert.Equal(t, "a1b2c3d4", channel.msg.Headers[FieldShortCode])
	assert.JSONEq(t,
		`{"shortCode":"a1b2c3d4","event":"Deactivated","occurredAt":"2026-03-01T10:00:00Z"}`,
		string(channel.msg.Body),
	)

	require.NoError(t, p.Close())
	assert.True(t, channel.closed)
}

func TestRabbitPublisher_Error(t *testing.T) {
	channelErr := errors.New("channel closed")
	p := newRabbitPublisher(&fakeChannel{err: channelErr}, "url-events")

	err := p.Publish(context.Background(), EventUpdated, map[string]any{"shortCode": "a1b2c3d4"})

	assert.ErrorIs(t, err, channelErr)
}

func TestRoutingKey(t *testing.T) {
	tests := map[string]string{
		EventCreated:     "url.created",
		EventUpdated:     "url.updated",
		EventDeactivated: "url.deactivated",
		EventDeleted:     "url.deleted",
		EventClicked:     "url.clicked",
	}

	for name, want := range tests {
		assert.Equal(t, want, RoutingKey(name))
	}
}
