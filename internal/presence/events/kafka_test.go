package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs     []kafka.Message
	err      error
	deadline bool
	closed   bool
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	_, f.deadline = ctx.Deadline()
	f.msgs = append(f.msgs, msgs...)
	return f.err
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestKafkaPublisherWritesKeyedJSON(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{writer: w, timeout: time.Second}

	at := time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC)
	ev := PresenceEvent{
		RecordID:   "01JREC",
		Action:     "CHECK_IN",
		UserID:     "01JUSER",
		LocationID: "01JLOC",
		ActionTime: at,
		RecordedAt: at,
	}
	require.NoError(t, p.Publish(context.Background(), ev))

	require.Len(t, w.msgs, 1)
	require.True(t, w.deadline)
	msg := w.msgs[0]
	require.Equal(t, []byte("01JUSER"), msg.Key)
	require.Equal(t, at, msg.Time)
	require.Equal(t, "action", msg.Headers[0].Key)

	var got PresenceEvent
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	require.Equal(t, ev, got)
	require.NotContains(t, string(msg.Value), "previousLocationId")

	require.NoError(t, p.Close())
	require.True(t, w.closed)
}

func TestKafkaPublisherIgnoresCallerCancellation(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker down")}
	p := &KafkaPublisher{writer: w, timeout: time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Publish(ctx, PresenceEvent{UserID: "u"})
	require.EqualError(t, err, "broker down")
	require.Len(t, w.msgs, 1)
}

func TestNewKafkaPublisherConfiguresTransport(t *testing.T) {
	p := NewKafkaPublisher(KafkaConfig{Broker: "localhost:9092", Topic: "presence"})
	w := p.writer.(*kafka.Writer)
	require.Equal(t, "presence", w.Topic)
	require.Nil(t, w.Transport)

	p = NewKafkaPublisher(KafkaConfig{Broker: "localhost:9092", Topic: "presence", Username: "u", Password: "p"})
	w = p.writer.(*kafka.Writer)
	require.NotNil(t, w.Transport)
}
