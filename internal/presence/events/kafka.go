package events

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

// KafkaConfig configures the Kafka publisher. Credentials are optional; when
// set, the connection uses SASL/PLAIN over TLS.
type KafkaConfig struct {
	Broker   string
	Topic    string
	Username string
	Password string
}

// messageWriter is the part of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes presence events keyed by user id, so one user's
// events land on one partition in commit order.
type KafkaPublisher struct {
	writer  messageWriter
	timeout time.Duration
}

func NewKafkaPublisher(cfg KafkaConfig) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Broker),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		WriteTimeout: 10 * time.Second,
	}
	if cfg.Username != "" {
		w.Transport = &kafka.Transport{
			SASL: plain.Mechanism{Username: cfg.Username, Password: cfg.Password},
			TLS:  &tls.Config{MinVersion: tls.VersionTLS12},
		}
	}
	return &KafkaPublisher{writer: w, timeout: 5 * time.Second}
}

func (p *KafkaPublisher) Publish(ctx context.Context, e PresenceEvent) error {
	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode presence event: %w", err)
	}

	// Detach from the request so a client disconnect does not drop the
	// event, but keep a bound on how long we wait for the broker.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.UserID),
		Value: value,
		Time:  e.RecordedAt,
		Headers: []kafka.Header{
			{Key: "action", Value: []byte(e.Action)},
		},
	})
}

func (p *KafkaPublisher) Close() error { return p.writer.Close() }
