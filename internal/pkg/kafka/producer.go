package kafka

import (
	"Minbar/internal/api/config"
	"context"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// EngagementEvent is the analytics record published for every counted
// engagement write. Delivery is best effort; counters never depend on it.
type EngagementEvent struct {
	Kind       string    `json:"kind"`
	TargetID   uint64    `json:"target_id"`
	Action     string    `json:"action"`
	AnonHash   string    `json:"anon_hash"`
	OccurredAt time.Time `json:"occurred_at"`
}

const (
	ActionView   = "view"
	ActionLike   = "like"
	ActionUnlike = "unlike"
)

// Producer wraps an async sarama producer. The zero value is a
// disabled producer whose Publish is a no-op.
type Producer struct {
	producer sarama.AsyncProducer
	topic    string
}

func newSaramaConfig(kafkaCfg config.KafkaConfig) *sarama.Config {
	c := sarama.NewConfig()

	if kafkaCfg.Sasl.Enable {
		c.Net.SASL.Enable = true
		c.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		c.Net.SASL.User = kafkaCfg.Sasl.Username
		c.Net.SASL.Password = kafkaCfg.Sasl.Password
	}

	c.Producer.RequiredAcks = sarama.WaitForLocal
	c.Producer.Return.Errors = true
	c.Producer.Return.Successes = false

	return c
}

// NewProducer builds the engagement event producer. When kafka is
// disabled or no brokers are configured it returns a no-op producer.
func NewProducer(cfg config.KafkaConfig) (*Producer, error) {
	if !cfg.Enable || len(cfg.Brokers) == 0 {
		log.Info("Kafka disabled, engagement events will not be published")
		return &Producer{}, nil
	}

	producer, err := sarama.NewAsyncProducer(cfg.Brokers, newSaramaConfig(cfg))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka producer")
	}

	go func() {
		for perr := range producer.Errors() {
			log.Error("engagement event publish failed", "err", perr.Err)
		}
	}()

	return &Producer{producer: producer, topic: cfg.Topic}, nil
}

// Publish enqueues an event without blocking the request path.
func (p *Producer) Publish(ctx context.Context, event EngagementEvent) {
	if p == nil || p.producer == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.ErrorContext(ctx, "failed to marshal engagement event", "err", err)
		return
	}

	select {
	case p.producer.Input() <- &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.Kind),
		Value: sarama.ByteEncoder(payload),
	}:
	default:
		log.WarnContext(ctx, "engagement event dropped, producer queue full")
	}
}

// Close shuts the producer down.
func (p *Producer) Close() error {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
