package notifications

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"busline/internal/shared/config"

	"github.com/IBM/sarama"
)

// Publisher emits booking events after a commit has succeeded.
type Publisher interface {
	PublishBookingConfirmed(ctx context.Context, event BookingConfirmed) error
	Close() error
}

// KafkaProducerConfig contains configuration for the Kafka booking producer
type KafkaProducerConfig struct {
	Brokers          []string
	Topic            string
	RetryMax         int
	Timeout          time.Duration
	RequiredAcks     sarama.RequiredAcks
	CompressionType  sarama.CompressionCodec
	IdempotentWrites bool
	MaxMessageBytes  int
}

// ProducerConfigFromApp builds the producer config from the app config.
func ProducerConfigFromApp(cfg config.KafkaConfig) *KafkaProducerConfig {
	return &KafkaProducerConfig{
		Brokers:          cfg.Brokers,
		Topic:            cfg.BookingTopic,
		RetryMax:         cfg.RetryMax,
		Timeout:          cfg.Timeout,
		RequiredAcks:     sarama.WaitForAll,
		CompressionType:  sarama.CompressionSnappy,
		IdempotentWrites: true,
		MaxMessageBytes:  1000000, // 1MB
	}
}

func (c *KafkaProducerConfig) saramaConfig() *sarama.Config {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = c.RequiredAcks
	saramaConfig.Producer.Compression = c.CompressionType
	saramaConfig.Producer.Retry.Max = c.RetryMax
	saramaConfig.Producer.Timeout = c.Timeout
	saramaConfig.Producer.Idempotent = c.IdempotentWrites
	saramaConfig.Producer.MaxMessageBytes = c.MaxMessageBytes

	// Idempotent producers require a single in-flight request
	if c.IdempotentWrites {
		saramaConfig.Net.MaxOpenRequests = 1
	}

	// Hash partitioner so one booking always lands on the same partition
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner
	return saramaConfig
}

// KafkaPublisher publishes booking events to Kafka
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaPublisher connects a sync producer to the configured brokers
func NewKafkaPublisher(cfg *KafkaProducerConfig) (*KafkaPublisher, error) {
	producer, err := sarama.NewSyncProducer(cfg.Brokers, cfg.saramaConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.Printf("📤 Kafka booking producer created (topic %s)", cfg.Topic)
	return NewKafkaPublisherWithProducer(producer, cfg.Topic), nil
}

// NewKafkaPublisherWithProducer wraps an existing producer.
func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topic string) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

func (kp *KafkaPublisher) PublishBookingConfirmed(ctx context.Context, event BookingConfirmed) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     kp.topic,
		Key:       sarama.StringEncoder(event.PartitionKey()),
		Value:     sarama.ByteEncoder(payload),
		Headers:   kp.createHeaders(event),
		Timestamp: event.CreatedAt,
	}

	partition, offset, err := kp.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send booking event to Kafka: %w", err)
	}

	log.Printf("📤 Booking event %s sent (partition %d, offset %d)", event.BookingRef, partition, offset)
	return nil
}

func (kp *KafkaPublisher) createHeaders(event BookingConfirmed) []sarama.RecordHeader {
	return []sarama.RecordHeader{
		{Key: []byte("event_id"), Value: []byte(event.EventID.String())},
		{Key: []byte("event_type"), Value: []byte(event.Type)},
		{Key: []byte("booking_id"), Value: []byte(strconv.FormatUint(uint64(event.BookingID), 10))},
		{Key: []byte("user_id"), Value: []byte(event.UserID.String())},
		{Key: []byte("version"), Value: []byte("1.0")},
		{Key: []byte("producer"), Value: []byte("busline-bookings")},
	}
}

func (kp *KafkaPublisher) Close() error {
	if kp.producer != nil {
		return kp.producer.Close()
	}
	return nil
}

// NoopPublisher is used when Kafka is disabled.
type NoopPublisher struct{}

func (NoopPublisher) PublishBookingConfirmed(context.Context, BookingConfirmed) error { return nil }

func (NoopPublisher) Close() error { return nil }

// NewPublisher returns a Kafka publisher when enabled, otherwise a no-op.
func NewPublisher(cfg config.KafkaConfig) (Publisher, error) {
	if !cfg.Enabled {
		log.Printf("📭 Kafka disabled, booking events will not be published")
		return NoopPublisher{}, nil
	}
	return NewKafkaPublisher(ProducerConfigFromApp(cfg))
}
