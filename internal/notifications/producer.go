package notifications

import (
	"context"
	"fmt"
	"log"
	"time"

	"venuescout/internal/shared/config"

	"github.com/IBM/sarama"
)

// EventProducer publishes inquiry events to the notification topic.
type EventProducer interface {
	PublishEvent(ctx context.Context, event *InquiryEvent) error
	PublishDeadLetter(ctx context.Context, event *InquiryEvent, cause error) error
	Close() error
	HealthCheck(ctx context.Context) error
}

// ProducerConfig contains configuration for the Kafka event producer.
type ProducerConfig struct {
	Brokers          []string
	Topic            string
	DeadLetterTopic  string
	RetryMax         int
	Timeout          time.Duration
	RequiredAcks     sarama.RequiredAcks
	CompressionType  sarama.CompressionCodec
	IdempotentWrites bool
	MaxMessageBytes  int
}

// NewProducerConfig builds a producer config from application config.
func NewProducerConfig(cfg *config.Config) *ProducerConfig {
	return &ProducerConfig{
		Brokers:          cfg.Kafka.Brokers,
		Topic:            cfg.Kafka.InquiryTopic,
		DeadLetterTopic:  cfg.Kafka.DeadLetterTopic,
		RetryMax:         3,
		Timeout:          10 * time.Second,
		RequiredAcks:     sarama.WaitForAll,
		CompressionType:  sarama.CompressionSnappy,
		IdempotentWrites: true,
		MaxMessageBytes:  1000000, // 1MB
	}
}

// KafkaEventProducer publishes inquiry events to Kafka.
type KafkaEventProducer struct {
	producer sarama.SyncProducer
	config   *ProducerConfig
}

// NewKafkaEventProducer creates a new Kafka event producer.
func NewKafkaEventProducer(config *ProducerConfig) (EventProducer, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Compression = config.CompressionType
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = config.Timeout
	saramaConfig.Producer.Idempotent = config.IdempotentWrites
	saramaConfig.Producer.MaxMessageBytes = config.MaxMessageBytes

	if config.IdempotentWrites {
		saramaConfig.Net.MaxOpenRequests = 1
	}

	// Hash partitioner keeps all events for one inquiry on one partition
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &KafkaEventProducer{
		producer: producer,
		config:   config,
	}, nil
}

// PublishEvent publishes a single inquiry event to Kafka.
func (kep *KafkaEventProducer) PublishEvent(ctx context.Context, event *InquiryEvent) error {
	messageBytes, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal inquiry event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     kep.config.Topic,
		Key:       sarama.StringEncoder(event.GetPartitionKey()),
		Value:     sarama.ByteEncoder(messageBytes),
		Headers:   kep.createHeaders(event),
		Timestamp: event.CreatedAt,
	}

	partition, offset, err := kep.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send inquiry event to Kafka: %w", err)
	}

	log.Printf("Inquiry event published - Topic: %s, Partition: %d, Offset: %d, Type: %s, Inquiry: %s",
		kep.config.Topic, partition, offset, event.Type, event.InquiryID)

	return nil
}

// PublishDeadLetter routes an event the consumer could not process to the
// dead letter topic with the failure cause attached.
func (kep *KafkaEventProducer) PublishDeadLetter(ctx context.Context, event *InquiryEvent, cause error) error {
	messageBytes, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal dead letter event: %w", err)
	}

	headers := kep.createHeaders(event)
	headers = append(headers, sarama.RecordHeader{
		Key:   []byte("failure_cause"),
		Value: []byte(cause.Error()),
	})

	message := &sarama.ProducerMessage{
		Topic:   kep.config.DeadLetterTopic,
		Key:     sarama.StringEncoder(event.GetPartitionKey()),
		Value:   sarama.ByteEncoder(messageBytes),
		Headers: headers,
	}

	partition, offset, err := kep.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send event to dead letter topic: %w", err)
	}

	log.Printf("Inquiry event dead lettered - Topic: %s, Partition: %d, Offset: %d, Inquiry: %s",
		kep.config.DeadLetterTopic, partition, offset, event.InquiryID)

	return nil
}

func (kep *KafkaEventProducer) createHeaders(event *InquiryEvent) []sarama.RecordHeader {
	headers := []sarama.RecordHeader{
		{Key: []byte("event_id"), Value: []byte(event.ID.String())},
		{Key: []byte("event_type"), Value: []byte(event.Type)},
		{Key: []byte("priority"), Value: []byte(event.Priority)},
		{Key: []byte("inquiry_id"), Value: []byte(event.InquiryID.String())},
		{Key: []byte("version"), Value: []byte("1.0")},
		{Key: []byte("producer"), Value: []byte("venuescout-inquiries")},
		{Key: []byte("created_at"), Value: []byte(event.CreatedAt.Format(time.RFC3339))},
	}

	if event.ToStatus != "" {
		headers = append(headers, sarama.RecordHeader{
			Key:   []byte("to_status"),
			Value: []byte(event.ToStatus),
		})
	}

	return headers
}

// Close closes the Kafka producer.
func (kep *KafkaEventProducer) Close() error {
	if kep.producer != nil {
		if err := kep.producer.Close(); err != nil {
			return fmt.Errorf("failed to close Kafka producer: %w", err)
		}
	}
	return nil
}

// HealthCheck validates the producer is configured and reachable enough to
// accept messages.
func (kep *KafkaEventProducer) HealthCheck(ctx context.Context) error {
	if kep.producer == nil {
		return fmt.Errorf("health check failed - producer is nil")
	}
	if kep.config.Topic == "" {
		return fmt.Errorf("health check failed - inquiry topic not configured")
	}
	return nil
}
