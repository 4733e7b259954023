package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"venuescout/internal/shared/config"

	"github.com/IBM/sarama"
)

// EventConsumer drains the inquiry event topic and hands events to the
// email service.
type EventConsumer interface {
	StartConsumers(ctx context.Context, numWorkers int) error
	Stop() error
	HealthCheck(ctx context.Context) error
}

type ConsumerConfig struct {
	Brokers              []string
	GroupID              string
	Topics               []string
	SessionTimeout       time.Duration
	HeartbeatInterval    time.Duration
	MaxProcessingTime    time.Duration
	AutoCommit           bool
	OffsetOldest         bool
	MaxRetries           int
	RetryBackoffDuration time.Duration
}

// NewConsumerConfig builds a consumer config from application config.
func NewConsumerConfig(cfg *config.Config) *ConsumerConfig {
	return &ConsumerConfig{
		Brokers:              cfg.Kafka.Brokers,
		GroupID:              cfg.Kafka.ConsumerGroup,
		Topics:               []string{cfg.Kafka.InquiryTopic},
		SessionTimeout:       30 * time.Second,
		HeartbeatInterval:    3 * time.Second,
		MaxProcessingTime:    5 * time.Minute,
		AutoCommit:           true,
		OffsetOldest:         false,
		MaxRetries:           3,
		RetryBackoffDuration: time.Second,
	}
}

type KafkaEventConsumer struct {
	consumerGroup sarama.ConsumerGroup
	config        *ConsumerConfig
	emailService  EmailService
	producer      EventProducer
	topics        []string
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewKafkaEventConsumer creates a consumer group for the inquiry topic. The
// producer is used to dead letter events that exhaust their retries; it may
// be nil, in which case failed events are dropped after logging.
func NewKafkaEventConsumer(config *ConsumerConfig, emailService EmailService, producer EventProducer) (EventConsumer, error) {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Consumer.Group.Session.Timeout = config.SessionTimeout
	saramaConfig.Consumer.Group.Heartbeat.Interval = config.HeartbeatInterval
	saramaConfig.Consumer.MaxProcessingTime = config.MaxProcessingTime
	saramaConfig.Consumer.Return.Errors = true

	if config.OffsetOldest {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	} else {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	}

	if config.AutoCommit {
		saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
		saramaConfig.Consumer.Offsets.AutoCommit.Interval = 1 * time.Second
	}

	consumerGroup, err := sarama.NewConsumerGroup(config.Brokers, config.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &KafkaEventConsumer{
		consumerGroup: consumerGroup,
		config:        config,
		emailService:  emailService,
		producer:      producer,
		topics:        config.Topics,
		ctx:           ctx,
		cancel:        cancel,
	}, nil
}

func (kec *KafkaEventConsumer) StartConsumers(ctx context.Context, numWorkers int) error {
	log.Printf("Starting %d notification workers for topics: %v", numWorkers, kec.topics)

	go kec.handleErrors()

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			kec.runWorker(ctx, workerID)
		}(i)
	}

	return nil
}

func (kec *KafkaEventConsumer) runWorker(ctx context.Context, workerID int) {
	handler := &consumerGroupHandler{
		consumer: kec,
		workerID: workerID,
	}

	for {
		select {
		case <-ctx.Done():
			log.Printf("Notification worker %d shutting down", workerID)
			return
		default:
			if err := kec.consumerGroup.Consume(ctx, kec.topics, handler); err != nil {
				log.Printf("Notification worker %d consume error: %v", workerID, err)
				time.Sleep(time.Second)
			}
		}
	}
}

func (kec *KafkaEventConsumer) handleErrors() {
	for err := range kec.consumerGroup.Errors() {
		log.Printf("Consumer group error: %v", err)
	}
}

func (kec *KafkaEventConsumer) Stop() error {
	kec.cancel()

	if err := kec.consumerGroup.Close(); err != nil {
		return fmt.Errorf("failed to close consumer group: %w", err)
	}
	return nil
}

func (kec *KafkaEventConsumer) HealthCheck(ctx context.Context) error {
	select {
	case <-kec.ctx.Done():
		return fmt.Errorf("consumer context is cancelled")
	default:
		if kec.emailService == nil {
			return fmt.Errorf("email service not configured")
		}
		return nil
	}
}

type consumerGroupHandler struct {
	consumer *KafkaEventConsumer
	workerID int
}

func (h *consumerGroupHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message := <-claim.Messages():
			if message == nil {
				return nil
			}

			if err := h.processMessage(session.Context(), message); err != nil {
				log.Printf("Worker %d: failed to process message at offset %d: %v",
					h.workerID, message.Offset, err)
			}
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}

func (h *consumerGroupHandler) processMessage(ctx context.Context, message *sarama.ConsumerMessage) error {
	var event InquiryEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal inquiry event: %w", err)
	}

	if err := h.executeWithRetry(ctx, &event); err != nil {
		h.deadLetter(ctx, &event, err)
		return err
	}

	return nil
}

func (h *consumerGroupHandler) executeWithRetry(ctx context.Context, event *InquiryEvent) error {
	maxRetries := h.consumer.config.MaxRetries
	backoff := h.consumer.config.RetryBackoffDuration

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := h.consumer.emailService.SendEvent(ctx, event)
		if err == nil {
			return nil
		}

		if attempt == maxRetries {
			return err
		}

		event.RetryCount = attempt + 1

		// Exponential backoff
		delay := backoff * time.Duration(1<<attempt)

		select {
		case <-time.After(delay):
			continue
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return nil
}

func (h *consumerGroupHandler) deadLetter(ctx context.Context, event *InquiryEvent, cause error) {
	if h.consumer.producer == nil {
		log.Printf("Worker %d: dropping event %s, no dead letter producer configured",
			h.workerID, event.ID)
		return
	}

	if err := h.consumer.producer.PublishDeadLetter(ctx, event, cause); err != nil {
		log.Printf("Worker %d: failed to dead letter event %s: %v", h.workerID, event.ID, err)
	}
}
