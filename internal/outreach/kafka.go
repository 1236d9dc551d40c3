package outreach

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/hiresync/scheduler/internal/scheduling"
	"github.com/hiresync/scheduler/pkg/errors"
	"github.com/hiresync/scheduler/pkg/logger"
)

type KafkaConfig struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

// NewKafka publishes notification envelopes to the delivery topic.
// The downstream delivery subsystem (email/SMS/voice workers) consumes
// the topic and owns retries.
func NewKafka(cfg KafkaConfig, log logger.Logger) *KafkaNotifier {
	return &KafkaNotifier{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			WriteTimeout: 5 * time.Second,
		},
		log: log.With("kafka_notifier"),
	}
}

type KafkaNotifier struct {
	writer *kafka.Writer
	log    logger.Logger
}

// envelope is the wire form consumed by the delivery workers.
type envelope struct {
	Kind        scheduling.MessageKind `json:"kind"`
	InterviewID string                 `json:"interview_id"`
	Recipient   string                 `json:"recipient"`
	Email       string                 `json:"email,omitempty"`
	Phone       string                 `json:"phone,omitempty"`
	Subject     string                 `json:"subject"`
	Body        string                 `json:"body"`
	SentAt      time.Time              `json:"sent_at"`
}

func (k *KafkaNotifier) Send(ctx context.Context, to scheduling.Person, msg scheduling.Message) error {
	payload, err := json.Marshal(envelope{
		Kind:        msg.Kind,
		InterviewID: msg.InterviewID,
		Recipient:   to.ID,
		Email:       to.Email,
		Phone:       to.Phone,
		Subject:     msg.Subject,
		Body:        msg.Body,
		SentAt:      time.Now().UTC(),
	})
	if err != nil {
		return errors.WrapFail(err, "marshal notification envelope")
	}

	// Keyed by interview so one negotiation's messages stay ordered.
	err = k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.InterviewID),
		Value: payload,
	})
	return errors.WrapFail(err, "produce notification")
}

func (k *KafkaNotifier) Close() error {
	return errors.WrapFail(k.writer.Close(), "close kafka writer")
}

var _ scheduling.Notifier = (*KafkaNotifier)(nil)
