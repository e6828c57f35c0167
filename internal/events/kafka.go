package events

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(context.Context, string, ...kafka.Message) error
}

type schemaRegistrar interface {
	EnsureSchema(context.Context, string, string) (int, error)
}

// KafkaProducer lazily manages writers per topic.
type KafkaProducer struct {
	brokers []string
	mu      sync.Mutex
	writers map[string]*kafka.Writer
}

// NewKafkaProducer creates a KafkaProducer.
func NewKafkaProducer(brokers []string) *KafkaProducer {
	return &KafkaProducer{
		brokers: brokers,
		writers: make(map[string]*kafka.Writer),
	}
}

// WriteMessages writes messages to the given topic, creating a writer if necessary.
func (p *KafkaProducer) WriteMessages(ctx context.Context, topic string, msgs ...kafka.Message) error {
	writer := p.writerForTopic(topic)
	return writer.WriteMessages(ctx, msgs...)
}

func (p *KafkaProducer) writerForTopic(topic string) *kafka.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if writer, ok := p.writers[topic]; ok {
		return writer
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(p.brokers...),
		Topic:        topic,
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		Async:        false,
	}
	p.writers[topic] = writer
	return writer
}

// Close releases all writers.
func (p *KafkaProducer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for topic, writer := range p.writers {
		if err := writer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(p.writers, topic)
	}
	return firstErr
}

// KafkaPublisher delivers roster events through a producer, framing payloads
// with Schema Registry metadata when a registry is configured. Schema IDs are
// resolved once per subject and cached; concurrent request handlers share one
// publisher.
type KafkaPublisher struct {
	producer messageWriter
	registry schemaRegistrar
	topic    string
	subject  string
	schemaID sync.Map
}

// NewKafkaPublisher constructs a publisher for the given topic. A nil
// registry disables Confluent wire framing and payloads go out as bare JSON.
func NewKafkaPublisher(producer messageWriter, registry schemaRegistrar, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		registry: registry,
		topic:    topic,
		subject:  topic + "-value",
	}
}

// Publish implements Publisher.
func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	start := time.Now()

	payload, err := json.Marshal(event.Payload)
	if err != nil {
		recordPublishFailure(p.topic, event.Type)
		return fmt.Errorf("marshal %s payload: %w", event.Type, err)
	}

	value := payload
	if p.registry != nil {
		schemaID, err := p.ensureSchemaID(ctx, event.Type)
		if err != nil {
			recordPublishFailure(p.topic, event.Type)
			return err
		}
		value = encodeWireFormat(schemaID, payload)
	}

	msg := kafka.Message{
		Key:   []byte(event.PartitionKey),
		Value: value,
		Time:  time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "schema_subject", Value: []byte(p.subject)},
		},
	}

	if err := p.producer.WriteMessages(ctx, p.topic, msg); err != nil {
		recordPublishFailure(p.topic, event.Type)
		return fmt.Errorf("write %s event: %w", event.Type, err)
	}

	recordPublished(p.topic, event.Type, time.Since(start))
	return nil
}

func (p *KafkaPublisher) ensureSchemaID(ctx context.Context, eventType string) (int, error) {
	meta, ok := schemaCatalog[eventType]
	if !ok {
		return 0, fmt.Errorf("no schema metadata for event_type=%s", eventType)
	}

	cacheKey := fmt.Sprintf("%s::%s", p.subject, meta.Schema)
	if cached, found := p.schemaID.Load(cacheKey); found {
		return cached.(int), nil
	}

	id, err := p.registry.EnsureSchema(ctx, p.subject, meta.Schema)
	if err != nil {
		return 0, fmt.Errorf("ensure schema for %s: %w", p.subject, err)
	}
	p.schemaID.Store(cacheKey, id)
	return id, nil
}

// encodeWireFormat applies Confluent framing for Schema Registry aware payloads.
func encodeWireFormat(schemaID int, payload []byte) []byte {
	frame := make([]byte, 5+len(payload))
	frame[0] = 0
	binary.BigEndian.PutUint32(frame[1:5], uint32(schemaID))
	copy(frame[5:], payload)
	return frame
}
