//go:build integration

package consumer

import (
	"context"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	kafkaContainer "github.com/testcontainers/testcontainers-go/modules/kafka"

	"github.com/mattOd80/skills-getting-started-with-github-copilot/internal/events"
)

func TestKafkaRosterEventLandsInAuditLog(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
	defer cancel()

	kafkaC, err := kafkaContainer.RunContainer(ctx, testcontainers.WithEnv(map[string]string{
		"KAFKA_AUTO_CREATE_TOPICS_ENABLE": "true",
	}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kafkaC.Terminate(context.Background()) })

	brokers, err := kafkaC.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	broker := brokers[0]

	topic := "roster_events"

	pool, cleanup := setupPostgres(t, ctx)
	defer cleanup()

	conn, err := kafka.Dial("tcp", broker)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.CreateTopics(kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     []string{broker},
		GroupID:     "roster-audit-integration",
		Topic:       topic,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.FirstOffset,
	})
	defer reader.Close()

	consumerCtx, stop := context.WithCancel(ctx)
	defer stop()

	proc := NewProcessor(reader, NewAuditHandler(pool))
	go func() {
		_ = proc.Run(consumerCtx)
	}()

	producer := events.NewKafkaProducer([]string{broker})
	defer producer.Close()
	publisher := events.NewKafkaPublisher(producer, nil, topic)

	err = publisher.Publish(ctx, events.Event{
		Type:         events.TypeStudentSignedUp,
		PartitionKey: "Chess Club",
		Payload: events.StudentSignedUp{
			EventID:         "4f8b9a52-6c1e-4b53-8e0a-64a4d2c3ab11",
			Activity:        "Chess Club",
			Email:           "new@mergington.edu",
			RosterSize:      3,
			MaxParticipants: 12,
			OccurredAt:      time.Now().UTC(),
		},
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		var count int
		if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM roster_event_log WHERE event_type = 'roster.signed_up'`).Scan(&count); err != nil {
			return false
		}
		return count >= 1
	}, 30*time.Second, 500*time.Millisecond)

	var activity, email string
	err = pool.QueryRow(ctx,
		`SELECT payload->>'activity', payload->>'email' FROM roster_event_log ORDER BY id DESC LIMIT 1`,
	).Scan(&activity, &email)
	require.NoError(t, err)
	require.Equal(t, "Chess Club", activity)
	require.Equal(t, "new@mergington.edu", email)
}
