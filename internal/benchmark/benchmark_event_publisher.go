package benchmark

import (
	"context"
	"encoding/json"

	"salary-bench/internal/events"

	"github.com/segmentio/kafka-go"
)

type EventPublisher interface {
	PublishBenchmarkCompleted(ctx context.Context, report Report) error
}

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type noopEventPublisher struct{}

func (noopEventPublisher) PublishBenchmarkCompleted(context.Context, Report) error {
	return nil
}

type kafkaEventPublisher struct {
	writer MessageWriter
}

func NewKafkaEventPublisher(writer MessageWriter) EventPublisher {
	return &kafkaEventPublisher{writer: writer}
}

func newBenchmarkCompletedEvent(report Report) events.BenchmarkCompletedEvent {
	event := events.BenchmarkCompletedEvent{
		EventType:   "benchmark.completed",
		RunID:       report.ID,
		Department:  report.Department,
		Divergences: len(report.Divergences),
		OccurredAt:  report.StartedAt,
	}
	for _, r := range report.Results {
		event.Variants = append(event.Variants, events.VariantTiming{
			Variant:   string(r.Variant),
			Rows:      r.Count,
			ElapsedMS: r.Elapsed.Milliseconds(),
		})
	}
	return event
}

func (p *kafkaEventPublisher) PublishBenchmarkCompleted(ctx context.Context, report Report) error {
	event := newBenchmarkCompletedEvent(report)
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: events.BenchmarkCompletedTopic,
		Key:   []byte(report.Department),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	})
}
