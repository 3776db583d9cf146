package publish

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// SummaryProducer owns the single writer bound to the summary topic.
// Messages keyed by tenant and user land on the same partition.
type SummaryProducer struct {
	writer *kafka.Writer
}

// NewSummaryProducer creates a SummaryProducer for topic on the given brokers.
func NewSummaryProducer(brokers []string, topic string) *SummaryProducer {
	return &SummaryProducer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			Compression:            kafka.Snappy,
			AllowAutoTopicCreation: true,
		},
	}
}

// Topic returns the topic every message is written to.
func (p *SummaryProducer) Topic() string { return p.writer.Topic }

// WriteMessages writes msgs to the summary topic.
func (p *SummaryProducer) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	return p.writer.WriteMessages(ctx, msgs...)
}

// Close flushes pending messages and releases the writer.
func (p *SummaryProducer) Close() error {
	return p.writer.Close()
}
