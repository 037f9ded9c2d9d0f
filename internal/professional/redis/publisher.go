package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/JulianoL13/guincho-scraper/internal/common/queue"
	"github.com/JulianoL13/guincho-scraper/internal/professional"
)

type StreamPublisher struct {
	publisher queue.Publisher
	codec     EventCodec
	topic     string
}

func NewStreamPublisher(publisher queue.Publisher, topic, source string) *StreamPublisher {
	if topic == "" {
		topic = professional.DefaultTopicCollected
	}
	return &StreamPublisher{
		publisher: publisher,
		codec:     EventCodec{Source: source},
		topic:     topic,
	}
}

// Publish sends one event per record and reports every failure at once.
func (p *StreamPublisher) Publish(ctx context.Context, runID string, records []professional.Record) error {
	var errs []error
	for _, r := range records {
		payload, err := p.codec.Encode(runID, r)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := p.publisher.Publish(ctx, p.topic, payload); err != nil {
			errs = append(errs, fmt.Errorf("publish %s: %w", r.Phone, err))
		}
	}
	return errors.Join(errs...)
}
