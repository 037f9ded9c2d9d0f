package professional

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/JulianoL13/guincho-scraper/internal/common/queue"
)

const (
	DefaultTopicCollected = "professionals:collected"
	DefaultGroupIndexers  = "indexers"
)

type Consumer interface {
	Subscribe(ctx context.Context, topic, group, consumer string) (<-chan queue.Message, error)
	Ack(ctx context.Context, topic, group, msgID string) error
}

type Decoder interface {
	Decode(payload []byte) (Record, error)
}

type Indexer interface {
	Save(ctx context.Context, r Record, seenAt time.Time) error
}

type WorkerPool interface {
	Submit(ctx context.Context, job func(ctx context.Context)) error
}

// IndexRecordsUseCase moves streamed records into the queryable index.
// Messages whose save fails stay pending and are delivered again after a restart.
type IndexRecordsUseCase struct {
	consumer Consumer
	decoder  Decoder
	indexer  Indexer
	pool     WorkerPool
	logger   Logger
	id       string
	topic    string
	group    string
}

func NewIndexRecordsUseCase(
	consumer Consumer,
	decoder Decoder,
	indexer Indexer,
	pool WorkerPool,
	logger Logger,
	consumerID string,
	topic string,
	group string,
) *IndexRecordsUseCase {
	if topic == "" {
		topic = DefaultTopicCollected
	}
	if group == "" {
		group = DefaultGroupIndexers
	}
	return &IndexRecordsUseCase{
		consumer: consumer,
		decoder:  decoder,
		indexer:  indexer,
		pool:     pool,
		logger:   logger,
		id:       consumerID,
		topic:    topic,
		group:    group,
	}
}

func (uc *IndexRecordsUseCase) Execute(ctx context.Context) error {
	uc.logger.Info("starting indexer", "consumer", uc.id, "topic", uc.topic, "group", uc.group)

	messages, err := uc.consumer.Subscribe(ctx, uc.topic, uc.group, uc.id)
	if err != nil {
		return err
	}

	var (
		processed atomic.Int64
		failed    atomic.Int64
	)

	for msg := range messages {
		m := msg
		err := uc.pool.Submit(ctx, func(ctx context.Context) {
			r, err := uc.decoder.Decode(m.Payload)
			if err != nil {
				uc.logger.Warn("dropping undecodable message", "error", err, "msgID", m.ID)
				uc.ack(ctx, m.ID)
				return
			}

			if err := uc.indexer.Save(ctx, r, time.Now()); err != nil {
				failed.Add(1)
				uc.logger.Error("failed to index record", "phone", r.Phone, "error", err, "msgID", m.ID)
				return
			}
			uc.ack(ctx, m.ID)

			if n := processed.Add(1); n%100 == 0 {
				uc.logger.Info("progress", "indexed", n, "failed", failed.Load())
			}
		})
		if err != nil {
			uc.logger.Warn("failed to schedule message", "error", err, "msgID", m.ID)
		}
	}

	uc.logger.Info("indexer stopped", "indexed", processed.Load(), "failed", failed.Load())
	return nil
}

func (uc *IndexRecordsUseCase) ack(ctx context.Context, id string) {
	if err := uc.consumer.Ack(ctx, uc.topic, uc.group, id); err != nil {
		uc.logger.Warn("failed to ack message", "error", err, "msgID", id)
	}
}
