package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/JulianoL13/guincho-scraper/internal/common/queue"
	"github.com/redis/go-redis/v9"
)

const (
	payloadField  = "payload"
	readBlock     = 2 * time.Second
	defaultMaxLen = 100_000
)

type StreamsClient struct {
	client *redis.Client
	maxLen int64
}

func NewStreamsClient(client *redis.Client) *StreamsClient {
	return &StreamsClient{client: client, maxLen: defaultMaxLen}
}

// WithMaxLen caps the stream length (approximate trimming). Zero disables trimming.
func (s *StreamsClient) WithMaxLen(n int64) *StreamsClient {
	s.maxLen = n
	return s
}

func (s *StreamsClient) Publish(ctx context.Context, topic string, payload []byte) error {
	args := &redis.XAddArgs{
		Stream: topic,
		Values: map[string]interface{}{
			payloadField: payload,
		},
	}
	if s.maxLen > 0 {
		args.MaxLen = s.maxLen
		args.Approx = true
	}

	if _, err := s.client.XAdd(ctx, args).Result(); err != nil {
		return fmt.Errorf("xadd %s: %w", topic, err)
	}
	return nil
}

// Subscribe first drains entries already delivered to this consumer but never
// acked, then blocks on new entries until ctx is done.
func (s *StreamsClient) Subscribe(ctx context.Context, topic, group, consumer string) (<-chan queue.Message, error) {
	err := s.client.XGroupCreateMkStream(ctx, topic, group, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return nil, fmt.Errorf("create group %s: %w", group, err)
	}

	messages := make(chan queue.Message)

	go func() {
		defer close(messages)

		cursor := "0"
		for {
			if ctx.Err() != nil {
				return
			}

			result, err := s.client.XReadGroup(ctx, &redis.XReadGroupArgs{
				Group:    group,
				Consumer: consumer,
				Streams:  []string{topic, cursor},
				Count:    10,
				Block:    readBlock,
			}).Result()

			if err != nil {
				if ctx.Err() != nil {
					return
				}
				// redis.Nil means the block timed out with nothing new.
				continue
			}

			delivered := 0
			for _, stream := range result {
				for _, msg := range stream.Messages {
					delivered++
					if cursor != ">" {
						cursor = msg.ID
					}
					payload, ok := msg.Values[payloadField].(string)
					if !ok {
						continue
					}

					select {
					case <-ctx.Done():
						return
					case messages <- queue.Message{ID: msg.ID, Payload: []byte(payload)}:
					}
				}
			}

			if cursor != ">" && delivered == 0 {
				cursor = ">"
			}
		}
	}()

	return messages, nil
}

func (s *StreamsClient) Ack(ctx context.Context, topic, group, msgID string) error {
	if _, err := s.client.XAck(ctx, topic, group, msgID).Result(); err != nil {
		return fmt.Errorf("xack %s: %w", msgID, err)
	}
	return nil
}

func (s *StreamsClient) Close() error {
	return nil
}

var (
	_ queue.Publisher = (*StreamsClient)(nil)
	_ queue.Consumer  = (*StreamsClient)(nil)
)
