package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/JulianoL13/guincho-scraper/internal/professional"
	"github.com/redis/go-redis/v9"
)

const (
	defaultTTL    = 7 * 24 * time.Hour
	defaultPrefix = "professionals"
)

// Repository keeps one JSON value per phone plus sorted-set indexes scored by
// the time the record was seen.
type Repository struct {
	client    *redis.Client
	ttl       time.Duration
	keyPrefix string
}

func NewRepository(client *redis.Client, keyPrefix string) *Repository {
	if keyPrefix == "" {
		keyPrefix = defaultPrefix
	}
	return &Repository{
		client:    client,
		ttl:       defaultTTL,
		keyPrefix: keyPrefix,
	}
}

func (r *Repository) WithTTL(ttl time.Duration) *Repository {
	r.ttl = ttl
	return r
}

func (r *Repository) dataKey(phone string) string {
	return fmt.Sprintf("%s:data:%s", r.keyPrefix, phone)
}

func (r *Repository) allKey() string {
	return fmt.Sprintf("%s:idx:all", r.keyPrefix)
}

func (r *Repository) stateKey(state string) string {
	return fmt.Sprintf("%s:idx:state:%s", r.keyPrefix, strings.ToUpper(state))
}

func (r *Repository) Save(ctx context.Context, rec professional.Record, seenAt time.Time) error {
	if rec.Phone == "" {
		return fmt.Errorf("save professional: empty phone")
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal professional: %w", err)
	}

	score := float64(seenAt.UnixNano()) / 1e9

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.dataKey(rec.Phone), data, r.ttl)
	pipe.ZAdd(ctx, r.allKey(), redis.Z{Score: score, Member: rec.Phone})
	if rec.State != "" {
		pipe.ZAdd(ctx, r.stateKey(rec.State), redis.Z{Score: score, Member: rec.Phone})
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save professional: %w", err)
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, phone string) (professional.Record, error) {
	data, err := r.client.Get(ctx, r.dataKey(phone)).Bytes()
	if errors.Is(err, redis.Nil) {
		return professional.Record{}, professional.ErrNotFound
	}
	if err != nil {
		return professional.Record{}, fmt.Errorf("get professional: %w", err)
	}

	var rec professional.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return professional.Record{}, fmt.Errorf("unmarshal professional: %w", err)
	}
	return rec, nil
}

// List pages through the index oldest first, resuming after cursor.
// limit <= 0 returns every member in one page.
func (r *Repository) List(ctx context.Context, cursor professional.Cursor, limit int, filter professional.Filter) ([]professional.Record, professional.Cursor, int, error) {
	targetKey := r.allKey()
	if filter.State != "" {
		targetKey = r.stateKey(filter.State)
	}

	total, err := r.client.ZCard(ctx, targetKey).Result()
	if err != nil {
		return nil, professional.Cursor{}, 0, fmt.Errorf("zcard: %w", err)
	}
	if total == 0 {
		return nil, professional.Cursor{}, 0, nil
	}

	var members []redis.Z
	if limit > 0 {
		members, err = r.pageAfter(ctx, targetKey, cursor, limit)
	} else {
		members, err = r.client.ZRangeWithScores(ctx, targetKey, 0, -1).Result()
	}
	if err != nil {
		return nil, professional.Cursor{}, 0, fmt.Errorf("zrange: %w", err)
	}
	if len(members) == 0 {
		return nil, professional.Cursor{}, int(total), nil
	}

	keys := make([]string, len(members))
	for i, m := range members {
		keys[i] = r.dataKey(m.Member.(string))
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, professional.Cursor{}, 0, fmt.Errorf("mget professionals: %w", err)
	}

	records := make([]professional.Record, 0, len(values))
	for _, v := range values {
		str, ok := v.(string)
		if !ok {
			// expired data key, the cleaner drops the index member later
			continue
		}

		var rec professional.Record
		if err := json.Unmarshal([]byte(str), &rec); err != nil {
			continue
		}
		if !filter.Matches(rec) {
			continue
		}
		records = append(records, rec)
	}

	var next professional.Cursor
	if limit > 0 && len(members) == limit {
		last := members[len(members)-1]
		next = professional.Cursor{Score: last.Score, Member: last.Member.(string)}
	}

	return records, next, int(total), nil
}

// pageAfter returns up to limit members ordered after cursor. The score bound is
// inclusive so members tied with the cursor are not lost; those at or before
// the cursor member are skipped.
func (r *Repository) pageAfter(ctx context.Context, key string, cursor professional.Cursor, limit int) ([]redis.Z, error) {
	minScore := "-inf"
	if !cursor.IsZero() {
		minScore = strconv.FormatFloat(cursor.Score, 'f', -1, 64)
	}

	out := make([]redis.Z, 0, limit)
	var offset int64
	for len(out) < limit {
		batch, err := r.client.ZRangeByScoreWithScores(ctx, key, &redis.ZRangeBy{
			Min:    minScore,
			Max:    "+inf",
			Offset: offset,
			Count:  int64(limit),
		}).Result()
		if err != nil {
			return nil, err
		}

		for _, z := range batch {
			member, _ := z.Member.(string)
			if !cursor.IsZero() && z.Score == cursor.Score && member <= cursor.Member {
				continue
			}
			if len(out) < limit {
				out = append(out, z)
			}
		}

		if len(batch) < limit {
			break
		}
		offset += int64(len(batch))
	}
	return out, nil
}
