package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// SendDeduper suppresses identical notification sends within the TTL window.
// Key format: notify:<channel>:<job_id>:<message_digest>
type SendDeduper struct {
	client *redis.Client
}

// NewSendDeduper creates a SendDeduper wrapping the given Redis client.
func NewSendDeduper(client *redis.Client) *SendDeduper {
	return &SendDeduper{client: client}
}

// IsDuplicate reports whether this exact send was already queued recently.
func (d *SendDeduper) IsDuplicate(ctx context.Context, channel, jobID, digest string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(channel, jobID, digest)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this send has been queued (expires after dedupTTL).
func (d *SendDeduper) Mark(ctx context.Context, channel, jobID, digest string) error {
	return d.client.Set(ctx, d.key(channel, jobID, digest), "1", dedupTTL).Err()
}

func (d *SendDeduper) key(channel, jobID, digest string) string {
	return fmt.Sprintf("notify:%s:%s:%s", channel, jobID, digest)
}
