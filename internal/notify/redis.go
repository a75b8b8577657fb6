package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to a single node or a cluster depending on how many
// addresses are given, and pings it before returning.
func NewRedisClient(addrs []string, password string) (redis.UniversalClient, error) {
	if len(addrs) == 0 {
		return nil, fmt.Errorf("no Redis addresses provided")
	}

	rdb := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:        addrs,
		Password:     password,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolTimeout:  6 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %v: %w", addrs, err)
	}
	log.Println("Successfully connected to Redis.")
	return rdb, nil
}

type wireChange struct {
	Topics []string  `json:"topics"`
	At     time.Time `json:"at"`
}

// RedisBus fans changes out to every instance subscribed to the channel.
type RedisBus struct {
	client  redis.UniversalClient
	channel string
}

func NewRedisBus(client redis.UniversalClient, channel string) *RedisBus {
	return &RedisBus{client: client, channel: channel}
}

// Publish sends the change to the channel. Local feeds only see it once it
// comes back through Run.
func (b *RedisBus) Publish(ctx context.Context, topics ...string) error {
	payload, err := json.Marshal(wireChange{Topics: topics, At: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("encode change: %w", err)
	}
	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish change to %s: %w", b.channel, err)
	}
	return nil
}

// Run copies every change received on the channel into feed until ctx ends.
func (b *RedisBus) Run(ctx context.Context, feed *Feed) error {
	sub := b.client.Subscribe(ctx, b.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe to %s: %w", b.channel, err)
	}
	log.Printf("Listening for changes on Redis channel %s", b.channel)

	msgs := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}
			var wc wireChange
			if err := json.Unmarshal([]byte(msg.Payload), &wc); err != nil {
				log.Printf("Warning: dropping malformed change on %s: %v", b.channel, err)
				continue
			}
			feed.Append(wc.Topics, wc.At)
		}
	}
}

// maxListenBackoff caps the wait between resubscribe attempts in Listen.
const maxListenBackoff = 30 * time.Second

// Listen keeps Run going until ctx ends, resubscribing after a failure or a
// dropped subscription. The wait starts at backoff and doubles up to
// maxListenBackoff; it resets once a subscription delivers a change.
func (b *RedisBus) Listen(ctx context.Context, feed *Feed, backoff time.Duration) {
	if backoff <= 0 {
		backoff = time.Second
	}
	wait := backoff
	for {
		before := feed.Version()
		err := b.Run(ctx, feed)
		if ctx.Err() != nil {
			return
		}
		if feed.Version() != before {
			wait = backoff
		}
		if err != nil {
			log.Printf("Warning: change subscription on %s failed, retrying in %s: %v", b.channel, wait, err)
		} else {
			log.Printf("Warning: change subscription on %s closed, retrying in %s", b.channel, wait)
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
		wait = min(wait*2, maxListenBackoff)
	}
}
