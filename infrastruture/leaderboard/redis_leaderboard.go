package leaderboard

import (
	"context"
	"time"

	dmn "github.com/beka-birhanu/maze-sprint-api/domain"
	"github.com/beka-birhanu/maze-sprint-api/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	defaultKey  = "sprint:leaderboard"
	defaultTopN = 10
)

// RedisLeaderboard keeps every player's best completion time in one Redis
// sorted set, scored by milliseconds so the fastest rank first.
type RedisLeaderboard struct {
	client *redis.Client
	locker *redsync.Redsync
	key    string
	ttl    time.Duration
}

// NewRedisLeaderboard initializes a RedisLeaderboard on the given key with
// the provided Redis client. A ttlSeconds of zero keeps entries forever.
func NewRedisLeaderboard(client *redis.Client, key string, ttlSeconds int) (i.Leaderboard, error) {
	if key == "" {
		key = defaultKey
	}

	board := &RedisLeaderboard{
		client: client,
		key:    key,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	board.locker = redsync.New(pool)
	return board, nil
}

// SubmitTime records millis as the player's best when it beats the stored
// one. The read-compare-write runs under a distributed lock so concurrent
// finishes keep the minimum.
func (rl *RedisLeaderboard) SubmitTime(ctx context.Context, username string, millis int64) (bool, error) {
	mutex := rl.locker.NewMutex(rl.key + ":submit_lock")
	if err := mutex.Lock(); err != nil {
		return false, err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	current, err := rl.client.ZScore(ctx, rl.key, username).Result()
	if err != nil && err != redis.Nil {
		return false, err
	}
	if err == nil && int64(current) <= millis {
		return false, nil
	}

	if _, err := rl.client.ZAdd(ctx, rl.key, redis.Z{Score: float64(millis), Member: username}).Result(); err != nil {
		return false, err
	}

	// Set expiration only if it's not already set
	if rl.ttl > 0 {
		ttl, err := rl.client.TTL(ctx, rl.key).Result()
		if err == nil && ttl == -1 {
			_ = rl.client.Expire(ctx, rl.key, rl.ttl).Err()
		}
	}

	return true, nil
}

// Top returns the n fastest entries, best first.
func (rl *RedisLeaderboard) Top(ctx context.Context, n int64) ([]dmn.LeaderboardEntry, error) {
	if n < 1 {
		n = defaultTopN
	}

	members, err := rl.client.ZRangeWithScores(ctx, rl.key, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]dmn.LeaderboardEntry, 0, len(members))
	for idx, member := range members {
		username, _ := member.Member.(string)
		entries = append(entries, dmn.LeaderboardEntry{
			Rank:     int64(idx) + 1,
			Username: username,
			Millis:   int64(member.Score),
		})
	}
	return entries, nil
}

// PersonalBest returns the player's best recorded time.
func (rl *RedisLeaderboard) PersonalBest(ctx context.Context, username string) (int64, bool, error) {
	score, err := rl.client.ZScore(ctx, rl.key, username).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return int64(score), true, nil
}
