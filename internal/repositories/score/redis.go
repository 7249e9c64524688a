package score

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/KirkDiggler/alphie/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	scoreKeyPrefix  = "score:"
	globalRankKey   = "rank:global"
	guildRankPrefix = "rank:guild:"
	correctField    = "correct"
	wrongField      = "wrong"
)

// Config holds configuration for the Redis score repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed score repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// userKey returns the hash key holding a user's global counters
func userKey(userID string) string {
	return fmt.Sprintf("%s%s", scoreKeyPrefix, userID)
}

// guildUserKey returns the hash key holding a user's counters in one guild
func guildUserKey(userID, guildID string) string {
	return fmt.Sprintf("%s%s:guild:%s", scoreKeyPrefix, userID, guildID)
}

// guildRankKey returns the sorted-set key ranking users within a guild
func guildRankKey(guildID string) string {
	return fmt.Sprintf("%s%s", guildRankPrefix, guildID)
}

// IncrementCorrect adds one accepted turn to a user's counters
func (r *redisRepository) IncrementCorrect(ctx context.Context, input *IncrementInput) error {
	return r.increment(ctx, input, correctField, 1)
}

// IncrementWrong adds one rejected turn to a user's counters
func (r *redisRepository) IncrementWrong(ctx context.Context, input *IncrementInput) error {
	return r.increment(ctx, input, wrongField, -1)
}

// increment applies one counting event in a single pipeline. Every
// operation is a Redis increment, so create-if-absent is implicit and
// concurrent events for the same user cannot be lost or duplicated.
func (r *redisRepository) increment(ctx context.Context, input *IncrementInput, field string, rankDelta float64) error {
	if input == nil || input.UserID == "" {
		return errors.New("input and user ID cannot be empty")
	}

	pipe := r.client.Pipeline()

	pipe.HIncrBy(ctx, userKey(input.UserID), field, 1)
	pipe.ZIncrBy(ctx, globalRankKey, rankDelta, input.UserID)

	if input.GuildID != "" {
		pipe.HIncrBy(ctx, guildUserKey(input.UserID, input.GuildID), field, 1)
		pipe.ZIncrBy(ctx, guildRankKey(input.GuildID), rankDelta, input.UserID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to increment %s for user %s: %w", field, input.UserID, err)
	}

	return nil
}

// GetStats retrieves a user's global and per-guild counters
func (r *redisRepository) GetStats(ctx context.Context, input *GetStatsInput) (*models.ScoreSummary, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	globalCmd := pipe.HGetAll(ctx, userKey(input.UserID))

	var guildCmd *redis.MapStringStringCmd
	if input.GuildID != "" {
		guildCmd = pipe.HGetAll(ctx, guildUserKey(input.UserID, input.GuildID))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get stats for user %s: %w", input.UserID, err)
	}

	// HGetAll returns an empty map for missing keys, so absent records
	// come back zeroed rather than as errors
	correct, wrong := parseCounters(globalCmd.Val())

	summary := &models.ScoreSummary{
		Correct:  correct,
		Wrong:    wrong,
		Accuracy: models.Accuracy(correct, wrong),
	}

	if guildCmd != nil {
		guildCorrect, guildWrong := parseCounters(guildCmd.Val())
		summary.GuildCorrect = guildCorrect
		summary.GuildWrong = guildWrong
		summary.GuildAccuracy = models.Accuracy(guildCorrect, guildWrong)
	}

	return summary, nil
}

// GetLeaderboard retrieves the full ordered leaderboard for a scope
func (r *redisRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	rankKey := globalRankKey
	if input.Scope == models.LeaderboardScopeGuild {
		if input.GuildID == "" {
			return nil, errors.New("guild ID cannot be empty for guild scope")
		}
		rankKey = guildRankKey(input.GuildID)
	}

	ranked, err := r.client.ZRevRangeWithScores(ctx, rankKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard ranking: %w", err)
	}

	if len(ranked) == 0 {
		return &GetLeaderboardOutput{
			Entries: []models.LeaderboardEntry{},
		}, nil
	}

	// Hydrate correct/wrong counters for every ranked user in one pipeline
	pipe := r.client.Pipeline()
	counterCmds := make([]*redis.MapStringStringCmd, len(ranked))

	for i, z := range ranked {
		userID := z.Member.(string)
		key := userKey(userID)
		if input.Scope == models.LeaderboardScopeGuild {
			key = guildUserKey(userID, input.GuildID)
		}
		counterCmds[i] = pipe.HGetAll(ctx, key)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get leaderboard counters: %w", err)
	}

	entries := make([]models.LeaderboardEntry, 0, len(ranked))
	for i, z := range ranked {
		correct, wrong := parseCounters(counterCmds[i].Val())
		entries = append(entries, models.LeaderboardEntry{
			UserID:  z.Member.(string),
			Correct: correct,
			Wrong:   wrong,
			Score:   correct - wrong,
		})
	}

	// Redis orders tied members lexically; re-sort so ordering is
	// score descending, then user ID ascending
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].UserID < entries[j].UserID
	})

	return &GetLeaderboardOutput{
		Entries: entries,
	}, nil
}

// parseCounters extracts correct/wrong counts from a counters hash
func parseCounters(fields map[string]string) (int, int) {
	correct, _ := strconv.Atoi(fields[correctField])
	wrong, _ := strconv.Atoi(fields[wrongField])
	return correct, wrong
}
