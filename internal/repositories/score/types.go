package score

import "github.com/KirkDiggler/alphie/internal/models"

// IncrementInput contains parameters for incrementing a user's counters
type IncrementInput struct {
	UserID  string
	GuildID string
}

// GetStatsInput contains parameters for retrieving a user's counters
type GetStatsInput struct {
	UserID  string
	GuildID string
}

// GetLeaderboardInput contains parameters for retrieving a leaderboard
type GetLeaderboardInput struct {
	Scope models.LeaderboardScope

	// GuildID selects the guild for LeaderboardScopeGuild
	GuildID string
}

// GetLeaderboardOutput contains the full ordered leaderboard
type GetLeaderboardOutput struct {
	Entries []models.LeaderboardEntry
}
