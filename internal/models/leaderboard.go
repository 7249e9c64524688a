package models

// LeaderboardScope selects which counters a leaderboard is built from
type LeaderboardScope string

const (
	// LeaderboardScopeGlobal ranks users by their global counters
	LeaderboardScopeGlobal LeaderboardScope = "global"

	// LeaderboardScopeGuild ranks users by their counters within one guild
	LeaderboardScopeGuild LeaderboardScope = "guild"
)

// LeaderboardEntry is a single row of a leaderboard
type LeaderboardEntry struct {
	// UserID is the Discord user ID of the entry
	UserID string

	// Correct is the accepted-turn count within the leaderboard's scope
	Correct int

	// Wrong is the rejected-turn count within the leaderboard's scope
	Wrong int

	// Score is correct - wrong, the sort key
	Score int
}
