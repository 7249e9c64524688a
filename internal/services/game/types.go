package game

import (
	"github.com/KirkDiggler/alphie/internal/models"
	"github.com/KirkDiggler/alphie/internal/repositories/score"
)

// Outcome classifies the result of validating one message
type Outcome string

const (
	// OutcomeAccepted means the message was the expected token from an
	// eligible author and the sequence advanced
	OutcomeAccepted Outcome = "accepted"

	// OutcomeRejectedRepeat means the author tried to take two turns in
	// a row; the sequence is unchanged
	OutcomeRejectedRepeat Outcome = "rejected_repeat"

	// OutcomeRejectedWrong means the message broke the sequence; the
	// game is ruined until someone posts the first token again
	OutcomeRejectedWrong Outcome = "rejected_wrong"

	// OutcomeIgnored means the message arrived while the game was
	// ruined and was not the restart token; nothing happened
	OutcomeIgnored Outcome = "ignored"
)

// Config holds configuration for the game service
type Config struct {
	// ScoreRepo persists per-user counters
	ScoreRepo score.Repository
}

// ValidateInput contains one normalized-before-use game message
type ValidateInput struct {
	// Text is the raw message content; the service trims and uppercases it
	Text string

	// AuthorID is the Discord user who sent the message
	AuthorID string

	// GuildID scopes the per-guild counters; may be empty
	GuildID string
}

// ValidateOutput contains the outcome of validating one message
type ValidateOutput struct {
	Outcome Outcome

	// Expected is the token the game expected when the message arrived
	Expected string
}

// RuinByEditInput contains parameters for ruining the run via an edit
type RuinByEditInput struct {
	AuthorID string
	GuildID  string
}

// RuinByEditOutput contains the outcome of an edit ruin
type RuinByEditOutput struct {
	Outcome Outcome
}

// SnapshotOutput is a read-only view of the current game state
type SnapshotOutput struct {
	ExpectedIndex int
	ExpectedToken string
	LastAuthorID  string
	Ruined        bool
}

// GetStatsInput contains parameters for retrieving a user's stats
type GetStatsInput struct {
	UserID  string
	GuildID string
}

// GetStatsOutput contains a user's stats
type GetStatsOutput struct {
	Stats *models.ScoreSummary
}

// GetLeaderboardInput contains parameters for retrieving a leaderboard
type GetLeaderboardInput struct {
	Scope   models.LeaderboardScope
	GuildID string
}

// GetLeaderboardOutput contains the full ordered leaderboard
type GetLeaderboardOutput struct {
	Entries []models.LeaderboardEntry
}
