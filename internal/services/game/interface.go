package game

import "context"

// Service defines the interface for the alphabet counting game
type Service interface {
	// Validate runs one message through the sequence state machine,
	// records the score for the outcome, and advances or resets the
	// game state. When score persistence fails, the returned output is
	// still valid alongside the error: the in-memory transition is
	// never rolled back.
	Validate(ctx context.Context, input *ValidateInput) (*ValidateOutput, error)

	// RuinByEdit ruins the current run because a message in the game
	// channel was edited. Same output/error contract as Validate.
	RuinByEdit(ctx context.Context, input *RuinByEditInput) (*RuinByEditOutput, error)

	// Snapshot returns the current game state for rendering
	Snapshot(ctx context.Context) (*SnapshotOutput, error)

	// GetStats retrieves a user's global and guild counters
	GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error)

	// GetLeaderboard retrieves the full ordered leaderboard for a scope
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}
