package score

import (
	"context"

	"github.com/KirkDiggler/alphie/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/alphie/internal/repositories/score Repository

// Repository defines the interface for score persistence
type Repository interface {
	// IncrementCorrect adds one accepted turn to a user's global and
	// per-guild counters, creating the record if absent
	IncrementCorrect(ctx context.Context, input *IncrementInput) error

	// IncrementWrong adds one rejected turn to a user's global and
	// per-guild counters, creating the record if absent
	IncrementWrong(ctx context.Context, input *IncrementInput) error

	// GetStats retrieves a user's global and per-guild counters,
	// zeroed when no record exists
	GetStats(ctx context.Context, input *GetStatsInput) (*models.ScoreSummary, error)

	// GetLeaderboard retrieves all ranked users for a scope, sorted by
	// score descending with ties broken by user ID ascending
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}
