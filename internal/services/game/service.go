package game

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/KirkDiggler/alphie/internal/alphabet"
	"github.com/KirkDiggler/alphie/internal/repositories/score"
)

// service implements the Service interface
type service struct {
	scoreRepo score.Repository

	// mu serializes validation so near-simultaneous messages are
	// checked one at a time against current state, never a stale copy
	mu            sync.Mutex
	expectedIndex int
	lastAuthorID  string
	ruined        bool
}

// New creates a new game service with a fresh sequence state
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ScoreRepo == nil {
		return nil, ErrNilScoreRepo
	}

	return &service{
		scoreRepo: cfg.ScoreRepo,
	}, nil
}

// Validate runs one message through the sequence state machine
func (s *service) Validate(ctx context.Context, input *ValidateInput) (*ValidateOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.AuthorID == "" {
		return nil, ErrEmptyAuthorID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	text := strings.ToUpper(strings.TrimSpace(input.Text))

	if s.ruined {
		// Only the restart token resumes play; everything else is
		// silently ignored
		if text != alphabet.Token(0) {
			return &ValidateOutput{
				Outcome:  OutcomeIgnored,
				Expected: alphabet.Token(0),
			}, nil
		}

		s.expectedIndex = 1
		s.lastAuthorID = input.AuthorID
		s.ruined = false

		return s.finish(ctx, input, OutcomeAccepted, alphabet.Token(0))
	}

	expected := alphabet.Token(s.expectedIndex)

	if text != expected {
		s.expectedIndex = 0
		s.lastAuthorID = ""
		s.ruined = true

		return s.finish(ctx, input, OutcomeRejectedWrong, expected)
	}

	if input.AuthorID == s.lastAuthorID {
		// Anti-monopoly: correct token, but the same user may not take
		// two consecutive turns. State stays exactly as it was.
		return s.finish(ctx, input, OutcomeRejectedRepeat, expected)
	}

	s.expectedIndex++
	s.lastAuthorID = input.AuthorID

	return s.finish(ctx, input, OutcomeAccepted, expected)
}

// RuinByEdit ruins the current run because a game message was edited
func (s *service) RuinByEdit(ctx context.Context, input *RuinByEditInput) (*RuinByEditOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.AuthorID == "" {
		return nil, ErrEmptyAuthorID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.expectedIndex = 0
	s.lastAuthorID = ""
	s.ruined = true

	out := &RuinByEditOutput{Outcome: OutcomeRejectedWrong}

	if err := s.scoreRepo.IncrementWrong(ctx, &score.IncrementInput{
		UserID:  input.AuthorID,
		GuildID: input.GuildID,
	}); err != nil {
		return out, fmt.Errorf("failed to record score: %w", err)
	}

	return out, nil
}

// Snapshot returns the current game state
func (s *service) Snapshot(_ context.Context) (*SnapshotOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &SnapshotOutput{
		ExpectedIndex: s.expectedIndex,
		ExpectedToken: alphabet.Token(s.expectedIndex),
		LastAuthorID:  s.lastAuthorID,
		Ruined:        s.ruined,
	}, nil
}

// GetStats retrieves a user's global and guild counters
func (s *service) GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	stats, err := s.scoreRepo.GetStats(ctx, &score.GetStatsInput{
		UserID:  input.UserID,
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, err
	}

	return &GetStatsOutput{
		Stats: stats,
	}, nil
}

// GetLeaderboard retrieves the full ordered leaderboard for a scope
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	out, err := s.scoreRepo.GetLeaderboard(ctx, &score.GetLeaderboardInput{
		Scope:   input.Scope,
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, err
	}

	return &GetLeaderboardOutput{
		Entries: out.Entries,
	}, nil
}

// finish records the score for a decided outcome. The state transition
// has already happened; a store failure is reported alongside the
// outcome, never by rolling the game back.
func (s *service) finish(ctx context.Context, input *ValidateInput, outcome Outcome, expected string) (*ValidateOutput, error) {
	out := &ValidateOutput{
		Outcome:  outcome,
		Expected: expected,
	}

	incr := s.scoreRepo.IncrementWrong
	if outcome == OutcomeAccepted {
		incr = s.scoreRepo.IncrementCorrect
	}

	if err := incr(ctx, &score.IncrementInput{
		UserID:  input.AuthorID,
		GuildID: input.GuildID,
	}); err != nil {
		return out, fmt.Errorf("failed to record score: %w", err)
	}

	return out, nil
}
