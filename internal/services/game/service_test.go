package game

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/KirkDiggler/alphie/internal/models"
	scoreRepo "github.com/KirkDiggler/alphie/internal/repositories/score"
	scoreMocks "github.com/KirkDiggler/alphie/internal/repositories/score/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockScoreRepo *scoreMocks.MockRepository
	gameService   Service
	ctx           context.Context

	// Test data
	testGuildID string
	testUser1   string
	testUser2   string
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockScoreRepo = scoreMocks.NewMockRepository(s.mockCtrl)

	svc, err := New(&Config{
		ScoreRepo: s.mockScoreRepo,
	})
	s.Require().NoError(err)
	s.gameService = svc

	s.ctx = context.Background()
	s.testGuildID = "test-guild-id"
	s.testUser1 = "test-user-1"
	s.testUser2 = "test-user-2"
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

func (s *GameServiceTestSuite) expectCorrect(userID string) {
	s.mockScoreRepo.EXPECT().IncrementCorrect(gomock.Any(), &scoreRepo.IncrementInput{
		UserID:  userID,
		GuildID: s.testGuildID,
	}).Return(nil)
}

func (s *GameServiceTestSuite) expectWrong(userID string) {
	s.mockScoreRepo.EXPECT().IncrementWrong(gomock.Any(), &scoreRepo.IncrementInput{
		UserID:  userID,
		GuildID: s.testGuildID,
	}).Return(nil)
}

func (s *GameServiceTestSuite) validate(text, userID string) *ValidateOutput {
	out, err := s.gameService.Validate(s.ctx, &ValidateInput{
		Text:     text,
		AuthorID: userID,
		GuildID:  s.testGuildID,
	})
	s.Require().NoError(err)
	s.Require().NotNil(out)
	return out
}

func (s *GameServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{})
	s.Equal(ErrNilScoreRepo, err)
}

func (s *GameServiceTestSuite) TestFirstTokenAccepted() {
	s.expectCorrect(s.testUser1)

	out := s.validate("A", s.testUser1)
	s.Equal(OutcomeAccepted, out.Outcome)
	s.Equal("A", out.Expected)

	snap, err := s.gameService.Snapshot(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, snap.ExpectedIndex)
	s.Equal("B", snap.ExpectedToken)
	s.Equal(s.testUser1, snap.LastAuthorID)
	s.False(snap.Ruined)
}

func (s *GameServiceTestSuite) TestNormalizationTrimsAndUppercases() {
	s.expectCorrect(s.testUser1)

	out := s.validate("  a \n", s.testUser1)
	s.Equal(OutcomeAccepted, out.Outcome)
}

func (s *GameServiceTestSuite) TestSameAuthorRepeatRejected() {
	s.expectCorrect(s.testUser1)
	s.expectWrong(s.testUser1)

	s.validate("A", s.testUser1)

	out := s.validate("B", s.testUser1)
	s.Equal(OutcomeRejectedRepeat, out.Outcome)

	// State is untouched: B is still expected and still owed to someone else
	snap, err := s.gameService.Snapshot(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, snap.ExpectedIndex)
	s.Equal(s.testUser1, snap.LastAuthorID)
	s.False(snap.Ruined)

	// Another user can still take the turn
	s.expectCorrect(s.testUser2)
	out = s.validate("B", s.testUser2)
	s.Equal(OutcomeAccepted, out.Outcome)
}

func (s *GameServiceTestSuite) TestWrongTokenRuinsGame() {
	s.expectCorrect(s.testUser1)
	s.expectWrong(s.testUser2)

	s.validate("A", s.testUser1)

	out := s.validate("Z", s.testUser2)
	s.Equal(OutcomeRejectedWrong, out.Outcome)
	s.Equal("B", out.Expected)

	snap, err := s.gameService.Snapshot(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, snap.ExpectedIndex)
	s.Equal("", snap.LastAuthorID)
	s.True(snap.Ruined)
}

func (s *GameServiceTestSuite) TestRuinedIgnoresEverythingButRestart() {
	s.expectWrong(s.testUser1)
	s.validate("Q", s.testUser1)

	// No score calls expected for ignored messages
	out := s.validate("B", s.testUser2)
	s.Equal(OutcomeIgnored, out.Outcome)

	out = s.validate("", s.testUser2)
	s.Equal(OutcomeIgnored, out.Outcome)

	snap, err := s.gameService.Snapshot(s.ctx)
	s.Require().NoError(err)
	s.True(snap.Ruined)
}

func (s *GameServiceTestSuite) TestRuinRecovery() {
	s.expectWrong(s.testUser1)
	s.validate("Q", s.testUser1)

	// Lowercase restart token recovers, and the recoverer owns turn 0
	s.expectCorrect(s.testUser2)
	out := s.validate("a", s.testUser2)
	s.Equal(OutcomeAccepted, out.Outcome)

	snap, err := s.gameService.Snapshot(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, snap.ExpectedIndex)
	s.Equal(s.testUser2, snap.LastAuthorID)
	s.False(snap.Ruined)
}

func (s *GameServiceTestSuite) TestRuinedUserCanRecoverOwnRuin() {
	s.expectWrong(s.testUser1)
	s.validate("Q", s.testUser1)

	// The ruiner is not blocked from restarting: last actor was cleared
	s.expectCorrect(s.testUser1)
	out := s.validate("A", s.testUser1)
	s.Equal(OutcomeAccepted, out.Outcome)
}

func (s *GameServiceTestSuite) TestEmptyMessageRuinsGame() {
	s.expectWrong(s.testUser1)

	out := s.validate("   ", s.testUser1)
	s.Equal(OutcomeRejectedWrong, out.Outcome)

	snap, err := s.gameService.Snapshot(s.ctx)
	s.Require().NoError(err)
	s.True(snap.Ruined)
}

func (s *GameServiceTestSuite) TestSequenceRollsOverToDoubleLetters() {
	// 27 alternating correct submissions: A..Z then AA
	for i := 0; i < 27; i++ {
		user := s.testUser1
		if i%2 == 1 {
			user = s.testUser2
		}

		s.expectCorrect(user)

		expected := ""
		if i < 26 {
			expected = string(rune('A' + i))
		} else {
			expected = "AA"
		}

		out := s.validate(expected, user)
		s.Require().Equal(OutcomeAccepted, out.Outcome, "turn %d (%s)", i, expected)
		s.Require().Equal(expected, out.Expected)
	}

	snap, err := s.gameService.Snapshot(s.ctx)
	s.Require().NoError(err)
	s.Equal(27, snap.ExpectedIndex)
	s.Equal("AB", snap.ExpectedToken)
}

func (s *GameServiceTestSuite) TestStoreFailureDoesNotRollBackState() {
	storeErr := errors.New("redis down")
	s.mockScoreRepo.EXPECT().IncrementCorrect(gomock.Any(), gomock.Any()).Return(storeErr)

	out, err := s.gameService.Validate(s.ctx, &ValidateInput{
		Text:     "A",
		AuthorID: s.testUser1,
		GuildID:  s.testGuildID,
	})

	// The outcome is still delivered with the error attached
	s.Require().Error(err)
	s.Require().ErrorIs(err, storeErr)
	s.Require().NotNil(out)
	s.Equal(OutcomeAccepted, out.Outcome)

	// The sequence advanced despite the store failure
	snap, snapErr := s.gameService.Snapshot(s.ctx)
	s.Require().NoError(snapErr)
	s.Equal(1, snap.ExpectedIndex)
	s.Equal(s.testUser1, snap.LastAuthorID)
}

func (s *GameServiceTestSuite) TestValidateRequiresAuthor() {
	_, err := s.gameService.Validate(s.ctx, nil)
	s.Equal(ErrNilInput, err)

	_, err = s.gameService.Validate(s.ctx, &ValidateInput{Text: "A"})
	s.Equal(ErrEmptyAuthorID, err)
}

func (s *GameServiceTestSuite) TestRuinByEdit() {
	s.expectCorrect(s.testUser1)
	s.validate("A", s.testUser1)

	s.expectWrong(s.testUser1)
	out, err := s.gameService.RuinByEdit(s.ctx, &RuinByEditInput{
		AuthorID: s.testUser1,
		GuildID:  s.testGuildID,
	})
	s.Require().NoError(err)
	s.Equal(OutcomeRejectedWrong, out.Outcome)

	snap, err := s.gameService.Snapshot(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, snap.ExpectedIndex)
	s.Equal("", snap.LastAuthorID)
	s.True(snap.Ruined)
}

func (s *GameServiceTestSuite) TestGetStatsDelegates() {
	expected := &models.ScoreSummary{
		Correct:  4,
		Wrong:    1,
		Accuracy: 80,
	}

	s.mockScoreRepo.EXPECT().GetStats(gomock.Any(), &scoreRepo.GetStatsInput{
		UserID:  s.testUser1,
		GuildID: s.testGuildID,
	}).Return(expected, nil)

	out, err := s.gameService.GetStats(s.ctx, &GetStatsInput{
		UserID:  s.testUser1,
		GuildID: s.testGuildID,
	})
	s.Require().NoError(err)
	s.Equal(expected, out.Stats)
}

func (s *GameServiceTestSuite) TestGetLeaderboardDelegates() {
	entries := []models.LeaderboardEntry{
		{UserID: s.testUser1, Correct: 5, Wrong: 1, Score: 4},
		{UserID: s.testUser2, Correct: 2, Wrong: 2, Score: 0},
	}

	s.mockScoreRepo.EXPECT().GetLeaderboard(gomock.Any(), &scoreRepo.GetLeaderboardInput{
		Scope:   models.LeaderboardScopeGuild,
		GuildID: s.testGuildID,
	}).Return(&scoreRepo.GetLeaderboardOutput{Entries: entries}, nil)

	out, err := s.gameService.GetLeaderboard(s.ctx, &GetLeaderboardInput{
		Scope:   models.LeaderboardScopeGuild,
		GuildID: s.testGuildID,
	})
	s.Require().NoError(err)
	s.Equal(entries, out.Entries)
}

func (s *GameServiceTestSuite) TestValidateIsDeterministic() {
	// Two services fed identical inputs land in identical states
	other, err := New(&Config{ScoreRepo: s.mockScoreRepo})
	s.Require().NoError(err)

	inputs := []struct {
		text string
		user string
	}{
		{"A", s.testUser1},
		{"B", s.testUser2},
		{"X", s.testUser1},
		{"A", s.testUser2},
	}

	s.mockScoreRepo.EXPECT().IncrementCorrect(gomock.Any(), gomock.Any()).Return(nil).Times(6)
	s.mockScoreRepo.EXPECT().IncrementWrong(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	for _, in := range inputs {
		first := s.validate(in.text, in.user)

		second, err := other.Validate(s.ctx, &ValidateInput{
			Text:     in.text,
			AuthorID: in.user,
			GuildID:  s.testGuildID,
		})
		s.Require().NoError(err)

		s.Equal(first.Outcome, second.Outcome, fmt.Sprintf("input %q", in.text))
	}

	firstSnap, err := s.gameService.Snapshot(s.ctx)
	s.Require().NoError(err)
	secondSnap, err := other.Snapshot(s.ctx)
	s.Require().NoError(err)
	s.Equal(firstSnap, secondSnap)
}
