package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/diamond-stats/internal/domain/profile"
	"github.com/riskibarqy/diamond-stats/internal/domain/sportdata"
	"github.com/riskibarqy/diamond-stats/internal/platform/logging"
	"github.com/sourcegraph/conc"
)

type PlayerComparison struct {
	Left  profile.Player
	Right profile.Player
}

type PlayerService struct {
	provider sportdata.Provider
	logger   *logging.Logger
}

func NewPlayerService(provider sportdata.Provider, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerService{provider: provider, logger: logger}
}

func (s *PlayerService) Profile(ctx context.Context, playerID string) (profile.Player, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return profile.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Profile")
	defer span.End()

	return s.fetch(ctx, playerID)
}

// Compare loads both players concurrently. Either failure fails the
// comparison.
func (s *PlayerService) Compare(ctx context.Context, leftID, rightID string) (PlayerComparison, error) {
	leftID, rightID = strings.TrimSpace(leftID), strings.TrimSpace(rightID)
	if leftID == "" || rightID == "" {
		return PlayerComparison{}, fmt.Errorf("%w: two player ids are required", ErrInvalidInput)
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Compare")
	defer span.End()

	var (
		out               PlayerComparison
		leftErr, rightErr error
		wg                conc.WaitGroup
	)
	wg.Go(func() { out.Left, leftErr = s.fetch(ctx, leftID) })
	wg.Go(func() { out.Right, rightErr = s.fetch(ctx, rightID) })
	wg.Wait()

	if leftErr != nil {
		return PlayerComparison{}, leftErr
	}
	if rightErr != nil {
		return PlayerComparison{}, rightErr
	}
	return out, nil
}

func (s *PlayerService) fetch(ctx context.Context, playerID string) (profile.Player, error) {
	raw, err := s.provider.PlayerProfile(ctx, playerID)
	if err != nil {
		return profile.Player{}, fmt.Errorf("fetch player profile player=%s: %w", playerID, err)
	}
	player := profile.Parse(raw)
	if player.ID == "" {
		return profile.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	return player, nil
}
