package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/diamond-stats/internal/domain/games"
	"github.com/riskibarqy/diamond-stats/internal/domain/sportdata"
)

type Scoreboard struct {
	Date  time.Time
	Games []games.Game
	Live  int
}

type ScoreboardService struct {
	provider sportdata.Provider
}

func NewScoreboardService(provider sportdata.Provider) *ScoreboardService {
	return &ScoreboardService{provider: provider}
}

func (s *ScoreboardService) GamesOn(ctx context.Context, date time.Time) (Scoreboard, error) {
	if date.IsZero() {
		return Scoreboard{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	ctx, span := startUsecaseSpan(ctx, "usecase.ScoreboardService.GamesOn")
	defer span.End()

	raw, err := s.provider.DailySchedule(ctx, day)
	if err != nil {
		return Scoreboard{}, fmt.Errorf("fetch schedule date=%s: %w", day.Format(time.DateOnly), err)
	}

	items := games.Parse(raw)
	live := 0
	for _, game := range items {
		if game.Live() {
			live++
		}
	}
	return Scoreboard{Date: day, Games: items, Live: live}, nil
}
