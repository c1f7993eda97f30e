package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/diamond-stats/internal/domain/document"
	sportdatamock "github.com/riskibarqy/diamond-stats/internal/mocks/domain/sportdata"
	"github.com/stretchr/testify/mock"
)

func TestScoreboardService_GamesOn(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 3, 28, 0, 0, 0, 0, time.UTC)
	provider := sportdatamock.NewProvider(t)
	provider.
		On("DailySchedule", mock.Anything, mock.MatchedBy(func(v time.Time) bool { return v.Equal(day) })).
		Return(document.Doc{"league": map[string]any{"games": []any{
			map[string]any{"game": map[string]any{"id": "g1", "status": "inprogress"}},
			map[string]any{"game": map[string]any{"id": "g2", "status": "closed"}},
		}}}, nil).
		Once()

	local := time.Date(2024, 3, 28, 21, 30, 0, 0, time.FixedZone("PDT", -7*3600))
	got, err := NewScoreboardService(provider).GamesOn(context.Background(), local)
	if err != nil {
		t.Fatalf("games on: %v", err)
	}
	if len(got.Games) != 2 || got.Live != 1 {
		t.Fatalf("unexpected scoreboard: %+v", got)
	}
	if !got.Games[1].Closed() {
		t.Fatalf("expected second game to be closed")
	}
}
