package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/diamond-stats/internal/domain/document"
	sportdatamock "github.com/riskibarqy/diamond-stats/internal/mocks/domain/sportdata"
	"github.com/riskibarqy/diamond-stats/internal/platform/cache"
	"github.com/stretchr/testify/mock"
)

func teamsPayload() document.Doc {
	return document.Doc{"teams": []any{
		map[string]any{"id": "t-lad", "market": "Los Angeles", "name": "Dodgers", "abbr": "LAD"},
		map[string]any{"id": "t-bos", "market": "Boston", "name": "Red Sox", "abbr": "BOS"},
	}}
}

func standingsPayload() document.Doc {
	return document.Doc{"league": map[string]any{"season": map[string]any{"leagues": []any{
		map[string]any{"alias": "AL", "divisions": []any{
			map[string]any{"alias": "E", "teams": []any{
				map[string]any{"id": "t-nyy", "abbr": "NYY", "win": float64(94), "loss": float64(68), "last_10_won": float64(7), "last_10_lost": float64(3)},
				map[string]any{"id": "t-bos", "abbr": "BOS", "win": float64(89), "loss": float64(73)},
			}},
		}},
	}}}}
}

func TestTeamService_ListTeams_CachesReferenceData(t *testing.T) {
	t.Parallel()

	provider := sportdatamock.NewProvider(t)
	provider.On("Teams", mock.Anything).Return(teamsPayload(), nil).Once()

	service := NewTeamService(provider, cache.NewMemoryStore(time.Hour), nil)
	for i := 0; i < 3; i++ {
		got, err := service.ListTeams(context.Background())
		if err != nil {
			t.Fatalf("list teams: %v", err)
		}
		if len(got) != 2 || got[0].Abbr != "BOS" {
			t.Fatalf("unexpected teams: %+v", got)
		}
	}
}

func TestTeamService_ListTeams_InvalidateRefetches(t *testing.T) {
	t.Parallel()

	provider := sportdatamock.NewProvider(t)
	provider.On("Teams", mock.Anything).Return(teamsPayload(), nil).Twice()

	service := NewTeamService(provider, cache.NewMemoryStore(time.Hour), nil)
	if _, err := service.ListTeams(context.Background()); err != nil {
		t.Fatalf("list teams: %v", err)
	}
	service.InvalidateTeams(context.Background())
	if _, err := service.ListTeams(context.Background()); err != nil {
		t.Fatalf("list teams after invalidate: %v", err)
	}
}

func TestTeamService_Profile(t *testing.T) {
	t.Parallel()

	provider := sportdatamock.NewProvider(t)
	provider.On("TeamProfile", mock.Anything, "t-lad").Return(document.Doc{
		"id": "t-lad", "market": "Los Angeles", "name": "Dodgers",
		"players": []any{map[string]any{"id": "p1", "full_name": "Mookie Betts", "primary_position": "SS"}},
	}, nil).Once()
	provider.On("TeamProfile", mock.Anything, "ghost").Return(document.Doc{}, nil).Once()

	service := NewTeamService(provider, cache.NopStore{}, nil)
	got, err := service.Profile(context.Background(), " t-lad ")
	if err != nil {
		t.Fatalf("team profile: %v", err)
	}
	if got.Team.Label != "Los Angeles Dodgers" || len(got.Roster) != 1 {
		t.Fatalf("unexpected profile: %+v", got)
	}

	if _, err := service.Profile(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty profile, got %v", err)
	}
	if _, err := service.Profile(context.Background(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestTeamService_Standings_FiltersByAbbreviation(t *testing.T) {
	t.Parallel()

	provider := sportdatamock.NewProvider(t)
	provider.On("Standings", mock.Anything, 2025, "REG").Return(standingsPayload(), nil).Once()

	got, err := NewTeamService(provider, cache.NopStore{}, nil).Standings(context.Background(), 2025, "", []string{"nyy"})
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if len(got) != 1 || got[0].Abbr != "NYY" {
		t.Fatalf("unexpected standings: %+v", got)
	}
	if got[0].League != "AL" || got[0].Division != "E" {
		t.Fatalf("unexpected grouping: %+v", got[0])
	}
}

func TestTeamService_Standings_InvalidPhase(t *testing.T) {
	t.Parallel()

	_, err := NewTeamService(sportdatamock.NewProvider(t), cache.NopStore{}, nil).Standings(context.Background(), 2025, "ALL", nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
