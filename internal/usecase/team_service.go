package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/diamond-stats/internal/domain/sportdata"
	"github.com/riskibarqy/diamond-stats/internal/domain/standings"
	"github.com/riskibarqy/diamond-stats/internal/domain/teams"
	"github.com/riskibarqy/diamond-stats/internal/platform/cache"
	"github.com/riskibarqy/diamond-stats/internal/platform/logging"
)

const teamsCacheKey = "teams:list"

type TeamService struct {
	provider  sportdata.Provider
	teamCache *cache.JSON[[]teams.Team]
	logger    *logging.Logger
}

// NewTeamService caches the team list in store. Pass cache.NopStore{} to
// always hit the provider.
func NewTeamService(provider sportdata.Provider, store cache.Store, logger *logging.Logger) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TeamService{
		provider:  provider,
		teamCache: cache.NewJSON[[]teams.Team](store, logger),
		logger:    logger,
	}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]teams.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	items, err := s.teamCache.GetOrLoad(ctx, teamsCacheKey, func(ctx context.Context) ([]teams.Team, error) {
		raw, err := s.provider.Teams(ctx)
		if err != nil {
			return nil, err
		}
		return teams.ParseList(raw), nil
	})
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return items, nil
}

// InvalidateTeams drops the cached team list.
func (s *TeamService) InvalidateTeams(ctx context.Context) {
	s.teamCache.Invalidate(ctx, "teams:")
}

func (s *TeamService) Profile(ctx context.Context, teamID string) (teams.Profile, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return teams.Profile{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Profile")
	defer span.End()

	raw, err := s.provider.TeamProfile(ctx, teamID)
	if err != nil {
		return teams.Profile{}, fmt.Errorf("fetch team profile team=%s: %w", teamID, err)
	}
	profile := teams.ParseProfile(raw)
	if profile.Team.ID == "" {
		return teams.Profile{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	return profile, nil
}

// Standings returns the season table, optionally restricted to the given
// team abbreviations.
func (s *TeamService) Standings(ctx context.Context, season int, phase string, abbrs []string) ([]standings.TeamStanding, error) {
	if season <= 0 {
		return nil, fmt.Errorf("%w: season must be greater than zero", ErrInvalidInput)
	}
	phase = strings.ToUpper(strings.TrimSpace(phase))
	if phase == "" {
		phase = sportdata.PhaseRegular
	}
	if !sportdata.ValidPhase(phase) {
		return nil, fmt.Errorf("%w: unsupported season phase %q", ErrInvalidInput, phase)
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Standings")
	defer span.End()

	raw, err := s.provider.Standings(ctx, season, phase)
	if err != nil {
		return nil, fmt.Errorf("fetch standings season=%d phase=%s: %w", season, phase, err)
	}
	return standings.Parse(raw, abbrs...), nil
}
