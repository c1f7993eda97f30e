package httpapi

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/diamond-stats/internal/platform/id"
	"github.com/riskibarqy/diamond-stats/internal/platform/logging"
	"github.com/riskibarqy/diamond-stats/internal/platform/resilience"
	"github.com/riskibarqy/diamond-stats/internal/usecase"
)

// UpstreamHealth reports the state of the circuit in front of the stats
// provider.
type UpstreamHealth interface {
	CircuitCounts() resilience.Counts
}

type Handler struct {
	leaderService     *usecase.LeaderService
	homeService       *usecase.HomeService
	teamService       *usecase.TeamService
	playerService     *usecase.PlayerService
	scoreboardService *usecase.ScoreboardService
	board             *usecase.LeaderBoard
	upstream          UpstreamHealth
	ids               id.Generator
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	leaderService *usecase.LeaderService,
	homeService *usecase.HomeService,
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	scoreboardService *usecase.ScoreboardService,
	board *usecase.LeaderBoard,
	upstream UpstreamHealth,
	ids id.Generator,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}

	return &Handler{
		leaderService:     leaderService,
		homeService:       homeService,
		teamService:       teamService,
		playerService:     playerService,
		scoreboardService: scoreboardService,
		board:             board,
		upstream:          upstream,
		ids:               ids,
		logger:            logger,
		validator:         validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type seasonLeadersRequest struct {
	Season int    `validate:"required,gte=1876,lte=2100"`
	Phase  string `validate:"omitempty,oneof=PRE REG PST"`
	Stat   string `validate:"required,max=64"`
	Limit  int    `validate:"gte=0,lte=100"`
}

type seasonRequest struct {
	Season int      `validate:"required,gte=1876,lte=2100"`
	Phase  string   `validate:"omitempty,oneof=PRE REG PST"`
	Teams  []string `validate:"omitempty,max=30,dive,required,alphanum,max=4"`
}

type boardSelectRequest struct {
	Season int    `json:"season" validate:"required,gte=1876,lte=2100"`
	Phase  string `json:"phase" validate:"omitempty,oneof=PRE REG PST"`
	Stat   string `json:"stat" validate:"required,max=64"`
	Limit  int    `json:"limit" validate:"gte=0,lte=100"`
}

type comparePlayersRequest struct {
	Left  string `validate:"required,max=64"`
	Right string `validate:"required,max=64"`
}

type gamesRequest struct {
	Date string `validate:"required,datetime=2006-01-02"`
}

// parseSeason reads the {season} path value. Anything that is not an
// integer is rejected before validation so the message names the field.
func parseSeason(raw string) (int, error) {
	season, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: season must be a year, got %q", usecase.ErrInvalidInput, raw)
	}
	return season, nil
}

func parseLimit(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: limit must be an integer, got %q", usecase.ErrInvalidInput, raw)
	}
	return limit, nil
}

func normalizePhase(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// splitList parses comma separated query values such as teams=NYY,LAD.
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.ToUpper(strings.TrimSpace(part)); part != "" {
			out = append(out, part)
		}
	}
	return out
}
