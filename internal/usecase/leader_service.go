package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/diamond-stats/internal/domain/document"
	"github.com/riskibarqy/diamond-stats/internal/domain/labels"
	"github.com/riskibarqy/diamond-stats/internal/domain/leaders"
	"github.com/riskibarqy/diamond-stats/internal/domain/sportdata"
	"github.com/riskibarqy/diamond-stats/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const (
	DefaultLeaderLimit = 10
	MaxLeaderLimit     = 100
)

type LeaderQuery struct {
	Season int
	Phase  string
	Stat   string
	Limit  int
}

type LeaderRow struct {
	Position int
	Label    string
	Team     string
	Leader   leaders.NormalizedLeader
}

type LeaderList struct {
	Season      int
	Phase       string
	Stat        string
	LookupStat  string
	DisplayName string
	Total       int
	Items       []LeaderRow
	FetchedAt   time.Time
}

type LeaderService struct {
	provider     sportdata.Provider
	defaultLimit int
	logger       *logging.Logger
	now          func() time.Time
}

func NewLeaderService(provider sportdata.Provider, defaultLimit int, logger *logging.Logger) *LeaderService {
	if defaultLimit <= 0 || defaultLimit > MaxLeaderLimit {
		defaultLimit = DefaultLeaderLimit
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &LeaderService{
		provider:     provider,
		defaultLimit: defaultLimit,
		logger:       logger,
		now:          time.Now,
	}
}

// List fetches the season leaders payload fresh, ranks it for the requested
// statistic and returns the top Limit rows. A malformed payload yields an
// empty list, not an error.
func (s *LeaderService) List(ctx context.Context, query LeaderQuery) (LeaderList, error) {
	query, err := s.normalizeQuery(query)
	if err != nil {
		return LeaderList{}, err
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderService.List",
		attribute.Int("season", query.Season),
		attribute.String("phase", query.Phase),
		attribute.String("stat", query.Stat),
	)
	defer span.End()

	raw, err := s.provider.SeasonLeaders(ctx, query.Season, query.Phase)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch season leaders failed",
			"season", query.Season,
			"phase", query.Phase,
			"stat", query.Stat,
			"error", err,
		)
		return LeaderList{}, fmt.Errorf("fetch season leaders season=%d phase=%s: %w", query.Season, query.Phase, err)
	}

	ranked := leaders.Aggregate(raw, query.Stat)
	top := ranked
	if len(top) > query.Limit {
		top = top[:query.Limit]
	}

	rows := make([]LeaderRow, 0, len(top))
	for i, item := range top {
		rows = append(rows, LeaderRow{
			Position: i + 1,
			Label:    labels.Resolve(item.Record),
			Team:     teamLabel(item.Record),
			Leader:   item,
		})
	}

	return LeaderList{
		Season:      query.Season,
		Phase:       query.Phase,
		Stat:        query.Stat,
		LookupStat:  leaders.LookupKey(query.Stat),
		DisplayName: leaders.DisplayName(query.Stat),
		Total:       len(ranked),
		Items:       rows,
		FetchedAt:   s.now().UTC(),
	}, nil
}

func (s *LeaderService) normalizeQuery(query LeaderQuery) (LeaderQuery, error) {
	if query.Season <= 0 {
		return query, fmt.Errorf("%w: season must be greater than zero", ErrInvalidInput)
	}

	query.Phase = strings.ToUpper(strings.TrimSpace(query.Phase))
	if query.Phase == "" {
		query.Phase = sportdata.PhaseRegular
	}
	if !sportdata.ValidPhase(query.Phase) {
		return query, fmt.Errorf("%w: unsupported season phase %q", ErrInvalidInput, query.Phase)
	}

	// Keys match the alias table exactly; anything else passes through as given.
	query.Stat = strings.TrimSpace(query.Stat)
	if query.Stat == "" {
		return query, fmt.Errorf("%w: statistic is required", ErrInvalidInput)
	}

	switch {
	case query.Limit < 0:
		return query, fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	case query.Limit == 0:
		query.Limit = s.defaultLimit
	case query.Limit > MaxLeaderLimit:
		query.Limit = MaxLeaderLimit
	}
	return query, nil
}

// teamLabel names the club a leader record belongs to, if the record
// carries one.
func teamLabel(record document.Doc) string {
	team := record.Object("team")
	if team == nil {
		team = record.Object("player").Object("team")
	}
	if team == nil {
		return ""
	}
	label := labels.Resolve(document.Doc{"team": map[string]any(team)})
	if label == labels.Unknown {
		return ""
	}
	return label
}
