package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/diamond-stats/internal/domain/leaders"
	"github.com/riskibarqy/diamond-stats/internal/domain/sportdata"
	"github.com/riskibarqy/diamond-stats/internal/platform/logging"
	"github.com/sourcegraph/conc"
)

// homeStats are the three leader panels shown on the landing page, in
// display order.
var homeStats = []string{leaders.StatHomeRuns, leaders.StatBattingAverage, leaders.StatERA}

type HomeSection struct {
	Stat  string
	List  LeaderList
	Error error
}

type Home struct {
	Season   int
	Phase    string
	Sections []HomeSection
}

type HomeService struct {
	leaders *LeaderService
	logger  *logging.Logger
}

func NewHomeService(leaderSvc *LeaderService, logger *logging.Logger) *HomeService {
	if logger == nil {
		logger = logging.Default()
	}
	return &HomeService{leaders: leaderSvc, logger: logger}
}

// Get loads every panel concurrently. One failing panel does not fail the
// others; it carries its own error. The upstream client coalesces the three
// identical season-leaders requests into one.
func (s *HomeService) Get(ctx context.Context, season int, phase string) (Home, error) {
	if season <= 0 {
		return Home{}, fmt.Errorf("%w: season must be greater than zero", ErrInvalidInput)
	}
	phase = strings.ToUpper(strings.TrimSpace(phase))
	if phase == "" {
		phase = sportdata.PhaseRegular
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.HomeService.Get")
	defer span.End()

	sections := make([]HomeSection, len(homeStats))
	var wg conc.WaitGroup
	for i, stat := range homeStats {
		wg.Go(func() {
			list, err := s.leaders.List(ctx, LeaderQuery{Season: season, Phase: phase, Stat: stat})
			sections[i] = HomeSection{Stat: stat, List: list, Error: err}
		})
	}
	wg.Wait()

	failed := 0
	for _, section := range sections {
		if section.Error != nil {
			failed++
		}
	}
	if failed == len(sections) {
		return Home{}, fmt.Errorf("load home sections: %w", sections[0].Error)
	}
	if failed > 0 {
		s.logger.WarnContext(ctx, "home sections partially failed", "season", season, "phase", phase, "failed", failed)
	}

	return Home{Season: season, Phase: phase, Sections: sections}, nil
}
