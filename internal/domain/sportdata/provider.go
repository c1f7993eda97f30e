// Package sportdata declares the upstream statistics feed used by the use
// cases. Payloads are returned undecoded into domain types so each parser
// can tolerate missing or malformed nesting on its own terms.
package sportdata

import (
	"context"
	"time"

	"github.com/riskibarqy/diamond-stats/internal/domain/document"
)

const (
	PhasePreseason  = "PRE"
	PhaseRegular    = "REG"
	PhasePostseason = "PST"
)

type Provider interface {
	SeasonLeaders(ctx context.Context, season int, phase string) (document.Doc, error)
	Teams(ctx context.Context) (document.Doc, error)
	TeamProfile(ctx context.Context, teamID string) (document.Doc, error)
	PlayerProfile(ctx context.Context, playerID string) (document.Doc, error)
	DailySchedule(ctx context.Context, date time.Time) (document.Doc, error)
	Standings(ctx context.Context, season int, phase string) (document.Doc, error)
}

// ValidPhase reports whether phase is one of the season phases the feed
// publishes.
func ValidPhase(phase string) bool {
	switch phase {
	case PhasePreseason, PhaseRegular, PhasePostseason:
		return true
	default:
		return false
	}
}
