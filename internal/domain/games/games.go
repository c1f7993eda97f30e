// Package games parses a daily schedule into scoreboard cards.
package games

import (
	"math"
	"strings"

	"github.com/riskibarqy/diamond-stats/internal/domain/document"
	"github.com/riskibarqy/diamond-stats/internal/domain/labels"
)

type Side struct {
	ID    string
	Abbr  string
	Label string
	Runs  *int
}

type Game struct {
	ID        string
	Status    string
	Scheduled string
	Venue     string
	Home      Side
	Away      Side
}

// Live reports whether the game is being played right now.
func (g Game) Live() bool {
	switch strings.ToLower(g.Status) {
	case "live", "inprogress":
		return true
	default:
		return false
	}
}

func (g Game) Closed() bool {
	switch strings.ToLower(g.Status) {
	case "closed", "complete":
		return true
	default:
		return false
	}
}

// Parse reads league.games[]. Each entry is either the game itself or a
// wrapper holding it under "game".
func Parse(raw document.Doc) []Game {
	items := raw.Object("league").Objects("games")
	if len(items) == 0 {
		items = raw.Objects("games")
	}

	out := make([]Game, 0, len(items))
	for _, item := range items {
		game := item
		if nested := item.Object("game"); nested != nil {
			game = nested
		}
		id := game.String("id")
		if id == "" {
			continue
		}
		out = append(out, Game{
			ID:        id,
			Status:    game.String("status"),
			Scheduled: game.String("scheduled"),
			Venue:     game.Object("venue").String("name"),
			Home:      parseSide(game.Object("home")),
			Away:      parseSide(game.Object("away")),
		})
	}
	return out
}

func parseSide(team document.Doc) Side {
	side := Side{
		ID:   team.String("id"),
		Abbr: team.String("abbr"),
	}
	if team != nil {
		side.Label = labels.Resolve(document.Doc{"team": map[string]any(team)})
	}
	if runs, ok := team.Float("runs"); ok && !math.IsInf(runs, 0) {
		n := int(runs)
		side.Runs = &n
	}
	return side
}
