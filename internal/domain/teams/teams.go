package teams

import (
	"sort"

	"github.com/riskibarqy/diamond-stats/internal/domain/document"
	"github.com/riskibarqy/diamond-stats/internal/domain/labels"
)

type Team struct {
	ID     string `json:"id"`
	Abbr   string `json:"abbr"`
	Market string `json:"market"`
	Name   string `json:"name"`
	Label  string `json:"label"`
}

type RosterPlayer struct {
	ID              string
	Label           string
	PrimaryPosition string
	JerseyNumber    string
	Status          string
}

type Profile struct {
	Team   Team
	Venue  string
	City   string
	Roster []RosterPlayer
}

// ParseList reads league/teams.json. Teams without an id are dropped and
// the rest are sorted by label.
func ParseList(raw document.Doc) []Team {
	items := raw.Objects("teams")
	out := make([]Team, 0, len(items))
	for _, item := range items {
		team := parseTeam(item)
		if team.ID == "" {
			continue
		}
		out = append(out, team)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Label < out[j].Label
	})
	return out
}

// ParseProfile reads teams/{id}/profile.json.
func ParseProfile(raw document.Doc) Profile {
	venue := raw.Object("venue")
	out := Profile{
		Team:  parseTeam(raw),
		Venue: venue.String("name"),
		City:  venue.String("city"),
	}

	players := raw.Objects("players")
	out.Roster = make([]RosterPlayer, 0, len(players))
	for _, player := range players {
		out.Roster = append(out.Roster, RosterPlayer{
			ID:              player.String("id"),
			Label:           labels.Resolve(player),
			PrimaryPosition: player.String("primary_position"),
			JerseyNumber:    player.String("jersey_number"),
			Status:          player.String("status"),
		})
	}
	return out
}

func parseTeam(item document.Doc) Team {
	return Team{
		ID:     item.String("id"),
		Abbr:   item.String("abbr"),
		Market: item.String("market"),
		Name:   item.String("name"),
		Label:  labels.Resolve(document.Doc{"team": map[string]any(item)}),
	}
}
