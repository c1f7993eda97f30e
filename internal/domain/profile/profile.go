// Package profile extracts the bio and headline season totals from a player
// profile payload.
package profile

import (
	"github.com/riskibarqy/diamond-stats/internal/domain/document"
	"github.com/riskibarqy/diamond-stats/internal/domain/labels"
)

// Stat is a headline number that may be absent from the payload.
type Stat struct {
	Value float64
	Valid bool
}

type Totals struct {
	Season            int
	BattingAverage    Stat
	HomeRuns          Stat
	EarnedRunAverage  Stat
	StrikeoutsPerNine Stat
	SeasonType        string
	HasHitting        bool
	HasPitching       bool
}

type Player struct {
	ID              string
	Label           string
	Position        string
	PrimaryPosition string
	JerseyNumber    string
	Team            string
	Birthdate       string
	Birthplace      string
	Height          int
	Weight          int
	BatHand         string
	ThrowHand       string
	Totals          Totals
}

// Parse reads a players/{id}/profile.json document. The first entry in
// player.seasons supplies the totals.
func Parse(raw document.Doc) Player {
	player := raw.Object("player")
	if player == nil {
		player = raw
	}

	out := Player{
		ID:              player.String("id"),
		Label:           labels.Resolve(player),
		Position:        player.String("position"),
		PrimaryPosition: player.String("primary_position"),
		JerseyNumber:    player.String("jersey_number"),
		Birthdate:       player.String("birthdate"),
		Birthplace:      player.String("birthcity"),
		Height:          player.Int("height"),
		Weight:          player.Int("weight"),
		BatHand:         player.String("bat_hand"),
		ThrowHand:       player.String("throw_hand"),
	}
	if team := player.Object("team"); team != nil {
		out.Team = labels.Resolve(document.Doc{"team": map[string]any(team)})
	}
	if country := player.String("birthcountry"); country != "" {
		if out.Birthplace != "" {
			out.Birthplace += ", "
		}
		out.Birthplace += country
	}

	seasons := player.Objects("seasons")
	if len(seasons) == 0 {
		return out
	}
	season := seasons[0]
	statistics := season.Object("totals").Object("statistics")
	hitting := statistics.Object("hitting").Object("overall")
	pitching := statistics.Object("pitching").Object("overall")

	out.Totals = Totals{
		Season:            season.Int("year"),
		SeasonType:        season.String("type"),
		BattingAverage:    stat(hitting.Field("avg")),
		HomeRuns:          stat(hitting.Object("onbase").Field("hr")),
		EarnedRunAverage:  stat(pitching.Field("era")),
		StrikeoutsPerNine: stat(pitching.Field("k9")),
		HasHitting:        hitting != nil,
		HasPitching:       pitching != nil,
	}
	return out
}

func stat(raw any) Stat {
	if !document.Present(raw) {
		return Stat{}
	}
	n, ok := document.ToNumber(raw)
	if !ok {
		return Stat{}
	}
	return Stat{Value: n, Valid: true}
}
