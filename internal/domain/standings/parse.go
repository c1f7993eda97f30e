package standings

import (
	"math"
	"strings"

	"github.com/riskibarqy/diamond-stats/internal/domain/document"
)

// Parse walks league.season.leagues[].divisions[].teams[] and returns rows in
// payload order. When abbrs is non-empty only those teams are kept.
func Parse(raw document.Doc, abbrs ...string) []TeamStanding {
	filter := make(map[string]struct{}, len(abbrs))
	for _, abbr := range abbrs {
		if key := strings.ToUpper(strings.TrimSpace(abbr)); key != "" {
			filter[key] = struct{}{}
		}
	}

	leagues, ok := document.AsArray(raw.Path("league", "season", "leagues"))
	if !ok {
		return []TeamStanding{}
	}

	out := make([]TeamStanding, 0, 30)
	for _, item := range leagues {
		league, ok := document.AsObject(item)
		if !ok {
			continue
		}
		for _, division := range league.Objects("divisions") {
			for _, team := range division.Objects("teams") {
				row := parseTeam(team)
				row.League = document.Text(league.First("alias", "name"))
				row.Division = document.Text(division.First("alias", "name"))
				if len(filter) > 0 {
					if _, keep := filter[strings.ToUpper(row.Abbr)]; !keep {
						continue
					}
				}
				out = append(out, row)
			}
		}
	}
	return out
}

func parseTeam(team document.Doc) TeamStanding {
	winPct, _ := team.Float("win_p")
	gamesBack, _ := team.Float("games_back")

	return TeamStanding{
		ID:           team.String("id"),
		Abbr:         team.String("abbr"),
		Market:       team.String("market"),
		Name:         team.String("name"),
		Win:          team.Int("win"),
		Loss:         team.Int("loss"),
		WinPct:       winPct,
		GamesBack:    gamesBack,
		HomeWin:      team.Int("home_win"),
		HomeLoss:     team.Int("home_loss"),
		AwayWin:      team.Int("away_win"),
		AwayLoss:     team.Int("away_loss"),
		Last10Won:    team.Int("last_10_won"),
		Last10Lost:   team.Int("last_10_lost"),
		Streak:       team.String("streak"),
		DivisionRank: divisionRank(team.Field("rank")),
	}
}

// divisionRank accepts either a bare number or the {division, league, ...}
// object newer payloads send.
func divisionRank(raw any) int {
	if obj, ok := document.AsObject(raw); ok {
		return obj.Int("division")
	}
	n, ok := document.ToNumber(raw)
	if !ok || math.IsInf(n, 0) {
		return 0
	}
	return int(n)
}
