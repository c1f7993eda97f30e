package httpapi

import (
	"context"
	"strconv"
	"time"

	"github.com/riskibarqy/diamond-stats/internal/domain/games"
	"github.com/riskibarqy/diamond-stats/internal/domain/leaders"
	"github.com/riskibarqy/diamond-stats/internal/domain/profile"
	"github.com/riskibarqy/diamond-stats/internal/domain/standings"
	"github.com/riskibarqy/diamond-stats/internal/domain/teams"
	"github.com/riskibarqy/diamond-stats/internal/usecase"
)

type leaderListDTO struct {
	Season      int            `json:"season"`
	Phase       string         `json:"phase"`
	Stat        string         `json:"stat"`
	LookupStat  string         `json:"lookupStat"`
	DisplayName string         `json:"displayName"`
	Total       int            `json:"total"`
	Items       []leaderRowDTO `json:"items"`
	FetchedAt   string         `json:"fetchedAt"`
}

// leaderRowDTO keeps the upstream record under "record" with its value
// field replaced by the coerced number.
type leaderRowDTO struct {
	Position int                      `json:"position"`
	Label    string                   `json:"label"`
	Team     string                   `json:"team,omitempty"`
	Value    *float64                 `json:"value"`
	Record   leaders.NormalizedLeader `json:"record"`
}

type homeDTO struct {
	Season   int              `json:"season"`
	Phase    string           `json:"phase"`
	Sections []homeSectionDTO `json:"sections"`
}

type homeSectionDTO struct {
	Stat        string         `json:"stat"`
	DisplayName string         `json:"displayName"`
	Status      string         `json:"status"`
	Error       string         `json:"error,omitempty"`
	List        *leaderListDTO `json:"list,omitempty"`
}

type boardDTO struct {
	Selection  boardSelectionDTO `json:"selection"`
	Generation uint64            `json:"generation"`
	Status     string            `json:"status"`
	Refreshing bool              `json:"refreshing"`
	Error      string            `json:"error,omitempty"`
	RefreshID  string            `json:"refreshId,omitempty"`
	UpdatedAt  string            `json:"updatedAt,omitempty"`
	List       *leaderListDTO    `json:"list,omitempty"`
}

type boardSelectionDTO struct {
	Season int    `json:"season"`
	Phase  string `json:"phase"`
	Stat   string `json:"stat"`
	Limit  int    `json:"limit"`
}

type playerDTO struct {
	ID              string          `json:"id"`
	Label           string          `json:"label"`
	Position        string          `json:"position,omitempty"`
	PrimaryPosition string          `json:"primaryPosition,omitempty"`
	JerseyNumber    string          `json:"jerseyNumber,omitempty"`
	Team            string          `json:"team,omitempty"`
	Birthdate       string          `json:"birthdate,omitempty"`
	Birthplace      string          `json:"birthplace,omitempty"`
	Height          int             `json:"height,omitempty"`
	Weight          int             `json:"weight,omitempty"`
	BatHand         string          `json:"batHand,omitempty"`
	ThrowHand       string          `json:"throwHand,omitempty"`
	Totals          playerTotalsDTO `json:"totals"`
}

// playerTotalsDTO uses null for numbers the profile did not carry.
type playerTotalsDTO struct {
	Season            int      `json:"season,omitempty"`
	SeasonType        string   `json:"seasonType,omitempty"`
	BattingAverage    *float64 `json:"battingAverage"`
	HomeRuns          *float64 `json:"homeRuns"`
	EarnedRunAverage  *float64 `json:"era"`
	StrikeoutsPerNine *float64 `json:"strikeoutsPerNine"`
	HasHitting        bool     `json:"hasHitting"`
	HasPitching       bool     `json:"hasPitching"`
}

type playerComparisonDTO struct {
	Left  playerDTO `json:"left"`
	Right playerDTO `json:"right"`
}

type teamDTO struct {
	ID     string `json:"id"`
	Abbr   string `json:"abbr"`
	Market string `json:"market"`
	Name   string `json:"name"`
	Label  string `json:"label"`
}

type teamProfileDTO struct {
	Team   teamDTO           `json:"team"`
	Venue  string            `json:"venue,omitempty"`
	City   string            `json:"city,omitempty"`
	Roster []rosterPlayerDTO `json:"roster"`
}

type rosterPlayerDTO struct {
	ID              string `json:"id"`
	Label           string `json:"label"`
	PrimaryPosition string `json:"primaryPosition,omitempty"`
	JerseyNumber    string `json:"jerseyNumber,omitempty"`
	Status          string `json:"status,omitempty"`
}

type standingDTO struct {
	ID           string  `json:"id"`
	Abbr         string  `json:"abbr"`
	Market       string  `json:"market"`
	Name         string  `json:"name"`
	League       string  `json:"league,omitempty"`
	Division     string  `json:"division,omitempty"`
	Win          int     `json:"win"`
	Loss         int     `json:"loss"`
	WinPct       float64 `json:"winPct"`
	GamesBack    float64 `json:"gamesBack"`
	Home         string  `json:"home"`
	Away         string  `json:"away"`
	Last10       string  `json:"last10"`
	Last10WinPct float64 `json:"last10WinPct"`
	SeasonWinPct float64 `json:"seasonWinPct"`
	Trend        string  `json:"trend"`
	Streak       string  `json:"streak,omitempty"`
	StreakKind   string  `json:"streakKind"`
	DivisionRank int     `json:"divisionRank,omitempty"`
}

type scoreboardDTO struct {
	Date  string    `json:"date"`
	Live  int       `json:"live"`
	Games []gameDTO `json:"games"`
}

type gameDTO struct {
	ID        string      `json:"id"`
	Status    string      `json:"status"`
	Scheduled string      `json:"scheduled,omitempty"`
	Venue     string      `json:"venue,omitempty"`
	Live      bool        `json:"live"`
	Closed    bool        `json:"closed"`
	Home      gameSideDTO `json:"home"`
	Away      gameSideDTO `json:"away"`
}

type gameSideDTO struct {
	ID    string `json:"id,omitempty"`
	Abbr  string `json:"abbr,omitempty"`
	Label string `json:"label"`
	Runs  *int   `json:"runs"`
}

func leaderListToDTO(ctx context.Context, list usecase.LeaderList) leaderListDTO {
	_, span := startSpan(ctx, "httpapi.leaderListToDTO")
	defer span.End()

	items := make([]leaderRowDTO, 0, len(list.Items))
	for _, row := range list.Items {
		items = append(items, leaderRowDTO{
			Position: row.Position,
			Label:    row.Label,
			Team:     row.Team,
			Value:    row.Leader.Value.Ptr(),
			Record:   row.Leader,
		})
	}
	return leaderListDTO{
		Season:      list.Season,
		Phase:       list.Phase,
		Stat:        list.Stat,
		LookupStat:  list.LookupStat,
		DisplayName: list.DisplayName,
		Total:       list.Total,
		Items:       items,
		FetchedAt:   formatTime(list.FetchedAt),
	}
}

func homeToDTO(ctx context.Context, home usecase.Home) homeDTO {
	sections := make([]homeSectionDTO, 0, len(home.Sections))
	for _, section := range home.Sections {
		item := homeSectionDTO{
			Stat:        section.Stat,
			DisplayName: leaders.DisplayName(section.Stat),
			Status:      string(usecase.BoardStatusReady),
		}
		if section.Error != nil {
			item.Status = string(usecase.BoardStatusError)
			item.Error = mapError(ctx, section.Error).Reason
		} else {
			list := leaderListToDTO(ctx, section.List)
			item.List = &list
		}
		sections = append(sections, item)
	}
	return homeDTO{Season: home.Season, Phase: home.Phase, Sections: sections}
}

func boardToDTO(ctx context.Context, snapshot usecase.BoardSnapshot) boardDTO {
	out := boardDTO{
		Selection: boardSelectionDTO{
			Season: snapshot.Selection.Season,
			Phase:  snapshot.Selection.Phase,
			Stat:   snapshot.Selection.Stat,
			Limit:  snapshot.Selection.Limit,
		},
		Generation: snapshot.Generation,
		Status:     string(snapshot.Status),
		Refreshing: snapshot.Refreshing,
		Error:      snapshot.Error,
		RefreshID:  snapshot.RefreshID,
		UpdatedAt:  formatTime(snapshot.UpdatedAt),
	}
	if snapshot.Status == usecase.BoardStatusReady {
		list := leaderListToDTO(ctx, snapshot.List)
		out.List = &list
	}
	return out
}

func playerToDTO(player profile.Player) playerDTO {
	return playerDTO{
		ID:              player.ID,
		Label:           player.Label,
		Position:        player.Position,
		PrimaryPosition: player.PrimaryPosition,
		JerseyNumber:    player.JerseyNumber,
		Team:            player.Team,
		Birthdate:       player.Birthdate,
		Birthplace:      player.Birthplace,
		Height:          player.Height,
		Weight:          player.Weight,
		BatHand:         player.BatHand,
		ThrowHand:       player.ThrowHand,
		Totals: playerTotalsDTO{
			Season:            player.Totals.Season,
			SeasonType:        player.Totals.SeasonType,
			BattingAverage:    statPtr(player.Totals.BattingAverage),
			HomeRuns:          statPtr(player.Totals.HomeRuns),
			EarnedRunAverage:  statPtr(player.Totals.EarnedRunAverage),
			StrikeoutsPerNine: statPtr(player.Totals.StrikeoutsPerNine),
			HasHitting:        player.Totals.HasHitting,
			HasPitching:       player.Totals.HasPitching,
		},
	}
}

func statPtr(s profile.Stat) *float64 {
	if !s.Valid {
		return nil
	}
	v := s.Value
	return &v
}

func teamToDTO(team teams.Team) teamDTO {
	return teamDTO{
		ID:     team.ID,
		Abbr:   team.Abbr,
		Market: team.Market,
		Name:   team.Name,
		Label:  team.Label,
	}
}

func teamProfileToDTO(item teams.Profile) teamProfileDTO {
	roster := make([]rosterPlayerDTO, 0, len(item.Roster))
	for _, player := range item.Roster {
		roster = append(roster, rosterPlayerDTO{
			ID:              player.ID,
			Label:           player.Label,
			PrimaryPosition: player.PrimaryPosition,
			JerseyNumber:    player.JerseyNumber,
			Status:          player.Status,
		})
	}
	return teamProfileDTO{
		Team:   teamToDTO(item.Team),
		Venue:  item.Venue,
		City:   item.City,
		Roster: roster,
	}
}

func standingToDTO(row standings.TeamStanding) standingDTO {
	return standingDTO{
		ID:           row.ID,
		Abbr:         row.Abbr,
		Market:       row.Market,
		Name:         row.Name,
		League:       row.League,
		Division:     row.Division,
		Win:          row.Win,
		Loss:         row.Loss,
		WinPct:       row.WinPct,
		GamesBack:    row.GamesBack,
		Home:         record(row.HomeWin, row.HomeLoss),
		Away:         record(row.AwayWin, row.AwayLoss),
		Last10:       record(row.Last10Won, row.Last10Lost),
		Last10WinPct: row.Last10WinPct(),
		SeasonWinPct: row.SeasonWinPct(),
		Trend:        string(row.Trend()),
		Streak:       row.Streak,
		StreakKind:   string(row.StreakKind()),
		DivisionRank: row.DivisionRank,
	}
}

func scoreboardToDTO(board usecase.Scoreboard) scoreboardDTO {
	items := make([]gameDTO, 0, len(board.Games))
	for _, game := range board.Games {
		items = append(items, gameDTO{
			ID:        game.ID,
			Status:    game.Status,
			Scheduled: game.Scheduled,
			Venue:     game.Venue,
			Live:      game.Live(),
			Closed:    game.Closed(),
			Home:      gameSideToDTO(game.Home),
			Away:      gameSideToDTO(game.Away),
		})
	}
	return scoreboardDTO{
		Date:  board.Date.Format(time.DateOnly),
		Live:  board.Live,
		Games: items,
	}
}

func gameSideToDTO(side games.Side) gameSideDTO {
	return gameSideDTO{ID: side.ID, Abbr: side.Abbr, Label: side.Label, Runs: side.Runs}
}

func record(win, loss int) string {
	return strconv.Itoa(win) + "-" + strconv.Itoa(loss)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
