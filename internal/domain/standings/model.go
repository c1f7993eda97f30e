package standings

type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

type StreakKind string

const (
	StreakWinning StreakKind = "winning"
	StreakLosing  StreakKind = "losing"
	StreakNone    StreakKind = "none"
)

// TeamStanding is one team's row in the season standings.
type TeamStanding struct {
	ID           string
	Abbr         string
	Market       string
	Name         string
	League       string
	Division     string
	Win          int
	Loss         int
	WinPct       float64
	GamesBack    float64
	HomeWin      int
	HomeLoss     int
	AwayWin      int
	AwayLoss     int
	Last10Won    int
	Last10Lost   int
	Streak       string
	DivisionRank int
}

// SeasonWinPct is wins over decisions, 0 when no games were played.
func (t TeamStanding) SeasonWinPct() float64 {
	return ratio(t.Win, t.Win+t.Loss)
}

func (t TeamStanding) Last10WinPct() float64 {
	return ratio(t.Last10Won, t.Last10Won+t.Last10Lost)
}

// Trend compares recent form against the season record.
func (t TeamStanding) Trend() Trend {
	season, recent := t.SeasonWinPct(), t.Last10WinPct()
	switch {
	case recent > season:
		return TrendUp
	case recent < season:
		return TrendDown
	default:
		return TrendFlat
	}
}

func (t TeamStanding) StreakKind() StreakKind {
	switch {
	case len(t.Streak) > 0 && (t.Streak[0] == 'W' || t.Streak[0] == 'w'):
		return StreakWinning
	case len(t.Streak) > 0 && (t.Streak[0] == 'L' || t.Streak[0] == 'l'):
		return StreakLosing
	default:
		return StreakNone
	}
}

func ratio(num, den int) float64 {
	if den <= 0 {
		return 0
	}
	return float64(num) / float64(den)
}
