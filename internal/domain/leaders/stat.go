package leaders

import (
	"strings"

	"github.com/riskibarqy/diamond-stats/internal/domain/document"
)

const (
	StatHomeRuns         = "home_runs"
	StatBattingAverage   = "batting_average"
	StatERA              = "era"
	StatEarnedRunAverage = "earned_run_average"
)

var statAliases = map[string]string{
	StatERA: StatEarnedRunAverage,
}

// LookupKey resolves a requested statistic to the key used in the upstream
// payload. Unknown statistics pass through unchanged.
func LookupKey(requested string) string {
	if alias, ok := statAliases[requested]; ok {
		return alias
	}
	return requested
}

// Ascending reports whether lower values rank better for the lookup key.
func Ascending(lookup string) bool {
	return lookup == StatEarnedRunAverage
}

// DisplayName is the heading used for a requested statistic.
func DisplayName(requested string) string {
	switch LookupKey(requested) {
	case StatHomeRuns:
		return "Home Runs"
	case StatBattingAverage:
		return "Batting Average"
	case StatEarnedRunAverage:
		return "ERA"
	default:
		return strings.ReplaceAll(requested, "_", " ")
	}
}

func coerceValue(lookup string, record document.Doc) Value {
	switch lookup {
	case StatBattingAverage:
		return fromParse(document.ParseFloatPrefix(record.First("avg", "value")))
	case StatHomeRuns:
		raw := record.First("home_runs", "hr", "value")
		if raw == nil {
			raw = float64(0)
		}
		return fromParse(document.ParseIntPrefix(raw))
	case StatEarnedRunAverage:
		return fromParse(document.ToNumber(record.First("era", "value")))
	default:
		return fromParse(document.ToNumber(record.Field("value")))
	}
}

func fromParse(n float64, ok bool) Value {
	if !ok {
		return Missing()
	}
	return Some(n)
}
