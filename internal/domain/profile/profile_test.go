package profile

import (
	"testing"

	"github.com/riskibarqy/diamond-stats/internal/domain/document"
)

func TestParse_ExtractsHeadlineTotals(t *testing.T) {
	t.Parallel()

	raw := document.Doc{
		"player": map[string]any{
			"id":               "ohtani",
			"first_name":       "Shohei",
			"last_name":        "Ohtani",
			"preferred_name":   "Shohei",
			"primary_position": "DH",
			"jersey_number":    "17",
			"birthcity":        "Oshu",
			"birthcountry":     "Japan",
			"team":             map[string]any{"market": "Los Angeles", "name": "Dodgers"},
			"seasons": []any{
				map[string]any{
					"year": float64(2025),
					"type": "REG",
					"totals": map[string]any{
						"statistics": map[string]any{
							"hitting": map[string]any{"overall": map[string]any{
								"avg":    ".282",
								"onbase": map[string]any{"hr": float64(55)},
							}},
							"pitching": map[string]any{"overall": map[string]any{
								"era": float64(2.87),
							}},
						},
					},
				},
			},
		},
	}

	got := Parse(raw)
	if got.Label != "Shohei Ohtani" {
		t.Fatalf("unexpected label: %q", got.Label)
	}
	if got.Team != "Los Angeles Dodgers" {
		t.Fatalf("unexpected team: %q", got.Team)
	}
	if got.Birthplace != "Oshu, Japan" {
		t.Fatalf("unexpected birthplace: %q", got.Birthplace)
	}
	if !got.Totals.BattingAverage.Valid || got.Totals.BattingAverage.Value != 0.282 {
		t.Fatalf("unexpected avg: %+v", got.Totals.BattingAverage)
	}
	if !got.Totals.HomeRuns.Valid || got.Totals.HomeRuns.Value != 55 {
		t.Fatalf("unexpected hr: %+v", got.Totals.HomeRuns)
	}
	if !got.Totals.EarnedRunAverage.Valid || got.Totals.EarnedRunAverage.Value != 2.87 {
		t.Fatalf("unexpected era: %+v", got.Totals.EarnedRunAverage)
	}
	if got.Totals.StrikeoutsPerNine.Valid {
		t.Fatalf("expected k9 to be missing")
	}
	if got.Totals.Season != 2025 || !got.Totals.HasHitting || !got.Totals.HasPitching {
		t.Fatalf("unexpected totals: %+v", got.Totals)
	}
}

func TestParse_NoSeasonsKeepsBio(t *testing.T) {
	t.Parallel()

	got := Parse(document.Doc{"player": map[string]any{"id": "p", "full_name": "Rookie Guy"}})
	if got.Label != "Rookie Guy" || got.ID != "p" {
		t.Fatalf("unexpected bio: %+v", got)
	}
	if got.Totals.BattingAverage.Valid || got.Totals.HasHitting {
		t.Fatalf("expected empty totals, got %+v", got.Totals)
	}
}
