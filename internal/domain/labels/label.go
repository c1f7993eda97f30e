package labels

import (
	"strings"

	"github.com/riskibarqy/diamond-stats/internal/domain/document"
)

const Unknown = "Unknown"

// Resolve derives a display name for a player-or-team record. The checks run
// in a fixed order and the first match wins.
func Resolve(entity document.Doc) string {
	if entity == nil {
		return Unknown
	}

	if full := entity.Field("full_name"); document.Truthy(full) {
		return document.Text(full)
	}
	if preferred := entity.Field("preferred_name"); document.Truthy(preferred) {
		out := document.Text(preferred)
		if last := entity.Field("last_name"); document.Truthy(last) {
			out += " " + document.Text(last)
		}
		return out
	}
	if name := entity.Field("name"); document.Truthy(name) {
		return document.Text(name)
	}
	first, last := entity.Field("first_name"), entity.Field("last_name")
	if document.Truthy(first) || document.Truthy(last) {
		return strings.TrimSpace(document.Text(first) + " " + document.Text(last))
	}

	if player := entity.Object("player"); player != nil {
		full, name := player.Field("full_name"), player.Field("name")
		if document.Truthy(full) || document.Truthy(name) {
			if document.Present(full) {
				return document.Text(full)
			}
			return document.Text(name)
		}
	}

	if team := entity.Object("team"); team != nil {
		market, name, abbr := team.Field("market"), team.Field("name"), team.Field("abbr")
		if document.Truthy(market) || document.Truthy(name) || document.Truthy(abbr) {
			suffix := name
			if !document.Present(suffix) {
				suffix = abbr
			}
			return strings.TrimSpace(document.Text(market) + " " + document.Text(suffix))
		}
	}

	return Unknown
}
