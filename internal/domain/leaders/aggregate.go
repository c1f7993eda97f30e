// Package leaders turns a season-leaders payload into a ranked, deduplicated
// list for a single statistic.
package leaders

import (
	"fmt"
	"math"
	"sort"

	"github.com/riskibarqy/diamond-stats/internal/domain/document"
)

var categories = []string{"hitting", "pitching"}

// Aggregate flattens every league's hitting and pitching lists for the
// requested statistic, keeps the first record seen for each id, coerces the
// value and sorts. Malformed payloads yield an empty result.
func Aggregate(raw document.Doc, requestedStat string) []NormalizedLeader {
	lookup := LookupKey(requestedStat)

	candidates := flatten(raw, lookup)
	out := make([]NormalizedLeader, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for position, record := range candidates {
		key, ok := identityKey(record.Field("id"), position)
		if !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		out = append(out, NormalizedLeader{
			Record: record,
			Value:  coerceValue(lookup, record),
		})
	}

	if len(out) > 0 {
		rank(out, Ascending(lookup))
	}
	return out
}

func flatten(raw document.Doc, lookup string) []document.Doc {
	leagues, ok := document.AsArray(raw.Field("leagues"))
	if !ok {
		return nil
	}

	out := make([]document.Doc, 0, 64)
	for _, item := range leagues {
		league, ok := document.AsObject(item)
		if !ok {
			continue
		}
		for _, category := range categories {
			out = append(out, league.Object(category).Object(lookup).Objects("players")...)
		}
	}
	return out
}

func rank(items []NormalizedLeader, ascending bool) {
	sort.SliceStable(items, func(i, j int) bool {
		left, right := items[i].Value.sortKey(ascending), items[j].Value.sortKey(ascending)
		if left != right {
			if ascending {
				return left < right
			}
			return left > right
		}
		return rankOf(items[i].Record) < rankOf(items[j].Record)
	})
}

func rankOf(record document.Doc) float64 {
	raw := record.Field("rank")
	if !document.Present(raw) {
		return math.Inf(1)
	}
	n, ok := document.ToNumber(raw)
	if !ok {
		return math.Inf(1)
	}
	return n
}

// identityKey keeps ids of different JSON types apart so "1" and 1 are
// distinct entities. Object or array ids never match each other.
func identityKey(id any, position int) (string, bool) {
	switch typed := id.(type) {
	case nil:
		return "", false
	case string:
		if typed == "" {
			return "", false
		}
		return "s:" + typed, true
	case float64, float32, int, int64:
		return "n:" + document.Text(typed), true
	case bool:
		return fmt.Sprintf("b:%t", typed), true
	default:
		return fmt.Sprintf("o:%d", position), true
	}
}
