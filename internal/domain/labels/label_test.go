package labels

import (
	"testing"

	"github.com/riskibarqy/diamond-stats/internal/domain/document"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   document.Doc
		want string
	}{
		{name: "full name", in: document.Doc{"full_name": "Mike Trout"}, want: "Mike Trout"},
		{name: "first and last", in: document.Doc{"first_name": "Mike", "last_name": "Trout"}, want: "Mike Trout"},
		{name: "team fallback", in: document.Doc{"team": map[string]any{"market": "Los Angeles", "name": "Angels"}}, want: "Los Angeles Angels"},
		{name: "empty", in: document.Doc{}, want: "Unknown"},
		{name: "nil", in: nil, want: "Unknown"},
		{name: "preferred with last", in: document.Doc{"preferred_name": "Shohei", "last_name": "Ohtani", "first_name": "Shohei"}, want: "Shohei Ohtani"},
		{name: "preferred only", in: document.Doc{"preferred_name": "Ichiro"}, want: "Ichiro"},
		{name: "name beats first last", in: document.Doc{"name": "Yankees", "first_name": "x"}, want: "Yankees"},
		{name: "last only trims", in: document.Doc{"last_name": "Judge"}, want: "Judge"},
		{name: "nested player", in: document.Doc{"player": map[string]any{"full_name": "Aaron Judge", "name": "AJ"}}, want: "Aaron Judge"},
		{name: "nested player name", in: document.Doc{"player": map[string]any{"name": "Judge"}}, want: "Judge"},
		{name: "team abbr", in: document.Doc{"team": map[string]any{"abbr": "NYY"}}, want: "NYY"},
		{name: "team market abbr", in: document.Doc{"team": map[string]any{"market": "New York", "abbr": "NYY"}}, want: "New York NYY"},
		{name: "full name beats nested", in: document.Doc{"full_name": "A", "player": map[string]any{"full_name": "B"}}, want: "A"},
		{name: "empty full name falls through", in: document.Doc{"full_name": "", "name": "C"}, want: "C"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Resolve(tc.in); got != tc.want {
				t.Fatalf("Resolve()=%q, want %q", got, tc.want)
			}
		})
	}
}
