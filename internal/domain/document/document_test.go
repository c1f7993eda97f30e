package document

import (
	"math"
	"testing"
)

func TestDoc_PathToleratesMissingNesting(t *testing.T) {
	t.Parallel()

	doc := Doc{
		"league": map[string]any{
			"season": map[string]any{"year": float64(2025)},
		},
		"broken": "not-an-object",
	}

	if got := doc.Path("league", "season", "year"); got != float64(2025) {
		t.Fatalf("unexpected year: %v", got)
	}
	if got := doc.Path("broken", "anything"); got != nil {
		t.Fatalf("expected nil for scalar nesting, got %v", got)
	}
	if got := Doc(nil).Path("a", "b"); got != nil {
		t.Fatalf("expected nil for nil doc, got %v", got)
	}
	if got := doc.Object("league").Object("missing").Array("teams"); got != nil {
		t.Fatalf("expected nil array, got %v", got)
	}
}

func TestDoc_ObjectsSkipsNonObjects(t *testing.T) {
	t.Parallel()

	doc := Doc{"players": []any{map[string]any{"id": "1"}, "x", nil, float64(3), map[string]any{"id": "2"}}}
	got := doc.Objects("players")
	if len(got) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(got))
	}
}

func TestDoc_FirstUsesNullishFallback(t *testing.T) {
	t.Parallel()

	doc := Doc{"home_runs": float64(0), "hr": float64(12), "avg": nil, "value": ".300"}
	if got := doc.First("home_runs", "hr"); got != float64(0) {
		t.Fatalf("expected zero to win over fallback, got %v", got)
	}
	if got := doc.First("avg", "value"); got != ".300" {
		t.Fatalf("expected null to fall through, got %v", got)
	}
	if got := doc.First("missing"); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestToNumber(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in     any
		want   float64
		wantOK bool
	}{
		{in: float64(2.1), want: 2.1, wantOK: true},
		{in: "3.25", want: 3.25, wantOK: true},
		{in: "  ", want: 0, wantOK: true},
		{in: nil, want: 0, wantOK: true},
		{in: true, want: 1, wantOK: true},
		{in: "2.1abc", wantOK: false},
		{in: map[string]any{}, wantOK: false},
		{in: "-Infinity", want: math.Inf(-1), wantOK: true},
	}

	for _, tc := range cases {
		got, ok := ToNumber(tc.in)
		if ok != tc.wantOK {
			t.Fatalf("ToNumber(%#v) ok=%v, want %v", tc.in, ok, tc.wantOK)
		}
		if ok && got != tc.want {
			t.Fatalf("ToNumber(%#v)=%v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseFloatPrefix(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in     any
		want   float64
		wantOK bool
	}{
		{in: ".312", want: 0.312, wantOK: true},
		{in: "0.298 avg", want: 0.298, wantOK: true},
		{in: float64(0.275), want: 0.275, wantOK: true},
		{in: "", wantOK: false},
		{in: nil, wantOK: false},
		{in: "abc", wantOK: false},
	}

	for _, tc := range cases {
		got, ok := ParseFloatPrefix(tc.in)
		if ok != tc.wantOK {
			t.Fatalf("ParseFloatPrefix(%#v) ok=%v, want %v", tc.in, ok, tc.wantOK)
		}
		if ok && got != tc.want {
			t.Fatalf("ParseFloatPrefix(%#v)=%v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseIntPrefix(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in     any
		want   float64
		wantOK bool
	}{
		{in: float64(42), want: 42, wantOK: true},
		{in: float64(42.9), want: 42, wantOK: true},
		{in: "17 HR", want: 17, wantOK: true},
		{in: "-3", want: -3, wantOK: true},
		{in: "HR", wantOK: false},
		{in: nil, wantOK: false},
	}

	for _, tc := range cases {
		got, ok := ParseIntPrefix(tc.in)
		if ok != tc.wantOK {
			t.Fatalf("ParseIntPrefix(%#v) ok=%v, want %v", tc.in, ok, tc.wantOK)
		}
		if ok && got != tc.want {
			t.Fatalf("ParseIntPrefix(%#v)=%v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestTruthyAndText(t *testing.T) {
	t.Parallel()

	if Truthy("") || Truthy(float64(0)) || Truthy(nil) || Truthy(false) {
		t.Fatalf("expected falsy values")
	}
	if !Truthy("x") || !Truthy(float64(1)) || !Truthy(map[string]any{}) {
		t.Fatalf("expected truthy values")
	}
	if got := Text(float64(27)); got != "27" {
		t.Fatalf("unexpected text: %q", got)
	}
	if got := Text(map[string]any{"a": 1}); got != "" {
		t.Fatalf("expected empty text for object, got %q", got)
	}
}
