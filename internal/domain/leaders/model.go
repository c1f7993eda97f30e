package leaders

import (
	"math"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/diamond-stats/internal/domain/document"
)

// Value is a coerced statistic. Valid is false when the upstream field could
// not be turned into a number.
type Value struct {
	Number float64
	Valid  bool
}

func Some(n float64) Value {
	return Value{Number: n, Valid: true}
}

func Missing() Value {
	return Value{}
}

// Ptr returns nil for a missing value.
func (v Value) Ptr() *float64 {
	if !v.Valid || math.IsInf(v.Number, 0) || math.IsNaN(v.Number) {
		return nil
	}
	n := v.Number
	return &n
}

// sortKey applies the sentinel used for ordering: missing values always land
// at the end regardless of direction.
func (v Value) sortKey(ascending bool) float64 {
	if v.Valid {
		return v.Number
	}
	if ascending {
		return math.Inf(1)
	}
	return math.Inf(-1)
}

// NormalizedLeader is an upstream leader record with its coerced value.
type NormalizedLeader struct {
	Record document.Doc
	Value  Value
}

func (l NormalizedLeader) ID() any {
	return l.Record.Field("id")
}

// MarshalJSON emits the original record with "value" replaced by the coerced
// number, or null when missing.
func (l NormalizedLeader) MarshalJSON() ([]byte, error) {
	out := l.Record.Clone()
	if ptr := l.Value.Ptr(); ptr != nil {
		out["value"] = *ptr
	} else {
		out["value"] = nil
	}
	return sonic.Marshal(map[string]any(out))
}
