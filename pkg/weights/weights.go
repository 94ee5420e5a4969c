// Package weights validates how a category splits 100% of its ranking weight
// between price and feature groups.
package weights

import (
	"github.com/google/uuid"
)

const (
	TypePrice        = "price"
	TypeFeatureGroup = "feature_group"

	// Max is the total every category may allocate.
	Max = 100
)

// Weight is one allocation entry. FeatureGroupID is set only for
// feature_group entries.
type Weight struct {
	Type           string     `json:"type" validate:"required,oneof=price feature_group"`
	FeatureGroupID *uuid.UUID `json:"feature_group_id,omitempty" validate:"required_if=Type feature_group"`
	Weight         int        `json:"weight"`
	Position       int        `json:"position"`
}

// Result describes a weight set. Remaining is set when Total is below Max,
// Overage when it is above. Balanced means exactly Max.
type Result struct {
	Valid     bool `json:"valid"`
	Total     int  `json:"total"`
	Remaining int  `json:"remaining"`
	Overage   int  `json:"overage"`
	Balanced  bool `json:"balanced"`
}

// Validate sums every entry, price included. The set is valid iff the total
// does not exceed Max.
func Validate(ws []Weight) Result {
	total := 0
	for _, w := range ws {
		total += w.Weight
	}

	res := Result{
		Valid:    total <= Max,
		Total:    total,
		Balanced: total == Max,
	}
	switch {
	case total < Max:
		res.Remaining = Max - total
	case total > Max:
		res.Overage = total - Max
	}
	return res
}

// Clamp limits a single input to [0, Max].
func Clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > Max {
		return Max
	}
	return v
}

// HasPrice reports whether the set contains the price entry.
func HasPrice(ws []Weight) bool {
	for _, w := range ws {
		if w.Type == TypePrice {
			return true
		}
	}
	return false
}

// EnsurePrice prepends a zero price entry when the set has none.
func EnsurePrice(ws []Weight) []Weight {
	if HasPrice(ws) {
		return ws
	}
	out := make([]Weight, 0, len(ws)+1)
	out = append(out, Weight{Type: TypePrice})
	return append(out, ws...)
}

// Normalize clamps every weight, keeps a single price entry and renumbers
// positions in order.
func Normalize(ws []Weight) []Weight {
	ws = EnsurePrice(ws)
	out := make([]Weight, 0, len(ws))
	seenPrice := false
	for _, w := range ws {
		if w.Type == TypePrice {
			if seenPrice {
				continue
			}
			seenPrice = true
			w.FeatureGroupID = nil
		}
		w.Weight = Clamp(w.Weight)
		w.Position = len(out)
		out = append(out, w)
	}
	return out
}
