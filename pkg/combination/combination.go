// Package combination expands selected attribute values into product variants.
package combination

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNoSelection         = errors.New("select at least one group and value")
	ErrTooManyCombinations = errors.New("too many combinations")
	ErrUnknownValue        = errors.New("unknown attribute value")
)

// NameSeparator joins value names into a combination name.
const NameSeparator = " - "

// Value is one option of an attribute group, e.g. "Red".
type Value struct {
	ID   uuid.UUID
	Name string
}

// Group is an attribute group with its available values, e.g. "Color".
type Group struct {
	ID     uuid.UUID
	Name   string
	Values []Value
}

// Combination is a single generated variant.
type Combination struct {
	SKU               string      `json:"sku"`
	Name              string      `json:"name"`
	PriceImpact       string      `json:"price_impact"`
	WeightImpact      string      `json:"weight_impact"`
	Quantity          string      `json:"quantity"`
	IsDefault         bool        `json:"is_default"`
	AttributeValueIDs []uuid.UUID `json:"attribute_value_ids"`
}

type tuple struct {
	groupID   uuid.UUID
	valueID   uuid.UUID
	valueName string
}

// Count returns the number of combinations sel would produce, saturating at
// math.MaxUint64.
func Count(sel *Selection) uint64 {
	if sel.Empty() {
		return 0
	}
	var total uint64 = 1
	for _, g := range sel.groups {
		n := uint64(len(g.ValueIDs))
		if total > math.MaxUint64/n {
			return math.MaxUint64
		}
		total *= n
	}
	return total
}

// Generate returns the cartesian product of the selected values without a
// size limit.
func Generate(baseSKU string, sel *Selection, groups []Group) ([]Combination, error) {
	return GenerateLimited(baseSKU, sel, groups, 0)
}

// GenerateLimited returns the cartesian product of the selected values in
// group-selection order, the first group varying slowest. Combination i gets
// the SKU "baseSKU-(i+1)" and only the first one is the default. A positive
// limit rejects selections that would produce more combinations than limit.
func GenerateLimited(baseSKU string, sel *Selection, groups []Group, limit int) ([]Combination, error) {
	if sel.Empty() {
		return nil, ErrNoSelection
	}
	total := Count(sel)
	if limit > 0 && total > uint64(limit) {
		return nil, fmt.Errorf("%w: %d exceeds limit of %d", ErrTooManyCombinations, total, limit)
	}

	names := make(map[uuid.UUID]map[uuid.UUID]string, len(groups))
	for _, g := range groups {
		values := make(map[uuid.UUID]string, len(g.Values))
		for _, v := range g.Values {
			values[v.ID] = v.Name
		}
		names[g.ID] = values
	}

	lists := make([][]tuple, 0, len(sel.groups))
	for _, g := range sel.groups {
		list := make([]tuple, 0, len(g.ValueIDs))
		for _, valueID := range g.ValueIDs {
			name, ok := names[g.GroupID][valueID]
			if !ok {
				return nil, fmt.Errorf("%w: group %s value %s", ErrUnknownValue, g.GroupID, valueID)
			}
			list = append(list, tuple{groupID: g.GroupID, valueID: valueID, valueName: name})
		}
		lists = append(lists, list)
	}

	product := [][]tuple{{}}
	for _, list := range lists {
		next := make([][]tuple, 0, len(product)*len(list))
		for _, prefix := range product {
			for _, t := range list {
				row := make([]tuple, len(prefix), len(prefix)+1)
				copy(row, prefix)
				next = append(next, append(row, t))
			}
		}
		product = next
	}

	out := make([]Combination, len(product))
	for i, row := range product {
		parts := make([]string, len(row))
		ids := make([]uuid.UUID, len(row))
		for j, t := range row {
			parts[j] = t.valueName
			ids[j] = t.valueID
		}
		out[i] = Combination{
			SKU:               fmt.Sprintf("%s-%d", baseSKU, i+1),
			Name:              strings.Join(parts, NameSeparator),
			PriceImpact:       "0",
			WeightImpact:      "0",
			Quantity:          "0",
			IsDefault:         i == 0,
			AttributeValueIDs: ids,
		}
	}
	return out, nil
}
