package combination

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	color, size           Group
	red, blue, small, med Value
}

func newFixture() fixture {
	f := fixture{
		red:   Value{ID: uuid.New(), Name: "Red"},
		blue:  Value{ID: uuid.New(), Name: "Blue"},
		small: Value{ID: uuid.New(), Name: "S"},
		med:   Value{ID: uuid.New(), Name: "M"},
	}
	f.color = Group{ID: uuid.New(), Name: "Color", Values: []Value{f.red, f.blue}}
	f.size = Group{ID: uuid.New(), Name: "Size", Values: []Value{f.small, f.med}}
	return f
}

func TestGenerateTShirt(t *testing.T) {
	f := newFixture()
	sel := NewSelection()
	sel.Select(f.color.ID, f.red.ID, f.blue.ID)
	sel.Select(f.size.ID, f.small.ID, f.med.ID)

	got, err := Generate("TSHIRT", sel, []Group{f.color, f.size})
	require.NoError(t, err)
	require.Len(t, got, 4)

	want := []struct {
		sku, name string
		ids       []uuid.UUID
	}{
		{"TSHIRT-1", "Red - S", []uuid.UUID{f.red.ID, f.small.ID}},
		{"TSHIRT-2", "Red - M", []uuid.UUID{f.red.ID, f.med.ID}},
		{"TSHIRT-3", "Blue - S", []uuid.UUID{f.blue.ID, f.small.ID}},
		{"TSHIRT-4", "Blue - M", []uuid.UUID{f.blue.ID, f.med.ID}},
	}
	for i, w := range want {
		assert.Equal(t, w.sku, got[i].SKU)
		assert.Equal(t, w.name, got[i].Name)
		assert.Equal(t, w.ids, got[i].AttributeValueIDs)
		assert.Equal(t, i == 0, got[i].IsDefault)
		assert.Equal(t, "0", got[i].PriceImpact)
		assert.Equal(t, "0", got[i].WeightImpact)
		assert.Equal(t, "0", got[i].Quantity)
	}
}

func TestGenerateFollowsSelectionOrder(t *testing.T) {
	f := newFixture()
	sel := NewSelection()
	sel.Select(f.size.ID, f.med.ID)
	sel.Select(f.color.ID, f.blue.ID, f.red.ID)

	got, err := Generate("X", sel, []Group{f.color, f.size})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "M - Blue", got[0].Name)
	assert.Equal(t, "M - Red", got[1].Name)
}

func TestGenerateSizeAndUniqueness(t *testing.T) {
	groups := make([]Group, 0, 3)
	sel := NewSelection()
	counts := []int{3, 2, 4}
	for gi, n := range counts {
		g := Group{ID: uuid.New(), Name: fmt.Sprintf("G%d", gi)}
		for vi := 0; vi < n; vi++ {
			v := Value{ID: uuid.New(), Name: fmt.Sprintf("v%d", vi)}
			g.Values = append(g.Values, v)
			sel.Select(g.ID, v.ID)
		}
		groups = append(groups, g)
	}

	got, err := Generate("BASE", sel, groups)
	require.NoError(t, err)
	assert.Len(t, got, 24)
	assert.Equal(t, uint64(24), Count(sel))

	skus := map[string]bool{}
	defaults := 0
	for i, c := range got {
		assert.Equal(t, fmt.Sprintf("BASE-%d", i+1), c.SKU)
		assert.False(t, skus[c.SKU])
		skus[c.SKU] = true
		assert.Len(t, strings.Split(c.Name, NameSeparator), 3)
		if c.IsDefault {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestGenerateEmptySelection(t *testing.T) {
	_, err := Generate("SKU", NewSelection(), nil)
	assert.ErrorIs(t, err, ErrNoSelection)

	_, err = Generate("SKU", nil, nil)
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestGenerateUnknownValue(t *testing.T) {
	f := newFixture()
	sel := NewSelection()
	sel.Select(f.color.ID, uuid.New())

	_, err := Generate("SKU", sel, []Group{f.color})
	assert.ErrorIs(t, err, ErrUnknownValue)
}

func TestGenerateLimited(t *testing.T) {
	f := newFixture()
	sel := NewSelection()
	sel.Select(f.color.ID, f.red.ID, f.blue.ID)
	sel.Select(f.size.ID, f.small.ID, f.med.ID)

	_, err := GenerateLimited("SKU", sel, []Group{f.color, f.size}, 3)
	assert.ErrorIs(t, err, ErrTooManyCombinations)

	got, err := GenerateLimited("SKU", sel, []Group{f.color, f.size}, 4)
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestCountSaturates(t *testing.T) {
	sel := NewSelection()
	for g := 0; g < 70; g++ {
		groupID := uuid.New()
		sel.Select(groupID, uuid.New(), uuid.New())
	}
	assert.Equal(t, ^uint64(0), Count(sel))
	assert.Equal(t, uint64(0), Count(NewSelection()))
}

func TestSelectionToggle(t *testing.T) {
	f := newFixture()
	sel := NewSelection()

	sel.Toggle(f.color.ID, f.red.ID)
	sel.Toggle(f.color.ID, f.blue.ID)
	sel.Toggle(f.size.ID, f.small.ID)
	require.Len(t, sel.Groups(), 2)
	assert.True(t, sel.Selected(f.color.ID, f.blue.ID))

	sel.Toggle(f.color.ID, f.red.ID)
	assert.Equal(t, []uuid.UUID{f.blue.ID}, sel.Groups()[0].ValueIDs)

	// removing the last value drops the whole group
	sel.Toggle(f.color.ID, f.blue.ID)
	groups := sel.Groups()
	require.Len(t, groups, 1)
	assert.Equal(t, f.size.ID, groups[0].GroupID)

	sel.Toggle(f.size.ID, f.small.ID)
	assert.True(t, sel.Empty())
}

func TestFromGroups(t *testing.T) {
	f := newFixture()
	sel := FromGroups([]GroupSelection{
		{GroupID: f.color.ID, ValueIDs: []uuid.UUID{f.red.ID}},
		{GroupID: f.size.ID},
		{GroupID: f.color.ID, ValueIDs: []uuid.UUID{f.red.ID, f.blue.ID}},
	})

	groups := sel.Groups()
	require.Len(t, groups, 1)
	assert.Equal(t, []uuid.UUID{f.red.ID, f.blue.ID}, groups[0].ValueIDs)
}
