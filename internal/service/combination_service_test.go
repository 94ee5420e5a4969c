package service

import (
	"testing"

	"go-catalog-admin/internal/model"
	"go-catalog-admin/pkg/combination"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectAll(groups ...*model.AttributeGroup) []combination.GroupSelection {
	out := make([]combination.GroupSelection, len(groups))
	for i, g := range groups {
		out[i].GroupID = g.ID
		for _, v := range g.Values {
			out[i].ValueIDs = append(out[i].ValueIDs, v.ID)
		}
	}
	return out
}

func TestPreviewCombinations(t *testing.T) {
	c := newTestCatalog(t, 0)
	p := c.product(t, "TSHIRT", "T-Shirt")
	color := c.attributeGroup(t, "Color", "Red", "Blue")
	size := c.attributeGroup(t, "Size", "S", "M")

	combos, err := c.combinations.Preview(p.ID, &GenerateCombinationsRequest{Selection: selectAll(color, size)})
	require.NoError(t, err)
	require.Len(t, combos, 4)

	assert.Equal(t, "TSHIRT-1", combos[0].SKU)
	assert.Equal(t, "Red - S", combos[0].Name)
	assert.True(t, combos[0].IsDefault)
	assert.Equal(t, "Blue - M", combos[3].Name)
	assert.Equal(t, "TSHIRT-4", combos[3].SKU)

	stored, err := c.combinations.List(p.ID)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestPreviewCustomBaseSKU(t *testing.T) {
	c := newTestCatalog(t, 0)
	p := c.product(t, "TSHIRT", "T-Shirt")
	color := c.attributeGroup(t, "Color", "Red")

	combos, err := c.combinations.Preview(p.ID, &GenerateCombinationsRequest{BaseSKU: " TS ", Selection: selectAll(color)})
	require.NoError(t, err)
	require.Len(t, combos, 1)
	assert.Equal(t, "TS-1", combos[0].SKU)
}

func TestGenerateCombinationsErrors(t *testing.T) {
	c := newTestCatalog(t, 2)
	p := c.product(t, "TSHIRT", "T-Shirt")
	color := c.attributeGroup(t, "Color", "Red", "Blue", "Green")

	_, err := c.combinations.Generate(p.ID, &GenerateCombinationsRequest{}, testActor)
	assert.ErrorIs(t, err, combination.ErrNoSelection)

	_, err = c.combinations.Generate(p.ID, &GenerateCombinationsRequest{Selection: selectAll(color)}, testActor)
	assert.ErrorIs(t, err, combination.ErrTooManyCombinations)

	bogus := []combination.GroupSelection{{GroupID: color.ID, ValueIDs: []uuid.UUID{uuid.New()}}}
	_, err = c.combinations.Generate(p.ID, &GenerateCombinationsRequest{Selection: bogus}, testActor)
	assert.ErrorIs(t, err, combination.ErrUnknownValue)

	_, err = c.combinations.Generate(uuid.New(), &GenerateCombinationsRequest{Selection: selectAll(color)}, testActor)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGenerateCombinationsReplacesPrevious(t *testing.T) {
	c := newTestCatalog(t, 0)
	p := c.product(t, "TSHIRT", "T-Shirt")
	color := c.attributeGroup(t, "Color", "Red", "Blue")
	size := c.attributeGroup(t, "Size", "S", "M", "L")

	first, err := c.combinations.Generate(p.ID, &GenerateCombinationsRequest{Selection: selectAll(color, size)}, testActor)
	require.NoError(t, err)
	require.Len(t, first, 6)
	assert.Equal(t, []uuid.UUID{color.Values[0].ID, size.Values[0].ID}, first[0].AttributeValueIDs())
	assert.Equal(t, "0", first[0].PriceImpact)
	assert.Equal(t, 0, first[0].Quantity)

	second, err := c.combinations.Generate(p.ID, &GenerateCombinationsRequest{Selection: selectAll(color)}, testActor)
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, "TSHIRT-1", second[0].SKU)

	var attrs int64
	require.NoError(t, c.db.Model(&model.CombinationAttribute{}).Count(&attrs).Error)
	assert.EqualValues(t, 2, attrs)

	defaults := 0
	for _, combo := range second {
		if combo.IsDefault {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestGenerateCombinationsSKUConflict(t *testing.T) {
	c := newTestCatalog(t, 0)
	a := c.product(t, "SHIRT", "Shirt A")
	b := c.product(t, "SHIRT2", "Shirt B")
	color := c.attributeGroup(t, "Color", "Red")

	_, err := c.combinations.Generate(a.ID, &GenerateCombinationsRequest{Selection: selectAll(color)}, testActor)
	require.NoError(t, err)

	_, err = c.combinations.Generate(b.ID, &GenerateCombinationsRequest{BaseSKU: "SHIRT", Selection: selectAll(color)}, testActor)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestUpdateAndDefaultCombination(t *testing.T) {
	c := newTestCatalog(t, 0)
	p := c.product(t, "TSHIRT", "T-Shirt")
	color := c.attributeGroup(t, "Color", "Red", "Blue", "Green")

	combos, err := c.combinations.Generate(p.ID, &GenerateCombinationsRequest{Selection: selectAll(color)}, testActor)
	require.NoError(t, err)

	updated, err := c.combinations.Update(combos[1].ID, &UpdateCombinationRequest{PriceImpact: "2.50", Quantity: 7}, "editor")
	require.NoError(t, err)
	assert.Equal(t, "2.50", updated.PriceImpact)
	assert.Equal(t, "0", updated.WeightImpact)
	assert.Equal(t, 7, updated.Quantity)

	_, err = c.combinations.Update(combos[1].ID, &UpdateCombinationRequest{PriceImpact: "abc"}, "editor")
	assert.Error(t, err)

	def, err := c.combinations.SetDefault(combos[2].ID, "editor")
	require.NoError(t, err)
	assert.True(t, def.IsDefault)

	list, err := c.combinations.List(p.ID)
	require.NoError(t, err)
	assert.False(t, list[0].IsDefault)
	assert.False(t, list[1].IsDefault)
	assert.True(t, list[2].IsDefault)
}

func TestDeleteDefaultCombinationPromotesNext(t *testing.T) {
	c := newTestCatalog(t, 0)
	p := c.product(t, "TSHIRT", "T-Shirt")
	color := c.attributeGroup(t, "Color", "Red", "Blue")

	combos, err := c.combinations.Generate(p.ID, &GenerateCombinationsRequest{Selection: selectAll(color)}, testActor)
	require.NoError(t, err)
	require.True(t, combos[0].IsDefault)

	require.NoError(t, c.combinations.Delete(combos[0].ID, testActor))

	list, err := c.combinations.List(p.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsDefault)

	assert.ErrorIs(t, c.combinations.Delete(combos[0].ID, testActor), ErrNotFound)
}

func TestRecreateDeletedProductWithCombinations(t *testing.T) {
	c := newTestCatalog(t, 0)
	p := c.product(t, "TS", "T-Shirt")
	color := c.attributeGroup(t, "Color", "Red", "Blue")
	req := &GenerateCombinationsRequest{Selection: selectAll(color)}

	_, err := c.combinations.Generate(p.ID, req, testActor)
	require.NoError(t, err)
	require.NoError(t, c.products.DeleteProduct(p.ID, testActor))

	var left int64
	require.NoError(t, c.db.Unscoped().Model(&model.ProductCombination{}).Where("product_id = ?", p.ID).Count(&left).Error)
	assert.Zero(t, left)

	again := c.product(t, "TS", "T-Shirt")
	assert.Equal(t, "t-shirt", again.Slug)

	combos, err := c.combinations.Generate(again.ID, req, testActor)
	require.NoError(t, err)
	require.Len(t, combos, 2)
	assert.Equal(t, "TS-1", combos[0].SKU)
}
