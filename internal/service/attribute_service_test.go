package service

import (
	"testing"

	"go-catalog-admin/internal/model"
	"go-catalog-admin/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingCache struct {
	groups      []model.AttributeGroup
	hit         bool
	invalidated int
}

func (c *countingCache) GetGroups() ([]model.AttributeGroup, bool) { return c.groups, c.hit }
func (c *countingCache) SetGroups(groups []model.AttributeGroup) {
	c.groups = groups
	c.hit = true
}
func (c *countingCache) Invalidate() {
	c.groups = nil
	c.hit = false
	c.invalidated++
}

func TestAttributeGroupLifecycle(t *testing.T) {
	c := newTestCatalog(t, 0)

	color := c.attributeGroup(t, "Color", "Red", " Blue ")
	require.Len(t, color.Values, 2)
	assert.Equal(t, "Blue", color.Values[1].Name)
	assert.Equal(t, 1, color.Values[1].Position)

	green, err := c.attributes.AddValue(color.ID, &ValueRequest{Name: "Green", Position: 5}, testActor)
	require.NoError(t, err)

	got, err := c.attributes.GetGroup(color.ID)
	require.NoError(t, err)
	require.Len(t, got.Values, 3)
	assert.Equal(t, green.ID, got.Values[2].ID)

	_, err = c.attributes.UpdateValue(green.ID, &ValueRequest{Name: "Lime", Position: 0}, testActor)
	require.NoError(t, err)
	require.NoError(t, c.attributes.DeleteValue(color.Values[0].ID, testActor))

	got, err = c.attributes.GetGroup(color.ID)
	require.NoError(t, err)
	names := []string{}
	for _, v := range got.Values {
		names = append(names, v.Name)
	}
	assert.ElementsMatch(t, []string{"Lime", "Blue"}, names)

	renamed, err := c.attributes.UpdateGroup(color.ID, &GroupRequest{Name: "Colour"}, testActor)
	require.NoError(t, err)
	assert.Equal(t, "Colour", renamed.Name)

	require.NoError(t, c.attributes.DeleteGroup(color.ID, testActor))
	_, err = c.attributes.GetGroup(color.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var live int64
	require.NoError(t, c.db.Model(&model.AttributeValue{}).Where("group_id = ?", color.ID).Count(&live).Error)
	assert.Zero(t, live)
}

func TestAttributeValueNeedsGroup(t *testing.T) {
	c := newTestCatalog(t, 0)

	_, err := c.attributes.AddValue(uuid.New(), &ValueRequest{Name: "Red"}, testActor)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.attributes.CreateGroup(&GroupRequest{Name: ""}, testActor)
	assert.Error(t, err)
}

func TestAttributeListUsesCache(t *testing.T) {
	db := newTestDB(t)
	cache := &countingCache{}
	svc := NewAttributeService(repository.NewAttributeRepo(db), cache, Deps{})

	_, err := svc.CreateGroup(&GroupRequest{Name: "Size", Values: []string{"S"}}, testActor)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidated)

	groups, err := svc.ListGroups()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.True(t, cache.hit)

	// Rows written behind the service stay invisible until the next change.
	require.NoError(t, db.Create(&model.AttributeGroup{Name: "Material"}).Error)
	groups, err = svc.ListGroups()
	require.NoError(t, err)
	assert.Len(t, groups, 1)

	_, err = svc.CreateGroup(&GroupRequest{Name: "Color"}, testActor)
	require.NoError(t, err)
	groups, err = svc.ListGroups()
	require.NoError(t, err)
	assert.Len(t, groups, 3)
}
