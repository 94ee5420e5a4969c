package service

import (
	"errors"
	"testing"

	"go-catalog-admin/internal/model"
	"go-catalog-admin/internal/repository"
	"go-catalog-admin/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceCreateFillsSlugAndAudit(t *testing.T) {
	c := newTestCatalog(t, 0)

	brand := &model.Brand{Name: "Жълта Къща"}
	require.NoError(t, c.brands.Create(brand, testActor))

	got, err := c.brands.Get(brand.ID)
	require.NoError(t, err)
	assert.Equal(t, "zhalta-kashta", got.Slug)
	assert.Equal(t, testActor, got.CreatedBy)
}

func TestResourceUniqueColumns(t *testing.T) {
	db := newTestDB(t)
	statuses := NewResourceService(repository.NewCRUDRepo[model.OrderStatus](db, "position ASC"), ResourceOptions[model.OrderStatus]{
		Name:   "order status",
		Unique: map[string]func(*model.OrderStatus) any{"code": func(s *model.OrderStatus) any { return s.Code }},
	}, Deps{})

	paid := &model.OrderStatus{Code: "paid", Name: "Paid", Color: "#00ff00"}
	require.NoError(t, statuses.Create(paid, testActor))

	err := statuses.Create(&model.OrderStatus{Code: "paid", Name: "Paid again", Color: "#00ff00"}, testActor)
	assert.ErrorIs(t, err, ErrDuplicate)

	// Saving a row under its own code is not a conflict.
	_, err = statuses.Update(paid.ID, &model.OrderStatus{Code: "paid", Name: "Payment received", Color: "#00ff00"}, "editor")
	require.NoError(t, err)
}

func TestResourceSlugConflict(t *testing.T) {
	c := newTestCatalog(t, 0)
	require.NoError(t, c.brands.Create(&model.Brand{Name: "Acme"}, testActor))

	err := c.brands.Create(&model.Brand{Name: "ACME"}, testActor)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestResourceValidation(t *testing.T) {
	c := newTestCatalog(t, 0)

	err := c.brands.Create(&model.Brand{Name: "Acme", Website: "not a url"}, testActor)
	var verr *validator.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "url", verr.Errors[0].Tag)
}

func TestResourceBeforeSave(t *testing.T) {
	db := newTestDB(t)
	errSelfParent := errors.New("category cannot be its own parent")
	categories := NewResourceService(repository.NewCRUDRepo[model.Category](db, ""), ResourceOptions[model.Category]{
		Name: "category",
		BeforeSave: func(c *model.Category, creating bool) error {
			if !creating && c.ParentID != nil && *c.ParentID == c.ID {
				return errSelfParent
			}
			return nil
		},
	}, Deps{})

	root := &model.Category{Name: "Root"}
	require.NoError(t, categories.Create(root, testActor))

	_, err := categories.Update(root.ID, &model.Category{Name: "Root", ParentID: &root.ID}, testActor)
	assert.ErrorIs(t, err, errSelfParent)
}

func TestResourceListUpdateDelete(t *testing.T) {
	c := newTestCatalog(t, 0)
	for _, name := range []string{"Zeta", "Alpha", "Mid"} {
		require.NoError(t, c.brands.Create(&model.Brand{Name: name}, testActor))
	}

	items, total, err := c.brands.List(repository.Page{Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, items, 2)
	assert.Equal(t, "Alpha", items[0].Name)

	updated, err := c.brands.Update(items[0].ID, &model.Brand{Name: "Alpha Prime"}, "editor")
	require.NoError(t, err)
	assert.Equal(t, "alpha-prime", updated.Slug)
	assert.Equal(t, testActor, updated.CreatedBy)
	assert.Equal(t, "editor", updated.UpdatedBy)

	require.NoError(t, c.brands.Delete(updated.ID, "editor"))
	_, err = c.brands.Get(updated.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.brands.Update(uuid.New(), &model.Brand{Name: "Ghost"}, "editor")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, c.brands.Delete(uuid.New(), "editor"), ErrNotFound)
}

func TestResourceRecreateAfterDelete(t *testing.T) {
	c := newTestCatalog(t, 0)

	nike := &model.Brand{Name: "Nike"}
	require.NoError(t, c.brands.Create(nike, testActor))
	require.NoError(t, c.brands.Delete(nike.ID, testActor))

	again := &model.Brand{Name: "Nike"}
	require.NoError(t, c.brands.Create(again, testActor))
	assert.Equal(t, "nike", again.Slug)
	assert.NotEqual(t, nike.ID, again.ID)

	// A live row still blocks the slug.
	assert.ErrorIs(t, c.brands.Create(&model.Brand{Name: "NIKE"}, testActor), ErrDuplicate)
}
