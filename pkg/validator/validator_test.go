package validator

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name    string    `validate:"required"`
	Slug    string    `validate:"omitempty,slug"`
	OwnerID uuid.UUID `validate:"uuid_required"`
}

func TestValidateStructPasses(t *testing.T) {
	errs := ValidateStruct(&sample{Name: "ok", Slug: "good-slug", OwnerID: uuid.New()})
	assert.Empty(t, errs)
	assert.NoError(t, Check(&sample{Name: "ok", OwnerID: uuid.New()}))
}

func TestValidateStructReportsFields(t *testing.T) {
	errs := ValidateStruct(&sample{Slug: "Bad Slug"})
	require.Len(t, errs, 3)
	assert.Equal(t, "sample.Name", errs[0].FailedField)
	assert.Equal(t, "required", errs[0].Tag)
	assert.Equal(t, "slug", errs[1].Tag)
	assert.Equal(t, "uuid_required", errs[2].Tag)
}

func TestCheckReturnsValidationError(t *testing.T) {
	err := Check(&sample{OwnerID: uuid.New()})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Validation failed: Field 'sample.Name' failed on tag 'required'", verr.Error())
}

func TestValidateStructNonStruct(t *testing.T) {
	errs := ValidateStruct(nil)
	require.Len(t, errs, 1)
}
