package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrorOrdering(t *testing.T) {
	ve := NewValidation()
	assert.NoError(t, ve.OrNil())

	ve.Add("planned_end_date", "The planned end date field must be a date after planned start date.")
	ve.Add("name", "The name field is required.")
	ve.Add("planned_end_date", "second")

	require.Error(t, ve.OrNil())
	assert.Equal(t, []string{"planned_end_date", "name"}, ve.FieldNames())
	assert.Equal(t, "The planned end date field must be a date after planned start date. (and 1 more error)", ve.Error())
	assert.Len(t, ve.Fields["planned_end_date"], 2)
}

func TestMerge(t *testing.T) {
	a := Invalid("code", "The code has already been taken.")
	a.Merge(Invalid("name", "The name field is required.")).Merge(nil)
	assert.True(t, a.Has("code"))
	assert.True(t, a.Has("name"))
}

func TestNotFoundIs(t *testing.T) {
	err := fmt.Errorf("load: %w", NotFound("crop cycle", 7))
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, IsNotFound(err))
	assert.False(t, IsNotFound(errors.New("boom")))
	assert.Equal(t, "load: crop cycle 7 not found", err.Error())

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "crop cycle", nf.Resource)
}
