package serviceImp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmbook/database"
	"farmbook/pkg/apperr"
	"farmbook/pkg/croptype/repositoryImp"
	"farmbook/pkg/croptype/service"
)

func ptr[T any](v T) *T { return &v }

func TestCropTypeRules(t *testing.T) {
	ctx := context.Background()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	svc := NewCropTypeService(db, repositoryImp.New(db))

	lua, err := svc.Create(ctx, service.CreateInput{
		Name:                    "Lúa IR50404",
		ScientificName:          ptr("Oryza sativa"),
		Category:                "cereal",
		TypicalGrowDurationDays: ptr(95),
	})
	require.NoError(t, err)
	assert.Regexp(t, `^CT-[0-9A-F]{8}$`, lua.Code)

	_, err = svc.Create(ctx, service.CreateInput{Name: "Sầu riêng", Category: "tree", TypicalGrowDurationDays: ptr(0)})
	var ve *apperr.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "category")
	assert.Contains(t, ve.Fields, "typical_grow_duration_days")

	_, err = svc.Create(ctx, service.CreateInput{Code: &lua.Code, Name: "Lúa OM5451", Category: "cereal"})
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "code")

	up, err := svc.Update(ctx, lua.ID, service.UpdateInput{Code: &lua.Code, IsActive: ptr(false)})
	require.NoError(t, err)
	assert.False(t, up.IsActive)
	assert.Equal(t, "Oryza sativa", up.ScientificName)

	require.NoError(t, svc.Delete(ctx, lua.ID))
	_, err = svc.Get(ctx, lua.ID)
	assert.True(t, apperr.IsNotFound(err))
}
