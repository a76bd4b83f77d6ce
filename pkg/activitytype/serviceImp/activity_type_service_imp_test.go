package serviceImp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmbook/database"
	"farmbook/pkg/activitytype/repositoryImp"
	"farmbook/pkg/activitytype/service"
	"farmbook/pkg/apperr"
)

func TestCategoryMustBeKnown(t *testing.T) {
	ctx := context.Background()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	svc := NewActivityTypeService(db, repositoryImp.New(db))

	_, err = svc.Create(ctx, service.CreateInput{Name: "Bơm nước", Category: "invalid_category"})
	var ve *apperr.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"The selected category is invalid."}, ve.Fields["category"])

	at, err := svc.Create(ctx, service.CreateInput{Name: "Bơm nước", Category: "irrigation"})
	require.NoError(t, err)
	assert.Equal(t, "irrigation", at.Category)
	assert.True(t, at.IsActive)

	bad := "harvest"
	_, err = svc.Update(ctx, at.ID, service.UpdateInput{Category: &bad})
	require.True(t, errors.As(err, &ve))
	assert.Contains(t, ve.Fields, "category")

	off := false
	got, err := svc.Update(ctx, at.ID, service.UpdateInput{IsActive: &off})
	require.NoError(t, err)
	assert.False(t, got.IsActive)
	assert.Equal(t, "irrigation", got.Category)
}
