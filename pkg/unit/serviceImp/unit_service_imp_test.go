package serviceImp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmbook/database"
	"farmbook/entities"
	"farmbook/pkg/apperr"
	"farmbook/pkg/unit/repositoryImp"
	"farmbook/pkg/unit/service"
)

func ptr[T any](v T) *T { return &v }

func newService(t *testing.T) service.UnitService {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	return NewUnitService(db, repositoryImp.New(db))
}

func fieldErrors(t *testing.T, err error) map[string][]string {
	t.Helper()
	var ve *apperr.ValidationError
	require.True(t, errors.As(err, &ve), "expected validation error, got %v", err)
	return ve.Fields
}

func TestCreateDefaultsAndUniqueAbbreviation(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	ha, err := svc.Create(ctx, service.CreateInput{Name: "Hecta", Abbreviation: "ha", UnitType: entities.UnitTypeArea, ConversionFactorToBase: ptr(10000.0)})
	require.NoError(t, err)
	assert.True(t, ha.IsActive)
	assert.False(t, ha.IsBaseUnit)

	m2, err := svc.Create(ctx, service.CreateInput{Name: "Mét vuông", Abbreviation: "m2", UnitType: entities.UnitTypeArea, IsBaseUnit: ptr(true)})
	require.NoError(t, err)
	assert.Equal(t, 1.0, m2.ConversionFactorToBase)

	_, err = svc.Create(ctx, service.CreateInput{Name: "Hecta 2", Abbreviation: "ha", UnitType: entities.UnitTypeArea})
	assert.Contains(t, fieldErrors(t, err), "abbreviation")

	// exact match: a different case is a different abbreviation
	_, err = svc.Create(ctx, service.CreateInput{Name: "Hecta hoa", Abbreviation: "HA", UnitType: entities.UnitTypeArea})
	assert.NoError(t, err)
}

func TestCreateRejectsBadInput(t *testing.T) {
	svc := newService(t)
	_, err := svc.Create(context.Background(), service.CreateInput{
		Abbreviation:           "x",
		UnitType:               "distance",
		ConversionFactorToBase: ptr(0.0),
	})
	fields := fieldErrors(t, err)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "unit_type")
	assert.Contains(t, fields, "conversion_factor_to_base")
}

func TestUpdateKeepsOwnAbbreviation(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	kg, err := svc.Create(ctx, service.CreateInput{Name: "Kilogram", Abbreviation: "kg", UnitType: entities.UnitTypeWeight, IsBaseUnit: ptr(true)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, service.CreateInput{Name: "Tấn", Abbreviation: "t", UnitType: entities.UnitTypeWeight, ConversionFactorToBase: ptr(1000.0)})
	require.NoError(t, err)

	got, err := svc.Update(ctx, kg.ID, service.UpdateInput{Abbreviation: ptr("kg"), Name: ptr("Ki-lô-gam")})
	require.NoError(t, err)
	assert.Equal(t, "Ki-lô-gam", got.Name)

	_, err = svc.Update(ctx, kg.ID, service.UpdateInput{Abbreviation: ptr("t")})
	assert.Contains(t, fieldErrors(t, err), "abbreviation")

	same, err := svc.Update(ctx, kg.ID, service.UpdateInput{})
	require.NoError(t, err)
	assert.Equal(t, got.Name, same.Name)
	assert.Equal(t, got.ConversionFactorToBase, same.ConversionFactorToBase)

	_, err = svc.Update(ctx, 999, service.UpdateInput{})
	assert.True(t, apperr.IsNotFound(err))
}

func TestConvert(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	ha, _ := svc.Create(ctx, service.CreateInput{Name: "Hecta", Abbreviation: "ha", UnitType: entities.UnitTypeArea, ConversionFactorToBase: ptr(10000.0)})
	sao, _ := svc.Create(ctx, service.CreateInput{Name: "Sào Nam Bộ", Abbreviation: "sao", UnitType: entities.UnitTypeArea, ConversionFactorToBase: ptr(1000.0)})
	kg, _ := svc.Create(ctx, service.CreateInput{Name: "Kilogram", Abbreviation: "kg", UnitType: entities.UnitTypeWeight})

	out, err := svc.Convert(ctx, 2.5, ha.ID, sao.ID)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, out.Result, 1e-9)
	assert.InDelta(t, 25000.0, out.BaseValue, 1e-9)
	assert.Equal(t, entities.UnitTypeArea, out.UnitType)

	_, err = svc.Convert(ctx, 1, ha.ID, kg.ID)
	assert.Contains(t, fieldErrors(t, err), "to_unit_id")

	_, err = svc.Convert(ctx, 1, 404, ha.ID)
	assert.Contains(t, fieldErrors(t, err), "from_unit_id")
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	u, err := svc.Create(ctx, service.CreateInput{Name: "Lít", Abbreviation: "l", UnitType: entities.UnitTypeVolume})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, u.ID))
	_, err = svc.Get(ctx, u.ID)
	assert.True(t, apperr.IsNotFound(err))
	assert.True(t, apperr.IsNotFound(svc.Delete(ctx, u.ID)))
}
