package serviceImp

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmbook/database"
	"farmbook/entities"
	"farmbook/pkg/apperr"
	"farmbook/pkg/watersource/repositoryImp"
	"farmbook/pkg/watersource/service"
)

func ptr[T any](v T) *T { return &v }

func setup(t *testing.T) (service.WaterSourceService, *entities.UnitOfMeasure) {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	m3 := &entities.UnitOfMeasure{Name: "Mét khối", Abbreviation: "m3", UnitType: entities.UnitTypeVolume, ConversionFactorToBase: 1, IsBaseUnit: true, IsActive: true}
	require.NoError(t, db.Create(m3).Error)
	return NewWaterSourceService(db, repositoryImp.New(db)), m3
}

func fields(t *testing.T, err error) map[string][]string {
	t.Helper()
	var ve *apperr.ValidationError
	require.True(t, errors.As(err, &ve), "expected validation error, got %v", err)
	return ve.Fields
}

func TestCreateGeneratesCode(t *testing.T) {
	svc, m3 := setup(t)
	ws, err := svc.Create(context.Background(), service.CreateInput{
		Name:           "Kênh Xáng Xà No",
		SourceType:     "canal",
		CapacityValue:  ptr(1200.0),
		CapacityUnitID: &m3.ID,
		WaterQuality:   ptr("good"),
		Latitude:       ptr(9.78),
		Longitude:      ptr(105.62),
	})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^WS-[0-9A-F]{8}$`), ws.Code)
	assert.True(t, ws.IsActive)
	require.NotNil(t, ws.CapacityUnit)
	assert.Equal(t, "m3", ws.CapacityUnit.Abbreviation)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := setup(t)
	_, err := svc.Create(context.Background(), service.CreateInput{
		Name:           "Giếng khoan",
		SourceType:     "ocean",
		CapacityValue:  ptr(-5.0),
		CapacityUnitID: ptr(uint(77)),
		WaterQuality:   ptr("muddy"),
		Latitude:       ptr(-91.0),
		Longitude:      ptr(181.0),
	})
	f := fields(t, err)
	for _, key := range []string{"source_type", "capacity_value", "capacity_unit_id", "water_quality", "latitude", "longitude"} {
		assert.Contains(t, f, key)
	}
	assert.NotContains(t, f, "name")
}

func TestCodeUniqueness(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(t)
	a, err := svc.Create(ctx, service.CreateInput{Code: ptr("WS-GIENG01"), Name: "Giếng 1", SourceType: "well"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, service.CreateInput{Code: ptr("WS-GIENG02"), Name: "Giếng 2", SourceType: "well"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, service.CreateInput{Code: ptr("WS-GIENG01"), Name: "Giếng 3", SourceType: "well"})
	assert.Contains(t, fields(t, err), "code")

	_, err = svc.Update(ctx, a.ID, service.UpdateInput{Code: ptr("WS-GIENG01"), Name: ptr("Giếng một")})
	require.NoError(t, err)

	_, err = svc.Update(ctx, b.ID, service.UpdateInput{Code: ptr("WS-GIENG01")})
	assert.Contains(t, fields(t, err), "code")
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := setup(t)
	ws, err := svc.Create(ctx, service.CreateInput{Name: "Ao", SourceType: "pond"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, ws.ID))
	_, err = svc.Get(ctx, ws.ID)
	assert.True(t, apperr.IsNotFound(err))
}
