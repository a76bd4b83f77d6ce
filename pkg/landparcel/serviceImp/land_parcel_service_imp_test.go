package serviceImp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"farmbook/database"
	"farmbook/entities"
	"farmbook/pkg/apperr"
	"farmbook/pkg/dates"
	"farmbook/pkg/landparcel/repositoryImp"
	"farmbook/pkg/landparcel/service"
)

func ptr[T any](v T) *T { return &v }

func setup(t *testing.T) (*gorm.DB, service.LandParcelService) {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	return db, NewLandParcelService(db, repositoryImp.New(db))
}

func fields(t *testing.T, err error) map[string][]string {
	t.Helper()
	var ve *apperr.ValidationError
	require.True(t, errors.As(err, &ve), "expected validation error, got %v", err)
	return ve.Fields
}

func ruongLua() service.CreateInput {
	return service.CreateInput{
		Name:      "Ruộng lúa Cờ Đỏ",
		LandType:  "rice_paddy",
		AreaValue: ptr(2.5),
		SoilType:  ptr("phù sa"),
		Latitude:  ptr(10.09),
		Longitude: ptr(105.43),
	}
}

func TestCreate(t *testing.T) {
	db, svc := setup(t)
	ha := &entities.UnitOfMeasure{Name: "Hecta", Abbreviation: "ha", UnitType: entities.UnitTypeArea, ConversionFactorToBase: 10000, IsActive: true}
	require.NoError(t, db.Create(ha).Error)

	in := ruongLua()
	in.AreaUnitID = &ha.ID
	p, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Regexp(t, `^LP-[0-9A-F]{8}$`, p.Code)
	assert.True(t, p.IsActive)
	require.NotNil(t, p.AreaUnit)
	assert.Equal(t, "ha", p.AreaUnit.Abbreviation)
}

func TestCreateValidation(t *testing.T) {
	_, svc := setup(t)
	cases := []struct {
		name  string
		mut   func(*service.CreateInput)
		field string
	}{
		{"missing name", func(in *service.CreateInput) { in.Name = "" }, "name"},
		{"bad land type", func(in *service.CreateInput) { in.LandType = "swamp" }, "land_type"},
		{"zero area", func(in *service.CreateInput) { in.AreaValue = ptr(0.0) }, "area_value"},
		{"missing area", func(in *service.CreateInput) { in.AreaValue = nil }, "area_value"},
		{"unknown unit", func(in *service.CreateInput) { in.AreaUnitID = ptr(uint(42)) }, "area_unit_id"},
		{"latitude", func(in *service.CreateInput) { in.Latitude = ptr(90.5) }, "latitude"},
		{"longitude", func(in *service.CreateInput) { in.Longitude = ptr(-180.1) }, "longitude"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := ruongLua()
			tc.mut(&in)
			_, err := svc.Create(context.Background(), in)
			assert.Contains(t, fields(t, err), tc.field)
		})
	}
}

func TestUpdateCodeUniqueness(t *testing.T) {
	ctx := context.Background()
	_, svc := setup(t)
	a := ruongLua()
	a.Code = ptr("LP-CODO01")
	pa, err := svc.Create(ctx, a)
	require.NoError(t, err)
	b := ruongLua()
	b.Code = ptr("LP-CODO02")
	pb, err := svc.Create(ctx, b)
	require.NoError(t, err)

	_, err = svc.Update(ctx, pa.ID, service.UpdateInput{Code: ptr("LP-CODO01"), AreaValue: ptr(3.0)})
	require.NoError(t, err)
	_, err = svc.Update(ctx, pb.ID, service.UpdateInput{Code: ptr("LP-CODO01")})
	assert.Contains(t, fields(t, err), "code")

	got, err := svc.Update(ctx, pa.ID, service.UpdateInput{})
	require.NoError(t, err)
	assert.Equal(t, 3.0, got.AreaValue)
	assert.Equal(t, "LP-CODO01", got.Code)
}

func TestWaterSourceAttachments(t *testing.T) {
	ctx := context.Background()
	db, svc := setup(t)
	p, err := svc.Create(ctx, ruongLua())
	require.NoError(t, err)
	canal := &entities.WaterSource{Code: "WS-KENH01", Name: "Kênh Thốt Nốt", SourceType: "canal", IsActive: true}
	well := &entities.WaterSource{Code: "WS-GIENG01", Name: "Giếng khoan", SourceType: "well", IsActive: true}
	require.NoError(t, db.Create(canal).Error)
	require.NoError(t, db.Create(well).Error)

	first, err := svc.AttachWaterSource(ctx, p.ID, service.AttachInput{WaterSourceID: &canal.ID, Accessibility: "gravity_fed", IsPrimarySource: ptr(true)})
	require.NoError(t, err)
	assert.True(t, first.IsPrimarySource)
	require.NotNil(t, first.WaterSource)

	_, err = svc.AttachWaterSource(ctx, p.ID, service.AttachInput{WaterSourceID: &canal.ID, Accessibility: "pumped"})
	assert.Contains(t, fields(t, err), "water_source_id")

	_, err = svc.AttachWaterSource(ctx, p.ID, service.AttachInput{WaterSourceID: &well.ID, Accessibility: "bucket"})
	assert.Contains(t, fields(t, err), "accessibility")

	_, err = svc.AttachWaterSource(ctx, p.ID, service.AttachInput{WaterSourceID: &well.ID, Accessibility: "pumped", IsPrimarySource: ptr(true)})
	require.NoError(t, err)

	links, err := svc.WaterSources(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, links, 2)
	primaries := 0
	for _, l := range links {
		if l.IsPrimarySource {
			primaries++
			assert.Equal(t, well.ID, l.WaterSourceID)
		}
	}
	assert.Equal(t, 1, primaries)

	require.NoError(t, svc.DetachWaterSource(ctx, p.ID, canal.ID))
	assert.True(t, apperr.IsNotFound(svc.DetachWaterSource(ctx, p.ID, canal.ID)))

	_, err = svc.WaterSources(ctx, 999)
	assert.True(t, apperr.IsNotFound(err))
}

func TestDeleteRejectedWhileReferenced(t *testing.T) {
	ctx := context.Background()
	db, svc := setup(t)
	p, err := svc.Create(ctx, ruongLua())
	require.NoError(t, err)
	free, err := svc.Create(ctx, ruongLua())
	require.NoError(t, err)

	ct := &entities.CropType{Code: "CT-LUA", Name: "Lúa", Category: "cereal", IsActive: true}
	ss := &entities.Season{Code: "SS-DX26", Name: "Đông Xuân 2026", IsActive: true}
	require.NoError(t, db.Create(ct).Error)
	require.NoError(t, db.Create(ss).Error)
	start, _ := dates.Parse("2026-01-05")
	cycle := &entities.CropCycle{
		CycleCode: "CC-1", LandParcelID: p.ID, CropTypeID: ct.ID, SeasonID: ss.ID,
		Status: entities.CycleStatusPlanned, PlannedStartDate: start, PlannedEndDate: start.AddDays(100),
	}
	require.NoError(t, db.Create(cycle).Error)

	var ce *apperr.ConflictError
	assert.ErrorAs(t, svc.Delete(ctx, p.ID), &ce)
	require.NoError(t, svc.Delete(ctx, free.ID))
	_, err = svc.Get(ctx, free.ID)
	assert.True(t, apperr.IsNotFound(err))
}
