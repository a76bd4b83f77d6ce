package serviceImp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmbook/database"
	"farmbook/pkg/apperr"
	"farmbook/pkg/season/repositoryImp"
	"farmbook/pkg/season/service"
)

func ptr[T any](v T) *T { return &v }

func fields(t *testing.T, err error) map[string][]string {
	t.Helper()
	var ve *apperr.ValidationError
	require.True(t, errors.As(err, &ve), "expected validation error, got %v", err)
	return ve.Fields
}

func services(t *testing.T) (service.DefinitionService, service.SeasonService) {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	return NewDefinitionService(db, repositoryImp.NewDefinitionRepository(db)),
		NewSeasonService(db, repositoryImp.NewSeasonRepository(db))
}

func TestDefinitionMonths(t *testing.T) {
	ctx := context.Background()
	defs, _ := services(t)

	_, err := defs.Create(ctx, service.DefinitionInput{Name: "Đông Xuân", StartMonth: ptr(0), EndMonth: ptr(13)})
	f := fields(t, err)
	assert.Contains(t, f, "start_month")
	assert.Contains(t, f, "end_month")

	d, err := defs.Create(ctx, service.DefinitionInput{Name: "Đông Xuân", StartMonth: ptr(11), EndMonth: ptr(4)})
	require.NoError(t, err)
	assert.Regexp(t, `^SD-`, d.Code)
}

func TestSeasonDates(t *testing.T) {
	ctx := context.Background()
	defs, seasons := services(t)
	d, err := defs.Create(ctx, service.DefinitionInput{Name: "Hè Thu", StartMonth: ptr(4), EndMonth: ptr(8)})
	require.NoError(t, err)

	_, err = seasons.Create(ctx, service.SeasonInput{
		Name: "Hè Thu 2026", SeasonDefinitionID: ptr(uint(99)), Year: ptr(1999),
		StartDate: ptr("2026-04-15"), EndDate: ptr("2026-04-15"),
	})
	f := fields(t, err)
	assert.Contains(t, f, "season_definition_id")
	assert.Contains(t, f, "year")
	assert.Contains(t, f, "end_date")

	_, err = seasons.Create(ctx, service.SeasonInput{Name: "Hè Thu 2026", StartDate: ptr("15/04/2026")})
	assert.Contains(t, fields(t, err), "start_date")

	ss, err := seasons.Create(ctx, service.SeasonInput{
		Name: "Hè Thu 2026", SeasonDefinitionID: &d.ID, Year: ptr(2026),
		StartDate: ptr("2026-04-15"), EndDate: ptr("2026-08-20"),
	})
	require.NoError(t, err)
	require.NotNil(t, ss.SeasonDefinition)
	assert.Equal(t, "2026-04-15", ss.StartDate.String())

	// validated against the stored start date
	_, err = seasons.Update(ctx, ss.ID, service.SeasonPatch{EndDate: ptr("2026-04-01")})
	assert.Contains(t, fields(t, err), "end_date")

	got, err := seasons.Update(ctx, ss.ID, service.SeasonPatch{EndDate: ptr("2026-08-31")})
	require.NoError(t, err)
	assert.Equal(t, "2026-08-31", got.EndDate.String())

	var ce *apperr.ConflictError
	assert.ErrorAs(t, defs.Delete(ctx, d.ID), &ce)
	require.NoError(t, seasons.Delete(ctx, ss.ID))
	require.NoError(t, defs.Delete(ctx, d.ID))
}
