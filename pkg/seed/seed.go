// Package seed fills an empty database with Mekong delta reference data and
// a handful of sample crop cycles. Everything goes through the services so
// the rows obey the same rules as API input.
package seed

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"farmbook/entities"
	"farmbook/pkg/logger"
	"farmbook/pkg/stageplan"

	activityLogRepoImp "farmbook/pkg/activitylog/repositoryImp"
	activityLogSvc "farmbook/pkg/activitylog/service"
	activityLogSvcImp "farmbook/pkg/activitylog/serviceImp"
	activityTypeRepoImp "farmbook/pkg/activitytype/repositoryImp"
	activityTypeSvc "farmbook/pkg/activitytype/service"
	activityTypeSvcImp "farmbook/pkg/activitytype/serviceImp"
	cropCycleRepoImp "farmbook/pkg/cropcycle/repositoryImp"
	cropCycleSvc "farmbook/pkg/cropcycle/service"
	cropCycleSvcImp "farmbook/pkg/cropcycle/serviceImp"
	cropTypeRepoImp "farmbook/pkg/croptype/repositoryImp"
	cropTypeSvc "farmbook/pkg/croptype/service"
	cropTypeSvcImp "farmbook/pkg/croptype/serviceImp"
	stageRepoImp "farmbook/pkg/cyclestage/repositoryImp"
	stageSvc "farmbook/pkg/cyclestage/service"
	stageSvcImp "farmbook/pkg/cyclestage/serviceImp"
	landParcelRepoImp "farmbook/pkg/landparcel/repositoryImp"
	landParcelSvc "farmbook/pkg/landparcel/service"
	landParcelSvcImp "farmbook/pkg/landparcel/serviceImp"
	seasonRepoImp "farmbook/pkg/season/repositoryImp"
	seasonSvc "farmbook/pkg/season/service"
	seasonSvcImp "farmbook/pkg/season/serviceImp"
	unitRepoImp "farmbook/pkg/unit/repositoryImp"
	unitSvc "farmbook/pkg/unit/service"
	unitSvcImp "farmbook/pkg/unit/serviceImp"
	waterSourceRepoImp "farmbook/pkg/watersource/repositoryImp"
	waterSourceSvc "farmbook/pkg/watersource/service"
	waterSourceSvcImp "farmbook/pkg/watersource/serviceImp"
)

// Summary counts what one run inserted.
type Summary struct {
	Skipped       bool `json:"skipped"`
	Units         int  `json:"units"`
	LandParcels   int  `json:"land_parcels"`
	WaterSources  int  `json:"water_sources"`
	CropTypes     int  `json:"crop_types"`
	Seasons       int  `json:"seasons"`
	ActivityTypes int  `json:"activity_types"`
	CropCycles    int  `json:"crop_cycles"`
	Stages        int  `json:"stages"`
	ActivityLogs  int  `json:"activity_logs"`
}

type seeder struct {
	log *logger.Logger
	sum Summary

	units   unitSvc.UnitService
	water   waterSourceSvc.WaterSourceService
	parcels landParcelSvc.LandParcelService
	crops   cropTypeSvc.CropTypeService
	defs    seasonSvc.DefinitionService
	seasons seasonSvc.SeasonService
	types   activityTypeSvc.ActivityTypeService
	cycles  cropCycleSvc.CropCycleService
	stages  stageSvc.CropCycleStageService
	logs    activityLogSvc.ActivityLogService

	unit map[string]uint
}

// Run seeds db unless it already holds units of measure. At most one cycle is
// planted per parcel and season, so cycles is capped at parcels x seasons.
func Run(ctx context.Context, db *gorm.DB, cycles int, log *logger.Logger) (Summary, error) {
	var n int64
	if err := db.WithContext(ctx).Model(&entities.UnitOfMeasure{}).Count(&n).Error; err != nil {
		return Summary{}, err
	}
	if n > 0 {
		log.Info("database already seeded", "units", n)
		return Summary{Skipped: true}, nil
	}

	s := &seeder{
		log:     log,
		units:   unitSvcImp.NewUnitService(db, unitRepoImp.New(db)),
		water:   waterSourceSvcImp.NewWaterSourceService(db, waterSourceRepoImp.New(db)),
		parcels: landParcelSvcImp.NewLandParcelService(db, landParcelRepoImp.New(db)),
		crops:   cropTypeSvcImp.NewCropTypeService(db, cropTypeRepoImp.New(db)),
		defs:    seasonSvcImp.NewDefinitionService(db, seasonRepoImp.NewDefinitionRepository(db)),
		seasons: seasonSvcImp.NewSeasonService(db, seasonRepoImp.NewSeasonRepository(db)),
		types:   activityTypeSvcImp.NewActivityTypeService(db, activityTypeRepoImp.New(db)),
		cycles:  cropCycleSvcImp.NewCropCycleService(db, cropCycleRepoImp.New(db)),
		stages:  stageSvcImp.NewCropCycleStageService(db, stageRepoImp.New(db), stageplan.Default()),
		logs:    activityLogSvcImp.NewActivityLogService(db, activityLogRepoImp.New(db)),
		unit:    map[string]uint{},
	}
	if err := s.run(ctx, cycles); err != nil {
		return s.sum, err
	}
	log.Info("seed finished",
		"units", s.sum.Units,
		"land_parcels", s.sum.LandParcels,
		"crop_cycles", s.sum.CropCycles,
		"stages", s.sum.Stages,
		"activity_logs", s.sum.ActivityLogs,
	)
	return s.sum, nil
}

func ptr[T any](v T) *T { return &v }

type unitRow struct {
	name, abbr, kind string
	factor           float64
	base             bool
}

var unitRows = []unitRow{
	{"Hecta", "ha", entities.UnitTypeArea, 1, true},
	{"Mét vuông", "m2", entities.UnitTypeArea, 0.0001, false},
	{"Công đất", "công", entities.UnitTypeArea, 0.1, false},
	{"Kilôgam", "kg", entities.UnitTypeWeight, 1, true},
	{"Tấn", "tấn", entities.UnitTypeWeight, 1000, false},
	{"Mét khối", "m3", entities.UnitTypeVolume, 1, true},
	{"Lít", "l", entities.UnitTypeVolume, 0.001, false},
	{"Đồng", "VND", entities.UnitTypeCurrency, 1, true},
	{"Giờ", "giờ", entities.UnitTypeTime, 1, true},
}

type parcelRow struct {
	name, landType, soil, place string
	area, lat, lng              float64
}

var parcelRows = []parcelRow{
	{"Ruộng Cờ Đỏ", "rice_paddy", "phù sa", "Cờ Đỏ, Cần Thơ", 2.5, 10.0957, 105.4301},
	{"Ruộng Phong Điền", "rice_paddy", "phù sa", "Phong Điền, Cần Thơ", 1.8, 9.9992, 105.6701},
	{"Vườn Cái Mơn", "orchard", "đất cát pha", "Chợ Lách, Bến Tre", 0.9, 10.2400, 106.1300},
	{"Ruộng Tháp Mười", "rice_paddy", "phèn", "Tháp Mười, Đồng Tháp", 3.2, 10.5475, 105.8101},
}

var waterRows = []waterSourceSvc.CreateInput{
	{Name: "Kênh Xáng Xà No", SourceType: "canal", WaterQuality: ptr("good")},
	{Name: "Sông Hậu", SourceType: "river", WaterQuality: ptr("fair")},
	{Name: "Giếng khoan Cái Mơn", SourceType: "well", WaterQuality: ptr("excellent")},
}

var cropRows = []cropTypeSvc.CreateInput{
	{Name: "Lúa IR50404", ScientificName: ptr("Oryza sativa"), Category: "cereal", TypicalGrowDurationDays: ptr(95)},
	{Name: "Lúa ST25", ScientificName: ptr("Oryza sativa"), Category: "cereal", TypicalGrowDurationDays: ptr(105)},
	{Name: "Bắp nếp", ScientificName: ptr("Zea mays"), Category: "cereal", TypicalGrowDurationDays: ptr(75)},
	{Name: "Sầu riêng Ri6", ScientificName: ptr("Durio zibethinus"), Category: "fruit"},
}

var activityRows = []activityTypeSvc.CreateInput{
	{Name: "Làm đất", Category: "land_preparation"},
	{Name: "Gieo sạ", Category: "planting"},
	{Name: "Bơm nước", Category: "irrigation"},
	{Name: "Bón phân", Category: "fertilizing"},
	{Name: "Phun thuốc", Category: "pest_control"},
	{Name: "Gặt lúa", Category: "harvesting"},
}

type seasonRow struct {
	def, name  string
	from, to   int
	start, end string
}

var seasonRows = []seasonRow{
	{"Đông Xuân", "Đông Xuân 2025-2026", 11, 3, "2025-11-15", "2026-03-15"},
	{"Hè Thu", "Hè Thu 2026", 4, 8, "2026-04-10", "2026-08-10"},
	{"Thu Đông", "Thu Đông 2026", 8, 12, "2026-08-20", "2026-12-10"},
}

func (s *seeder) run(ctx context.Context, cycles int) error {
	for _, u := range unitRows {
		out, err := s.units.Create(ctx, unitSvc.CreateInput{
			Name: u.name, Abbreviation: u.abbr, UnitType: u.kind,
			ConversionFactorToBase: ptr(u.factor), IsBaseUnit: ptr(u.base),
		})
		if err != nil {
			return fmt.Errorf("unit %s: %w", u.abbr, err)
		}
		s.unit[u.abbr] = out.ID
		s.sum.Units++
	}

	var water []uint
	for _, in := range waterRows {
		out, err := s.water.Create(ctx, in)
		if err != nil {
			return fmt.Errorf("water source %s: %w", in.Name, err)
		}
		water = append(water, out.ID)
		s.sum.WaterSources++
	}

	var parcels []uint
	for i, p := range parcelRows {
		out, err := s.parcels.Create(ctx, landParcelSvc.CreateInput{
			Name: p.name, LandType: p.landType, AreaValue: ptr(p.area), AreaUnitID: ptr(s.unit["ha"]),
			SoilType: ptr(p.soil), LocationDescription: ptr(p.place), Latitude: ptr(p.lat), Longitude: ptr(p.lng),
		})
		if err != nil {
			return fmt.Errorf("land parcel %s: %w", p.name, err)
		}
		_, err = s.parcels.AttachWaterSource(ctx, out.ID, landParcelSvc.AttachInput{
			WaterSourceID: ptr(water[i%len(water)]), Accessibility: "pumped", IsPrimarySource: ptr(true),
		})
		if err != nil {
			return fmt.Errorf("attach water source to %s: %w", p.name, err)
		}
		parcels = append(parcels, out.ID)
		s.sum.LandParcels++
	}

	var crops []uint
	for _, in := range cropRows {
		out, err := s.crops.Create(ctx, in)
		if err != nil {
			return fmt.Errorf("crop type %s: %w", in.Name, err)
		}
		crops = append(crops, out.ID)
		s.sum.CropTypes++
	}

	types := map[string]uint{}
	for _, in := range activityRows {
		out, err := s.types.Create(ctx, in)
		if err != nil {
			return fmt.Errorf("activity type %s: %w", in.Name, err)
		}
		types[in.Category] = out.ID
		s.sum.ActivityTypes++
	}

	var seasons []seasonRow
	var seasonIDs []uint
	for _, r := range seasonRows {
		def, err := s.defs.Create(ctx, seasonSvc.DefinitionInput{Name: r.def, StartMonth: ptr(r.from), EndMonth: ptr(r.to)})
		if err != nil {
			return fmt.Errorf("season definition %s: %w", r.def, err)
		}
		start, _ := time.Parse(time.DateOnly, r.start)
		out, err := s.seasons.Create(ctx, seasonSvc.SeasonInput{
			Name: r.name, SeasonDefinitionID: ptr(def.ID), Year: ptr(start.Year()),
			StartDate: ptr(r.start), EndDate: ptr(r.end),
		})
		if err != nil {
			return fmt.Errorf("season %s: %w", r.name, err)
		}
		seasons = append(seasons, r)
		seasonIDs = append(seasonIDs, out.ID)
		s.sum.Seasons++
	}

	// cycle i sits on parcel i mod parcels in season i div parcels, so no two
	// cycles share a parcel and window
	limit := len(parcels) * len(seasons)
	if cycles > limit {
		s.log.Warn("cycle count capped", "requested", cycles, "max", limit)
		cycles = limit
	}
	for i := 0; i < cycles; i++ {
		si := i / len(parcels)
		if err := s.cycle(ctx, parcels[i%len(parcels)], crops[i%2], seasonIDs[si], seasons[si], types, water[i%len(water)], si); err != nil {
			return err
		}
	}
	return nil
}

// cycle plants one crop. The oldest season's cycles are harvested, the next
// season's are running and the rest stay planned.
func (s *seeder) cycle(ctx context.Context, parcel, crop, season uint, r seasonRow, types map[string]uint, water uint, age int) error {
	c, err := s.cycles.Create(ctx, cropCycleSvc.CreateInput{
		LandParcelID: ptr(parcel), CropTypeID: ptr(crop), SeasonID: ptr(season),
		PlannedStartDate: ptr(r.start), PlannedEndDate: ptr(r.end),
		Notes: ptr("Vụ " + r.name),
	})
	if err != nil {
		return fmt.Errorf("crop cycle in %s: %w", r.name, err)
	}
	s.sum.CropCycles++

	stages, err := s.stages.Generate(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("stages for %s: %w", c.CycleCode, err)
	}
	s.sum.Stages += len(stages)

	if age > 1 {
		return nil
	}
	if _, err := s.cycles.Activate(ctx, c.ID, cropCycleSvc.ActivateInput{}); err != nil {
		return fmt.Errorf("activate %s: %w", c.CycleCode, err)
	}
	if _, err := s.stages.Start(ctx, stages[0].ID, stageSvc.StartInput{}); err != nil {
		return fmt.Errorf("start stage of %s: %w", c.CycleCode, err)
	}

	logs := []activityLogSvc.RecordInput{
		{
			ActivityTypeID: ptr(types["irrigation"]), ActivityDate: ptr(r.start),
			StartTime: ptr("06:00"), EndTime: ptr("08:30"), WaterSourceID: ptr(water),
			QuantityValue: ptr(120.0), QuantityUnitID: ptr(s.unit["m3"]),
			CostValue: ptr(180000.0), CostUnitID: ptr(s.unit["VND"]),
			PerformedBy: ptr("Nguyễn Văn Tư"), WeatherConditions: ptr("Nắng nhẹ"),
		},
		{
			ActivityTypeID: ptr(types["fertilizing"]), ActivityDate: ptr(r.start),
			QuantityValue: ptr(50.0), QuantityUnitID: ptr(s.unit["kg"]),
			CostValue: ptr(650000.0), CostUnitID: ptr(s.unit["VND"]),
			PerformedBy: ptr("Trần Thị Mai"), Description: ptr("Bón lót NPK 20-20-15"),
		},
	}
	for _, in := range logs {
		in.CropCycleID = ptr(c.ID)
		if _, err := s.logs.Record(ctx, in); err != nil {
			return fmt.Errorf("activity log for %s: %w", c.CycleCode, err)
		}
		s.sum.ActivityLogs++
	}

	if age > 0 {
		return nil
	}
	_, err = s.cycles.Complete(ctx, c.ID, cropCycleSvc.CompleteInput{
		YieldValue: ptr(6.5), YieldUnitID: ptr(s.unit["tấn"]), QualityRating: ptr("good"),
	})
	if err != nil {
		return fmt.Errorf("complete %s: %w", c.CycleCode, err)
	}
	return nil
}
