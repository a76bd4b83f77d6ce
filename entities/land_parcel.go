package entities

import "time"

type LandParcel struct {
	ID                  uint           `gorm:"primaryKey" json:"id"`
	Code                string         `gorm:"size:50;not null;uniqueIndex" json:"code"`
	Name                string         `gorm:"size:255;not null" json:"name"`
	LandType            string         `gorm:"size:30;not null;index" json:"land_type"` // rice_paddy|upland|garden|orchard|greenhouse|aquaculture|other
	AreaValue           float64        `gorm:"not null" json:"area_value"`
	AreaUnitID          *uint          `json:"area_unit_id"`
	SoilType            string         `gorm:"size:50" json:"soil_type"`
	LocationDescription string         `json:"location_description"`
	Latitude            *float64       `json:"latitude"`
	Longitude           *float64       `json:"longitude"`
	IsActive            bool           `gorm:"not null;index" json:"is_active"`
	Description         string         `json:"description"`
	AreaUnit            *UnitOfMeasure `gorm:"foreignKey:AreaUnitID" json:"area_unit,omitempty"`

	WaterSources []LandParcelWaterSource `gorm:"foreignKey:LandParcelID" json:"water_sources,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	AccessDirect     = "direct"
	AccessPumped     = "pumped"
	AccessGravityFed = "gravity_fed"
	AccessSeasonal   = "seasonal"
)

// LandParcelWaterSource is the join row between a parcel and a water source.
type LandParcelWaterSource struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	LandParcelID    uint         `gorm:"not null;uniqueIndex:idx_parcel_water_source" json:"land_parcel_id"`
	WaterSourceID   uint         `gorm:"not null;uniqueIndex:idx_parcel_water_source" json:"water_source_id"`
	Accessibility   string       `gorm:"size:20;not null" json:"accessibility"` // direct|pumped|gravity_fed|seasonal
	IsPrimarySource bool         `gorm:"not null" json:"is_primary_source"`
	WaterSource     *WaterSource `gorm:"foreignKey:WaterSourceID" json:"water_source,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}
