package entities

import (
	"time"

	"gorm.io/datatypes"

	"farmbook/pkg/dates"
)

// ActivityLog is a performed field activity. Rows are never deleted.
type ActivityLog struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	ActivityTypeID    uint            `gorm:"not null;index" json:"activity_type_id"`
	CropCycleID       *uint           `gorm:"index" json:"crop_cycle_id"`
	LandParcelID      *uint           `gorm:"index" json:"land_parcel_id"`
	WaterSourceID     *uint           `gorm:"index" json:"water_source_id"`
	ActivityDate      dates.Date      `gorm:"not null;index" json:"activity_date"`
	StartTime         *datatypes.Time `json:"start_time"`
	EndTime           *datatypes.Time `json:"end_time"`
	Description       string          `json:"description"`
	QuantityValue     *float64        `json:"quantity_value"`
	QuantityUnitID    *uint           `json:"quantity_unit_id"`
	CostValue         *float64        `json:"cost_value"`
	CostUnitID        *uint           `json:"cost_unit_id"`
	PerformedBy       string          `gorm:"size:255" json:"performed_by"`
	WeatherConditions string          `json:"weather_conditions"`

	ActivityType *ActivityType  `gorm:"foreignKey:ActivityTypeID" json:"activity_type,omitempty"`
	CropCycle    *CropCycle     `gorm:"foreignKey:CropCycleID" json:"crop_cycle,omitempty"`
	LandParcel   *LandParcel    `gorm:"foreignKey:LandParcelID" json:"land_parcel,omitempty"`
	WaterSource  *WaterSource   `gorm:"foreignKey:WaterSourceID" json:"water_source,omitempty"`
	QuantityUnit *UnitOfMeasure `gorm:"foreignKey:QuantityUnitID" json:"quantity_unit,omitempty"`
	CostUnit     *UnitOfMeasure `gorm:"foreignKey:CostUnitID" json:"cost_unit,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
