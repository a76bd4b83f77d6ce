package entities

import "time"

const (
	UnitTypeArea     = "area"
	UnitTypeWeight   = "weight"
	UnitTypeVolume   = "volume"
	UnitTypeQuantity = "quantity"
	UnitTypeCurrency = "currency"
	UnitTypeTime     = "time"
)

type UnitOfMeasure struct {
	ID                     uint      `gorm:"primaryKey" json:"id"`
	Name                   string    `gorm:"size:100;not null" json:"name"`
	Abbreviation           string    `gorm:"size:20;not null;uniqueIndex" json:"abbreviation"`
	UnitType               string    `gorm:"size:20;not null;index" json:"unit_type"` // area|weight|volume|quantity|currency|time
	ConversionFactorToBase float64   `gorm:"not null" json:"conversion_factor_to_base"`
	IsBaseUnit             bool      `gorm:"not null" json:"is_base_unit"`
	IsActive               bool      `gorm:"not null;index" json:"is_active"`
	Description            string    `json:"description"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

func (UnitOfMeasure) TableName() string { return "units_of_measure" }

// ToBase converts value expressed in u into the base unit of its type.
func (u UnitOfMeasure) ToBase(value float64) float64 { return value * u.ConversionFactorToBase }
