package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryOil    Category = "oil"
	CategoryFilter Category = "filter"
	CategoryOther  Category = "other"
)

// Label is the Korean panel label the dashboard shows for a category.
func (c Category) Label() string {
	switch c {
	case CategoryOil:
		return "오일 관리"
	case CategoryFilter:
		return "필터 관리"
	case CategoryOther:
		return "소모품 관리"
	}
	return string(c)
}

type CycleMode string

const (
	ModeDistance CycleMode = "distance"
	ModeTime     CycleMode = "time"
)

// PartConfig describes one tracked consumable of a vehicle. It never carries
// a last-replacement field: baselines are derived from ReplacementRecord rows.
type PartConfig struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	VehicleID   string    `gorm:"index:idx_part_config_scope" json:"vehicle_id"`
	Category    Category  `gorm:"index:idx_part_config_scope;type:varchar(10);check:category IN ('oil','filter','other')" json:"category"`
	Kind        string    `gorm:"index:idx_part_config_scope" json:"kind"`
	Mode        CycleMode `gorm:"type:varchar(10);check:mode IN ('distance','time')" json:"mode"`
	CycleKm     *int      `json:"cycle_km"`
	CycleMonths *int      `json:"cycle_months"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ReplacementRecord is one historical replacement event. Records are the only
// source of truth for the last-known odometer reading and date of a kind.
type ReplacementRecord struct {
	ID        uint                `gorm:"primaryKey" json:"id"`
	VehicleID string              `gorm:"index" json:"vehicle_id"`
	Category  Category            `gorm:"index;type:varchar(10)" json:"category"`
	Kind      string              `gorm:"index" json:"kind"`
	Date      *time.Time          `json:"date"`
	OdoKm     *int                `json:"odo_km"`
	Cost      decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"cost"`
	Memo      *string             `json:"memo"`
	CreatedAt time.Time           `json:"created_at"`
}

// OdometerLog is an append-only reading of a vehicle's odometer.
type OdometerLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VehicleID string    `gorm:"index" json:"vehicle_id"`
	Date      time.Time `json:"date"`
	OdoKm     int       `json:"odo_km"`
	CreatedAt time.Time `json:"created_at"`
}

type TirePosition string

const (
	TireFrontLeft  TirePosition = "front_left"
	TireFrontRight TirePosition = "front_right"
	TireRearLeft   TirePosition = "rear_left"
	TireRearRight  TirePosition = "rear_right"
)

func AllTirePositions() []TirePosition {
	return []TirePosition{TireFrontLeft, TireFrontRight, TireRearLeft, TireRearRight}
}

func (p TirePosition) Label() string {
	switch p {
	case TireFrontLeft:
		return "Front Left"
	case TireFrontRight:
		return "Front Right"
	case TireRearLeft:
		return "Rear Left"
	case TireRearRight:
		return "Rear Right"
	}
	return string(p)
}

// Tire holds the per-position metadata of a mounted tire.
type Tire struct {
	ID                     uint         `gorm:"primaryKey" json:"id"`
	VehicleID              string       `gorm:"index:idx_tire_scope,unique" json:"vehicle_id"`
	Position               TirePosition `gorm:"index:idx_tire_scope,unique;type:varchar(16)" json:"position"`
	Brand                  *string      `json:"brand"`
	Model                  *string      `json:"model"`
	Size                   *string      `json:"size"`
	DotCode                *string      `json:"dot_code"`
	InstalledAt            *time.Time   `json:"installed_at"`
	InstalledOdo           *int         `json:"installed_odo"`
	RecommendedPressureMin *float64     `json:"recommended_pressure_min"`
	RecommendedPressureMax *float64     `json:"recommended_pressure_max"`
	PressureUnit           string       `gorm:"default:kPa" json:"pressure_unit"`
	Notes                  *string      `json:"notes"`
	CreatedAt              time.Time    `json:"created_at"`
	UpdatedAt              time.Time    `json:"updated_at"`
}

// TireMeasurement is one pressure/tread check of a tire.
type TireMeasurement struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	VehicleID    string    `gorm:"index" json:"vehicle_id"`
	TireID       uint      `gorm:"index" json:"tire_id"`
	MeasuredAt   time.Time `json:"measured_at"`
	PressureKpa  *float64  `json:"pressure_kpa"`
	TreadDepthMm *float64  `json:"tread_depth_mm"`
	Notes        *string   `json:"notes"`
}

// TireServiceRecord is one rotation/replacement/repair event.
type TireServiceRecord struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	VehicleID   string              `gorm:"index" json:"vehicle_id"`
	TireID      *uint               `gorm:"index" json:"tire_id"`
	ServiceType string              `json:"service_type"`
	PerformedAt time.Time           `json:"performed_at"`
	OdoKm       *int                `json:"odo_km"`
	Cost        decimal.NullDecimal `gorm:"type:numeric(12,2)" json:"cost"`
	Notes       *string             `json:"notes"`
	CreatedAt   time.Time           `json:"created_at"`
}
