package tires

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"carkeep.kr/consumable-service/pkg/common"
	"carkeep.kr/consumable-service/pkg/db"
	"carkeep.kr/consumable-service/pkg/lifecycle"
	"carkeep.kr/consumable-service/pkg/models"
)

type Status string

const (
	StatusOK       Status = "ok"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

var statusOrder = map[Status]int{
	StatusOK:       0,
	StatusWarning:  1,
	StatusCritical: 2,
}

func escalate(current, candidate Status) Status {
	if statusOrder[candidate] > statusOrder[current] {
		return candidate
	}
	return current
}

const (
	staleMeasurementDays  = 45
	treadCriticalMm       = 2.0
	treadWarningMm        = 3.0
	maxServiceYears       = 5
	maxDistanceSinceFitKm = 60000
)

// Summary is the per-position condition of one tire.
type Summary struct {
	Position               models.TirePosition       `json:"position"`
	PositionLabel          string                    `json:"position_label"`
	Brand                  *string                   `json:"brand"`
	Model                  *string                   `json:"model"`
	Size                   *string                   `json:"size"`
	DotCode                *string                   `json:"dot_code"`
	InstalledAt            *time.Time                `json:"installed_at"`
	InstalledOdo           *int                      `json:"installed_odo"`
	RecommendedPressureMin *float64                  `json:"recommended_pressure_min"`
	RecommendedPressureMax *float64                  `json:"recommended_pressure_max"`
	PressureUnit           string                    `json:"pressure_unit"`
	Status                 Status                    `json:"status"`
	Warnings               []string                  `json:"warnings"`
	LastMeasurement        *models.TireMeasurement   `json:"last_measurement"`
	LastService            *models.TireServiceRecord `json:"last_service"`
	HasMetadata            bool                      `json:"has_metadata"`
	HasHistory             bool                      `json:"has_history"`
}

// Service computes per-position tire summaries from stored metadata,
// measurements and service records.
type Service struct {
	Db       db.DB
	Odometer lifecycle.OdometerSource
}

func (s *Service) Summary(vehicleID string, now time.Time) ([]Summary, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameTireCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryTireSummary),
	)

	var mounted []models.Tire
	if err := s.Db.Conn.Where("vehicle_id = ?", vehicleID).Find(&mounted).Error; err != nil {
		return nil, err
	}
	byPosition := map[models.TirePosition]*models.Tire{}
	for i := range mounted {
		byPosition[mounted[i].Position] = &mounted[i]
	}

	var currentOdo *int
	if s.Odometer != nil {
		odo, err := s.Odometer.Current(vehicleID)
		if err != nil {
			logger.Warn("Failed to read current odometer", zap.String("vehicle_id", vehicleID), zap.Error(err))
		} else {
			currentOdo = odo
		}
	}

	summaries := make([]Summary, 0, 4)
	for _, position := range models.AllTirePositions() {
		summary, err := s.summarize(vehicleID, position, byPosition[position], currentOdo, now)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	logger.Info("Computed tire summary", zap.String("vehicle_id", vehicleID))
	return summaries, nil
}

func (s *Service) summarize(vehicleID string, position models.TirePosition, tire *models.Tire, currentOdo *int, now time.Time) (Summary, error) {
	summary := Summary{
		Position:      position,
		PositionLabel: position.Label(),
		PressureUnit:  "kPa",
		Status:        StatusOK,
	}

	if tire == nil {
		summary.Warnings = append(summary.Warnings, "No tire metadata registered yet.")
		summary.Status = escalate(summary.Status, StatusWarning)
		return summary, nil
	}

	summary.Brand = tire.Brand
	summary.Model = tire.Model
	summary.Size = tire.Size
	summary.DotCode = tire.DotCode
	summary.InstalledAt = tire.InstalledAt
	summary.InstalledOdo = tire.InstalledOdo
	summary.RecommendedPressureMin = tire.RecommendedPressureMin
	summary.RecommendedPressureMax = tire.RecommendedPressureMax
	if tire.PressureUnit != "" {
		summary.PressureUnit = tire.PressureUnit
	}
	summary.HasMetadata = tire.Brand != nil || tire.Model != nil || tire.Size != nil ||
		tire.DotCode != nil || tire.InstalledAt != nil || tire.InstalledOdo != nil

	measurement, err := s.lastMeasurement(tire.ID)
	if err != nil {
		return Summary{}, err
	}
	service, err := s.lastService(tire.ID)
	if err != nil {
		return Summary{}, err
	}
	summary.LastMeasurement = measurement
	summary.LastService = service
	summary.HasHistory = measurement != nil || service != nil

	if measurement != nil {
		if now.Sub(measurement.MeasuredAt) > staleMeasurementDays*24*time.Hour {
			summary.Warnings = append(summary.Warnings, "Last pressure check was over 45 days ago.")
			summary.Status = escalate(summary.Status, StatusWarning)
		}

		if measurement.PressureKpa != nil && tire.RecommendedPressureMin != nil {
			pressure := *measurement.PressureKpa
			targetMin := *tire.RecommendedPressureMin
			targetMax := targetMin
			if tire.RecommendedPressureMax != nil {
				targetMax = *tire.RecommendedPressureMax
			}
			upperSoft := targetMax * 1.1
			lowerSoft := targetMin * 0.9
			if pressure < lowerSoft || pressure > upperSoft {
				summary.Warnings = append(summary.Warnings, "Pressure is far outside the recommended range.")
				summary.Status = escalate(summary.Status, StatusCritical)
			} else if pressure < targetMin || pressure > targetMax {
				summary.Warnings = append(summary.Warnings, "Pressure is outside the recommended range.")
				summary.Status = escalate(summary.Status, StatusWarning)
			}
		}

		if measurement.TreadDepthMm != nil {
			depth := *measurement.TreadDepthMm
			if depth <= treadCriticalMm {
				summary.Warnings = append(summary.Warnings, "Tread depth is at or below 2mm. Replace immediately.")
				summary.Status = escalate(summary.Status, StatusCritical)
			} else if depth <= treadWarningMm {
				summary.Warnings = append(summary.Warnings, "Tread depth is at or below 3mm. Plan a replacement soon.")
				summary.Status = escalate(summary.Status, StatusWarning)
			}
		}
	} else {
		summary.Warnings = append(summary.Warnings, "No pressure measurement recorded yet.")
		summary.Status = escalate(summary.Status, StatusWarning)
	}

	if tire.InstalledAt != nil && now.Sub(*tire.InstalledAt) > maxServiceYears*365*24*time.Hour {
		summary.Warnings = append(summary.Warnings, "Tire has been in service for more than 5 years.")
		summary.Status = escalate(summary.Status, StatusWarning)
	}

	if tire.InstalledOdo != nil && currentOdo != nil {
		if *currentOdo-*tire.InstalledOdo > maxDistanceSinceFitKm {
			summary.Warnings = append(summary.Warnings, "Tire has covered more than 60,000 km since installation.")
			summary.Status = escalate(summary.Status, StatusWarning)
		}
	}

	return summary, nil
}

func (s *Service) lastMeasurement(tireID uint) (*models.TireMeasurement, error) {
	var measurement models.TireMeasurement
	err := s.Db.Conn.
		Where("tire_id = ?", tireID).
		Order("measured_at desc").
		First(&measurement).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &measurement, nil
}

func (s *Service) lastService(tireID uint) (*models.TireServiceRecord, error) {
	var record models.TireServiceRecord
	err := s.Db.Conn.
		Where("tire_id = ?", tireID).
		Order("performed_at desc").
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Warnings reduces the summaries to the ranker's collaborator contract: one
// entry per position that has warnings, critical mapping to danger and
// everything else to warn.
func (s *Service) Warnings(vehicleID string) ([]lifecycle.TireWarning, error) {
	summaries, err := s.Summary(vehicleID, time.Now())
	if err != nil {
		return nil, err
	}

	var warnings []lifecycle.TireWarning
	for _, summary := range summaries {
		if len(summary.Warnings) == 0 {
			continue
		}
		tone := lifecycle.TierWarn
		if summary.Status == StatusCritical {
			tone = lifecycle.TierDanger
		}
		warnings = append(warnings, lifecycle.TireWarning{
			Position:      string(summary.Position),
			PositionLabel: summary.PositionLabel,
			Tone:          tone,
			Message:       strings.Join(summary.Warnings, " "),
			HasMetadata:   summary.HasMetadata,
			HasHistory:    summary.HasHistory,
		})
	}
	return warnings, nil
}
