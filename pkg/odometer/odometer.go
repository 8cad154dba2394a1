package odometer

import (
	"database/sql"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"carkeep.kr/consumable-service/pkg/common"
	"carkeep.kr/consumable-service/pkg/db"
	"carkeep.kr/consumable-service/pkg/models"
)

// Service tracks a vehicle's odometer as an append-only log. The current
// reading is the maximum on record rather than the latest row, so a
// backfilled entry can never move the reading backwards.
type Service struct {
	Db db.DB
}

func (s *Service) Update(vehicleID string, date time.Time, odoKm int) (*models.OdometerLog, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameOdometerCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryOdometer),
	)

	entry := models.OdometerLog{
		VehicleID: vehicleID,
		Date:      date,
		OdoKm:     odoKm,
	}
	if err := s.Db.Conn.Create(&entry).Error; err != nil {
		return nil, err
	}

	logger.Info("Logged odometer reading", zap.Reflect("entry", entry))
	return &entry, nil
}

// Current returns the vehicle's best-known reading, nil when nothing is
// logged yet.
func (s *Service) Current(vehicleID string) (*int, error) {
	var row struct {
		Max sql.NullInt64
	}
	err := s.Db.Conn.Model(&models.OdometerLog{}).
		Where("vehicle_id = ?", vehicleID).
		Select("max(odo_km) as max").
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if !row.Max.Valid {
		return nil, nil
	}
	current := int(row.Max.Int64)
	return &current, nil
}

// MonthlyDistance is the distance covered in a calendar month: the month's
// highest reading minus the last reading before the month (or the month's
// first reading when there is none).
func (s *Service) MonthlyDistance(vehicleID string, year int, month time.Month) (int, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var logs []models.OdometerLog
	err := s.Db.Conn.
		Where("vehicle_id = ? AND date >= ? AND date < ?", vehicleID, start, end).
		Order("date asc").
		Find(&logs).Error
	if err != nil {
		return 0, err
	}
	if len(logs) == 0 {
		return 0, nil
	}

	startKm := logs[0].OdoKm
	var prev models.OdometerLog
	err = s.Db.Conn.
		Where("vehicle_id = ? AND date < ?", vehicleID, start).
		Order("date desc").
		First(&prev).Error
	if err == nil {
		startKm = prev.OdoKm
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	endKm := logs[0].OdoKm
	for _, entry := range logs {
		if entry.OdoKm > endKm {
			endKm = entry.OdoKm
		}
	}

	distance := endKm - startKm
	if distance < 0 {
		distance = 0
	}
	return distance, nil
}
