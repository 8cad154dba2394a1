package lifecycle

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"carkeep.kr/consumable-service/pkg/common"
	"carkeep.kr/consumable-service/pkg/models"
)

// RecordPatch carries the fields of an update; nil means leave untouched.
type RecordPatch struct {
	Date  *time.Time
	OdoKm *int
	Cost  *decimal.Decimal
	Memo  *string
}

func (e *Engine) addRecord(vehicleID string, input *models.ReplacementRecord) (*models.ReplacementRecord, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameLifecycleCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryRecord),
	)

	record := models.ReplacementRecord{
		VehicleID: vehicleID,
		Category:  input.Category,
		Kind:      input.Kind,
		Date:      input.Date,
		OdoKm:     input.OdoKm,
		Cost:      input.Cost,
		Memo:      input.Memo,
	}

	logger.Info("Received record for vehicle", zap.Reflect("record", record))

	if err := e.Db.Conn.Create(&record).Error; err != nil {
		return nil, err
	}

	logger.Info("Created record for vehicle", zap.Reflect("record", record))

	if _, err := e.recomputeBaselines(vehicleID, record.Category); err != nil {
		return nil, err
	}
	e.Drafts.Clear(vehicleID, record.Category, record.Kind)

	return &record, nil
}

func (e *Engine) updateRecord(vehicleID string, recordID uint, patch RecordPatch) (*models.ReplacementRecord, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameLifecycleCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryRecord),
	)

	var record models.ReplacementRecord
	if err := e.Db.Conn.First(&record, "id = ? AND vehicle_id = ?", recordID, vehicleID).Error; err != nil {
		return nil, err
	}

	if patch.Date != nil {
		record.Date = patch.Date
	}
	if patch.OdoKm != nil {
		record.OdoKm = patch.OdoKm
	}
	if patch.Cost != nil {
		record.Cost = decimal.NullDecimal{Decimal: *patch.Cost, Valid: true}
	}
	if patch.Memo != nil {
		record.Memo = patch.Memo
	}

	if err := e.Db.Conn.Save(&record).Error; err != nil {
		return nil, err
	}

	logger.Info("Updated record for vehicle", zap.Reflect("record", record))

	// cost/memo corrections do not move the baseline, but recomputing from
	// the full record set keeps this path total rather than field-aware.
	if _, err := e.recomputeBaselines(vehicleID, record.Category); err != nil {
		return nil, err
	}
	e.Drafts.Clear(vehicleID, record.Category, record.Kind)

	return &record, nil
}

func (e *Engine) deleteRecords(vehicleID string, ids []uint) (int, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameLifecycleCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryRecord),
	)

	var rows []models.ReplacementRecord
	if err := e.Db.Conn.
		Where("vehicle_id = ? AND id IN ?", vehicleID, ids).
		Find(&rows).Error; err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	if err := e.Db.Conn.
		Where("vehicle_id = ? AND id IN ?", vehicleID, ids).
		Delete(&models.ReplacementRecord{}).Error; err != nil {
		return 0, err
	}

	logger.Info("Deleted records for vehicle",
		zap.String("vehicle_id", vehicleID), zap.Int("count", len(rows)))

	categories := map[models.Category]bool{}
	for _, row := range rows {
		categories[row.Category] = true
		e.Drafts.Clear(vehicleID, row.Category, row.Kind)
	}
	for category := range categories {
		if _, err := e.recomputeBaselines(vehicleID, category); err != nil {
			return len(rows), err
		}
	}

	return len(rows), nil
}

func (e *Engine) searchRecords(vehicleID string, category models.Category, kind string, sortBy string, order string) ([]models.ReplacementRecord, error) {
	query := e.Db.Conn.Where("vehicle_id = ? AND category = ?", vehicleID, category)
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}

	direction := "desc"
	if order == "asc" {
		direction = "asc"
	}
	switch sortBy {
	case "odo":
		query = query.Order("odo_km " + direction)
	case "id":
		query = query.Order("id " + direction)
	default:
		query = query.Order("date " + direction)
	}

	var records []models.ReplacementRecord
	err := query.Find(&records).Error
	return records, err
}

func (e *Engine) latestRecord(vehicleID string, kind string) (*models.ReplacementRecord, error) {
	var record models.ReplacementRecord
	err := e.Db.Conn.
		Where("vehicle_id = ? AND kind = ?", vehicleID, kind).
		Order("date desc").
		First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (e *Engine) costSummary(vehicleID string) (CostSummary, error) {
	var records []models.ReplacementRecord
	if err := e.Db.Conn.Where("vehicle_id = ?", vehicleID).Find(&records).Error; err != nil {
		return CostSummary{}, err
	}

	summary := CostSummary{
		Total:  decimal.Zero,
		ByKind: map[string]decimal.Decimal{},
	}
	for _, record := range records {
		if !record.Cost.Valid {
			continue
		}
		summary.Total = summary.Total.Add(record.Cost.Decimal)
		summary.ByKind[record.Kind] = summary.ByKind[record.Kind].Add(record.Cost.Decimal)
	}
	return summary, nil
}

type IRecordImpl struct {
	engine *Engine
}

func (ir *IRecordImpl) AddRecord(vehicleID string, input *models.ReplacementRecord) (*models.ReplacementRecord, error) {
	return ir.engine.addRecord(vehicleID, input)
}

func (ir *IRecordImpl) UpdateRecord(vehicleID string, recordID uint, patch RecordPatch) (*models.ReplacementRecord, error) {
	return ir.engine.updateRecord(vehicleID, recordID, patch)
}

func (ir *IRecordImpl) DeleteRecords(vehicleID string, ids []uint) (int, error) {
	return ir.engine.deleteRecords(vehicleID, ids)
}

func (ir *IRecordImpl) SearchRecords(vehicleID string, category models.Category, kind string, sortBy string, order string) ([]models.ReplacementRecord, error) {
	return ir.engine.searchRecords(vehicleID, category, kind, sortBy, order)
}

func (ir *IRecordImpl) LatestRecord(vehicleID string, kind string) (*models.ReplacementRecord, error) {
	return ir.engine.latestRecord(vehicleID, kind)
}

func (ir *IRecordImpl) CostSummary(vehicleID string) (CostSummary, error) {
	return ir.engine.costSummary(vehicleID)
}

func (e *Engine) GetIRecord() IRecord {
	return &IRecordImpl{engine: e}
}
