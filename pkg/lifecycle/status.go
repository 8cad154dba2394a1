package lifecycle

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"carkeep.kr/consumable-service/pkg/common"
	"carkeep.kr/consumable-service/pkg/models"
)

// dueCategories is the fan-in order of the due summary; ranking re-sorts the
// merged list, so order here only affects logs.
var dueCategories = []models.Category{
	models.CategoryOil,
	models.CategoryFilter,
	models.CategoryOther,
}

// currentOdoKm asks the odometer collaborator for the vehicle's reading. A
// read failure degrades to "reading unavailable" (muted downstream) rather
// than failing the whole status evaluation, which is what the dashboard
// expects.
func (e *Engine) currentOdoKm(vehicleID string) *int {
	if e.Odometer == nil {
		return nil
	}
	current, err := e.Odometer.Current(vehicleID)
	if err != nil {
		common.GetLoggerWith(
			common.LoggerNameLifecycleCore,
			zap.String(common.LoggerFieldCategory, common.LoggerCategoryStatus),
		).Warn("Failed to read current odometer", zap.String("vehicle_id", vehicleID), zap.Error(err))
		return nil
	}
	return current
}

func (e *Engine) categoryStatus(vehicleID string, category models.Category, now time.Time) ([]PartStatus, error) {
	items, err := e.Item.ListItems(vehicleID, category)
	if err != nil {
		return nil, err
	}

	baselines, err := e.baselinesFor(vehicleID, category)
	if err != nil {
		return nil, err
	}

	current := e.currentOdoKm(vehicleID)

	statuses := common.Mapper(items, func(item models.PartConfig) PartStatus {
		base := baselines[item.Kind]
		return PartStatus{
			ItemID:         item.ID,
			Kind:           item.Kind,
			Mode:           item.Mode,
			Baseline:       base,
			Classification: Classify(item, base, current, now),
		}
	})
	return statuses, nil
}

func (e *Engine) dueSummary(vehicleID string, now time.Time) ([]DueItem, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameLifecycleCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryStatus),
	)

	current := e.currentOdoKm(vehicleID)

	var parts []ClassifiedPart
	for _, category := range dueCategories {
		items, err := e.Item.ListItems(vehicleID, category)
		if err != nil {
			return nil, err
		}
		baselines, err := e.baselinesFor(vehicleID, category)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			parts = append(parts, ClassifiedPart{
				SourceID:       fmt.Sprintf("%s-%s", category, item.Kind),
				Area:           category.Label(),
				Name:           item.Kind,
				Classification: Classify(item, baselines[item.Kind], current, now),
			})
		}
	}

	var tireWarnings []TireWarning
	if e.Tires != nil {
		warnings, err := e.Tires.Warnings(vehicleID)
		if err != nil {
			// the consumable summary still renders without the tire rows
			logger.Warn("Failed to read tire warnings", zap.String("vehicle_id", vehicleID), zap.Error(err))
		} else {
			tireWarnings = warnings
		}
	}

	items := RankDueItems(parts, tireWarnings)
	logger.Info("Computed due summary",
		zap.String("vehicle_id", vehicleID), zap.Int("due_count", len(items)))
	return items, nil
}

type IStatusImpl struct {
	engine *Engine
}

func (is *IStatusImpl) CategoryStatus(vehicleID string, category models.Category, now time.Time) ([]PartStatus, error) {
	return is.engine.categoryStatus(vehicleID, category, now)
}

func (is *IStatusImpl) DueSummary(vehicleID string, now time.Time) ([]DueItem, error) {
	return is.engine.dueSummary(vehicleID, now)
}

func (e *Engine) GetIStatus() IStatus {
	return &IStatusImpl{engine: e}
}
