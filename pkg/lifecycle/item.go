package lifecycle

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"carkeep.kr/consumable-service/pkg/common"
	"carkeep.kr/consumable-service/pkg/models"
)

type defaultItem struct {
	kind        string
	mode        models.CycleMode
	cycleKm     int
	cycleMonths int
}

// Stock cycles offered when a vehicle has no configured parts yet for a
// category. Kinds and intervals follow common Korean service guidance.
var defaultItemsByCategory = map[models.Category][]defaultItem{
	models.CategoryOil: {
		{"엔진오일", models.ModeDistance, 5000, 6},
		{"미션오일", models.ModeDistance, 40000, 24},
		{"브레이크액", models.ModeTime, 40000, 24},
		{"부동액", models.ModeTime, 40000, 24},
	},
	models.CategoryFilter: {
		{"엔진오일 필터", models.ModeDistance, 5000, 6},
		{"에어 필터", models.ModeDistance, 15000, 12},
		{"캐빈 필터", models.ModeTime, 0, 12},
		{"연료 필터(가솔린)", models.ModeDistance, 40000, 24},
		{"연료 필터(디젤)", models.ModeDistance, 20000, 12},
	},
	models.CategoryOther: {
		{"브레이크 패드", models.ModeDistance, 40000, 36},
		{"브레이크 디스크(로터)", models.ModeDistance, 80000, 60},
		{"배터리", models.ModeTime, 0, 48},
		{"와이퍼 블레이드", models.ModeDistance, 60000, 48},
		{"에어컨 필터", models.ModeTime, 0, 12},
		{"스파크 플러그", models.ModeDistance, 80000, 48},
		{"타이밍 벨트", models.ModeDistance, 100000, 60},
	},
}

// ItemPatch carries the fields of a part config update; nil leaves a field
// untouched.
type ItemPatch struct {
	Kind        *string
	Mode        *models.CycleMode
	CycleKm     *int
	CycleMonths *int
}

func (e *Engine) ensureSeed(vehicleID string, category models.Category) error {
	defaults, ok := defaultItemsByCategory[category]
	if !ok {
		return nil
	}

	var count int64
	if err := e.Db.Conn.Model(&models.PartConfig{}).
		Where("vehicle_id = ? AND category = ?", vehicleID, category).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	logger := common.GetLoggerWith(
		common.LoggerNameLifecycleCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryItem),
	)
	logger.Info("Seeding default items for vehicle",
		zap.String("vehicle_id", vehicleID), zap.String("part_category", string(category)))

	for _, d := range defaults {
		item := models.PartConfig{
			VehicleID: vehicleID,
			Category:  category,
			Kind:      d.kind,
			Mode:      d.mode,
		}
		if d.cycleKm > 0 {
			km := d.cycleKm
			item.CycleKm = &km
		}
		if d.cycleMonths > 0 {
			months := d.cycleMonths
			item.CycleMonths = &months
		}
		if err := e.Db.Conn.Create(&item).Error; err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) listItems(vehicleID string, category models.Category) ([]models.PartConfig, error) {
	if err := e.ensureSeed(vehicleID, category); err != nil {
		return nil, err
	}

	var items []models.PartConfig
	err := e.Db.Conn.
		Where("vehicle_id = ? AND category = ?", vehicleID, category).
		Order("id asc").
		Find(&items).Error
	return items, err
}

func (e *Engine) createItem(vehicleID string, input *models.PartConfig) (*models.PartConfig, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameLifecycleCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryItem),
	)

	item := models.PartConfig{
		VehicleID:   vehicleID,
		Category:    input.Category,
		Kind:        input.Kind,
		Mode:        input.Mode,
		CycleKm:     input.CycleKm,
		CycleMonths: input.CycleMonths,
	}
	if item.Mode == "" {
		item.Mode = models.ModeDistance
	}

	if err := e.Db.Conn.Create(&item).Error; err != nil {
		return nil, err
	}

	logger.Info("Created item for vehicle", zap.Reflect("item", item))
	return &item, nil
}

func (e *Engine) updateItem(vehicleID string, itemID uint, patch ItemPatch) (*models.PartConfig, error) {
	var item models.PartConfig
	if err := e.Db.Conn.First(&item, "id = ? AND vehicle_id = ?", itemID, vehicleID).Error; err != nil {
		return nil, err
	}

	if patch.Kind != nil {
		item.Kind = *patch.Kind
	}
	if patch.Mode != nil {
		item.Mode = *patch.Mode
	}
	if patch.CycleKm != nil {
		item.CycleKm = patch.CycleKm
	}
	if patch.CycleMonths != nil {
		item.CycleMonths = patch.CycleMonths
	}

	if err := e.Db.Conn.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (e *Engine) deleteItem(vehicleID string, itemID uint) error {
	result := e.Db.Conn.
		Where("id = ? AND vehicle_id = ?", itemID, vehicleID).
		Delete(&models.PartConfig{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type IItemImpl struct {
	engine *Engine
}

func (ii *IItemImpl) ListItems(vehicleID string, category models.Category) ([]models.PartConfig, error) {
	return ii.engine.listItems(vehicleID, category)
}

func (ii *IItemImpl) CreateItem(vehicleID string, input *models.PartConfig) (*models.PartConfig, error) {
	return ii.engine.createItem(vehicleID, input)
}

func (ii *IItemImpl) UpdateItem(vehicleID string, itemID uint, patch ItemPatch) (*models.PartConfig, error) {
	return ii.engine.updateItem(vehicleID, itemID, patch)
}

func (ii *IItemImpl) DeleteItem(vehicleID string, itemID uint) error {
	return ii.engine.deleteItem(vehicleID, itemID)
}

func (e *Engine) GetIItem() IItem {
	return &IItemImpl{engine: e}
}
