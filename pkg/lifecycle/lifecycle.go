package lifecycle

import (
	"time"

	"carkeep.kr/consumable-service/pkg/db"
	"carkeep.kr/consumable-service/pkg/models"
)

type IRecord interface {
	AddRecord(vehicleID string, input *models.ReplacementRecord) (*models.ReplacementRecord, error)
	UpdateRecord(vehicleID string, recordID uint, patch RecordPatch) (*models.ReplacementRecord, error)
	DeleteRecords(vehicleID string, ids []uint) (int, error)
	SearchRecords(vehicleID string, category models.Category, kind string, sortBy string, order string) ([]models.ReplacementRecord, error)
	LatestRecord(vehicleID string, kind string) (*models.ReplacementRecord, error)
	CostSummary(vehicleID string) (CostSummary, error)
}

type IItem interface {
	ListItems(vehicleID string, category models.Category) ([]models.PartConfig, error)
	CreateItem(vehicleID string, input *models.PartConfig) (*models.PartConfig, error)
	UpdateItem(vehicleID string, itemID uint, patch ItemPatch) (*models.PartConfig, error)
	DeleteItem(vehicleID string, itemID uint) error
}

type IStatus interface {
	CategoryStatus(vehicleID string, category models.Category, now time.Time) ([]PartStatus, error)
	DueSummary(vehicleID string, now time.Time) ([]DueItem, error)
}

// OdometerSource supplies a vehicle's current reading; nil result means no
// reading is on record.
type OdometerSource interface {
	Current(vehicleID string) (*int, error)
}

// TireWarningSource is the tire subsystem's reduced output for the ranker.
type TireWarningSource interface {
	Warnings(vehicleID string) ([]TireWarning, error)
}

type Engine struct {
	Db     db.DB
	Record IRecord
	Item   IItem
	Status IStatus

	Odometer OdometerSource
	Tires    TireWarningSource

	Drafts DraftStore

	baselines baselineCache
}

type ServiceOpts struct {
	Record IRecord
	Item   IItem
	Status IStatus
}

func (e *Engine) WithServices(opts ServiceOpts) *Engine {
	if opts.Record != nil {
		e.Record = opts.Record
	}
	if opts.Item != nil {
		e.Item = opts.Item
	}
	if opts.Status != nil {
		e.Status = opts.Status
	}
	return e
}

type CollaboratorOpts struct {
	Odometer OdometerSource
	Tires    TireWarningSource
}

func (e *Engine) WithCollaborators(opts CollaboratorOpts) *Engine {
	if opts.Odometer != nil {
		e.Odometer = opts.Odometer
	}
	if opts.Tires != nil {
		e.Tires = opts.Tires
	}
	return e
}
