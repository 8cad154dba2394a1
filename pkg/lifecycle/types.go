package lifecycle

import (
	"time"

	"github.com/shopspring/decimal"

	"carkeep.kr/consumable-service/pkg/models"
)

type Tier string

const (
	TierDanger Tier = "danger"
	TierWarn   Tier = "warn"
	TierOK     Tier = "ok"
	TierMuted  Tier = "muted"
)

// Priority orders tiers for ranking; lower value sorts first.
func (t Tier) Priority() int {
	switch t {
	case TierDanger:
		return 0
	case TierWarn:
		return 1
	case TierOK:
		return 2
	}
	return 3
}

// Actionable reports whether a tier should surface in the due summary.
func (t Tier) Actionable() bool {
	return t == TierDanger || t == TierWarn
}

// Baseline is the last-known replacement state of one kind, derived from its
// record set. A nil field means no record carries that field.
type Baseline struct {
	LastOdoKm *int       `json:"last_odo_km"`
	LastDate  *time.Time `json:"last_date"`
}

// Classification is the result of evaluating one part against its baseline.
// UsedKm and PercentUsed are set in distance mode only, for progress display.
type Classification struct {
	Tier        Tier     `json:"tier"`
	Message     string   `json:"message"`
	UsedKm      *int     `json:"used_km,omitempty"`
	PercentUsed *float64 `json:"percent_used,omitempty"`
}

// PartStatus pairs a configured part with its evaluated classification.
type PartStatus struct {
	ItemID         uint             `json:"item_id"`
	Kind           string           `json:"kind"`
	Mode           models.CycleMode `json:"mode"`
	Baseline       Baseline         `json:"baseline"`
	Classification Classification   `json:"classification"`
}

// ClassifiedPart is the ranker's view of one classified part.
type ClassifiedPart struct {
	SourceID       string
	Area           string
	Name           string
	Classification Classification
}

// TireWarning is the tire subsystem's contribution to the due summary, one
// entry per position that has at least one warning.
type TireWarning struct {
	Position      string `json:"position"`
	PositionLabel string `json:"position_label"`
	Tone          Tier   `json:"tone"`
	Message       string `json:"message"`
	HasMetadata   bool   `json:"has_metadata"`
	HasHistory    bool   `json:"has_history"`
}

// DueItem is one entry of the prioritized attention list.
type DueItem struct {
	SourceID string `json:"id"`
	Area     string `json:"area"`
	Name     string `json:"name"`
	Tier     Tier   `json:"tier"`
	Message  string `json:"message"`
}

// CostSummary totals replacement costs over a vehicle's record set.
type CostSummary struct {
	Total  decimal.Decimal            `json:"total"`
	ByKind map[string]decimal.Decimal `json:"by_kind"`
}
