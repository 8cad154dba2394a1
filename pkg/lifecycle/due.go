package lifecycle

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// TireAreaLabel is the dashboard label under which tire warnings surface.
const TireAreaLabel = "타이어 관리"

// RankDueItems merges part classifications and tire warnings into the single
// ordered attention list. ok and muted classifications are dropped; tires
// with neither recorded metadata nor history are suppressed, since a
// never-configured tire cannot meaningfully be due. Ordering is tier priority
// first, then locale-aware area and name so labels sort in Korean reading
// order. The result is deterministic regardless of input order.
func RankDueItems(parts []ClassifiedPart, tireWarnings []TireWarning) []DueItem {
	items := make([]DueItem, 0, len(parts)+len(tireWarnings))

	for _, part := range parts {
		if !part.Classification.Tier.Actionable() {
			continue
		}
		items = append(items, DueItem{
			SourceID: part.SourceID,
			Area:     part.Area,
			Name:     part.Name,
			Tier:     part.Classification.Tier,
			Message:  part.Classification.Message,
		})
	}

	for _, warning := range tireWarnings {
		if !warning.HasMetadata && !warning.HasHistory {
			continue
		}
		if !warning.Tone.Actionable() {
			continue
		}
		items = append(items, DueItem{
			SourceID: "tire-" + warning.Position,
			Area:     TireAreaLabel,
			Name:     warning.PositionLabel,
			Tier:     warning.Tone,
			Message:  warning.Message,
		})
	}

	collator := collate.New(language.Korean)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Tier.Priority() != items[j].Tier.Priority() {
			return items[i].Tier.Priority() < items[j].Tier.Priority()
		}
		if cmp := collator.CompareString(items[i].Area, items[j].Area); cmp != 0 {
			return cmp < 0
		}
		return collator.CompareString(items[i].Name, items[j].Name) < 0
	})

	return items
}
