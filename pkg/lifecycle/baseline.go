package lifecycle

import (
	"time"

	"carkeep.kr/consumable-service/pkg/models"
)

// AggregateBaselines derives the last-known baseline per kind from a record
// set. The two fields are aggregated independently: the odometer baseline is
// the maximum numeric reading on record and the date baseline is the maximum
// calendar date, so a backfilled record with a higher reading supersedes a
// newer row. Records missing a field leave that field's baseline untouched.
func AggregateBaselines(records []models.ReplacementRecord) map[string]Baseline {
	baselines := map[string]Baseline{}

	for _, record := range records {
		if record.Kind == "" {
			continue
		}
		base := baselines[record.Kind]

		if record.OdoKm != nil {
			odo := *record.OdoKm
			if base.LastOdoKm == nil || odo > *base.LastOdoKm {
				base.LastOdoKm = &odo
			}
		}

		if record.Date != nil {
			day := toCalendarDate(*record.Date)
			if base.LastDate == nil || day.After(*base.LastDate) {
				base.LastDate = &day
			}
		}

		baselines[record.Kind] = base
	}

	return baselines
}

// toCalendarDate drops the time-of-day component; records carry dates, not
// timestamps.
func toCalendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
