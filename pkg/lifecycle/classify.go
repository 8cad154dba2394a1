package lifecycle

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"carkeep.kr/consumable-service/pkg/models"
)

// distanceWarnFloorKm keeps the warning band usable for short cycles; long
// cycles widen it proportionally via the 20% rule.
const distanceWarnFloorKm = 500

var msgPrinter = message.NewPrinter(language.Korean)

// Classify evaluates one part against its baseline and the vehicle's current
// odometer reading. It is pure and total: every insufficient-data case comes
// back as the muted tier with an explanatory message, never as an error.
// now is the evaluation instant; time-mode cycles compare calendar months and
// ignore the day of month entirely.
func Classify(cfg models.PartConfig, base Baseline, currentOdoKm *int, now time.Time) Classification {
	if cfg.Mode == models.ModeTime {
		return classifyTime(cfg, base, now)
	}
	return classifyDistance(cfg, base, currentOdoKm)
}

func classifyDistance(cfg models.PartConfig, base Baseline, currentOdoKm *int) Classification {
	if cfg.CycleKm == nil || *cfg.CycleKm <= 0 {
		return Classification{Tier: TierMuted, Message: "주행 주기가 설정되지 않았습니다."}
	}
	if currentOdoKm == nil {
		return Classification{Tier: TierMuted, Message: "현재 주행거리를 불러올 수 없습니다."}
	}
	if base.LastOdoKm == nil {
		return Classification{Tier: TierMuted, Message: "마지막 교체 주행거리가 없습니다."}
	}

	cycleKm := *cfg.CycleKm
	// used may be negative when the current reading predates a backfilled
	// baseline; remain then exceeds cycleKm and the part classifies as ok.
	used := *currentOdoKm - *base.LastOdoKm
	remain := cycleKm - used

	percent := float64(used) / float64(cycleKm) * 100
	percent = math.Min(100, math.Max(0, percent))

	out := Classification{UsedKm: &used, PercentUsed: &percent}

	switch {
	case remain <= 0:
		out.Tier = TierDanger
		out.Message = "즉시 교체가 필요합니다."
	case float64(remain) <= math.Max(distanceWarnFloorKm, float64(cycleKm)*0.2):
		out.Tier = TierWarn
		out.Message = msgPrinter.Sprintf("%d km 이내 교체 권장", remain)
	default:
		out.Tier = TierOK
		out.Message = msgPrinter.Sprintf("%d km 여유가 있습니다.", remain)
	}
	return out
}

func classifyTime(cfg models.PartConfig, base Baseline, now time.Time) Classification {
	if cfg.CycleMonths == nil || *cfg.CycleMonths <= 0 {
		return Classification{Tier: TierMuted, Message: "교체 주기가 설정되지 않았습니다."}
	}
	if base.LastDate == nil {
		return Classification{Tier: TierMuted, Message: "마지막 교체 기록이 없습니다."}
	}

	cycleMonths := *cfg.CycleMonths
	elapsed := elapsedCalendarMonths(*base.LastDate, now)
	remain := cycleMonths - elapsed

	warnBand := int(math.Round(float64(cycleMonths) * 0.2))
	if warnBand < 1 {
		warnBand = 1
	}

	switch {
	case remain <= 0:
		return Classification{Tier: TierDanger, Message: "즉시 교체가 필요합니다."}
	case remain <= warnBand:
		return Classification{Tier: TierWarn, Message: msgPrinter.Sprintf("%d개월 이내 교체 권장", remain)}
	}
	return Classification{Tier: TierOK, Message: msgPrinter.Sprintf("%d개월 여유가 있습니다.", remain)}
}

// elapsedCalendarMonths counts whole calendar-month boundaries crossed between
// base and now. A replacement on the 31st and an evaluation on the 1st of the
// next month already count as one month; month-scale cycles want exactly this
// coarseness.
func elapsedCalendarMonths(base, now time.Time) int {
	return (now.Year()-base.Year())*12 + int(now.Month()) - int(base.Month())
}
