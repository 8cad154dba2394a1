package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"carkeep.kr/consumable-service/pkg/models"
)

func distanceCfg(cycleKm int) models.PartConfig {
	return models.PartConfig{Kind: "엔진오일", Mode: models.ModeDistance, CycleKm: &cycleKm}
}

func timeCfg(cycleMonths int) models.PartConfig {
	return models.PartConfig{Kind: "배터리", Mode: models.ModeTime, CycleMonths: &cycleMonths}
}

var classifyNow = time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

func TestClassifyDistance_WarnBandBoundaries(t *testing.T) {
	// warn band = max(500, 20% of the cycle)
	tests := []struct {
		cycleKm  int
		warnBand int
	}{
		{1000, 500},
		{5000, 1000},
		{40000, 8000},
		{60000, 12000},
	}

	for _, tt := range tests {
		cfg := distanceCfg(tt.cycleKm)
		base := Baseline{LastOdoKm: intPtr(100000)}

		atLimit := 100000 + tt.cycleKm
		got := Classify(cfg, base, &atLimit, classifyNow)
		assert.Equal(t, TierDanger, got.Tier, "cycle %d: remain 0", tt.cycleKm)
		assert.Equal(t, "즉시 교체가 필요합니다.", got.Message)

		bandEdge := atLimit - tt.warnBand
		got = Classify(cfg, base, &bandEdge, classifyNow)
		assert.Equal(t, TierWarn, got.Tier, "cycle %d: remain == band", tt.cycleKm)

		justOutside := bandEdge - 1
		got = Classify(cfg, base, &justOutside, classifyNow)
		assert.Equal(t, TierOK, got.Tier, "cycle %d: remain == band+1", tt.cycleKm)
	}
}

func TestClassifyDistance_Warn(t *testing.T) {
	cfg := distanceCfg(5000)
	base := Baseline{LastOdoKm: intPtr(100000)}
	current := 104600

	got := Classify(cfg, base, &current, classifyNow)

	assert.Equal(t, TierWarn, got.Tier)
	assert.Equal(t, "400 km 이내 교체 권장", got.Message)
	assert.Equal(t, 4600, *got.UsedKm)
	assert.InDelta(t, 92.0, *got.PercentUsed, 0.001)
}

func TestClassifyDistance_Overrun(t *testing.T) {
	cfg := distanceCfg(5000)
	base := Baseline{LastOdoKm: intPtr(100000)}
	current := 105200

	got := Classify(cfg, base, &current, classifyNow)

	assert.Equal(t, TierDanger, got.Tier)
	assert.Equal(t, 100.0, *got.PercentUsed)
}

func TestClassifyDistance_OKMessageGroupsDigits(t *testing.T) {
	cfg := distanceCfg(40000)
	base := Baseline{LastOdoKm: intPtr(100000)}
	current := 110000

	got := Classify(cfg, base, &current, classifyNow)

	assert.Equal(t, TierOK, got.Tier)
	assert.Equal(t, "30,000 km 여유가 있습니다.", got.Message)
}

func TestClassifyDistance_NegativeUsed(t *testing.T) {
	// current reading predates a backfilled baseline
	cfg := distanceCfg(5000)
	base := Baseline{LastOdoKm: intPtr(104800)}
	current := 104600

	got := Classify(cfg, base, &current, classifyNow)

	assert.Equal(t, TierOK, got.Tier)
	assert.Equal(t, -200, *got.UsedKm)
	assert.Equal(t, 0.0, *got.PercentUsed)
}

func TestClassifyDistance_MutedGuards(t *testing.T) {
	current := 104600
	zero := 0

	tests := []struct {
		name    string
		cfg     models.PartConfig
		base    Baseline
		current *int
		message string
	}{
		{
			name:    "no cycle",
			cfg:     models.PartConfig{Mode: models.ModeDistance},
			base:    Baseline{LastOdoKm: intPtr(100000)},
			current: &current,
			message: "주행 주기가 설정되지 않았습니다.",
		},
		{
			name:    "zero cycle",
			cfg:     models.PartConfig{Mode: models.ModeDistance, CycleKm: &zero},
			base:    Baseline{LastOdoKm: intPtr(100000)},
			current: &current,
			message: "주행 주기가 설정되지 않았습니다.",
		},
		{
			name:    "no current reading",
			cfg:     distanceCfg(5000),
			base:    Baseline{LastOdoKm: intPtr(100000)},
			current: nil,
			message: "현재 주행거리를 불러올 수 없습니다.",
		},
		{
			name:    "no baseline",
			cfg:     distanceCfg(5000),
			base:    Baseline{},
			current: &current,
			message: "마지막 교체 주행거리가 없습니다.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.cfg, tt.base, tt.current, classifyNow)
			assert.Equal(t, TierMuted, got.Tier)
			assert.Equal(t, tt.message, got.Message)
			assert.Nil(t, got.UsedKm)
			assert.Nil(t, got.PercentUsed)
		})
	}
}

func TestClassifyTime_WarnBandBoundaries(t *testing.T) {
	// warn band = max(1, round(20% of the cycle))
	tests := []struct {
		cycleMonths int
		warnBand    int
	}{
		{6, 1},
		{12, 2},
		{24, 5},
		{48, 10},
	}

	base := Baseline{LastDate: datePtr(2020, time.January, 15)}

	for _, tt := range tests {
		cfg := timeCfg(tt.cycleMonths)
		evalAt := func(elapsedMonths int) time.Time {
			return time.Date(2020, time.Month(1+elapsedMonths), 1, 0, 0, 0, 0, time.UTC)
		}

		got := Classify(cfg, base, nil, evalAt(tt.cycleMonths))
		assert.Equal(t, TierDanger, got.Tier, "cycle %d: remain 0", tt.cycleMonths)

		got = Classify(cfg, base, nil, evalAt(tt.cycleMonths-tt.warnBand))
		assert.Equal(t, TierWarn, got.Tier, "cycle %d: remain == band", tt.cycleMonths)

		got = Classify(cfg, base, nil, evalAt(tt.cycleMonths-tt.warnBand-1))
		assert.Equal(t, TierOK, got.Tier, "cycle %d: remain == band+1", tt.cycleMonths)
	}
}

func TestClassifyTime_DayOfMonthIgnored(t *testing.T) {
	// replaced on the 15th, evaluated on the 1st six months later: six whole
	// month boundaries crossed, so the cycle is up
	cfg := timeCfg(6)
	base := Baseline{LastDate: datePtr(2024, time.January, 15)}

	got := Classify(cfg, base, nil, time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, TierDanger, got.Tier)
	assert.Equal(t, "즉시 교체가 필요합니다.", got.Message)
}

func TestClassifyTime_WarnAndOKMessages(t *testing.T) {
	cfg := timeCfg(12)
	base := Baseline{LastDate: datePtr(2024, time.January, 15)}

	got := Classify(cfg, base, nil, time.Date(2024, time.November, 30, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, TierWarn, got.Tier)
	assert.Equal(t, "2개월 이내 교체 권장", got.Message)

	got = Classify(cfg, base, nil, time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, TierOK, got.Tier)
	assert.Equal(t, "10개월 여유가 있습니다.", got.Message)
}

func TestClassifyTime_MutedGuards(t *testing.T) {
	got := Classify(models.PartConfig{Mode: models.ModeTime}, Baseline{LastDate: datePtr(2024, time.January, 15)}, nil, classifyNow)
	assert.Equal(t, TierMuted, got.Tier)
	assert.Equal(t, "교체 주기가 설정되지 않았습니다.", got.Message)

	got = Classify(timeCfg(6), Baseline{}, nil, classifyNow)
	assert.Equal(t, TierMuted, got.Tier)
	assert.Equal(t, "마지막 교체 기록이 없습니다.", got.Message)
}

func TestClassify_Idempotent(t *testing.T) {
	cfg := distanceCfg(5000)
	base := Baseline{LastOdoKm: intPtr(100000)}
	current := 104600

	first := Classify(cfg, base, &current, classifyNow)
	second := Classify(cfg, base, &current, classifyNow)

	assert.Equal(t, first.Tier, second.Tier)
	assert.Equal(t, first.Message, second.Message)
	assert.Equal(t, *first.UsedKm, *second.UsedKm)
	assert.Equal(t, *first.PercentUsed, *second.PercentUsed)
}

func TestTierPriority(t *testing.T) {
	assert.True(t, TierDanger.Priority() < TierWarn.Priority())
	assert.True(t, TierWarn.Priority() < TierOK.Priority())
	assert.True(t, TierOK.Priority() < TierMuted.Priority())

	assert.True(t, TierDanger.Actionable())
	assert.True(t, TierWarn.Actionable())
	assert.False(t, TierOK.Actionable())
	assert.False(t, TierMuted.Actionable())
}
