package lifecycle_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"carkeep.kr/consumable-service/pkg/common"
	"carkeep.kr/consumable-service/pkg/lifecycle"
	"carkeep.kr/consumable-service/pkg/lifecycle/mocks"
	"carkeep.kr/consumable-service/pkg/models"
	_ "carkeep.kr/consumable-service/pkg/testing"
)

var statusNow = time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

func TestCategoryStatus(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engine, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	vehicleID := uuid.NewString()

	mockOdometer := mocks.NewMockOdometerSource(ctrl)
	mockOdometer.EXPECT().Current(gomock.Eq(vehicleID)).Return(ptrInt(104600), nil).AnyTimes()
	engine.WithCollaborators(lifecycle.CollaboratorOpts{Odometer: mockOdometer})

	_, err := engine.Record.AddRecord(vehicleID, &models.ReplacementRecord{
		Category: models.CategoryOil,
		Kind:     "엔진오일",
		Date:     ptrDate(2024, time.January, 15),
		OdoKm:    ptrInt(100000),
	})
	require.NoError(t, err)

	statuses, err := engine.Status.CategoryStatus(vehicleID, models.CategoryOil, statusNow)
	assert.NoError(t, err)
	assert.Len(t, statuses, 4) // the seeded defaults

	engineOil := findStatus(t, statuses, "엔진오일")
	assert.Equal(t, lifecycle.TierWarn, engineOil.Classification.Tier)
	assert.Equal(t, 4600, *engineOil.Classification.UsedKm)

	// no records for the rest; distance kinds mute on the missing baseline
	missionOil := findStatus(t, statuses, "미션오일")
	assert.Equal(t, lifecycle.TierMuted, missionOil.Classification.Tier)
	assert.Equal(t, "마지막 교체 주행거리가 없습니다.", missionOil.Classification.Message)
}

func TestCategoryStatus_NoOdometerCollaborator(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engine, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	vehicleID := uuid.NewString()

	_, err := engine.Record.AddRecord(vehicleID, &models.ReplacementRecord{
		Category: models.CategoryOil, Kind: "엔진오일", OdoKm: ptrInt(100000),
	})
	require.NoError(t, err)

	statuses, err := engine.Status.CategoryStatus(vehicleID, models.CategoryOil, statusNow)
	assert.NoError(t, err)

	engineOil := findStatus(t, statuses, "엔진오일")
	assert.Equal(t, lifecycle.TierMuted, engineOil.Classification.Tier)
	assert.Equal(t, "현재 주행거리를 불러올 수 없습니다.", engineOil.Classification.Message)
}

func TestCategoryStatus_OdometerFailureDegrades(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engine, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	vehicleID := uuid.NewString()

	mockOdometer := mocks.NewMockOdometerSource(ctrl)
	mockOdometer.EXPECT().Current(gomock.Eq(vehicleID)).Return(nil, errors.New("store closed")).AnyTimes()
	engine.WithCollaborators(lifecycle.CollaboratorOpts{Odometer: mockOdometer})

	statuses, err := engine.Status.CategoryStatus(vehicleID, models.CategoryOil, statusNow)
	assert.NoError(t, err)
	assert.NotEmpty(t, statuses)
	for _, status := range statuses {
		assert.Equal(t, lifecycle.TierMuted, status.Classification.Tier)
	}
}

func TestDueSummary(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engine, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	vehicleID := uuid.NewString()

	mockOdometer := mocks.NewMockOdometerSource(ctrl)
	mockOdometer.EXPECT().Current(gomock.Eq(vehicleID)).Return(ptrInt(104600), nil).AnyTimes()
	mockTires := mocks.NewMockTireWarningSource(ctrl)
	mockTires.EXPECT().Warnings(gomock.Eq(vehicleID)).Return([]lifecycle.TireWarning{
		{
			Position:      "front_left",
			PositionLabel: "Front Left",
			Tone:          lifecycle.TierDanger,
			Message:       "Tread depth is at or below 2mm. Replace immediately.",
			HasMetadata:   true,
			HasHistory:    true,
		},
		{
			Position:      "rear_right",
			PositionLabel: "Rear Right",
			Tone:          lifecycle.TierWarn,
			Message:       "No tire metadata registered yet.",
		},
	}, nil).Times(1)
	engine.WithCollaborators(lifecycle.CollaboratorOpts{Odometer: mockOdometer, Tires: mockTires})

	// 엔진오일 lands in the warning band; 미션오일 is overrun
	_, err := engine.Record.AddRecord(vehicleID, &models.ReplacementRecord{
		Category: models.CategoryOil, Kind: "엔진오일", OdoKm: ptrInt(100000),
	})
	require.NoError(t, err)
	_, err = engine.Record.AddRecord(vehicleID, &models.ReplacementRecord{
		Category: models.CategoryOil, Kind: "미션오일", OdoKm: ptrInt(60000),
	})
	require.NoError(t, err)

	items, err := engine.Status.DueSummary(vehicleID, statusNow)
	assert.NoError(t, err)

	got := make([]string, 0, len(items))
	for _, item := range items {
		got = append(got, item.SourceID)
	}
	// dangers first (Korean area order puts oil before tires), then warns;
	// the never-registered rear tire is suppressed
	assert.Equal(t, []string{
		"oil-미션오일",
		"tire-front_left",
		"oil-엔진오일",
	}, got)

	assert.Equal(t, "오일 관리", items[0].Area)
	assert.Equal(t, "즉시 교체가 필요합니다.", items[0].Message)
	assert.Equal(t, "타이어 관리", items[1].Area)
}

func TestDueSummary_TireFailureDegrades(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engine, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	vehicleID := uuid.NewString()

	mockOdometer := mocks.NewMockOdometerSource(ctrl)
	mockOdometer.EXPECT().Current(gomock.Eq(vehicleID)).Return(ptrInt(104600), nil).AnyTimes()
	mockTires := mocks.NewMockTireWarningSource(ctrl)
	mockTires.EXPECT().Warnings(gomock.Eq(vehicleID)).Return(nil, errors.New("store closed")).Times(1)
	engine.WithCollaborators(lifecycle.CollaboratorOpts{Odometer: mockOdometer, Tires: mockTires})

	_, err := engine.Record.AddRecord(vehicleID, &models.ReplacementRecord{
		Category: models.CategoryOil, Kind: "엔진오일", OdoKm: ptrInt(100000),
	})
	require.NoError(t, err)

	// the consumable rows still come back without the tire contribution
	items, err := engine.Status.DueSummary(vehicleID, statusNow)
	assert.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "oil-엔진오일", items[0].SourceID)
}

func TestDueSummary_EmptyVehicle(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engine, _, _, _ := GetMockEngineWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	// no odometer, no records, no tires: everything mutes, nothing is due
	items, err := engine.Status.DueSummary(uuid.NewString(), statusNow)
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestDueSummary_MockedStatusService(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, engine, _, _, mockIStatus := GetMockEngineWithMemorySqliteDialector(t, false, false, true)
	defer ctrl.Finish()

	vehicleID := uuid.NewString()

	mockIStatus.
		EXPECT().
		DueSummary(gomock.Eq(vehicleID), gomock.Any()).
		Return([]lifecycle.DueItem{}, nil).
		Times(1)

	items, err := engine.Status.DueSummary(vehicleID, statusNow)
	assert.NoError(t, err)
	assert.Empty(t, items)
}
