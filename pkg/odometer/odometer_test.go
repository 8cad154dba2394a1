package odometer

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carkeep.kr/consumable-service/pkg/common"
	"carkeep.kr/consumable-service/pkg/db"
	_ "carkeep.kr/consumable-service/pkg/testing"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	dbInstance := db.GetInstance(db.UseMemorySqliteDialector())
	return &Service{Db: *dbInstance}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestCurrent_Empty(t *testing.T) {
	common.SetTestLoggerNop()

	service := newTestService(t)

	current, err := service.Current(uuid.NewString())
	assert.NoError(t, err)
	assert.Nil(t, current)
}

func TestCurrent_IsMaxOnRecord(t *testing.T) {
	common.SetTestLoggerNop()

	service := newTestService(t)
	vehicleID := uuid.NewString()

	_, err := service.Update(vehicleID, day(2024, time.June, 1), 104000)
	require.NoError(t, err)
	_, err = service.Update(vehicleID, day(2024, time.June, 20), 104600)
	require.NoError(t, err)
	// a backfilled lower entry must not move the reading backwards
	_, err = service.Update(vehicleID, day(2024, time.May, 10), 103500)
	require.NoError(t, err)

	current, err := service.Current(vehicleID)
	assert.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, 104600, *current)
}

func TestCurrent_ScopedToVehicle(t *testing.T) {
	common.SetTestLoggerNop()

	service := newTestService(t)
	first := uuid.NewString()
	second := uuid.NewString()

	_, err := service.Update(first, day(2024, time.June, 1), 104000)
	require.NoError(t, err)

	current, err := service.Current(second)
	assert.NoError(t, err)
	assert.Nil(t, current)
}

func TestMonthlyDistance(t *testing.T) {
	common.SetTestLoggerNop()

	service := newTestService(t)
	vehicleID := uuid.NewString()

	_, err := service.Update(vehicleID, day(2024, time.May, 28), 103000)
	require.NoError(t, err)
	_, err = service.Update(vehicleID, day(2024, time.June, 5), 103600)
	require.NoError(t, err)
	_, err = service.Update(vehicleID, day(2024, time.June, 25), 104600)
	require.NoError(t, err)

	// against the last reading before the month
	distance, err := service.MonthlyDistance(vehicleID, 2024, time.June)
	assert.NoError(t, err)
	assert.Equal(t, 1600, distance)
}

func TestMonthlyDistance_NoPriorReading(t *testing.T) {
	common.SetTestLoggerNop()

	service := newTestService(t)
	vehicleID := uuid.NewString()

	_, err := service.Update(vehicleID, day(2024, time.June, 5), 103600)
	require.NoError(t, err)
	_, err = service.Update(vehicleID, day(2024, time.June, 25), 104600)
	require.NoError(t, err)

	// only readings inside the month: first one anchors the distance
	distance, err := service.MonthlyDistance(vehicleID, 2024, time.June)
	assert.NoError(t, err)
	assert.Equal(t, 1000, distance)
}

func TestMonthlyDistance_EmptyMonth(t *testing.T) {
	common.SetTestLoggerNop()

	service := newTestService(t)
	vehicleID := uuid.NewString()

	_, err := service.Update(vehicleID, day(2024, time.May, 28), 103000)
	require.NoError(t, err)

	distance, err := service.MonthlyDistance(vehicleID, 2024, time.June)
	assert.NoError(t, err)
	assert.Equal(t, 0, distance)
}

func TestMonthlyDistance_NeverNegative(t *testing.T) {
	common.SetTestLoggerNop()

	service := newTestService(t)
	vehicleID := uuid.NewString()

	// a typo before the month larger than everything inside it
	_, err := service.Update(vehicleID, day(2024, time.May, 28), 203000)
	require.NoError(t, err)
	_, err = service.Update(vehicleID, day(2024, time.June, 5), 103600)
	require.NoError(t, err)

	distance, err := service.MonthlyDistance(vehicleID, 2024, time.June)
	assert.NoError(t, err)
	assert.Equal(t, 0, distance)
}
