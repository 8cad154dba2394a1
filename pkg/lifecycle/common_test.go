package lifecycle_test

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"go.uber.org/mock/gomock"

	"carkeep.kr/consumable-service/pkg/db"
	"carkeep.kr/consumable-service/pkg/lifecycle"
	"carkeep.kr/consumable-service/pkg/lifecycle/mocks"
)

func GetMockEngineWithMemorySqliteDialector(t *testing.T, useMockIRecord, useMockIItem, useMockIStatus bool) (
	*gomock.Controller,
	*lifecycle.Engine,
	*mocks.MockIRecord,
	*mocks.MockIItem,
	*mocks.MockIStatus,
) {
	ctrl := gomock.NewController(t)

	mockIRecord := mocks.NewMockIRecord(ctrl)
	mockIItem := mocks.NewMockIItem(ctrl)
	mockIStatus := mocks.NewMockIStatus(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	engine := &lifecycle.Engine{Db: *dbInstance}

	recordService := engine.GetIRecord()
	if useMockIRecord {
		recordService = mockIRecord
	}

	itemService := engine.GetIItem()
	if useMockIItem {
		itemService = mockIItem
	}

	statusService := engine.GetIStatus()
	if useMockIStatus {
		statusService = mockIStatus
	}

	engine.WithServices(lifecycle.ServiceOpts{
		Record: recordService,
		Item:   itemService,
		Status: statusService,
	})

	return ctrl, engine, mockIRecord, mockIItem, mockIStatus
}

type fixedOdo int

func (f fixedOdo) Current(string) (*int, error) {
	v := int(f)
	return &v, nil
}

// fixedOdometer is a constant-reading odometer collaborator for tests that
// only care about classification arithmetic.
func fixedOdometer(v int) lifecycle.OdometerSource { return fixedOdo(v) }

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
