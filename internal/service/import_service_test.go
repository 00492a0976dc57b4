package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fitclub/internal/schedule"
)

func validImportRow() schedule.ImportRow {
	return schedule.ImportRow{
		TrainerID: 1,
		ClientID:  2,
		Date:      "2026-03-02",
		StartTime: "10:00",
		EndTime:   "11:00",
	}
}

func TestValidateRows(t *testing.T) {
	store := seedStore(t)
	svc := NewImportService(store, store, zap.NewNop())

	rows := []schedule.ImportRow{
		validImportRow(),
		{TrainerID: 99, ClientID: 2, Date: "2026-03-02", StartTime: "10:00", EndTime: "11:00"},
		{TrainerID: 1, ClientID: 2, Date: "2026-03-02", StartTime: "10:00", EndTime: "10:15"},
	}

	report, err := svc.ValidateRows(rows)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Rows)
	assert.Equal(t, 1, report.ValidRows)
	require.Len(t, report.Issues, 2)
	assert.Equal(t, 2, report.Issues[0].Row)
	assert.Equal(t, "trainer_id", report.Issues[0].Field)
	assert.Equal(t, 3, report.Issues[1].Row)
	assert.Equal(t, "end_time", report.Issues[1].Field)
}

// Historical rows may carry terminal statuses and past dates; the import
// accepts both.
func TestValidateRowsAllowsHistoricalRows(t *testing.T) {
	store := seedStore(t)
	svc := NewImportService(store, store, zap.NewNop())

	row := validImportRow()
	row.Date = "2020-01-06"
	row.Status = schedule.StatusCompleted

	report, err := svc.ValidateRows([]schedule.ImportRow{row})
	require.NoError(t, err)
	assert.Equal(t, 1, report.ValidRows)
	assert.Empty(t, report.Issues)
}

func TestValidateRowsEmptyBatch(t *testing.T) {
	store := seedStore(t)
	svc := NewImportService(store, store, zap.NewNop())

	report, err := svc.ValidateRows(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Rows)
	assert.Equal(t, 0, report.ValidRows)
	assert.Empty(t, report.Issues)
}
