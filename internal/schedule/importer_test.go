package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validImportRow() ImportRow {
	return ImportRow{
		TrainerID: 1,
		ClientID:  10,
		Date:      "2025-11-03",
		StartTime: "10:00",
		EndTime:   "11:00",
		Type:      TypePersonal,
		Status:    StatusCompleted, // trusted bulk data may seed terminal statuses
	}
}

func TestValidateImportRow_Clean(t *testing.T) {
	issues := ValidateImportRow(1, validImportRow(), validLookups())
	assert.Empty(t, issues)
}

// The import path is advisory and looser: past dates and conflicts are not
// its business, only shape, references and the duration policy.
func TestValidateImportRow_AllowsPastDatesAndConflicts(t *testing.T) {
	look := validLookups()
	look.Existing = []Booking{booking(7, "10:00", "11:00", StatusScheduled)}
	issues := ValidateImportRow(3, validImportRow(), look)
	assert.Empty(t, issues)
}

func TestValidateImportRow_ReportsPerRowFindings(t *testing.T) {
	row := validImportRow()
	row.ClientID = 99
	row.StartTime = "10am"
	row.Type = "bootcamp"

	look := validLookups()
	look.ClientExists = false

	issues := ValidateImportRow(12, row, look)
	require.Len(t, issues, 3)
	for _, issue := range issues {
		assert.Equal(t, 12, issue.Row)
	}
	assert.Equal(t, "client_id", issues[0].Field)
	assert.Equal(t, "99", issues[0].Value)
	assert.Equal(t, "start_time", issues[1].Field)
	assert.Equal(t, "10am", issues[1].Value)
	assert.Equal(t, "type", issues[2].Field)
}

func TestValidateImportRow_DurationPolicyMatchesInteractivePath(t *testing.T) {
	row := validImportRow()
	row.EndTime = "14:00" // 240 minutes: allowed, same bound as direct creation
	assert.Empty(t, ValidateImportRow(1, row, validLookups()))

	row.EndTime = "14:01"
	issues := ValidateImportRow(1, row, validLookups())
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Error, "30-240")
}

func TestValidateImportRow_TrainerMismatch(t *testing.T) {
	look := validLookups()
	look.ClientTrainerID = 2
	issues := ValidateImportRow(5, validImportRow(), look)
	require.Len(t, issues, 1)
	assert.Equal(t, "trainer_id", issues[0].Field)
}

func TestValidateImportRow_MissingFields(t *testing.T) {
	issues := ValidateImportRow(2, ImportRow{}, Lookups{Today: time.Now()})
	require.Len(t, issues, 5)
	for _, issue := range issues {
		assert.Equal(t, "required", issue.Error)
	}
}
