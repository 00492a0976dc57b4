package entities

import "fitclub/internal/schedule"

// ImportReport summarizes an advisory bulk-validation run. Nothing is
// committed; valid rows are only counted.
type ImportReport struct {
	Rows      int                    `json:"rows"`
	ValidRows int                    `json:"valid_rows"`
	Issues    []schedule.ImportIssue `json:"issues"`
}
