package service

import (
	"errors"

	"go.uber.org/zap"

	"fitclub/internal/entities"
	"fitclub/internal/repository"
	"fitclub/internal/schedule"
)

// ImportService runs the advisory bulk-onboarding validation: it checks rows
// the way the booking flow would, minus conflicts and past-date rules, and
// reports findings per row. It never writes to the booking store.
type ImportService struct {
	trainers TrainerStore
	clients  ClientStore
	log      *zap.Logger
}

func NewImportService(trainers TrainerStore, clients ClientStore, log *zap.Logger) *ImportService {
	return &ImportService{trainers: trainers, clients: clients, log: log}
}

func (s *ImportService) ValidateRows(rows []schedule.ImportRow) (*entities.ImportReport, error) {
	report := &entities.ImportReport{Rows: len(rows), Issues: []schedule.ImportIssue{}}

	for i, row := range rows {
		look := schedule.Lookups{}

		if row.TrainerID != 0 {
			trainer, err := s.trainers.GetTrainerByID(row.TrainerID)
			if err != nil && !errors.Is(err, repository.ErrNotFound) {
				return nil, err
			}
			if trainer != nil {
				hours, _ := schedule.NormalizeWorkingHours(trainer.Hours)
				look.Trainer = &schedule.Trainer{
					ID:         trainer.ID,
					Status:     trainer.Status,
					HourlyRate: trainer.HourlyRate,
					Hours:      hours,
				}
			}
		}
		if row.ClientID != 0 {
			client, err := s.clients.GetClientByID(row.ClientID)
			if err != nil && !errors.Is(err, repository.ErrNotFound) {
				return nil, err
			}
			if client != nil {
				look.ClientExists = true
				look.ClientTrainerID = client.TrainerID
			}
		}

		issues := schedule.ValidateImportRow(i+1, row, look)
		if len(issues) == 0 {
			report.ValidRows++
		} else {
			report.Issues = append(report.Issues, issues...)
		}
	}

	s.log.Info("bulk import validated",
		zap.Int("rows", report.Rows),
		zap.Int("valid", report.ValidRows),
		zap.Int("issues", len(report.Issues)))
	return report, nil
}
