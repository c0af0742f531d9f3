package services

import (
	"context"
	"fmt"

	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/justsurfingit/jobboard/internal/records"
	"go.uber.org/zap"
)

const defaultApplicationStatus = "Applied"

var applicationFields = []string{
	"Name", "Tags", "status_c", "applied_date_c", "cover_letter_c", "notes_c",
	"interviews_c", "job_id_c", "candidate_id_c", "CreatedOn", "ModifiedOn",
}

type ApplicationService struct {
	table *table
	Clock Clock
}

func NewApplicationService(client records.Client, log *zap.Logger) *ApplicationService {
	return &ApplicationService{table: newTable(client, log, models.ApplicationTable, applicationFields...)}
}

func (s *ApplicationService) GetAll(ctx context.Context) []records.Record {
	return s.table.fetch(ctx, s.table.params(), "fetching applications")
}

func (s *ApplicationService) GetByID(ctx context.Context, id int64) records.Record {
	return s.table.get(ctx, id, "fetching application")
}

func (s *ApplicationService) Create(ctx context.Context, in *dtos.ApplicationInput) records.Record {
	rec := applicationRecord(in, records.Timestamp(s.Clock.now()))
	return s.table.create(ctx, rec, "creating application")
}

func (s *ApplicationService) Update(ctx context.Context, id int64, in *dtos.ApplicationInput) records.Record {
	rec := applicationRecord(in, "")
	rec["Id"] = id
	return s.table.update(ctx, rec, "updating application")
}

func (s *ApplicationService) Delete(ctx context.Context, id int64) bool {
	return s.table.remove(ctx, []int64{id}, "deleting application")
}

// applicationRecord sends lookups as integers, or null when unset.
func applicationRecord(in *dtos.ApplicationInput, appliedDefault string) records.Record {
	jobID := in.JobIDC.Or(in.JobID)
	return records.Record{
		"Name":           firstNonEmpty(in.Name, fmt.Sprintf("Application for Job %d", jobID)),
		"Tags":           in.Tags,
		"status_c":       firstNonEmpty(in.StatusC, in.Status, defaultApplicationStatus),
		"applied_date_c": firstNonEmpty(in.AppliedDateC, in.AppliedDate, appliedDefault),
		"cover_letter_c": firstNonEmpty(in.CoverLetterC, in.CoverLetter),
		"notes_c":        firstNonEmpty(in.NotesC, in.Notes),
		"interviews_c":   firstNonEmpty(in.InterviewsC, in.Interviews),
		"job_id_c":       jobID.Value(),
		"candidate_id_c": in.CandidateIDC.Or(in.CandidateID).Value(),
	}
}
