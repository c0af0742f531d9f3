package services

import (
	"context"

	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/justsurfingit/jobboard/internal/records"
	"go.uber.org/zap"
)

const defaultJobStatus = "Active"

var jobFields = []string{
	"Name", "Tags", "title_c", "company_c", "description_c", "requirements_c",
	"location_c", "salary_range_c", "type_c", "posted_date_c", "status_c",
	"CreatedOn", "ModifiedOn",
}

type JobService struct {
	table *table
	Clock Clock
}

func NewJobService(client records.Client, log *zap.Logger) *JobService {
	return &JobService{table: newTable(client, log, models.JobTable, jobFields...)}
}

func (s *JobService) GetAll(ctx context.Context) []records.Record {
	return s.table.fetch(ctx, s.table.params(), "fetching jobs")
}

func (s *JobService) GetByID(ctx context.Context, id int64) records.Record {
	return s.table.get(ctx, id, "fetching job")
}

func (s *JobService) Create(ctx context.Context, in *dtos.JobInput) records.Record {
	rec := jobRecord(in, records.Timestamp(s.Clock.now()))
	return s.table.create(ctx, rec, "creating job")
}

func (s *JobService) Update(ctx context.Context, id int64, in *dtos.JobInput) records.Record {
	rec := jobRecord(in, "")
	rec["Id"] = id
	return s.table.update(ctx, rec, "updating job")
}

func (s *JobService) Delete(ctx context.Context, id int64) bool {
	return s.table.remove(ctx, []int64{id}, "deleting job")
}

// jobRecord keeps only updatable fields. postedDefault fills posted_date_c when
// the input has none.
func jobRecord(in *dtos.JobInput, postedDefault string) records.Record {
	return records.Record{
		"Name":           firstNonEmpty(in.Name, in.TitleC),
		"Tags":           in.Tags,
		"title_c":        firstNonEmpty(in.TitleC, in.Title),
		"company_c":      firstNonEmpty(in.CompanyC, in.Company),
		"description_c":  firstNonEmpty(in.DescriptionC, in.Description),
		"requirements_c": in.RequirementsC,
		"location_c":     firstNonEmpty(in.LocationC, in.Location),
		"salary_range_c": in.SalaryRangeC,
		"type_c":         firstNonEmpty(in.TypeC, in.Type),
		"posted_date_c":  firstNonEmpty(in.PostedDateC, postedDefault),
		"status_c":       firstNonEmpty(in.StatusC, in.Status, defaultJobStatus),
	}
}
