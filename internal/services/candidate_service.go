package services

import (
	"context"

	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/justsurfingit/jobboard/internal/records"
	"go.uber.org/zap"
)

var candidateFields = []string{
	"Name", "Tags", "name_c", "email_c", "phone_c", "skills_c", "experience_c",
	"education_c", "resume_c", "location_c", "preferences_c", "description_c",
	"CreatedOn", "ModifiedOn",
}

type CandidateService struct {
	table *table
}

func NewCandidateService(client records.Client, log *zap.Logger) *CandidateService {
	return &CandidateService{table: newTable(client, log, models.CandidateTable, candidateFields...)}
}

func (s *CandidateService) GetAll(ctx context.Context) []records.Record {
	return s.table.fetch(ctx, s.table.params(), "fetching candidates")
}

func (s *CandidateService) GetByID(ctx context.Context, id int64) records.Record {
	return s.table.get(ctx, id, "fetching candidate")
}

func (s *CandidateService) Create(ctx context.Context, in *dtos.CandidateInput) records.Record {
	return s.table.create(ctx, candidateRecord(in), "creating candidate")
}

func (s *CandidateService) Update(ctx context.Context, id int64, in *dtos.CandidateInput) records.Record {
	rec := candidateRecord(in)
	rec["Id"] = id
	return s.table.update(ctx, rec, "updating candidate")
}

func (s *CandidateService) Delete(ctx context.Context, id int64) bool {
	return s.table.remove(ctx, []int64{id}, "deleting candidate")
}

func candidateRecord(in *dtos.CandidateInput) records.Record {
	return records.Record{
		"Name":          firstNonEmpty(in.Name, in.NameC),
		"Tags":          in.Tags,
		"name_c":        firstNonEmpty(in.NameC, in.FullName),
		"email_c":       firstNonEmpty(in.EmailC, in.Email),
		"phone_c":       firstNonEmpty(in.PhoneC, in.Phone),
		"skills_c":      in.SkillsC,
		"experience_c":  in.ExperienceC,
		"education_c":   in.EducationC,
		"resume_c":      in.ResumeC,
		"location_c":    firstNonEmpty(in.LocationC, in.Location),
		"preferences_c": in.PreferencesC,
		"description_c": firstNonEmpty(in.DescriptionC, in.Description),
	}
}
