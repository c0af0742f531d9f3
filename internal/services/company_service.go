package services

import (
	"context"

	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/justsurfingit/jobboard/internal/records"
	"go.uber.org/zap"
)

var companyFields = []string{
	"Name", "Tags", "name_c", "description_c", "industry_c", "size_c",
	"location_c", "website_c", "jobs_c", "CreatedOn", "ModifiedOn",
}

type CompanyService struct {
	table *table
}

func NewCompanyService(client records.Client, log *zap.Logger) *CompanyService {
	return &CompanyService{table: newTable(client, log, models.CompanyTable, companyFields...)}
}

func (s *CompanyService) GetAll(ctx context.Context) []records.Record {
	return s.table.fetch(ctx, s.table.params(), "fetching companies")
}

func (s *CompanyService) GetByID(ctx context.Context, id int64) records.Record {
	return s.table.get(ctx, id, "fetching company")
}

func (s *CompanyService) Create(ctx context.Context, in *dtos.CompanyInput) records.Record {
	return s.table.create(ctx, companyRecord(in), "creating company")
}

func (s *CompanyService) Update(ctx context.Context, id int64, in *dtos.CompanyInput) records.Record {
	rec := companyRecord(in)
	rec["Id"] = id
	return s.table.update(ctx, rec, "updating company")
}

func (s *CompanyService) Delete(ctx context.Context, id int64) bool {
	return s.table.remove(ctx, []int64{id}, "deleting company")
}

func companyRecord(in *dtos.CompanyInput) records.Record {
	return records.Record{
		"Name":          firstNonEmpty(in.Name, in.NameC),
		"Tags":          in.Tags,
		"name_c":        firstNonEmpty(in.NameC, in.CompanyName),
		"description_c": in.DescriptionC,
		"industry_c":    in.IndustryC,
		"size_c":        in.SizeC,
		"location_c":    in.LocationC,
		"website_c":     in.WebsiteC,
		"jobs_c":        in.JobsC,
	}
}
