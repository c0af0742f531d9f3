package services

import (
	"context"
	"testing"

	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateRecord(t *testing.T) {
	rec := candidateRecord(&dtos.CandidateInput{
		FullName: "Ada Lovelace",
		Email:    "ada@example.org",
		EmailC:   "ada@work.example.org",
		SkillsC:  "Go, SQL",
		Location: "London",
	})

	assert.Equal(t, "Ada Lovelace", rec["name_c"])
	assert.Equal(t, "", rec["Name"], "Name only falls back to name_c")
	assert.Equal(t, "ada@work.example.org", rec["email_c"])
	assert.Equal(t, "London", rec["location_c"])
	assert.Equal(t, "Go, SQL", rec["skills_c"])
}

func TestCandidateAndCompanyServices(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	candidates := NewCandidateService(store, nil)
	cand := candidates.Create(ctx, &dtos.CandidateInput{NameC: "Grace", Phone: "555"})
	require.NotNil(t, cand)
	assert.Equal(t, "Grace", cand["Name"])
	assert.Equal(t, "555", cand["phone_c"])

	updated := candidates.Update(ctx, cand.ID(), &dtos.CandidateInput{NameC: "Grace Hopper"})
	require.NotNil(t, updated)
	assert.Equal(t, "Grace Hopper", updated["name_c"])

	companies := NewCompanyService(store, nil)
	co := companies.Create(ctx, &dtos.CompanyInput{CompanyName: "Acme", IndustryC: "Software"})
	require.NotNil(t, co)
	assert.Equal(t, "Acme", co["name_c"])
	assert.Len(t, companies.GetAll(ctx), 1)
	assert.Len(t, candidates.GetAll(ctx), 1, "tables are separate")

	assert.True(t, companies.Delete(ctx, co.ID()))
	assert.Nil(t, companies.GetByID(ctx, co.ID()))
	assert.NotNil(t, candidates.GetByID(ctx, cand.ID()))
}
