package services

import (
	"context"

	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/justsurfingit/jobboard/internal/records"
	"go.uber.org/zap"
)

var savedCandidateFields = []string{"Name", "Tags", "user_id_c", "saved_at_c", "candidate_id_c", "CreatedOn", "ModifiedOn"}

// SavedCandidatesService manages the current user's shortlisted candidates.
type SavedCandidatesService struct {
	saved *savedItems
	Clock Clock
}

func NewSavedCandidatesService(client records.Client, log *zap.Logger, userID int64) *SavedCandidatesService {
	s := &SavedCandidatesService{}
	s.saved = &savedItems{
		table:  newTable(client, log, models.SavedCandidateTable, savedCandidateFields...),
		ref:    "candidate_id_c",
		label:  "Saved Candidate",
		userID: userID,
		clock:  &s.Clock,
	}
	return s
}

// GetAll lists saved candidates, newest first.
func (s *SavedCandidatesService) GetAll(ctx context.Context) []records.Record {
	order := []records.OrderBy{{FieldName: "saved_at_c", SortType: records.SortDesc}}
	return s.saved.list(ctx, order, "fetching saved candidates")
}

// Add returns the new bookmark, or nil when the candidate was already saved.
func (s *SavedCandidatesService) Add(ctx context.Context, candidateID int64) records.Record {
	return s.saved.add(ctx, candidateID, "checking saved candidate", "saving candidate")
}

func (s *SavedCandidatesService) Remove(ctx context.Context, candidateID int64) bool {
	return s.saved.remove(ctx, candidateID, "removing saved candidate")
}

func (s *SavedCandidatesService) CheckSaved(ctx context.Context, candidateID int64) bool {
	return s.saved.isSaved(ctx, candidateID, "checking saved candidate")
}

// GetByCandidateID returns the bookmark for a candidate, or nil.
func (s *SavedCandidatesService) GetByCandidateID(ctx context.Context, candidateID int64) records.Record {
	return s.saved.find(ctx, candidateID)
}

// Toggle returns true when the candidate ends up saved.
func (s *SavedCandidatesService) Toggle(ctx context.Context, candidateID int64) bool {
	return s.saved.toggle(ctx, candidateID, "checking saved candidate", "saving candidate", "removing saved candidate")
}

func (s *SavedCandidatesService) Count(ctx context.Context) int {
	return s.saved.count(ctx, "getting saved candidates count")
}
