package services

import (
	"context"

	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/justsurfingit/jobboard/internal/records"
	"go.uber.org/zap"
)

var savedJobFields = []string{"Name", "Tags", "saved_at_c", "user_id_c", "job_id_c", "CreatedOn", "ModifiedOn"}

// SavedJobsService manages the current user's bookmarked jobs.
type SavedJobsService struct {
	saved *savedItems
	Clock Clock
}

func NewSavedJobsService(client records.Client, log *zap.Logger, userID int64) *SavedJobsService {
	s := &SavedJobsService{}
	s.saved = &savedItems{
		table:  newTable(client, log, models.SavedJobTable, savedJobFields...),
		ref:    "job_id_c",
		label:  "Saved Job",
		userID: userID,
		clock:  &s.Clock,
	}
	return s
}

func (s *SavedJobsService) GetAll(ctx context.Context) []records.Record {
	return s.saved.list(ctx, nil, "fetching saved jobs")
}

func (s *SavedJobsService) IsSaved(ctx context.Context, jobID int64) bool {
	return s.saved.isSaved(ctx, jobID, "checking saved job")
}

// Add bookmarks a job. It reports false when the job was already saved.
func (s *SavedJobsService) Add(ctx context.Context, jobID int64) bool {
	return s.saved.add(ctx, jobID, "checking saved job", "saving job") != nil
}

func (s *SavedJobsService) Remove(ctx context.Context, jobID int64) bool {
	return s.saved.remove(ctx, jobID, "removing saved job")
}

// Toggle returns true when the job ends up saved.
func (s *SavedJobsService) Toggle(ctx context.Context, jobID int64) bool {
	return s.saved.toggle(ctx, jobID, "checking saved job", "saving job", "removing saved job")
}

func (s *SavedJobsService) Count(ctx context.Context) int {
	return s.saved.count(ctx, "getting saved jobs count")
}
