package services

import (
	"context"
	"fmt"

	"github.com/justsurfingit/jobboard/internal/records"
)

// savedItems is a per-user bookmark table keyed by a lookup field
// (job_id_c, candidate_id_c).
type savedItems struct {
	table  *table
	ref    string
	label  string // "Saved Job", used to name new records
	userID int64
	clock  *Clock
}

func (s *savedItems) owner() records.Condition {
	return records.Eq("user_id_c", s.userID)
}

func (s *savedItems) matching(refID int64, fields ...string) *records.FetchParams {
	return &records.FetchParams{
		Fields: records.Fields(fields...),
		Where:  []records.Condition{records.Eq(s.ref, refID), s.owner()},
	}
}

func (s *savedItems) list(ctx context.Context, orderBy []records.OrderBy, action string) []records.Record {
	params := s.table.params()
	params.Where = []records.Condition{s.owner()}
	params.OrderBy = orderBy
	return s.table.fetch(ctx, params, action)
}

func (s *savedItems) isSaved(ctx context.Context, refID int64, action string) bool {
	return len(s.table.fetch(ctx, s.matching(refID, "Id"), action)) > 0
}

func (s *savedItems) find(ctx context.Context, refID int64) records.Record {
	found := s.table.fetch(ctx, s.matching(refID, s.table.fields...), "fetching "+s.label)
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

// add creates the bookmark unless it already exists.
func (s *savedItems) add(ctx context.Context, refID int64, checkAction, createAction string) records.Record {
	if s.isSaved(ctx, refID, checkAction) {
		return nil
	}
	rec := records.Record{
		"Name":       fmt.Sprintf("%s %d", s.label, refID),
		"Tags":       "",
		"saved_at_c": records.Timestamp(s.clock.now()),
		"user_id_c":  s.userID,
		s.ref:        refID,
	}
	return s.table.create(ctx, rec, createAction)
}

// remove deletes every bookmark for refID. Nothing to delete reports false.
func (s *savedItems) remove(ctx context.Context, refID int64, action string) bool {
	found := s.table.fetch(ctx, s.matching(refID, "Id"), action)
	if len(found) == 0 {
		return false
	}
	ids := make([]int64, 0, len(found))
	for _, rec := range found {
		ids = append(ids, rec.ID())
	}
	return s.table.remove(ctx, ids, action)
}

func (s *savedItems) count(ctx context.Context, action string) int {
	params := &records.FetchParams{
		Fields: records.Fields("Id"),
		Where:  []records.Condition{s.owner()},
	}
	return len(s.table.fetch(ctx, params, action))
}

// toggle flips the bookmark and returns the state it ended in.
func (s *savedItems) toggle(ctx context.Context, refID int64, check, create, del string) bool {
	if s.isSaved(ctx, refID, check) {
		return !s.remove(ctx, refID, del)
	}
	return s.add(ctx, refID, check, create) != nil
}
