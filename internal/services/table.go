package services

import (
	"context"
	"time"

	"github.com/justsurfingit/jobboard/internal/records"
	"go.uber.org/zap"
)

// table wraps one record table. Every call logs its own failure and hands back
// a fallback value instead of an error.
type table struct {
	name   string
	fields []string
	client records.Client
	log    *zap.Logger
}

func newTable(client records.Client, log *zap.Logger, name string, fields ...string) *table {
	if log == nil {
		log = zap.NewNop()
	}
	return &table{
		name:   name,
		fields: fields,
		client: client,
		log:    log.With(zap.String("table", name)),
	}
}

func (t *table) params() *records.FetchParams {
	return &records.FetchParams{Fields: records.Fields(t.fields...)}
}

// fetch returns the matching records, or an empty slice on any failure.
func (t *table) fetch(ctx context.Context, params *records.FetchParams, action string) []records.Record {
	resp, err := t.client.FetchRecords(ctx, t.name, params)
	if err != nil {
		t.log.Error("Error "+action, zap.Error(err))
		return []records.Record{}
	}
	if !resp.Success {
		t.log.Error("Error "+action, zap.String("message", resp.Message))
		return []records.Record{}
	}
	if resp.Data == nil {
		return []records.Record{}
	}
	return resp.Data
}

// get returns one record, or nil on any failure.
func (t *table) get(ctx context.Context, id int64, action string) records.Record {
	resp, err := t.client.GetRecordByID(ctx, t.name, id, t.params())
	if err != nil {
		t.log.Error("Error "+action, zap.Int64("id", id), zap.Error(err))
		return nil
	}
	if !resp.Success {
		t.log.Error("Error "+action, zap.Int64("id", id), zap.String("message", resp.Message))
		return nil
	}
	return resp.Data
}

// create returns the first created record, or nil.
func (t *table) create(ctx context.Context, rec records.Record, action string) records.Record {
	resp, err := t.client.CreateRecord(ctx, t.name, &records.MutateParams{Records: []records.Record{rec}})
	if err != nil {
		t.log.Error("Error "+action, zap.Error(err))
		return nil
	}
	return t.firstResult(resp, action)
}

// update returns the first updated record, or nil.
func (t *table) update(ctx context.Context, rec records.Record, action string) records.Record {
	resp, err := t.client.UpdateRecord(ctx, t.name, &records.MutateParams{Records: []records.Record{rec}})
	if err != nil {
		t.log.Error("Error "+action, zap.Error(err))
		return nil
	}
	return t.firstResult(resp, action)
}

// remove reports whether at least one record was deleted.
func (t *table) remove(ctx context.Context, ids []int64, action string) bool {
	resp, err := t.client.DeleteRecord(ctx, t.name, &records.DeleteParams{RecordIDs: ids})
	if err != nil {
		t.log.Error("Error "+action, zap.Int64s("ids", ids), zap.Error(err))
		return false
	}
	if !resp.Success {
		t.log.Error("Error "+action, zap.Int64s("ids", ids), zap.String("message", resp.Message))
		return false
	}
	ok, failed := resp.Split()
	if len(failed) > 0 {
		t.log.Error("Failed "+action, zap.Int("failed", len(failed)), zap.Any("results", failed))
	}
	return len(ok) > 0
}

func (t *table) firstResult(resp *records.MutateResponse, action string) records.Record {
	if !resp.Success {
		t.log.Error("Error "+action, zap.String("message", resp.Message))
		return nil
	}
	ok, failed := resp.Split()
	if len(failed) > 0 {
		t.log.Error("Failed "+action, zap.Int("failed", len(failed)), zap.Any("results", failed))
	}
	if len(ok) == 0 {
		return nil
	}
	return ok[0].Data
}

// firstNonEmpty returns the first non-empty value.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Clock returns the current time. Services take one so tests can pin it.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}
