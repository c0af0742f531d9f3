package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeApplication(t *testing.T, body string) *dtos.ApplicationInput {
	t.Helper()
	var in dtos.ApplicationInput
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	return &in
}

func TestApplicationRecord(t *testing.T) {
	t.Run("string lookups become integers", func(t *testing.T) {
		in := decodeApplication(t, `{"jobId":"7","candidateId":12,"coverLetter":"Hello","status":"Interview"}`)
		rec := applicationRecord(in, "2024-05-01T09:30:00.000Z")

		assert.Equal(t, "Application for Job 7", rec["Name"])
		assert.Equal(t, int64(7), rec["job_id_c"])
		assert.Equal(t, int64(12), rec["candidate_id_c"])
		assert.Equal(t, "Hello", rec["cover_letter_c"])
		assert.Equal(t, "Interview", rec["status_c"])
		assert.Equal(t, "2024-05-01T09:30:00.000Z", rec["applied_date_c"])
	})

	t.Run("unset lookups are sent as null", func(t *testing.T) {
		rec := applicationRecord(decodeApplication(t, `{"jobId":""}`), "")

		assert.Nil(t, rec["job_id_c"])
		assert.Nil(t, rec["candidate_id_c"])
		assert.Equal(t, "Applied", rec["status_c"])
		assert.Equal(t, "", rec["applied_date_c"])
	})

	t.Run("record names win", func(t *testing.T) {
		in := decodeApplication(t, `{"job_id_c":3,"jobId":9,"notes_c":"a","notes":"b","Name":"Mine"}`)
		rec := applicationRecord(in, "")

		assert.Equal(t, int64(3), rec["job_id_c"])
		assert.Equal(t, "a", rec["notes_c"])
		assert.Equal(t, "Mine", rec["Name"])
	})
}

func TestApplicationService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewApplicationService(newStore(t), nil)
	svc.Clock = fixedClock

	created := svc.Create(ctx, decodeApplication(t, `{"jobId":"4","candidateId":"2"}`))
	require.NotNil(t, created)
	assert.Equal(t, "Application for Job 4", created["Name"])
	assert.Equal(t, int64(4), records.ToInt64(created["job_id_c"]))
	assert.Equal(t, "2024-05-01T09:30:00.000Z", created["applied_date_c"])

	id := created.ID()
	updated := svc.Update(ctx, id, decodeApplication(t, `{"jobId":4,"status":"Offer"}`))
	require.NotNil(t, updated)
	assert.Equal(t, "Offer", updated["status_c"])

	assert.Len(t, svc.GetAll(ctx), 1)
	assert.True(t, svc.Delete(ctx, id))
	assert.Empty(t, svc.GetAll(ctx))
}
