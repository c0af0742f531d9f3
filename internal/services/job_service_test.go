package services

import (
	"context"
	"errors"
	"testing"

	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/justsurfingit/jobboard/internal/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestJobRecord_Coercion(t *testing.T) {
	t.Run("short names fill record fields", func(t *testing.T) {
		rec := jobRecord(&dtos.JobInput{
			Title:       "Go Engineer",
			Company:     "Acme",
			Description: "Build things",
			Location:    "Remote",
			Type:        "Full-time",
			Status:      "Draft",
		}, "2024-05-01T09:30:00.000Z")

		assert.Equal(t, "", rec["Name"], "Name only falls back to title_c")
		assert.Equal(t, "Go Engineer", rec["title_c"])
		assert.Equal(t, "Acme", rec["company_c"])
		assert.Equal(t, "Build things", rec["description_c"])
		assert.Equal(t, "Remote", rec["location_c"])
		assert.Equal(t, "Full-time", rec["type_c"])
		assert.Equal(t, "Draft", rec["status_c"])
		assert.Equal(t, "2024-05-01T09:30:00.000Z", rec["posted_date_c"])
		assert.NotContains(t, rec, "Id")
	})

	t.Run("record names win over short names", func(t *testing.T) {
		rec := jobRecord(&dtos.JobInput{
			TitleC:      "Staff Engineer",
			Title:       "ignored",
			PostedDateC: "2023-01-01T00:00:00.000Z",
		}, "2024-05-01T09:30:00.000Z")

		assert.Equal(t, "Staff Engineer", rec["Name"])
		assert.Equal(t, "Staff Engineer", rec["title_c"])
		assert.Equal(t, "2023-01-01T00:00:00.000Z", rec["posted_date_c"])
		assert.Equal(t, "Active", rec["status_c"])
	})
}

func TestJobService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc := NewJobService(newStore(t), zap.NewNop())
	svc.Clock = fixedClock

	created := svc.Create(ctx, &dtos.JobInput{TitleC: "Go Engineer", Company: "Acme"})
	require.NotNil(t, created)
	id := created.ID()
	assert.Equal(t, "Active", created["status_c"])
	assert.Equal(t, "2024-05-01T09:30:00.000Z", created["posted_date_c"])

	all := svc.GetAll(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "Acme", all[0]["company_c"])

	updated := svc.Update(ctx, id, &dtos.JobInput{TitleC: "Senior Go Engineer", StatusC: "Closed"})
	require.NotNil(t, updated)
	assert.Equal(t, "Senior Go Engineer", updated["title_c"])
	assert.Equal(t, "Closed", updated["status_c"])
	assert.Equal(t, "", updated["posted_date_c"], "update does not default the posted date")

	got := svc.GetByID(ctx, id)
	require.NotNil(t, got)
	assert.Equal(t, "Senior Go Engineer", got["title_c"])

	assert.True(t, svc.Delete(ctx, id))
	assert.Nil(t, svc.GetByID(ctx, id))
	assert.False(t, svc.Delete(ctx, id))
	assert.Nil(t, svc.Update(ctx, id, &dtos.JobInput{TitleC: "gone"}))
}

func TestJobService_Fallbacks(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection refused")

	t.Run("fetch error gives empty list and is logged", func(t *testing.T) {
		core, logs := observer.New(zapcore.ErrorLevel)
		client := new(MockClient)
		client.On("FetchRecords", ctx, models.JobTable, mock.Anything).Return(nil, boom)

		got := NewJobService(client, zap.New(core)).GetAll(ctx)
		assert.NotNil(t, got)
		assert.Empty(t, got)
		assert.Equal(t, 1, logs.FilterMessage("Error fetching jobs").Len())
		client.AssertExpectations(t)
	})

	t.Run("refused fetch gives empty list", func(t *testing.T) {
		client := new(MockClient)
		client.On("FetchRecords", ctx, models.JobTable, mock.Anything).
			Return(&records.FetchResponse{Success: false, Message: "quota exceeded"}, nil)
		assert.Empty(t, NewJobService(client, nil).GetAll(ctx))
	})

	t.Run("get failure gives nil", func(t *testing.T) {
		client := new(MockClient)
		client.On("GetRecordByID", ctx, models.JobTable, int64(3), mock.Anything).Return(nil, boom)
		assert.Nil(t, NewJobService(client, nil).GetByID(ctx, 3))
	})

	t.Run("create with only failed results gives nil", func(t *testing.T) {
		core, logs := observer.New(zapcore.ErrorLevel)
		client := new(MockClient)
		client.On("CreateRecord", ctx, models.JobTable, mock.Anything).Return(&records.MutateResponse{
			Success: true,
			Results: []records.Result{{Success: false, Message: "title_c is required"}},
		}, nil)

		assert.Nil(t, NewJobService(client, zap.New(core)).Create(ctx, &dtos.JobInput{}))
		entries := logs.FilterMessage("Failed creating job").All()
		require.Len(t, entries, 1)
		assert.Equal(t, int64(1), entries[0].ContextMap()["failed"])
	})

	t.Run("success without results gives nil", func(t *testing.T) {
		client := new(MockClient)
		client.On("UpdateRecord", ctx, models.JobTable, mock.Anything).Return(&records.MutateResponse{Success: true}, nil)
		assert.Nil(t, NewJobService(client, nil).Update(ctx, 1, &dtos.JobInput{}))
	})

	t.Run("update sends the id", func(t *testing.T) {
		client := new(MockClient)
		client.On("UpdateRecord", ctx, models.JobTable, mock.MatchedBy(func(p *records.MutateParams) bool {
			return len(p.Records) == 1 && p.Records[0]["Id"] == int64(8)
		})).Return(&records.MutateResponse{Success: true, Results: []records.Result{{Success: true, Data: records.Record{"Id": 8}}}}, nil)

		got := NewJobService(client, nil).Update(ctx, 8, &dtos.JobInput{TitleC: "x"})
		require.NotNil(t, got)
		client.AssertExpectations(t)
	})

	t.Run("delete error gives false", func(t *testing.T) {
		client := new(MockClient)
		client.On("DeleteRecord", ctx, models.JobTable, &records.DeleteParams{RecordIDs: []int64{5}}).Return(nil, boom)
		assert.False(t, NewJobService(client, nil).Delete(ctx, 5))
	})
}
