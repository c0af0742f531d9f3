package services

import (
	"context"
	"testing"
	"time"

	"github.com/justsurfingit/jobboard/internal/database/dbtest"
	"github.com/justsurfingit/jobboard/internal/records"
	"github.com/stretchr/testify/mock"
)

// MockClient is a mock implementation of records.Client
type MockClient struct {
	mock.Mock
}

func (m *MockClient) FetchRecords(ctx context.Context, table string, params *records.FetchParams) (*records.FetchResponse, error) {
	args := m.Called(ctx, table, params)
	resp, _ := args.Get(0).(*records.FetchResponse)
	return resp, args.Error(1)
}

func (m *MockClient) GetRecordByID(ctx context.Context, table string, id int64, params *records.FetchParams) (*records.RecordResponse, error) {
	args := m.Called(ctx, table, id, params)
	resp, _ := args.Get(0).(*records.RecordResponse)
	return resp, args.Error(1)
}

func (m *MockClient) CreateRecord(ctx context.Context, table string, params *records.MutateParams) (*records.MutateResponse, error) {
	args := m.Called(ctx, table, params)
	resp, _ := args.Get(0).(*records.MutateResponse)
	return resp, args.Error(1)
}

func (m *MockClient) UpdateRecord(ctx context.Context, table string, params *records.MutateParams) (*records.MutateResponse, error) {
	args := m.Called(ctx, table, params)
	resp, _ := args.Get(0).(*records.MutateResponse)
	return resp, args.Error(1)
}

func (m *MockClient) DeleteRecord(ctx context.Context, table string, params *records.DeleteParams) (*records.MutateResponse, error) {
	args := m.Called(ctx, table, params)
	resp, _ := args.Get(0).(*records.MutateResponse)
	return resp, args.Error(1)
}

var fixedNow = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// steppingClock advances one minute per call.
func steppingClock() Clock {
	t := fixedNow
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func newStore(t *testing.T) records.Client {
	return dbtest.NewStore(t)
}
