// Package records describes the generic record-table API the marketplace
// services talk to, and ships a thin HTTP client for the hosted backend.
package records

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Condition operators understood by the backend.
const (
	OpEqualTo     = "EqualTo"
	OpNotEqualTo  = "NotEqualTo"
	OpGreaterThan = "GreaterThan"
	OpLessThan    = "LessThan"
	OpContains    = "Contains"
)

const (
	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// Client is the record API. Errors are reserved for calls that never produced a
// response; a refused call comes back with Success=false.
type Client interface {
	FetchRecords(ctx context.Context, table string, params *FetchParams) (*FetchResponse, error)
	GetRecordByID(ctx context.Context, table string, id int64, params *FetchParams) (*RecordResponse, error)
	CreateRecord(ctx context.Context, table string, params *MutateParams) (*MutateResponse, error)
	UpdateRecord(ctx context.Context, table string, params *MutateParams) (*MutateResponse, error)
	DeleteRecord(ctx context.Context, table string, params *DeleteParams) (*MutateResponse, error)
}

// Record is a single row. Its schema belongs to the backend.
type Record map[string]any

// ID returns the record's Id, or 0 when it is missing or not numeric.
func (r Record) ID() int64 {
	if r == nil {
		return 0
	}
	return ToInt64(r["Id"])
}

// ToInt64 converts the numeric shapes a decoded record may carry.
func ToInt64(v any) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	case uint:
		return int64(n)
	case uint64:
		return int64(n)
	case float64:
		return int64(n)
	case float32:
		return int64(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			f, _ := n.Float64()
			return int64(f)
		}
		return i
	case string:
		i, _ := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i
	}
	return 0
}

type FieldName struct {
	Name string `json:"Name"`
}

type Field struct {
	Field FieldName `json:"field"`
}

// Fields builds the field list of a fetch request.
func Fields(names ...string) []Field {
	out := make([]Field, 0, len(names))
	for _, n := range names {
		out = append(out, Field{Field: FieldName{Name: n}})
	}
	return out
}

type Condition struct {
	FieldName string `json:"FieldName"`
	Operator  string `json:"Operator"`
	Values    []any  `json:"Values"`
}

// Eq is shorthand for an EqualTo condition.
func Eq(field string, values ...any) Condition {
	return Condition{FieldName: field, Operator: OpEqualTo, Values: values}
}

type OrderBy struct {
	FieldName string `json:"fieldName"`
	SortType  string `json:"sorttype"`
}

type PagingInfo struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type FetchParams struct {
	Fields     []Field     `json:"fields"`
	Where      []Condition `json:"where,omitempty"`
	OrderBy    []OrderBy   `json:"orderBy,omitempty"`
	PagingInfo *PagingInfo `json:"pagingInfo,omitempty"`
}

type MutateParams struct {
	Records []Record `json:"records"`
}

type DeleteParams struct {
	RecordIDs []int64 `json:"RecordIds"`
}

type FetchResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    []Record `json:"data"`
	Total   int      `json:"total,omitempty"`
}

type RecordResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    Record `json:"data"`
}

type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    Record `json:"data,omitempty"`
}

type MutateResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Results []Result `json:"results"`
}

// Split partitions the per-record results.
func (r *MutateResponse) Split() (ok, failed []Result) {
	for _, res := range r.Results {
		if res.Success {
			ok = append(ok, res)
		} else {
			failed = append(failed, res)
		}
	}
	return ok, failed
}

const timestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp renders t the way the backend stores date-time fields.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
