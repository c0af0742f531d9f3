package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/justsurfingit/jobboard/internal/records"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// System fields are owned by the store and never written from a payload.
var systemFields = map[string]bool{"Id": true, "CreatedOn": true, "ModifiedOn": true}

type table struct {
	newModel  func() any
	modelType reflect.Type
	columns   map[string]string // record field name -> column
}

// RecordStore serves the record API from the local database so the
// marketplace can run without the hosted backend.
type RecordStore struct {
	db     *gorm.DB
	tables map[string]*table
}

var _ records.Client = (*RecordStore)(nil)

func NewRecordStore(db *gorm.DB) (*RecordStore, error) {
	cache := &sync.Map{}
	s := &RecordStore{db: db, tables: make(map[string]*table, len(models.Registry))}
	for name, ctor := range models.Registry {
		sch, err := schema.Parse(ctor(), cache, db.NamingStrategy)
		if err != nil {
			return nil, fmt.Errorf("parse schema for %s: %w", name, err)
		}
		cols := make(map[string]string, len(sch.Fields))
		for _, f := range sch.Fields {
			if f.DBName == "" {
				continue
			}
			key := strings.Split(f.Tag.Get("json"), ",")[0]
			if key == "" || key == "-" {
				key = f.Name
			}
			cols[key] = f.DBName
		}
		s.tables[name] = &table{
			newModel:  ctor,
			modelType: reflect.TypeOf(ctor()).Elem(),
			columns:   cols,
		}
	}
	return s, nil
}

func (s *RecordStore) FetchRecords(ctx context.Context, name string, params *records.FetchParams) (*records.FetchResponse, error) {
	t, ok := s.tables[name]
	if !ok {
		return &records.FetchResponse{Message: unknownTable(name)}, nil
	}
	if params == nil {
		params = &records.FetchParams{}
	}

	q := s.db.WithContext(ctx).Model(t.newModel())
	conds, err := t.conditions(params.Where)
	if err != nil {
		return &records.FetchResponse{Message: err.Error()}, nil
	}
	if len(conds) > 0 {
		q = q.Clauses(clause.Where{Exprs: conds})
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count %s: %w", name, err)
	}

	for _, o := range params.OrderBy {
		col, ok := t.columns[o.FieldName]
		if !ok {
			return &records.FetchResponse{Message: unknownField(o.FieldName)}, nil
		}
		q = q.Order(clause.OrderByColumn{
			Column: clause.Column{Name: col},
			Desc:   strings.EqualFold(o.SortType, records.SortDesc),
		})
	}
	if p := params.PagingInfo; p != nil {
		if p.Limit > 0 {
			q = q.Limit(p.Limit)
		}
		if p.Offset > 0 {
			q = q.Offset(p.Offset)
		}
	}

	rows := reflect.New(reflect.SliceOf(reflect.PointerTo(t.modelType)))
	if err := q.Find(rows.Interface()).Error; err != nil {
		return nil, fmt.Errorf("fetch %s: %w", name, err)
	}

	list := rows.Elem()
	data := make([]records.Record, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		rec, err := toRecord(list.Index(i).Interface(), params.Fields)
		if err != nil {
			return nil, err
		}
		data = append(data, rec)
	}
	return &records.FetchResponse{Success: true, Data: data, Total: int(total)}, nil
}

func (s *RecordStore) GetRecordByID(ctx context.Context, name string, id int64, params *records.FetchParams) (*records.RecordResponse, error) {
	t, ok := s.tables[name]
	if !ok {
		return &records.RecordResponse{Message: unknownTable(name)}, nil
	}

	m := t.newModel()
	err := s.db.WithContext(ctx).First(m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &records.RecordResponse{Message: fmt.Sprintf("record %d not found", id)}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%d: %w", name, id, err)
	}

	var fields []records.Field
	if params != nil {
		fields = params.Fields
	}
	rec, err := toRecord(m, fields)
	if err != nil {
		return nil, err
	}
	return &records.RecordResponse{Success: true, Data: rec}, nil
}

func (s *RecordStore) CreateRecord(ctx context.Context, name string, params *records.MutateParams) (*records.MutateResponse, error) {
	t, ok := s.tables[name]
	if !ok {
		return &records.MutateResponse{Message: unknownTable(name)}, nil
	}
	if params == nil || len(params.Records) == 0 {
		return &records.MutateResponse{Message: "no records given"}, nil
	}

	resp := &records.MutateResponse{Success: true}
	for _, rec := range params.Records {
		m := t.newModel()
		if err := t.decodeInto(m, rec); err != nil {
			resp.Results = append(resp.Results, records.Result{Message: err.Error()})
			continue
		}
		if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
			resp.Results = append(resp.Results, records.Result{Message: err.Error()})
			continue
		}
		resp.Results = append(resp.Results, t.result(m))
	}
	return resp, nil
}

func (s *RecordStore) UpdateRecord(ctx context.Context, name string, params *records.MutateParams) (*records.MutateResponse, error) {
	t, ok := s.tables[name]
	if !ok {
		return &records.MutateResponse{Message: unknownTable(name)}, nil
	}
	if params == nil || len(params.Records) == 0 {
		return &records.MutateResponse{Message: "no records given"}, nil
	}

	resp := &records.MutateResponse{Success: true}
	for _, rec := range params.Records {
		id := rec.ID()
		if id <= 0 {
			resp.Results = append(resp.Results, records.Result{Message: "record has no Id"})
			continue
		}
		m := t.newModel()
		err := s.db.WithContext(ctx).First(m, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.Results = append(resp.Results, records.Result{Message: fmt.Sprintf("record %d not found", id)})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load %s/%d: %w", name, id, err)
		}
		if err := t.decodeInto(m, rec); err != nil {
			resp.Results = append(resp.Results, records.Result{Message: err.Error()})
			continue
		}
		if err := s.db.WithContext(ctx).Save(m).Error; err != nil {
			resp.Results = append(resp.Results, records.Result{Message: err.Error()})
			continue
		}
		resp.Results = append(resp.Results, t.result(m))
	}
	return resp, nil
}

func (s *RecordStore) DeleteRecord(ctx context.Context, name string, params *records.DeleteParams) (*records.MutateResponse, error) {
	t, ok := s.tables[name]
	if !ok {
		return &records.MutateResponse{Message: unknownTable(name)}, nil
	}
	if params == nil || len(params.RecordIDs) == 0 {
		return &records.MutateResponse{Message: "no record ids given"}, nil
	}

	resp := &records.MutateResponse{Success: true}
	for _, id := range params.RecordIDs {
		res := s.db.WithContext(ctx).Delete(t.newModel(), id)
		switch {
		case res.Error != nil:
			resp.Results = append(resp.Results, records.Result{Message: res.Error.Error()})
		case res.RowsAffected == 0:
			resp.Results = append(resp.Results, records.Result{Message: fmt.Sprintf("record %d not found", id)})
		default:
			resp.Results = append(resp.Results, records.Result{Success: true, Data: records.Record{"Id": id}})
		}
	}
	return resp, nil
}

func (t *table) conditions(where []records.Condition) ([]clause.Expression, error) {
	exprs := make([]clause.Expression, 0, len(where))
	for _, c := range where {
		col, ok := t.columns[c.FieldName]
		if !ok {
			return nil, errors.New(unknownField(c.FieldName))
		}
		if len(c.Values) == 0 {
			return nil, fmt.Errorf("condition on %q has no values", c.FieldName)
		}
		column := clause.Column{Name: col}

		var expr clause.Expression
		switch c.Operator {
		case records.OpEqualTo:
			if len(c.Values) == 1 {
				expr = clause.Eq{Column: column, Value: c.Values[0]}
			} else {
				expr = clause.IN{Column: column, Values: c.Values}
			}
		case records.OpNotEqualTo:
			if len(c.Values) == 1 {
				expr = clause.Neq{Column: column, Value: c.Values[0]}
			} else {
				expr = clause.Not(clause.IN{Column: column, Values: c.Values})
			}
		case records.OpGreaterThan:
			expr = clause.Gt{Column: column, Value: c.Values[0]}
		case records.OpLessThan:
			expr = clause.Lt{Column: column, Value: c.Values[0]}
		case records.OpContains:
			expr = clause.Like{Column: column, Value: "%" + fmt.Sprint(c.Values[0]) + "%"}
		default:
			return nil, fmt.Errorf("unsupported operator %q", c.Operator)
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// decodeInto copies the writable fields of rec onto m. Keys absent from rec
// keep their current value.
func (t *table) decodeInto(m any, rec records.Record) error {
	patch := make(map[string]any, len(rec))
	for k, v := range rec {
		if systemFields[k] {
			continue
		}
		if _, ok := t.columns[k]; !ok {
			return errors.New(unknownField(k))
		}
		patch[k] = v
	}
	raw, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	if err := json.Unmarshal(raw, m); err != nil {
		return fmt.Errorf("invalid record: %w", err)
	}
	return nil
}

func (t *table) result(m any) records.Result {
	rec, err := toRecord(m, nil)
	if err != nil {
		return records.Result{Message: err.Error()}
	}
	return records.Result{Success: true, Data: rec}
}

// toRecord renders a model as a record limited to fields (plus Id).
// An empty field list keeps everything.
func toRecord(m any, fields []records.Field) (records.Record, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode model: %w", err)
	}
	var full records.Record
	if err := json.Unmarshal(raw, &full); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	if len(fields) == 0 {
		return full, nil
	}
	out := records.Record{"Id": full["Id"]}
	for _, f := range fields {
		if v, ok := full[f.Field.Name]; ok {
			out[f.Field.Name] = v
		}
	}
	return out, nil
}

func unknownTable(name string) string { return fmt.Sprintf("unknown table %q", name) }

func unknownField(name string) string { return fmt.Sprintf("unknown field %q", name) }
