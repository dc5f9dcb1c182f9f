//go:build unit

package readstore

import (
	"context"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	rows, _ := mockArgs.Get(0).(pgx.Rows)
	return rows, mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

// stubRow scans values into the destinations in order, or fails with err.
type stubRow struct {
	values []any
	err    error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return assign(dest, r.values)
}

// stubRows serves each entry of data as one row. Methods the repositories do
// not call are left to the embedded nil interface.
type stubRows struct {
	pgx.Rows
	data [][]any
	pos  int
	err  error
}

func (r *stubRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *stubRows) Scan(dest ...any) error {
	return assign(dest, r.data[r.pos-1])
}

func (r *stubRows) Err() error { return r.err }

func (r *stubRows) Close() {}

func assign(dest, values []any) error {
	for i, v := range values {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(v))
	}
	return nil
}

// rowValues dereferences scan targets, turning a populated row struct into the
// values a stub row serves.
func rowValues(targets []any) []any {
	out := make([]any, len(targets))
	for i, p := range targets {
		out[i] = reflect.ValueOf(p).Elem().Interface()
	}
	return out
}

func tag(s string) pgconn.CommandTag {
	return pgconn.NewCommandTag(s)
}
