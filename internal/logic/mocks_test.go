package logic

import (
	"context"
	"reflect"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
)

// MockConn implements driver.Conn for testing
type MockConn struct {
	driver.Conn
	QueryFunc    func(ctx context.Context, query string, args ...interface{}) (driver.Rows, error)
	QueryRowFunc func(ctx context.Context, query string, args ...interface{}) driver.Row
}

func (m *MockConn) Query(ctx context.Context, query string, args ...interface{}) (driver.Rows, error) {
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, query, args...)
	}
	return &MockRows{}, nil
}

func (m *MockConn) QueryRow(ctx context.Context, query string, args ...interface{}) driver.Row {
	if m.QueryRowFunc != nil {
		return m.QueryRowFunc(ctx, query, args...)
	}
	return &MockRow{}
}

// MockRows implements driver.Rows over a fixed data grid
type MockRows struct {
	driver.Rows
	Data  [][]interface{}
	Index int
}

func (m *MockRows) Next() bool {
	m.Index++
	return m.Index <= len(m.Data)
}

func (m *MockRows) Scan(dest ...interface{}) error {
	if m.Index > len(m.Data) {
		return nil
	}
	row := m.Data[m.Index-1]
	for i, val := range row {
		if i < len(dest) {
			setDest(dest[i], val)
		}
	}
	return nil
}

func (m *MockRows) Close() error { return nil }
func (m *MockRows) Err() error   { return nil }

// MockRow implements driver.Row with fixed values
type MockRow struct {
	driver.Row
	Values []interface{}
}

func (m *MockRow) Scan(dest ...interface{}) error {
	for i, val := range m.Values {
		if i < len(dest) {
			setDest(dest[i], val)
		}
	}
	return nil
}

func (m *MockRow) Err() error { return nil }

func setDest(dest interface{}, val interface{}) {
	v := reflect.ValueOf(dest).Elem()
	if val == nil {
		v.Set(reflect.Zero(v.Type()))
		return
	}
	valV := reflect.ValueOf(val)
	// Nullable columns scan into pointer destinations.
	if v.Kind() == reflect.Ptr && valV.Type().ConvertibleTo(v.Type().Elem()) {
		p := reflect.New(v.Type().Elem())
		p.Elem().Set(valV.Convert(v.Type().Elem()))
		v.Set(p)
		return
	}
	if valV.Type().ConvertibleTo(v.Type()) {
		v.Set(valV.Convert(v.Type()))
	} else {
		v.Set(valV)
	}
}

// MockPgPool implements PgPool with function fields
type MockPgPool struct {
	QueryFunc func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (m *MockPgPool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, sql, args...)
	}
	return &MockPgRows{}, nil
}

func (m *MockPgPool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (m *MockPgPool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

// MockPgRows implements pgx.Rows over a fixed data grid
type MockPgRows struct {
	pgx.Rows
	Data  [][]interface{}
	Index int
}

func (m *MockPgRows) Next() bool {
	m.Index++
	return m.Index <= len(m.Data)
}

func (m *MockPgRows) Scan(dest ...interface{}) error {
	if m.Index > len(m.Data) {
		return nil
	}
	row := m.Data[m.Index-1]
	for i, val := range row {
		if i < len(dest) {
			setDest(dest[i], val)
		}
	}
	return nil
}

func (m *MockPgRows) Close()     {}
func (m *MockPgRows) Err() error { return nil }

// MockRedis implements RedisClient backed by an in-memory map
type MockRedis struct {
	Store    map[string]string
	GetCalls int
	SetCalls int
}

func NewMockRedis() *MockRedis {
	return &MockRedis{Store: map[string]string{}}
}

func (m *MockRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	m.GetCalls++
	if val, ok := m.Store[key]; ok {
		return redis.NewStringResult(val, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (m *MockRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	m.SetCalls++
	switch v := value.(type) {
	case string:
		m.Store[key] = v
	case []byte:
		m.Store[key] = string(v)
	}
	return redis.NewStatusResult("OK", nil)
}
