package session

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var errNoData = errors.New("recording driver: no data")

// recordingConnector драйвер database/sql, который запоминает запросы и не возвращает строк
type recordingConnector struct {
	mu      sync.Mutex
	queries []string
	args    [][]driver.NamedValue
}

func (c *recordingConnector) Connect(context.Context) (driver.Conn, error) {
	return &recordingConn{c: c}, nil
}

func (c *recordingConnector) Driver() driver.Driver { return recordingDriver{c: c} }

func (c *recordingConnector) last(t *testing.T) (string, []driver.NamedValue) {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	require.NotEmpty(t, c.queries)
	return c.queries[len(c.queries)-1], c.args[len(c.args)-1]
}

type recordingDriver struct {
	c *recordingConnector
}

func (d recordingDriver) Open(string) (driver.Conn, error) { return &recordingConn{c: d.c}, nil }

type recordingConn struct {
	c *recordingConnector
}

func (rc *recordingConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("recording driver: prepare is not supported")
}

func (rc *recordingConn) Close() error { return nil }

func (rc *recordingConn) Begin() (driver.Tx, error) { return recordingTx{}, nil }

func (rc *recordingConn) QueryContext(_ context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	rc.c.mu.Lock()
	defer rc.c.mu.Unlock()
	rc.c.queries = append(rc.c.queries, query)
	rc.c.args = append(rc.c.args, args)
	return nil, errNoData
}

type recordingTx struct{}

func (recordingTx) Commit() error   { return nil }
func (recordingTx) Rollback() error { return nil }

func newRecordingDB(t *testing.T) (*sql.DB, *recordingConnector) {
	t.Helper()
	connector := &recordingConnector{}
	db := sql.OpenDB(connector)
	t.Cleanup(func() { _ = db.Close() })
	return db, connector
}
