package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/windgap/sensoryprofile/internal/errors"
	"github.com/windgap/sensoryprofile/internal/random"

	_ "embed"
	_ "github.com/mattn/go-sqlite3" // Enable sqlite3 driver
)

//go:embed init.sql
var initialiseSchemaScript string

// Database holds two connections to the same SQLite database, one for read/write operations and one
// for read-only operations. This is a best practice mentioned in
// https://github.com/mattn/go-sqlite3/issues/1179#issuecomment-1638083995
type Database struct {
	ReadWrite *sqlx.DB
	ReadOnly  *sqlx.DB
}

// NewDatabase opens the SQLite database at url and initialises the schema.
//
// The url parameter is the path to the SQLite database file or ":memory:" for an in-memory database.
func NewDatabase(url string) (*Database, error) {
	var (
		err         error
		readWriteDB *sqlx.DB
		readDB      *sqlx.DB
		ctx         = context.Background()
	)

	// For in-memory databases, we need shared cache mode so that both connections access the same data.
	//
	// Parallel tests each need their own in-memory database, so a random name keeps them from
	// sharing data. See https://www.sqlite.org/inmemorydb.html.
	inMemoryConfig := ""
	if strings.Contains(url, ":memory:") {
		var randomID string
		if randomID, err = random.Letters(20); err != nil {
			return nil, errors.Wrap(err, "generate random database name")
		}
		url = randomID
		inMemoryConfig = "&mode=memory&cache=shared"
	}

	// The options prefixed with underscore '_' are SQLite pragmas documented at https://www.sqlite.org/pragma.html.
	// The options without a leading underscore are URI parameters documented at https://www.sqlite.org/uri.html.
	commonConfig := "_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL&_foreign_keys=ON"
	readWriteConfig := fmt.Sprintf("file:%s?_txlock=immediate&%s%s", url, commonConfig, inMemoryConfig)
	readConfig := fmt.Sprintf("file:%s?_txlock=deferred&_query_only=true&%s%s", url, commonConfig, inMemoryConfig)

	if readWriteDB, err = sqlx.ConnectContext(ctx, "sqlite3", readWriteConfig); err != nil {
		return nil, errors.Wrap(err, "open read-write database")
	}
	readWriteDB.SetMaxOpenConns(1)
	readWriteDB.SetMaxIdleConns(1)
	readWriteDB.SetConnMaxLifetime(time.Hour)
	readWriteDB.SetConnMaxIdleTime(time.Hour)

	if _, err = readWriteDB.ExecContext(ctx, initialiseSchemaScript); err != nil {
		return nil, errors.Wrap(err, "initialise database schema")
	}

	if readDB, err = sqlx.ConnectContext(ctx, "sqlite3", readConfig); err != nil {
		return nil, errors.Wrap(err, "open read-only database")
	}

	return &Database{
		ReadWrite: readWriteDB,
		ReadOnly:  readDB,
	}, nil
}

// Close closes both database connections.
func (dbs *Database) Close() error {
	var errorList []error
	if err := dbs.ReadOnly.Close(); err != nil {
		errorList = append(errorList, errors.Wrap(err, "close read-only database"))
	}
	if err := dbs.ReadWrite.Close(); err != nil {
		errorList = append(errorList, errors.Wrap(err, "close read-write database"))
	}
	return errors.Join(errorList...)
}
