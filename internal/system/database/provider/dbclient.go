/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package provider

import (
	"context"
	"database/sql"
	"strings"

	"github.com/ramesh/companyemployees/internal/system/database/model"
	"github.com/ramesh/companyemployees/internal/system/log"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const dbClientLoggerComponentName = "DBClient"

// DBClientInterface defines the interface for database operations.
type DBClientInterface interface {
	// Query executes a sql query that returns rows, typically a SELECT, and returns the result as a slice of maps.
	Query(ctx context.Context, query model.DBQuery, args ...interface{}) ([]map[string]interface{}, error)
	// Execute executes a sql query without returning data in any rows, and returns number of rows affected.
	Execute(ctx context.Context, query model.DBQuery, args ...interface{}) (int64, error)
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (model.TxInterface, error)
	// Ping verifies the database is reachable.
	Ping(ctx context.Context) error
	// GetDBType returns the database type the client is connected to.
	GetDBType() string
}

// DBClient is the implementation of DBClientInterface.
type DBClient struct {
	db     model.DBInterface
	dbType string
}

// NewDBClient creates a new instance of DBClient with the provided database connection.
func NewDBClient(db model.DBInterface, dbType string) DBClientInterface {
	return &DBClient{
		db:     db,
		dbType: dbType,
	}
}

// sqlExecutor is the part of a connection pool or transaction used to run queries.
type sqlExecutor interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Query executes a sql query that returns rows, typically a SELECT, and returns the result as a slice of maps.
// Column names are normalized to lowercase and textual byte values are returned as strings.
func (client *DBClient) Query(ctx context.Context, query model.DBQuery,
	args ...interface{}) ([]map[string]interface{}, error) {
	return runQuery(ctx, client.db, query.GetID(), query.GetQuery(client.dbType), args...)
}

// Execute executes a sql query without returning data in any rows, and returns number of rows affected.
func (client *DBClient) Execute(ctx context.Context, query model.DBQuery, args ...interface{}) (int64, error) {
	return runExecute(ctx, client.db, query.GetID(), query.GetQuery(client.dbType), args...)
}

// BeginTx starts a new database transaction.
func (client *DBClient) BeginTx(ctx context.Context) (model.TxInterface, error) {
	tx, err := client.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &dbTx{tx: tx, dbType: client.dbType}, nil
}

// Ping verifies the database is reachable.
func (client *DBClient) Ping(ctx context.Context) error {
	return client.db.PingContext(ctx)
}

// GetDBType returns the database type the client is connected to.
func (client *DBClient) GetDBType() string {
	return client.dbType
}

// close closes the underlying connection pool. Only the provider owns the pool.
func (client *DBClient) close() error {
	return client.db.Close()
}

// dbTx is the implementation of model.TxInterface over a sql.Tx.
type dbTx struct {
	tx     *sql.Tx
	dbType string
}

// Query executes a sql query that returns rows within the transaction.
func (t *dbTx) Query(ctx context.Context, query model.DBQuery,
	args ...interface{}) ([]map[string]interface{}, error) {
	return runQuery(ctx, t.tx, query.GetID(), query.GetQuery(t.dbType), args...)
}

// Execute executes a sql query within the transaction and returns number of rows affected.
func (t *dbTx) Execute(ctx context.Context, query model.DBQuery, args ...interface{}) (int64, error) {
	return runExecute(ctx, t.tx, query.GetID(), query.GetQuery(t.dbType), args...)
}

// Commit commits the transaction.
func (t *dbTx) Commit() error {
	return t.tx.Commit()
}

// Rollback rolls back the transaction.
func (t *dbTx) Rollback() error {
	return t.tx.Rollback()
}

func runQuery(ctx context.Context, executor sqlExecutor, queryID, sqlQuery string,
	args ...interface{}) ([]map[string]interface{}, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, dbClientLoggerComponentName))
	logger.Debug("Executing query", log.String("queryID", queryID))

	rows, err := executor.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			logger.Error("Error closing rows", log.Error(closeErr))
		}
	}()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	results := make([]map[string]interface{}, 0)
	for rows.Next() {
		row := make([]interface{}, len(columns))
		rowPointers := make([]interface{}, len(columns))
		for i := range row {
			rowPointers[i] = &row[i]
		}

		if err := rows.Scan(rowPointers...); err != nil {
			return nil, err
		}

		result := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			value := row[i]
			if raw, ok := value.([]byte); ok {
				value = string(raw)
			}
			result[strings.ToLower(col)] = value
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func runExecute(ctx context.Context, executor sqlExecutor, queryID, sqlQuery string,
	args ...interface{}) (int64, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, dbClientLoggerComponentName))
	logger.Debug("Executing query", log.String("queryID", queryID))

	res, err := executor.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return 0, err
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	return rowsAffected, nil
}
