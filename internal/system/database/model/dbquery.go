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

package model

const (
	// DBTypePostgres is the database type identifier for PostgreSQL.
	DBTypePostgres = "postgres"
	// DBTypeSQLite is the database type identifier for SQLite.
	DBTypeSQLite = "sqlite"
	// DBTypeMySQL is the database type identifier for MySQL.
	DBTypeMySQL = "mysql"
)

// DBQuery represents a identifiable database query with optional dialect specific variants.
type DBQuery struct {
	// ID is the unique identifier of the query, used for logging and tracing.
	ID string
	// Query is the default query text.
	Query string
	// PostgresQuery is the PostgreSQL specific query text.
	PostgresQuery string
	// SQLiteQuery is the SQLite specific query text.
	SQLiteQuery string
	// MySQLQuery is the MySQL specific query text.
	MySQLQuery string
}

// GetID returns the unique identifier of the query.
func (d DBQuery) GetID() string {
	return d.ID
}

// GetQuery returns the query text for the given database type, falling back to the default query.
func (d DBQuery) GetQuery(dbType string) string {
	switch dbType {
	case DBTypePostgres:
		if d.PostgresQuery != "" {
			return d.PostgresQuery
		}
	case DBTypeSQLite:
		if d.SQLiteQuery != "" {
			return d.SQLiteQuery
		}
	case DBTypeMySQL:
		if d.MySQLQuery != "" {
			return d.MySQLQuery
		}
	}
	return d.Query
}
