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

package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ramesh/companyemployees/internal/system/database/model"
)

// OrderTerm is a single column of an ORDER BY clause.
type OrderTerm struct {
	Column     string
	Descending bool
}

type condition struct {
	expr string
	args []interface{}
}

// SelectQueryBuilder builds SELECT and COUNT queries with filtering, ordering and pagination.
// Column and table names are validated; values are always passed as arguments.
type SelectQueryBuilder struct {
	table      string
	columns    []string
	conditions []condition
	orderBy    []OrderTerm
	limit      int
	offset     int
	paginate   bool
	err        error
}

// NewSelectQueryBuilder creates a builder selecting the given columns from a table.
func NewSelectQueryBuilder(table string, columns ...string) *SelectQueryBuilder {
	b := &SelectQueryBuilder{table: table}
	if err := validateKey(table); err != nil {
		b.err = fmt.Errorf("invalid table name: %w", err)
		return b
	}
	if len(columns) == 0 {
		b.err = errors.New("at least one column must be selected")
		return b
	}
	for _, column := range columns {
		if err := validateKey(column); err != nil {
			b.err = fmt.Errorf("invalid column name: %w", err)
			return b
		}
	}
	b.columns = columns
	return b
}

// Where adds a condition joined with AND. The expression uses "?" for each argument.
func (b *SelectQueryBuilder) Where(expr string, args ...interface{}) *SelectQueryBuilder {
	if b.err != nil {
		return b
	}
	if strings.TrimSpace(expr) == "" {
		b.err = errors.New("condition must not be empty")
		return b
	}
	if placeholders := countPlaceholders(expr); placeholders != len(args) {
		b.err = fmt.Errorf("condition %q expects %d arguments, got %d", expr, placeholders, len(args))
		return b
	}
	b.conditions = append(b.conditions, condition{expr: expr, args: args})
	return b
}

// OrderBy appends a column to the ORDER BY clause.
func (b *SelectQueryBuilder) OrderBy(column string, descending bool) *SelectQueryBuilder {
	if b.err != nil {
		return b
	}
	if err := validateKey(column); err != nil {
		b.err = fmt.Errorf("invalid order column: %w", err)
		return b
	}
	b.orderBy = append(b.orderBy, OrderTerm{Column: column, Descending: descending})
	return b
}

// Paginate restricts the result to limit rows starting at offset.
func (b *SelectQueryBuilder) Paginate(limit, offset int) *SelectQueryBuilder {
	if b.err != nil {
		return b
	}
	if limit < 1 || offset < 0 {
		b.err = fmt.Errorf("invalid pagination window: limit %d, offset %d", limit, offset)
		return b
	}
	b.limit = limit
	b.offset = offset
	b.paginate = true
	return b
}

// Build renders the SELECT query and its arguments.
func (b *SelectQueryBuilder) Build(queryID string) (model.DBQuery, []interface{}, error) {
	if b.err != nil {
		return model.DBQuery{}, nil, b.err
	}

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(b.columns, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(b.table)
	args := b.writeWhere(&sb)

	if len(b.orderBy) > 0 {
		terms := make([]string, 0, len(b.orderBy))
		for _, term := range b.orderBy {
			direction := "ASC"
			if term.Descending {
				direction = "DESC"
			}
			terms = append(terms, term.Column+" "+direction)
		}
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(terms, ", "))
	}

	if b.paginate {
		sb.WriteString(" LIMIT ? OFFSET ?")
		args = append(args, b.limit, b.offset)
	}

	return PortableQuery(queryID, sb.String()), args, nil
}

// BuildCount renders a COUNT query over the same conditions, ignoring ordering and pagination.
// The count is returned in the "total" column.
func (b *SelectQueryBuilder) BuildCount(queryID string) (model.DBQuery, []interface{}, error) {
	if b.err != nil {
		return model.DBQuery{}, nil, b.err
	}

	var sb strings.Builder
	sb.WriteString("SELECT COUNT(*) AS total FROM ")
	sb.WriteString(b.table)
	args := b.writeWhere(&sb)

	return PortableQuery(queryID, sb.String()), args, nil
}

func (b *SelectQueryBuilder) writeWhere(sb *strings.Builder) []interface{} {
	args := make([]interface{}, 0, len(b.conditions)+2)
	for i, cond := range b.conditions {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		sb.WriteString(cond.expr)
		args = append(args, cond.args...)
	}
	return args
}
