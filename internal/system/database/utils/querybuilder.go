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

// Package utils provides utility functions for building database queries.
package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ramesh/companyemployees/internal/system/database/model"
)

// PortableQuery builds a DBQuery from a query written with "?" placeholders.
// The PostgreSQL variant is rendered with numbered "$n" placeholders.
func PortableQuery(queryID, query string) model.DBQuery {
	return model.DBQuery{
		ID:            queryID,
		Query:         query,
		PostgresQuery: toNumberedPlaceholders(query),
		SQLiteQuery:   query,
		MySQLQuery:    query,
	}
}

// toNumberedPlaceholders replaces each "?" outside of string literals with "$1", "$2", ... in order.
func toNumberedPlaceholders(query string) string {
	var sb strings.Builder
	sb.Grow(len(query) + 8)

	position := 0
	inLiteral := false
	for _, char := range query {
		switch {
		case char == '\'':
			inLiteral = !inLiteral
			sb.WriteRune(char)
		case char == '?' && !inLiteral:
			position++
			sb.WriteString("$")
			sb.WriteString(strconv.Itoa(position))
		default:
			sb.WriteRune(char)
		}
	}
	return sb.String()
}

// countPlaceholders counts the "?" placeholders outside of string literals.
func countPlaceholders(expr string) int {
	count := 0
	inLiteral := false
	for _, char := range expr {
		switch {
		case char == '\'':
			inLiteral = !inLiteral
		case char == '?' && !inLiteral:
			count++
		}
	}
	return count
}

// validateKey ensures that the provided key contains only safe characters (alphanumeric and underscores).
func validateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key must not be empty")
	}
	for _, char := range key {
		if !(char >= 'a' && char <= 'z' || char >= 'A' && char <= 'Z' ||
			char >= '0' && char <= '9' || char == '_' || char == '.') {
			return fmt.Errorf("key '%s' contains invalid characters", key)
		}
	}
	return nil
}
