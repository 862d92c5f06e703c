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

// Package query provides sorting, filtering and paging primitives shared by the resource services.
package query

import (
	"strings"

	"github.com/ramesh/companyemployees/internal/system/accessor"
	sysutils "github.com/ramesh/companyemployees/internal/system/utils"
)

// FieldSet maps folded field names to their canonical form.
type FieldSet map[string]string

// NewFieldSet creates a FieldSet from canonical field names.
func NewFieldSet(names ...string) FieldSet {
	fs := make(FieldSet, len(names))
	for _, name := range names {
		fs[accessor.Fold(name)] = name
	}
	return fs
}

// FieldSetFor creates a FieldSet from the exported fields of T.
func FieldSetFor[T any]() FieldSet {
	return NewFieldSet(accessor.For[T]().Names()...)
}

// Canonical returns the canonical name for a field, ignoring case.
func (fs FieldSet) Canonical(name string) (string, bool) {
	canonical, ok := fs[accessor.Fold(name)]
	return canonical, ok
}

// SortClause is a single ordering key.
type SortClause struct {
	Field      string
	Descending bool
}

// SortSpec is an ordered list of sort clauses. The first clause is the primary key.
type SortSpec []SortClause

// ParseSortSpec parses an orderBy expression such as "name desc, age".
// Fields not present in validFields are dropped. A field listed twice keeps its first position.
func ParseSortSpec(raw string, validFields FieldSet) SortSpec {
	sorts := SortSpec{}
	seen := make(map[string]struct{})
	for _, token := range sysutils.SplitAndTrim(raw, ",") {
		parts := strings.Fields(token)
		field, ok := validFields.Canonical(parts[0])
		if !ok {
			continue
		}
		if _, dup := seen[field]; dup {
			continue
		}
		seen[field] = struct{}{}

		descending := false
		if len(parts) > 1 {
			switch strings.ToLower(parts[1]) {
			case "desc", "descending":
				descending = true
			}
		}
		sorts = append(sorts, SortClause{Field: field, Descending: descending})
	}
	return sorts
}

// WithFallback appends the fallback clauses whose fields are not already ordered on.
func (s SortSpec) WithFallback(fallback SortSpec) SortSpec {
	out := make(SortSpec, len(s), len(s)+len(fallback))
	copy(out, s)
	for _, fc := range fallback {
		if !out.Has(fc.Field) {
			out = append(out, fc)
		}
	}
	return out
}

// Has reports whether the sort orders on the given field.
func (s SortSpec) Has(field string) bool {
	folded := accessor.Fold(field)
	for _, c := range s {
		if accessor.Fold(c.Field) == folded {
			return true
		}
	}
	return false
}

// String renders the sort in orderBy syntax, e.g. "name asc, age desc".
func (s SortSpec) String() string {
	parts := make([]string, 0, len(s))
	for _, c := range s {
		direction := "asc"
		if c.Descending {
			direction = "desc"
		}
		parts = append(parts, strings.ToLower(c.Field)+" "+direction)
	}
	return strings.Join(parts, ", ")
}
