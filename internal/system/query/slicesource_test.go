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

package query

import (
	"cmp"
	"context"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/ramesh/companyemployees/internal/system/accessor"
)

// Predicate reports whether an item matches a filter. A nil predicate matches everything.
type Predicate[T any] func(T) bool

// SliceSource is an in-memory Source over a slice used to exercise Apply.
type SliceSource[T any] struct {
	items    []T
	registry *accessor.Registry
}

var _ Source[struct{}, Predicate[struct{}]] = (*SliceSource[struct{}])(nil)

// NewSliceSource creates a SliceSource over items. The slice is not modified.
func NewSliceSource[T any](items []T) *SliceSource[T] {
	return &SliceSource[T]{
		items:    items,
		registry: accessor.For[T](),
	}
}

// Count returns the number of items matching the filter.
func (s *SliceSource[T]) Count(ctx context.Context, filter Predicate[T]) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if filter == nil {
		return len(s.items), nil
	}
	count := 0
	for _, item := range s.items {
		if filter(item) {
			count++
		}
	}
	return count, nil
}

// Fetch filters, stably sorts and slices the items.
func (s *SliceSource[T]) Fetch(ctx context.Context, filter Predicate[T], sort SortSpec,
	offset, limit int) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matched := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if filter == nil || filter(item) {
			matched = append(matched, item)
		}
	}

	if len(sort) > 0 {
		keys, err := s.sortKeys(sort)
		if err != nil {
			return nil, err
		}
		slices.SortStableFunc(matched, func(a, b T) int {
			return s.compare(keys, a, b)
		})
	}

	if offset >= len(matched) || limit < 1 {
		return []T{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

type sortKey struct {
	accessor   accessor.Accessor
	descending bool
}

func (s *SliceSource[T]) sortKeys(sort SortSpec) ([]sortKey, error) {
	keys := make([]sortKey, 0, len(sort))
	for _, clause := range sort {
		a, ok := s.registry.Lookup(clause.Field)
		if !ok {
			return nil, fmt.Errorf("unknown sort field %q", clause.Field)
		}
		keys = append(keys, sortKey{accessor: a, descending: clause.Descending})
	}
	return keys, nil
}

func (s *SliceSource[T]) compare(keys []sortKey, a, b T) int {
	va, okA := s.registry.ValueOf(a)
	vb, okB := s.registry.ValueOf(b)
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	}

	for _, key := range keys {
		c := compareValues(va.FieldByIndex(key.accessor.Index), vb.FieldByIndex(key.accessor.Index))
		if key.descending {
			c = -c
		}
		if c != 0 {
			return c
		}
	}
	return 0
}

var timeType = reflect.TypeOf(time.Time{})

// compareValues orders two values of the same type. Strings compare case-insensitively first.
func compareValues(a, b reflect.Value) int {
	for a.Kind() == reflect.Pointer {
		if a.IsNil() || b.IsNil() {
			return cmp.Compare(boolRank(!a.IsNil()), boolRank(!b.IsNil()))
		}
		a, b = a.Elem(), b.Elem()
	}
	if a.Type() == timeType {
		return a.Interface().(time.Time).Compare(b.Interface().(time.Time))
	}

	switch a.Kind() {
	case reflect.String:
		if c := strings.Compare(accessor.Fold(a.String()), accessor.Fold(b.String())); c != 0 {
			return c
		}
		return strings.Compare(a.String(), b.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	case reflect.Bool:
		return cmp.Compare(boolRank(a.Bool()), boolRank(b.Bool()))
	default:
		return strings.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
	}
}

func boolRank(v bool) int {
	if v {
		return 1
	}
	return 0
}
