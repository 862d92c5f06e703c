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

// MetaData describes the position of a page within the full result set.
type MetaData struct {
	TotalCount  int  `json:"totalCount" xml:"TotalCount"`
	PageSize    int  `json:"pageSize" xml:"PageSize"`
	CurrentPage int  `json:"currentPage" xml:"CurrentPage"`
	TotalPages  int  `json:"totalPages" xml:"TotalPages"`
	HasPrevious bool `json:"hasPrevious" xml:"HasPrevious"`
	HasNext     bool `json:"hasNext" xml:"HasNext"`
}

// PagedResult is an immutable page of items together with its metadata.
type PagedResult[T any] struct {
	items    []T
	metaData MetaData
}

// NewPagedResult creates a PagedResult for a page of items out of totalCount matches.
// Items beyond the page size are discarded.
func NewPagedResult[T any](items []T, totalCount int, page PageRequest) PagedResult[T] {
	if totalCount < 0 {
		totalCount = 0
	}
	if page.PageSize > 0 && len(items) > page.PageSize {
		items = items[:page.PageSize]
	}

	totalPages := 0
	if page.PageSize > 0 {
		totalPages = (totalCount + page.PageSize - 1) / page.PageSize
	}

	owned := make([]T, len(items))
	copy(owned, items)

	return PagedResult[T]{
		items: owned,
		metaData: MetaData{
			TotalCount:  totalCount,
			PageSize:    page.PageSize,
			CurrentPage: page.PageNumber,
			TotalPages:  totalPages,
			HasPrevious: page.PageNumber > 1,
			HasNext:     page.PageNumber < totalPages,
		},
	}
}

// Items returns a copy of the items on the page.
func (p PagedResult[T]) Items() []T {
	out := make([]T, len(p.items))
	copy(out, p.items)
	return out
}

// Len returns the number of items on the page.
func (p PagedResult[T]) Len() int {
	return len(p.items)
}

// MetaData returns the page metadata.
func (p PagedResult[T]) MetaData() MetaData {
	return p.metaData
}

// MapPagedResult converts the items of a page, keeping its metadata.
func MapPagedResult[A, B any](p PagedResult[A], fn func(A) B) PagedResult[B] {
	out := make([]B, len(p.items))
	for i, item := range p.items {
		out[i] = fn(item)
	}
	return PagedResult[B]{items: out, metaData: p.metaData}
}
