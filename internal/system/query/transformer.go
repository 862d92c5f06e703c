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
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Source is a filterable, sortable collection that can count and slice its matches.
// F is the filter type understood by the source.
type Source[T, F any] interface {
	// Count returns the number of items matching the filter.
	Count(ctx context.Context, filter F) (int, error)
	// Fetch returns at most limit matching items in the given order, skipping the first offset.
	Fetch(ctx context.Context, filter F, sort SortSpec, offset, limit int) ([]T, error)
}

// Apply filters, sorts and pages a source. The count and the page are requested concurrently,
// and a failure of either cancels the other.
func Apply[T, F any](ctx context.Context, src Source[T, F], filter F, sort SortSpec,
	page PageRequest) (PagedResult[T], error) {
	if err := ctx.Err(); err != nil {
		return PagedResult[T]{}, err
	}
	if err := page.Validate(); err != nil {
		return PagedResult[T]{}, err
	}

	var (
		totalCount int
		items      []T
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := src.Count(gctx, filter)
		if err != nil {
			return fmt.Errorf("failed to count items: %w", err)
		}
		totalCount = count
		return nil
	})
	g.Go(func() error {
		fetched, err := src.Fetch(gctx, filter, sort, page.Offset(), page.PageSize)
		if err != nil {
			return fmt.Errorf("failed to fetch items: %w", err)
		}
		items = fetched
		return nil
	})

	if err := g.Wait(); err != nil {
		return PagedResult[T]{}, err
	}
	if err := ctx.Err(); err != nil {
		return PagedResult[T]{}, err
	}

	return NewPagedResult(items, totalCount, page), nil
}
