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
	"errors"
	"math"
)

// ErrPageOutOfRange is returned when the requested window cannot be addressed.
var ErrPageOutOfRange = errors.New("page window is out of range")

// PageRequest identifies a 1-based page of a fixed size.
type PageRequest struct {
	PageNumber int
	PageSize   int
}

// NewPageRequest creates a PageRequest, clamping the values into their valid ranges.
// A page number below one becomes one, a page size below one becomes defaultSize,
// and a page size above maxSize becomes maxSize.
func NewPageRequest(pageNumber, pageSize, defaultSize, maxSize int) PageRequest {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 1 {
		pageSize = defaultSize
	}
	if maxSize > 0 && pageSize > maxSize {
		pageSize = maxSize
	}
	if pageSize < 1 {
		pageSize = 1
	}
	return PageRequest{PageNumber: pageNumber, PageSize: pageSize}
}

// Validate checks that the request describes an addressable window.
func (p PageRequest) Validate() error {
	if p.PageNumber < 1 || p.PageSize < 1 {
		return ErrPageOutOfRange
	}
	if p.PageNumber-1 > math.MaxInt32/p.PageSize {
		return ErrPageOutOfRange
	}
	return nil
}

// Offset returns the number of items preceding the page.
func (p PageRequest) Offset() int {
	if p.PageNumber < 1 {
		return 0
	}
	return (p.PageNumber - 1) * p.PageSize
}
