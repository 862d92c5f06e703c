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
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type PagedResultTestSuite struct {
	suite.Suite
}

func TestPagedResultSuite(t *testing.T) {
	suite.Run(t, new(PagedResultTestSuite))
}

func (suite *PagedResultTestSuite) TestNewPageRequestClamps() {
	testCases := []struct {
		name       string
		pageNumber int
		pageSize   int
		expected   PageRequest
	}{
		{"Valid", 2, 20, PageRequest{PageNumber: 2, PageSize: 20}},
		{"ZeroPageNumber", 0, 20, PageRequest{PageNumber: 1, PageSize: 20}},
		{"NegativePageNumber", -3, 20, PageRequest{PageNumber: 1, PageSize: 20}},
		{"ZeroPageSize", 1, 0, PageRequest{PageNumber: 1, PageSize: 10}},
		{"NegativePageSize", 1, -5, PageRequest{PageNumber: 1, PageSize: 10}},
		{"PageSizeAboveMax", 1, 500, PageRequest{PageNumber: 1, PageSize: 50}},
		{"PageSizeAtMax", 1, 50, PageRequest{PageNumber: 1, PageSize: 50}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			assert.Equal(suite.T(), tc.expected, NewPageRequest(tc.pageNumber, tc.pageSize, 10, 50))
		})
	}
}

func (suite *PagedResultTestSuite) TestOffset() {
	assert.Equal(suite.T(), 0, PageRequest{PageNumber: 1, PageSize: 10}.Offset())
	assert.Equal(suite.T(), 20, PageRequest{PageNumber: 3, PageSize: 10}.Offset())
}

func (suite *PagedResultTestSuite) TestValidate() {
	assert.NoError(suite.T(), PageRequest{PageNumber: 3, PageSize: 10}.Validate())
	assert.ErrorIs(suite.T(), PageRequest{PageNumber: 0, PageSize: 10}.Validate(), ErrPageOutOfRange)
	assert.ErrorIs(suite.T(), PageRequest{PageNumber: math.MaxInt32, PageSize: 50}.Validate(), ErrPageOutOfRange)
}

func (suite *PagedResultTestSuite) TestTotalPagesFormula() {
	testCases := []struct {
		totalCount int
		pageSize   int
		expected   int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{5, 2, 3},
		{100, 7, 15},
	}

	for _, tc := range testCases {
		result := NewPagedResult([]int{}, tc.totalCount, PageRequest{PageNumber: 1, PageSize: tc.pageSize})
		assert.Equal(suite.T(), tc.expected, result.MetaData().TotalPages,
			"totalCount=%d pageSize=%d", tc.totalCount, tc.pageSize)
	}
}

func (suite *PagedResultTestSuite) TestItemsTruncatedToPageSize() {
	result := NewPagedResult([]int{1, 2, 3, 4}, 4, PageRequest{PageNumber: 1, PageSize: 3})
	assert.Equal(suite.T(), []int{1, 2, 3}, result.Items())
	assert.Equal(suite.T(), 3, result.Len())
}

func (suite *PagedResultTestSuite) TestNavigationFlags() {
	page := PageRequest{PageNumber: 1, PageSize: 2}
	meta := NewPagedResult([]int{1, 2}, 5, page).MetaData()
	assert.False(suite.T(), meta.HasPrevious)
	assert.True(suite.T(), meta.HasNext)

	page.PageNumber = 2
	meta = NewPagedResult([]int{3, 4}, 5, page).MetaData()
	assert.True(suite.T(), meta.HasPrevious)
	assert.True(suite.T(), meta.HasNext)

	page.PageNumber = 3
	meta = NewPagedResult([]int{5}, 5, page).MetaData()
	assert.True(suite.T(), meta.HasPrevious)
	assert.False(suite.T(), meta.HasNext)
}

func (suite *PagedResultTestSuite) TestItemsReturnsCopy() {
	source := []int{1, 2}
	result := NewPagedResult(source, 2, PageRequest{PageNumber: 1, PageSize: 10})

	source[0] = 99
	items := result.Items()
	items[1] = 42

	assert.Equal(suite.T(), []int{1, 2}, result.Items())
}

func (suite *PagedResultTestSuite) TestMapPagedResultKeepsMetaData() {
	result := NewPagedResult([]int{1, 2}, 7, PageRequest{PageNumber: 2, PageSize: 2})
	mapped := MapPagedResult(result, func(i int) string { return string(rune('a' + i)) })

	assert.Equal(suite.T(), []string{"b", "c"}, mapped.Items())
	assert.Equal(suite.T(), result.MetaData(), mapped.MetaData())
}

func (suite *PagedResultTestSuite) TestMetaDataJSON() {
	meta := NewPagedResult([]int{1}, 3, PageRequest{PageNumber: 2, PageSize: 1}).MetaData()
	raw, err := json.Marshal(meta)
	assert.NoError(suite.T(), err)
	assert.JSONEq(suite.T(),
		`{"totalCount":3,"pageSize":1,"currentPage":2,"totalPages":3,"hasPrevious":true,"hasNext":true}`,
		string(raw))
}
