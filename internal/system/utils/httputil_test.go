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
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/ramesh/companyemployees/internal/system/error/apierror"
)

type HTTPUtilTestSuite struct {
	suite.Suite
}

type testPayload struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestHTTPUtilSuite(t *testing.T) {
	suite.Run(t, new(HTTPUtilTestSuite))
}

func (suite *HTTPUtilTestSuite) TestDecodeJSONBody() {
	testCases := []struct {
		name           string
		body           string
		expected       *testPayload
		expectedErrMsg string
	}{
		{
			name:     "ValidBody",
			body:     `{"name":"Ann","age":30}`,
			expected: &testPayload{Name: "Ann", Age: 30},
		},
		{
			name:           "EmptyBody",
			body:           "",
			expectedErrMsg: "request body is empty",
		},
		{
			name:           "UnknownField",
			body:           `{"name":"Ann","salary":10}`,
			expectedErrMsg: "invalid JSON body",
		},
		{
			name:           "MalformedJSON",
			body:           `{"name":`,
			expectedErrMsg: "invalid JSON body",
		},
		{
			name:           "TrailingData",
			body:           `{"name":"Ann"}{"name":"Bob"}`,
			expectedErrMsg: "single JSON object",
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tc.body))

			result, err := DecodeJSONBody[testPayload](req)

			if tc.expectedErrMsg != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedErrMsg)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, result)
			}
		})
	}
}

func (suite *HTTPUtilTestSuite) TestWriteJSONError() {
	rr := httptest.NewRecorder()
	errResp := apierror.ErrorResponse{
		Code:        "EMP-1003",
		Message:     "Invalid age range",
		Description: "Max age can't be less than min age",
	}

	WriteJSONError(rr, errResp, http.StatusBadRequest, map[string]string{"X-Test": "value"})

	assert.Equal(suite.T(), http.StatusBadRequest, rr.Code)
	assert.Equal(suite.T(), "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(suite.T(), "value", rr.Header().Get("X-Test"))

	var decoded apierror.ErrorResponse
	assert.NoError(suite.T(), json.NewDecoder(rr.Body).Decode(&decoded))
	assert.Equal(suite.T(), errResp, decoded)
}

func (suite *HTTPUtilTestSuite) TestParseIntQueryParam() {
	query := url.Values{"pageSize": []string{" 20 "}, "pageNumber": []string{"two"}}

	value, err := ParseIntQueryParam(query, "pageSize", 10)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 20, value)

	value, err = ParseIntQueryParam(query, "minAge", 18)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 18, value)

	_, err = ParseIntQueryParam(query, "pageNumber", 1)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "pageNumber")
}

