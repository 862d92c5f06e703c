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

package serviceerror

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testClientError = ServiceError{
	Type:             ClientErrorType,
	Code:             "TST-1001",
	Error:            "Test error",
	ErrorDescription: "Default description",
}

func TestCustomServiceError(t *testing.T) {
	custom := CustomServiceError(testClientError, "Company with id 42 does not exist")

	assert.Equal(t, "TST-1001", custom.Code)
	assert.Equal(t, ClientErrorType, custom.Type)
	assert.Equal(t, "Company with id 42 does not exist", custom.ErrorDescription)
	assert.Equal(t, "Default description", testClientError.ErrorDescription)
}

func TestCustomServiceErrorKeepsDescriptionWhenEmpty(t *testing.T) {
	custom := CustomServiceError(testClientError, "")

	assert.Equal(t, "Default description", custom.ErrorDescription)
}

func TestIsClientError(t *testing.T) {
	serverError := ServiceError{Type: ServerErrorType, Code: "TST-5000"}

	assert.True(t, (&testClientError).IsClientError())
	assert.False(t, (&serverError).IsClientError())

	var nilError *ServiceError
	assert.False(t, nilError.IsClientError())
}
