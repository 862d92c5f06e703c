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

package company

import "github.com/ramesh/companyemployees/internal/system/error/serviceerror"

// Client errors for company operations.
var (
	// ErrorCompanyNotFound is the error returned when a company is not found.
	ErrorCompanyNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "COM-1001",
		Error:            "Company not found",
		ErrorDescription: "The company with the specified id does not exist",
	}
	// ErrorInvalidCompanyID is the error returned when the company id is not a valid UUID.
	ErrorInvalidCompanyID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "COM-1002",
		Error:            "Invalid company id",
		ErrorDescription: "The company id must be a valid UUID",
	}
	// ErrorUnsupportedMediaType is the error returned when no acceptable representation exists.
	ErrorUnsupportedMediaType = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "COM-1003",
		Error:            "Not acceptable",
		ErrorDescription: "None of the media types in the Accept header are supported",
	}
)

// Server errors for company operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "COM-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
