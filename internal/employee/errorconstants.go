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

package employee

import "github.com/ramesh/companyemployees/internal/system/error/serviceerror"

// Client errors for employee operations.
var (
	// ErrorInvalidPageRequest is the error returned when the paging or numeric query parameters are invalid.
	ErrorInvalidPageRequest = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "EMP-1001",
		Error:            "Invalid page request",
		ErrorDescription: "The paging parameters do not describe a valid page",
	}
	// ErrorInvalidID is the error returned when a company or employee id is not a valid UUID.
	ErrorInvalidID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "EMP-1002",
		Error:            "Invalid id",
		ErrorDescription: "The id must be a valid UUID",
	}
	// ErrorInvalidAgeRange is the error returned when the age filter range is invalid.
	ErrorInvalidAgeRange = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "EMP-1003",
		Error:            "Invalid age range",
		ErrorDescription: "Max age can't be less than min age.",
	}
	// ErrorValidationFailed is the error returned when the employee request body fails validation.
	ErrorValidationFailed = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "EMP-1004",
		Error:            "Validation failed",
		ErrorDescription: "The employee request contains invalid values",
	}
	// ErrorInvalidRequestFormat is the error returned when the request body is malformed.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "EMP-1005",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorEmployeeNotFound is the error returned when the employee does not exist for the company.
	ErrorEmployeeNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "EMP-1006",
		Error:            "Employee not found",
		ErrorDescription: "The employee with the specified id does not exist",
	}
	// ErrorUnsupportedMediaType is the error returned when no acceptable representation exists.
	ErrorUnsupportedMediaType = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "EMP-1008",
		Error:            "Not acceptable",
		ErrorDescription: "None of the media types in the Accept header are supported",
	}
)

// Server errors for employee operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "EMP-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
