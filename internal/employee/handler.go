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

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/ramesh/companyemployees/internal/company"
	serverconst "github.com/ramesh/companyemployees/internal/system/constants"
	"github.com/ramesh/companyemployees/internal/system/error/apierror"
	"github.com/ramesh/companyemployees/internal/system/error/serviceerror"
	"github.com/ramesh/companyemployees/internal/system/hateoas"
	"github.com/ramesh/companyemployees/internal/system/log"
	sysutils "github.com/ramesh/companyemployees/internal/system/utils"
)

const handlerLoggerComponentName = "EmployeeHandler"

// employeeHandler is the handler for employee management operations.
type employeeHandler struct {
	employeeService EmployeeServiceInterface
}

// newEmployeeHandler creates a new instance of employeeHandler.
func newEmployeeHandler(employeeService EmployeeServiceInterface) *employeeHandler {
	return &employeeHandler{
		employeeService: employeeService,
	}
}

// HandleEmployeeListRequest handles the list employees of a company request.
func (eh *employeeHandler) HandleEmployeeListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	mediaType, svcErr := negotiate(r)
	if svcErr != nil {
		eh.handleError(w, logger, svcErr)
		return
	}

	params, svcErr := parseEmployeeParameters(r.URL.Query())
	if svcErr != nil {
		eh.handleError(w, logger, svcErr)
		return
	}

	companyID := r.PathValue("companyId")
	response, metaData, svcErr := eh.employeeService.GetEmployees(r.Context(), companyID, params, mediaType)
	if svcErr != nil {
		eh.handleError(w, logger, svcErr)
		return
	}

	pagination, err := json.Marshal(metaData)
	if err != nil {
		logger.Error("Error encoding pagination metadata", log.Error(err))
		eh.handleError(w, logger, &ErrorInternalServerError)
		return
	}

	w.Header().Set(serverconst.PaginationHeaderName, string(pagination))
	w.Header().Set(serverconst.ContentTypeHeaderName, mediaType)
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}

	if err := hateoas.Encode(w, mediaType, response.Payload()); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		return
	}

	logger.Debug("Successfully listed employees", log.String("companyID", companyID),
		log.Int("pageNumber", metaData.CurrentPage), log.Int("pageSize", metaData.PageSize),
		log.Int("totalCount", metaData.TotalCount))
}

// HandleEmployeeGetRequest handles the get employee by id request.
func (eh *employeeHandler) HandleEmployeeGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	mediaType, svcErr := negotiate(r)
	if svcErr != nil {
		eh.handleError(w, logger, svcErr)
		return
	}

	companyID := r.PathValue("companyId")
	id := r.PathValue("id")
	response, svcErr := eh.employeeService.GetEmployee(r.Context(), companyID, id,
		r.URL.Query().Get("fields"), mediaType)
	if svcErr != nil {
		eh.handleError(w, logger, svcErr)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, mediaType)
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}

	if err := hateoas.Encode(w, mediaType, response.Payload()); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		return
	}

	logger.Debug("Successfully retrieved employee", log.String("employeeID", id))
}

// HandleEmployeePostRequest handles the create employee request.
func (eh *employeeHandler) HandleEmployeePostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	mediaType, svcErr := negotiate(r)
	if svcErr != nil {
		eh.handleError(w, logger, svcErr)
		return
	}

	request, err := sysutils.DecodeJSONBody[EmployeeRequest](r)
	if err != nil {
		eh.handleError(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"Failed to parse request body: "+err.Error()))
		return
	}

	companyID := r.PathValue("companyId")
	response, id, svcErr := eh.employeeService.CreateEmployee(r.Context(), companyID, *request, mediaType)
	if svcErr != nil {
		eh.handleError(w, logger, svcErr)
		return
	}

	w.Header().Set(serverconst.LocationHeaderName, employeePath(companyID, id))
	w.Header().Set(serverconst.ContentTypeHeaderName, mediaType)
	w.WriteHeader(http.StatusCreated)

	if err := hateoas.Encode(w, mediaType, response.Payload()); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		return
	}

	logger.Debug("Successfully created employee", log.String("employeeID", id))
}

// HandleEmployeePutRequest handles the update employee request.
func (eh *employeeHandler) HandleEmployeePutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	request, err := sysutils.DecodeJSONBody[EmployeeRequest](r)
	if err != nil {
		eh.handleError(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"Failed to parse request body: "+err.Error()))
		return
	}

	id := r.PathValue("id")
	if svcErr := eh.employeeService.UpdateEmployee(r.Context(), r.PathValue("companyId"), id,
		*request); svcErr != nil {
		eh.handleError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	logger.Debug("Successfully updated employee", log.String("employeeID", id))
}

// HandleEmployeePatchRequest handles the partial update employee request carrying a JSON Patch document.
func (eh *employeeHandler) HandleEmployeePatchRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	patch, err := sysutils.DecodeJSONBody[jsonpatch.Patch](r)
	if err != nil {
		eh.handleError(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"Failed to parse patch document: "+err.Error()))
		return
	}
	if *patch == nil {
		eh.handleError(w, logger, serviceerror.CustomServiceError(ErrorInvalidRequestFormat,
			"The patch document is null"))
		return
	}

	id := r.PathValue("id")
	if svcErr := eh.employeeService.PatchEmployee(r.Context(), r.PathValue("companyId"), id,
		*patch); svcErr != nil {
		eh.handleError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	logger.Debug("Successfully patched employee", log.String("employeeID", id))
}

// HandleEmployeeDeleteRequest handles the delete employee request.
func (eh *employeeHandler) HandleEmployeeDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	id := r.PathValue("id")
	if svcErr := eh.employeeService.DeleteEmployee(r.Context(), r.PathValue("companyId"), id); svcErr != nil {
		eh.handleError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	logger.Debug("Successfully deleted employee", log.String("employeeID", id))
}

// handleError writes the error response matching the service error.
func (eh *employeeHandler) handleError(w http.ResponseWriter, logger *log.Logger,
	svcErr *serviceerror.ServiceError) {
	statusCode := http.StatusInternalServerError
	if svcErr.IsClientError() {
		switch svcErr.Code {
		case ErrorEmployeeNotFound.Code, company.ErrorCompanyNotFound.Code:
			statusCode = http.StatusNotFound
		case ErrorValidationFailed.Code:
			statusCode = http.StatusUnprocessableEntity
		case ErrorUnsupportedMediaType.Code:
			statusCode = http.StatusNotAcceptable
		default:
			statusCode = http.StatusBadRequest
		}
	}

	if statusCode == http.StatusInternalServerError {
		logger.Error("Internal server error occurred", log.String("error", svcErr.Error),
			log.String("description", svcErr.ErrorDescription))
	}

	sysutils.WriteJSONError(w, apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	}, statusCode, nil)
}

// negotiate selects the response media type from the Accept header.
func negotiate(r *http.Request) (string, *serviceerror.ServiceError) {
	accept := r.Header.Get(serverconst.AcceptHeaderName)
	mediaType, ok := hateoas.NegotiateMediaType(accept, hateoas.SupportedMediaTypes)
	if !ok {
		return "", serviceerror.CustomServiceError(ErrorUnsupportedMediaType,
			"None of the media types in the Accept header are supported: "+accept)
	}
	return mediaType, nil
}

// parseEmployeeParameters reads the collection query parameters, applying defaults for absent values.
func parseEmployeeParameters(values url.Values) (EmployeeParameters, *serviceerror.ServiceError) {
	params := NewEmployeeParameters()

	ints := []struct {
		key    string
		target *int
	}{
		{"minAge", &params.MinAge},
		{"maxAge", &params.MaxAge},
		{"pageNumber", &params.PageNumber},
		{"pageSize", &params.PageSize},
	}
	for _, p := range ints {
		value, err := sysutils.ParseIntQueryParam(values, p.key, *p.target)
		if err != nil {
			return EmployeeParameters{}, serviceerror.CustomServiceError(ErrorInvalidPageRequest, err.Error())
		}
		*p.target = value
	}

	if orderBy := strings.TrimSpace(values.Get("orderBy")); orderBy != "" {
		params.OrderBy = orderBy
	}
	params.SearchTerm = strings.TrimSpace(values.Get("searchTerm"))
	params.Fields = strings.TrimSpace(values.Get("fields"))

	return params, nil
}
