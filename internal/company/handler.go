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

import (
	"net/http"

	serverconst "github.com/ramesh/companyemployees/internal/system/constants"
	"github.com/ramesh/companyemployees/internal/system/error/apierror"
	"github.com/ramesh/companyemployees/internal/system/error/serviceerror"
	"github.com/ramesh/companyemployees/internal/system/hateoas"
	"github.com/ramesh/companyemployees/internal/system/log"
	sysutils "github.com/ramesh/companyemployees/internal/system/utils"
)

const handlerLoggerComponentName = "CompanyHandler"

var supportedMediaTypes = []string{serverconst.ContentTypeJSON, serverconst.ContentTypeXML}

// companyHandler is the handler for company operations.
type companyHandler struct {
	companyService CompanyServiceInterface
}

// newCompanyHandler creates a new instance of companyHandler.
func newCompanyHandler(companyService CompanyServiceInterface) *companyHandler {
	return &companyHandler{
		companyService: companyService,
	}
}

// HandleCompanyGetRequest handles the get company by id request.
func (ch *companyHandler) HandleCompanyGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	mediaType, ok := hateoas.NegotiateMediaType(r.Header.Get(serverconst.AcceptHeaderName), supportedMediaTypes)
	if !ok {
		ch.handleError(w, logger, &ErrorUnsupportedMediaType)
		return
	}

	id := r.PathValue("companyId")
	company, svcErr := ch.companyService.GetCompany(r.Context(), id)
	if svcErr != nil {
		ch.handleError(w, logger, svcErr)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, mediaType)
	w.WriteHeader(http.StatusOK)

	if err := hateoas.Encode(w, mediaType, company); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		return
	}

	logger.Debug("Successfully retrieved company", log.String("companyID", id))
}

// handleError writes the error response matching the service error.
func (ch *companyHandler) handleError(w http.ResponseWriter, logger *log.Logger,
	svcErr *serviceerror.ServiceError) {
	statusCode := http.StatusInternalServerError
	if svcErr.IsClientError() {
		switch svcErr.Code {
		case ErrorCompanyNotFound.Code:
			statusCode = http.StatusNotFound
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
