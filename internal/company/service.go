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

// Package company provides company lookup functionality.
package company

import (
	"context"
	"errors"

	"github.com/ramesh/companyemployees/internal/system/error/serviceerror"
	"github.com/ramesh/companyemployees/internal/system/log"
	sysutils "github.com/ramesh/companyemployees/internal/system/utils"
)

const loggerComponentName = "CompanyService"

// CompanyServiceInterface defines the interface for the company service.
type CompanyServiceInterface interface {
	GetCompany(ctx context.Context, id string) (Company, *serviceerror.ServiceError)
	IsCompanyExists(ctx context.Context, id string) (bool, *serviceerror.ServiceError)
}

// companyService is the default implementation of the CompanyServiceInterface.
type companyService struct {
	companyStore companyStoreInterface
}

// newCompanyService creates a new instance of companyService.
func newCompanyService() CompanyServiceInterface {
	return &companyService{
		companyStore: newCompanyStore(),
	}
}

// GetCompany retrieves a company by id.
func (cs *companyService) GetCompany(ctx context.Context, id string) (Company, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if !sysutils.IsValidUUID(id) {
		return Company{}, &ErrorInvalidCompanyID
	}

	company, err := cs.companyStore.GetCompany(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCompanyNotFound) {
			return Company{}, serviceerror.CustomServiceError(ErrorCompanyNotFound,
				"The company with id: "+id+" doesn't exist in the database")
		}
		logger.Error("Failed to retrieve company", log.String("companyID", id), log.Error(err))
		return Company{}, &ErrorInternalServerError
	}

	return company, nil
}

// IsCompanyExists checks if a company exists by id.
func (cs *companyService) IsCompanyExists(ctx context.Context, id string) (bool, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Checking if company exists", log.String("companyID", id))

	if !sysutils.IsValidUUID(id) {
		return false, &ErrorInvalidCompanyID
	}

	exists, err := cs.companyStore.IsCompanyExists(ctx, id)
	if err != nil {
		logger.Error("Failed to check company existence", log.String("companyID", id), log.Error(err))
		return false, &ErrorInternalServerError
	}

	return exists, nil
}
