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

// Package employee provides management of the employees of a company.
package employee

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/ramesh/companyemployees/internal/company"
	"github.com/ramesh/companyemployees/internal/system/config"
	"github.com/ramesh/companyemployees/internal/system/datashaping"
	"github.com/ramesh/companyemployees/internal/system/error/serviceerror"
	"github.com/ramesh/companyemployees/internal/system/hateoas"
	"github.com/ramesh/companyemployees/internal/system/log"
	"github.com/ramesh/companyemployees/internal/system/query"
	sysutils "github.com/ramesh/companyemployees/internal/system/utils"
)

const loggerComponentName = "EmployeeMgtService"

// errPatchRejected aborts a patch transaction when the patched employee is not valid.
var errPatchRejected = errors.New("patch rejected")

// EmployeeServiceInterface defines the interface for the employee service.
type EmployeeServiceInterface interface {
	GetEmployees(ctx context.Context, companyID string, params EmployeeParameters,
		mediaType string) (hateoas.LinkResponse, query.MetaData, *serviceerror.ServiceError)
	GetEmployee(ctx context.Context, companyID, id, fields,
		mediaType string) (hateoas.ItemResponse, *serviceerror.ServiceError)
	CreateEmployee(ctx context.Context, companyID string, request EmployeeRequest,
		mediaType string) (hateoas.ItemResponse, string, *serviceerror.ServiceError)
	UpdateEmployee(ctx context.Context, companyID, id string, request EmployeeRequest) *serviceerror.ServiceError
	PatchEmployee(ctx context.Context, companyID, id string, patch jsonpatch.Patch) *serviceerror.ServiceError
	DeleteEmployee(ctx context.Context, companyID, id string) *serviceerror.ServiceError
}

// employeeService is the default implementation of the EmployeeServiceInterface.
type employeeService struct {
	employeeStore  employeeStoreInterface
	companyService company.CompanyServiceInterface
	employeeLinks  EmployeeLinksInterface
	pagination     config.PaginationConfig
}

// newEmployeeService creates a new instance of employeeService with injected dependencies.
func newEmployeeService(companyService company.CompanyServiceInterface,
	pagination config.PaginationConfig) EmployeeServiceInterface {
	return &employeeService{
		employeeStore:  newEmployeeStore(),
		companyService: companyService,
		employeeLinks:  NewEmployeeLinks(datashaping.NewDataShaper[EmployeeDTO]()),
		pagination:     pagination,
	}
}

// GetEmployees retrieves a filtered, sorted and paged list of the employees of a company,
// shaped to the requested fields and linked when the media type asks for links.
func (es *employeeService) GetEmployees(ctx context.Context, companyID string, params EmployeeParameters,
	mediaType string) (hateoas.LinkResponse, query.MetaData, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if svcErr := validateID("company", companyID); svcErr != nil {
		return hateoas.LinkResponse{}, query.MetaData{}, svcErr
	}
	if svcErr := validateAgeRange(params); svcErr != nil {
		return hateoas.LinkResponse{}, query.MetaData{}, svcErr
	}

	page := query.NewPageRequest(params.PageNumber, params.PageSize,
		es.pagination.DefaultPageSize, es.pagination.MaxPageSize)
	if err := page.Validate(); err != nil {
		return hateoas.LinkResponse{}, query.MetaData{}, serviceerror.CustomServiceError(ErrorInvalidPageRequest,
			fmt.Sprintf("Page %d of size %d is out of range", params.PageNumber, page.PageSize))
	}

	if svcErr := es.checkCompanyExists(ctx, logger, companyID); svcErr != nil {
		return hateoas.LinkResponse{}, query.MetaData{}, svcErr
	}

	sort := query.ParseSortSpec(params.OrderBy, employeeSortFields).WithFallback(employeeFallbackSort)
	filter := EmployeeFilter{
		CompanyID:  companyID,
		MinAge:     params.MinAge,
		MaxAge:     params.MaxAge,
		SearchTerm: params.SearchTerm,
	}

	employees, err := query.Apply[Employee, EmployeeFilter](ctx, es.employeeStore, filter, sort, page)
	if err != nil {
		if errors.Is(err, query.ErrPageOutOfRange) {
			return hateoas.LinkResponse{}, query.MetaData{}, &ErrorInvalidPageRequest
		}
		logger.Error("Failed to list employees", log.String("companyID", companyID), log.Error(err))
		return hateoas.LinkResponse{}, query.MetaData{}, &ErrorInternalServerError
	}

	dtos := query.MapPagedResult(employees, toDTO)
	metaData := dtos.MetaData()
	response := es.employeeLinks.TryGenerateLinks(dtos.Items(), params.Fields, companyID, params,
		metaData, mediaType)

	if logger.IsDebugEnabled() {
		logger.Debug("Retrieved employees", log.String("companyID", companyID),
			log.String("orderBy", sort.String()), log.Int("count", dtos.Len()),
			log.Int("totalCount", metaData.TotalCount), log.Bool("linked", response.HasLinks))
	}

	return response, metaData, nil
}

// GetEmployee retrieves a single employee of a company, shaped to the requested fields.
func (es *employeeService) GetEmployee(ctx context.Context, companyID, id, fields,
	mediaType string) (hateoas.ItemResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if svcErr := validateIDs(companyID, id); svcErr != nil {
		return hateoas.ItemResponse{}, svcErr
	}
	if svcErr := es.checkCompanyExists(ctx, logger, companyID); svcErr != nil {
		return hateoas.ItemResponse{}, svcErr
	}

	employee, err := es.employeeStore.GetEmployee(ctx, companyID, id)
	if err != nil {
		return hateoas.ItemResponse{}, es.mapEmployeeStoreError(logger, err, id, "Failed to retrieve employee")
	}

	return es.employeeLinks.TryGenerateItemLinks(toDTO(employee), fields, companyID, mediaType), nil
}

// CreateEmployee creates a new employee for a company.
func (es *employeeService) CreateEmployee(ctx context.Context, companyID string, request EmployeeRequest,
	mediaType string) (hateoas.ItemResponse, string, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if svcErr := validateID("company", companyID); svcErr != nil {
		return hateoas.ItemResponse{}, "", svcErr
	}
	request = request.sanitize()
	if svcErr := validateRequest(request); svcErr != nil {
		return hateoas.ItemResponse{}, "", svcErr
	}
	if svcErr := es.checkCompanyExists(ctx, logger, companyID); svcErr != nil {
		return hateoas.ItemResponse{}, "", svcErr
	}

	employee := Employee{
		ID:        sysutils.GenerateUUID(),
		Name:      request.Name,
		Age:       *request.Age,
		Position:  request.Position,
		CompanyID: companyID,
	}
	if err := es.employeeStore.CreateEmployee(ctx, employee); err != nil {
		logger.Error("Failed to create employee", log.String("companyID", companyID), log.Error(err))
		return hateoas.ItemResponse{}, "", &ErrorInternalServerError
	}

	logger.Debug("Created employee", log.String("companyID", companyID), log.String("employeeID", employee.ID))
	return es.employeeLinks.TryGenerateItemLinks(toDTO(employee), "", companyID, mediaType), employee.ID, nil
}

// UpdateEmployee replaces the name, age and position of an employee.
func (es *employeeService) UpdateEmployee(ctx context.Context, companyID, id string,
	request EmployeeRequest) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if svcErr := validateIDs(companyID, id); svcErr != nil {
		return svcErr
	}
	request = request.sanitize()
	if svcErr := validateRequest(request); svcErr != nil {
		return svcErr
	}
	if svcErr := es.checkCompanyExists(ctx, logger, companyID); svcErr != nil {
		return svcErr
	}

	err := es.employeeStore.UpdateEmployee(ctx, Employee{
		ID:        id,
		Name:      request.Name,
		Age:       *request.Age,
		Position:  request.Position,
		CompanyID: companyID,
	})
	if err != nil {
		return es.mapEmployeeStoreError(logger, err, id, "Failed to update employee")
	}

	logger.Debug("Updated employee", log.String("companyID", companyID), log.String("employeeID", id))
	return nil
}

// PatchEmployee applies a JSON Patch document to the name, age and position of an employee.
// The patched employee is validated like an update request before it is stored.
func (es *employeeService) PatchEmployee(ctx context.Context, companyID, id string,
	patch jsonpatch.Patch) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if svcErr := validateIDs(companyID, id); svcErr != nil {
		return svcErr
	}
	if svcErr := es.checkCompanyExists(ctx, logger, companyID); svcErr != nil {
		return svcErr
	}

	var rejection *serviceerror.ServiceError
	err := es.employeeStore.PatchEmployee(ctx, companyID, id, func(current Employee) (Employee, error) {
		request, svcErr := applyEmployeePatch(current, patch)
		if svcErr != nil {
			rejection = svcErr
			return Employee{}, errPatchRejected
		}
		current.Name = request.Name
		current.Age = *request.Age
		current.Position = request.Position
		return current, nil
	})
	if rejection != nil {
		return rejection
	}
	if err != nil {
		return es.mapEmployeeStoreError(logger, err, id, "Failed to patch employee")
	}

	logger.Debug("Patched employee", log.String("companyID", companyID), log.String("employeeID", id),
		log.Int("operations", len(patch)))
	return nil
}

// DeleteEmployee deletes an employee of a company.
func (es *employeeService) DeleteEmployee(ctx context.Context, companyID, id string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if svcErr := validateIDs(companyID, id); svcErr != nil {
		return svcErr
	}
	if svcErr := es.checkCompanyExists(ctx, logger, companyID); svcErr != nil {
		return svcErr
	}

	if err := es.employeeStore.DeleteEmployee(ctx, companyID, id); err != nil {
		return es.mapEmployeeStoreError(logger, err, id, "Failed to delete employee")
	}

	logger.Debug("Deleted employee", log.String("companyID", companyID), log.String("employeeID", id))
	return nil
}

// checkCompanyExists returns a not found error when the company does not exist.
func (es *employeeService) checkCompanyExists(ctx context.Context, logger *log.Logger,
	companyID string) *serviceerror.ServiceError {
	exists, svcErr := es.companyService.IsCompanyExists(ctx, companyID)
	if svcErr != nil {
		if svcErr.IsClientError() {
			return svcErr
		}
		logger.Error("Failed to check company existence", log.String("companyID", companyID),
			log.String("error", svcErr.ErrorDescription))
		return &ErrorInternalServerError
	}
	if !exists {
		return serviceerror.CustomServiceError(company.ErrorCompanyNotFound,
			"The company with id: "+companyID+" doesn't exist in the database")
	}
	return nil
}

func (es *employeeService) mapEmployeeStoreError(logger *log.Logger, err error, id,
	message string) *serviceerror.ServiceError {
	if errors.Is(err, ErrEmployeeNotFound) {
		return serviceerror.CustomServiceError(ErrorEmployeeNotFound,
			"Employee with id: "+id+" doesn't exist in the database")
	}
	logger.Error(message, log.String("employeeID", id), log.Error(err))
	return &ErrorInternalServerError
}

func validateID(kind, id string) *serviceerror.ServiceError {
	if !sysutils.IsValidUUID(id) {
		return serviceerror.CustomServiceError(ErrorInvalidID,
			fmt.Sprintf("The %s id %q is not a valid UUID", kind, id))
	}
	return nil
}

func validateIDs(companyID, employeeID string) *serviceerror.ServiceError {
	if svcErr := validateID("company", companyID); svcErr != nil {
		return svcErr
	}
	return validateID("employee", employeeID)
}

func validateAgeRange(params EmployeeParameters) *serviceerror.ServiceError {
	if params.MinAge < 0 || params.MaxAge < 0 {
		return serviceerror.CustomServiceError(ErrorInvalidAgeRange,
			fmt.Sprintf("Age limits can't be negative. Requested range: %d-%d", params.MinAge, params.MaxAge))
	}
	if params.MinAge > math.MaxInt32 || params.MaxAge > math.MaxInt32 {
		return serviceerror.CustomServiceError(ErrorInvalidAgeRange,
			fmt.Sprintf("Age limits can't exceed %d. Requested range: %d-%d",
				math.MaxInt32, params.MinAge, params.MaxAge))
	}
	if !params.ValidAgeRange() {
		return serviceerror.CustomServiceError(ErrorInvalidAgeRange,
			fmt.Sprintf("Max age can't be less than min age. Requested range: %d-%d", params.MinAge, params.MaxAge))
	}
	return nil
}

// applyEmployeePatch applies patch to the update representation of an employee and validates the result.
func applyEmployeePatch(current Employee, patch jsonpatch.Patch) (EmployeeRequest, *serviceerror.ServiceError) {
	age := current.Age
	document, err := json.Marshal(EmployeeRequest{Name: current.Name, Age: &age, Position: current.Position})
	if err != nil {
		return EmployeeRequest{}, &ErrorInternalServerError
	}

	patched, err := patch.Apply(document)
	if err != nil {
		return EmployeeRequest{}, serviceerror.CustomServiceError(ErrorValidationFailed,
			"Failed to apply the patch: "+err.Error())
	}

	decoder := json.NewDecoder(bytes.NewReader(patched))
	decoder.DisallowUnknownFields()
	var request EmployeeRequest
	if err := decoder.Decode(&request); err != nil {
		return EmployeeRequest{}, serviceerror.CustomServiceError(ErrorValidationFailed,
			"The patched employee is invalid: "+err.Error())
	}

	request = request.sanitize()
	if svcErr := validateRequest(request); svcErr != nil {
		return EmployeeRequest{}, svcErr
	}
	return request, nil
}

func validateRequest(request EmployeeRequest) *serviceerror.ServiceError {
	if violations := request.validate(); len(violations) > 0 {
		return serviceerror.CustomServiceError(ErrorValidationFailed, strings.Join(violations, " "))
	}
	return nil
}
