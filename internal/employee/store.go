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
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/ramesh/companyemployees/internal/system/constants"
	"github.com/ramesh/companyemployees/internal/system/database/model"
	"github.com/ramesh/companyemployees/internal/system/database/provider"
	dbutils "github.com/ramesh/companyemployees/internal/system/database/utils"
	"github.com/ramesh/companyemployees/internal/system/query"
)

// ErrEmployeeNotFound is returned by the store when no employee matches.
var ErrEmployeeNotFound = errors.New("employee not found")

const likeEscapeChar = "!"

// employeeStoreInterface defines the interface for employee store operations.
type employeeStoreInterface interface {
	query.Source[Employee, EmployeeFilter]
	GetEmployee(ctx context.Context, companyID, id string) (Employee, error)
	CreateEmployee(ctx context.Context, employee Employee) error
	UpdateEmployee(ctx context.Context, employee Employee) error
	PatchEmployee(ctx context.Context, companyID, id string, apply func(Employee) (Employee, error)) error
	DeleteEmployee(ctx context.Context, companyID, id string) error
}

// employeeStore is the default implementation of employeeStoreInterface.
type employeeStore struct {
	dbProvider provider.DBProviderInterface
}

// newEmployeeStore creates a new instance of employeeStore.
func newEmployeeStore() employeeStoreInterface {
	return &employeeStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// Count returns the number of employees matching the filter.
func (s *employeeStore) Count(ctx context.Context, filter EmployeeFilter) (int, error) {
	dbClient, err := s.dbProvider.GetDBClient(constants.CompanyDBName)
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	countQuery, args, err := applyFilter(dbutils.NewSelectQueryBuilder(employeeTable, employeeColumns...), filter).
		BuildCount(queryIDCountEmployees)
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	results, err := dbClient.Query(ctx, countQuery, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to execute count query: %w", err)
	}

	var total int
	if len(results) > 0 {
		if count, ok := results[0]["total"].(int64); ok {
			total = int(count)
		} else {
			return 0, fmt.Errorf("unexpected type for total: %T", results[0]["total"])
		}
	}

	return total, nil
}

// Fetch returns a page of employees matching the filter in the given order.
func (s *employeeStore) Fetch(ctx context.Context, filter EmployeeFilter, sort query.SortSpec,
	offset, limit int) ([]Employee, error) {
	dbClient, err := s.dbProvider.GetDBClient(constants.CompanyDBName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	builder := applyFilter(dbutils.NewSelectQueryBuilder(employeeTable, employeeColumns...), filter)
	for _, clause := range sort {
		column, ok := employeeSortColumns[clause.Field]
		if !ok {
			return nil, fmt.Errorf("unsupported sort field: %s", clause.Field)
		}
		builder.OrderBy(column, clause.Descending)
	}

	listQuery, args, err := builder.Paginate(limit, offset).Build(queryIDListEmployees)
	if err != nil {
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	results, err := dbClient.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	employees := make([]Employee, 0, len(results))
	for _, row := range results {
		employee, err := buildEmployeeFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build employee: %w", err)
		}
		employees = append(employees, employee)
	}

	return employees, nil
}

// GetEmployee retrieves an employee of a company by id.
func (s *employeeStore) GetEmployee(ctx context.Context, companyID, id string) (Employee, error) {
	dbClient, err := s.dbProvider.GetDBClient(constants.CompanyDBName)
	if err != nil {
		return Employee{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(ctx, queryGetEmployeeByID, companyID, id)
	if err != nil {
		return Employee{}, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return Employee{}, ErrEmployeeNotFound
	}
	if len(results) > 1 {
		return Employee{}, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	return buildEmployeeFromResultRow(results[0])
}

// CreateEmployee creates a new employee in the database.
func (s *employeeStore) CreateEmployee(ctx context.Context, employee Employee) error {
	dbClient, err := s.dbProvider.GetDBClient(constants.CompanyDBName)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(ctx, queryCreateEmployee,
		employee.ID,
		employee.CompanyID,
		employee.Name,
		searchName(employee.Name),
		employee.Age,
		employee.Position,
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// UpdateEmployee updates the name, age and position of an employee.
func (s *employeeStore) UpdateEmployee(ctx context.Context, employee Employee) error {
	dbClient, err := s.dbProvider.GetDBClient(constants.CompanyDBName)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(ctx, queryUpdateEmployee,
		employee.Name,
		searchName(employee.Name),
		employee.Age,
		employee.Position,
		employee.CompanyID,
		employee.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrEmployeeNotFound
	}

	return nil
}

// PatchEmployee reads an employee, passes it to apply and writes the result back in a single transaction.
// An error from apply rolls the transaction back and is returned as is.
func (s *employeeStore) PatchEmployee(ctx context.Context, companyID, id string,
	apply func(Employee) (Employee, error)) error {
	dbClient, err := s.dbProvider.GetDBClient(constants.CompanyDBName)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	tx, err := dbClient.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	results, err := tx.Query(ctx, queryGetEmployeeForUpdate, companyID, id)
	if err != nil {
		return rollback(tx, fmt.Errorf("failed to execute query: %w", err))
	}
	if len(results) == 0 {
		return rollback(tx, ErrEmployeeNotFound)
	}

	current, err := buildEmployeeFromResultRow(results[0])
	if err != nil {
		return rollback(tx, err)
	}

	patched, err := apply(current)
	if err != nil {
		return rollback(tx, err)
	}

	_, err = tx.Execute(ctx, queryUpdateEmployee,
		patched.Name,
		searchName(patched.Name),
		patched.Age,
		patched.Position,
		companyID,
		id,
	)
	if err != nil {
		return rollback(tx, fmt.Errorf("failed to execute query: %w", err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteEmployee deletes an employee of a company.
func (s *employeeStore) DeleteEmployee(ctx context.Context, companyID, id string) error {
	dbClient, err := s.dbProvider.GetDBClient(constants.CompanyDBName)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(ctx, queryDeleteEmployee, companyID, id)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrEmployeeNotFound
	}

	return nil
}

// rollback rolls the transaction back, joining a rollback failure to err.
func rollback(tx model.TxInterface, err error) error {
	if rollbackErr := tx.Rollback(); rollbackErr != nil {
		return errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
	}
	return err
}

// applyFilter adds the company, age range and name search conditions.
func applyFilter(builder *dbutils.SelectQueryBuilder, filter EmployeeFilter) *dbutils.SelectQueryBuilder {
	builder.
		Where("COMPANY_ID = ?", filter.CompanyID).
		Where("AGE >= ?", filter.MinAge).
		Where("AGE <= ?", filter.MaxAge)

	if term := strings.TrimSpace(filter.SearchTerm); term != "" {
		pattern := "%" + escapeLike(searchName(term)) + "%"
		builder.Where("SEARCH_NAME LIKE ? ESCAPE '"+likeEscapeChar+"'", pattern)
	}
	return builder
}

// searchName case folds a name for the SEARCH_NAME column and for search terms.
// Folding in Go keeps matching Unicode aware on every dialect.
func searchName(name string) string {
	return cases.Fold().String(name)
}

// escapeLike escapes the LIKE wildcards of a search term.
func escapeLike(term string) string {
	replacer := strings.NewReplacer(
		likeEscapeChar, likeEscapeChar+likeEscapeChar,
		"%", likeEscapeChar+"%",
		"_", likeEscapeChar+"_",
	)
	return replacer.Replace(term)
}

func buildEmployeeFromResultRow(row map[string]interface{}) (Employee, error) {
	id, ok := row["employee_id"].(string)
	if !ok {
		return Employee{}, fmt.Errorf("failed to parse employee_id as string")
	}
	companyID, ok := row["company_id"].(string)
	if !ok {
		return Employee{}, fmt.Errorf("failed to parse company_id as string")
	}
	name, ok := row["name"].(string)
	if !ok {
		return Employee{}, fmt.Errorf("failed to parse name as string")
	}
	age, ok := row["age"].(int64)
	if !ok {
		return Employee{}, fmt.Errorf("failed to parse age as int64")
	}
	position, ok := row["position"].(string)
	if !ok {
		return Employee{}, fmt.Errorf("failed to parse position as string")
	}

	return Employee{
		ID:        id,
		Name:      name,
		Age:       int(age),
		Position:  position,
		CompanyID: companyID,
	}, nil
}
