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
	"context"
	"errors"
	"fmt"

	"github.com/ramesh/companyemployees/internal/system/constants"
	"github.com/ramesh/companyemployees/internal/system/database/provider"
)

// ErrCompanyNotFound is returned by the store when no company matches the id.
var ErrCompanyNotFound = errors.New("company not found")

// companyStoreInterface defines the interface for company store operations.
type companyStoreInterface interface {
	GetCompany(ctx context.Context, id string) (Company, error)
	IsCompanyExists(ctx context.Context, id string) (bool, error)
}

// companyStore is the default implementation of companyStoreInterface.
type companyStore struct {
	dbProvider provider.DBProviderInterface
}

// newCompanyStore creates a new instance of companyStore.
func newCompanyStore() companyStoreInterface {
	return &companyStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// GetCompany retrieves a company by its id.
func (s *companyStore) GetCompany(ctx context.Context, id string) (Company, error) {
	dbClient, err := s.dbProvider.GetDBClient(constants.CompanyDBName)
	if err != nil {
		return Company{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(ctx, queryGetCompanyByID, id)
	if err != nil {
		return Company{}, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return Company{}, ErrCompanyNotFound
	}
	if len(results) > 1 {
		return Company{}, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	return buildCompanyFromResultRow(results[0])
}

// IsCompanyExists checks if a company exists with the given id.
func (s *companyStore) IsCompanyExists(ctx context.Context, id string) (bool, error) {
	dbClient, err := s.dbProvider.GetDBClient(constants.CompanyDBName)
	if err != nil {
		return false, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(ctx, queryCheckCompanyExists, id)
	if err != nil {
		return false, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return false, nil
	}
	count, ok := results[0]["count"].(int64)
	if !ok {
		return false, fmt.Errorf("unexpected type for count: %T", results[0]["count"])
	}
	return count > 0, nil
}

func buildCompanyFromResultRow(row map[string]interface{}) (Company, error) {
	id, ok := row["company_id"].(string)
	if !ok {
		return Company{}, fmt.Errorf("failed to parse company_id as string")
	}
	name, ok := row["name"].(string)
	if !ok {
		return Company{}, fmt.Errorf("failed to parse name as string")
	}

	company := Company{ID: id, Name: name}
	if address, ok := row["address"].(string); ok {
		company.Address = address
	}
	if country, ok := row["country"].(string); ok {
		company.Country = country
	}
	return company, nil
}
