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
	"fmt"
	"math"
	"unicode/utf8"

	sysutils "github.com/ramesh/companyemployees/internal/system/utils"
)

const (
	maxNameLength     = 30
	maxPositionLength = 20
	minEmployeeAge    = 18
	maxEmployeeAge    = 100
)

// Employee represents an employee record of a company.
type Employee struct {
	ID        string
	Name      string
	Age       int
	Position  string
	CompanyID string
}

// EmployeeDTO is the shape of an employee exposed by the API.
type EmployeeDTO struct {
	ID       string `json:"id" shape:"id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Position string `json:"position"`
}

// toDTO converts an employee into its API representation.
func toDTO(e Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:       e.ID,
		Name:     e.Name,
		Age:      e.Age,
		Position: e.Position,
	}
}

// EmployeeParameters holds the query parameters of the employee collection endpoint.
type EmployeeParameters struct {
	MinAge     int
	MaxAge     int
	SearchTerm string
	OrderBy    string
	Fields     string
	PageNumber int
	PageSize   int
}

// NewEmployeeParameters returns parameters with the collection defaults applied.
func NewEmployeeParameters() EmployeeParameters {
	return EmployeeParameters{
		MinAge:     0,
		MaxAge:     math.MaxInt32,
		OrderBy:    "name",
		PageNumber: 1,
	}
}

// ValidAgeRange reports whether MaxAge is not below MinAge.
func (p EmployeeParameters) ValidAgeRange() bool {
	return p.MaxAge >= p.MinAge
}

// EmployeeFilter restricts the employees of a company by age range and name.
type EmployeeFilter struct {
	CompanyID  string
	MinAge     int
	MaxAge     int
	SearchTerm string
}

// EmployeeRequest is the body of the create and update employee requests.
type EmployeeRequest struct {
	Name     string `json:"name"`
	Age      *int   `json:"age"`
	Position string `json:"position"`
}

// validate checks the request fields and returns a description of every violation.
func (r EmployeeRequest) validate() []string {
	var violations []string

	switch {
	case r.Name == "":
		violations = append(violations, "Employee name is a required field.")
	case utf8.RuneCountInString(r.Name) > maxNameLength:
		violations = append(violations,
			fmt.Sprintf("Maximum length for the Name is %d characters.", maxNameLength))
	}

	switch {
	case r.Age == nil:
		violations = append(violations, "Age is a required field.")
	case *r.Age < minEmployeeAge || *r.Age > maxEmployeeAge:
		violations = append(violations,
			fmt.Sprintf("Age must be between %d and %d.", minEmployeeAge, maxEmployeeAge))
	}

	switch {
	case r.Position == "":
		violations = append(violations, "Position is a required field.")
	case utf8.RuneCountInString(r.Position) > maxPositionLength:
		violations = append(violations,
			fmt.Sprintf("Maximum length for the Position is %d characters.", maxPositionLength))
	}

	return violations
}

// sanitize trims the free text fields of the request and drops control characters.
func (r EmployeeRequest) sanitize() EmployeeRequest {
	return EmployeeRequest{
		Name:     sysutils.SanitizeString(r.Name),
		Age:      r.Age,
		Position: sysutils.SanitizeString(r.Position),
	}
}
