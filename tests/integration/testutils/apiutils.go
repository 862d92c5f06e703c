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

package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const (
	TestServerURL = "http://localhost:8095"

	ITSolutionsCompanyID    = "c9d4c053-49b6-410c-bc78-2d54a9991870"
	AdminSolutionsCompanyID = "3d490a70-94ce-4d15-9494-5248280c2ce3"
)

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// getHTTPClient returns a configured HTTP client for test requests
func getHTTPClient() *http.Client {
	return &http.Client{}
}

// DoRequest sends a request to the test server and reads the whole response.
func DoRequest(method, path, accept string, body interface{}) (*Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, TestServerURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := getHTTPClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: respBody}, nil
}

// EmployeesPath returns the collection path of the employees of a company.
func EmployeesPath(companyID string) string {
	return "/api/companies/" + companyID + "/employees"
}

// CreateEmployee creates an employee via API and returns the employee ID
func CreateEmployee(companyID string, employee EmployeeRequest) (string, error) {
	resp, err := DoRequest(http.MethodPost, EmployeesPath(companyID), "", employee)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("expected status 201, got %d. Response: %s", resp.StatusCode, string(resp.Body))
	}

	var created Employee
	if err := json.Unmarshal(resp.Body, &created); err != nil {
		return "", fmt.Errorf("failed to parse response body: %w", err)
	}
	if created.ID == "" {
		return "", fmt.Errorf("response does not contain id")
	}
	return created.ID, nil
}

// DeleteEmployee deletes an employee by ID
func DeleteEmployee(companyID, employeeID string) error {
	resp, err := DoRequest(http.MethodDelete, EmployeesPath(companyID)+"/"+employeeID, "", nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("expected status 204, got %d", resp.StatusCode)
	}
	return nil
}

// CreateMultipleEmployees creates multiple employees and returns their IDs
func CreateMultipleEmployees(companyID string, employees ...EmployeeRequest) ([]string, error) {
	var ids []string
	for i, employee := range employees {
		id, err := CreateEmployee(companyID, employee)
		if err != nil {
			_ = CleanupEmployees(companyID, ids)
			return nil, fmt.Errorf("failed to create employee %d: %w", i, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// CleanupEmployees deletes multiple employees
func CleanupEmployees(companyID string, ids []string) error {
	var errs []error
	for _, id := range ids {
		if id != "" {
			if err := DeleteEmployee(companyID, id); err != nil {
				errs = append(errs, fmt.Errorf("failed to delete employee %s: %w", id, err))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("cleanup errors: %v", errs)
	}
	return nil
}
