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
	"net/http"

	"github.com/ramesh/companyemployees/internal/company"
	"github.com/ramesh/companyemployees/internal/system/config"
	serverconst "github.com/ramesh/companyemployees/internal/system/constants"
	"github.com/ramesh/companyemployees/internal/system/middleware"
)

// Initialize initializes the employee service and registers its routes.
func Initialize(mux *http.ServeMux, companyService company.CompanyServiceInterface,
	pagination config.PaginationConfig) EmployeeServiceInterface {
	employeeService := newEmployeeService(companyService, pagination)
	employeeHandler := newEmployeeHandler(employeeService)
	registerRoutes(mux, employeeHandler)
	return employeeService
}

// registerRoutes registers the routes for employee management operations.
func registerRoutes(mux *http.ServeMux, employeeHandler *employeeHandler) {
	corsOptions1 := middleware.CORSOptions{
		AllowedMethods:   "GET, HEAD, POST",
		AllowedHeaders:   "Content-Type, Accept, Authorization",
		ExposedHeaders:   serverconst.PaginationHeaderName + ", " + serverconst.LocationHeaderName,
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /api/companies/{companyId}/employees",
		employeeHandler.HandleEmployeeListRequest, corsOptions1))
	mux.HandleFunc(middleware.WithCORS("POST /api/companies/{companyId}/employees",
		employeeHandler.HandleEmployeePostRequest, corsOptions1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /api/companies/{companyId}/employees",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, corsOptions1))

	corsOptions2 := middleware.CORSOptions{
		AllowedMethods:   "GET, HEAD, PUT, PATCH, DELETE",
		AllowedHeaders:   "Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /api/companies/{companyId}/employees/{id}",
		employeeHandler.HandleEmployeeGetRequest, corsOptions2))
	mux.HandleFunc(middleware.WithCORS("PUT /api/companies/{companyId}/employees/{id}",
		employeeHandler.HandleEmployeePutRequest, corsOptions2))
	mux.HandleFunc(middleware.WithCORS("PATCH /api/companies/{companyId}/employees/{id}",
		employeeHandler.HandleEmployeePatchRequest, corsOptions2))
	mux.HandleFunc(middleware.WithCORS("DELETE /api/companies/{companyId}/employees/{id}",
		employeeHandler.HandleEmployeeDeleteRequest, corsOptions2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /api/companies/{companyId}/employees/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, corsOptions2))
}
