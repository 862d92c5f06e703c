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

	"github.com/ramesh/companyemployees/internal/system/middleware"
)

// Initialize initializes the company service and registers its routes.
func Initialize(mux *http.ServeMux) CompanyServiceInterface {
	companyService := newCompanyService()
	companyHandler := newCompanyHandler(companyService)
	registerRoutes(mux, companyHandler)
	return companyService
}

// registerRoutes registers the routes for company operations.
func registerRoutes(mux *http.ServeMux, companyHandler *companyHandler) {
	opts := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /api/companies/{companyId}",
		companyHandler.HandleCompanyGetRequest, opts))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /api/companies/{companyId}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts))
}
