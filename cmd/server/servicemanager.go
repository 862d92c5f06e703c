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

package main

import (
	"net/http"

	"github.com/ramesh/companyemployees/internal/company"
	"github.com/ramesh/companyemployees/internal/employee"
	"github.com/ramesh/companyemployees/internal/system/config"
	"github.com/ramesh/companyemployees/internal/system/healthcheck"
	"github.com/ramesh/companyemployees/internal/system/log"
)

// registerServices registers all the services with the provided HTTP multiplexer.
func registerServices(mux *http.ServeMux, cfg *config.Config) {
	logger := log.GetLogger()

	_ = healthcheck.Initialize(mux)
	companyService := company.Initialize(mux)
	_ = employee.Initialize(mux, companyService, cfg.Pagination)

	logger.Debug("Registered services", log.Int("defaultPageSize", cfg.Pagination.DefaultPageSize),
		log.Int("maxPageSize", cfg.Pagination.MaxPageSize))
}
