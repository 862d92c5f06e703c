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

// Package healthcheck registers the liveness and readiness endpoints.
package healthcheck

import (
	"net/http"

	"github.com/ramesh/companyemployees/internal/system/healthcheck/handler"
	"github.com/ramesh/companyemployees/internal/system/healthcheck/service"
	"github.com/ramesh/companyemployees/internal/system/middleware"
)

// Initialize initializes the health check service and registers its routes.
func Initialize(mux *http.ServeMux) service.HealthCheckServiceInterface {
	svc := service.GetHealthCheckService()
	registerRoutes(mux, handler.NewHealthCheckHandler(svc))
	return svc
}

// registerRoutes registers the routes for health check operations.
func registerRoutes(mux *http.ServeMux, healthCheckHandler *handler.HealthCheckHandler) {
	opts := middleware.CORSOptions{
		AllowedMethods: "GET",
	}
	mux.HandleFunc(middleware.WithCORS("GET /health/liveness", healthCheckHandler.HandleLivenessRequest, opts))
	mux.HandleFunc(middleware.WithCORS("GET /health/readiness", healthCheckHandler.HandleReadinessRequest, opts))
}
