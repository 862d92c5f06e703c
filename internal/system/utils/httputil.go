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

// Package utils provides utility functions for HTTP operations.
package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ramesh/companyemployees/internal/system/constants"
	"github.com/ramesh/companyemployees/internal/system/error/apierror"
	"github.com/ramesh/companyemployees/internal/system/log"
)

// maxRequestBodySize limits the size of JSON request bodies.
const maxRequestBodySize = 1 << 20

// DecodeJSONBody decodes the JSON request body into a value of type T.
// Unknown fields and trailing data are rejected.
func DecodeJSONBody[T any](r *http.Request) (*T, error) {
	if r.Body == nil {
		return nil, errors.New("request body is empty")
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodySize))
	decoder.DisallowUnknownFields()

	var data T
	if err := decoder.Decode(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("request body is empty")
		}
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}
	if decoder.More() {
		return nil, errors.New("request body must contain a single JSON object")
	}

	return &data, nil
}

// WriteJSONError writes a JSON error response with the given details.
func WriteJSONError(w http.ResponseWriter, errResp apierror.ErrorResponse, statusCode int,
	respHeaders map[string]string) {
	logger := log.GetLogger()
	logger.Debug("Error in HTTP response", log.String("code", errResp.Code),
		log.String("description", errResp.Description), log.Int("status", statusCode))

	for key, value := range respHeaders {
		w.Header().Set(key, value)
	}
	w.Header().Set(constants.ContentTypeHeaderName, constants.ContentTypeJSON)

	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		logger.Error("Failed to write JSON error response", log.Error(err))
	}
}

// ParseIntQueryParam reads an optional integer query parameter, returning the default when absent.
func ParseIntQueryParam(query url.Values, key string, defaultValue int) (int, error) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("query parameter %s must be an integer", key)
	}
	return value, nil
}

