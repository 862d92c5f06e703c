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

// Package constants defines global constants used across the system module.
package constants

const (
	// LogLevelEnvironmentVariable is the environment variable name for the log level.
	LogLevelEnvironmentVariable = "LOG_LEVEL"
	// DefaultLogLevel is the default log level used if not specified.
	DefaultLogLevel = "info"
)

// AcceptHeaderName is the name of the accept header used in HTTP requests.
const AcceptHeaderName = "Accept"

// ContentTypeHeaderName is the name of the content type header used in HTTP requests.
const ContentTypeHeaderName = "Content-Type"

// LocationHeaderName is the name of the location header used in created responses.
const LocationHeaderName = "Location"

// PaginationHeaderName is the name of the response header carrying pagination metadata.
const PaginationHeaderName = "X-Pagination"

// ContentTypeJSON is the content type for JSON data.
const ContentTypeJSON = "application/json"

// ContentTypeXML is the content type for XML data.
const ContentTypeXML = "application/xml"

// ContentTypeHateoasJSON is the vendor media type requesting hypermedia links in JSON.
const ContentTypeHateoasJSON = "application/vnd.ramesh.hateoas+json"

// ContentTypeHateoasXML is the vendor media type requesting hypermedia links in XML.
const ContentTypeHateoasXML = "application/vnd.ramesh.hateoas+xml"

// ContentTypeCSV is the content type for comma separated values.
const ContentTypeCSV = "text/csv"

// DefaultPageSize is the default page size for pagination when not specified.
const DefaultPageSize = 10

// MaxPageSize is the maximum allowed page size for pagination.
const MaxPageSize = 50

// CompanyDBName is the logical name of the company data source.
const CompanyDBName = "company"
