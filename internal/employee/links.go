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
	"net/url"
	"strconv"

	"github.com/ramesh/companyemployees/internal/system/datashaping"
	"github.com/ramesh/companyemployees/internal/system/hateoas"
	"github.com/ramesh/companyemployees/internal/system/query"
)

const (
	companiesBasePath  = "/api/companies"
	employeeEntityName = "EmployeeDTO"
)

// EmployeeLinksInterface defines the link generation operations for employees.
type EmployeeLinksInterface interface {
	TryGenerateLinks(employees []EmployeeDTO, fields, companyID string, params EmployeeParameters,
		metaData query.MetaData, mediaType string) hateoas.LinkResponse
	TryGenerateItemLinks(employee EmployeeDTO, fields, companyID, mediaType string) hateoas.ItemResponse
}

// EmployeeLinks shapes employees and attaches hypermedia links when the media type asks for them.
type EmployeeLinks struct {
	shaper datashaping.DataShaperInterface[EmployeeDTO]
}

// NewEmployeeLinks creates a new instance of EmployeeLinks.
func NewEmployeeLinks(shaper datashaping.DataShaperInterface[EmployeeDTO]) *EmployeeLinks {
	return &EmployeeLinks{shaper: shaper}
}

// TryGenerateLinks shapes a page of employees, adding item and collection links for hypermedia media types.
func (el *EmployeeLinks) TryGenerateLinks(employees []EmployeeDTO, fields, companyID string,
	params EmployeeParameters, metaData query.MetaData, mediaType string) hateoas.LinkResponse {
	shaped := el.shaper.Shape(employees, fields)
	if !hateoas.ShouldGenerateLinks(mediaType) {
		return hateoas.NewShapedResponse(employeeEntityName, shaped)
	}

	linked := make([]hateoas.LinkedRecord, 0, len(shaped))
	for _, record := range shaped {
		linked = append(linked, hateoas.NewLinkedRecord(record,
			el.BuildItemLinks(recordID(record), companyID, fields)))
	}

	return hateoas.NewLinkedResponse(employeeEntityName, hateoas.NewLinkCollectionWrapper(linked,
		el.BuildCollectionLinks(companyID, params, metaData)))
}

// TryGenerateItemLinks shapes a single employee, adding its links for hypermedia media types.
func (el *EmployeeLinks) TryGenerateItemLinks(employee EmployeeDTO, fields, companyID,
	mediaType string) hateoas.ItemResponse {
	shaped := el.shaper.ShapeOne(employee, fields)
	if !hateoas.ShouldGenerateLinks(mediaType) {
		return hateoas.NewShapedItem(shaped)
	}
	return hateoas.NewLinkedItem(hateoas.NewLinkedRecord(shaped,
		el.BuildItemLinks(recordID(shaped), companyID, fields)))
}

// BuildItemLinks returns the links of a single employee.
func (el *EmployeeLinks) BuildItemLinks(employeeID, companyID, fields string) []hateoas.Link {
	itemPath := employeePath(companyID, employeeID)

	selfHref := itemPath
	if fields != "" {
		selfHref += "?" + url.Values{"fields": []string{fields}}.Encode()
	}

	return []hateoas.Link{
		hateoas.NewLink(selfHref, "self", http.MethodGet),
		hateoas.NewLink(itemPath, "update_employee", http.MethodPut),
		hateoas.NewLink(itemPath, "partially_update_employee", http.MethodPatch),
		hateoas.NewLink(itemPath, "delete_employee", http.MethodDelete),
	}
}

// BuildCollectionLinks returns the links of a page of employees.
func (el *EmployeeLinks) BuildCollectionLinks(companyID string, params EmployeeParameters,
	metaData query.MetaData) []hateoas.Link {
	collectionPath := employeesPath(companyID)
	pageHref := func(pageNumber int) string {
		return collectionPath + "?" + collectionQuery(params, metaData.PageSize, pageNumber).Encode()
	}

	links := []hateoas.Link{
		hateoas.NewLink(pageHref(metaData.CurrentPage), "self", http.MethodGet),
	}
	if metaData.TotalPages > 1 {
		links = append(links, hateoas.NewLink(pageHref(1), "first", http.MethodGet))
	}
	if metaData.HasPrevious {
		links = append(links, hateoas.NewLink(pageHref(metaData.CurrentPage-1), "previous", http.MethodGet))
	}
	if metaData.HasNext {
		links = append(links, hateoas.NewLink(pageHref(metaData.CurrentPage+1), "next", http.MethodGet))
	}
	if metaData.TotalPages > 1 {
		links = append(links, hateoas.NewLink(pageHref(metaData.TotalPages), "last", http.MethodGet))
	}
	links = append(links, hateoas.NewLink(collectionPath, "create_employee", http.MethodPost))

	return links
}

// collectionQuery renders the query state of a collection request for the given page.
func collectionQuery(params EmployeeParameters, pageSize, pageNumber int) url.Values {
	values := url.Values{}
	values.Set("minAge", strconv.Itoa(params.MinAge))
	values.Set("maxAge", strconv.Itoa(params.MaxAge))
	values.Set("pageNumber", strconv.Itoa(pageNumber))
	values.Set("pageSize", strconv.Itoa(pageSize))
	if params.OrderBy != "" {
		values.Set("orderBy", params.OrderBy)
	}
	if params.Fields != "" {
		values.Set("fields", params.Fields)
	}
	if params.SearchTerm != "" {
		values.Set("searchTerm", params.SearchTerm)
	}
	return values
}

func employeesPath(companyID string) string {
	return companiesBasePath + "/" + url.PathEscape(companyID) + "/employees"
}

func employeePath(companyID, employeeID string) string {
	return employeesPath(companyID) + "/" + url.PathEscape(employeeID)
}

func recordID(record datashaping.ShapedRecord) string {
	id, ok := record.Identifier()
	if !ok {
		return ""
	}
	s, _ := id.(string)
	return s
}
