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

package hateoas

import (
	"encoding/json"
	"encoding/xml"
	"io"

	"github.com/ramesh/companyemployees/internal/system/datashaping"
)

// RecordList is a flat list of shaped records. In XML it is wrapped in an ArrayOf<Entity> element.
type RecordList struct {
	EntityName string
	Records    []datashaping.ShapedRecord
}

// MarshalJSON encodes the records as a JSON array.
func (l RecordList) MarshalJSON() ([]byte, error) {
	records := l.Records
	if records == nil {
		records = []datashaping.ShapedRecord{}
	}
	return json.Marshal(records)
}

// MarshalXML implements xml.Marshaler.
func (l RecordList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "ArrayOf" + l.EntityName}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, r := range l.Records {
		if err := e.EncodeElement(r, xml.StartElement{Name: xml.Name{Local: "Record"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// LinkResponse is the result of a collection query. HasLinks selects which of
// ShapedEntities and LinkedEntities is populated.
type LinkResponse struct {
	HasLinks       bool
	EntityName     string
	ShapedEntities []datashaping.ShapedRecord
	LinkedEntities LinkCollectionWrapper
}

// NewShapedResponse creates a LinkResponse carrying records without links.
func NewShapedResponse(entityName string, records []datashaping.ShapedRecord) LinkResponse {
	if records == nil {
		records = []datashaping.ShapedRecord{}
	}
	return LinkResponse{EntityName: entityName, ShapedEntities: records}
}

// NewLinkedResponse creates a LinkResponse carrying a link collection.
func NewLinkedResponse(entityName string, wrapper LinkCollectionWrapper) LinkResponse {
	return LinkResponse{HasLinks: true, EntityName: entityName, LinkedEntities: wrapper}
}

// Payload returns the value to serialize for the response body.
func (r LinkResponse) Payload() any {
	if r.HasLinks {
		return r.LinkedEntities
	}
	return RecordList{EntityName: r.EntityName, Records: r.ShapedEntities}
}

// ItemResponse is the result of a single-resource query. HasLinks selects which of
// Shaped and Linked is populated.
type ItemResponse struct {
	HasLinks bool
	Shaped   datashaping.ShapedRecord
	Linked   LinkedRecord
}

// NewShapedItem creates an ItemResponse without links.
func NewShapedItem(record datashaping.ShapedRecord) ItemResponse {
	return ItemResponse{Shaped: record}
}

// NewLinkedItem creates an ItemResponse with links.
func NewLinkedItem(record LinkedRecord) ItemResponse {
	return ItemResponse{HasLinks: true, Linked: record}
}

// Payload returns the value to serialize for the response body.
func (r ItemResponse) Payload() any {
	if r.HasLinks {
		return r.Linked
	}
	return r.Shaped
}

// Encode writes v to w as CSV, XML or JSON depending on the media type.
func Encode(w io.Writer, mediaType string, v any) error {
	if IsCSV(mediaType) {
		return encodeCSV(w, v)
	}
	if IsXML(mediaType) {
		if _, err := io.WriteString(w, xml.Header); err != nil {
			return err
		}
		return xml.NewEncoder(w).Encode(v)
	}
	return json.NewEncoder(w).Encode(v)
}
