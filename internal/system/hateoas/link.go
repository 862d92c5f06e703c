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

// Package hateoas provides hypermedia link models and media type negotiation.
package hateoas

import (
	"encoding/xml"

	"github.com/ramesh/companyemployees/internal/system/datashaping"
)

// Link describes a related resource and the method to reach it.
type Link struct {
	Href   string `json:"href" xml:"Href"`
	Rel    string `json:"rel" xml:"Rel"`
	Method string `json:"method" xml:"Method"`
}

// NewLink creates a Link.
func NewLink(href, rel, method string) Link {
	return Link{Href: href, Rel: rel, Method: method}
}

// linkList encodes links as a <Links> element holding one <Link> per entry.
type linkList []Link

// MarshalXML implements xml.Marshaler.
func (l linkList) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return e.EncodeElement(struct {
		Links []Link `xml:"Link"`
	}{Links: l}, start)
}

// LinkedRecord is a shaped record together with its own links.
type LinkedRecord struct {
	Record datashaping.ShapedRecord
	Links  []Link
}

// NewLinkedRecord creates a LinkedRecord.
func NewLinkedRecord(record datashaping.ShapedRecord, links []Link) LinkedRecord {
	if links == nil {
		links = []Link{}
	}
	return LinkedRecord{Record: record, Links: links}
}

func (l LinkedRecord) flatten() datashaping.ShapedRecord {
	links := l.Links
	if links == nil {
		links = []Link{}
	}
	return l.Record.With("links", "Links", linkList(links))
}

// MarshalJSON encodes the record fields followed by a "links" member.
func (l LinkedRecord) MarshalJSON() ([]byte, error) {
	return l.flatten().MarshalJSON()
}

// MarshalXML encodes the record fields followed by a <Links> element.
func (l LinkedRecord) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return l.flatten().MarshalXML(e, start)
}

// LinkCollectionWrapper holds a page of linked records and the links of the collection itself.
type LinkCollectionWrapper struct {
	XMLName xml.Name       `json:"-" xml:"LinkCollection"`
	Value   []LinkedRecord `json:"value" xml:"Value>Record"`
	Links   []Link         `json:"links" xml:"Links>Link"`
}

// NewLinkCollectionWrapper creates a LinkCollectionWrapper.
func NewLinkCollectionWrapper(value []LinkedRecord, links []Link) LinkCollectionWrapper {
	if value == nil {
		value = []LinkedRecord{}
	}
	if links == nil {
		links = []Link{}
	}
	return LinkCollectionWrapper{Value: value, Links: links}
}
