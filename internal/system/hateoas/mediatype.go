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
	"mime"
	"strings"

	"github.com/munnerz/goautoneg"

	"github.com/ramesh/companyemployees/internal/system/constants"
)

const hateoasSubtypeSuffix = "hateoas"

// SupportedMediaTypes lists the response media types in order of preference.
var SupportedMediaTypes = []string{
	constants.ContentTypeJSON,
	constants.ContentTypeXML,
	constants.ContentTypeHateoasJSON,
	constants.ContentTypeHateoasXML,
	constants.ContentTypeCSV,
}

// NegotiateMediaType selects the best supported media type for an Accept header.
// An empty header selects the first supported type.
func NegotiateMediaType(accept string, supported []string) (string, bool) {
	if len(supported) == 0 {
		return "", false
	}
	if strings.TrimSpace(accept) == "" {
		return supported[0], true
	}
	mediaType := goautoneg.Negotiate(strings.ToLower(accept), supported)
	if mediaType == "" {
		return "", false
	}
	return mediaType, true
}

// ShouldGenerateLinks reports whether a media type requests hypermedia links.
// That is the case when its subtype, without a structured syntax suffix, ends in "hateoas".
func ShouldGenerateLinks(mediaType string) bool {
	subtype, _ := splitSubtype(mediaType)
	return strings.HasSuffix(subtype, hateoasSubtypeSuffix)
}

// IsXML reports whether a media type is XML or uses the +xml suffix.
func IsXML(mediaType string) bool {
	subtype, suffix := splitSubtype(mediaType)
	return subtype == "xml" || suffix == "xml"
}

// IsCSV reports whether a media type is text/csv.
func IsCSV(mediaType string) bool {
	subtype, _ := splitSubtype(mediaType)
	return subtype == "csv"
}

// splitSubtype returns the lower-cased subtype of a media type and its +suffix.
func splitSubtype(mediaType string) (string, string) {
	parsed, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		parsed = strings.ToLower(strings.TrimSpace(mediaType))
	}
	_, subtype, found := strings.Cut(parsed, "/")
	if !found {
		return "", ""
	}
	subtype, suffix, _ := strings.Cut(subtype, "+")
	return subtype, suffix
}
