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

// Package datashaping projects entities onto caller-selected fields.
package datashaping

import (
	"strings"

	"github.com/ramesh/companyemployees/internal/system/accessor"
	sysutils "github.com/ramesh/companyemployees/internal/system/utils"
)

// FieldSelection is an ordered, duplicate-free list of folded field names.
// An empty selection means every field.
type FieldSelection []string

// ParseFieldSelection parses a comma separated list of field names.
func ParseFieldSelection(csv string) FieldSelection {
	selection := FieldSelection{}
	seen := make(map[string]struct{})
	for _, token := range sysutils.SplitAndTrim(csv, ",") {
		folded := accessor.Fold(token)
		if _, dup := seen[folded]; dup {
			continue
		}
		seen[folded] = struct{}{}
		selection = append(selection, folded)
	}
	return selection
}

// IsEmpty reports whether the selection requests every field.
func (fs FieldSelection) IsEmpty() bool {
	return len(fs) == 0
}

// String renders the selection as a comma separated list.
func (fs FieldSelection) String() string {
	return strings.Join(fs, ",")
}
