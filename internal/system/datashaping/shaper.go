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

package datashaping

import (
	"github.com/ramesh/companyemployees/internal/system/accessor"
)

// DataShaperInterface defines the operations for shaping entities of type T.
type DataShaperInterface[T any] interface {
	Shape(entities []T, fieldsCsv string) []ShapedRecord
	ShapeOne(entity T, fieldsCsv string) ShapedRecord
}

// DataShaper shapes entities of type T using the accessor registry of T.
type DataShaper[T any] struct {
	registry *accessor.Registry
}

// NewDataShaper creates a DataShaper for T. T may be a struct type or a pointer to one.
func NewDataShaper[T any]() *DataShaper[T] {
	return &DataShaper[T]{
		registry: accessor.For[T](),
	}
}

// Shape projects every entity onto the selected fields.
func (d *DataShaper[T]) Shape(entities []T, fieldsCsv string) []ShapedRecord {
	accessors := d.resolve(ParseFieldSelection(fieldsCsv))
	records := make([]ShapedRecord, 0, len(entities))
	for _, entity := range entities {
		records = append(records, d.shape(entity, accessors))
	}
	return records
}

// ShapeOne projects a single entity onto the selected fields.
func (d *DataShaper[T]) ShapeOne(entity T, fieldsCsv string) ShapedRecord {
	return d.shape(entity, d.resolve(ParseFieldSelection(fieldsCsv)))
}

// resolve maps a selection to accessors. The identifier comes first, unknown names are skipped.
func (d *DataShaper[T]) resolve(selection FieldSelection) []accessor.Accessor {
	id, hasID := d.registry.Identifier()

	var accessors []accessor.Accessor
	if hasID {
		accessors = append(accessors, id)
	}

	if selection.IsEmpty() {
		for _, a := range d.registry.Accessors() {
			if hasID && a.Name == id.Name {
				continue
			}
			accessors = append(accessors, a)
		}
		return accessors
	}

	seen := make(map[string]struct{})
	if hasID {
		seen[id.Name] = struct{}{}
	}
	for _, name := range selection {
		a, ok := d.registry.Lookup(name)
		if !ok {
			continue
		}
		if _, dup := seen[a.Name]; dup {
			continue
		}
		seen[a.Name] = struct{}{}
		accessors = append(accessors, a)
	}
	return accessors
}

func (d *DataShaper[T]) shape(entity T, accessors []accessor.Accessor) ShapedRecord {
	typeName := d.registry.Type().Name()
	v, ok := d.registry.ValueOf(entity)
	if !ok {
		return NewShapedRecord(typeName, nil, -1)
	}

	identifier := -1
	if id, hasID := d.registry.Identifier(); hasID && len(accessors) > 0 && accessors[0].Name == id.Name {
		identifier = 0
	}

	fields := make([]Field, 0, len(accessors))
	for _, a := range accessors {
		fields = append(fields, Field{Key: a.Key, Name: a.Name, Value: a.Get(v)})
	}
	return NewShapedRecord(typeName, fields, identifier)
}
