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
	"bytes"
	"encoding/json"
	"encoding/xml"
)

// Field is a single key/value pair of a shaped record.
type Field struct {
	// Key is the JSON member name.
	Key string
	// Name is the XML element name.
	Name  string
	Value any
}

// ShapedRecord is an ordered set of fields projected from an entity.
type ShapedRecord struct {
	typeName   string
	fields     []Field
	identifier int
}

// NewShapedRecord creates a record from fields. identifier is the index of the identifier field, or -1.
func NewShapedRecord(typeName string, fields []Field, identifier int) ShapedRecord {
	owned := make([]Field, len(fields))
	copy(owned, fields)
	if identifier >= len(owned) {
		identifier = -1
	}
	return ShapedRecord{typeName: typeName, fields: owned, identifier: identifier}
}

// TypeName returns the name of the entity type the record was shaped from.
func (r ShapedRecord) TypeName() string {
	return r.typeName
}

// Fields returns the fields in output order.
func (r ShapedRecord) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Keys returns the JSON member names in output order.
func (r ShapedRecord) Keys() []string {
	keys := make([]string, 0, len(r.fields))
	for _, f := range r.fields {
		keys = append(keys, f.Key)
	}
	return keys
}

// Identifier returns the value of the identifier field.
func (r ShapedRecord) Identifier() (any, bool) {
	if r.identifier < 0 {
		return nil, false
	}
	return r.fields[r.identifier].Value, true
}

// With returns a copy of the record with an extra field appended.
func (r ShapedRecord) With(key, name string, value any) ShapedRecord {
	fields := make([]Field, len(r.fields), len(r.fields)+1)
	copy(fields, r.fields)
	fields = append(fields, Field{Key: key, Name: name, Value: value})
	return ShapedRecord{typeName: r.typeName, fields: fields, identifier: r.identifier}
}

// MarshalJSON encodes the record as a JSON object, keeping field order.
func (r ShapedRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalXML encodes the record as an element named after its entity type.
func (r ShapedRecord) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if r.typeName != "" {
		start.Name = xml.Name{Local: r.typeName}
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, f := range r.fields {
		if err := e.EncodeElement(f.Value, xml.StartElement{Name: xml.Name{Local: f.Name}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}
