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

// Package accessor builds per-type field accessor registries used for sorting and data shaping.
package accessor

import (
	"reflect"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

const (
	shapeTagName       = "shape"
	shapeTagIdentifier = "id"
	identifierField    = "ID"
)

var registries sync.Map

// Accessor reads a single exported field of a struct value.
type Accessor struct {
	// Name is the Go field name.
	Name string
	// Key is the serialized name of the field, taken from the json tag when present.
	Key string
	// Index is the field index sequence for reflect.Value.FieldByIndex.
	Index []int
	// Type is the static type of the field.
	Type reflect.Type
}

// Get returns the field value from the given struct value.
func (a Accessor) Get(v reflect.Value) any {
	return v.FieldByIndex(a.Index).Interface()
}

// Registry holds the accessors of a struct type in declaration order.
// A registry is immutable once built.
type Registry struct {
	typ        reflect.Type
	accessors  []Accessor
	byName     map[string]int
	identifier int
}

// For returns the registry for T. T may be a struct type or a pointer to one.
func For[T any]() *Registry {
	return ForType(reflect.TypeOf((*T)(nil)).Elem())
}

// ForType returns the registry for the given type, building it on first use.
func ForType(t reflect.Type) *Registry {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if cached, ok := registries.Load(t); ok {
		return cached.(*Registry)
	}
	actual, _ := registries.LoadOrStore(t, build(t))
	return actual.(*Registry)
}

func build(t reflect.Type) *Registry {
	r := &Registry{
		typ:        t,
		byName:     make(map[string]int),
		identifier: -1,
	}
	if t.Kind() != reflect.Struct {
		return r
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() || field.Anonymous {
			continue
		}
		key, skip := jsonKey(field)
		if skip {
			continue
		}

		idx := len(r.accessors)
		r.accessors = append(r.accessors, Accessor{
			Name:  field.Name,
			Key:   key,
			Index: field.Index,
			Type:  field.Type,
		})
		if _, exists := r.byName[Fold(field.Name)]; !exists {
			r.byName[Fold(field.Name)] = idx
		}
		if _, exists := r.byName[Fold(key)]; !exists {
			r.byName[Fold(key)] = idx
		}
		if field.Tag.Get(shapeTagName) == shapeTagIdentifier {
			r.identifier = idx
		}
	}

	if r.identifier < 0 {
		for i, a := range r.accessors {
			if a.Name == identifierField {
				r.identifier = i
				break
			}
		}
	}
	return r
}

func jsonKey(field reflect.StructField) (string, bool) {
	tag, ok := field.Tag.Lookup("json")
	if !ok {
		return field.Name, false
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return "", true
	}
	if name == "" {
		return field.Name, false
	}
	return name, false
}

// Fold returns the case-folded form of s used for name matching.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Type returns the struct type the registry was built for.
func (r *Registry) Type() reflect.Type {
	return r.typ
}

// Accessors returns the accessors in declaration order.
func (r *Registry) Accessors() []Accessor {
	out := make([]Accessor, len(r.accessors))
	copy(out, r.accessors)
	return out
}

// Lookup finds an accessor by Go field name or serialized key, ignoring case.
func (r *Registry) Lookup(name string) (Accessor, bool) {
	idx, ok := r.byName[Fold(name)]
	if !ok {
		return Accessor{}, false
	}
	return r.accessors[idx], true
}

// Identifier returns the accessor of the identifier field, if the type declares one.
func (r *Registry) Identifier() (Accessor, bool) {
	if r.identifier < 0 {
		return Accessor{}, false
	}
	return r.accessors[r.identifier], true
}

// Names returns the Go field names in declaration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.accessors))
	for _, a := range r.accessors {
		names = append(names, a.Name)
	}
	return names
}

// ValueOf returns the struct value behind entity, dereferencing pointers.
// It returns false for a nil pointer or a value of a different type.
func (r *Registry) ValueOf(entity any) (reflect.Value, bool) {
	v := reflect.ValueOf(entity)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	if !v.IsValid() || v.Type() != r.typ {
		return reflect.Value{}, false
	}
	return v, true
}
