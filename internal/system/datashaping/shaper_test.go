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
	"encoding/json"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type staffDTO struct {
	ID       string `json:"id" shape:"id"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Position string `json:"position"`
}

type untagged struct {
	Label string
	Size  int
}

type DataShaperTestSuite struct {
	suite.Suite
	shaper *DataShaper[staffDTO]
	staff  []staffDTO
}

func TestDataShaperSuite(t *testing.T) {
	suite.Run(t, new(DataShaperTestSuite))
}

func (suite *DataShaperTestSuite) SetupTest() {
	suite.shaper = NewDataShaper[staffDTO]()
	suite.staff = []staffDTO{
		{ID: "e1", Name: "Alice", Age: 30, Position: "Engineer"},
		{ID: "e2", Name: "Bob", Age: 41, Position: "Manager"},
	}
}

func (suite *DataShaperTestSuite) TestParseFieldSelection() {
	assert.Equal(suite.T(), FieldSelection{}, ParseFieldSelection(""))
	assert.Equal(suite.T(), FieldSelection{"name", "age"}, ParseFieldSelection(" Name , AGE ,name,, "))
	assert.True(suite.T(), ParseFieldSelection(" , ").IsEmpty())
	assert.Equal(suite.T(), "name,age", ParseFieldSelection("name,age").String())
}

func (suite *DataShaperTestSuite) TestShapeEmptySelectionReturnsAllFieldsInDeclaredOrder() {
	records := suite.shaper.Shape(suite.staff, "")

	require.Len(suite.T(), records, 2)
	assert.Equal(suite.T(), []string{"id", "name", "age", "position"}, records[0].Keys())
	assert.Equal(suite.T(), "Manager", records[1].Fields()[3].Value)
}

func (suite *DataShaperTestSuite) TestShapeProjectsSelectedFieldsWithIdentifierFirst() {
	records := suite.shaper.Shape(suite.staff, "name")

	require.Len(suite.T(), records, 2)
	assert.Equal(suite.T(), []string{"id", "name"}, records[0].Keys())

	raw, err := json.Marshal(records)
	require.NoError(suite.T(), err)
	assert.JSONEq(suite.T(), `[{"id":"e1","name":"Alice"},{"id":"e2","name":"Bob"}]`, string(raw))
}

func (suite *DataShaperTestSuite) TestShapeKeepsSelectionOrder() {
	record := suite.shaper.ShapeOne(suite.staff[0], "position,AGE")
	assert.Equal(suite.T(), []string{"id", "position", "age"}, record.Keys())

	raw, err := json.Marshal(record)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), `{"id":"e1","position":"Engineer","age":30}`, string(raw))
}

func (suite *DataShaperTestSuite) TestShapeSkipsUnknownAndDuplicateFields() {
	record := suite.shaper.ShapeOne(suite.staff[0], "bogus,name,Name,id")
	assert.Equal(suite.T(), []string{"id", "name"}, record.Keys())
}

func (suite *DataShaperTestSuite) TestShapeMatchesGoFieldNames() {
	record := suite.shaper.ShapeOne(suite.staff[0], "Position")
	assert.Equal(suite.T(), []string{"id", "position"}, record.Keys())
}

func (suite *DataShaperTestSuite) TestIdentifier() {
	record := suite.shaper.ShapeOne(suite.staff[1], "age")
	id, ok := record.Identifier()
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), "e2", id)
}

func (suite *DataShaperTestSuite) TestShapeDoesNotModifySource() {
	before := suite.staff[0]
	_ = suite.shaper.Shape(suite.staff, "name")
	assert.Equal(suite.T(), before, suite.staff[0])
}

func (suite *DataShaperTestSuite) TestShapePointerEntities() {
	shaper := NewDataShaper[*staffDTO]()
	records := shaper.Shape([]*staffDTO{&suite.staff[0], nil}, "age")

	require.Len(suite.T(), records, 2)
	assert.Equal(suite.T(), []string{"id", "age"}, records[0].Keys())
	assert.Empty(suite.T(), records[1].Fields())
}

func (suite *DataShaperTestSuite) TestShapeTypeWithoutIdentifier() {
	shaper := NewDataShaper[untagged]()
	record := shaper.ShapeOne(untagged{Label: "x", Size: 2}, "size")

	assert.Equal(suite.T(), []string{"Size"}, record.Keys())
	_, ok := record.Identifier()
	assert.False(suite.T(), ok)
}

func (suite *DataShaperTestSuite) TestShapeEmptyInput() {
	records := suite.shaper.Shape(nil, "name")
	assert.NotNil(suite.T(), records)
	assert.Empty(suite.T(), records)
}

func (suite *DataShaperTestSuite) TestMarshalXML() {
	record := suite.shaper.ShapeOne(suite.staff[0], "name")

	raw, err := xml.Marshal(record)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), `<staffDTO><ID>e1</ID><Name>Alice</Name></staffDTO>`, string(raw))
}

func (suite *DataShaperTestSuite) TestWithAppendsField() {
	record := suite.shaper.ShapeOne(suite.staff[0], "name")
	extended := record.With("extra", "Extra", true)

	assert.Equal(suite.T(), []string{"id", "name"}, record.Keys())
	assert.Equal(suite.T(), []string{"id", "name", "extra"}, extended.Keys())
	id, _ := extended.Identifier()
	assert.Equal(suite.T(), "e1", id)
}
