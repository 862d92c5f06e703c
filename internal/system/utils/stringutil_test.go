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

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type StringUtilTestSuite struct {
	suite.Suite
}

func TestStringUtilSuite(t *testing.T) {
	suite.Run(t, new(StringUtilTestSuite))
}

func (suite *StringUtilTestSuite) TestSplitAndTrim() {
	assert.Equal(suite.T(), []string{"name", "age desc"}, SplitAndTrim(" name , age desc ,, ", ","))
	assert.Equal(suite.T(), []string{}, SplitAndTrim("   ", ","))
	assert.Equal(suite.T(), []string{}, SplitAndTrim("", ","))
	assert.Equal(suite.T(), []string{"single"}, SplitAndTrim("single", ","))
}

func (suite *StringUtilTestSuite) TestSanitizeString() {
	assert.Equal(suite.T(), "Sam Raiden", SanitizeString("  Sam Raiden\n"))
	assert.Equal(suite.T(), "Developer", SanitizeString("Devel\x00oper"))
	assert.Equal(suite.T(), "", SanitizeString(" \t "))
}
